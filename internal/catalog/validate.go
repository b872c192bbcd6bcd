package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// validateCatalog performs all structural checks on a question list and its
// answer key. Returns a combined error describing all problems found.
func validateCatalog(questions []Question, correct map[string]int) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "catalog has no questions")
	}

	byID := make(map[string]Question, len(questions))
	for i, q := range questions {
		prefix := fmt.Sprintf("question %d (%q)", i, q.ID)

		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question %d: missing id", i))
		} else if _, dup := byID[q.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		byID[q.ID] = q

		if !q.Type.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown type %q", prefix, q.Type))
		}
		if !q.Section.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown section %q", prefix, q.Section))
		}
		if q.Section == SectionWiscar && !q.Category.IsWiscar() {
			errs = append(errs, fmt.Sprintf("%s: wiscar question has invalid category %q", prefix, q.Category))
		}
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("%s: missing prompt", prefix))
		}
		if q.Type.IsChoice() && len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("%s: choice question needs at least one option", prefix))
		}
		if q.Weight <= 0 {
			errs = append(errs, fmt.Sprintf("%s: weight must be > 0, got %g", prefix, q.Weight))
		}
	}

	for _, id := range slices.Sorted(maps.Keys(correct)) {
		idx := correct[id]
		q, ok := byID[id]
		if !ok {
			errs = append(errs, fmt.Sprintf("correct answer references nonexistent question %q", id))
			continue
		}
		if !q.Type.IsChoice() {
			errs = append(errs, fmt.Sprintf("correct answer for %q: question is not a choice question", id))
			continue
		}
		if idx < 0 || idx >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("correct answer for %q: index %d out of range [0, %d)", id, idx, len(q.Options)))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
