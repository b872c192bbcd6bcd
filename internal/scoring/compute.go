package scoring

import (
	"maps"
	"slices"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
)

// Normalized scores for graded questions.
const (
	CorrectScore   = 5.0
	IncorrectScore = 1.0
)

// BucketScale maps a weighted mean on the 1-5 scale to 0-100.
const BucketScale = 20.0

// Catalog is the read access scoring needs. *catalog.Catalog satisfies it.
type Catalog interface {
	Lookup(id string) (catalog.Question, bool)
	CorrectIndex(id string) (int, bool)
}

// Normalize maps an answer to the common 1-5 scale. Graded questions score
// CorrectScore or IncorrectScore; everything else passes the raw value through.
func Normalize(cat Catalog, id string, value int) float64 {
	if correct, ok := cat.CorrectIndex(id); ok {
		if value == correct {
			return CorrectScore
		}
		return IncorrectScore
	}
	return float64(value)
}

type accumulator struct {
	weighted float64
	weight   float64
}

func (a *accumulator) add(normalized, weight float64) {
	a.weighted += normalized * weight
	a.weight += weight
}

func (a accumulator) score() float64 {
	if a.weight == 0 {
		return 0
	}
	return a.weighted / a.weight * BucketScale
}

// Compute derives all bucket scores from an answer set. Answers referencing
// ids absent from the catalog are skipped. Answers are visited in sorted id
// order so the floating point sums are reproducible.
func Compute(answers map[string]int, cat Catalog) Scores {
	var psych, tech accumulator
	wiscar := make(map[catalog.Category]*accumulator, 6)
	for _, c := range catalog.WiscarCategories() {
		wiscar[c] = &accumulator{}
	}

	for _, id := range slices.Sorted(maps.Keys(answers)) {
		q, ok := cat.Lookup(id)
		if !ok {
			continue
		}
		norm := Normalize(cat, id, answers[id])

		switch q.Section {
		case catalog.SectionPsychological:
			psych.add(norm, q.Weight)
		case catalog.SectionTechnical:
			tech.add(norm, q.Weight)
		case catalog.SectionWiscar:
			if acc, ok := wiscar[q.Category]; ok {
				acc.add(norm, q.Weight)
			}
		}
	}

	s := Scores{
		Psychological: psych.score(),
		Technical:     tech.score(),
	}
	for c, acc := range wiscar {
		s.Wiscar.set(c, acc.score())
	}
	return s
}

// UnknownIDs returns the answered ids the catalog does not know, sorted.
func UnknownIDs(answers map[string]int, cat Catalog) []string {
	var out []string
	for _, id := range slices.Sorted(maps.Keys(answers)) {
		if _, ok := cat.Lookup(id); !ok {
			out = append(out, id)
		}
	}
	return out
}
