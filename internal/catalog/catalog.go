package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is an ordered, immutable question list plus the answer key for
// objectively gradable questions.
type Catalog struct {
	version   string
	title     string
	questions []Question
	byID      map[string]int
	correct   map[string]int
}

// defaultCatalog is the built-in catalog, set by init().
var defaultCatalog *Catalog

func init() {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	defaultCatalog = c
}

// Default returns the built-in Cloud DevOps catalog.
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog from questions and an answer key after validating both.
func New(questions []Question, correct map[string]int) (*Catalog, error) {
	return build(SchemaVersion, "", questions, correct)
}

func build(version, title string, questions []Question, correct map[string]int) (*Catalog, error) {
	if err := validateCatalog(questions, correct); err != nil {
		return nil, err
	}

	c := &Catalog{
		version:   version,
		title:     title,
		questions: make([]Question, len(questions)),
		byID:      make(map[string]int, len(questions)),
		correct:   make(map[string]int, len(correct)),
	}
	copy(c.questions, questions)
	for i, q := range c.questions {
		c.byID[q.ID] = i
	}
	for id, idx := range correct {
		c.correct[id] = idx
	}
	return c, nil
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// At returns the question at position i.
func (c *Catalog) At(i int) (Question, bool) {
	if i < 0 || i >= len(c.questions) {
		return Question{}, false
	}
	return c.questions[i], true
}

// Lookup returns the question with the given id.
func (c *Catalog) Lookup(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// IndexOf returns the position of a question id, or -1.
func (c *Catalog) IndexOf(id string) int {
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}

// CorrectIndex returns the correct option index for a gradable question.
func (c *Catalog) CorrectIndex(id string) (int, bool) {
	idx, ok := c.correct[id]
	return idx, ok
}

// Questions returns a copy of the ordered question list.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// BySection returns the questions of one section in catalog order.
func (c *Catalog) BySection(s Section) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Section == s {
			out = append(out, q)
		}
	}
	return out
}

// Version returns the catalog schema version.
func (c *Catalog) Version() string {
	return c.version
}

// Title returns the catalog title, if any.
func (c *Catalog) Title() string {
	return c.title
}
