package coach

import "github.com/bhavyasrideva22/career-fit-quiz/internal/llm"

// NoteSchema is the structured output the model must return.
var NoteSchema = &llm.Schema{
	Name:        "coach-note",
	Description: "A short, encouraging coaching note about a DevOps career-fit assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "One-line takeaway (6-12 words)",
			},
			"summary": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "2-4 sentences interpreting the scores and recommendation",
			},
			"focus_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    4,
				"description": "Skills or habits to work on, most important first",
			},
			"first_week": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    5,
				"description": "Concrete actions for the next seven days",
			},
		},
		"required":             []any{"headline", "summary", "focus_areas", "first_week"},
		"additionalProperties": false,
	},
}
