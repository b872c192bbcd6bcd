// Package report renders a finished assessment for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/coach"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/recommend"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/scoring"
)

// Format is an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json, yaml or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// Report is everything rendered for one completed session.
type Report struct {
	SessionID string           `json:"sessionId,omitempty" yaml:"sessionId,omitempty"`
	Answered  int              `json:"answered" yaml:"answered"`
	Total     int              `json:"total" yaml:"total"`
	Scores    scoring.Scores   `json:"scores" yaml:"scores"`
	Result    recommend.Result `json:"result" yaml:"result"`
	Coach     *coach.Note      `json:"coach,omitempty" yaml:"coach,omitempty"`
}

// Render writes r to w in the given format.
func Render(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		_, err := io.WriteString(w, Text(r))
		return err
	}
	return fmt.Errorf("unknown format %q", f)
}

const rule = "\u2500"

// Text renders r as plain text.
func Text(r Report) string {
	var b strings.Builder
	res := r.Result

	heading := "DevOps Career Fit: " + res.Recommendation.Heading()
	b.WriteString(heading + "\n")
	b.WriteString(strings.Repeat(rule, len([]rune(heading))) + "\n")
	fmt.Fprintf(&b, "%-14s %d/100\n", "Overall score", res.OverallScore)
	fmt.Fprintf(&b, "%-14s %d%%\n", "Confidence", res.Confidence)
	if r.Total > 0 {
		fmt.Fprintf(&b, "%-14s %d/%d\n", "Answered", r.Answered, r.Total)
	}

	b.WriteString("\nSection scores\n")
	for _, sec := range catalog.AllSections() {
		writeScore(&b, SectionName(sec), r.Scores.Section(sec))
	}

	b.WriteString("\nWISCAR breakdown\n")
	for _, c := range catalog.WiscarCategories() {
		writeScore(&b, c.DisplayName(), r.Scores.Wiscar.Get(c))
	}

	writeBullets(&b, "Strengths", res.Strengths)
	writeBullets(&b, "Areas to develop", res.WeakAreas)

	b.WriteString("\nCareer paths\n")
	for _, p := range res.CareerPaths {
		fmt.Fprintf(&b, "  %-26s %3d%%  %s\n", p.Title, p.MatchPercentage, p.Description)
	}

	writeBullets(&b, "Insights", res.Insights)

	b.WriteString("\nNext steps\n")
	for i, s := range res.NextSteps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
	}

	if n := r.Coach; n != nil {
		b.WriteString("\nCoach note\n")
		fmt.Fprintf(&b, "  %s\n", n.Headline)
		if n.Summary != "" {
			fmt.Fprintf(&b, "  %s\n", n.Summary)
		}
		writeBullets(&b, "Focus areas", n.FocusAreas)
		writeBullets(&b, "First week", n.FirstWeek)
	}
	return b.String()
}

// SectionName is the section title without its leading emoji.
func SectionName(s catalog.Section) string {
	t := s.Title()
	if _, rest, ok := strings.Cut(t, " "); ok {
		return rest
	}
	return t
}

// Bar draws score (0-100) as a fixed-width bar.
func Bar(score float64, width int) string {
	filled := int(score/100*float64(width) + 0.5)
	filled = min(max(filled, 0), width)
	return strings.Repeat("\u2588", filled) + strings.Repeat("\u2591", width-filled)
}

func writeScore(b *strings.Builder, name string, score float64) {
	fmt.Fprintf(b, "  %-24s %s %3.0f\n", name, Bar(score, 20), score)
}

func writeBullets(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "  \u2022 %s\n", it)
	}
}
