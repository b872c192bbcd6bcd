package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/report"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/components"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/theme"
)

const labelWidth = 24

// render builds the full report at content width cw.
func (s *ResultsScreen) render(cw int) string {
	res := s.opts.Result
	var sections []string

	headline := theme.TierColor(string(res.Recommendation)).
		Render("DevOps Career Fit: " + res.Recommendation.Heading())
	stats := fmt.Sprintf("Overall score %d/100    Confidence %d%%", res.OverallScore, res.Confidence)
	if s.opts.Total > 0 {
		stats += fmt.Sprintf("    Answered %d/%d", s.opts.Answered, s.opts.Total)
	}
	sections = append(sections, headline+"\n"+theme.Body.Render(stats))

	var bars []string
	for _, sec := range catalog.AllSections() {
		bars = append(bars, scoreBar(report.SectionName(sec), s.opts.Scores.Section(sec), cw))
	}
	sections = append(sections, block("Section scores", strings.Join(bars, "\n")))

	bars = bars[:0]
	for _, c := range catalog.WiscarCategories() {
		bars = append(bars, scoreBar(c.DisplayName(), s.opts.Scores.Wiscar.Get(c), cw))
	}
	sections = append(sections, block("WISCAR breakdown", strings.Join(bars, "\n")))

	if len(res.Strengths) > 0 {
		sections = append(sections, block("Strengths", bullets(res.Strengths, theme.Answered)))
	}
	if len(res.WeakAreas) > 0 {
		sections = append(sections, block("Areas to develop", bullets(res.WeakAreas, theme.Selected)))
	}

	var paths []string
	for _, p := range res.CareerPaths {
		paths = append(paths,
			theme.Body.Bold(true).Render(fmt.Sprintf("%-*s %3d%%", labelWidth+2, p.Title, p.MatchPercentage))+"\n"+
				theme.Dim.Render("  "+p.Description))
	}
	sections = append(sections, block("Career paths", strings.Join(paths, "\n")))

	if len(res.Insights) > 0 {
		sections = append(sections, block("Insights", bullets(res.Insights, theme.Body)))
	}

	var steps []string
	for i, step := range res.NextSteps {
		steps = append(steps, theme.Body.Render(fmt.Sprintf("%d. %s", i+1, step)))
	}
	sections = append(sections, block("Next steps", strings.Join(steps, "\n")))

	if c := s.coachSection(); c != "" {
		sections = append(sections, block("Coach note", c))
	}

	return lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n"))
}

func (s *ResultsScreen) coachSection() string {
	switch {
	case s.opts.Coach == nil:
		return ""
	case s.loading:
		return s.spin.View() + theme.Hint.Render(" Writing your coaching note...")
	case s.noteErr != nil:
		return theme.Dim.Render("Coaching note unavailable right now.")
	case s.note == nil:
		return ""
	}

	n := s.note
	parts := []string{theme.Body.Bold(true).Render(n.Headline)}
	if n.Summary != "" {
		parts = append(parts, theme.Body.Render(n.Summary))
	}
	if len(n.FocusAreas) > 0 {
		parts = append(parts, theme.Dim.Render("Focus areas"), bullets(n.FocusAreas, theme.Body))
	}
	if len(n.FirstWeek) > 0 {
		parts = append(parts, theme.Dim.Render("First week"), bullets(n.FirstWeek, theme.Body))
	}
	return strings.Join(parts, "\n")
}

func block(title, body string) string {
	return theme.Heading.Render(title) + "\n" + body
}

func bullets(items []string, style lipgloss.Style) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = style.Render("• " + it)
	}
	return strings.Join(lines, "\n")
}

func scoreBar(label string, score float64, cw int) string {
	return components.NewProgressBar(fmt.Sprintf("%-*s", labelWidth, label), score/100, true, cw).View()
}
