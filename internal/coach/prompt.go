package coach

import (
	"fmt"
	"strings"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
)

const systemPrompt = `You are a practical career coach for people considering a move into DevOps and cloud engineering. You receive the results of a self-assessment and write a short, honest, encouraging note. Never contradict the recommendation tier you are given. Use plain text without markdown.`

func buildUserMessage(in Input) string {
	var b strings.Builder
	r := in.Result

	fmt.Fprintf(&b, "Recommendation: %s (%s)\n", r.Recommendation, r.Recommendation.Heading())
	fmt.Fprintf(&b, "Overall score: %d/100, confidence %d%%\n", r.OverallScore, r.Confidence)

	b.WriteString("\nSection scores:\n")
	for _, sec := range catalog.AllSections() {
		fmt.Fprintf(&b, "- %s: %.0f\n", sec, in.Scores.Section(sec))
	}
	b.WriteString("\nWISCAR scores:\n")
	for _, c := range catalog.WiscarCategories() {
		fmt.Fprintf(&b, "- %s: %.0f\n", c.DisplayName(), in.Scores.Wiscar.Get(c))
	}

	writeList(&b, "Strengths", r.Strengths)
	writeList(&b, "Weak areas", r.WeakAreas)

	b.WriteString("\nBest matching roles:\n")
	for _, p := range r.CareerPaths {
		fmt.Fprintf(&b, "- %s (%d%%)\n", p.Title, p.MatchPercentage)
	}

	b.WriteString(`
Instructions:
1. Headline: one line the reader will remember.
2. Summary: explain what the scores say in 2-4 sentences. Mention the strongest and weakest area by name.
3. Focus areas: up to four, most important first, drawn from the weak areas and low scores.
4. First week: concrete, small actions that take under an hour each.`)

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "\n%s:\n", title)
	if len(items) == 0 {
		b.WriteString("- none\n")
		return
	}
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
}
