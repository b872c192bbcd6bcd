package recommend

import (
	"cmp"
	"math"
	"slices"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/scoring"
)

// Tier thresholds and confidence adjustments.
const (
	ProceedThreshold     = 80.0
	ConditionalThreshold = 60.0

	ConfidenceAdjust = 10.0
	MaxConfidence    = 95.0
	MinConfidence    = 20.0
)

// Overall returns the unweighted mean of psychological, technical and the
// WISCAR average.
func Overall(s scoring.Scores) float64 {
	return (s.Psychological + s.Technical + s.Wiscar.Average()) / 3
}

// TierFor partitions an overall score at 60 and 80.
func TierFor(overall float64) Tier {
	switch {
	case overall >= ProceedThreshold:
		return TierProceed
	case overall >= ConditionalThreshold:
		return TierConditional
	default:
		return TierNotRecommended
	}
}

// Confidence returns the unrounded confidence for an overall score and tier.
func Confidence(overall float64, t Tier) float64 {
	switch t {
	case TierProceed:
		return math.Min(MaxConfidence, overall+ConfidenceAdjust)
	case TierConditional:
		return overall
	default:
		return math.Max(MinConfidence, overall-ConfidenceAdjust)
	}
}

type pathSpec struct {
	title       string
	description string
	match       func(s scoring.Scores, overall float64) float64
}

// careerPaths is in tie-break order.
var careerPaths = []pathSpec{
	{
		title:       "Cloud DevOps Engineer",
		description: "Build and maintain CI/CD pipelines, automate deployments",
		match:       func(_ scoring.Scores, overall float64) float64 { return overall },
	},
	{
		title:       "Site Reliability Engineer",
		description: "Ensure system reliability, performance, and scalability",
		match: func(s scoring.Scores, _ float64) float64 {
			return (s.Technical + s.Wiscar.Cognitive + s.Wiscar.Will) / 3
		},
	},
	{
		title:       "Platform Engineer",
		description: "Build internal platforms and developer tools",
		match: func(s scoring.Scores, _ float64) float64 {
			return (s.Technical + s.Wiscar.Skill + s.Psychological) / 3
		},
	},
	{
		title:       "Infrastructure Engineer",
		description: "Manage cloud infrastructure and automation",
		match: func(s scoring.Scores, _ float64) float64 {
			return (s.Technical + s.Wiscar.RealWorld) / 2
		},
	},
}

// CareerPaths scores the four fixed paths and sorts them by match,
// descending, keeping the fixed order on ties.
func CareerPaths(s scoring.Scores, overall float64) []CareerPath {
	out := make([]CareerPath, len(careerPaths))
	for i, p := range careerPaths {
		out[i] = CareerPath{
			Title:           p.title,
			MatchPercentage: int(math.Round(p.match(s, overall))),
			Description:     p.description,
		}
	}
	slices.SortStableFunc(out, func(a, b CareerPath) int {
		return cmp.Compare(b.MatchPercentage, a.MatchPercentage)
	})
	return out
}

// Derive builds the Result for a set of scores. It is a pure function.
func Derive(s scoring.Scores) Result {
	overall := Overall(s)
	tier := TierFor(overall)

	r := Result{
		OverallScore:   int(math.Round(overall)),
		Confidence:     int(math.Round(Confidence(overall, tier))),
		Recommendation: tier,
		Insights:       []string{},
		NextSteps:      []string{},
		WeakAreas:      []string{},
		Strengths:      []string{},
	}

	applyRules(Rules, s, &r)
	r.NextSteps = append(r.NextSteps, TierNextSteps(tier)...)
	r.CareerPaths = CareerPaths(s, overall)

	return r
}
