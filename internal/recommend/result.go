package recommend

import "slices"

// Tier is the overall recommendation.
type Tier string

const (
	TierProceed        Tier = "proceed"
	TierConditional    Tier = "conditional"
	TierNotRecommended Tier = "not-recommended"
)

// Heading returns the report headline for a tier.
func (t Tier) Heading() string {
	switch t {
	case TierProceed:
		return "Strong Fit - Recommended"
	case TierConditional:
		return "Moderate Fit - Conditional"
	case TierNotRecommended:
		return "Poor Fit - Not Recommended"
	default:
		return string(t)
	}
}

// CareerPath is one suggested role and how well the scores match it.
type CareerPath struct {
	Title           string `json:"title" yaml:"title"`
	MatchPercentage int    `json:"matchPercentage" yaml:"matchPercentage"`
	Description     string `json:"description" yaml:"description"`
}

// Result is the report derived once at completion. Treat it as read-only;
// use Clone before handing it to code that may modify the slices.
type Result struct {
	OverallScore   int          `json:"overallScore" yaml:"overallScore"`
	Confidence     int          `json:"confidence" yaml:"confidence"`
	Recommendation Tier         `json:"recommendation" yaml:"recommendation"`
	Insights       []string     `json:"insights" yaml:"insights"`
	NextSteps      []string     `json:"nextSteps" yaml:"nextSteps"`
	CareerPaths    []CareerPath `json:"careerPaths" yaml:"careerPaths"`
	WeakAreas      []string     `json:"weakAreas" yaml:"weakAreas"`
	Strengths      []string     `json:"strengths" yaml:"strengths"`
}

// Clone returns a deep copy of r.
func (r Result) Clone() Result {
	r.Insights = slices.Clone(r.Insights)
	r.NextSteps = slices.Clone(r.NextSteps)
	r.CareerPaths = slices.Clone(r.CareerPaths)
	r.WeakAreas = slices.Clone(r.WeakAreas)
	r.Strengths = slices.Clone(r.Strengths)
	return r
}
