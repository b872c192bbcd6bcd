package recommend

import (
	"slices"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/scoring"
)

// Rule thresholds.
const (
	PsychStrongThreshold    = 75.0
	PsychWeakThreshold      = 50.0
	TechStrongThreshold     = 70.0
	TechWeakThreshold       = 50.0
	WillStrongThreshold     = 75.0
	InterestStrongThreshold = 80.0
	InterestWeakThreshold   = 60.0
)

// Insight texts.
const (
	InsightStrongPsych = "You show strong psychological alignment with DevOps principles"
	InsightWeakPsych   = "Consider developing your systematic thinking and collaboration skills"
	InsightStrongTech  = "Your technical foundation is solid for starting DevOps learning"
	InsightWeakTech    = "Start with fundamental Linux, networking, and cloud concepts"
	InsightLowInterest = "Explore more DevOps content to develop genuine interest"
)

// Strength and weak-area labels.
const (
	StrengthProblemSolving = "Problem-solving mindset"
	StrengthTechnical      = "Technical aptitude"
	StrengthPersistence    = "Persistence and determination"
	StrengthInterest       = "Genuine interest in DevOps"

	WeakCollaboration = "Collaborative problem-solving"
	WeakTechnical     = "Technical prerequisites"
	WeakGoals         = "Goal consistency"
)

// NextStepLinuxEssentials is added ahead of the tier steps when the
// technical score is weak.
const NextStepLinuxEssentials = "Complete Linux essentials course"

// Effect is what a matching rule appends to the result. Empty fields add nothing.
type Effect struct {
	Insight  string
	Strength string
	WeakArea string
	NextStep string
}

// Rule pairs a predicate over the scores with its effect.
type Rule struct {
	Name string
	When func(s scoring.Scores) bool
	Then Effect
}

// Rules is evaluated top to bottom; every matching rule applies.
var Rules = []Rule{
	{
		Name: "strong-psychological",
		When: func(s scoring.Scores) bool { return s.Psychological >= PsychStrongThreshold },
		Then: Effect{Insight: InsightStrongPsych, Strength: StrengthProblemSolving},
	},
	{
		Name: "weak-psychological",
		When: func(s scoring.Scores) bool { return s.Psychological < PsychWeakThreshold },
		Then: Effect{Insight: InsightWeakPsych, WeakArea: WeakCollaboration},
	},
	{
		Name: "strong-technical",
		When: func(s scoring.Scores) bool { return s.Technical >= TechStrongThreshold },
		Then: Effect{Insight: InsightStrongTech, Strength: StrengthTechnical},
	},
	{
		Name: "weak-technical",
		When: func(s scoring.Scores) bool { return s.Technical < TechWeakThreshold },
		Then: Effect{Insight: InsightWeakTech, WeakArea: WeakTechnical, NextStep: NextStepLinuxEssentials},
	},
	{
		Name: "strong-will",
		When: func(s scoring.Scores) bool { return s.Wiscar.Will >= WillStrongThreshold },
		Then: Effect{Strength: StrengthPersistence},
	},
	{
		Name: "weak-will",
		When: func(s scoring.Scores) bool { return s.Wiscar.Will < WillStrongThreshold },
		Then: Effect{WeakArea: WeakGoals},
	},
	{
		Name: "strong-interest",
		When: func(s scoring.Scores) bool { return s.Wiscar.Interest >= InterestStrongThreshold },
		Then: Effect{Strength: StrengthInterest},
	},
	{
		Name: "low-interest",
		When: func(s scoring.Scores) bool { return s.Wiscar.Interest < InterestWeakThreshold },
		Then: Effect{Insight: InsightLowInterest},
	},
}

// applyRules runs rules in order against s and appends effects to r.
func applyRules(rules []Rule, s scoring.Scores, r *Result) {
	for _, rule := range rules {
		if !rule.When(s) {
			continue
		}
		e := rule.Then
		if e.Insight != "" {
			r.Insights = append(r.Insights, e.Insight)
		}
		if e.Strength != "" {
			r.Strengths = append(r.Strengths, e.Strength)
		}
		if e.WeakArea != "" {
			r.WeakAreas = append(r.WeakAreas, e.WeakArea)
		}
		if e.NextStep != "" {
			r.NextSteps = append(r.NextSteps, e.NextStep)
		}
	}
}

// Tier next steps, appended after any rule next step.
var (
	ProceedNextSteps = []string{
		"Start with AWS/Azure fundamentals",
		"Learn Git and basic CI/CD",
		"Practice with Docker containers",
	}
	ConditionalNextSteps = []string{
		"Strengthen weak areas identified",
		"Complete prerequisite courses",
		"Gain more hands-on experience",
	}
	NotRecommendedNextSteps = []string{
		"Consider related fields like QA automation",
		"Build foundational technical skills",
		"Explore system administration first",
	}
)

// TierNextSteps returns a copy of the fixed next-step list for a tier.
func TierNextSteps(t Tier) []string {
	switch t {
	case TierProceed:
		return slices.Clone(ProceedNextSteps)
	case TierConditional:
		return slices.Clone(ConditionalNextSteps)
	default:
		return slices.Clone(NotRecommendedNextSteps)
	}
}
