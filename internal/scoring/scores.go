package scoring

import "github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"

// Scores holds the eight bucket scores, each in [0, 100].
type Scores struct {
	Psychological float64      `json:"psychological" yaml:"psychological"`
	Technical     float64      `json:"technical" yaml:"technical"`
	Wiscar        WiscarScores `json:"wiscar" yaml:"wiscar"`
}

// WiscarScores holds one score per WISCAR category.
type WiscarScores struct {
	Will      float64 `json:"will" yaml:"will"`
	Interest  float64 `json:"interest" yaml:"interest"`
	Skill     float64 `json:"skill" yaml:"skill"`
	Cognitive float64 `json:"cognitive" yaml:"cognitive"`
	Ability   float64 `json:"ability" yaml:"ability"`
	RealWorld float64 `json:"realWorld" yaml:"realWorld"`
}

// Average returns the unweighted mean of the six category scores.
func (w WiscarScores) Average() float64 {
	return (w.Will + w.Interest + w.Skill + w.Cognitive + w.Ability + w.RealWorld) / 6
}

// Get returns the score for a WISCAR category, or 0 for anything else.
func (w WiscarScores) Get(c catalog.Category) float64 {
	switch c {
	case catalog.CategoryWill:
		return w.Will
	case catalog.CategoryInterest:
		return w.Interest
	case catalog.CategorySkill:
		return w.Skill
	case catalog.CategoryCognitive:
		return w.Cognitive
	case catalog.CategoryAbility:
		return w.Ability
	case catalog.CategoryRealWorld:
		return w.RealWorld
	}
	return 0
}

func (w *WiscarScores) set(c catalog.Category, v float64) {
	switch c {
	case catalog.CategoryWill:
		w.Will = v
	case catalog.CategoryInterest:
		w.Interest = v
	case catalog.CategorySkill:
		w.Skill = v
	case catalog.CategoryCognitive:
		w.Cognitive = v
	case catalog.CategoryAbility:
		w.Ability = v
	case catalog.CategoryRealWorld:
		w.RealWorld = v
	}
}

// Section returns the score of a top-level section. The wiscar section
// reads as the WISCAR average.
func (s Scores) Section(sec catalog.Section) float64 {
	switch sec {
	case catalog.SectionPsychological:
		return s.Psychological
	case catalog.SectionTechnical:
		return s.Technical
	case catalog.SectionWiscar:
		return s.Wiscar.Average()
	}
	return 0
}
