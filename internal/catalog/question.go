package catalog

// QuestionType determines how a question is answered and how its value is read.
type QuestionType string

const (
	TypeScaleRating    QuestionType = "scale-rating"
	TypeSingleChoice   QuestionType = "single-choice"
	TypeScenarioChoice QuestionType = "scenario-choice"
	TypeNumericRating  QuestionType = "numeric-rating"
)

// IsChoice reports whether answers are 0-based option indices.
func (t QuestionType) IsChoice() bool {
	return t == TypeSingleChoice || t == TypeScenarioChoice
}

// IsScale reports whether answers are values on the 1-5 scale.
// Scale-rating and numeric-rating behave identically for scoring.
func (t QuestionType) IsScale() bool {
	return t == TypeScaleRating || t == TypeNumericRating
}

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	return t.IsChoice() || t.IsScale()
}

// Section is one of the three top-level score families.
type Section string

const (
	SectionPsychological Section = "psychological"
	SectionTechnical     Section = "technical"
	SectionWiscar        Section = "wiscar"
)

// AllSections returns all sections in presentation order.
func AllSections() []Section {
	return []Section{SectionPsychological, SectionTechnical, SectionWiscar}
}

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	switch s {
	case SectionPsychological, SectionTechnical, SectionWiscar:
		return true
	}
	return false
}

// Title returns the heading shown above questions of this section.
func (s Section) Title() string {
	switch s {
	case SectionPsychological:
		return "🧠 Psychological Readiness"
	case SectionTechnical:
		return "🔧 Technical Aptitude"
	case SectionWiscar:
		return "🎯 WISCAR Framework"
	default:
		return "Assessment"
	}
}

// Category is a free-form sub-grouping. Within the wiscar section it must
// be one of the six WISCAR categories.
type Category string

const (
	CategoryWill      Category = "will"
	CategoryInterest  Category = "interest"
	CategorySkill     Category = "skill"
	CategoryCognitive Category = "cognitive"
	CategoryAbility   Category = "ability"
	CategoryRealWorld Category = "realWorld"
)

// WiscarCategories returns the six WISCAR categories in W-I-S-C-A-R order.
func WiscarCategories() []Category {
	return []Category{
		CategoryWill,
		CategoryInterest,
		CategorySkill,
		CategoryCognitive,
		CategoryAbility,
		CategoryRealWorld,
	}
}

// IsWiscar reports whether c is one of the six WISCAR categories.
func (c Category) IsWiscar() bool {
	switch c {
	case CategoryWill, CategoryInterest, CategorySkill, CategoryCognitive, CategoryAbility, CategoryRealWorld:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for a WISCAR category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryWill:
		return "Will"
	case CategoryInterest:
		return "Interest"
	case CategorySkill:
		return "Skill"
	case CategoryCognitive:
		return "Cognitive Readiness"
	case CategoryAbility:
		return "Ability to Learn"
	case CategoryRealWorld:
		return "Real-world Alignment"
	default:
		return string(c)
	}
}

// Scale bounds for scale-rating and numeric-rating questions.
const (
	ScaleMin = 1
	ScaleMax = 5
)

// ScaleLabel returns the caption for a scale value, or "" if out of range.
func ScaleLabel(v int) string {
	switch v {
	case 1:
		return "Never"
	case 2:
		return "Rarely"
	case 3:
		return "Sometimes"
	case 4:
		return "Often"
	case 5:
		return "Always"
	default:
		return ""
	}
}

// ScaleLabels are the captions shown at the two ends of a scale.
type ScaleLabels struct {
	Min string `yaml:"min"`
	Max string `yaml:"max"`
}

// Question is a single survey item. Questions are read-only once loaded.
type Question struct {
	ID       string       `yaml:"id"`
	Type     QuestionType `yaml:"type"`
	Section  Section      `yaml:"section"`
	Category Category     `yaml:"category"`
	Prompt   string       `yaml:"prompt"`
	Options  []string     `yaml:"options,omitempty"`
	Scale    *ScaleLabels `yaml:"scale,omitempty"`
	Weight   float64      `yaml:"weight"`
}

// ValueRange returns the inclusive range of answer values the question accepts.
func (q Question) ValueRange() (lo, hi int) {
	if q.Type.IsChoice() {
		return 0, len(q.Options) - 1
	}
	return ScaleMin, ScaleMax
}

// Accepts reports whether v is a valid answer value for q.
func (q Question) Accepts(v int) bool {
	lo, hi := q.ValueRange()
	return v >= lo && v <= hi
}

// Labels returns the scale captions, falling back to the agree/disagree pair.
func (q Question) Labels() ScaleLabels {
	if q.Scale != nil {
		return *q.Scale
	}
	return ScaleLabels{Min: "Strongly Disagree", Max: "Strongly Agree"}
}
