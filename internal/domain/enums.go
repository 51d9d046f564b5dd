package domain

type Frequency string

const (
	FrequencyDaily        Frequency = "daily"
	FrequencyWeekly       Frequency = "weekly"
	FrequencyMonthly      Frequency = "monthly"
	FrequencyProjectBased Frequency = "project-based"
)

type Complexity string

const (
	ComplexityBasic        Complexity = "basic"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
	ComplexitySpecialist   Complexity = "specialist"
)

// ValidFrequencies is the canonical set of accepted frequency strings.
var ValidFrequencies = map[string]bool{
	"daily": true, "weekly": true, "monthly": true, "project-based": true,
}

// ValidComplexities is the canonical set of accepted complexity strings.
var ValidComplexities = map[string]bool{
	"basic": true, "intermediate": true, "advanced": true, "specialist": true,
}

// ControlLevel is a hierarchy-of-controls tier. Lower rank means a more
// effective control: elimination outranks substitution, and so on down
// to PPE.
type ControlLevel string

const (
	ControlElimination    ControlLevel = "elimination"
	ControlSubstitution   ControlLevel = "substitution"
	ControlIsolation      ControlLevel = "isolation"
	ControlEngineering    ControlLevel = "engineering"
	ControlAdministrative ControlLevel = "administrative"
	ControlPPE            ControlLevel = "ppe"
)

// ControlHierarchy lists control levels from most to least preferred.
var ControlHierarchy = []ControlLevel{
	ControlElimination,
	ControlSubstitution,
	ControlIsolation,
	ControlEngineering,
	ControlAdministrative,
	ControlPPE,
}

// Rank returns the hierarchy position of a control level (0 = elimination).
// Unknown levels rank below PPE.
func (c ControlLevel) Rank() int {
	for i, level := range ControlHierarchy {
		if level == c {
			return i
		}
	}
	return len(ControlHierarchy)
}

// Risk scores use a fixed 1-16 scale. Observed catalog data carries values
// such as 3, 8, 12 and 16; the scale is bounded, not derived from a
// likelihood x consequence product.
const (
	MinRiskScore = 1
	MaxRiskScore = 16
)

// ValidRiskScore reports whether n falls on the accepted risk scale.
func ValidRiskScore(n int) bool {
	return n >= MinRiskScore && n <= MaxRiskScore
}

// RiskBand labels a score for display: 1-3 low, 4-6 moderate, 7-11 high,
// 12-16 extreme.
func RiskBand(score int) string {
	switch {
	case score <= 3:
		return "low"
	case score <= 6:
		return "moderate"
	case score <= 11:
		return "high"
	default:
		return "extreme"
	}
}
