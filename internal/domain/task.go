package domain

// TaskDefinition is a curated catalog entry. Definitions are created at
// catalog load time and never mutated afterwards.
type TaskDefinition struct {
	TaskID      string
	Activity    string
	Category    string
	Subcategory string
	Trade       string

	// ApplicableToAllTrades marks a task that must be included in every
	// document regardless of the requested trade.
	ApplicableToAllTrades bool

	Hazards           []string
	InitialRiskScore  int
	ControlMeasures   []string
	Legislation       []string
	ResidualRiskScore int
	Responsible       string

	PPE              []string
	TrainingRequired []string

	// RelatedTasks references other task IDs forming a one-hop expansion
	// graph. Every referenced ID must exist in the catalog.
	RelatedTasks []string

	Frequency  Frequency
	Complexity Complexity
}

// Universal reports whether the task applies to every trade.
func (t TaskDefinition) Universal() bool {
	return t.ApplicableToAllTrades || t.Trade == "Universal"
}
