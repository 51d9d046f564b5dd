package domain

import "strings"

// RiskAssessment is the document-form projection of a task: flattened,
// deduplicated, and ready for rendering by the PDF layer.
type RiskAssessment struct {
	Activity          string   `json:"activity"`
	Description       string   `json:"description,omitempty"`
	Hazards           []string `json:"hazards"`
	InitialRiskScore  int      `json:"initialRiskScore"`
	ControlMeasures   []string `json:"controlMeasures"`
	Legislation       []string `json:"legislation"`
	ResidualRiskScore int      `json:"residualRiskScore"`
	Responsible       string   `json:"responsible"`

	PPE              []string `json:"ppe,omitempty"`
	Tools            []string `json:"tools,omitempty"`
	TrainingRequired []string `json:"trainingRequired,omitempty"`

	// HRCW cross-references and permit flags, populated when the request
	// supplies high-risk construction work categories.
	HRCWReferences []int    `json:"hrcwReferences,omitempty"`
	PermitRequired []string `json:"permitRequired,omitempty"`
}

// DedupKey identifies near-duplicate assessments: same activity plus the
// same hazard list.
func (r RiskAssessment) DedupKey() string {
	return r.Activity + "|" + strings.Join(r.Hazards, "|")
}

// AssessmentFromTask projects a catalog task into document form.
func AssessmentFromTask(t TaskDefinition) RiskAssessment {
	return RiskAssessment{
		Activity:          t.Activity,
		Hazards:           append([]string(nil), t.Hazards...),
		InitialRiskScore:  t.InitialRiskScore,
		ControlMeasures:   append([]string(nil), t.ControlMeasures...),
		Legislation:       append([]string(nil), t.Legislation...),
		ResidualRiskScore: t.ResidualRiskScore,
		Responsible:       t.Responsible,
		PPE:               append([]string(nil), t.PPE...),
		TrainingRequired:  append([]string(nil), t.TrainingRequired...),
	}
}

// SafetyMeasureCategory groups measures, equipment and procedures under a
// named heading (e.g. "Personal Protective Equipment").
type SafetyMeasureCategory struct {
	Category   string   `json:"category"`
	Measures   []string `json:"measures"`
	Equipment  []string `json:"equipment"`
	Procedures []string `json:"procedures"`
}

// GeneratedDocument is the complete synthesis output handed to the
// external persistence and PDF layers. It is plain structured data and is
// not persisted by this engine.
type GeneratedDocument struct {
	ID    string `json:"id"`
	Trade string `json:"trade"`
	State string `json:"state,omitempty"`

	// Source records which generation path produced the risk assessments:
	// "ai", "deterministic", or "catalog".
	Source string `json:"source"`

	RiskAssessments     []RiskAssessment        `json:"riskAssessments"`
	SafetyMeasures      []SafetyMeasureCategory `json:"safetyMeasures"`
	ComplianceCodes     []string                `json:"complianceCodes"`
	EmergencyProcedures []string                `json:"emergencyProcedures"`
	GeneralRequirements []string                `json:"generalRequirements"`
	ProjectSpecific     string                  `json:"projectSpecific,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}
