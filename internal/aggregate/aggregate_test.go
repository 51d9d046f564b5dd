package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safework/swmsgen/internal/catalog"
	"github.com/safework/swmsgen/internal/domain"
	"github.com/safework/swmsgen/internal/resolver"
)

func resolvedTasks(t *testing.T, selected []string, trade string) []domain.TaskDefinition {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return resolver.New(c).Resolve(selected, trade).Tasks
}

func TestAggregate_DeduplicatesByActivityAndHazards(t *testing.T) {
	// Site access appears twice in this resolution (exact match plus
	// universal union); the document must carry it once.
	tasks := resolvedTasks(t, []string{"Site Access and Egress"}, "Carpentry")
	doc := Aggregate(tasks, "Carpentry", "NSW")

	n := 0
	for _, ra := range doc.RiskAssessments {
		if ra.Activity == "Site Access and Egress" {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestAggregate_Idempotent(t *testing.T) {
	tasks := resolvedTasks(t, []string{"bathroom tiling"}, "Tiling & Waterproofing")

	once := Aggregate(tasks, "Tiling & Waterproofing", "NSW")
	doubled := Aggregate(append(append([]domain.TaskDefinition{}, tasks...), tasks...), "Tiling & Waterproofing", "NSW")

	require.Equal(t, len(once.RiskAssessments), len(doubled.RiskAssessments),
		"aggregating the same tasks twice must not grow the document")
	assert.Equal(t, once.ComplianceCodes, doubled.ComplianceCodes)
}

func TestAggregate_FirstOccurrenceWins(t *testing.T) {
	a := domain.TaskDefinition{
		TaskID: "a", Activity: "Shared", Hazards: []string{"h"},
		ControlMeasures: []string{"first"}, InitialRiskScore: 8, ResidualRiskScore: 3,
		Responsible: "Supervisor",
	}
	b := a
	b.TaskID = "b"
	b.ControlMeasures = []string{"second"}

	doc := Aggregate([]domain.TaskDefinition{a, b}, "Carpentry", "NSW")
	require.Len(t, doc.RiskAssessments, 1)
	assert.Equal(t, []string{"first"}, doc.RiskAssessments[0].ControlMeasures,
		"the earlier task must survive, the later near-duplicate is dropped")
}

func TestAggregate_ComplianceCodesSortedSet(t *testing.T) {
	tasks := resolvedTasks(t, []string{"Tile Cutting", "Surface Preparation"}, "Tiling & Waterproofing")
	doc := Aggregate(tasks, "Tiling & Waterproofing", "NSW")

	require.NotEmpty(t, doc.ComplianceCodes)
	seen := map[string]bool{}
	for i, code := range doc.ComplianceCodes {
		assert.False(t, seen[code], "duplicate compliance code %q", code)
		seen[code] = true
		if i > 0 {
			assert.LessOrEqual(t, doc.ComplianceCodes[i-1], code, "codes emitted sorted")
		}
	}

	// Superset of the legislation of every retained assessment.
	for _, ra := range doc.RiskAssessments {
		for _, code := range ra.Legislation {
			assert.True(t, seen[code], "code %q from %q missing from union", code, ra.Activity)
		}
	}
}

func TestAggregate_RiskMonotonicity(t *testing.T) {
	tasks := resolvedTasks(t, []string{"Roof Truss and Batten Installation", "Scaffold Erection"}, "Carpentry")
	doc := Aggregate(tasks, "Carpentry", "QLD")

	require.NotEmpty(t, doc.RiskAssessments)
	for _, ra := range doc.RiskAssessments {
		assert.LessOrEqual(t, ra.ResidualRiskScore, ra.InitialRiskScore, "activity %q", ra.Activity)
		assert.NotEmpty(t, ra.Hazards, "activity %q must carry at least one hazard", ra.Activity)
		assert.NotEmpty(t, ra.ControlMeasures, "activity %q must carry at least one control", ra.Activity)
	}
}

func TestAggregate_CrossPathDuplicateCollapses(t *testing.T) {
	// Surface preparation reached by exact match and again through the wet
	// area task's related graph: exactly one assessment must survive.
	tasks := resolvedTasks(t, []string{"Surface Preparation", "bathroom tiling"}, "Tiling & Waterproofing")
	doc := Aggregate(tasks, "Tiling & Waterproofing", "NSW")

	n := 0
	for _, ra := range doc.RiskAssessments {
		if ra.Activity == "Surface Preparation" {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestSafetyMeasures_BasePlusTrade(t *testing.T) {
	measures := SafetyMeasures("Electrical")
	require.Len(t, measures, 3)
	assert.Equal(t, "Personal Protective Equipment", measures[0].Category)
	assert.Equal(t, "Emergency Equipment", measures[1].Category)
	assert.Equal(t, "Electrical Safety", measures[2].Category)
}

func TestSafetyMeasures_UnknownTradeBaseOnly(t *testing.T) {
	measures := SafetyMeasures("Basket Weaving")
	require.Len(t, measures, 2)
}

func TestEmergencyProcedures_StateAndTrade(t *testing.T) {
	procs := EmergencyProcedures("Electrical", "VIC")
	joined := ""
	for _, p := range procs {
		joined += p + "\n"
	}
	assert.Contains(t, joined, "WorkSafe Victoria")
	assert.Contains(t, joined, "electric shock")

	generic := EmergencyProcedures("Tiling & Waterproofing", "ZZ")
	assert.Contains(t, generic[3], "the relevant state WHS regulator")
}

func TestGeneralRequirements_Deterministic(t *testing.T) {
	a := GeneralRequirements("Carpentry", "NSW")
	b := GeneralRequirements("Carpentry", "NSW")
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestMergeAssessments(t *testing.T) {
	doc := Aggregate(resolvedTasks(t, nil, "Carpentry"), "Carpentry", "NSW")
	before := len(doc.RiskAssessments)

	extra := []domain.RiskAssessment{
		{
			Activity: "Custom Joinery Install", Hazards: []string{"Pinch points when fitting carcasses"},
			ControlMeasures: []string{"Two-person lifts for assembled units"},
			Legislation:     []string{"Work Health and Safety Act 2011 s19"},
			InitialRiskScore: 6, ResidualRiskScore: 2, Responsible: "Carpenter",
		},
		doc.RiskAssessments[0], // duplicate of an existing entry
	}
	MergeAssessments(doc, extra)

	assert.Len(t, doc.RiskAssessments, before+1, "only the new assessment is merged")
	assert.Contains(t, doc.ComplianceCodes, "Work Health and Safety Act 2011 s19")
}
