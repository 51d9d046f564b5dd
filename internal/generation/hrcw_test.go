package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safework/swmsgen/internal/domain"
)

func TestHRCWByID(t *testing.T) {
	cat, ok := HRCWByID(6)
	require.True(t, ok)
	assert.Equal(t, "Work in or near a confined space", cat.Name)
	assert.Contains(t, cat.Permits, "Confined space entry permit")

	_, ok = HRCWByID(19)
	assert.False(t, ok, "regulator defines exactly 18 categories")
	_, ok = HRCWByID(0)
	assert.False(t, ok)
}

func TestApplyHRCW_StampsMatchingTasksOnly(t *testing.T) {
	assessments := []domain.RiskAssessment{
		{
			Activity: "Subfloor Access and Repair",
			Hazards:  []string{"Restricted movement and poor air quality in the subfloor void"},
		},
		{
			Activity: "Wall Framing",
			Hazards:  []string{"Nail gun discharge causing penetrating injuries"},
		},
	}

	ApplyHRCW(assessments, []int{6})

	assert.Equal(t, []int{6}, assessments[0].HRCWReferences)
	assert.Contains(t, assessments[0].PermitRequired, "Confined space entry permit")
	assert.Empty(t, assessments[1].HRCWReferences, "framing text has no confined-space keyword")
	assert.Empty(t, assessments[1].PermitRequired)
}

func TestApplyHRCW_MultipleCategoriesNoDuplicates(t *testing.T) {
	assessments := []domain.RiskAssessment{
		{
			Activity: "Roof Battens Near Live Switchboard",
			Hazards: []string{
				"Fall from the roof edge",
				"Contact with energised conductors",
			},
		},
	}

	ApplyHRCW(assessments, []int{1, 11, 1})

	assert.Equal(t, []int{1, 11}, assessments[0].HRCWReferences)
	// permits from both categories, each listed once
	assert.Contains(t, assessments[0].PermitRequired, "Working at heights permit")
	assert.Contains(t, assessments[0].PermitRequired, "Energised electrical work permit")
	assert.Len(t, assessments[0].PermitRequired, 2)
}

func TestApplyHRCW_UnknownCategoryIgnored(t *testing.T) {
	assessments := []domain.RiskAssessment{{Activity: "Trench Excavation", Hazards: []string{"collapse"}}}
	ApplyHRCW(assessments, []int{42})
	assert.Empty(t, assessments[0].HRCWReferences)
}

func TestApplyHRCW_NoCategories(t *testing.T) {
	assessments := []domain.RiskAssessment{{Activity: "Trench Excavation"}}
	ApplyHRCW(assessments, nil)
	assert.Empty(t, assessments[0].HRCWReferences)
}
