package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fallback document must always be directly usable: at least four
// activities, each carrying hazards and controls, whatever the input.
func TestFallback_MinimumViability(t *testing.T) {
	tests := []struct {
		name        string
		trade       string
		description string
	}{
		{"empty everything", "", ""},
		{"unknown trade", "Basket Weaving", "weave baskets near the river"},
		{"rich description", "Tiling & Waterproofing", "bathroom tiling and waterproofing with some demolition"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := Fallback(tc.trade, tc.description, "", "NSW", nil)
			require.GreaterOrEqual(t, len(doc.RiskAssessments), minFallbackActivities)
			for _, ra := range doc.RiskAssessments {
				assert.NotEmpty(t, ra.Hazards, "activity %q", ra.Activity)
				assert.NotEmpty(t, ra.ControlMeasures, "activity %q", ra.Activity)
				assert.NotEmpty(t, ra.PPE, "activity %q", ra.Activity)
				assert.LessOrEqual(t, ra.ResidualRiskScore, ra.InitialRiskScore)
			}
			assert.NotEmpty(t, doc.EmergencyProcedures)
			assert.NotEmpty(t, doc.GeneralRequirements)
			assert.NotEmpty(t, doc.ComplianceCodes)
			assert.Equal(t, "deterministic", doc.Source)
		})
	}
}

func TestFallback_TriggersFromDescription(t *testing.T) {
	doc := Fallback("Tiling & Waterproofing", "strip out the old bathroom, waterproof and retile", "", "NSW", nil)

	names := map[string]bool{}
	for _, ra := range doc.RiskAssessments {
		names[ra.Activity] = true
	}
	assert.True(t, names["Tile Cutting and Fixing"], "trade name carries the tiling trigger")
	assert.True(t, names["Waterproof Membrane Application"])
	assert.True(t, names["Bathroom and Wet Area Works"])
	assert.True(t, names["Strip-Out and Removal of Existing Finishes"])
}

func TestFallback_TradeNameAloneTriggers(t *testing.T) {
	doc := Fallback("Carpentry", "", "", "QLD", nil)
	names := map[string]bool{}
	for _, ra := range doc.RiskAssessments {
		names[ra.Activity] = true
	}
	assert.True(t, names["Timber Framing and Fixing"], "trade name is scanned for triggers too")
}

// Deterministic apart from the document identifier.
func TestFallback_Deterministic(t *testing.T) {
	a := Fallback("Electrical", "switchboard upgrade", "occupied house", "VIC", []int{11})
	b := Fallback("Electrical", "switchboard upgrade", "occupied house", "VIC", []int{11})

	a.ID, b.ID = "", ""
	assert.Equal(t, a, b)
}

func TestFallback_EquipmentByTrade(t *testing.T) {
	doc := Fallback("Electrical", "wiring rough-in", "", "NSW", nil)

	var found bool
	for _, cat := range doc.SafetyMeasures {
		if cat.Category == "Plant and Equipment" {
			found = true
			assert.Contains(t, cat.Equipment, "Voltage tester")
		}
	}
	assert.True(t, found, "trade-keyed equipment category expected")
}

func TestFallback_HRCWStamped(t *testing.T) {
	doc := Fallback("Carpentry", "excavation for footings and trenching", "", "NSW", []int{7})

	var stamped bool
	for _, ra := range doc.RiskAssessments {
		if len(ra.HRCWReferences) > 0 {
			stamped = true
			assert.Contains(t, ra.HRCWReferences, 7)
			assert.NotEmpty(t, ra.PermitRequired)
		}
	}
	assert.True(t, stamped, "a trench activity must carry the declared HRCW category")
}

func TestFallback_PaddingStopsAtMinimum(t *testing.T) {
	doc := Fallback("", "", "", "NSW", nil)
	assert.Len(t, doc.RiskAssessments, minFallbackActivities,
		"no triggers means exactly the padded minimum")
}
