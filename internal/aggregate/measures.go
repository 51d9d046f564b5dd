package aggregate

import "github.com/safework/swmsgen/internal/domain"

// baseCategories are present in every document regardless of trade.
func baseCategories() []domain.SafetyMeasureCategory {
	return []domain.SafetyMeasureCategory{
		{
			Category: "Personal Protective Equipment",
			Measures: []string{
				"All workers wear minimum site PPE at all times",
				"Task-specific PPE worn as identified in each risk assessment",
				"Damaged PPE replaced before work continues",
			},
			Equipment: []string{
				"Steel-capped boots", "High-visibility vest", "Safety glasses", "Gloves",
			},
			Procedures: []string{
				"PPE condition checked at pre-start",
				"PPE requirements reviewed when tasks change",
			},
		},
		{
			Category: "Emergency Equipment",
			Measures: []string{
				"First aid kit stocked and accessible",
				"Fire extinguisher suitable for the work on hand",
			},
			Equipment: []string{
				"First aid kit", "Fire extinguisher", "Emergency contact list",
			},
			Procedures: []string{
				"Emergency equipment locations communicated at induction",
				"Equipment inspected monthly and after any use",
			},
		},
	}
}

// tradeCategories maps a trade to its additional safety measure
// categories. Unknown trades receive only the base categories.
var tradeCategories = map[string][]domain.SafetyMeasureCategory{
	"Tiling & Waterproofing": {
		{
			Category: "Dust and Chemical Control",
			Measures: []string{
				"Wet cutting or on-tool extraction for all tile cutting",
				"SDS available for all adhesives, grouts and membranes",
				"Mechanical ventilation during membrane curing",
			},
			Equipment: []string{
				"Wet saw", "M-class vacuum extractor", "Portable ventilation fan",
			},
			Procedures: []string{
				"Silica control plan reviewed before cutting starts",
				"Chemical register kept current on site",
			},
		},
	},
	"Carpentry": {
		{
			Category: "Height Safety",
			Measures: []string{
				"Edge protection installed before work above 2 metres",
				"Harnesses inspected before each use",
				"Rescue plan in place before harness-dependent work",
			},
			Equipment: []string{
				"Edge protection panels", "Full-body harnesses", "Rated anchor points",
			},
			Procedures: []string{
				"Scaffold inspected and tagged before use",
				"Fall protection reviewed at each level change",
			},
		},
	},
	"Electrical": {
		{
			Category: "Electrical Safety",
			Measures: []string{
				"Isolation and lockout applied before conductor work",
				"Test for dead at the point of work",
				"All portable equipment protected by tested RCDs",
			},
			Equipment: []string{
				"Lockout kit", "Voltage tester", "Insulated tools", "RCD-protected boards",
			},
			Procedures: []string{
				"Isolation verified by a second worker for HV or complex boards",
				"Test-and-tag register kept current",
			},
		},
	},
}

// SafetyMeasures returns the base categories plus the trade-specific set.
func SafetyMeasures(trade string) []domain.SafetyMeasureCategory {
	out := baseCategories()
	out = append(out, tradeCategories[trade]...)
	return out
}
