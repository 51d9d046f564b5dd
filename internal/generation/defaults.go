package generation

// tradeDefaults fill sub-fields the generator omitted. Every trade gets a
// usable baseline; specific trades add their characteristic items.
type tradeDefaults struct {
	hazards  []string
	controls []string
	ppe      []string
	tools    []string
	training []string
}

var genericDefaults = tradeDefaults{
	hazards: []string{
		"Manual handling of materials and equipment during the task causing musculoskeletal strain",
	},
	controls: []string{
		"Complete a pre-start check of the work area and equipment",
		"Follow the safe work procedure discussed at the pre-start briefing",
	},
	ppe:      []string{"Steel-capped boots", "High-visibility vest", "Safety glasses", "Gloves"},
	tools:    []string{"Hand tools"},
	training: []string{"White Card (general construction induction)"},
}

var tradeDefaultsTable = map[string]tradeDefaults{
	"Tiling & Waterproofing": {
		hazards: []string{
			"Crystalline silica dust from cutting tiles in the work area causing lung disease",
			"Skin contact with cement-based adhesives during application causing dermatitis",
		},
		controls: []string{
			"Use wet cutting or on-tool extraction for all tile cutting",
			"Ventilate enclosed areas while adhesives and membranes cure",
			"Wear a P2 respirator where extraction cannot capture all dust",
		},
		ppe:      []string{"P2 respirator", "Safety glasses", "Nitrile gloves", "Knee pads"},
		tools:    []string{"Wet saw", "Tile cutter", "Notched trowel", "Mixing drill"},
		training: []string{"White Card (general construction induction)", "Silica awareness training"},
	},
	"Carpentry": {
		hazards: []string{
			"Contact with rotating blades and nail gun discharge during framing causing penetrating injuries",
			"Falls from incomplete structures while fixing at height causing serious injury",
		},
		controls: []string{
			"Keep guards fitted to all saws and fit sequential triggers to nail guns",
			"Install edge protection before work above 2 metres",
		},
		ppe:      []string{"Safety glasses", "Hearing protection", "Steel-capped boots", "Gloves"},
		tools:    []string{"Circular saw", "Nail gun", "Drill driver", "Hand tools"},
		training: []string{"White Card (general construction induction)", "Working at heights (RIIWHS204E)"},
	},
	"Electrical": {
		hazards: []string{
			"Contact with energised conductors during installation work causing electric shock or arc flash",
		},
		controls: []string{
			"Isolate, lock out and test for dead before touching conductors",
			"Use insulated tools rated for the voltage present",
		},
		ppe:      []string{"Insulated gloves", "Safety glasses", "Arc-rated clothing"},
		tools:    []string{"Voltage tester", "Insulated hand tools", "Cable rods"},
		training: []string{"Electrical licence", "CPR and LVR refresher"},
	},
}

func defaultsForTrade(trade string) tradeDefaults {
	if d, ok := tradeDefaultsTable[trade]; ok {
		return d
	}
	return genericDefaults
}
