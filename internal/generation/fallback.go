package generation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/safework/swmsgen/internal/aggregate"
	"github.com/safework/swmsgen/internal/domain"
)

// minFallbackActivities is the minimum viable document size: the fallback
// never returns fewer activities than this.
const minFallbackActivities = 4

// activityBlock is one hand-authored fallback entry. A block fires when
// any of its trigger keywords appears in the description or trade name.
type activityBlock struct {
	triggers   []string
	assessment domain.RiskAssessment
}

// fallbackBlocks is the declarative trigger table consulted by Fallback.
// Order matters: blocks fire in declaration order so output is stable.
var fallbackBlocks = []activityBlock{
	{
		triggers: []string{"tiling", "tile"},
		assessment: domain.RiskAssessment{
			Activity:    "Tile Cutting and Fixing",
			Description: "Cutting, laying and grouting of wall and floor tiles",
			Hazards: []string{
				"Crystalline silica dust from dry cutting tiles in the work area causing irreversible lung disease",
				"Contact with rotating saw blades while cutting offcuts causing lacerations",
			},
			InitialRiskScore: 16, ResidualRiskScore: 4,
			ControlMeasures: []string{
				"Use a wet saw in preference to hand-held dry cutting",
				"Fit water suppression and keep guards in place on all saws",
				"Wear a P2 respirator and hearing protection while cutting",
			},
			Legislation:      []string{"Work Health and Safety Regulation 2011 r49A (crystalline silica)"},
			Responsible:      "Leading Hand Tiler",
			PPE:              []string{"P2 respirator", "Hearing protection", "Safety glasses", "Cut-resistant gloves"},
			Tools:            []string{"Wet saw", "Tile cutter", "Angle grinder"},
			TrainingRequired: []string{"Silica awareness training"},
		},
	},
	{
		triggers: []string{"waterproof", "membrane", "sealing"},
		assessment: domain.RiskAssessment{
			Activity:    "Waterproof Membrane Application",
			Description: "Priming and application of waterproof membrane to wet areas",
			Hazards: []string{
				"Solvent vapours from primers in enclosed rooms causing dizziness and respiratory irritation",
				"Ignition of flammable vapours near heat or electrical sources causing burns",
			},
			InitialRiskScore: 12, ResidualRiskScore: 4,
			ControlMeasures: []string{
				"Use water-based membrane systems where the specification allows",
				"Ventilate enclosed rooms mechanically while coatings cure",
				"Exclude ignition sources from the work area during application",
			},
			Legislation:      []string{"AS 3740-2021 Waterproofing of domestic wet areas"},
			Responsible:      "Licensed Waterproofer",
			PPE:              []string{"Organic vapour respirator", "Nitrile gloves", "Safety glasses"},
			Tools:            []string{"Rollers and brushes", "Ventilation fan"},
			TrainingRequired: []string{"Waterproofing licence"},
		},
	},
	{
		triggers: []string{"bathroom", "wet area", "ensuite", "laundry"},
		assessment: domain.RiskAssessment{
			Activity:    "Bathroom and Wet Area Works",
			Description: "Finishing work inside confined bathroom and wet area spaces",
			Hazards: []string{
				"Working on wet and freshly sealed floors in confined rooms causing slips against hard fixtures",
				"Awkward sustained postures around fixtures causing musculoskeletal strain",
			},
			InitialRiskScore: 8, ResidualRiskScore: 3,
			ControlMeasures: []string{
				"Sequence work so sealed surfaces cure before foot traffic",
				"Plan the work to limit time in awkward postures",
				"Wear non-slip footwear in wet areas",
			},
			Legislation:      []string{"Work Health and Safety Act 2011 s19"},
			Responsible:      "Site Supervisor",
			PPE:              []string{"Non-slip boots", "Knee pads", "Gloves"},
			Tools:            []string{"Hand tools"},
			TrainingRequired: []string{"Site induction"},
		},
	},
	{
		triggers: []string{"demolition", "strip out", "removal of existing"},
		assessment: domain.RiskAssessment{
			Activity:    "Strip-Out and Removal of Existing Finishes",
			Description: "Removal of existing finishes and fittings ahead of new work",
			Hazards: []string{
				"Flying fragments while breaking out existing finishes striking the face and eyes",
				"Unidentified asbestos-containing materials in pre-1990 buildings releasing fibres when disturbed",
			},
			InitialRiskScore: 12, ResidualRiskScore: 4,
			ControlMeasures: []string{
				"Confirm the asbestos register before disturbing any existing fabric",
				"Stop work and isolate the area if suspect material is found",
				"Wear impact-rated eye protection while breaking out",
			},
			Legislation:      []string{"Work Health and Safety Regulation 2011 Ch 8 (asbestos)"},
			Responsible:      "Site Supervisor",
			PPE:              []string{"Impact goggles", "P2 respirator", "Gloves", "Coveralls"},
			Tools:            []string{"Demolition hammer", "Pry bars", "Waste bins"},
			TrainingRequired: []string{"Asbestos awareness training"},
		},
	},
	{
		triggers: []string{"electrical", "wiring", "power", "switchboard"},
		assessment: domain.RiskAssessment{
			Activity:    "Electrical Installation Work",
			Description: "Installation and termination of electrical wiring and fittings",
			Hazards: []string{
				"Contact with energised conductors during installation causing electric shock or arc flash",
			},
			InitialRiskScore: 16, ResidualRiskScore: 4,
			ControlMeasures: []string{
				"Isolate, lock out and test for dead before touching conductors",
				"Restrict electrical work to licensed electricians",
				"Use insulated tools rated for the voltage present",
			},
			Legislation:      []string{"Work Health and Safety Regulation 2011 r157-r160 (electrical work)"},
			Responsible:      "Licensed Electrician",
			PPE:              []string{"Insulated gloves", "Safety glasses", "Arc-rated clothing"},
			Tools:            []string{"Voltage tester", "Insulated hand tools"},
			TrainingRequired: []string{"Electrical licence"},
		},
	},
	{
		triggers: []string{"framing", "carpentry", "timber", "truss"},
		assessment: domain.RiskAssessment{
			Activity:    "Timber Framing and Fixing",
			Description: "Cutting and fixing of structural and non-structural timber",
			Hazards: []string{
				"Nail gun discharge during framing assembly causing penetrating injuries",
				"Unbraced frames moving in wind before permanent fixing striking workers",
			},
			InitialRiskScore: 12, ResidualRiskScore: 4,
			ControlMeasures: []string{
				"Fit sequential-actuation triggers to nail guns",
				"Install temporary bracing progressively as frames are stood",
				"Wear eye and hearing protection when nailing",
			},
			Legislation:      []string{"AS 1684 Residential timber-framed construction"},
			Responsible:      "Leading Hand Carpenter",
			PPE:              []string{"Safety glasses", "Hearing protection", "Gloves"},
			Tools:            []string{"Nail gun", "Circular saw", "Hand tools"},
			TrainingRequired: []string{"Nail gun competency"},
		},
	},
	{
		triggers: []string{"excavation", "trench", "digging"},
		assessment: domain.RiskAssessment{
			Activity:    "Excavation and Trenching",
			Description: "Excavation of trenches and footings",
			Hazards: []string{
				"Trench wall collapse while workers are in the excavation causing burial",
				"Contact with underground services during digging causing shock or gas release",
			},
			InitialRiskScore: 16, ResidualRiskScore: 6,
			ControlMeasures: []string{
				"Obtain service location plans and pothole before mechanical digging",
				"Bench, batter or shore trenches deeper than 1.5 metres",
				"Keep spoil and plant back from trench edges",
			},
			Legislation:      []string{"Excavation Work Code of Practice 2018"},
			Responsible:      "Site Supervisor",
			PPE:              []string{"Hard hat", "High-visibility vest", "Steel-capped boots"},
			Tools:            []string{"Excavator", "Shovels", "Shoring panels"},
			TrainingRequired: []string{"Excavation awareness"},
		},
	},
}

// paddingBlocks are generic activities appended until the minimum count is
// met. Every document can carry these regardless of trade.
var paddingBlocks = []domain.RiskAssessment{
	{
		Activity:    "Site Setup and Access",
		Description: "Establishing site access, exclusion zones and material storage",
		Hazards: []string{
			"Uneven or obstructed access routes around the work area causing slips, trips and falls",
		},
		InitialRiskScore: 8, ResidualRiskScore: 3,
		ControlMeasures: []string{
			"Establish designated access routes and barricade exclusion zones",
			"Induct all workers before they enter the site",
		},
		Legislation:      []string{"Work Health and Safety Act 2011 s19"},
		Responsible:      "Site Supervisor",
		PPE:              []string{"Steel-capped boots", "High-visibility vest"},
		Tools:            []string{"Barricades", "Signage"},
		TrainingRequired: []string{"Site induction"},
	},
	{
		Activity:    "Housekeeping and Waste Management",
		Description: "Progressive cleanup and waste removal during the works",
		Hazards: []string{
			"Accumulated offcuts and packaging on walkways causing trips and lacerations",
		},
		InitialRiskScore: 6, ResidualRiskScore: 2,
		ControlMeasures: []string{
			"Clean work areas progressively and at the end of each shift",
			"Remove waste from access routes immediately",
		},
		Legislation:      []string{"Work Health and Safety Regulation 2011 r40"},
		Responsible:      "All Workers",
		PPE:              []string{"Gloves", "Steel-capped boots"},
		Tools:            []string{"Waste bins", "Broom"},
		TrainingRequired: []string{"Site induction"},
	},
	{
		Activity:    "Manual Handling of Materials",
		Description: "Moving materials and equipment about the site",
		Hazards: []string{
			"Lifting heavy or awkward loads without aids causing musculoskeletal injury",
		},
		InitialRiskScore: 8, ResidualRiskScore: 3,
		ControlMeasures: []string{
			"Use trolleys or two-person lifts for loads over 20kg",
			"Rotate repetitive handling tasks between workers",
		},
		Legislation:      []string{"Hazardous Manual Tasks Code of Practice 2018"},
		Responsible:      "All Workers",
		PPE:              []string{"Gloves", "Steel-capped boots"},
		Tools:            []string{"Trolley"},
		TrainingRequired: []string{"Manual handling awareness"},
	},
	{
		Activity:    "Power Tool Use and Inspection",
		Description: "Daily checks and safe use of portable power tools",
		Hazards: []string{
			"Damaged leads or guards on powered tools in daily use causing shock or contact injuries",
		},
		InitialRiskScore: 12, ResidualRiskScore: 4,
		ControlMeasures: []string{
			"Inspect tools, leads and guards before each use",
			"Protect all portable electrical equipment with a tested RCD",
		},
		Legislation:      []string{"AS/NZS 3760:2022 In-service safety inspection and testing"},
		Responsible:      "All Workers",
		PPE:              []string{"Safety glasses", "Gloves", "Hearing protection"},
		Tools:            []string{"RCD box", "Test-and-tag register"},
		TrainingRequired: []string{"Tool-specific competency"},
	},
}

// fallbackEquipment is the trade-keyed plant and equipment lookup.
var fallbackEquipment = map[string][]string{
	"Tiling & Waterproofing": {"Wet saw", "M-class vacuum extractor", "Mixing drill", "Ventilation fan"},
	"Carpentry":              {"Circular saw", "Nail gun", "Drop saw", "Edge protection panels"},
	"Electrical":             {"Voltage tester", "Lockout kit", "Insulated tools", "Cable rods"},
}

// Fallback deterministically generates a complete document from keyword
// triggers alone: no network, no model, usable as-is when the AI path is
// unavailable. Only the document identifier varies between calls.
func Fallback(trade, description, siteEnvironment, state string, hrcw []int) *domain.GeneratedDocument {
	haystack := strings.ToLower(description + " " + trade)

	var assessments []domain.RiskAssessment
	for _, block := range fallbackBlocks {
		for _, trigger := range block.triggers {
			if strings.Contains(haystack, trigger) {
				assessments = append(assessments, cloneAssessment(block.assessment))
				break
			}
		}
	}

	for i := 0; len(assessments) < minFallbackActivities && i < len(paddingBlocks); i++ {
		assessments = append(assessments, cloneAssessment(paddingBlocks[i]))
	}

	ApplyHRCW(assessments, hrcw)

	codes := map[string]bool{}
	for _, ra := range assessments {
		for _, code := range ra.Legislation {
			codes[code] = true
		}
	}
	codeList := make([]string, 0, len(codes))
	for code := range codes {
		codeList = append(codeList, code)
	}
	sort.Strings(codeList)

	measures := aggregate.SafetyMeasures(trade)
	if equipment, ok := fallbackEquipment[trade]; ok {
		measures = append(measures, domain.SafetyMeasureCategory{
			Category:  "Plant and Equipment",
			Measures:  []string{"Plant and equipment inspected before use and maintained per manufacturer instructions"},
			Equipment: append([]string(nil), equipment...),
			Procedures: []string{
				"Defective equipment tagged out and removed from service",
			},
		})
	}

	return &domain.GeneratedDocument{
		ID:                  uuid.NewString(),
		Trade:               trade,
		State:               state,
		Source:              "deterministic",
		RiskAssessments:     assessments,
		SafetyMeasures:      measures,
		ComplianceCodes:     codeList,
		EmergencyProcedures: aggregate.EmergencyProcedures(trade, state),
		GeneralRequirements: aggregate.GeneralRequirements(trade, state),
		ProjectSpecific:     projectSpecific(siteEnvironment, ""),
	}
}

// projectSpecific derives the free-form project block from site metadata.
func projectSpecific(siteEnvironment, location string) string {
	var parts []string
	if location != "" {
		parts = append(parts, fmt.Sprintf("Work is carried out at %s.", location))
	}
	if siteEnvironment != "" {
		parts = append(parts, fmt.Sprintf("Site environment: %s. Controls in this SWMS are applied in that context.", siteEnvironment))
	}
	return strings.Join(parts, " ")
}

func cloneAssessment(ra domain.RiskAssessment) domain.RiskAssessment {
	ra.Hazards = append([]string(nil), ra.Hazards...)
	ra.ControlMeasures = append([]string(nil), ra.ControlMeasures...)
	ra.Legislation = append([]string(nil), ra.Legislation...)
	ra.PPE = append([]string(nil), ra.PPE...)
	ra.Tools = append([]string(nil), ra.Tools...)
	ra.TrainingRequired = append([]string(nil), ra.TrainingRequired...)
	ra.HRCWReferences = append([]int(nil), ra.HRCWReferences...)
	ra.PermitRequired = append([]string(nil), ra.PermitRequired...)
	return ra
}
