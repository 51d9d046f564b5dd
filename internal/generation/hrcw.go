package generation

import (
	"strings"

	"github.com/safework/swmsgen/internal/domain"
)

// HRCWCategory is one of the regulator-defined high-risk construction
// work categories (WHS Regulation r291).
type HRCWCategory struct {
	ID       int
	Name     string
	Keywords []string
	Permits  []string
}

// hrcwCategories is the fixed regulator-defined set. IDs are stable and
// cited by number in SWMS documents.
var hrcwCategories = map[int]HRCWCategory{
	1:  {1, "Risk of a person falling more than 2 metres", []string{"height", "fall", "roof", "scaffold", "ladder", "edge"}, []string{"Working at heights permit"}},
	2:  {2, "Work on a telecommunication tower", []string{"telecommunication tower"}, []string{"Tower access permit"}},
	3:  {3, "Demolition of a load-bearing structure", []string{"demolition", "load-bearing"}, []string{"Demolition permit"}},
	4:  {4, "Work involving disturbance of asbestos", []string{"asbestos"}, []string{"Asbestos removal permit"}},
	5:  {5, "Structural alterations requiring temporary support", []string{"temporary support", "propping", "structural alteration"}, []string{"Structural works permit"}},
	6:  {6, "Work in or near a confined space", []string{"confined space", "subfloor", "void", "tank", "pit"}, []string{"Confined space entry permit"}},
	7:  {7, "Work in or near a shaft or trench deeper than 1.5 metres", []string{"trench", "shaft", "excavation", "tunnel"}, []string{"Excavation permit"}},
	8:  {8, "Work involving the use of explosives", []string{"explosive"}, []string{"Blasting permit"}},
	9:  {9, "Work on or near pressurised gas mains or piping", []string{"gas main", "pressurised gas"}, []string{"Hot work permit", "Gas isolation certificate"}},
	10: {10, "Work on or near chemical, fuel or refrigerant lines", []string{"chemical line", "fuel line", "refrigerant"}, []string{"Chemical line isolation permit"}},
	11: {11, "Work on or near energised electrical installations", []string{"energised", "live electrical", "switchboard", "conductor"}, []string{"Energised electrical work permit"}},
	12: {12, "Work in an area with a contaminated or flammable atmosphere", []string{"flammable", "contaminated atmosphere", "solvent vapour"}, []string{"Hot work permit", "Atmosphere clearance certificate"}},
	13: {13, "Tilt-up or precast concrete work", []string{"tilt-up", "precast"}, []string{"Crane lift permit"}},
	14: {14, "Work on, in or adjacent to a road or traffic corridor", []string{"road", "traffic corridor", "railway"}, []string{"Road occupancy licence"}},
	15: {15, "Work in an area with movement of powered mobile plant", []string{"mobile plant", "excavator", "forklift", "telehandler"}, []string{"Plant work area authority"}},
	16: {16, "Work in areas with artificial extremes of temperature", []string{"freezer", "furnace", "artificial temperature"}, nil},
	17: {17, "Work in or near water with a risk of drowning", []string{"drowning", "near water", "over water"}, nil},
	18: {18, "Diving work", []string{"diving"}, []string{"Diving permit"}},
}

// HRCWByID returns the category definition for a regulator category number.
func HRCWByID(id int) (HRCWCategory, bool) {
	c, ok := hrcwCategories[id]
	return c, ok
}

// ApplyHRCW cross-references the supplied category numbers against each
// assessment's activity and hazard text, stamping hrcwReferences and
// permit flags onto applicable tasks.
func ApplyHRCW(assessments []domain.RiskAssessment, categories []int) {
	for _, id := range categories {
		cat, ok := hrcwCategories[id]
		if !ok {
			continue
		}
		for i := range assessments {
			if !hrcwApplies(assessments[i], cat) {
				continue
			}
			if !containsInt(assessments[i].HRCWReferences, id) {
				assessments[i].HRCWReferences = append(assessments[i].HRCWReferences, id)
			}
			for _, permit := range cat.Permits {
				if !containsString(assessments[i].PermitRequired, permit) {
					assessments[i].PermitRequired = append(assessments[i].PermitRequired, permit)
				}
			}
		}
	}
}

func hrcwApplies(ra domain.RiskAssessment, cat HRCWCategory) bool {
	haystack := strings.ToLower(ra.Activity + " " + ra.Description + " " + strings.Join(ra.Hazards, " "))
	for _, kw := range cat.Keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func containsInt(xs []int, n int) bool {
	for _, x := range xs {
		if x == n {
			return true
		}
	}
	return false
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
