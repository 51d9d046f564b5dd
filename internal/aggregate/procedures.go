package aggregate

import "fmt"

// stateRegulators maps jurisdiction codes to their WHS regulator. Used to
// localise emergency procedures and general requirements.
var stateRegulators = map[string]string{
	"NSW": "SafeWork NSW",
	"VIC": "WorkSafe Victoria",
	"QLD": "Workplace Health and Safety Queensland",
	"WA":  "WorkSafe WA",
	"SA":  "SafeWork SA",
	"TAS": "WorkSafe Tasmania",
	"ACT": "WorkSafe ACT",
	"NT":  "NT WorkSafe",
}

// Regulator returns the WHS regulator for a state code, or a generic
// label for unknown jurisdictions.
func Regulator(state string) string {
	if reg, ok := stateRegulators[state]; ok {
		return reg
	}
	return "the relevant state WHS regulator"
}

// EmergencyProcedures returns the emergency procedure list for a trade and
// jurisdiction. Pure function of its inputs.
func EmergencyProcedures(trade, state string) []string {
	procs := []string{
		"In a life-threatening emergency call 000 and nominate a worker to meet emergency services at site entry",
		"Stop work, make the area safe if possible, and move to the nominated assembly point",
		"Administer first aid only within the level of your training",
		fmt.Sprintf("Notify %s of any notifiable incident before disturbing the scene", Regulator(state)),
		"Record all incidents and near misses in the site register on the day they occur",
	}

	switch trade {
	case "Electrical":
		procs = append(procs,
			"For electric shock, isolate the supply before touching the casualty; use a non-conductive object if isolation is not possible",
			"Treat all fallen conductors as live and keep an 8 metre exclusion")
	case "Tiling & Waterproofing":
		procs = append(procs,
			"For chemical splash to eyes or skin, flush with water for 15 minutes and refer to the product SDS")
	case "Carpentry":
		procs = append(procs,
			"For an arrested fall, begin rescue immediately per the rescue plan; do not leave a worker suspended")
	}
	return procs
}

// GeneralRequirements returns the document-level requirements for a trade
// and jurisdiction. Pure function of its inputs.
func GeneralRequirements(trade, state string) []string {
	reqs := []string{
		"All workers hold a current general construction induction card (White Card)",
		"This SWMS is reviewed with all workers before work starts and after any incident or change of method",
		"Work stops immediately if the SWMS cannot be followed, and does not resume until it is revised",
		fmt.Sprintf("A copy of this SWMS is kept available for inspection by %s for the duration of the work", Regulator(state)),
		"Daily pre-start discussions cover the tasks, conditions and controls for the day",
	}
	if trade != "" {
		reqs = append(reqs,
			fmt.Sprintf("Workers performing licensed %s work hold the required class of licence", trade))
	}
	return reqs
}
