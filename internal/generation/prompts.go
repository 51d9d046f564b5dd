package generation

import (
	"fmt"
	"strings"

	"github.com/safework/swmsgen/internal/domain"
)

// stateLegislation maps a jurisdiction code to its primary WHS instrument.
// Victoria retained its own OHS framework and is not a harmonised WHS
// jurisdiction.
var stateLegislation = map[string]string{
	"NSW": "Work Health and Safety Regulation 2017 (NSW)",
	"VIC": "Occupational Health and Safety Regulations 2017 (Vic)",
	"QLD": "Work Health and Safety Regulation 2011 (Qld)",
	"WA":  "Work Health and Safety (General) Regulations 2022 (WA)",
	"SA":  "Work Health and Safety Regulations 2012 (SA)",
	"TAS": "Work Health and Safety Regulations 2022 (Tas)",
	"ACT": "Work Health and Safety Regulation 2011 (ACT)",
	"NT":  "Work Health and Safety (National Uniform Legislation) Regulations 2011 (NT)",
}

// StateRegulation returns the primary WHS instrument for a state code.
func StateRegulation(state string) string {
	if reg, ok := stateLegislation[state]; ok {
		return reg
	}
	return "the applicable state or territory WHS regulations"
}

// buildSystemPrompt produces the output contract for the generator. The
// trade boundary, hazard taxonomy, control hierarchy and jurisdiction
// requirements are all stated explicitly so responses can be validated.
func buildSystemPrompt(req domain.GenerateRequest) string {
	scope := ScopeForTrade(req.TradeType)
	state := req.ProjectDetails.State

	var b strings.Builder
	b.WriteString("You are a work health and safety specialist generating a Safe Work Method Statement (SWMS) for Australian construction work.\n\n")

	fmt.Fprintf(&b, "TRADE SCOPE — the trade is %q. You must stay inside its scope of work.\n", scope.Trade)
	b.WriteString("Task types IN SCOPE for this trade:\n")
	for _, s := range scope.InScope {
		b.WriteString("- " + s + "\n")
	}
	b.WriteString("Task types FORBIDDEN for this trade (never generate these):\n")
	for _, s := range scope.Forbidden {
		b.WriteString("- " + s + "\n")
	}
	b.WriteString(`Every task you produce must carry "isTaskWithinTradeScope": "YES" or "NO". If NO, add "scopeReason" explaining why.` + "\n\n")

	b.WriteString(`You must output ONLY a JSON object with a top-level "tasks" array. Each task has these exact fields:
- activity: short name of the work activity
- description: one sentence describing the work
- hazards: array of hazard objects, each with THREE sub-fields:
  - cause: the agent or mechanism that does the harm
  - context: the environmental or task situation in which it arises
  - consequence: the likely injury or damage
  Never collapse a hazard into a single free-text sentence.
- initialRiskScore: integer 1-16 before controls
- residualRiskScore: integer 1-16 after controls, never higher than initialRiskScore
- controlMeasures: array of controls ORDERED by the hierarchy of controls:
  elimination first, then substitution, isolation, engineering, administrative, and PPE last.
  Default to PPE only where no higher-order control is reasonably practicable.
- legislation: array of citations specific to the project jurisdiction`)
	fmt.Fprintf(&b, " (%s and the relevant codes of practice)\n", StateRegulation(state))
	b.WriteString(`- responsible: the role accountable for the controls
- ppe: array of PPE items
- tools: array of plant and tools used
- trainingRequired: array of licences or competencies
- isTaskWithinTradeScope: "YES" or "NO"
`)

	if len(req.ProjectDetails.HRCWCategories) > 0 {
		b.WriteString("\nHIGH-RISK CONSTRUCTION WORK — the project declares these HRCW categories:\n")
		for _, id := range req.ProjectDetails.HRCWCategories {
			if cat, ok := HRCWByID(id); ok {
				fmt.Fprintf(&b, "- %d: %s\n", cat.ID, cat.Name)
			}
		}
		b.WriteString(`For every task affected by a declared category, include "hrcwReferences" (array of the category numbers) and "permitRequired" (array of permit names).` + "\n")
	}

	b.WriteString("\nCRITICAL RULES:\n")
	b.WriteString("1. Output ONLY the JSON object, no markdown, no explanation\n")
	b.WriteString("2. Use strict JSON numeric literals\n")
	b.WriteString("3. Cover every selected activity and any work implied by the description\n")
	b.WriteString("4. Do not invent tasks outside the trade scope\n")
	return b.String()
}

// buildUserPrompt serializes the request details for the generator.
func buildUserPrompt(req domain.GenerateRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Trade: %s\n", req.TradeType)
	if req.ProjectDetails.State != "" {
		fmt.Fprintf(&b, "State: %s\n", req.ProjectDetails.State)
	}
	if req.ProjectDetails.Location != "" {
		fmt.Fprintf(&b, "Site location: %s\n", req.ProjectDetails.Location)
	}
	if req.ProjectDetails.SiteEnvironment != "" {
		fmt.Fprintf(&b, "Site environment: %s\n", req.ProjectDetails.SiteEnvironment)
	}

	if len(req.SelectedActivities) > 0 {
		b.WriteString("\nSelected work activities:\n")
		for _, a := range req.SelectedActivities {
			b.WriteString("- " + a + "\n")
		}
	}
	if desc := strings.TrimSpace(req.PlainTextDescription); desc != "" {
		b.WriteString("\nWork description:\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}

	b.WriteString("\nGenerate the complete SWMS task list for this work.")
	return b.String()
}
