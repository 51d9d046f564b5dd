package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/safework/swmsgen/internal/domain"
	"github.com/safework/swmsgen/internal/history"
)

// RenderDocument renders a generated SWMS document for terminal display.
func RenderDocument(doc *domain.GeneratedDocument) string {
	var b strings.Builder

	b.WriteString(Header("Safe Work Method Statement"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("Trade:"), Bold(doc.Trade))
	if doc.State != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("State:"), doc.State)
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Source:"), sourceLabel(doc.Source))
	fmt.Fprintf(&b, "%s %s\n", Dim("Document:"), doc.ID)
	if doc.ProjectSpecific != "" {
		b.WriteString("\n" + doc.ProjectSpecific + "\n")
	}

	b.WriteString("\n" + Header("Risk Assessments") + "\n")
	for i, ra := range doc.RiskAssessments {
		fmt.Fprintf(&b, "\n%s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), Bold(ra.Activity))
		if ra.Description != "" {
			fmt.Fprintf(&b, "   %s\n", Dim(ra.Description))
		}
		fmt.Fprintf(&b, "   Risk: %s → %s   Responsible: %s\n",
			RiskLabel(ra.InitialRiskScore), RiskLabel(ra.ResidualRiskScore), ra.Responsible)
		if len(ra.HRCWReferences) > 0 {
			fmt.Fprintf(&b, "   %s %s\n", StylePurple.Render("HRCW:"), joinInts(ra.HRCWReferences))
		}
		for _, h := range ra.Hazards {
			fmt.Fprintf(&b, "   %s %s\n", StyleRed.Render("!"), h)
		}
		for _, c := range ra.ControlMeasures {
			fmt.Fprintf(&b, "   %s %s\n", StyleGreen.Render("•"), c)
		}
		if len(ra.PermitRequired) > 0 {
			fmt.Fprintf(&b, "   %s %s\n", StyleYellow.Render("Permits:"), strings.Join(ra.PermitRequired, ", "))
		}
	}

	if len(doc.SafetyMeasures) > 0 {
		b.WriteString("\n" + Header("Safety Measures") + "\n")
		for _, cat := range doc.SafetyMeasures {
			fmt.Fprintf(&b, "\n%s\n", Bold(cat.Category))
			for _, m := range cat.Measures {
				fmt.Fprintf(&b, "  • %s\n", m)
			}
			if len(cat.Equipment) > 0 {
				fmt.Fprintf(&b, "  %s %s\n", Dim("Equipment:"), strings.Join(cat.Equipment, ", "))
			}
		}
	}

	if len(doc.ComplianceCodes) > 0 {
		b.WriteString("\n" + Header("Compliance Codes") + "\n")
		for _, code := range doc.ComplianceCodes {
			fmt.Fprintf(&b, "  • %s\n", code)
		}
	}

	if len(doc.EmergencyProcedures) > 0 {
		b.WriteString("\n" + Header("Emergency Procedures") + "\n")
		for _, p := range doc.EmergencyProcedures {
			fmt.Fprintf(&b, "  • %s\n", p)
		}
	}

	if len(doc.GeneralRequirements) > 0 {
		b.WriteString("\n" + Header("General Requirements") + "\n")
		for _, r := range doc.GeneralRequirements {
			fmt.Fprintf(&b, "  • %s\n", r)
		}
	}

	if len(doc.Warnings) > 0 {
		b.WriteString("\n" + Header("Warnings") + "\n")
		for _, w := range doc.Warnings {
			fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("⚠"), w)
		}
	}

	return b.String()
}

// RenderTaskTable renders catalog tasks as an aligned summary table.
func RenderTaskTable(tasks []domain.TaskDefinition) string {
	headers := []string{"ID", "Activity", "Trade", "Risk", "Residual", "Complexity"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			Dim(t.TaskID),
			t.Activity,
			t.Trade,
			RiskLabel(t.InitialRiskScore),
			RiskLabel(t.ResidualRiskScore),
			string(t.Complexity),
		})
	}
	return RenderTable(headers, rows)
}

// RenderTask renders one catalog task in full.
func RenderTask(t domain.TaskDefinition) string {
	var b strings.Builder

	b.WriteString(Header(t.Activity) + "\n")
	fmt.Fprintf(&b, "%s %s   %s %s\n", Dim("ID:"), t.TaskID, Dim("Trade:"), t.Trade)
	fmt.Fprintf(&b, "%s %s / %s\n", Dim("Category:"), t.Category, t.Subcategory)
	fmt.Fprintf(&b, "%s %s → %s\n", Dim("Risk:"), RiskLabel(t.InitialRiskScore), RiskLabel(t.ResidualRiskScore))
	fmt.Fprintf(&b, "%s %s   %s %s\n", Dim("Frequency:"), string(t.Frequency), Dim("Complexity:"), string(t.Complexity))
	fmt.Fprintf(&b, "%s %s\n", Dim("Responsible:"), t.Responsible)

	b.WriteString("\n" + Bold("Hazards") + "\n")
	for _, h := range t.Hazards {
		fmt.Fprintf(&b, "  %s %s\n", StyleRed.Render("!"), h)
	}
	b.WriteString("\n" + Bold("Controls") + "\n")
	for _, c := range t.ControlMeasures {
		fmt.Fprintf(&b, "  %s %s\n", StyleGreen.Render("•"), c)
	}
	if len(t.Legislation) > 0 {
		b.WriteString("\n" + Bold("Legislation") + "\n")
		for _, l := range t.Legislation {
			fmt.Fprintf(&b, "  • %s\n", l)
		}
	}
	if len(t.PPE) > 0 {
		fmt.Fprintf(&b, "\n%s %s\n", Bold("PPE:"), strings.Join(t.PPE, ", "))
	}
	if len(t.TrainingRequired) > 0 {
		fmt.Fprintf(&b, "%s %s\n", Bold("Training:"), strings.Join(t.TrainingRequired, ", "))
	}
	if len(t.RelatedTasks) > 0 {
		fmt.Fprintf(&b, "%s %s\n", Dim("Related:"), strings.Join(t.RelatedTasks, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderRunTable renders run history records as an aligned table.
func RenderRunTable(runs []*history.RunRecord) string {
	headers := []string{"When", "Trade", "State", "Source", "Tasks", "Warnings", "Duration"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			Dim(r.CreatedAt.Local().Format("2006-01-02 15:04")),
			r.Trade,
			r.State,
			sourceLabel(r.Source),
			strconv.Itoa(r.ActivityCount),
			strconv.Itoa(r.WarningCount),
			fmt.Sprintf("%dms", r.DurationMs),
		})
	}
	return RenderTable(headers, rows)
}

func sourceLabel(source string) string {
	switch source {
	case "ai":
		return StyleBlue.Render("ai")
	case "deterministic":
		return StylePurple.Render("deterministic")
	default:
		return Dim(source)
	}
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}
