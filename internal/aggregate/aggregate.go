// Package aggregate merges resolved task definitions into a single
// coherent document: deduplicated risk assessments, unioned compliance
// codes, and trade-appropriate safety measure categories.
package aggregate

import (
	"sort"

	"github.com/safework/swmsgen/internal/domain"
)

// Aggregate converts resolved tasks into a GeneratedDocument. The first
// occurrence of a dedup key wins, so tasks emitted earlier in the pipeline
// (universal and required work) are never evicted by near-duplicate trade
// matches discovered later.
func Aggregate(tasks []domain.TaskDefinition, trade, state string) *domain.GeneratedDocument {
	doc := &domain.GeneratedDocument{
		Trade:  trade,
		State:  state,
		Source: "catalog",
	}

	seen := map[string]bool{}
	codes := map[string]bool{}
	for _, task := range tasks {
		ra := domain.AssessmentFromTask(task)
		key := ra.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		doc.RiskAssessments = append(doc.RiskAssessments, ra)

		// Legislation contributes only from surviving assessments.
		for _, code := range ra.Legislation {
			codes[code] = true
		}
	}

	doc.ComplianceCodes = sortedCodes(codes)
	doc.SafetyMeasures = SafetyMeasures(trade)
	doc.EmergencyProcedures = EmergencyProcedures(trade, state)
	doc.GeneralRequirements = GeneralRequirements(trade, state)
	return doc
}

// MergeAssessments folds extra assessments into a document under the same
// first-occurrence-wins rule, keeping compliance codes consistent.
func MergeAssessments(doc *domain.GeneratedDocument, extra []domain.RiskAssessment) {
	seen := map[string]bool{}
	codes := map[string]bool{}
	for _, ra := range doc.RiskAssessments {
		seen[ra.DedupKey()] = true
	}
	for _, code := range doc.ComplianceCodes {
		codes[code] = true
	}

	for _, ra := range extra {
		key := ra.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		doc.RiskAssessments = append(doc.RiskAssessments, ra)
		for _, code := range ra.Legislation {
			codes[code] = true
		}
	}
	doc.ComplianceCodes = sortedCodes(codes)
}

func sortedCodes(codes map[string]bool) []string {
	out := make([]string, 0, len(codes))
	for code := range codes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
