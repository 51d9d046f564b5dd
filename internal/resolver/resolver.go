// Package resolver maps user-selected activities and a trade onto catalog
// task definitions. The resolver may emit the same task more than once
// across matching steps; deduplication belongs to the aggregator.
package resolver

import (
	"fmt"
	"strings"

	"github.com/safework/swmsgen/internal/catalog"
	"github.com/safework/swmsgen/internal/domain"
)

const (
	// partialMatchLimit bounds fan-out of fuzzy activity matching.
	partialMatchLimit = 3

	// minWordOverlap is the number of shared words required for a partial
	// match to qualify.
	minWordOverlap = 2

	// generalTaskCap keeps trade-general tasks from dominating a document.
	generalTaskCap = 8
)

// Result carries the resolved tasks plus non-fatal warnings for the caller.
type Result struct {
	Tasks    []domain.TaskDefinition
	Warnings []string
}

// Resolver matches activities against a read-only catalog.
type Resolver struct {
	catalog *catalog.Catalog
}

// New creates a Resolver over the given catalog.
func New(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve maps selected activity strings onto catalog tasks for a trade.
//
// For each activity: exact (substring) search first, then word-overlap
// partial matching capped at three entries. Matched tasks are expanded one
// hop through their related-task graph. Universal and trade-general tasks
// are always unioned in, so a known trade never resolves to an empty set.
func (r *Resolver) Resolve(selected []string, trade string) Result {
	var res Result

	knownTrade := r.catalog.HasTrade(trade)
	if !knownTrade {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("trade %q not in catalog; only universal tasks will be resolved", trade))
	}

	var matched []domain.TaskDefinition
	for _, activity := range selected {
		activity = strings.TrimSpace(activity)
		if activity == "" {
			continue
		}
		hits := r.exactMatches(activity, trade)
		if len(hits) == 0 {
			hits = r.partialMatches(activity, trade)
		}
		if len(hits) == 0 {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("no catalog task matched activity %q", activity))
			continue
		}
		matched = append(matched, hits...)
	}

	// One-hop related-task expansion. No recursion: a related task's own
	// relations are not followed.
	expanded := r.expandRelated(matched)

	res.Tasks = append(res.Tasks, expanded...)
	res.Tasks = append(res.Tasks, r.catalog.Universal()...)
	if knownTrade {
		res.Tasks = append(res.Tasks, r.generalTasks(trade)...)
	}
	return res
}

// exactMatches runs a catalog search for the activity text, filtered to
// the trade or universal tasks.
func (r *Resolver) exactMatches(activity, trade string) []domain.TaskDefinition {
	var out []domain.TaskDefinition
	for _, t := range r.catalog.Search(activity) {
		if strings.EqualFold(t.Trade, trade) || t.Universal() {
			out = append(out, t)
		}
	}
	return out
}

// partialMatches tokenizes the input and every catalog activity and keeps
// entries sharing at least minWordOverlap words, in catalog declaration
// order, capped at partialMatchLimit.
func (r *Resolver) partialMatches(activity, trade string) []domain.TaskDefinition {
	inputWords := tokenize(activity)
	if len(inputWords) == 0 {
		return nil
	}

	var out []domain.TaskDefinition
	for _, t := range r.catalog.Tasks() {
		if !strings.EqualFold(t.Trade, trade) && !t.Universal() {
			continue
		}
		if wordOverlap(inputWords, tokenize(t.Activity)) >= minWordOverlap {
			out = append(out, t)
			if len(out) == partialMatchLimit {
				break
			}
		}
	}
	return out
}

func (r *Resolver) expandRelated(matched []domain.TaskDefinition) []domain.TaskDefinition {
	out := make([]domain.TaskDefinition, 0, len(matched))
	present := map[string]bool{}
	for _, t := range matched {
		out = append(out, t)
		present[t.TaskID] = true
	}
	for _, t := range matched {
		for _, ref := range t.RelatedTasks {
			if present[ref] {
				continue
			}
			related, ok := r.catalog.ByID(ref)
			if !ok {
				// Load-time validation guarantees the graph is closed.
				continue
			}
			out = append(out, related)
			present[ref] = true
		}
	}
	return out
}

// generalTasks returns the trade's routine work entries: tasks whose
// category, subcategory or activity signals general, daily or inspection
// work.
func (r *Resolver) generalTasks(trade string) []domain.TaskDefinition {
	var out []domain.TaskDefinition
	for _, t := range r.catalog.ByTrade(trade) {
		if t.Universal() {
			continue
		}
		if isGeneralTask(t) {
			out = append(out, t)
			if len(out) == generalTaskCap {
				break
			}
		}
	}
	return out
}

func isGeneralTask(t domain.TaskDefinition) bool {
	for _, field := range []string{t.Category, t.Subcategory, t.Activity} {
		lower := strings.ToLower(field)
		if strings.Contains(lower, "general") ||
			strings.Contains(lower, "daily") ||
			strings.Contains(lower, "inspection") {
			return true
		}
	}
	return false
}

func tokenize(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,;:()&/-")
		if len(f) > 1 {
			out = append(out, f)
		}
	}
	return out
}

// wordOverlap counts input words that appear in the candidate word list,
// treating substring containment in either direction as a match
// ("tiling" matches "retiling", "waterproof" matches "waterproofing").
func wordOverlap(input, candidate []string) int {
	n := 0
	for _, in := range input {
		for _, cand := range candidate {
			if strings.Contains(cand, in) || strings.Contains(in, cand) {
				n++
				break
			}
		}
	}
	return n
}
