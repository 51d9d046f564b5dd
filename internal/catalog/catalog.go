// Package catalog holds the curated task definitions the engine draws on.
// The catalog is loaded once at process start and is read-only afterwards;
// every accessor returns deep copies so callers cannot reach catalog state.
package catalog

import (
	"strings"

	"github.com/safework/swmsgen/internal/domain"
)

// Catalog is an immutable collection of task definitions in declaration
// order. Construct one with Load; the zero value is empty but usable.
type Catalog struct {
	tasks []domain.TaskDefinition
	byID  map[string]int
}

// Len returns the number of task definitions.
func (c *Catalog) Len() int {
	return len(c.tasks)
}

// Tasks returns every definition in declaration order.
func (c *Catalog) Tasks() []domain.TaskDefinition {
	out := make([]domain.TaskDefinition, len(c.tasks))
	for i, t := range c.tasks {
		out[i] = cloneTask(t)
	}
	return out
}

// ByID returns the definition with the given task ID.
func (c *Catalog) ByID(id string) (domain.TaskDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.TaskDefinition{}, false
	}
	return cloneTask(c.tasks[i]), true
}

// ByTrade returns definitions for the given trade plus every task marked
// applicable to all trades.
func (c *Catalog) ByTrade(trade string) []domain.TaskDefinition {
	var out []domain.TaskDefinition
	for _, t := range c.tasks {
		if strings.EqualFold(t.Trade, trade) || t.Universal() {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// Universal returns every task applicable to all trades.
func (c *Catalog) Universal() []domain.TaskDefinition {
	var out []domain.TaskDefinition
	for _, t := range c.tasks {
		if t.Universal() {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// ByComplexity returns definitions at the given complexity level.
func (c *Catalog) ByComplexity(level domain.Complexity) []domain.TaskDefinition {
	var out []domain.TaskDefinition
	for _, t := range c.tasks {
		if t.Complexity == level {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// Search matches term case-insensitively across activity, category,
// subcategory, trade, hazards and control measures.
func (c *Catalog) Search(term string) []domain.TaskDefinition {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	var out []domain.TaskDefinition
	for _, t := range c.tasks {
		if taskMatches(t, needle) {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// Trades returns the distinct trade names in the catalog, declaration
// order, excluding "Universal".
func (c *Catalog) Trades() []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range c.tasks {
		if t.Trade == "Universal" || seen[t.Trade] {
			continue
		}
		seen[t.Trade] = true
		out = append(out, t.Trade)
	}
	return out
}

// HasTrade reports whether any non-universal task belongs to the trade.
func (c *Catalog) HasTrade(trade string) bool {
	for _, t := range c.tasks {
		if !t.Universal() && strings.EqualFold(t.Trade, trade) {
			return true
		}
	}
	return false
}

func taskMatches(t domain.TaskDefinition, needle string) bool {
	fields := []string{t.Activity, t.Category, t.Subcategory, t.Trade}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	for _, h := range t.Hazards {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	for _, cm := range t.ControlMeasures {
		if strings.Contains(strings.ToLower(cm), needle) {
			return true
		}
	}
	return false
}

func cloneTask(t domain.TaskDefinition) domain.TaskDefinition {
	t.Hazards = append([]string(nil), t.Hazards...)
	t.ControlMeasures = append([]string(nil), t.ControlMeasures...)
	t.Legislation = append([]string(nil), t.Legislation...)
	t.PPE = append([]string(nil), t.PPE...)
	t.TrainingRequired = append([]string(nil), t.TrainingRequired...)
	t.RelatedTasks = append([]string(nil), t.RelatedTasks...)
	return t
}
