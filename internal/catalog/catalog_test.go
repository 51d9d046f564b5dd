package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safework/swmsgen/internal/domain"
)

func TestLoad_EmbeddedCatalogValid(t *testing.T) {
	c, err := Load()
	require.NoError(t, err, "embedded catalog data must pass integrity validation")
	assert.Greater(t, c.Len(), 15, "catalog should carry a meaningful task set")
}

func TestCatalog_ByTrade_IncludesUniversal(t *testing.T) {
	c := mustLoad(t)

	tasks := c.ByTrade("Tiling & Waterproofing")
	require.NotEmpty(t, tasks)

	var universal, tradeOwned int
	for _, task := range tasks {
		if task.Universal() {
			universal++
		} else {
			assert.Equal(t, "Tiling & Waterproofing", task.Trade)
			tradeOwned++
		}
	}
	assert.Equal(t, len(c.Universal()), universal, "every universal task must appear")
	assert.Greater(t, tradeOwned, 0)
}

func TestCatalog_ByTrade_UnknownTradeReturnsUniversalOnly(t *testing.T) {
	c := mustLoad(t)

	tasks := c.ByTrade("Basket Weaving")
	require.NotEmpty(t, tasks, "universal tasks apply to unknown trades too")
	for _, task := range tasks {
		assert.True(t, task.Universal())
	}
}

func TestCatalog_Search_AcrossFields(t *testing.T) {
	c := mustLoad(t)

	tests := []struct {
		name string
		term string
	}{
		{"activity", "tile cutting"},
		{"category", "waterproofing"},
		{"hazard text", "silica"},
		{"control text", "rcd"},
		{"mixed case", "SCAFFOLD"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEmpty(t, c.Search(tc.term), "term %q should match", tc.term)
		})
	}

	assert.Empty(t, c.Search("quantum chromodynamics"))
	assert.Empty(t, c.Search("   "))
}

func TestCatalog_ByComplexity(t *testing.T) {
	c := mustLoad(t)

	specialist := c.ByComplexity(domain.ComplexitySpecialist)
	require.NotEmpty(t, specialist)
	for _, task := range specialist {
		assert.Equal(t, domain.ComplexitySpecialist, task.Complexity)
	}
}

func TestCatalog_ByID_ResolvesRelatedGraph(t *testing.T) {
	c := mustLoad(t)

	for _, task := range c.Tasks() {
		for _, ref := range task.RelatedTasks {
			_, ok := c.ByID(ref)
			assert.True(t, ok, "task %s references %s which must exist", task.TaskID, ref)
		}
	}
}

// Accessors must hand out copies: mutating a returned task cannot alter
// what the next caller observes.
func TestCatalog_Immutable(t *testing.T) {
	c := mustLoad(t)

	first := c.Tasks()[0]
	require.NotEmpty(t, first.Hazards)
	originalHazard := first.Hazards[0]

	first.Hazards[0] = "TAMPERED"
	first.ControlMeasures = append(first.ControlMeasures, "TAMPERED")

	again, ok := c.ByID(first.TaskID)
	require.True(t, ok)
	assert.Equal(t, originalHazard, again.Hazards[0],
		"catalog state must be unreachable through returned values")
}

func TestCatalog_Trades(t *testing.T) {
	c := mustLoad(t)

	trades := c.Trades()
	assert.Contains(t, trades, "Tiling & Waterproofing")
	assert.Contains(t, trades, "Carpentry")
	assert.Contains(t, trades, "Electrical")
	assert.NotContains(t, trades, "Universal")

	assert.True(t, c.HasTrade("Carpentry"))
	assert.True(t, c.HasTrade("carpentry"), "trade lookup is case-insensitive")
	assert.False(t, c.HasTrade("Basket Weaving"))
}

func mustLoad(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	require.NoError(t, err)
	return c
}
