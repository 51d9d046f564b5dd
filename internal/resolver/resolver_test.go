package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safework/swmsgen/internal/catalog"
	"github.com/safework/swmsgen/internal/domain"
)

func newResolver(t *testing.T) (*Resolver, *catalog.Catalog) {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return New(c), c
}

func taskIDs(tasks []domain.TaskDefinition) map[string]bool {
	ids := map[string]bool{}
	for _, t := range tasks {
		ids[t.TaskID] = true
	}
	return ids
}

func activities(tasks []domain.TaskDefinition) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Activity
	}
	return out
}

// "bathroom tiling" has no exact catalog entry; it must reach the wet area
// task via word overlap and pull in preparation and cutting tasks through
// the related-task graph, alongside every universal task.
func TestResolve_BathroomTiling(t *testing.T) {
	r, c := newResolver(t)

	res := r.Resolve([]string{"bathroom tiling"}, "Tiling & Waterproofing")
	require.NotEmpty(t, res.Tasks)
	assert.Empty(t, res.Warnings)

	ids := taskIDs(res.Tasks)
	assert.True(t, ids["til-wet-area"], "partial match should find the wet area task, got %v", activities(res.Tasks))
	assert.True(t, ids["til-surface-prep"] || ids["til-tile-cutting"],
		"graph expansion should pull in a preparation or cutting task")

	for _, u := range c.Universal() {
		assert.True(t, ids[u.TaskID], "universal task %s must always be resolved", u.TaskID)
	}
}

func TestResolve_ExactMatchPreferred(t *testing.T) {
	r, _ := newResolver(t)

	res := r.Resolve([]string{"Tile Cutting"}, "Tiling & Waterproofing")
	ids := taskIDs(res.Tasks)
	assert.True(t, ids["til-tile-cutting"])
}

func TestResolve_ExactMatchFiltersTrade(t *testing.T) {
	r, _ := newResolver(t)

	// "Tile Cutting" exists only under Tiling & Waterproofing; a carpentry
	// request must not receive it.
	res := r.Resolve([]string{"Tile Cutting"}, "Carpentry")
	ids := taskIDs(res.Tasks)
	assert.False(t, ids["til-tile-cutting"],
		"tasks from another trade must not leak through matching")
}

func TestResolve_RelatedExpansionIsOneHop(t *testing.T) {
	r, _ := newResolver(t)

	// Waterproof membrane -> surface preparation (one hop). Surface
	// preparation's own relation to tile cutting must not be followed.
	res := r.Resolve([]string{"Waterproof Membrane Application"}, "Tiling & Waterproofing")
	ids := taskIDs(res.Tasks)
	assert.True(t, ids["til-waterproofing"])
	assert.True(t, ids["til-surface-prep"], "first hop should be included")
	assert.False(t, ids["til-tile-cutting"], "expansion must not recurse past one hop")
}

func TestResolve_EmptySelectionStillResolves(t *testing.T) {
	r, c := newResolver(t)

	res := r.Resolve(nil, "Carpentry")
	require.NotEmpty(t, res.Tasks, "a known trade never resolves to an empty set")

	ids := taskIDs(res.Tasks)
	for _, u := range c.Universal() {
		assert.True(t, ids[u.TaskID])
	}
	assert.True(t, ids["car-daily-checks"], "trade general tasks should be unioned in")
}

func TestResolve_UnknownTradeDegradesToUniversal(t *testing.T) {
	r, _ := newResolver(t)

	res := r.Resolve([]string{"underwater basket weaving"}, "Basket Weaving")
	require.NotEmpty(t, res.Tasks)
	require.NotEmpty(t, res.Warnings, "unknown trade must surface a warning, not an error")

	for _, task := range res.Tasks {
		assert.True(t, task.Universal(),
			"unknown trade resolves universal tasks only, got %s", task.TaskID)
	}
}

func TestResolve_UnmatchedActivityWarns(t *testing.T) {
	r, _ := newResolver(t)

	res := r.Resolve([]string{"zzzz not a real activity zzzz"}, "Electrical")
	require.NotEmpty(t, res.Tasks)
	assert.Contains(t, res.Warnings[0], "no catalog task matched")
}

func TestResolve_MayEmitDuplicates(t *testing.T) {
	r, _ := newResolver(t)

	// Site access matches by exact search and is also unioned in as a
	// universal task; the resolver does not deduplicate.
	res := r.Resolve([]string{"Site Access and Egress"}, "Carpentry")
	n := 0
	for _, task := range res.Tasks {
		if task.TaskID == "uni-site-access" {
			n++
		}
	}
	assert.GreaterOrEqual(t, n, 2, "dedup is the aggregator's job, not the resolver's")
}

func TestWordOverlap(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		candidate string
		want      int
	}{
		{"exact words", "tile cutting", "Tile Cutting", 2},
		{"containment", "waterproofing bathroom", "Waterproof Membrane", 1},
		{"no overlap", "concrete pour", "Tile Cutting", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := wordOverlap(tokenize(tc.input), tokenize(tc.candidate))
			assert.Equal(t, tc.want, got)
		})
	}
}
