package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFromYAML(t *testing.T, yaml string) (*Catalog, error) {
	t.Helper()
	fsys := fstest.MapFS{
		"data/test.yaml": {Data: []byte(yaml)},
	}
	return loadFS(fsys)
}

const validTask = `
tasks:
  - id: t1
    activity: Test Activity
    category: Test
    subcategory: Test
    trade: Carpentry
    hazards: ["Hazard one"]
    initial_risk: 8
    residual_risk: 3
    controls: ["Control one"]
    legislation: ["WHS Act 2011"]
    responsible: Supervisor
    frequency: daily
    complexity: basic
`

func TestValidate_ValidData(t *testing.T) {
	c, err := loadFromYAML(t, validTask)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestValidate_ResidualExceedsInitial(t *testing.T) {
	_, err := loadFromYAML(t, `
tasks:
  - id: t1
    activity: Bad Risk
    trade: Carpentry
    hazards: ["h"]
    controls: ["c"]
    initial_risk: 4
    residual_risk: 9
`)
	require.Error(t, err)
	var integrity *IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Contains(t, err.Error(), "residual risk 9 exceeds initial risk 4")
}

func TestValidate_DanglingRelatedTask(t *testing.T) {
	_, err := loadFromYAML(t, `
tasks:
  - id: t1
    activity: Dangling
    trade: Carpentry
    hazards: ["h"]
    controls: ["c"]
    initial_risk: 8
    residual_risk: 3
    related: [no-such-task]
`)
	var integrity *IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Contains(t, err.Error(), `related task "no-such-task" does not exist`)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	_, err := loadFromYAML(t, `
tasks:
  - id: t1
    activity: ""
    trade: ""
    hazards: []
    controls: []
    initial_risk: 0
    residual_risk: 99
  - id: t1
    activity: Duplicate
    trade: Carpentry
    hazards: ["h"]
    controls: ["c"]
    initial_risk: 8
    residual_risk: 3
`)
	var integrity *IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.GreaterOrEqual(t, len(integrity.Violations), 5,
		"validation reports every violation, not just the first")
}

func TestValidate_SelfReference(t *testing.T) {
	_, err := loadFromYAML(t, `
tasks:
  - id: t1
    activity: Loop
    trade: Carpentry
    hazards: ["h"]
    controls: ["c"]
    initial_risk: 8
    residual_risk: 3
    related: [t1]
`)
	var integrity *IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Contains(t, err.Error(), "references itself")
}

func TestValidate_UnknownEnumValues(t *testing.T) {
	_, err := loadFromYAML(t, `
tasks:
  - id: t1
    activity: Bad Enums
    trade: Carpentry
    hazards: ["h"]
    controls: ["c"]
    initial_risk: 8
    residual_risk: 3
    frequency: hourly
    complexity: wizard
`)
	var integrity *IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Contains(t, err.Error(), `unknown frequency "hourly"`)
	assert.Contains(t, err.Error(), `unknown complexity "wizard"`)
}
