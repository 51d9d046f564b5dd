package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/safework/swmsgen/internal/domain"
)

//go:embed data/*.yaml
var dataFS embed.FS

// taskFile is the on-disk YAML shape of a catalog data file.
type taskFile struct {
	Tasks []taskEntry `yaml:"tasks"`
}

type taskEntry struct {
	ID          string   `yaml:"id"`
	Activity    string   `yaml:"activity"`
	Category    string   `yaml:"category"`
	Subcategory string   `yaml:"subcategory"`
	Trade       string   `yaml:"trade"`
	AllTrades   bool     `yaml:"all_trades"`
	Hazards     []string `yaml:"hazards"`
	InitialRisk int      `yaml:"initial_risk"`
	Controls    []string `yaml:"controls"`
	Legislation []string `yaml:"legislation"`
	Residual    int      `yaml:"residual_risk"`
	Responsible string   `yaml:"responsible"`
	PPE         []string `yaml:"ppe"`
	Training    []string `yaml:"training"`
	Related     []string `yaml:"related"`
	Frequency   string   `yaml:"frequency"`
	Complexity  string   `yaml:"complexity"`
}

// Load parses the embedded data files and validates catalog integrity.
// Any integrity violation is fatal: the caller is expected to abort at
// startup rather than serve requests from a broken catalog.
func Load() (*Catalog, error) {
	return loadFS(dataFS)
}

func loadFS(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "data/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("globbing catalog data: %w", err)
	}
	// Glob order is not guaranteed on all fs implementations; declaration
	// order must be stable across runs.
	sort.Strings(names)

	var tasks []domain.TaskDefinition
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var file taskFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		for _, e := range file.Tasks {
			tasks = append(tasks, domain.TaskDefinition{
				TaskID:                e.ID,
				Activity:              e.Activity,
				Category:              e.Category,
				Subcategory:           e.Subcategory,
				Trade:                 e.Trade,
				ApplicableToAllTrades: e.AllTrades || e.Trade == "Universal",
				Hazards:               e.Hazards,
				InitialRiskScore:      e.InitialRisk,
				ControlMeasures:       e.Controls,
				Legislation:           e.Legislation,
				ResidualRiskScore:     e.Residual,
				Responsible:           e.Responsible,
				PPE:                   e.PPE,
				TrainingRequired:      e.Training,
				RelatedTasks:          e.Related,
				Frequency:             domain.Frequency(e.Frequency),
				Complexity:            domain.Complexity(e.Complexity),
			})
		}
	}

	byID := make(map[string]int, len(tasks))
	for i, t := range tasks {
		byID[t.TaskID] = i
	}

	c := &Catalog{tasks: tasks, byID: byID}
	if errs := validate(c); len(errs) > 0 {
		return nil, &IntegrityError{Violations: errs}
	}
	return c, nil
}
