// Package catalog holds the static registry of learning modules. The catalog
// is template data: every accessor returns deep copies, so concurrent pathway
// builds can mutate what they receive without corrupting each other.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strataleap/readiness-backend/internal/domain/assessment"
	"github.com/strataleap/readiness-backend/internal/domain/curriculum"
	"github.com/strataleap/readiness-backend/internal/pkg/errors"
)

//go:embed modules.yaml
var defaultCatalogYAML []byte

type Catalog struct {
	modules []curriculum.Module
	byID    map[string]int
}

type catalogFile struct {
	Modules []curriculum.Module `yaml:"modules"`
}

// Default builds the catalog from the embedded module data.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// LoadFile builds a catalog from an operator-supplied YAML file, replacing
// the embedded data wholesale.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates catalog YAML.
func Parse(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Modules)
}

// New validates the module set and indexes it. Validation fails fast on
// duplicate ids, non-positive hours, unknown categories, and prerequisite
// references that point outside the catalog.
func New(modules []curriculum.Module) (*Catalog, error) {
	byID := make(map[string]int, len(modules))
	for i, m := range modules {
		if m.ID == "" {
			return nil, fmt.Errorf("%w: module %d has no id", errors.ErrInvalidArgument, i)
		}
		if _, dup := byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate module id %q", errors.ErrInvalidArgument, m.ID)
		}
		if m.EstimatedHours <= 0 {
			return nil, fmt.Errorf("%w: module %q has non-positive hours", errors.ErrInvalidArgument, m.ID)
		}
		switch m.Category {
		case curriculum.CategoryFoundation, curriculum.CategoryIndustry,
			curriculum.CategoryRole, curriculum.CategoryCultural:
		default:
			return nil, fmt.Errorf("%w: module %q has unknown category %q", errors.ErrInvalidArgument, m.ID, m.Category)
		}
		byID[m.ID] = i
	}
	for _, m := range modules {
		for _, pre := range m.Prerequisites {
			if _, ok := byID[pre]; !ok {
				return nil, fmt.Errorf("%w: module %q requires unknown module %q",
					errors.ErrDanglingPrerequisite, m.ID, pre)
			}
		}
	}
	own := make([]curriculum.Module, len(modules))
	for i, m := range modules {
		own[i] = m.Clone()
	}
	return &Catalog{modules: own, byID: byID}, nil
}

// Len reports the number of modules in the catalog.
func (c *Catalog) Len() int { return len(c.modules) }

// Modules returns a copy of the full catalog in insertion order.
func (c *Catalog) Modules() []curriculum.Module {
	return c.copyWhere(func(curriculum.Module) bool { return true })
}

// ModuleByID returns a copy of the module, or ErrModuleNotFound.
func (c *Catalog) ModuleByID(id string) (curriculum.Module, error) {
	i, ok := c.byID[id]
	if !ok {
		return curriculum.Module{}, fmt.Errorf("%w: %s", errors.ErrModuleNotFound, id)
	}
	return c.modules[i].Clone(), nil
}

// InsertionIndex returns the catalog position of a module id, or -1.
func (c *Catalog) InsertionIndex(id string) int {
	i, ok := c.byID[id]
	if !ok {
		return -1
	}
	return i
}

// FoundationModules returns every foundation-category module.
func (c *Catalog) FoundationModules() []curriculum.Module {
	return c.copyWhere(func(m curriculum.Module) bool {
		return m.Category == curriculum.CategoryFoundation
	})
}

// IndustryModules returns industry-category modules relevant to the given
// industry tag (exact match or the "all" sentinel). An empty industry returns
// the unfiltered industry set; an unknown industry yields an empty list.
func (c *Catalog) IndustryModules(industry string) []curriculum.Module {
	return c.copyWhere(func(m curriculum.Module) bool {
		if m.Category != curriculum.CategoryIndustry {
			return false
		}
		if industry == "" {
			return true
		}
		return m.RelevantToIndustry(industry)
	})
}

// RoleSpecificModules returns the role-category modules for a persona:
// Architect takes all of them, Catalyst leadership and team management,
// Contributor planning and team management, Explorer team management only,
// Observer none. An unrecognized persona falls back to the first two
// role-category entries; the fallback is asserted behavior inherited from the
// original system, kept as-is rather than generalized.
func (c *Catalog) RoleSpecificModules(persona assessment.Persona) []curriculum.Module {
	var allowed map[curriculum.RoleFocus]bool
	switch persona {
	case assessment.PersonaArchitect:
		allowed = nil // all
	case assessment.PersonaCatalyst:
		allowed = map[curriculum.RoleFocus]bool{
			curriculum.RoleFocusLeadership:     true,
			curriculum.RoleFocusTeamManagement: true,
		}
	case assessment.PersonaContributor:
		allowed = map[curriculum.RoleFocus]bool{
			curriculum.RoleFocusPlanning:       true,
			curriculum.RoleFocusTeamManagement: true,
		}
	case assessment.PersonaExplorer:
		allowed = map[curriculum.RoleFocus]bool{
			curriculum.RoleFocusTeamManagement: true,
		}
	case assessment.PersonaObserver:
		return []curriculum.Module{}
	default:
		out := c.copyWhere(func(m curriculum.Module) bool {
			return m.Category == curriculum.CategoryRole
		})
		if len(out) > 2 {
			out = out[:2]
		}
		return out
	}
	return c.copyWhere(func(m curriculum.Module) bool {
		if m.Category != curriculum.CategoryRole {
			return false
		}
		return allowed == nil || allowed[m.RoleFocus]
	})
}

// CulturalAdaptationModules returns cultural-category modules whose
// adaptation map contains any of the requested context tags. An empty context
// list returns the unfiltered cultural set.
func (c *Catalog) CulturalAdaptationModules(contexts []string) []curriculum.Module {
	return c.copyWhere(func(m curriculum.Module) bool {
		if m.Category != curriculum.CategoryCultural {
			return false
		}
		if len(contexts) == 0 {
			return true
		}
		for _, tag := range contexts {
			if _, ok := m.CulturalAdaptations[tag]; ok {
				return true
			}
		}
		return false
	})
}

func (c *Catalog) copyWhere(keep func(curriculum.Module) bool) []curriculum.Module {
	out := make([]curriculum.Module, 0, len(c.modules))
	for _, m := range c.modules {
		if keep(m) {
			out = append(out, m.Clone())
		}
	}
	return out
}
