package curriculum

// Category identifies which of the four pathway lists a module belongs to.
// Module ids keep the historical prefix convention (UF-, IS-, RS-, CA-) but
// no engine logic parses prefixes; the category field is authoritative.
type Category string

const (
	CategoryFoundation Category = "foundation"
	CategoryIndustry   Category = "industry"
	CategoryRole       Category = "role"
	CategoryCultural   Category = "cultural"
)

// RoleFocus tags role-category modules so persona selection stays data-driven.
type RoleFocus string

const (
	RoleFocusLeadership     RoleFocus = "leadership"
	RoleFocusPlanning       RoleFocus = "planning"
	RoleFocusTeamManagement RoleFocus = "team_management"
)

// IndustryAll is the sentinel relevance tag matching every industry.
const IndustryAll = "all"

// CulturalVariant carries the culture-adapted rendering of a module.
type CulturalVariant struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Notes       string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Module is a single unit of curriculum content. Catalog-owned instances are
// templates; everything handed to a pathway is a deep copy, so the rule
// evaluator may mutate EstimatedHours and LearningObjectives freely.
type Module struct {
	ID                  string                     `json:"id" yaml:"id"`
	Category            Category                   `json:"category" yaml:"category"`
	Title               string                     `json:"title" yaml:"title"`
	Description         string                     `json:"description" yaml:"description"`
	EstimatedHours      float64                    `json:"estimated_hours" yaml:"estimated_hours"`
	Prerequisites       []string                   `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	LearningObjectives  []string                   `json:"learning_objectives" yaml:"learning_objectives"`
	IndustryRelevance   []string                   `json:"industry_relevance,omitempty" yaml:"industry_relevance,omitempty"`
	RoleFocus           RoleFocus                  `json:"role_focus,omitempty" yaml:"role_focus,omitempty"`
	CulturalAdaptations map[string]CulturalVariant `json:"cultural_adaptations,omitempty" yaml:"cultural_adaptations,omitempty"`
}

// Clone returns a deep copy safe to mutate without touching the receiver.
func (m Module) Clone() Module {
	out := m
	out.Prerequisites = append([]string(nil), m.Prerequisites...)
	out.LearningObjectives = append([]string(nil), m.LearningObjectives...)
	out.IndustryRelevance = append([]string(nil), m.IndustryRelevance...)
	if m.CulturalAdaptations != nil {
		out.CulturalAdaptations = make(map[string]CulturalVariant, len(m.CulturalAdaptations))
		for k, v := range m.CulturalAdaptations {
			out.CulturalAdaptations[k] = v
		}
	}
	return out
}

// RelevantToIndustry reports whether the module applies to the given industry
// tag, honoring the "all" sentinel.
func (m Module) RelevantToIndustry(industry string) bool {
	for _, tag := range m.IndustryRelevance {
		if tag == IndustryAll || tag == industry {
			return true
		}
	}
	return false
}

// ModuleSequence is one entry of a pathway's ordering graph. Order need not
// be globally unique; it breaks ties ascending in next-module selection.
type ModuleSequence struct {
	ModuleID      string   `json:"module_id"`
	Order         int      `json:"order"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	IsOptional    bool     `json:"is_optional"`
}
