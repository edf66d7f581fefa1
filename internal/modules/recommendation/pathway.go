package recommendation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/strataleap/readiness-backend/internal/catalog"
	"github.com/strataleap/readiness-backend/internal/domain/assessment"
	"github.com/strataleap/readiness-backend/internal/domain/curriculum"
	"github.com/strataleap/readiness-backend/internal/pkg/errors"
)

const maxOptionalEnhancements = 3

// BuildPathway assembles, adapts, and finalizes a curriculum for one
// assessment. Default adaptive rules run first, then any caller-supplied
// extras. The catalog is consulted read-only; every module in the result is
// an independent copy.
func BuildPathway(cat *catalog.Catalog, ctx assessment.Context, prefs assessment.Preferences, extraRules ...curriculum.AdaptiveRule) (curriculum.CurriculumRecommendation, error) {
	candidates := gatherCandidates(cat, ctx)

	before := idSet(candidates)
	rules := append(DefaultRules(), extraRules...)
	adapted := ApplyRules(cat, candidates, rules, ctx)

	// Ids the rules removed: their prerequisite obligations are waived.
	waived := map[string]bool{}
	after := idSet(adapted)
	for id := range before {
		if !after[id] {
			waived[id] = true
		}
	}

	seq, err := buildSequence(cat, adapted, waived)
	if err != nil {
		return curriculum.CurriculumRecommendation{}, err
	}

	rec := partition(adapted)
	rec.Sequence = seq

	total := 0.0
	for _, m := range adapted {
		total += m.EstimatedHours
	}
	weekly := prefs.TimeCommitment
	if weekly <= 0 {
		weekly = ctx.Persona.DefaultWeeklyCommitment()
	}
	rec.EstimatedDuration = curriculum.EstimatedDuration{
		TotalHours:         total,
		WeeklyCommitment:   weekly,
		CompletionTimeline: formatWeeks(weeksFor(total, weekly)),
	}

	rec.LearningObjectives = collectObjectives(adapted, prefs)
	rec.SuccessMetrics = successMetrics(ctx.Persona)
	rec.Prerequisites = readinessGaps(ctx)
	rec.OptionalEnhancements = optionalEnhancements(cat, after, ctx.Persona)
	return rec, nil
}

func gatherCandidates(cat *catalog.Catalog, ctx assessment.Context) []curriculum.Module {
	out := cat.FoundationModules()
	if ctx.Industry != "" {
		out = append(out, cat.IndustryModules(ctx.Industry)...)
	}
	out = append(out, cat.RoleSpecificModules(ctx.Persona)...)
	if len(ctx.CulturalContexts) > 0 {
		out = append(out, cat.CulturalAdaptationModules(ctx.CulturalContexts)...)
	}
	return out
}

// buildSequence derives the ordering graph for the post-rule module list.
// Order is the catalog insertion index + 1; cultural and role modules are
// optional. A prerequisite that is neither in the pathway nor waived by a
// rule would stall progression forever, so construction rejects it outright.
func buildSequence(cat *catalog.Catalog, modules []curriculum.Module, waived map[string]bool) ([]curriculum.ModuleSequence, error) {
	present := idSet(modules)
	seq := make([]curriculum.ModuleSequence, 0, len(modules))
	for _, m := range modules {
		var prereqs []string
		for _, pre := range m.Prerequisites {
			if waived[pre] {
				continue
			}
			if !present[pre] {
				return nil, fmt.Errorf("%w: module %q requires %q which is not in the pathway",
					errors.ErrDanglingPrerequisite, m.ID, pre)
			}
			prereqs = append(prereqs, pre)
		}
		seq = append(seq, curriculum.ModuleSequence{
			ModuleID:      m.ID,
			Order:         cat.InsertionIndex(m.ID) + 1,
			Prerequisites: prereqs,
			IsOptional:    m.Category == curriculum.CategoryRole || m.Category == curriculum.CategoryCultural,
		})
	}
	return seq, nil
}

func partition(modules []curriculum.Module) curriculum.CurriculumRecommendation {
	rec := curriculum.CurriculumRecommendation{
		FoundationModules:         []curriculum.Module{},
		IndustryModules:           []curriculum.Module{},
		RoleSpecificModules:       []curriculum.Module{},
		CulturalAdaptationModules: []curriculum.Module{},
	}
	for _, m := range modules {
		switch m.Category {
		case curriculum.CategoryFoundation:
			rec.FoundationModules = append(rec.FoundationModules, m)
		case curriculum.CategoryIndustry:
			rec.IndustryModules = append(rec.IndustryModules, m)
		case curriculum.CategoryRole:
			rec.RoleSpecificModules = append(rec.RoleSpecificModules, m)
		case curriculum.CategoryCultural:
			rec.CulturalAdaptationModules = append(rec.CulturalAdaptationModules, m)
		}
	}
	return rec
}

func collectObjectives(modules []curriculum.Module, prefs assessment.Preferences) []string {
	seen := map[string]bool{}
	var out []string
	add := func(obj string) {
		if obj == "" || seen[obj] {
			return
		}
		seen[obj] = true
		out = append(out, obj)
	}
	for _, m := range modules {
		for _, obj := range m.LearningObjectives {
			add(obj)
		}
	}
	for _, area := range prefs.FocusAreas {
		add("Focus area: " + area)
	}
	if strings.EqualFold(strings.TrimSpace(prefs.LearningStyle), "hands-on") {
		add("Complete hands-on practice exercises alongside each module")
	}
	return out
}

func successMetrics(persona assessment.Persona) []string {
	metrics := []string{
		"Complete all required modules in the recommended sequence",
		"Pass every third-week assessment checkpoint",
	}
	switch persona {
	case assessment.PersonaArchitect:
		metrics = append(metrics, "Publish an organization-wide AI strategy within one quarter of completion")
	case assessment.PersonaCatalyst:
		metrics = append(metrics, "Launch at least one cross-functional AI initiative")
	case assessment.PersonaContributor:
		metrics = append(metrics, "Deliver an AI pilot project plan approved by leadership")
	case assessment.PersonaExplorer:
		metrics = append(metrics, "Complete a team-level AI readiness review")
	default:
		metrics = append(metrics, "Articulate the organization's AI opportunity to a peer")
	}
	return metrics
}

// readinessGaps produces human-readable gap statements, not module ids.
func readinessGaps(ctx assessment.Context) []string {
	var out []string
	if ctx.Scores.StrategicAuthority < 0.3 {
		out = append(out, "Develop basic strategic thinking capability before starting the pathway")
	}
	if ctx.Scores.ImplementationReadiness < 0.4 {
		out = append(out, "Establish change management fundamentals to support implementation modules")
	}
	if ctx.Persona == assessment.PersonaObserver {
		out = append(out, "Demonstrate willingness to engage with AI adoption initiatives")
	}
	return out
}

// optionalEnhancements suggests up to three catalog modules not already in
// the pathway, preferring titles that match the persona's characteristic
// keywords. Sorting is stable so catalog order breaks ties.
func optionalEnhancements(cat *catalog.Catalog, included map[string]bool, persona assessment.Persona) []curriculum.Module {
	keywords := personaKeywords(persona)
	var candidates []curriculum.Module
	for _, m := range cat.Modules() {
		if !included[m.ID] {
			candidates = append(candidates, m)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return titleMatches(candidates[i].Title, keywords) && !titleMatches(candidates[j].Title, keywords)
	})
	if len(candidates) > maxOptionalEnhancements {
		candidates = candidates[:maxOptionalEnhancements]
	}
	return candidates
}

func personaKeywords(p assessment.Persona) []string {
	switch p {
	case assessment.PersonaArchitect:
		return []string{"Advanced", "Strategic"}
	case assessment.PersonaCatalyst:
		return []string{"Leadership", "Change"}
	case assessment.PersonaContributor:
		return []string{"Planning", "Implementation"}
	case assessment.PersonaExplorer:
		return []string{"Fundamentals", "Teams"}
	default:
		return []string{"Fundamentals"}
	}
}

func titleMatches(title string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(strings.ToLower(title), strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func idSet(modules []curriculum.Module) map[string]bool {
	out := make(map[string]bool, len(modules))
	for _, m := range modules {
		out[m.ID] = true
	}
	return out
}

func weeksFor(totalHours, weeklyHours float64) int {
	if weeklyHours <= 0 || totalHours <= 0 {
		return 0
	}
	return int(math.Ceil(totalHours / weeklyHours))
}

func formatWeeks(weeks int) string {
	return fmt.Sprintf("%d weeks", weeks)
}
