package recommendation

import (
	"fmt"
	"strings"

	"github.com/strataleap/readiness-backend/internal/catalog"
	"github.com/strataleap/readiness-backend/internal/domain/curriculum"
	"github.com/strataleap/readiness-backend/internal/pkg/errors"
)

const (
	accelerateFactor = 1.5
	decelerateFactor = 0.7
)

// ModifyCurriculum applies one structural edit and returns a new value; the
// input is never mutated, so callers can keep prior versions. A modification
// referencing an unknown module id returns the input unchanged together with
// ErrModuleNotFound, letting callers tell a failed edit from an empty one.
// TotalHours and CompletionTimeline are recomputed together after every edit.
func ModifyCurriculum(cat *catalog.Catalog, rec curriculum.CurriculumRecommendation, mod curriculum.Modification) (curriculum.CurriculumRecommendation, error) {
	switch mod.Type {
	case curriculum.ModificationAddModule:
		return addModule(cat, rec, mod.TargetModuleID)
	case curriculum.ModificationRemoveModule:
		return removeModule(rec, mod.TargetModuleID)
	case curriculum.ModificationReplaceModule:
		return replaceModule(cat, rec, mod.TargetModuleID, mod.ReplacementModuleID)
	case curriculum.ModificationAdjustPace:
		return adjustPace(rec, mod.Justification), nil
	default:
		return rec, fmt.Errorf("%w: unknown modification type %q", errors.ErrInvalidModification, mod.Type)
	}
}

func addModule(cat *catalog.Catalog, rec curriculum.CurriculumRecommendation, id string) (curriculum.CurriculumRecommendation, error) {
	if containsModule(rec, id) {
		return rec, fmt.Errorf("%w: module %q already present", errors.ErrInvalidModification, id)
	}
	m, err := cat.ModuleByID(id)
	if err != nil {
		return rec, err
	}
	out := rec.Clone()
	switch m.Category {
	case curriculum.CategoryFoundation:
		out.FoundationModules = append(out.FoundationModules, m)
	case curriculum.CategoryIndustry:
		out.IndustryModules = append(out.IndustryModules, m)
	case curriculum.CategoryRole:
		out.RoleSpecificModules = append(out.RoleSpecificModules, m)
	case curriculum.CategoryCultural:
		out.CulturalAdaptationModules = append(out.CulturalAdaptationModules, m)
	}

	// Only prerequisites already satisfied inside the pathway are carried
	// into the sequence entry; the rest are the caller's concern.
	present := idSet(out.AllModules())
	var prereqs []string
	for _, pre := range m.Prerequisites {
		if present[pre] {
			prereqs = append(prereqs, pre)
		}
	}
	out.Sequence = append(out.Sequence, curriculum.ModuleSequence{
		ModuleID:      m.ID,
		Order:         cat.InsertionIndex(m.ID) + 1,
		Prerequisites: prereqs,
		IsOptional:    m.Category == curriculum.CategoryRole || m.Category == curriculum.CategoryCultural,
	})

	out.EstimatedDuration = retime(out.EstimatedDuration, out.EstimatedDuration.TotalHours+m.EstimatedHours)
	return out, nil
}

func removeModule(rec curriculum.CurriculumRecommendation, id string) (curriculum.CurriculumRecommendation, error) {
	if !containsModule(rec, id) {
		return rec, fmt.Errorf("%w: %s", errors.ErrModuleNotFound, id)
	}
	out := rec.Clone()
	var removed curriculum.Module
	for _, list := range []*[]curriculum.Module{
		&out.FoundationModules, &out.IndustryModules,
		&out.RoleSpecificModules, &out.CulturalAdaptationModules,
	} {
		if i := indexOf(*list, id); i >= 0 {
			removed = (*list)[i]
			*list = append((*list)[:i], (*list)[i+1:]...)
			break
		}
	}

	seq := out.Sequence[:0]
	for _, entry := range out.Sequence {
		if entry.ModuleID == id {
			continue
		}
		prereqs := entry.Prerequisites[:0]
		for _, pre := range entry.Prerequisites {
			if pre != id {
				prereqs = append(prereqs, pre)
			}
		}
		entry.Prerequisites = prereqs
		seq = append(seq, entry)
	}
	out.Sequence = seq

	out.EstimatedDuration = retime(out.EstimatedDuration, out.EstimatedDuration.TotalHours-removed.EstimatedHours)
	return out, nil
}

// replaceModule composes remove and add rather than maintaining a third code
// path. Both ids are validated up front so a missing replacement cannot leave
// the curriculum half-edited.
func replaceModule(cat *catalog.Catalog, rec curriculum.CurriculumRecommendation, targetID, replacementID string) (curriculum.CurriculumRecommendation, error) {
	if !containsModule(rec, targetID) {
		return rec, fmt.Errorf("%w: %s", errors.ErrModuleNotFound, targetID)
	}
	if _, err := cat.ModuleByID(replacementID); err != nil {
		return rec, err
	}
	out, err := removeModule(rec, targetID)
	if err != nil {
		return rec, err
	}
	out, err = addModule(cat, out, replacementID)
	if err != nil {
		return rec, err
	}
	return out, nil
}

func adjustPace(rec curriculum.CurriculumRecommendation, justification string) curriculum.CurriculumRecommendation {
	out := rec.Clone()
	factor := decelerateFactor
	if strings.Contains(strings.ToLower(justification), "accelerate") {
		factor = accelerateFactor
	}
	out.EstimatedDuration.WeeklyCommitment *= factor
	out.EstimatedDuration = retime(out.EstimatedDuration, out.EstimatedDuration.TotalHours)
	return out
}

func retime(d curriculum.EstimatedDuration, totalHours float64) curriculum.EstimatedDuration {
	d.TotalHours = totalHours
	d.CompletionTimeline = formatWeeks(weeksFor(totalHours, d.WeeklyCommitment))
	return d
}

func containsModule(rec curriculum.CurriculumRecommendation, id string) bool {
	for _, m := range rec.AllModules() {
		if m.ID == id {
			return true
		}
	}
	return false
}
