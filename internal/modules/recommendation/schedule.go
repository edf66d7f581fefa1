package recommendation

import (
	"fmt"
	"math"

	"github.com/strataleap/readiness-backend/internal/domain/assessment"
	"github.com/strataleap/readiness-backend/internal/domain/curriculum"
)

const (
	intensivePaceFactor = 1.5
	extendedPaceFactor  = 0.7

	objectivesPerMilestoneModule = 2
	checkpointInterval           = 3
)

// EstimateTimeCommitment converts a finalized curriculum and the respondent's
// weekly preference into the three pacing variants and a week-by-week
// milestone schedule.
func EstimateTimeCommitment(rec curriculum.CurriculumRecommendation, prefs assessment.Preferences) curriculum.TimeCommitmentEstimation {
	total := rec.EstimatedDuration.TotalHours
	weekly := prefs.TimeCommitment
	if weekly <= 0 {
		weekly = rec.EstimatedDuration.WeeklyCommitment
	}

	standard := weeksFor(total, weekly)
	est := curriculum.TimeCommitmentEstimation{
		TotalHours:      total,
		WeeklyHours:     weekly,
		IntensiveWeeks:  weeksFor(total, weekly*intensivePaceFactor),
		StandardWeeks:   standard,
		ExtendedWeeks:   weeksFor(total, weekly*extendedPaceFactor),
		RecommendedPace: recommendedPace(prefs.Urgency),
		Milestones:      buildMilestones(rec.AllModules(), standard),
	}
	return est
}

func recommendedPace(urgency string) string {
	switch urgency {
	case assessment.UrgencyImmediate:
		return curriculum.PaceIntensive
	case assessment.UrgencyExploratory:
		return curriculum.PaceExtended
	default:
		return curriculum.PaceStandard
	}
}

// buildMilestones distributes the modules evenly across the standard-pace
// weeks, ceil division deciding the per-week module count. Every third week
// carries an assessment checkpoint.
func buildMilestones(modules []curriculum.Module, weeks int) []curriculum.Milestone {
	if weeks <= 0 || len(modules) == 0 {
		return nil
	}
	perWeek := int(math.Ceil(float64(len(modules)) / float64(weeks)))
	var out []curriculum.Milestone
	for week := 1; week <= weeks; week++ {
		start := (week - 1) * perWeek
		if start >= len(modules) {
			break
		}
		end := start + perWeek
		if end > len(modules) {
			end = len(modules)
		}
		slice := modules[start:end]

		m := curriculum.Milestone{
			Week:                 week,
			Title:                milestoneTitle(slice),
			Description:          fmt.Sprintf("Complete %d module(s): %s", len(slice), moduleTitles(slice)),
			AssessmentCheckpoint: week%checkpointInterval == 0,
		}
		for _, mod := range slice {
			m.ModuleIDs = append(m.ModuleIDs, mod.ID)
			objs := mod.LearningObjectives
			if len(objs) > objectivesPerMilestoneModule {
				objs = objs[:objectivesPerMilestoneModule]
			}
			m.Objectives = append(m.Objectives, objs...)
		}
		out = append(out, m)
	}
	return out
}

// milestoneTitle names the week after its dominant module category; a week
// with no strict majority category gets the generic title.
func milestoneTitle(modules []curriculum.Module) string {
	counts := map[curriculum.Category]int{}
	for _, m := range modules {
		counts[m.Category]++
	}
	var dominant curriculum.Category
	best, tied := 0, false
	for _, cat := range []curriculum.Category{
		curriculum.CategoryFoundation,
		curriculum.CategoryIndustry,
		curriculum.CategoryRole,
		curriculum.CategoryCultural,
	} {
		switch {
		case counts[cat] > best:
			dominant, best, tied = cat, counts[cat], false
		case counts[cat] == best && counts[cat] > 0:
			tied = true
		}
	}
	if tied {
		return "Skill Development"
	}
	switch dominant {
	case curriculum.CategoryFoundation:
		return "Foundation Building"
	case curriculum.CategoryIndustry:
		return "Industry Application"
	case curriculum.CategoryRole:
		return "Leadership Development"
	case curriculum.CategoryCultural:
		return "Cultural Integration"
	default:
		return "Skill Development"
	}
}

func moduleTitles(modules []curriculum.Module) string {
	s := ""
	for i, m := range modules {
		if i > 0 {
			s += ", "
		}
		s += m.Title
	}
	return s
}
