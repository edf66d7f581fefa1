package recommendation

import (
	"fmt"
	"strings"

	"github.com/strataleap/readiness-backend/internal/domain/curriculum"
)

const (
	fastCompletionRatio = 0.75
	slowCompletionRatio = 1.5
	skipAheadScore      = 0.9
	reviewScore         = 0.6
	supportScore        = 0.4
	lowEngagement       = 0.3
)

// EvaluateProgress turns live learner telemetry into progression adjustments
// for the progress-tracking collaborator. Signals referencing modules outside
// the curriculum are ignored. Pure: same curriculum and signals always yield
// the same adaptations, in signal order.
func EvaluateProgress(rec curriculum.CurriculumRecommendation, signals []curriculum.ProgressSignal) []curriculum.ProgressAdaptation {
	byID := map[string]curriculum.Module{}
	for _, m := range rec.AllModules() {
		byID[m.ID] = m
	}
	scores := map[string]float64{}
	for _, sig := range signals {
		if sig.Trigger == curriculum.TriggerAssessmentScore {
			scores[sig.ModuleID] = sig.Value
		}
	}

	var out []curriculum.ProgressAdaptation
	for _, sig := range signals {
		m, ok := byID[sig.ModuleID]
		if !ok {
			continue
		}
		switch sig.Trigger {
		case curriculum.TriggerCompletionTime:
			out = append(out, completionAdaptations(m, sig.Value, scores)...)
		case curriculum.TriggerAssessmentScore:
			out = append(out, scoreAdaptations(rec, m, sig.Value)...)
		case curriculum.TriggerEngagementLevel:
			if sig.Value < lowEngagement {
				out = append(out, curriculum.ProgressAdaptation{
					Adaptation: curriculum.AdaptAddSupport,
					ModuleIDs:  []string{m.ID},
					Reasoning:  fmt.Sprintf("engagement %.2f on %q is below the %.2f support threshold", sig.Value, m.ID, lowEngagement),
				})
			}
		case curriculum.TriggerUserFeedback:
			out = append(out, feedbackAdaptations(m, sig.Feedback)...)
		}
	}
	return out
}

func completionAdaptations(m curriculum.Module, actualHours float64, scores map[string]float64) []curriculum.ProgressAdaptation {
	if m.EstimatedHours <= 0 || actualHours <= 0 {
		return nil
	}
	ratio := actualHours / m.EstimatedHours
	switch {
	case ratio < fastCompletionRatio:
		if score, ok := scores[m.ID]; ok && score >= skipAheadScore {
			return []curriculum.ProgressAdaptation{{
				Adaptation: curriculum.AdaptSkipAhead,
				ModuleIDs:  []string{m.ID},
				Reasoning: fmt.Sprintf("completed %q in %.0f%% of the estimate with assessment score %.2f",
					m.ID, ratio*100, score),
			}}
		}
		return []curriculum.ProgressAdaptation{{
			Adaptation: curriculum.AdaptAccelerate,
			ModuleIDs:  []string{m.ID},
			Reasoning:  fmt.Sprintf("completed %q in %.0f%% of the estimated time", m.ID, ratio*100),
		}}
	case ratio > slowCompletionRatio:
		return []curriculum.ProgressAdaptation{{
			Adaptation: curriculum.AdaptDecelerate,
			ModuleIDs:  []string{m.ID},
			Reasoning:  fmt.Sprintf("%q took %.0f%% of the estimated time", m.ID, ratio*100),
		}}
	default:
		return nil
	}
}

// scoreAdaptations recommends revisiting the module's prerequisite chain on a
// weak score, or extra support on a failing one.
func scoreAdaptations(rec curriculum.CurriculumRecommendation, m curriculum.Module, score float64) []curriculum.ProgressAdaptation {
	switch {
	case score < supportScore:
		return []curriculum.ProgressAdaptation{{
			Adaptation: curriculum.AdaptAddSupport,
			ModuleIDs:  []string{m.ID},
			Reasoning:  fmt.Sprintf("assessment score %.2f on %q is below the %.2f support threshold", score, m.ID, supportScore),
		}}
	case score < reviewScore:
		targets := PrerequisiteChain(rec.Sequence, m.ID)
		if len(targets) == 0 {
			targets = []string{m.ID}
		}
		return []curriculum.ProgressAdaptation{{
			Adaptation: curriculum.AdaptReviewPrevious,
			ModuleIDs:  targets,
			Reasoning:  fmt.Sprintf("assessment score %.2f on %q suggests revisiting earlier material", score, m.ID),
		}}
	default:
		return nil
	}
}

func feedbackAdaptations(m curriculum.Module, feedback string) []curriculum.ProgressAdaptation {
	text := strings.ToLower(feedback)
	switch {
	case strings.Contains(text, "too easy"):
		return []curriculum.ProgressAdaptation{{
			Adaptation: curriculum.AdaptAccelerate,
			ModuleIDs:  []string{m.ID},
			Reasoning:  fmt.Sprintf("learner reported %q as too easy", m.ID),
		}}
	case strings.Contains(text, "too hard"), strings.Contains(text, "too difficult"):
		return []curriculum.ProgressAdaptation{{
			Adaptation: curriculum.AdaptDecelerate,
			ModuleIDs:  []string{m.ID},
			Reasoning:  fmt.Sprintf("learner reported %q as too hard", m.ID),
		}}
	default:
		return nil
	}
}
