package recommendation

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/strataleap/readiness-backend/internal/domain/assessment"
	"github.com/strataleap/readiness-backend/internal/domain/curriculum"
	"github.com/strataleap/readiness-backend/internal/types"
)

// storedScoreScale converts the engine's normalized scores to the 0-100
// scale used by stored assessment rows.
const storedScoreScale = 100

// AssessmentRecord builds the persistence handoff row for a classification.
func AssessmentRecord(respondentID uuid.UUID, actx assessment.Context, cls assessment.PersonaClassification) (types.AssessmentResult, error) {
	chars, err := json.Marshal(cls.SecondaryCharacteristics)
	if err != nil {
		return types.AssessmentResult{}, fmt.Errorf("marshal characteristics: %w", err)
	}
	contexts, err := json.Marshal(actx.CulturalContexts)
	if err != nil {
		return types.AssessmentResult{}, fmt.Errorf("marshal cultural contexts: %w", err)
	}
	return types.AssessmentResult{
		RespondentID:            respondentID,
		StrategicAuthority:      actx.Scores.StrategicAuthority * storedScoreScale,
		OrganizationalInfluence: actx.Scores.OrganizationalInfluence * storedScoreScale,
		ResourceAvailability:    actx.Scores.ResourceAvailability * storedScoreScale,
		ImplementationReadiness: actx.Scores.ImplementationReadiness * storedScoreScale,
		CulturalAlignment:       actx.Scores.CulturalAlignment * storedScoreScale,
		Persona:                 string(cls.PrimaryPersona),
		ConfidenceScore:         cls.ConfidenceScore,
		Characteristics:         datatypes.JSON(chars),
		Industry:                actx.Industry,
		CulturalContexts:        datatypes.JSON(contexts),
	}, nil
}

// PlanRecord wraps a finalized recommendation for storage.
func PlanRecord(assessmentID *uuid.UUID, actx assessment.Context, rec curriculum.CurriculumRecommendation) (types.CurriculumPlan, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return types.CurriculumPlan{}, fmt.Errorf("marshal recommendation: %w", err)
	}
	return types.CurriculumPlan{
		AssessmentID:       assessmentID,
		Persona:            string(actx.Persona),
		Industry:           actx.Industry,
		TotalHours:         rec.EstimatedDuration.TotalHours,
		WeeklyCommitment:   rec.EstimatedDuration.WeeklyCommitment,
		CompletionTimeline: rec.EstimatedDuration.CompletionTimeline,
		Recommendation:     datatypes.JSON(payload),
	}, nil
}

// ProgressRecords converts adaptation recommendations into storable events.
func ProgressRecords(planID uuid.UUID, adaptations []curriculum.ProgressAdaptation) ([]types.ProgressEvent, error) {
	out := make([]types.ProgressEvent, 0, len(adaptations))
	for _, a := range adaptations {
		ids, err := json.Marshal(a.ModuleIDs)
		if err != nil {
			return nil, fmt.Errorf("marshal module ids: %w", err)
		}
		out = append(out, types.ProgressEvent{
			PlanID:     planID,
			Adaptation: string(a.Adaptation),
			ModuleIDs:  datatypes.JSON(ids),
			Reasoning:  a.Reasoning,
		})
	}
	return out, nil
}
