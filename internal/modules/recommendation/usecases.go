// Package recommendation implements the curriculum adaptation engine:
// persona classification, pathway assembly against the module catalog,
// adaptive rule evaluation, pacing estimation, post-hoc curriculum
// modification, and progress-driven adaptation.
//
// Everything here is computation over immutable inputs; the catalog hands out
// copies, so independent assessment sessions can run concurrently without
// coordination.
package recommendation

import (
	"context"

	"github.com/strataleap/readiness-backend/internal/catalog"
	"github.com/strataleap/readiness-backend/internal/domain/assessment"
	"github.com/strataleap/readiness-backend/internal/domain/curriculum"
	"github.com/strataleap/readiness-backend/internal/platform/logger"
)

type UsecasesDeps struct {
	Log     *logger.Logger
	Catalog *catalog.Catalog
}

type Usecases struct {
	deps UsecasesDeps
}

func New(deps UsecasesDeps) Usecases { return Usecases{deps: deps} }

func (u Usecases) WithLog(log *logger.Logger) Usecases {
	u.deps.Log = log
	return u
}

// GenerateCurriculumInput carries one assessment session: the normalized
// dimension scores plus the respondent's industry, cultural contexts, and
// preferences. ExtraRules are appended after the built-in rule set.
type GenerateCurriculumInput struct {
	Scores           assessment.DimensionScores
	Industry         string
	CulturalContexts []string
	Preferences      assessment.Preferences
	ExtraRules       []curriculum.AdaptiveRule
}

type GenerateCurriculumOutput struct {
	Classification assessment.PersonaClassification
	Context        assessment.Context
	Recommendation curriculum.CurriculumRecommendation
	Estimation     curriculum.TimeCommitmentEstimation
}

// GenerateCurriculum runs the full pipeline: classify, build the pathway
// through the adaptive rule evaluator, then estimate pacing and milestones.
func (u Usecases) GenerateCurriculum(ctx context.Context, in GenerateCurriculumInput) (GenerateCurriculumOutput, error) {
	if err := ctx.Err(); err != nil {
		return GenerateCurriculumOutput{}, err
	}

	cls := Classify(in.Scores)
	actx := assessment.Context{
		Scores:           in.Scores,
		Persona:          cls.PrimaryPersona,
		Industry:         in.Industry,
		CulturalContexts: in.CulturalContexts,
	}

	rec, err := BuildPathway(u.deps.Catalog, actx, in.Preferences, in.ExtraRules...)
	if err != nil {
		if u.deps.Log != nil {
			u.deps.Log.Error("pathway build failed",
				"persona", string(cls.PrimaryPersona),
				"industry", in.Industry,
				"error", err.Error(),
			)
		}
		return GenerateCurriculumOutput{}, err
	}

	est := EstimateTimeCommitment(rec, in.Preferences)
	if u.deps.Log != nil {
		u.deps.Log.Info("curriculum generated",
			"persona", string(cls.PrimaryPersona),
			"industry", in.Industry,
			"modules", len(rec.AllModules()),
			"total_hours", rec.EstimatedDuration.TotalHours,
			"timeline", rec.EstimatedDuration.CompletionTimeline,
		)
	}

	return GenerateCurriculumOutput{
		Classification: cls,
		Context:        actx,
		Recommendation: rec,
		Estimation:     est,
	}, nil
}

// ModifyCurriculum applies one structural edit through the modifier.
func (u Usecases) ModifyCurriculum(rec curriculum.CurriculumRecommendation, mod curriculum.Modification) (curriculum.CurriculumRecommendation, error) {
	out, err := ModifyCurriculum(u.deps.Catalog, rec, mod)
	if err != nil && u.deps.Log != nil {
		u.deps.Log.Warn("curriculum modification rejected",
			"type", string(mod.Type),
			"target", mod.TargetModuleID,
			"error", err.Error(),
		)
	}
	return out, err
}

// EvaluateProgress maps learner telemetry onto progression adjustments.
func (u Usecases) EvaluateProgress(rec curriculum.CurriculumRecommendation, signals []curriculum.ProgressSignal) []curriculum.ProgressAdaptation {
	return EvaluateProgress(rec, signals)
}
