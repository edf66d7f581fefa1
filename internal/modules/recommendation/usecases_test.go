package recommendation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/strataleap/readiness-backend/internal/domain/assessment"
	"github.com/strataleap/readiness-backend/internal/domain/curriculum"
	"github.com/strataleap/readiness-backend/internal/pkg/pointers"
)

func testUsecases(t *testing.T) Usecases {
	t.Helper()
	return New(UsecasesDeps{Catalog: testCatalog(t)})
}

func architectInput() GenerateCurriculumInput {
	return GenerateCurriculumInput{
		Scores: assessment.DimensionScores{
			StrategicAuthority: 0.9, OrganizationalInfluence: 0.85,
			ResourceAvailability: 0.8, ImplementationReadiness: 0.6, CulturalAlignment: 0.7,
		},
		Industry:         "financial_services",
		CulturalContexts: []string{"east-africa", "swahili"},
	}
}

func TestGenerateCurriculum_Pipeline(t *testing.T) {
	uc := testUsecases(t)

	out, err := uc.GenerateCurriculum(context.Background(), architectInput())
	if err != nil {
		t.Fatalf("GenerateCurriculum: %v", err)
	}
	if out.Classification.PrimaryPersona != assessment.PersonaArchitect {
		t.Fatalf("persona = %s, want architect", out.Classification.PrimaryPersona)
	}
	if out.Context.Persona != out.Classification.PrimaryPersona {
		t.Fatalf("context persona diverged from classification")
	}
	if out.Recommendation.EstimatedDuration.TotalHours != 49 {
		t.Fatalf("total hours = %v, want 49", out.Recommendation.EstimatedDuration.TotalHours)
	}
	if out.Estimation.StandardWeeks != 17 {
		t.Fatalf("standard weeks = %d, want 17", out.Estimation.StandardWeeks)
	}
}

func TestGenerateCurriculum_CancelledContext(t *testing.T) {
	uc := testUsecases(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := uc.GenerateCurriculum(ctx, architectInput()); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestGenerateCurriculumBatch_PreservesOrder(t *testing.T) {
	uc := testUsecases(t)

	observer := GenerateCurriculumInput{
		Scores: assessment.DimensionScores{
			StrategicAuthority: 0.2, OrganizationalInfluence: 0.2,
			ResourceAvailability: 0.2, ImplementationReadiness: 0.2, CulturalAlignment: 0.2,
		},
	}
	inputs := []GenerateCurriculumInput{architectInput(), observer, architectInput()}

	outs, err := uc.GenerateCurriculumBatch(context.Background(), inputs)
	if err != nil {
		t.Fatalf("GenerateCurriculumBatch: %v", err)
	}
	if len(outs) != 3 {
		t.Fatalf("outputs = %d, want 3", len(outs))
	}
	if outs[0].Classification.PrimaryPersona != assessment.PersonaArchitect ||
		outs[1].Classification.PrimaryPersona != assessment.PersonaObserver ||
		outs[2].Classification.PrimaryPersona != assessment.PersonaArchitect {
		t.Fatalf("batch results out of order: %s, %s, %s",
			outs[0].Classification.PrimaryPersona,
			outs[1].Classification.PrimaryPersona,
			outs[2].Classification.PrimaryPersona)
	}
	if outs[0].Recommendation.EstimatedDuration != outs[2].Recommendation.EstimatedDuration {
		t.Fatalf("identical inputs produced different durations")
	}
}

func TestRecords_RoundTrip(t *testing.T) {
	uc := testUsecases(t)

	out, err := uc.GenerateCurriculum(context.Background(), architectInput())
	if err != nil {
		t.Fatalf("GenerateCurriculum: %v", err)
	}

	respondent := uuid.New()
	ar, err := AssessmentRecord(respondent, out.Context, out.Classification)
	if err != nil {
		t.Fatalf("AssessmentRecord: %v", err)
	}
	if ar.StrategicAuthority != 90 {
		t.Fatalf("stored strategic authority = %v, want 90 on the 0-100 scale", ar.StrategicAuthority)
	}
	if ar.Persona != string(assessment.PersonaArchitect) {
		t.Fatalf("stored persona = %q", ar.Persona)
	}

	plan, err := PlanRecord(pointers.Ptr(uuid.New()), out.Context, out.Recommendation)
	if err != nil {
		t.Fatalf("PlanRecord: %v", err)
	}
	if plan.TotalHours != 49 || plan.CompletionTimeline != "17 weeks" {
		t.Fatalf("plan duration columns = %v / %q", plan.TotalHours, plan.CompletionTimeline)
	}
	var decoded curriculum.CurriculumRecommendation
	if err := json.Unmarshal(plan.Recommendation, &decoded); err != nil {
		t.Fatalf("decode stored recommendation: %v", err)
	}
	if len(decoded.AllModules()) != len(out.Recommendation.AllModules()) {
		t.Fatalf("stored payload lost modules: %d vs %d",
			len(decoded.AllModules()), len(out.Recommendation.AllModules()))
	}

	events, err := ProgressRecords(plan.ID, []curriculum.ProgressAdaptation{
		{Adaptation: curriculum.AdaptAccelerate, ModuleIDs: []string{"UF-1E"}, Reasoning: "ahead of schedule"},
	})
	if err != nil {
		t.Fatalf("ProgressRecords: %v", err)
	}
	if len(events) != 1 || events[0].Adaptation != string(curriculum.AdaptAccelerate) {
		t.Fatalf("events = %+v", events)
	}
}
