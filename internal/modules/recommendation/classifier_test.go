package recommendation

import (
	"math"
	"reflect"
	"testing"

	"github.com/strataleap/readiness-backend/internal/domain/assessment"
)

func TestClassify_GuardOrder(t *testing.T) {
	cases := []struct {
		name   string
		scores assessment.DimensionScores
		want   assessment.Persona
	}{
		{
			name: "architect",
			scores: assessment.DimensionScores{
				StrategicAuthority: 0.9, OrganizationalInfluence: 0.85,
				ResourceAvailability: 0.8, ImplementationReadiness: 0.6, CulturalAlignment: 0.5,
			},
			want: assessment.PersonaArchitect,
		},
		{
			name: "catalyst",
			scores: assessment.DimensionScores{
				StrategicAuthority: 0.65, OrganizationalInfluence: 0.75,
				ResourceAvailability: 0.5, ImplementationReadiness: 0.75, CulturalAlignment: 0.5,
			},
			want: assessment.PersonaCatalyst,
		},
		{
			name: "contributor",
			scores: assessment.DimensionScores{
				StrategicAuthority: 0.5, OrganizationalInfluence: 0.3,
				ResourceAvailability: 0.4, ImplementationReadiness: 0.7, CulturalAlignment: 0.5,
			},
			want: assessment.PersonaContributor,
		},
		{
			name: "explorer",
			scores: assessment.DimensionScores{
				StrategicAuthority: 0.35, OrganizationalInfluence: 0.2,
				ResourceAvailability: 0.2, ImplementationReadiness: 0.55, CulturalAlignment: 0.3,
			},
			want: assessment.PersonaExplorer,
		},
		{
			name: "observer",
			scores: assessment.DimensionScores{
				StrategicAuthority: 0.2, OrganizationalInfluence: 0.2,
				ResourceAvailability: 0.2, ImplementationReadiness: 0.2, CulturalAlignment: 0.2,
			},
			want: assessment.PersonaObserver,
		},
	}
	for _, tc := range cases {
		got := Classify(tc.scores)
		if got.PrimaryPersona != tc.want {
			t.Fatalf("%s: classified as %s, want %s", tc.name, got.PrimaryPersona, tc.want)
		}
	}
}

func TestClassify_ArchitectWinsOverCatalyst(t *testing.T) {
	// Satisfies both the architect and catalyst guards; the earlier guard wins.
	scores := assessment.DimensionScores{
		StrategicAuthority: 0.9, OrganizationalInfluence: 0.9,
		ResourceAvailability: 0.9, ImplementationReadiness: 0.9, CulturalAlignment: 0.9,
	}
	if got := Classify(scores).PrimaryPersona; got != assessment.PersonaArchitect {
		t.Fatalf("got %s, want architect", got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	scores := assessment.DimensionScores{
		StrategicAuthority: 0.62, OrganizationalInfluence: 0.41,
		ResourceAvailability: 0.77, ImplementationReadiness: 0.66, CulturalAlignment: 0.58,
	}
	first := Classify(scores)
	for i := 0; i < 10; i++ {
		if got := Classify(scores); !reflect.DeepEqual(got, first) {
			t.Fatalf("classification varied across runs: %+v vs %+v", got, first)
		}
	}
}

func TestConfidence_ClusteredScoresEarnFullBonus(t *testing.T) {
	scores := assessment.DimensionScores{
		StrategicAuthority: 0.8, OrganizationalInfluence: 0.8,
		ResourceAvailability: 0.8, ImplementationReadiness: 0.2, CulturalAlignment: 0.2,
	}
	got := Classify(scores)
	if got.PrimaryPersona != assessment.PersonaArchitect {
		t.Fatalf("expected architect, got %s", got.PrimaryPersona)
	}
	// Zero variance across the matched scores: mean 0.8 plus the full 0.1 bonus.
	if math.Abs(got.ConfidenceScore-0.9) > 1e-9 {
		t.Fatalf("confidence = %v, want 0.9", got.ConfidenceScore)
	}
}

func TestConfidence_Capped(t *testing.T) {
	scores := assessment.DimensionScores{
		StrategicAuthority: 0.95, OrganizationalInfluence: 0.95,
		ResourceAvailability: 0.95, ImplementationReadiness: 0.95, CulturalAlignment: 0.95,
	}
	if got := Classify(scores).ConfidenceScore; got != 0.95 {
		t.Fatalf("confidence = %v, want the 0.95 cap", got)
	}
}

func TestConfidence_SpreadScoresLoseBonus(t *testing.T) {
	// Contributor match on [0.5, 0.7]: mean 0.6, variance 1.0 on the 0-10
	// scale, so only half the bonus survives.
	scores := assessment.DimensionScores{
		StrategicAuthority: 0.5, OrganizationalInfluence: 0.3,
		ResourceAvailability: 0.4, ImplementationReadiness: 0.7, CulturalAlignment: 0.5,
	}
	got := Classify(scores)
	if got.PrimaryPersona != assessment.PersonaContributor {
		t.Fatalf("expected contributor, got %s", got.PrimaryPersona)
	}
	if math.Abs(got.ConfidenceScore-0.65) > 1e-9 {
		t.Fatalf("confidence = %v, want 0.65", got.ConfidenceScore)
	}
}

func TestSecondaryCharacteristics(t *testing.T) {
	scores := assessment.DimensionScores{
		StrategicAuthority: 0.85, OrganizationalInfluence: 0.9,
		ResourceAvailability: 0.8, ImplementationReadiness: 0.3, CulturalAlignment: 0.4,
	}
	got := Classify(scores)
	want := []string{
		"executive_authority", "broad_influence", "well_resourced",
		"visionary_leader", "enterprise_scope",
	}
	if !reflect.DeepEqual(got.SecondaryCharacteristics, want) {
		t.Fatalf("characteristics = %v, want %v", got.SecondaryCharacteristics, want)
	}
}

func TestSecondaryCharacteristics_ObserverAlwaysTagged(t *testing.T) {
	got := Classify(assessment.DimensionScores{})
	want := []string{"cautious_adopter", "awareness_building"}
	if !reflect.DeepEqual(got.SecondaryCharacteristics, want) {
		t.Fatalf("characteristics = %v, want %v", got.SecondaryCharacteristics, want)
	}
}
