package recommendation

import (
	"math"

	"github.com/strataleap/readiness-backend/internal/domain/assessment"
)

// confidenceCap bounds classifier confidence; classification is rule-based,
// never certain.
const confidenceCap = 0.95

// Classify maps the five normalized dimension scores to a persona. The five
// guards are evaluated in order and the first match wins; the final Observer
// branch guarantees every input classifies. Pure and deterministic.
func Classify(scores assessment.DimensionScores) assessment.PersonaClassification {
	persona, matched := matchPersona(scores)
	return assessment.PersonaClassification{
		PrimaryPersona:           persona,
		ConfidenceScore:          confidence(matched),
		SecondaryCharacteristics: secondaryCharacteristics(scores, persona),
	}
}

func matchPersona(s assessment.DimensionScores) (assessment.Persona, []float64) {
	switch {
	case s.StrategicAuthority >= 0.8 && s.ResourceAvailability >= 0.7 && s.OrganizationalInfluence >= 0.8:
		return assessment.PersonaArchitect,
			[]float64{s.StrategicAuthority, s.ResourceAvailability, s.OrganizationalInfluence}
	case s.OrganizationalInfluence >= 0.7 && s.ImplementationReadiness >= 0.7 && s.StrategicAuthority >= 0.6:
		return assessment.PersonaCatalyst,
			[]float64{s.OrganizationalInfluence, s.ImplementationReadiness, s.StrategicAuthority}
	case s.StrategicAuthority >= 0.4 && s.StrategicAuthority < 0.7 && s.ImplementationReadiness >= 0.6:
		return assessment.PersonaContributor,
			[]float64{s.StrategicAuthority, s.ImplementationReadiness}
	case s.ImplementationReadiness >= 0.5 && s.StrategicAuthority >= 0.3 && s.StrategicAuthority < 0.6:
		return assessment.PersonaExplorer,
			[]float64{s.ImplementationReadiness, s.StrategicAuthority}
	default:
		return assessment.PersonaObserver, s.All()
	}
}

// confidence is the mean of the scores that drove the match plus a
// consistency bonus. The bonus rewards tightly clustered scores: it scales
// linearly from 0.1 at zero variance down to zero at a variance of 2 on the
// 0-10 scale.
func confidence(matched []float64) float64 {
	if len(matched) == 0 {
		return 0
	}
	var sum float64
	for _, v := range matched {
		sum += v
	}
	mean := sum / float64(len(matched))

	var variance float64
	for _, v := range matched {
		d := (v - mean) * 10
		variance += d * d
	}
	variance /= float64(len(matched))

	bonus := 0.1 * (1 - variance/2)
	if bonus < 0 {
		bonus = 0
	}
	return math.Min(confidenceCap, mean+bonus)
}

// secondaryCharacteristics are derived from per-dimension threshold crossings,
// independently of which guard matched, plus two persona-fixed tags.
func secondaryCharacteristics(s assessment.DimensionScores, persona assessment.Persona) []string {
	var out []string
	if s.StrategicAuthority >= 0.8 {
		out = append(out, "executive_authority")
	}
	if s.OrganizationalInfluence >= 0.8 {
		out = append(out, "broad_influence")
	}
	if s.ResourceAvailability >= 0.8 {
		out = append(out, "well_resourced")
	}
	if s.ImplementationReadiness >= 0.8 {
		out = append(out, "execution_ready")
	}
	if s.CulturalAlignment >= 0.8 {
		out = append(out, "culturally_attuned")
	}
	return append(out, personaTags(persona)...)
}

func personaTags(p assessment.Persona) []string {
	switch p {
	case assessment.PersonaArchitect:
		return []string{"visionary_leader", "enterprise_scope"}
	case assessment.PersonaCatalyst:
		return []string{"change_driver", "cross_functional"}
	case assessment.PersonaContributor:
		return []string{"delivery_focused", "hands_on_planner"}
	case assessment.PersonaExplorer:
		return []string{"curious_learner", "growth_potential"}
	default:
		return []string{"cautious_adopter", "awareness_building"}
	}
}
