package assessment

// Persona is one of five fixed labels summarizing a respondent's strategic
// authority, influence, and readiness profile.
type Persona string

const (
	PersonaArchitect   Persona = "strategic_architect"
	PersonaCatalyst    Persona = "strategic_catalyst"
	PersonaContributor Persona = "strategic_contributor"
	PersonaExplorer    Persona = "strategic_explorer"
	PersonaObserver    Persona = "strategic_observer"
)

// Personas lists every persona in classification order.
func Personas() []Persona {
	return []Persona{
		PersonaArchitect,
		PersonaCatalyst,
		PersonaContributor,
		PersonaExplorer,
		PersonaObserver,
	}
}

// Valid reports whether p is one of the five known personas.
func (p Persona) Valid() bool {
	switch p {
	case PersonaArchitect, PersonaCatalyst, PersonaContributor, PersonaExplorer, PersonaObserver:
		return true
	}
	return false
}

// DefaultWeeklyCommitment returns the hours-per-week default applied when the
// respondent expressed no time preference.
func (p Persona) DefaultWeeklyCommitment() float64 {
	switch p {
	case PersonaArchitect:
		return 3
	case PersonaCatalyst:
		return 4
	case PersonaContributor:
		return 5
	case PersonaExplorer:
		return 6
	case PersonaObserver:
		return 2
	default:
		return 4
	}
}
