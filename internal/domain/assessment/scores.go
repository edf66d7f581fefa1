package assessment

// DimensionScores holds the five readiness axes feeding persona
// classification. Values are normalized to [0,1]; callers working on the
// stored 0-100 scale must divide before handing scores to the engine.
// Immutable once computed for an assessment.
type DimensionScores struct {
	StrategicAuthority      float64 `json:"strategic_authority"`
	OrganizationalInfluence float64 `json:"organizational_influence"`
	ResourceAvailability    float64 `json:"resource_availability"`
	ImplementationReadiness float64 `json:"implementation_readiness"`
	CulturalAlignment       float64 `json:"cultural_alignment"`
}

// All returns the five scores in canonical dimension order.
func (s DimensionScores) All() []float64 {
	return []float64{
		s.StrategicAuthority,
		s.OrganizationalInfluence,
		s.ResourceAvailability,
		s.ImplementationReadiness,
		s.CulturalAlignment,
	}
}

// PersonaClassification is the classifier output. Produced once per
// assessment; never mutated.
type PersonaClassification struct {
	PrimaryPersona           Persona  `json:"primary_persona"`
	ConfidenceScore          float64  `json:"confidence_score"`
	SecondaryCharacteristics []string `json:"secondary_characteristics"`
}

// Context carries everything the rule evaluator may test: the normalized
// dimension scores plus the classified persona and the respondent's industry.
type Context struct {
	Scores           DimensionScores `json:"scores"`
	Persona          Persona         `json:"persona"`
	Industry         string          `json:"industry"`
	CulturalContexts []string        `json:"cultural_contexts,omitempty"`
}

// Urgency values recognized in Preferences.
const (
	UrgencyImmediate   = "immediate"
	UrgencyPlanned     = "planned"
	UrgencyExploratory = "exploratory"
)

// Preferences is the caller-supplied configuration for curriculum generation
// and pacing. Zero values mean "no preference".
type Preferences struct {
	// TimeCommitment in hours/week; overrides the persona default when > 0.
	TimeCommitment float64 `json:"time_commitment,omitempty"`
	// Urgency affects the recommended pace only (immediate|planned|exploratory).
	Urgency string `json:"urgency,omitempty"`
	// FocusAreas are free-text tags appended to the learning objectives.
	// They do not filter module selection.
	FocusAreas []string `json:"focus_areas,omitempty"`
	// LearningStyle is free text; "hands-on" adds a practice objective.
	LearningStyle string `json:"learning_style,omitempty"`
}
