package curriculum

// EstimatedDuration summarizes the workload of a finalized curriculum.
// TotalHours always equals the sum of EstimatedHours over the modules in the
// four category lists; CompletionTimeline is ceil(TotalHours/WeeklyCommitment)
// formatted as "N weeks".
type EstimatedDuration struct {
	TotalHours         float64 `json:"total_hours"`
	WeeklyCommitment   float64 `json:"weekly_commitment"`
	CompletionTimeline string  `json:"completion_timeline"`
}

// CurriculumRecommendation is the finalized pathway output. It is created
// once by the pathway build pipeline and thereafter changed only through the
// modifier, which returns new values so prior versions stay inspectable.
type CurriculumRecommendation struct {
	FoundationModules         []Module          `json:"foundation_modules"`
	IndustryModules           []Module          `json:"industry_modules"`
	RoleSpecificModules       []Module          `json:"role_specific_modules"`
	CulturalAdaptationModules []Module          `json:"cultural_adaptation_modules"`
	Sequence                  []ModuleSequence  `json:"sequence"`
	EstimatedDuration         EstimatedDuration `json:"estimated_duration"`
	LearningObjectives        []string          `json:"learning_objectives"`
	SuccessMetrics            []string          `json:"success_metrics"`
	Prerequisites             []string          `json:"prerequisites,omitempty"`
	OptionalEnhancements      []Module          `json:"optional_enhancements,omitempty"`
}

// AllModules returns the included modules of every category in list order
// (foundation, industry, role, cultural). Optional enhancements are excluded.
func (c CurriculumRecommendation) AllModules() []Module {
	out := make([]Module, 0,
		len(c.FoundationModules)+len(c.IndustryModules)+len(c.RoleSpecificModules)+len(c.CulturalAdaptationModules))
	out = append(out, c.FoundationModules...)
	out = append(out, c.IndustryModules...)
	out = append(out, c.RoleSpecificModules...)
	out = append(out, c.CulturalAdaptationModules...)
	return out
}

// Clone deep-copies the recommendation so modifier operations never alias the
// caller's value.
func (c CurriculumRecommendation) Clone() CurriculumRecommendation {
	out := c
	out.FoundationModules = cloneModules(c.FoundationModules)
	out.IndustryModules = cloneModules(c.IndustryModules)
	out.RoleSpecificModules = cloneModules(c.RoleSpecificModules)
	out.CulturalAdaptationModules = cloneModules(c.CulturalAdaptationModules)
	out.Sequence = cloneSequence(c.Sequence)
	out.LearningObjectives = append([]string(nil), c.LearningObjectives...)
	out.SuccessMetrics = append([]string(nil), c.SuccessMetrics...)
	out.Prerequisites = append([]string(nil), c.Prerequisites...)
	out.OptionalEnhancements = cloneModules(c.OptionalEnhancements)
	return out
}

func cloneModules(in []Module) []Module {
	if in == nil {
		return nil
	}
	out := make([]Module, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}

func cloneSequence(in []ModuleSequence) []ModuleSequence {
	if in == nil {
		return nil
	}
	out := make([]ModuleSequence, len(in))
	for i, s := range in {
		out[i] = s
		out[i].Prerequisites = append([]string(nil), s.Prerequisites...)
	}
	return out
}
