package curriculum

// ProgressTrigger identifies which telemetry stream produced a signal.
type ProgressTrigger string

const (
	TriggerCompletionTime  ProgressTrigger = "completion_time"
	TriggerAssessmentScore ProgressTrigger = "assessment_score"
	TriggerEngagementLevel ProgressTrigger = "engagement_level"
	TriggerUserFeedback    ProgressTrigger = "user_feedback"
)

// AdaptationKind enumerates the progression adjustments the engine may
// recommend to the learner-progress collaborator.
type AdaptationKind string

const (
	AdaptAccelerate     AdaptationKind = "accelerate"
	AdaptDecelerate     AdaptationKind = "decelerate"
	AdaptAddSupport     AdaptationKind = "add_support"
	AdaptSkipAhead      AdaptationKind = "skip_ahead"
	AdaptReviewPrevious AdaptationKind = "review_previous"
)

// ProgressSignal is one live telemetry reading for a module the learner has
// worked through. Value semantics depend on the trigger: completion_time is
// actual hours spent, assessment_score and engagement_level are in [0,1],
// user_feedback carries free text in Feedback.
type ProgressSignal struct {
	Trigger  ProgressTrigger `json:"trigger"`
	ModuleID string          `json:"module_id"`
	Value    float64         `json:"value,omitempty"`
	Feedback string          `json:"feedback,omitempty"`
}

// ProgressAdaptation is one recommended adjustment, with the module ids it
// targets and a human-readable reasoning string.
type ProgressAdaptation struct {
	Adaptation AdaptationKind `json:"adaptation"`
	ModuleIDs  []string       `json:"module_ids"`
	Reasoning  string         `json:"reasoning"`
}

// ModificationType enumerates post-hoc structural edits to a generated
// curriculum.
type ModificationType string

const (
	ModificationAddModule     ModificationType = "add_module"
	ModificationRemoveModule  ModificationType = "remove_module"
	ModificationReplaceModule ModificationType = "replace_module"
	ModificationAdjustPace    ModificationType = "adjust_pace"
)

// Modification is a single requested curriculum edit. ReplacementModuleID is
// meaningful only for replace_module; Justification drives adjust_pace
// direction ("accelerate" speeds up, anything else slows down).
type Modification struct {
	Type                ModificationType `json:"type"`
	TargetModuleID      string           `json:"target_module_id,omitempty"`
	ReplacementModuleID string           `json:"replacement_module_id,omitempty"`
	Justification       string           `json:"justification,omitempty"`
}
