package curriculum

// RuleAction enumerates the mutations an adaptive rule may apply to a
// candidate module set.
type RuleAction string

const (
	ActionSkip       RuleAction = "skip"
	ActionEmphasize  RuleAction = "emphasize"
	ActionSubstitute RuleAction = "substitute"
	ActionExtend     RuleAction = "extend"
)

// RuleCondition is a closed enum of predicate identifiers. Conditions are
// data, not code: new personas or industries are supported by appending rules
// that reference these identifiers, never by branching logic. Unknown
// identifiers evaluate to false.
type RuleCondition string

const (
	CondStrategicAuthorityLow       RuleCondition = "strategic_authority_low"
	CondImplementationReadinessHigh RuleCondition = "implementation_readiness_high"
	CondPersonaArchitect            RuleCondition = "persona_architect"
	CondPersonaObserver             RuleCondition = "persona_observer"
	CondIndustryFinancialServices   RuleCondition = "financial_services"
	CondIndustryHealthcare          RuleCondition = "healthcare"
)

// AdaptiveRule is a declarative condition→action pair evaluated against an
// assessment context. AlternativeModuleID is meaningful only for substitute.
type AdaptiveRule struct {
	Condition           RuleCondition `json:"condition"`
	Action              RuleAction    `json:"action"`
	TargetModuleID      string        `json:"target_module_id"`
	AlternativeModuleID string        `json:"alternative_module_id,omitempty"`
}
