package recommendation

import (
	"github.com/strataleap/readiness-backend/internal/catalog"
	"github.com/strataleap/readiness-backend/internal/domain/assessment"
	"github.com/strataleap/readiness-backend/internal/domain/curriculum"
)

const (
	emphasizeMultiplier = 1.5
	extendMultiplier    = 2.0

	extendedObjective = "Extended learning objectives based on assessment results"
)

// conditionPredicates is the closed table backing rule conditions. A condition
// absent from this table evaluates to false: an unrecognized rule applies
// nothing, by design, rather than failing the whole pathway build.
var conditionPredicates = map[curriculum.RuleCondition]func(assessment.Context) bool{
	curriculum.CondStrategicAuthorityLow: func(ctx assessment.Context) bool {
		return ctx.Scores.StrategicAuthority < 0.5
	},
	curriculum.CondImplementationReadinessHigh: func(ctx assessment.Context) bool {
		return ctx.Scores.ImplementationReadiness > 0.8
	},
	curriculum.CondPersonaArchitect: func(ctx assessment.Context) bool {
		return ctx.Persona == assessment.PersonaArchitect
	},
	curriculum.CondPersonaObserver: func(ctx assessment.Context) bool {
		return ctx.Persona == assessment.PersonaObserver
	},
	curriculum.CondIndustryFinancialServices: func(ctx assessment.Context) bool {
		return ctx.Industry == "financial_services"
	},
	curriculum.CondIndustryHealthcare: func(ctx assessment.Context) bool {
		return ctx.Industry == "healthcare"
	},
}

// ConditionHolds evaluates a rule condition against the assessment context.
func ConditionHolds(cond curriculum.RuleCondition, ctx assessment.Context) bool {
	pred, ok := conditionPredicates[cond]
	if !ok {
		return false
	}
	return pred(ctx)
}

// DefaultRules is the built-in rule set applied before any caller-supplied
// rules. Rules are data: supporting a new persona or industry means appending
// an entry here or passing extra rules, not adding branches.
func DefaultRules() []curriculum.AdaptiveRule {
	return []curriculum.AdaptiveRule{
		{Condition: curriculum.CondPersonaObserver, Action: curriculum.ActionSkip, TargetModuleID: "RS-1L"},
		{Condition: curriculum.CondPersonaArchitect, Action: curriculum.ActionEmphasize, TargetModuleID: "UF-2E"},
		{Condition: curriculum.CondIndustryFinancialServices, Action: curriculum.ActionEmphasize, TargetModuleID: "IS-FS1"},
	}
}

// ApplyRules evaluates rules in order against the context and returns a new
// module list. Later rules see the effects of earlier ones. The input list
// and the catalog are never mutated; every change lands on a per-invocation
// copy.
func ApplyRules(cat *catalog.Catalog, modules []curriculum.Module, rules []curriculum.AdaptiveRule, ctx assessment.Context) []curriculum.Module {
	working := make([]curriculum.Module, len(modules))
	for i, m := range modules {
		working[i] = m.Clone()
	}

	for _, rule := range rules {
		if !ConditionHolds(rule.Condition, ctx) {
			continue
		}
		working = applyAction(cat, working, rule)
	}
	return working
}

func applyAction(cat *catalog.Catalog, working []curriculum.Module, rule curriculum.AdaptiveRule) []curriculum.Module {
	idx := indexOf(working, rule.TargetModuleID)
	if idx < 0 {
		return working
	}
	switch rule.Action {
	case curriculum.ActionSkip:
		return append(working[:idx], working[idx+1:]...)
	case curriculum.ActionEmphasize:
		working[idx].EstimatedHours *= emphasizeMultiplier
	case curriculum.ActionSubstitute:
		if rule.AlternativeModuleID == "" {
			return working
		}
		alt, err := cat.ModuleByID(rule.AlternativeModuleID)
		if err != nil {
			return working
		}
		working[idx] = alt
	case curriculum.ActionExtend:
		working[idx].EstimatedHours *= extendMultiplier
		working[idx].LearningObjectives = append(working[idx].LearningObjectives, extendedObjective)
	}
	return working
}

func indexOf(modules []curriculum.Module, id string) int {
	for i, m := range modules {
		if m.ID == id {
			return i
		}
	}
	return -1
}
