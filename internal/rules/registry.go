package rules

import (
	"github.com/flexprice/shipdiscount/internal/domain/rule"
	"github.com/flexprice/shipdiscount/internal/logger"
)

const (
	RuleNotApplied = "rule is not applied"
)

// NewDiscountRegistry returns the registry of every available discount rule
func NewDiscountRegistry() *rule.Registry[rule.DiscountRule] {
	return rule.NewRegistry[rule.DiscountRule]().
		Register(MatchLowestPackagePriceName, discountRule(NewMatchLowestPackagePrice)).
		Register(EveryNShipmentIsFreeXTimesInAMonthName, discountRule(NewEveryNShipmentIsFreeXTimesInAMonth))
}

// NewCorrectionRegistry returns the registry of every available correction rule
func NewCorrectionRegistry() *rule.Registry[rule.CorrectionRule] {
	return rule.NewRegistry[rule.CorrectionRule]().
		Register(MonthlyAccumulatedDiscountLimiterName, correctionRule(NewMonthlyAccumulatedDiscountLimiter))
}

func discountRule[R rule.DiscountRule](ctor func(rule.Params, *logger.Logger) (R, error)) rule.Constructor[rule.DiscountRule] {
	return func(params rule.Params, log *logger.Logger) (rule.DiscountRule, error) {
		r, err := ctor(params, log)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

func correctionRule[R rule.CorrectionRule](ctor func(rule.Params, *logger.Logger) (R, error)) rule.Constructor[rule.CorrectionRule] {
	return func(params rule.Params, log *logger.Logger) (rule.CorrectionRule, error) {
		r, err := ctor(params, log)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

func ruleLogger(log *logger.Logger, repr string) *logger.Logger {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return log.Named("rules").With("rule", repr)
}
