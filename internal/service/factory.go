package service

import (
	"github.com/flexprice/shipdiscount/internal/cache"
	"github.com/flexprice/shipdiscount/internal/config"
	"github.com/flexprice/shipdiscount/internal/domain/rule"
	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/flexprice/shipdiscount/internal/logger"
	"github.com/flexprice/shipdiscount/internal/publisher"
	"github.com/flexprice/shipdiscount/internal/repository/memory"
	"github.com/flexprice/shipdiscount/internal/rules"
	"github.com/flexprice/shipdiscount/internal/schema"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// FieldTypes casts and validates every known field
	FieldTypes schema.ParamTypes

	// Repositories
	PlanRepo    shipping.PlanRepository
	HistoryRepo shipping.HistoryRepository

	// Rules in evaluation order
	DiscountRules   []rule.DiscountRule
	CorrectionRules []rule.CorrectionRule

	// Publishers
	EventPublisher publisher.EventPublisher
}

// NewServiceParams builds the shipping configuration: category domains, plans
// and rule instances. It fails on the first configuration error and builds
// nothing in that case.
func NewServiceParams(
	cfg *config.Configuration,
	log *logger.Logger,
	c cache.Cache,
	eventPublisher publisher.EventPublisher,
) (ServiceParams, error) {
	fieldTypes, err := schema.NewFieldTypes(schema.Categories{
		Carrier:     cfg.Shipping.Categories.Carrier,
		PackageSize: cfg.Shipping.Categories.PackageSize,
	})
	if err != nil {
		return ServiceParams{}, err
	}

	plans, err := schema.InitShippingPlans(cfg.Shipping.Plans, fieldTypes)
	if err != nil {
		return ServiceParams{}, err
	}

	discountSchemas, err := schema.DecodeRuleSchemas(cfg.Shipping.DiscountRules)
	if err != nil {
		return ServiceParams{}, ierr.WithError(err).
			WithMessage("discount rules").
			Mark(ierr.ErrInvalidSchema)
	}
	correctionSchemas, err := schema.DecodeRuleSchemas(cfg.Shipping.CorrectionRules)
	if err != nil {
		return ServiceParams{}, ierr.WithError(err).
			WithMessage("correction rules").
			Mark(ierr.ErrInvalidSchema)
	}

	ruleParams := fieldTypes.RuleParams()
	discountRules, err := schema.InitRules(rules.NewDiscountRegistry(), discountSchemas, ruleParams, log)
	if err != nil {
		return ServiceParams{}, err
	}
	correctionRules, err := schema.InitRules(rules.NewCorrectionRegistry(), correctionSchemas, ruleParams, log)
	if err != nil {
		return ServiceParams{}, err
	}

	log.Infow("shipping configuration loaded",
		"plans", len(plans),
		"discount_rules", discountRules.Names(),
		"correction_rules", correctionRules.Names(),
	)

	return ServiceParams{
		Logger:          log,
		Config:          cfg,
		FieldTypes:      fieldTypes,
		PlanRepo:        memory.NewPlanRepository(plans, c, log),
		HistoryRepo:     memory.NewHistoryRepository(log),
		DiscountRules:   discountRules.Rules(),
		CorrectionRules: correctionRules.Rules(),
		EventPublisher:  eventPublisher,
	}, nil
}
