package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/flexprice/shipdiscount/internal/api/dto"
	"github.com/flexprice/shipdiscount/internal/domain/rule"
	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	"github.com/flexprice/shipdiscount/internal/logger"
	"github.com/flexprice/shipdiscount/internal/publisher"
	"github.com/flexprice/shipdiscount/internal/schema"
	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type TransactionProcessor interface {
	// ProcessTransaction prices one shipment and appends it to the history
	ProcessTransaction(ctx context.Context, req dto.TransactionInput) (*shipping.ShippingPrice, error)
	// History returns the processed transactions in processing order
	History(ctx context.Context) ([]*shipping.DiscountTransaction, error)
	// ProcessReader prices every transaction line of r and writes one result line per input line to w
	ProcessReader(ctx context.Context, r io.Reader, w io.Writer) error
}

type transactionProcessor struct {
	// mu serializes processing: each transaction sees the history of all previous ones
	mu sync.Mutex

	fieldTypes      schema.ParamTypes
	planRepo        shipping.PlanRepository
	historyRepo     shipping.HistoryRepository
	discountRules   []rule.DiscountRule
	correctionRules []rule.CorrectionRule
	eventPublisher  publisher.EventPublisher
	logger          *logger.Logger
}

func NewTransactionProcessor(params ServiceParams) TransactionProcessor {
	log := params.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &transactionProcessor{
		fieldTypes:      params.FieldTypes.TransactionFields(),
		planRepo:        params.PlanRepo,
		historyRepo:     params.HistoryRepo,
		discountRules:   params.DiscountRules,
		correctionRules: params.CorrectionRules,
		eventPublisher:  params.EventPublisher,
		logger:          log,
	}
}

func (s *transactionProcessor) ProcessTransaction(ctx context.Context, req dto.TransactionInput) (*shipping.ShippingPrice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	values, err := s.fieldTypes.CoerceAll(req.Values())
	if err != nil {
		return nil, err
	}

	tx := shipping.Transaction{
		Date:        values[types.FieldDate].(time.Time),
		Carrier:     values[types.FieldCarrier].(string),
		PackageSize: values[types.FieldPackageSize].(string),
	}

	plan, err := s.planRepo.FindPlan(ctx, tx.Carrier, tx.PackageSize)
	if err != nil {
		return nil, err
	}
	tx.Price = plan.Price

	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.historyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	discount := s.evaluate(ctx, tx, plans, history)

	record := shipping.NewDiscountTransaction(tx, discount)
	if err := s.historyRepo.Append(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Debugw("processed transaction",
		"id", record.ID,
		"date", tx.Date.Format(types.DateLayout),
		"carrier", tx.Carrier,
		"package_size", tx.PackageSize,
		"price", tx.Price,
		"discount", discount,
	)

	s.publish(ctx, record)

	if !discount.IsPositive() {
		return &shipping.ShippingPrice{ReducedPrice: tx.Price}, nil
	}
	return &shipping.ShippingPrice{
		ReducedPrice:    tx.Price.Sub(discount),
		AppliedDiscount: &discount,
	}, nil
}

// evaluate runs every discount rule, pipes each positive discount through the
// correction rules and returns the largest corrected discount
func (s *transactionProcessor) evaluate(
	ctx context.Context,
	tx shipping.Transaction,
	plans []shipping.ShippingPlan,
	history []*shipping.DiscountTransaction,
) decimal.Decimal {
	discounts := make([]decimal.Decimal, 0, len(s.discountRules))
	for _, discountRule := range s.discountRules {
		size := discountRule.CalculateDiscount(ctx, tx, plans, history)
		if !size.IsPositive() {
			continue
		}

		for _, correctionRule := range s.correctionRules {
			size = correctionRule.CorrectDiscount(ctx, tx, size, plans, history)
		}
		if size.IsNegative() {
			s.logger.Tracew("corrected discount below zero, clamping", "rule", discountRule.Name(), "discount", size)
			size = decimal.Zero
		}
		discounts = append(discounts, size)
	}

	if len(discounts) == 0 {
		return decimal.Zero
	}
	return lo.MaxBy(discounts, func(a, b decimal.Decimal) bool {
		return a.GreaterThan(b)
	})
}

// publish is best effort: the record is already part of the history
func (s *transactionProcessor) publish(ctx context.Context, record *shipping.DiscountTransaction) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, record); err != nil {
		s.logger.Warnw("failed to publish transaction event",
			"id", record.ID,
			"error", err,
		)
	}
}

func (s *transactionProcessor) History(ctx context.Context) ([]*shipping.DiscountTransaction, error) {
	return s.historyRepo.List(ctx)
}
