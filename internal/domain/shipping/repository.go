package shipping

import (
	"context"
)

// PlanRepository gives read access to the immutable shipping plan set
type PlanRepository interface {
	List(ctx context.Context) ([]ShippingPlan, error)
	// FindPlan returns the first plan with the given carrier and package size
	FindPlan(ctx context.Context, carrier, packageSize string) (*ShippingPlan, error)
}

// HistoryRepository is the append-only transaction history
type HistoryRepository interface {
	Append(ctx context.Context, record *DiscountTransaction) error
	// List returns a snapshot of the history in processing order
	List(ctx context.Context) ([]*DiscountTransaction, error)
	Count(ctx context.Context) (int, error)
}
