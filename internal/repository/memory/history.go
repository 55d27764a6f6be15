package memory

import (
	"context"
	"sync"

	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/flexprice/shipdiscount/internal/logger"
)

type historyRepository struct {
	mu      sync.RWMutex
	records []*shipping.DiscountTransaction
	log     *logger.Logger
}

// NewHistoryRepository returns an empty append-only history
func NewHistoryRepository(log *logger.Logger) shipping.HistoryRepository {
	return &historyRepository{log: log}
}

func (r *historyRepository) Append(_ context.Context, record *shipping.DiscountTransaction) error {
	if record == nil {
		return ierr.NewError("history record cannot be nil").
			WithHint("History record is required").
			Mark(ierr.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	r.log.Debugw("appended history record",
		"id", record.ID,
		"carrier", record.Carrier,
		"package_size", record.PackageSize,
		"discount", record.Discount,
		"count", len(r.records),
	)
	return nil
}

func (r *historyRepository) List(_ context.Context) ([]*shipping.DiscountTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*shipping.DiscountTransaction, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *historyRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}
