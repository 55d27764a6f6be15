package testutil

import (
	"context"
	"sync"

	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	"github.com/flexprice/shipdiscount/internal/publisher"
)

// InMemoryEventPublisher records published history records for assertions
type InMemoryEventPublisher struct {
	mu      sync.RWMutex
	records []*shipping.DiscountTransaction
	err     error
}

var _ publisher.EventPublisher = (*InMemoryEventPublisher)(nil)

func NewInMemoryEventPublisher() *InMemoryEventPublisher {
	return &InMemoryEventPublisher{}
}

// Publish records the event, or fails with the error set by FailWith
func (p *InMemoryEventPublisher) Publish(_ context.Context, record *shipping.DiscountTransaction) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.records = append(p.records, record)
	return nil
}

// FailWith makes every following Publish return err, nil restores success
func (p *InMemoryEventPublisher) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// GetRecords returns all published records
func (p *InMemoryEventPublisher) GetRecords() []*shipping.DiscountTransaction {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*shipping.DiscountTransaction, len(p.records))
	copy(out, p.records)
	return out
}

// HasRecord checks if a record with the given ID was published
func (p *InMemoryEventPublisher) HasRecord(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, r := range p.records {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Clear removes all published records and the failure
func (p *InMemoryEventPublisher) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = nil
	p.err = nil
}
