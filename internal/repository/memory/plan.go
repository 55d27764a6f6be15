package memory

import (
	"context"
	"sync"

	"github.com/flexprice/shipdiscount/internal/cache"
	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/flexprice/shipdiscount/internal/logger"
	"github.com/flexprice/shipdiscount/internal/types"
)

type planRepository struct {
	mu    sync.RWMutex
	plans []shipping.ShippingPlan
	cache cache.Cache
	log   *logger.Logger

	// namespace scopes cache keys to this plan set, the cache may be shared
	namespace string
}

// NewPlanRepository returns a read-only repository over plans, in declaration order.
// Lookups are cached when c is not nil, under keys private to this repository.
func NewPlanRepository(plans []shipping.ShippingPlan, c cache.Cache, log *logger.Logger) shipping.PlanRepository {
	items := make([]shipping.ShippingPlan, len(plans))
	copy(items, plans)

	return &planRepository{
		plans:     items,
		cache:     c,
		log:       log,
		namespace: types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN_SET),
	}
}

func (r *planRepository) List(_ context.Context) ([]shipping.ShippingPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shipping.ShippingPlan, len(r.plans))
	copy(out, r.plans)
	return out, nil
}

func (r *planRepository) FindPlan(ctx context.Context, carrier, packageSize string) (*shipping.ShippingPlan, error) {
	if p := r.GetCache(ctx, carrier, packageSize); p != nil {
		return p, nil
	}

	r.log.Debugw("finding shipping plan", "carrier", carrier, "package_size", packageSize)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.plans {
		if r.plans[i].Carrier == carrier && r.plans[i].PackageSize == packageSize {
			p := r.plans[i]
			r.SetCache(ctx, &p)
			return &p, nil
		}
	}

	return nil, ierr.NewErrorf("no shipping plan for carrier %s and package size %s", carrier, packageSize).
		WithHintf("Shipping plan for %s %s was not found", carrier, packageSize).
		WithReportableDetails(map[string]any{
			"carrier":      carrier,
			"package_size": packageSize,
		}).
		Mark(ierr.ErrNotFound)
}

func (r *planRepository) SetCache(ctx context.Context, p *shipping.ShippingPlan) {
	if r.cache == nil {
		return
	}
	key := cache.GenerateKey(cache.PrefixShippingPlan, r.namespace, p.Carrier, p.PackageSize)
	r.cache.Set(ctx, key, *p, cache.DefaultExpiration)
}

func (r *planRepository) GetCache(ctx context.Context, carrier, packageSize string) *shipping.ShippingPlan {
	if r.cache == nil {
		return nil
	}
	key := cache.GenerateKey(cache.PrefixShippingPlan, r.namespace, carrier, packageSize)
	if value, found := r.cache.Get(ctx, key); found {
		if p, ok := value.(shipping.ShippingPlan); ok {
			return &p
		}
	}
	return nil
}
