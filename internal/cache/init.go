package cache

import (
	"github.com/flexprice/shipdiscount/internal/config"
	"github.com/flexprice/shipdiscount/internal/logger"
)

// Initialize initializes the cache system
func Initialize(cfg *config.Configuration, log *logger.Logger) *InMemoryCache {
	log.Infow("initializing cache system", "enabled", cfg.Cache.Enabled)
	return NewInMemoryCache(cfg)
}
