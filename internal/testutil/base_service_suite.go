package testutil

import (
	"context"
	"time"

	"github.com/flexprice/shipdiscount/internal/cache"
	"github.com/flexprice/shipdiscount/internal/config"
	"github.com/flexprice/shipdiscount/internal/logger"
	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/stretchr/testify/suite"
)

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	publisher *InMemoryEventPublisher
	cache     *cache.InMemoryCache
	logger    *logger.Logger
	config    *config.Configuration
	now       time.Time
}

func (s *BaseServiceTestSuite) SetupSuite() {
	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo
	cfg.Cache.Enabled = true

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.publisher = NewInMemoryEventPublisher()
	s.cache = cache.Initialize(s.config, s.logger)
	s.now = time.Date(2015, time.February, 1, 0, 0, 0, 0, time.UTC)
}

func (s *BaseServiceTestSuite) TearDownTest() {
	s.publisher.Clear()
	s.cache.Flush(s.ctx)
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns a fresh copy of the default shipping configuration,
// safe to modify within a test
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	cfg := config.GetDefaultConfig()
	cfg.Logging = s.config.Logging
	cfg.Cache = s.config.Cache
	return cfg
}

func (s *BaseServiceTestSuite) GetPublisher() *InMemoryEventPublisher {
	return s.publisher
}

func (s *BaseServiceTestSuite) GetCache() *cache.InMemoryCache {
	return s.cache
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the fixed date tests build transactions around
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetDate formats the date days after GetNow as a transaction date
func (s *BaseServiceTestSuite) GetDate(days int) string {
	return s.now.AddDate(0, 0, days).Format(types.DateLayout)
}
