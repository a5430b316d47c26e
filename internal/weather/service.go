package weather

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/balkashynov/prodo/internal/models"
)

// DefaultTimeout bounds a single lookup
const DefaultTimeout = 5 * time.Second

// Publisher receives refreshed snapshots; it must be safe to call from
// another goroutine
type Publisher interface {
	SetWeather(models.WeatherSnapshot)
}

// Service combines a Locator and a Provider and substitutes a mock
// snapshot for every failure
type Service struct {
	locator  Locator
	provider Provider
	timeout  time.Duration
	logger   *zap.Logger
	now      func() time.Time

	wg sync.WaitGroup
}

// NewService builds a weather service; a nil provider always mocks
func NewService(locator Locator, provider Provider, timeout time.Duration, logger *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if locator == nil {
		locator = StaticLocator{}
	}
	return &Service{
		locator:  locator,
		provider: provider,
		timeout:  timeout,
		logger:   logger,
		now:      time.Now,
	}
}

// Fetch returns the current conditions or a mock snapshot
func (s *Service) Fetch(ctx context.Context) models.WeatherSnapshot {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	loc, err := s.locator.Locate(ctx)
	if err != nil {
		s.logger.Debug("location unavailable, using mock weather", zap.Error(err))
		return Mock(nil, s.now())
	}
	if s.provider == nil {
		return Mock(nil, s.now())
	}

	snap, err := s.provider.Current(ctx, loc)
	if err != nil {
		s.logger.Warn("weather lookup failed, using mock weather", zap.Error(err))
		return Mock(nil, s.now())
	}
	return snap
}

// Refresh fetches in the background and hands the result to pub
func (s *Service) Refresh(ctx context.Context, pub Publisher) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		pub.SetWeather(s.Fetch(ctx))
	}()
}

// Wait blocks until every background refresh has published
func (s *Service) Wait() {
	s.wg.Wait()
}
