package listing

import (
	"context"
	"fresh-connect/domain"
	"fresh-connect/observability"
	"log/slog"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Service serves the housing guide. Provider failures never reach the caller:
// they are logged and turned into an empty list.
type Service struct {
	provider Provider
	cache    *ristretto.Cache[string, []domain.Hostel]
	cacheTTL time.Duration
	timeout  time.Duration
	metrics  *observability.Metrics
	log      *slog.Logger
}

// NewService wires the provider behind a per-institution cache. A nil provider
// disables organic listings.
func NewService(provider Provider, timeout, cacheTTL time.Duration, metrics *observability.Metrics, log *slog.Logger) (*Service, error) {
	if provider == nil {
		provider = disabledProvider{}
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, []domain.Hostel]{
		NumCounters: 10_000,
		MaxCost:     1_000,
		BufferItems: 64,

		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Service{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
		timeout:  timeout,
		metrics:  metrics,
		log:      log,
	}, nil
}

// Hostels never fails. Only non-empty answers are cached, so an outage is retried
// on the next request.
func (s *Service) Hostels(ctx context.Context, institution string) []domain.Hostel {
	key := domain.Normalize(institution)
	if key == "" {
		return []domain.Hostel{}
	}
	if hostels, ok := s.cache.Get(key); ok {
		return hostels
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	hostels, err := s.provider.FetchHostels(ctx, institution)
	if err != nil {
		s.metrics.ListingFailed()
		s.log.Warn("Failed to fetch hostels", "institution", institution, "error", err)
		return []domain.Hostel{}
	}
	if len(hostels) > MaxHostels {
		hostels = hostels[:MaxHostels]
	}
	if len(hostels) == 0 {
		return []domain.Hostel{}
	}
	s.cache.SetWithTTL(key, hostels, 1, s.cacheTTL)
	s.cache.Wait()
	return hostels
}

func (s *Service) Ads(institution string) []domain.Advertisement {
	return PartnerAds(institution)
}

func (s *Service) Close() {
	s.cache.Close()
}
