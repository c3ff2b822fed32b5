// AngelaMos | 2026
// service.go

package admin

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService builds the stats aggregator. cache may be nil.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	ctx, span := core.StartSpan(ctx, "admin.stats")
	defer span.End()

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "stats cache read failed", "error", err)
		} else if found {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return cached, nil
		}
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	profit, err := s.repo.Profit(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Users:     counts.Users,
		Biodatas:  counts.Biodatas,
		Premium:   counts.Premium,
		Favourite: counts.Favourite,
		Invoice:   counts.Invoice,
		Profit:    profit,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.WarnContext(ctx, "stats cache write failed", "error", err)
		}
	}

	return stats, nil
}
