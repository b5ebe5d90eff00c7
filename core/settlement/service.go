package settlement

import (
	"context"
	"time"

	"github.com/goto/backoffice/core/resource"
	"github.com/goto/salt/log"
)

type Repository = resource.Repository[Settlement]

type StatsRepository interface {
	Stats(ctx context.Context) (Stats, error)
	SalesStats(ctx context.Context) (SalesStats, error)
	PeriodStats(ctx context.Context) (PeriodStats, error)
}

type Service struct {
	*resource.Service[Settlement]
	stats StatsRepository
}

func NewService(repo Repository, stats StatsRepository, logger log.Logger) *Service {
	return &Service{
		Service: resource.NewService(Schema, repo, logger),
		stats:   stats,
	}
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.stats.Stats(ctx)
}

func (s *Service) SalesStats(ctx context.Context) (SalesStats, error) {
	return s.stats.SalesStats(ctx)
}

func (s *Service) PeriodStats(ctx context.Context) (PeriodStats, error) {
	return s.stats.PeriodStats(ctx)
}

// Tally computes the settlement stats by reading every settlement from a repository.
type Tally struct {
	Repo Repository
	// Now is the reference time for PeriodStats. nil means time.Now.
	Now func() time.Time
}

func (t Tally) Stats(ctx context.Context) (Stats, error) {
	items, err := resource.All(ctx, t.Repo, nil)
	if err != nil {
		return Stats{}, err
	}
	return Summarize(items), nil
}

func (t Tally) SalesStats(ctx context.Context) (SalesStats, error) {
	items, err := resource.All(ctx, t.Repo, nil)
	if err != nil {
		return nil, err
	}
	return CountByStatus(items), nil
}

func (t Tally) PeriodStats(ctx context.Context) (PeriodStats, error) {
	items, err := resource.All(ctx, t.Repo, nil)
	if err != nil {
		return PeriodStats{}, err
	}
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	return Periods(items, now()), nil
}
