package reservation

import (
	"context"

	"github.com/goto/backoffice/core/resource"
	"github.com/goto/salt/log"
)

type Repository = resource.Repository[Reservation]

type StatsRepository interface {
	Stats(ctx context.Context) (Stats, error)
}

type Service struct {
	*resource.Service[Reservation]
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

// Tally computes Stats by reading every reservation from a repository.
type Tally struct {
	Repo Repository
}

func (t Tally) Stats(ctx context.Context) (Stats, error) {
	items, err := resource.All(ctx, t.Repo, nil)
	if err != nil {
		return nil, err
	}
	return CountByStatus(items), nil
}
