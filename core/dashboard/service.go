package dashboard

import (
	"context"
	"fmt"

	"github.com/golang-module/carbon/v2"
	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/pkg/apierror"
	"github.com/goto/salt/log"
)

// MaxRangeDays caps the length of a daily revenue series.
const MaxRangeDays = 366

type Service struct {
	source Source
	logger log.Logger
}

func NewService(source Source, logger log.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
	}
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.source.Stats(ctx)
}

func (s *Service) DailyRevenue(ctx context.Context, rng Range) ([]DailyRevenue, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	return s.source.DailyRevenue(ctx, rng)
}

func (s *Service) ProductSales(ctx context.Context) ([]ProductSales, error) {
	return s.source.ProductSales(ctx)
}

func (s *Service) RecentReservations(ctx context.Context) ([]reservation.Reservation, error) {
	return s.source.RecentReservations(ctx)
}

func (s *Service) MemberGrades(ctx context.Context) ([]member.GradeShare, error) {
	return s.source.MemberGrades(ctx)
}

// Validate checks that both bounds are dates and that start is not after end.
func (r Range) Validate() error {
	var start, end carbon.Carbon
	if r.StartDate != "" {
		start = carbon.Parse(r.StartDate, carbon.UTC)
		if start.Error != nil {
			return apierror.Invalid(fmt.Sprintf("startDate: invalid date %q", r.StartDate), nil)
		}
	}
	if r.EndDate != "" {
		end = carbon.Parse(r.EndDate, carbon.UTC)
		if end.Error != nil {
			return apierror.Invalid(fmt.Sprintf("endDate: invalid date %q", r.EndDate), nil)
		}
	}
	if r.StartDate != "" && r.EndDate != "" {
		if start.Gt(end) {
			return apierror.Invalid("startDate cannot be after endDate", nil)
		}
		if start.DiffInDays(end) >= MaxRangeDays {
			return apierror.Invalid(fmt.Sprintf("range cannot be longer than %d days", MaxRangeDays), nil)
		}
	}
	return nil
}
