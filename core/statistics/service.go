package statistics

import (
	"context"

	"github.com/goto/salt/log"
)

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

func (s *Service) Sales(ctx context.Context, q Query) (SalesReport, error) {
	q.AssignDefault()
	if err := q.Validate(); err != nil {
		return SalesReport{}, err
	}
	return s.source.Sales(ctx, q)
}

// PaymentTypes ranks payment methods by settled sales. Unit is ignored and
// open bounds are unbounded.
func (s *Service) PaymentTypes(ctx context.Context, q Query) ([]PaymentShare, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.source.PaymentTypes(ctx, q)
}

// Products ranks the best selling products. Bounds behave as in PaymentTypes.
func (s *Service) Products(ctx context.Context, q Query) ([]ProductRank, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.source.Products(ctx, q)
}

func (s *Service) Members(ctx context.Context, q Query) (MemberReport, error) {
	q.AssignDefault()
	if err := q.Validate(); err != nil {
		return MemberReport{}, err
	}
	return s.source.Members(ctx, q)
}

func (s *Service) Visitors(ctx context.Context, q Query) (VisitorReport, error) {
	q.AssignDefault()
	if err := q.Validate(); err != nil {
		return VisitorReport{}, err
	}
	return s.source.Visitors(ctx, q)
}
