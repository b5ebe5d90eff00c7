package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goto/backoffice/core/admin"
	"github.com/goto/backoffice/core/dashboard"
	"github.com/goto/backoffice/core/event"
	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/notice"
	"github.com/goto/backoffice/core/policy"
	"github.com/goto/backoffice/core/product"
	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/core/settlement"
	"github.com/goto/backoffice/core/statistics"
	"github.com/goto/backoffice/internal/store/memory"
	"github.com/goto/salt/log"
)

// Store holds one document repository per resource.
type Store struct {
	Reservations *DocumentRepository[reservation.Reservation]
	Settlements  *DocumentRepository[settlement.Settlement]
	Members      *DocumentRepository[member.Member]
	Products     *DocumentRepository[product.Product]
	Events       *DocumentRepository[event.Event]
	Admins       *DocumentRepository[admin.Admin]
	Policies     *DocumentRepository[policy.Policy]
	Notices      *DocumentRepository[notice.Notice]

	now func() time.Time
}

func NewStore(c *Client, logger log.Logger) (*Store, error) {
	if c == nil {
		return nil, errNilDBClient
	}
	return &Store{
		Reservations: newRepository(c, reservation.Schema, logger),
		Settlements:  newRepository(c, settlement.Schema, logger),
		Members:      newRepository(c, member.Schema, logger),
		Products:     newRepository(c, product.Schema, logger),
		Events:       newRepository(c, event.Schema, logger),
		Admins:       newRepository(c, admin.Schema, logger),
		Policies:     newRepository(c, policy.Schema, logger),
		Notices:      newRepository(c, notice.Schema, logger),
		now:          time.Now,
	}, nil
}

// WithClock replaces the clock used for period, dashboard and statistics windows.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Seed loads a generated dataset. Records already present are left untouched.
func (s *Store) Seed(ctx context.Context, ds memory.Dataset) error {
	seeds := []struct {
		name string
		run  func(context.Context) error
	}{
		{"products", func(ctx context.Context) error { return s.Products.Seed(ctx, ds.Products) }},
		{"members", func(ctx context.Context) error { return s.Members.Seed(ctx, ds.Members) }},
		{"reservations", func(ctx context.Context) error { return s.Reservations.Seed(ctx, ds.Reservations) }},
		{"settlements", func(ctx context.Context) error { return s.Settlements.Seed(ctx, ds.Settlements) }},
		{"events", func(ctx context.Context) error { return s.Events.Seed(ctx, ds.Events) }},
		{"admins", func(ctx context.Context) error { return s.Admins.Seed(ctx, ds.Admins) }},
		{"policies", func(ctx context.Context) error { return s.Policies.Seed(ctx, ds.Policies) }},
		{"notices", func(ctx context.Context) error { return s.Notices.Seed(ctx, ds.Notices) }},
	}
	for _, sd := range seeds {
		if err := sd.run(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", sd.name, err)
		}
	}
	return nil
}

func (s *Store) ReservationStats() reservation.Tally {
	return reservation.Tally{Repo: s.Reservations}
}

func (s *Store) SettlementStats() settlement.Tally {
	return settlement.Tally{Repo: s.Settlements, Now: s.now}
}

func (s *Store) Dashboard() dashboard.Collector {
	return dashboard.Collector{
		Reservations: s.Reservations,
		Members:      s.Members,
		Products:     s.Products,
		Now:          s.now,
	}
}

func (s *Store) Statistics() statistics.Collector {
	return statistics.Collector{
		Settlements: s.Settlements,
		MemberRepo:  s.Members,
		ProductRepo: s.Products,
		Now:         s.now,
	}
}

func newRepository[T resource.Keyed](c *Client, schema query.Schema[T], logger log.Logger) *DocumentRepository[T] {
	return &DocumentRepository[T]{client: c, schema: schema, logger: logger}
}
