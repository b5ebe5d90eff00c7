package memory

import (
	"time"

	"github.com/goto/backoffice/core/admin"
	"github.com/goto/backoffice/core/dashboard"
	"github.com/goto/backoffice/core/event"
	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/notice"
	"github.com/goto/backoffice/core/policy"
	"github.com/goto/backoffice/core/product"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/core/settlement"
	"github.com/goto/backoffice/core/statistics"
	"github.com/goto/salt/log"
)

// Store holds one in-memory repository per resource.
type Store struct {
	Reservations *Repository[reservation.Reservation]
	Settlements  *Repository[settlement.Settlement]
	Members      *Repository[member.Member]
	Products     *Repository[product.Product]
	Events       *Repository[event.Event]
	Admins       *Repository[admin.Admin]
	Policies     *Repository[policy.Policy]
	Notices      *Repository[notice.Notice]

	anchor time.Time
}

func NewStore(ds Dataset, logger log.Logger) *Store {
	return &Store{
		Reservations: NewRepository(reservation.Schema, ds.Reservations, logger),
		Settlements:  NewRepository(settlement.Schema, ds.Settlements, logger),
		Members:      NewRepository(member.Schema, ds.Members, logger),
		Products:     NewRepository(product.Schema, ds.Products, logger),
		Events:       NewRepository(event.Schema, ds.Events, logger),
		Admins:       NewRepository(admin.Schema, ds.Admins, logger),
		Policies:     NewRepository(policy.Schema, ds.Policies, logger),
		Notices:      NewRepository(notice.Schema, ds.Notices, logger),
		anchor:       ds.Anchor,
	}
}

func (s *Store) ReservationStats() reservation.Tally {
	return reservation.Tally{Repo: s.Reservations}
}

func (s *Store) SettlementStats() settlement.Tally {
	return settlement.Tally{Repo: s.Settlements, Now: s.now}
}

// Dashboard computes dashboard figures relative to the dataset's anchor day.
func (s *Store) Dashboard() dashboard.Collector {
	return dashboard.Collector{
		Reservations: s.Reservations,
		Members:      s.Members,
		Products:     s.Products,
		Now:          s.now,
	}
}

// Statistics computes report series relative to the dataset's anchor day.
func (s *Store) Statistics() statistics.Collector {
	return statistics.Collector{
		Settlements: s.Settlements,
		MemberRepo:  s.Members,
		ProductRepo: s.Products,
		Now:         s.now,
	}
}

func (s *Store) now() time.Time {
	if s.anchor.IsZero() {
		return time.Now()
	}
	return s.anchor
}
