package remote

import (
	"github.com/goto/backoffice/core/admin"
	"github.com/goto/backoffice/core/event"
	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/notice"
	"github.com/goto/backoffice/core/policy"
	"github.com/goto/backoffice/core/product"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/core/settlement"
	"github.com/goto/backoffice/internal/client"
)

// Store holds one backend-backed repository per resource.
type Store struct {
	Reservations *Repository[reservation.Reservation]
	Settlements  *Repository[settlement.Settlement]
	Members      *Repository[member.Member]
	Products     *Repository[product.Product]
	Events       *Repository[event.Event]
	Admins       *Repository[admin.Admin]
	Policies     *Repository[policy.Policy]
	Notices      *Repository[notice.Notice]

	ReservationStats ReservationStats
	SettlementStats  SettlementStats
	Dashboard        Dashboard
	Statistics       Statistics
}

func NewStore(c *client.Client) *Store {
	return &Store{
		Reservations:     NewRepository[reservation.Reservation](c, reservation.Endpoint),
		Settlements:      NewRepository[settlement.Settlement](c, settlement.Endpoint),
		Members:          NewRepository[member.Member](c, member.Endpoint),
		Products:         NewRepository[product.Product](c, product.Endpoint),
		Events:           NewRepository[event.Event](c, event.Endpoint),
		Admins:           NewRepository[admin.Admin](c, admin.Endpoint),
		Policies:         NewRepository[policy.Policy](c, policy.Endpoint),
		Notices:          NewRepository[notice.Notice](c, notice.Endpoint),
		ReservationStats: ReservationStats{Client: c},
		SettlementStats:  SettlementStats{Client: c},
		Dashboard:        Dashboard{Client: c},
		Statistics:       Statistics{Client: c},
	}
}
