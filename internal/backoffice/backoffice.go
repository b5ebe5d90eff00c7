package backoffice

import (
	"github.com/goto/backoffice/core/admin"
	"github.com/goto/backoffice/core/dashboard"
	"github.com/goto/backoffice/core/event"
	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/notice"
	"github.com/goto/backoffice/core/policy"
	"github.com/goto/backoffice/core/product"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/core/settlement"
	"github.com/goto/backoffice/core/statistics"
	"github.com/goto/backoffice/internal/client"
	"github.com/goto/backoffice/internal/server"
	"github.com/goto/backoffice/internal/store/memory"
	"github.com/goto/backoffice/internal/store/postgres"
	"github.com/goto/backoffice/internal/store/remote"
	"github.com/goto/salt/log"
)

// Config selects the data source. Mock serves seeded in-memory collections;
// otherwise every call goes to the REST backend at Client.BaseURL.
type Config struct {
	Mock   bool          `yaml:"mock" mapstructure:"mock" default:"true"`
	Client client.Config `yaml:"client" mapstructure:"client"`
}

// Services is the full set of back-office services. Callers cannot tell
// which data source is behind them.
type Services struct {
	Reservations *reservation.Service
	Settlements  *settlement.Service
	Members      *resource.Service[member.Member]
	Products     *resource.Service[product.Product]
	Events       *resource.Service[event.Event]
	Admins       *resource.Service[admin.Admin]
	Policies     *resource.Service[policy.Policy]
	Notices      *resource.Service[notice.Notice]
	Dashboard    *dashboard.Service
	Statistics   *statistics.Service
}

// New builds services for cfg. opts only apply in real mode.
func New(cfg Config, logger log.Logger, opts ...client.Option) *Services {
	if cfg.Mock {
		logger.Info("using mock data source")
		return NewMock(memory.Seed(), logger)
	}

	logger.Info("using remote data source", "base_url", cfg.Client.BaseURL)
	opts = append([]client.Option{client.WithLogger(logger)}, opts...)
	return NewRemote(client.New(cfg.Client, opts...), logger)
}

func NewMock(ds memory.Dataset, logger log.Logger) *Services {
	st := memory.NewStore(ds, logger)
	return &Services{
		Reservations: reservation.NewService(st.Reservations, st.ReservationStats(), logger),
		Settlements:  settlement.NewService(st.Settlements, st.SettlementStats(), logger),
		Members:      member.NewService(st.Members, logger),
		Products:     product.NewService(st.Products, logger),
		Events:       event.NewService(st.Events, logger),
		Admins:       admin.NewService(st.Admins, logger),
		Policies:     policy.NewService(st.Policies, logger),
		Notices:      notice.NewService(st.Notices, logger),
		Dashboard:    dashboard.NewService(st.Dashboard(), logger),
		Statistics:   statistics.NewService(st.Statistics(), logger),
	}
}

func NewRemote(c *client.Client, logger log.Logger) *Services {
	st := remote.NewStore(c)
	return &Services{
		Reservations: reservation.NewService(st.Reservations, st.ReservationStats, logger),
		Settlements:  settlement.NewService(st.Settlements, st.SettlementStats, logger),
		Members:      member.NewService(st.Members, logger),
		Products:     product.NewService(st.Products, logger),
		Events:       event.NewService(st.Events, logger),
		Admins:       admin.NewService(st.Admins, logger),
		Policies:     policy.NewService(st.Policies, logger),
		Notices:      notice.NewService(st.Notices, logger),
		Dashboard:    dashboard.NewService(st.Dashboard, logger),
		Statistics:   statistics.NewService(st.Statistics, logger),
	}
}

// NewPostgres builds services over the durable document store.
func NewPostgres(st *postgres.Store, logger log.Logger) *Services {
	return &Services{
		Reservations: reservation.NewService(st.Reservations, st.ReservationStats(), logger),
		Settlements:  settlement.NewService(st.Settlements, st.SettlementStats(), logger),
		Members:      member.NewService(st.Members, logger),
		Products:     product.NewService(st.Products, logger),
		Events:       event.NewService(st.Events, logger),
		Admins:       admin.NewService(st.Admins, logger),
		Policies:     policy.NewService(st.Policies, logger),
		Notices:      notice.NewService(st.Notices, logger),
		Dashboard:    dashboard.NewService(st.Dashboard(), logger),
		Statistics:   statistics.NewService(st.Statistics(), logger),
	}
}

// Server exposes the services to the REST router.
func (s *Services) Server() server.Services {
	return server.Services{
		Reservations: s.Reservations,
		Settlements:  s.Settlements,
		Members:      s.Members,
		Products:     s.Products,
		Events:       s.Events,
		Admins:       s.Admins,
		Policies:     s.Policies,
		Notices:      s.Notices,
		Dashboard:    s.Dashboard,
		Statistics:   s.Statistics,
	}
}
