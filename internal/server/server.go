package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
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
	"github.com/goto/backoffice/pkg/apierror"
	"github.com/goto/salt/log"
)

// Services are the back-office services exposed over HTTP.
type Services struct {
	Reservations ReservationService
	Settlements  SettlementService
	Members      ResourceService[member.Member]
	Products     ResourceService[product.Product]
	Events       ResourceService[event.Event]
	Admins       ResourceService[admin.Admin]
	Policies     ResourceService[policy.Policy]
	Notices      ResourceService[notice.Notice]
	Dashboard    DashboardService
	Statistics   StatisticsService
}

// NewRouter registers every resource, stats, dashboard and statistics route. Stats routes
// are registered ahead of the item routes they would otherwise shadow.
func NewRouter(svcs Services, logger log.Logger, mws ...mux.MiddlewareFunc) *mux.Router {
	router := mux.NewRouter()
	router.Use(mws...)

	router.NotFoundHandler = errorHandler(logger, apierror.FromResponse(http.StatusNotFound, http.StatusText(http.StatusNotFound), apierror.Body{Code: apierror.CodeNotFound, Message: "route not found"}))
	router.MethodNotAllowedHandler = errorHandler(logger, apierror.FromResponse(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), apierror.Body{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"}))

	router.HandleFunc("/ping", ping).Methods(http.MethodGet)

	router.HandleFunc(reservation.Endpoint+"/stats", serveValue(logger, svcs.Reservations.Stats)).Methods(http.MethodGet)
	router.HandleFunc(settlement.Endpoint+"/stats", serveValue(logger, svcs.Settlements.Stats)).Methods(http.MethodGet)
	router.HandleFunc(settlement.Endpoint+"/sales-stats", serveValue(logger, svcs.Settlements.SalesStats)).Methods(http.MethodGet)
	router.HandleFunc(settlement.Endpoint+"/period-stats", serveValue(logger, svcs.Settlements.PeriodStats)).Methods(http.MethodGet)

	router.HandleFunc(dashboard.StatsEndpoint, serveValue(logger, svcs.Dashboard.Stats)).Methods(http.MethodGet)
	router.HandleFunc(dashboard.RevenueEndpoint, dailyRevenue(logger, svcs.Dashboard)).Methods(http.MethodGet)
	router.HandleFunc(dashboard.ProductSalesEndpoint, serveValue(logger, svcs.Dashboard.ProductSales)).Methods(http.MethodGet)
	router.HandleFunc(dashboard.RecentReservationsEndpoint, serveValue(logger, svcs.Dashboard.RecentReservations)).Methods(http.MethodGet)
	router.HandleFunc(dashboard.MemberGradesEndpoint, serveValue(logger, svcs.Dashboard.MemberGrades)).Methods(http.MethodGet)

	router.HandleFunc(statistics.SalesEndpoint, serveReport(logger, svcs.Statistics.Sales)).Methods(http.MethodGet)
	router.HandleFunc(statistics.PaymentTypesEndpoint, serveReport(logger, svcs.Statistics.PaymentTypes)).Methods(http.MethodGet)
	router.HandleFunc(statistics.ProductsEndpoint, serveReport(logger, svcs.Statistics.Products)).Methods(http.MethodGet)
	router.HandleFunc(statistics.MembersEndpoint, serveReport(logger, svcs.Statistics.Members)).Methods(http.MethodGet)
	router.HandleFunc(statistics.VisitorsEndpoint, serveReport(logger, svcs.Statistics.Visitors)).Methods(http.MethodGet)

	registerResource[reservation.Reservation](router, reservation.Endpoint, svcs.Reservations, logger)
	registerResource[settlement.Settlement](router, settlement.Endpoint, svcs.Settlements, logger)
	registerResource(router, member.Endpoint, svcs.Members, logger)
	registerResource(router, product.Endpoint, svcs.Products, logger)
	registerResource(router, event.Endpoint, svcs.Events, logger)
	registerResource(router, admin.Endpoint, svcs.Admins, logger)
	registerResource(router, policy.Endpoint, svcs.Policies, logger)
	registerResource(router, notice.Endpoint, svcs.Notices, logger)

	return router
}

// Serve listens until ctx is cancelled and then shuts down within the grace period.
func Serve(ctx context.Context, cfg Config, logger log.Logger, h http.Handler) error {
	h = handlers.CompressHandler(h)
	if len(cfg.AllowedOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(cfg.AllowedOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}),
			handlers.AllowedHeaders([]string{"Content-Type", "Accept", requestIDHeaderKey}),
			handlers.ExposedHeaders([]string{requestIDHeaderKey}),
		)(h)
	}
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{logger}),
		handlers.PrintRecoveryStack(true),
	)(h)

	srv := &http.Server{
		Addr:         cfg.addr(),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil

	case <-ctx.Done():
		logger.Info("shutting down server", "grace_period", cfg.GracePeriod.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracePeriod)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	}
}

func ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

type recoveryLogger struct {
	logger log.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("recovered from panic", "panic", fmt.Sprint(v...))
}
