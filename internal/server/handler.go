package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goto/backoffice/core/dashboard"
	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/core/settlement"
	"github.com/goto/backoffice/core/statistics"
	"github.com/goto/backoffice/pkg/apierror"
	"github.com/goto/salt/log"
)

type ResourceService[T any] interface {
	Schema() query.Schema[T]
	List(ctx context.Context, p query.Params) (query.Page[T], error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, patch resource.Patch) (T, error)
	Delete(ctx context.Context, id string) error
}

type ReservationService interface {
	ResourceService[reservation.Reservation]
	Stats(ctx context.Context) (reservation.Stats, error)
}

type SettlementService interface {
	ResourceService[settlement.Settlement]
	Stats(ctx context.Context) (settlement.Stats, error)
	SalesStats(ctx context.Context) (settlement.SalesStats, error)
	PeriodStats(ctx context.Context) (settlement.PeriodStats, error)
}

type DashboardService interface {
	Stats(ctx context.Context) (dashboard.Stats, error)
	DailyRevenue(ctx context.Context, rng dashboard.Range) ([]dashboard.DailyRevenue, error)
	ProductSales(ctx context.Context) ([]dashboard.ProductSales, error)
	RecentReservations(ctx context.Context) ([]reservation.Reservation, error)
	MemberGrades(ctx context.Context) ([]member.GradeShare, error)
}

type StatisticsService interface {
	Sales(ctx context.Context, q statistics.Query) (statistics.SalesReport, error)
	PaymentTypes(ctx context.Context, q statistics.Query) ([]statistics.PaymentShare, error)
	Products(ctx context.Context, q statistics.Query) ([]statistics.ProductRank, error)
	Members(ctx context.Context, q statistics.Query) (statistics.MemberReport, error)
	Visitors(ctx context.Context, q statistics.Query) (statistics.VisitorReport, error)
}

type resourceHandler[T any] struct {
	svc    ResourceService[T]
	logger log.Logger
}

func registerResource[T any](router *mux.Router, endpoint string, svc ResourceService[T], logger log.Logger) {
	h := resourceHandler[T]{svc: svc, logger: logger}

	router.HandleFunc(endpoint, h.list).Methods(http.MethodGet)
	router.HandleFunc(endpoint, h.create).Methods(http.MethodPost)

	item := endpoint + "/{id}"
	router.HandleFunc(item, h.get).Methods(http.MethodGet)
	router.HandleFunc(item, h.update).Methods(http.MethodPut, http.MethodPatch)
	router.HandleFunc(item, h.delete).Methods(http.MethodDelete)
}

func (h resourceHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	p, err := query.ParseParams(r.URL.Query(), h.svc.Schema())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	pg, err := h.svc.List(r.Context(), p)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, pg)
}

func (h resourceHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, rec)
}

func (h resourceHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	var rec T
	if err := decodeJSON(r, &rec); err != nil {
		if errors.Is(err, io.EOF) {
			err = apierror.Invalid("request body is required", nil)
		}
		writeError(w, h.logger, err)
		return
	}

	created, err := h.svc.Create(r.Context(), rec)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, created)
}

func (h resourceHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	patch := resource.Patch{}
	if err := decodeJSON(r, &patch); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, h.logger, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, updated)
}

func (h resourceHandler[T]) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// serveValue answers GET requests with whatever fn computes.
func serveValue[V any](logger log.Logger, fn func(context.Context) (V, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := fn(r.Context())
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, logger, http.StatusOK, v)
	}
}

func dailyRevenue(logger log.Logger, svc DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		rng := dashboard.Range{StartDate: q.Get("startDate"), EndDate: q.Get("endDate")}

		series, err := svc.DailyRevenue(r.Context(), rng)
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, logger, http.StatusOK, series)
	}
}

// serveReport answers GET requests with a statistics report for the unit,
// startDate and endDate query parameters.
func serveReport[V any](logger log.Logger, fn func(context.Context, statistics.Query) (V, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		sq := statistics.Query{
			Unit:      statistics.Unit(q.Get("unit")),
			StartDate: q.Get("startDate"),
			EndDate:   q.Get("endDate"),
		}

		v, err := fn(r.Context(), sq)
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, logger, http.StatusOK, v)
	}
}

func errorHandler(logger log.Logger, err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, logger, fmt.Errorf("%s %s: %w", r.Method, r.URL.Path, err))
	})
}
