package remote

import (
	"context"
	"net/url"

	"github.com/goto/backoffice/core/dashboard"
	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/core/settlement"
	"github.com/goto/backoffice/core/statistics"
	"github.com/goto/backoffice/internal/client"
)

type ReservationStats struct {
	Client *client.Client
}

func (s ReservationStats) Stats(ctx context.Context) (reservation.Stats, error) {
	return client.Get[reservation.Stats](ctx, s.Client, reservation.Endpoint+"/stats")
}

type SettlementStats struct {
	Client *client.Client
}

func (s SettlementStats) Stats(ctx context.Context) (settlement.Stats, error) {
	return client.Get[settlement.Stats](ctx, s.Client, settlement.Endpoint+"/stats")
}

func (s SettlementStats) SalesStats(ctx context.Context) (settlement.SalesStats, error) {
	return client.Get[settlement.SalesStats](ctx, s.Client, settlement.Endpoint+"/sales-stats")
}

func (s SettlementStats) PeriodStats(ctx context.Context) (settlement.PeriodStats, error) {
	return client.Get[settlement.PeriodStats](ctx, s.Client, settlement.Endpoint+"/period-stats")
}

type Dashboard struct {
	Client *client.Client
}

func (d Dashboard) Stats(ctx context.Context) (dashboard.Stats, error) {
	return client.Get[dashboard.Stats](ctx, d.Client, dashboard.StatsEndpoint)
}

func (d Dashboard) DailyRevenue(ctx context.Context, rng dashboard.Range) ([]dashboard.DailyRevenue, error) {
	return client.Get[[]dashboard.DailyRevenue](ctx, d.Client, client.Path(dashboard.RevenueEndpoint, rangeValues(rng.StartDate, rng.EndDate)))
}

func (d Dashboard) ProductSales(ctx context.Context) ([]dashboard.ProductSales, error) {
	return client.Get[[]dashboard.ProductSales](ctx, d.Client, dashboard.ProductSalesEndpoint)
}

func (d Dashboard) RecentReservations(ctx context.Context) ([]reservation.Reservation, error) {
	return client.Get[[]reservation.Reservation](ctx, d.Client, dashboard.RecentReservationsEndpoint)
}

func (d Dashboard) MemberGrades(ctx context.Context) ([]member.GradeShare, error) {
	return client.Get[[]member.GradeShare](ctx, d.Client, dashboard.MemberGradesEndpoint)
}

type Statistics struct {
	Client *client.Client
}

func (s Statistics) Sales(ctx context.Context, q statistics.Query) (statistics.SalesReport, error) {
	return client.Get[statistics.SalesReport](ctx, s.Client, client.Path(statistics.SalesEndpoint, statisticsValues(q)))
}

func (s Statistics) PaymentTypes(ctx context.Context, q statistics.Query) ([]statistics.PaymentShare, error) {
	return client.Get[[]statistics.PaymentShare](ctx, s.Client, client.Path(statistics.PaymentTypesEndpoint, statisticsValues(q)))
}

func (s Statistics) Products(ctx context.Context, q statistics.Query) ([]statistics.ProductRank, error) {
	return client.Get[[]statistics.ProductRank](ctx, s.Client, client.Path(statistics.ProductsEndpoint, statisticsValues(q)))
}

func (s Statistics) Members(ctx context.Context, q statistics.Query) (statistics.MemberReport, error) {
	return client.Get[statistics.MemberReport](ctx, s.Client, client.Path(statistics.MembersEndpoint, statisticsValues(q)))
}

func (s Statistics) Visitors(ctx context.Context, q statistics.Query) (statistics.VisitorReport, error) {
	return client.Get[statistics.VisitorReport](ctx, s.Client, client.Path(statistics.VisitorsEndpoint, statisticsValues(q)))
}

func statisticsValues(q statistics.Query) url.Values {
	v := rangeValues(q.StartDate, q.EndDate)
	if q.Unit != "" {
		v.Set("unit", string(q.Unit))
	}
	return v
}

func rangeValues(start, end string) url.Values {
	q := url.Values{}
	if start != "" {
		q.Set("startDate", start)
	}
	if end != "" {
		q.Set("endDate", end)
	}
	return q
}
