package remote_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goto/backoffice/core/dashboard"
	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/core/statistics"
	"github.com/goto/backoffice/internal/client"
	"github.com/goto/backoffice/internal/store/remote"
	"github.com/goto/backoffice/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
}

func newBackend(t *testing.T, respond func(w http.ResponseWriter, r *http.Request)) (*client.Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(b)})
		respond(w, r)
	}))
	t.Cleanup(srv.Close)
	return client.New(client.Config{BaseURL: srv.URL}), &calls
}

func TestRepositoryList(t *testing.T) {
	page := query.Page[reservation.Reservation]{
		Data:       []reservation.Reservation{{ID: 21}, {ID: 22}},
		Pagination: query.Pagination{Total: 45, Page: 2, Limit: 20, TotalPages: 3, HasNext: true, HasPrev: true},
	}
	c, calls := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(page)
	})
	repo := remote.NewRepository[reservation.Reservation](c, reservation.Endpoint)

	f := reservation.Filter{
		Category:       "all",
		Statuses:       []string{"결제완료", "예약확정"},
		PaymentMethods: []string{"신용카드"},
		SearchType:     "예약자명",
		SearchQuery:    "홍길동",
	}
	got, err := repo.List(context.Background(), query.NewParams(2, 20, f.Criteria()))
	require.NoError(t, err)

	assert.Equal(t, page.Pagination, got.Pagination)
	assert.Len(t, got.Data, 2)
	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodGet, call.Method)
	assert.Equal(t, "/api/reservations", call.Path)
	assert.Equal(t,
		"limit=20&page=2&paymentMethod=%EC%8B%A0%EC%9A%A9%EC%B9%B4%EB%93%9C"+
			"&q=%ED%99%8D%EA%B8%B8%EB%8F%99&searchType=customerName"+
			"&status=%EA%B2%B0%EC%A0%9C%EC%99%84%EB%A3%8C&status=%EC%98%88%EC%95%BD%ED%99%95%EC%A0%95",
		call.Query)
}

func TestRepositoryItemOperations(t *testing.T) {
	ctx := context.Background()
	c, calls := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"code":"NOT_FOUND","message":"could not find member with id \"MEM-9\""}`)
		default:
			io.WriteString(w, `{"id":"MEM-1","name":"회원1","grade":"VIP"}`)
		}
	})
	repo := remote.NewRepository[member.Member](c, member.Endpoint)

	_, err := repo.GetByID(ctx, "MEM-9")
	e, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, e.Status)
	assert.Equal(t, "NOT_FOUND", e.Code)
	assert.Contains(t, e.Message, "MEM-9")

	created, err := repo.Create(ctx, member.Member{Name: "회원1"})
	require.NoError(t, err)
	assert.Equal(t, "MEM-1", created.ID)

	updated, err := repo.Update(ctx, "MEM-1", resource.Patch{"grade": "VIP"})
	require.NoError(t, err)
	assert.Equal(t, member.GradeVIP, updated.Grade)

	require.NoError(t, repo.Delete(ctx, "MEM-1"))

	methods := []string{}
	for _, call := range *calls {
		methods = append(methods, call.Method+" "+call.Path)
	}
	assert.Equal(t, []string{
		"GET /api/members/MEM-9",
		"POST /api/members",
		"PUT /api/members/MEM-1",
		"DELETE /api/members/MEM-1",
	}, methods)
	assert.JSONEq(t, `{"grade":"VIP"}`, (*calls)[2].Body)
}

func TestStatsSources(t *testing.T) {
	ctx := context.Background()
	c, calls := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/reservations/stats":
			io.WriteString(w, `{"예약확정":3,"예약취소":1}`)
		case "/api/dashboard/revenue":
			io.WriteString(w, `[{"date":"2024-11-01","revenue":1000,"orders":2}]`)
		default:
			io.WriteString(w, `{}`)
		}
	})

	stats, err := remote.ReservationStats{Client: c}.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats[reservation.StatusConfirmed])

	series, err := remote.Dashboard{Client: c}.DailyRevenue(ctx, dashboard.Range{StartDate: "2024-11-01", EndDate: "2024-11-30"})
	require.NoError(t, err)
	assert.Equal(t, []dashboard.DailyRevenue{{Date: "2024-11-01", Revenue: 1000, Orders: 2}}, series)
	assert.Equal(t, "endDate=2024-11-30&startDate=2024-11-01", (*calls)[1].Query)
}

func TestStatisticsSource(t *testing.T) {
	ctx := context.Background()
	c, calls := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/statistics/visitors":
			io.WriteString(w, `{"unit":"hour","periods":[{"period":"09:00","visitorCount":4}],"total":4}`)
		case "/api/statistics/payment-types":
			io.WriteString(w, `[{"rank":1,"paymentType":"신용카드","sales":5000,"sharePercent":100}]`)
		default:
			io.WriteString(w, `{}`)
		}
	})
	src := remote.Statistics{Client: c}

	visitors, err := src.Visitors(ctx, statistics.Query{Unit: statistics.UnitHour, StartDate: "2024-11-01"})
	require.NoError(t, err)
	assert.Equal(t, 4, visitors.Total)
	assert.Equal(t, []statistics.VisitorPeriod{{Period: "09:00", VisitorCount: 4}}, visitors.Periods)
	assert.Equal(t, "startDate=2024-11-01&unit=hour", (*calls)[0].Query)

	shares, err := src.PaymentTypes(ctx, statistics.Query{})
	require.NoError(t, err)
	assert.Equal(t, []statistics.PaymentShare{{Rank: 1, PaymentType: "신용카드", Sales: 5000, SharePercent: 100}}, shares)
	assert.Empty(t, (*calls)[1].Query)
}
