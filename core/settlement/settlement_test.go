package settlement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/core/resource/mocks"
	"github.com/goto/backoffice/core/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2024, time.November, 30, 15, 0, 0, 0, time.UTC)

func fixtures() []settlement.Settlement {
	return []settlement.Settlement{
		{ID: 1, Status: reservation.StatusPaid, ReservationDate: "2024-11-30", PriceKRW: 100, Commission: 10},
		{ID: 2, Status: reservation.StatusConfirmed, ReservationDate: "2024-11-29T23:00:00Z", PriceKRW: 200, Points: 20},
		{ID: 3, Status: reservation.StatusPaid, ReservationDate: "2024-11-20", PriceKRW: 400, Coupon: 40},
		{ID: 4, Status: reservation.StatusCompleted, ReservationDate: "2024-10-31", PriceKRW: 800},
		{ID: 5, Status: reservation.StatusPaid, ReservationDate: "unknown", PriceKRW: 1600},
	}
}

func TestSummarize(t *testing.T) {
	st := settlement.Summarize(fixtures())

	assert.Equal(t, settlement.Stats{
		SalesAmount: 3100,
		Commission:  10,
		Points:      20,
		Coupon:      40,
		TotalProfit: 3030,
		SalesCount:  5,
	}, st)
	assert.Equal(t, settlement.Stats{}, settlement.Summarize(nil))
}

func TestPeriods(t *testing.T) {
	ps := settlement.Periods(fixtures(), anchor)

	assert.Equal(t, settlement.PeriodStats{
		TodaySales:     100,
		YesterdaySales: 200,
		LastWeekSales:  400,
		ThisMonthSales: 700,
	}, ps)
}

func TestCountByStatus(t *testing.T) {
	stats := settlement.CountByStatus(fixtures())

	assert.Len(t, stats, len(reservation.Statuses))
	assert.Equal(t, 3, stats[reservation.StatusPaid])
	assert.Equal(t, 1, stats[reservation.StatusConfirmed])
	assert.Equal(t, 0, stats[reservation.StatusCancelled])
}

func TestFilterCriteria(t *testing.T) {
	cr := settlement.Filter{
		Category:         "all",
		SettlementStatus: "정산완료",
		SearchType:       "상품명",
		SearchQuery:      "방콕",
	}.Criteria()

	assert.Equal(t, query.Criteria{
		"settlementStatus": {Values: []string{"정산완료"}},
		"q":                {Values: []string{"방콕"}, Scope: "productName"},
	}, cr)
}

func TestTally(t *testing.T) {
	ctx := context.Background()

	t.Run("computes stats from every settlement", func(t *testing.T) {
		items := fixtures()
		repo := mocks.NewRepository[settlement.Settlement](t)
		repo.EXPECT().List(ctx, mock.Anything).Return(query.Page[settlement.Settlement]{
			Data:       items,
			Pagination: query.Pagination{Total: len(items), Page: 1, Limit: query.MaxLimit, TotalPages: 1},
		}, nil)

		tally := settlement.Tally{Repo: repo, Now: func() time.Time { return anchor }}

		st, err := tally.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, st.SalesCount)

		sales, err := tally.SalesStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, sales[reservation.StatusPaid])

		ps, err := tally.PeriodStats(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 700, ps.ThisMonthSales)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repoErr := errors.New("connection refused")
		repo := mocks.NewRepository[settlement.Settlement](t)
		repo.EXPECT().List(ctx, mock.Anything).Return(query.Page[settlement.Settlement]{}, repoErr)

		_, err := settlement.Tally{Repo: repo}.Stats(ctx)
		assert.ErrorIs(t, err, repoErr)
	})
}
