package memory_test

import (
	"context"
	"testing"

	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/internal/store/memory"
	"github.com/goto/backoffice/pkg/apierror"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservationService(t *testing.T, n int) *reservation.Service {
	t.Helper()
	items := memory.Seed().Reservations[:n]
	repo := memory.NewRepository(reservation.Schema, items, log.NewNoop())
	return reservation.NewService(repo, reservation.Tally{Repo: repo}, log.NewNoop())
}

func TestReservationListPages(t *testing.T) {
	ctx := context.Background()
	svc := reservationService(t, 45)

	type testCase struct {
		Description string
		Page        int
		DataLen     int
		Expected    query.Pagination
	}

	var testCases = []testCase{
		{
			Description: "second of three pages",
			Page:        2,
			DataLen:     20,
			Expected:    query.Pagination{Total: 45, Page: 2, Limit: 20, TotalPages: 3, HasNext: true, HasPrev: true},
		},
		{
			Description: "last partial page",
			Page:        3,
			DataLen:     5,
			Expected:    query.Pagination{Total: 45, Page: 3, Limit: 20, TotalPages: 3, HasNext: false, HasPrev: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			pg, err := svc.List(ctx, query.NewParams(tc.Page, 20, nil))
			require.NoError(t, err)
			assert.Len(t, pg.Data, tc.DataLen)
			assert.Equal(t, tc.Expected, pg.Pagination)
		})
	}
}

func TestGetByIDMissing(t *testing.T) {
	svc := reservationService(t, 45)

	_, err := svc.GetByID(context.Background(), "9999")

	e, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindNotFound, e.Kind)
	assert.Equal(t, 404, e.Status)
	assert.Contains(t, e.Message, "9999")
}

func TestMemberSearch(t *testing.T) {
	names := []string{"김철수", "이영희", "박민수", "김하늘", "최지우", "정우성", "강동원", "윤아", "한김치", "송혜교"}
	members := make([]member.Member, len(names))
	for i, name := range names {
		members[i] = member.Member{ID: string(rune('a' + i)), Name: name, Email: "m@example.com"}
	}
	svc := member.NewService(memory.NewRepository(member.Schema, members, log.NewNoop()), log.NewNoop())

	pg, err := svc.List(context.Background(), query.NewParams(1, 20, member.Filter{SearchTerm: "김"}.Criteria()))
	require.NoError(t, err)

	got := []string{}
	for _, m := range pg.Data {
		got = append(got, m.Name)
	}
	assert.Equal(t, []string{"김철수", "김하늘", "한김치"}, got)
	assert.Equal(t, 3, pg.Pagination.Total)
}

func TestCreateUnsupported(t *testing.T) {
	svc := reservationService(t, 10)

	_, err := svc.Create(context.Background(), reservation.Reservation{ProductName: "new"})

	e, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindUnsupported, e.Kind)
	assert.Equal(t, apierror.CodeUnsupported, e.Code)
}

func TestUpdateIsNotDurable(t *testing.T) {
	ctx := context.Background()
	svc := reservationService(t, 10)

	before, err := svc.GetByID(ctx, "3")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "3", resource.Patch{"status": string(reservation.StatusConfirmed), "adminMemo": "확인 완료"})
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, updated.Status)
	assert.Equal(t, "확인 완료", updated.AdminMemo)
	assert.Equal(t, before.ProductName, updated.ProductName)
	assert.True(t, before.CreatedAt.Equal(updated.CreatedAt))

	after, err := svc.GetByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, err = svc.Update(ctx, "404", resource.Patch{"adminMemo": "x"})
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))

	_, err = svc.Update(ctx, "3", resource.Patch{"adults": "many"})
	assert.True(t, apierror.IsKind(err, apierror.KindInvalid))
}

func TestDeleteIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := reservationService(t, 10)

	require.NoError(t, svc.Delete(ctx, "3"))

	_, err := svc.GetByID(ctx, "3")
	assert.NoError(t, err)
	pg, err := svc.List(ctx, query.NewParams(1, 20, nil))
	require.NoError(t, err)
	assert.Equal(t, 10, pg.Pagination.Total)
}

func TestListFiltersBeforePaginating(t *testing.T) {
	ctx := context.Background()
	svc := reservationService(t, memory.ReservationCount)

	f := reservation.Filter{Statuses: []string{string(reservation.StatusPaid), string(reservation.StatusConfirmed)}}
	pg, err := svc.List(ctx, query.NewParams(1, 5, f.Criteria()))
	require.NoError(t, err)

	all, err := svc.List(ctx, query.NewParams(1, query.MaxLimit, f.Criteria()))
	require.NoError(t, err)
	assert.Equal(t, all.Pagination.Total, pg.Pagination.Total)
	assert.Equal(t, all.Data[:len(pg.Data)], pg.Data)
	for _, r := range all.Data {
		assert.Contains(t, []reservation.Status{reservation.StatusPaid, reservation.StatusConfirmed}, r.Status)
	}
}
