package resource_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/core/resource/mocks"
	"github.com/goto/backoffice/pkg/apierror"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type note struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Status string            `json:"status"`
	Date   string            `json:"date,omitempty"`
	Tags   []string          `json:"tags,omitempty"`
	Meta   map[string]string `json:"meta,omitempty"`
}

func (n note) Key() string { return n.ID }

var noteSchema = query.Schema[note]{
	Resource: "note",
	Fields: []query.Field[note]{
		query.Exact("status", query.Attr[note]{Key: "status", Get: func(n note) string { return n.Status }}),
		query.From("startDate", query.Attr[note]{Key: "date", Get: func(n note) string { return n.Date }}),
		query.Search("q", query.Attr[note]{Key: "title", Get: func(n note) string { return n.Title }}),
	},
}

func TestService_List(t *testing.T) {
	type testCase struct {
		Description string
		Params      query.Params
		Setup       func(context.Context, *mocks.Repository[note])
		ExpectKind  apierror.Kind
		ExpectErr   error
	}

	page := query.Page[note]{Data: []note{{ID: "1"}}, Pagination: query.Pagination{Total: 1, Page: 1, Limit: 20, TotalPages: 1}}
	repoErr := errors.New("boom")

	var testCases = []testCase{
		{
			Description: "should assign default page and limit before calling the repository",
			Params:      query.Params{},
			Setup: func(ctx context.Context, r *mocks.Repository[note]) {
				r.EXPECT().List(ctx, query.NewParams(1, 20, query.Criteria{})).Return(page, nil)
			},
		},
		{
			Description: "should reject a negative limit without calling the repository",
			Params:      query.Params{Page: 1, Limit: -1},
			ExpectKind:  apierror.KindInvalid,
		},
		{
			Description: "should reject a limit above the maximum",
			Params:      query.Params{Page: 1, Limit: query.MaxLimit + 1},
			ExpectKind:  apierror.KindInvalid,
		},
		{
			Description: "should reject a malformed date bound",
			Params:      query.NewParams(1, 10, query.Criteria{"startDate": query.Eq("yesterday-ish")}),
			ExpectKind:  apierror.KindInvalid,
		},
		{
			Description: "should pass unknown criteria through to the repository",
			Params:      query.NewParams(2, 10, query.Criteria{"color": query.Eq("red")}),
			Setup: func(ctx context.Context, r *mocks.Repository[note]) {
				r.EXPECT().List(ctx, query.NewParams(2, 10, query.Criteria{"color": query.Eq("red")})).Return(page, nil)
			},
		},
		{
			Description: "should return repository errors unchanged",
			Params:      query.NewParams(1, 10, nil),
			Setup: func(ctx context.Context, r *mocks.Repository[note]) {
				r.EXPECT().List(ctx, mock.Anything).Return(query.Page[note]{}, repoErr)
			},
			ExpectErr: repoErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			ctx := context.Background()
			repo := mocks.NewRepository[note](t)
			if tc.Setup != nil {
				tc.Setup(ctx, repo)
			}

			svc := resource.NewService(noteSchema, repo, log.NewNoop())
			got, err := svc.List(ctx, tc.Params)

			switch {
			case tc.ExpectKind != 0:
				assert.True(t, apierror.IsKind(err, tc.ExpectKind), "got %v", err)
			case tc.ExpectErr != nil:
				assert.ErrorIs(t, err, tc.ExpectErr)
			default:
				assert.NoError(t, err)
				assert.Equal(t, page, got)
			}
		})
	}
}

func TestService_ByID(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject an empty id", func(t *testing.T) {
		svc := resource.NewService(noteSchema, mocks.NewRepository[note](t), log.NewNoop())

		_, err := svc.GetByID(ctx, "")
		assert.True(t, apierror.IsKind(err, apierror.KindInvalid))
		_, err = svc.Update(ctx, "", resource.Patch{"title": "x"})
		assert.True(t, apierror.IsKind(err, apierror.KindInvalid))
		assert.True(t, apierror.IsKind(svc.Delete(ctx, ""), apierror.KindInvalid))
	})

	t.Run("should delegate to the repository", func(t *testing.T) {
		repo := mocks.NewRepository[note](t)
		repo.EXPECT().GetByID(ctx, "n-1").Return(note{ID: "n-1"}, nil)
		repo.EXPECT().Create(ctx, note{Title: "new"}).Return(note{}, apierror.Unsupported("create", "note"))
		repo.EXPECT().Update(ctx, "n-1", resource.Patch{"title": "x"}).Return(note{ID: "n-1", Title: "x"}, nil)
		repo.EXPECT().Delete(ctx, "n-1").Return(nil)

		svc := resource.NewService(noteSchema, repo, log.NewNoop())

		got, err := svc.GetByID(ctx, "n-1")
		assert.NoError(t, err)
		assert.Equal(t, "n-1", got.ID)

		_, err = svc.Create(ctx, note{Title: "new"})
		assert.True(t, apierror.IsKind(err, apierror.KindUnsupported))

		updated, err := svc.Update(ctx, "n-1", resource.Patch{"title": "x"})
		assert.NoError(t, err)
		assert.Equal(t, "x", updated.Title)

		assert.NoError(t, svc.Delete(ctx, "n-1"))
	})
}
