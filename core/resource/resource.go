package resource

import (
	"context"

	"github.com/goto/backoffice/core/query"
)

// Patch is a partial record keyed by JSON attribute name.
type Patch map[string]interface{}

//go:generate mockery --name=Repository -r --case underscore --with-expecter --structname Repository --filename repository_mock.go --output=./mocks

// Repository is a data source for one resource. The in-memory and remote
// implementations are interchangeable: they share the Page envelope and the
// error taxonomy.
type Repository[T any] interface {
	List(ctx context.Context, p query.Params) (query.Page[T], error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, patch Patch) (T, error)
	Delete(ctx context.Context, id string) error
}

// Keyed is implemented by every record type. Key is the id used in lookups.
type Keyed interface {
	Key() string
}

// All pages through repo and collects every record matching cr.
func All[T any](ctx context.Context, repo Repository[T], cr query.Criteria) ([]T, error) {
	var out []T
	for page := 1; ; page++ {
		pg, err := repo.List(ctx, query.NewParams(page, query.MaxLimit, cr))
		if err != nil {
			return nil, err
		}
		out = append(out, pg.Data...)
		if !pg.Pagination.HasNext || len(pg.Data) == 0 {
			return out, nil
		}
	}
}
