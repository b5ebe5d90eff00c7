package remote

import (
	"context"
	"net/url"

	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/internal/client"
)

// Repository forwards every operation to a backend collection endpoint.
type Repository[T any] struct {
	client   *client.Client
	endpoint string
}

func NewRepository[T any](c *client.Client, endpoint string) *Repository[T] {
	return &Repository[T]{
		client:   c,
		endpoint: endpoint,
	}
}

func (r *Repository[T]) List(ctx context.Context, p query.Params) (query.Page[T], error) {
	return client.Get[query.Page[T]](ctx, r.client, client.Path(r.endpoint, p.Values()))
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	return client.Get[T](ctx, r.client, r.item(id))
}

func (r *Repository[T]) Create(ctx context.Context, rec T) (T, error) {
	return client.Post[T](ctx, r.client, r.endpoint, rec)
}

func (r *Repository[T]) Update(ctx context.Context, id string, patch resource.Patch) (T, error) {
	return client.Put[T](ctx, r.client, r.item(id), patch)
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	return client.Delete(ctx, r.client, r.item(id))
}

func (r *Repository[T]) item(id string) string {
	return r.endpoint + "/" + url.PathEscape(id)
}
