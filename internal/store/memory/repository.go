package memory

import (
	"context"
	"fmt"

	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/pkg/apierror"
	"github.com/goto/salt/log"
)

// Repository serves a fixed collection. It is not durable: Update returns the
// merged record without storing it, Delete only logs and Create is refused.
// Every call returns without suspending.
type Repository[T resource.Keyed] struct {
	schema query.Schema[T]
	items  []T
	logger log.Logger
}

func NewRepository[T resource.Keyed](schema query.Schema[T], items []T, logger log.Logger) *Repository[T] {
	return &Repository[T]{
		schema: schema,
		items:  items,
		logger: logger,
	}
}

func (r *Repository[T]) List(ctx context.Context, p query.Params) (query.Page[T], error) {
	return query.Run(r.items, r.schema, p)
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	for _, rec := range r.items {
		if rec.Key() == id {
			return rec, nil
		}
	}
	var zero T
	return zero, apierror.NotFound(r.schema.Resource, id)
}

func (r *Repository[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	return zero, apierror.Unsupported("create", r.schema.Resource)
}

func (r *Repository[T]) Update(ctx context.Context, id string, patch resource.Patch) (T, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return current, err
	}

	merged, err := resource.Apply(current, patch)
	if err != nil {
		return current, apierror.Invalid(fmt.Sprintf("patch %s %q: %s", r.schema.Resource, id, err), nil)
	}

	changed := []string{}
	if cl, err := resource.Changes(current, merged); err == nil {
		changed = resource.Paths(cl)
	}
	r.logger.Info("mock update is not persisted", "resource", r.schema.Resource, "id", id, "changed", changed)

	return merged, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	r.logger.Info("mock delete has no effect", "resource", r.schema.Resource, "id", id)
	return nil
}

// Len is the size of the collection.
func (r *Repository[T]) Len() int {
	return len(r.items)
}
