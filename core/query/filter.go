package query

// Filter returns the records of items satisfying every criterion, in their
// original order. items is never modified; the result is always a new slice.
func Filter[T any](items []T, schema Schema[T], cr Criteria) []T {
	matchers := schema.compile(cr)

	out := make([]T, 0, len(items))
	for _, rec := range items {
		if matchAll(rec, matchers) {
			out = append(out, rec)
		}
	}
	return out
}

// Run orders, filters and then paginates items.
func Run[T any](items []T, schema Schema[T], p Params) (Page[T], error) {
	return Paginate(Filter(schema.Sorted(items), schema, p.Criteria), p.Page, p.Limit)
}

func matchAll[T any](rec T, matchers []matcher[T]) bool {
	for _, m := range matchers {
		if !m(rec) {
			return false
		}
	}
	return true
}
