package postgres_test

func keys[T interface{ Key() string }](items []T) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Key())
	}
	return ids
}
