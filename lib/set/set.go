package set

// StringSet is a set of strings.
type StringSet map[string]struct{}

func NewStringSet(values ...string) StringSet {
	ss := make(StringSet, len(values))
	for _, value := range values {
		ss.Add(value)
	}
	return ss
}

func (ss StringSet) Add(v string) StringSet {
	ss[v] = struct{}{}
	return ss
}

// Has reports membership. A nil set contains nothing.
func (ss StringSet) Has(v string) bool {
	_, ok := ss[v]
	return ok
}

// HasAny reports whether at least one of values is in the set.
func (ss StringSet) HasAny(values ...string) bool {
	for _, v := range values {
		if ss.Has(v) {
			return true
		}
	}
	return false
}
