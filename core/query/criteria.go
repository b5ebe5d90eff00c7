package query

import (
	"net/url"
	"sort"
	"strings"
)

// ScopeParam is the query parameter narrowing a search criterion to one field.
const ScopeParam = "searchType"

// Criterion is one named constraint. Its meaning (exact, membership, search
// or range bound) is decided by the schema field it is matched against.
// The zero value is no constraint.
type Criterion struct {
	Values []string
	Scope  string
}

// Eq constrains a field to a single value. An empty value is no constraint.
func Eq(v string) Criterion {
	if v == "" {
		return Criterion{}
	}
	return Criterion{Values: []string{v}}
}

// In constrains a field to any of values. Empty values are dropped.
func In(values ...string) Criterion {
	var vs []string
	for _, v := range values {
		if v != "" {
			vs = append(vs, v)
		}
	}
	return Criterion{Values: vs}
}

// Contains is a case-insensitive substring search.
func Contains(text string) Criterion {
	return Eq(strings.TrimSpace(text))
}

// WithScope narrows a search criterion to the source with the given key.
func (c Criterion) WithScope(scope string) Criterion {
	if c.IsZero() {
		return c
	}
	c.Scope = scope
	return c
}

func (c Criterion) IsZero() bool {
	return len(c.Values) == 0
}

// Criteria maps criterion names to constraints. A missing name is no constraint.
type Criteria map[string]Criterion

// Set adds c under name, skipping zero criteria so that absent filters stay absent.
func (cr Criteria) Set(name string, c Criterion) Criteria {
	if c.IsZero() {
		return cr
	}
	cr[name] = c
	return cr
}

// Names returns the names of the non-zero criteria, sorted.
func (cr Criteria) Names() []string {
	names := make([]string, 0, len(cr))
	for name, c := range cr {
		if !c.IsZero() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Encode writes criteria as query parameters, one key=value pair per value.
func (cr Criteria) Encode(q url.Values) {
	for _, name := range cr.Names() {
		c := cr[name]
		for _, v := range c.Values {
			q.Add(name, v)
		}
		if c.Scope != "" {
			q.Set(ScopeParam, c.Scope)
		}
	}
}

// AllValues is the selector value meaning "any".
const AllValues = "all"

// Specific drops the "all" selector so it never reaches a criterion.
func Specific(v string) string {
	if v == AllValues {
		return ""
	}
	return v
}

// First is the single value of an exact, search or range criterion.
func (c Criterion) First() string {
	if c.IsZero() {
		return ""
	}
	return c.Values[0]
}
