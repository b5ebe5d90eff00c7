package query

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/golang-module/carbon/v2"
	"github.com/goto/backoffice/lib/set"
	"github.com/goto/backoffice/pkg/apierror"
)

// Kind decides how a criterion is evaluated against a field.
type Kind int

const (
	KindExact Kind = iota + 1
	KindMembership
	KindSearch
	KindFrom
	KindUntil
)

// Attr reads one string attribute of a record. Key is the attribute's JSON name.
// Multi-valued attributes set Values instead of Get; they are only valid in
// membership fields, where any shared value is a match.
type Attr[T any] struct {
	Key    string
	Get    func(T) string
	Values func(T) []string
}

// Multi reports whether the attribute holds a list of values.
func (a Attr[T]) Multi() bool {
	return a.Values != nil
}

// Field binds a criterion name to the attributes it is evaluated over.
type Field[T any] struct {
	Param   string
	Kind    Kind
	Sources []Attr[T]
	// Labels maps search selector labels to source keys.
	Labels map[string]string
	// Allowed restricts exact and membership values. Empty allows anything.
	Allowed []string
}

// WithLabels lets a search scope be given by its display label.
func (f Field[T]) WithLabels(labels map[string]string) Field[T] {
	f.Labels = labels
	return f
}

// OneOf restricts the values a criterion on f may carry.
func (f Field[T]) OneOf(values ...string) Field[T] {
	f.Allowed = values
	return f
}

// ScopeOf resolves a search selector to a source key. "all" is no scope and
// unlabelled selectors are returned as given.
func (f Field[T]) ScopeOf(selector string) string {
	selector = Specific(selector)
	if key, ok := f.Labels[selector]; ok {
		return key
	}
	return selector
}

func Exact[T any](param string, src Attr[T]) Field[T] {
	return Field[T]{Param: param, Kind: KindExact, Sources: []Attr[T]{src}}
}

func Membership[T any](param string, src Attr[T]) Field[T] {
	return Field[T]{Param: param, Kind: KindMembership, Sources: []Attr[T]{src}}
}

func Search[T any](param string, srcs ...Attr[T]) Field[T] {
	return Field[T]{Param: param, Kind: KindSearch, Sources: srcs}
}

// From is an inclusive lower date bound.
func From[T any](param string, src Attr[T]) Field[T] {
	return Field[T]{Param: param, Kind: KindFrom, Sources: []Attr[T]{src}}
}

// Until is an inclusive upper date bound.
func Until[T any](param string, src Attr[T]) Field[T] {
	return Field[T]{Param: param, Kind: KindUntil, Sources: []Attr[T]{src}}
}

// Schema is the per-resource field mapping table used by the filter engine,
// the query string codec and the SQL builder.
type Schema[T any] struct {
	Resource string
	Fields   []Field[T]
	// Order re-sorts the collection before filtering. nil keeps insertion order.
	Order func(a, b T) int
	// SortKey is the JSON attribute stores order by. Empty means insertion order.
	SortKey  string
	SortDesc bool
}

// Field looks up a field by criterion name.
func (s Schema[T]) Field(param string) (Field[T], bool) {
	for _, f := range s.Fields {
		if f.Param == param {
			return f, true
		}
	}
	return Field[T]{}, false
}

// Unknown lists criterion names the schema does not declare.
func (s Schema[T]) Unknown(cr Criteria) []string {
	var unknown []string
	for _, name := range cr.Names() {
		if _, ok := s.Field(name); !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// Validate checks date bounds, search scopes and restricted values.
func (s Schema[T]) Validate(cr Criteria) error {
	var problems []string
	for _, f := range s.Fields {
		c, ok := cr[f.Param]
		if !ok || c.IsZero() {
			continue
		}
		switch f.Kind {
		case KindFrom, KindUntil:
			if _, err := NormalizeDate(c.First()); err != nil {
				problems = append(problems, fmt.Sprintf("%s: invalid date %q", f.Param, c.First()))
			}
		case KindSearch:
			if scope := f.ScopeOf(c.Scope); scope != "" && !f.hasSource(scope) {
				problems = append(problems, fmt.Sprintf("%s: unknown %s %q", f.Param, ScopeParam, c.Scope))
			}
		default:
			if len(f.Allowed) == 0 {
				continue
			}
			for _, v := range c.Values {
				if !slices.Contains(f.Allowed, v) {
					problems = append(problems, fmt.Sprintf("%s: unknown value %q", f.Param, v))
				}
			}
		}
	}
	if len(problems) > 0 {
		return apierror.Invalid(strings.Join(problems, " and "), problems)
	}
	return nil
}

// Decode is the inverse of Criteria.Encode for the fields of s. The "all"
// selector is dropped and search labels are resolved to source keys.
func (s Schema[T]) Decode(q url.Values) Criteria {
	cr := Criteria{}
	for _, f := range s.Fields {
		values := q[f.Param]
		if len(values) == 0 {
			continue
		}
		switch f.Kind {
		case KindMembership:
			specific := make([]string, 0, len(values))
			for _, v := range values {
				specific = append(specific, Specific(v))
			}
			cr.Set(f.Param, In(specific...))
		case KindSearch:
			cr.Set(f.Param, Contains(values[0]).WithScope(f.ScopeOf(q.Get(ScopeParam))))
		default:
			cr.Set(f.Param, Eq(Specific(values[0])))
		}
	}
	return cr
}

// Sorted returns items ordered by s.Order, or a plain copy when Order is nil.
func (s Schema[T]) Sorted(items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	if s.Order != nil {
		slices.SortStableFunc(out, s.Order)
	}
	return out
}

// Match reports whether rec satisfies every criterion in cr.
func (s Schema[T]) Match(rec T, cr Criteria) bool {
	return matchAll(rec, s.compile(cr))
}

type matcher[T any] func(T) bool

func (s Schema[T]) compile(cr Criteria) []matcher[T] {
	var ms []matcher[T]
	for _, f := range s.Fields {
		c, ok := cr[f.Param]
		if !ok || c.IsZero() || len(f.Sources) == 0 {
			continue
		}
		ms = append(ms, f.matcher(c))
	}
	return ms
}

func (f Field[T]) matcher(c Criterion) matcher[T] {
	src := f.Sources[0]
	switch f.Kind {
	case KindMembership:
		accepted := set.NewStringSet(c.Values...)
		if src.Multi() {
			return func(rec T) bool { return accepted.HasAny(src.Values(rec)...) }
		}
		return func(rec T) bool { return accepted.Has(src.Get(rec)) }

	case KindSearch:
		term := strings.ToLower(c.First())
		srcs := f.Scoped(c.Scope)
		return func(rec T) bool {
			for _, s := range srcs {
				if strings.Contains(strings.ToLower(s.Get(rec)), term) {
					return true
				}
			}
			return false
		}

	case KindFrom, KindUntil:
		bound, err := NormalizeDate(c.First())
		if err != nil {
			bound = c.First()
		}
		lower := f.Kind == KindFrom
		return func(rec T) bool {
			v, err := NormalizeDate(src.Get(rec))
			if err != nil {
				return false
			}
			if lower {
				return v >= bound
			}
			return v <= bound
		}
	}

	want := c.First()
	return func(rec T) bool { return src.Get(rec) == want }
}

func (f Field[T]) hasSource(key string) bool {
	for _, s := range f.Sources {
		if s.Key == key {
			return true
		}
	}
	return false
}

// Scoped narrows the sources to the scope key or label. Unknown scopes search
// all sources.
func (f Field[T]) Scoped(scope string) []Attr[T] {
	scope = f.ScopeOf(scope)
	if scope == "" {
		return f.Sources
	}
	for _, s := range f.Sources {
		if s.Key == scope {
			return []Attr[T]{s}
		}
	}
	return f.Sources
}

// NormalizeDate reduces a date or timestamp to its UTC calendar day.
func NormalizeDate(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("empty date")
	}
	c := carbon.Parse(v, carbon.UTC)
	if c.Error != nil {
		return "", c.Error
	}
	return c.ToDateString(), nil
}
