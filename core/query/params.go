package query

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/goto/backoffice/core/validator"
	"github.com/goto/backoffice/pkg/apierror"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 1000
)

// Params is one list request: which page, how large, under which criteria.
type Params struct {
	Page     int      `json:"page" validate:"gte=1"`
	Limit    int      `json:"limit" validate:"gte=1,lte=1000"`
	Criteria Criteria `json:"-"`
}

// NewParams builds list params from optional criteria.
func NewParams(page, limit int, cr Criteria) Params {
	if cr == nil {
		cr = Criteria{}
	}
	return Params{Page: page, Limit: limit, Criteria: cr}
}

// Validate will check whether page and limit fulfil the constraints.
func (p *Params) Validate() error {
	return validator.ValidateStruct(p)
}

// AssignDefault fills the zero Params in with the first default page. Pages
// below one are clamped to the first page.
func (p *Params) AssignDefault() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Criteria == nil {
		p.Criteria = Criteria{}
	}
}

// Values encodes the params as a list query string. page and limit are always present.
func (p Params) Values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	p.Criteria.Encode(q)
	return q
}

// ParseParams reads page, limit and the schema's criteria from a query string.
// Absent page and limit take their defaults. An explicit limit below one is
// rejected rather than defaulted.
func ParseParams[T any](q url.Values, schema Schema[T]) (Params, error) {
	page, err := atoi(q, "page", DefaultPage)
	if err != nil {
		return Params{}, err
	}
	limit, err := atoi(q, "limit", DefaultLimit)
	if err != nil {
		return Params{}, err
	}
	if limit < 1 {
		return Params{}, apierror.Invalid(fmt.Sprintf("limit must be at least 1, got %d", limit), nil)
	}
	return NewParams(page, limit, schema.Decode(q)), nil
}

func atoi(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierror.Invalid(fmt.Sprintf("%s must be an integer, got %q", key, raw), nil)
	}
	return n, nil
}
