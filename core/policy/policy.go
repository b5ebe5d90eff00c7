package policy

import (
	"cmp"
	"strconv"

	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/salt/log"
)

const Endpoint = "/api/policies"

// Policy is a terms or privacy document. Higher priority is listed first.
type Policy struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Priority      int    `json:"priority"`
	ContentPC     string `json:"contentPC"`
	ContentMobile string `json:"contentMobile"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

func (p Policy) Key() string {
	return strconv.Itoa(p.ID)
}

type Filter struct {
	SearchTerm string
}

func (f Filter) Criteria() query.Criteria {
	return query.Criteria{}.Set("q", query.Contains(f.SearchTerm))
}

var Schema = query.Schema[Policy]{
	Resource: "policy",
	Fields: []query.Field[Policy]{
		query.Search("q", query.Attr[Policy]{Key: "title", Get: func(p Policy) string { return p.Title }}),
	},
	Order:    func(a, b Policy) int { return cmp.Compare(b.Priority, a.Priority) },
	SortKey:  "priority",
	SortDesc: true,
}

type Repository = resource.Repository[Policy]

func NewService(repo Repository, logger log.Logger) *resource.Service[Policy] {
	return resource.NewService(Schema, repo, logger)
}
