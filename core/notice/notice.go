package notice

import (
	"cmp"
	"strconv"

	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/salt/log"
)

const Endpoint = "/api/notices"

// Notice is a post on the notices board. Newest notices are listed first.
type Notice struct {
	ID        string `json:"id"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content,omitempty"`
	Author    string `json:"author"`
	CreatedAt string `json:"createdAt"`
	Views     int    `json:"views" validate:"gte=0"`
	Important bool   `json:"important"`
}

func (n Notice) Key() string {
	return n.ID
}

type Filter struct {
	SearchTerm string
	// Important is "true", "false" or empty for both.
	Important string
}

func (f Filter) Criteria() query.Criteria {
	return query.Criteria{}.
		Set("q", query.Contains(f.SearchTerm)).
		Set("important", query.Eq(query.Specific(f.Important)))
}

var Schema = query.Schema[Notice]{
	Resource: "notice",
	Fields: []query.Field[Notice]{
		query.Search("q", query.Attr[Notice]{Key: "title", Get: func(n Notice) string { return n.Title }}),
		query.Exact("important", query.Attr[Notice]{Key: "important", Get: func(n Notice) string { return strconv.FormatBool(n.Important) }}).
			OneOf("true", "false"),
	},
	Order:    func(a, b Notice) int { return cmp.Compare(b.CreatedAt, a.CreatedAt) },
	SortKey:  "createdAt",
	SortDesc: true,
}

type Repository = resource.Repository[Notice]

func NewService(repo Repository, logger log.Logger) *resource.Service[Notice] {
	return resource.NewService(Schema, repo, logger)
}
