package event

import (
	"time"

	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/salt/log"
)

const Endpoint = "/api/events"

// Event is a promotion posted on the events board.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Author    string    `json:"author"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e Event) Key() string {
	return e.ID
}

var searchTypes = map[string]string{
	"제목":  "title",
	"내용":  "content",
	"작성자": "author",
}

type Filter struct {
	SearchType string
	SearchTerm string
}

func (f Filter) Criteria() query.Criteria {
	scope := f.SearchType
	if key, ok := searchTypes[scope]; ok {
		scope = key
	}
	return query.Criteria{}.Set("q", query.Contains(f.SearchTerm).WithScope(scope))
}

var Schema = query.Schema[Event]{
	Resource: "event",
	Fields: []query.Field[Event]{
		query.Search("q",
			query.Attr[Event]{Key: "title", Get: func(e Event) string { return e.Title }},
			query.Attr[Event]{Key: "content", Get: func(e Event) string { return e.Content }},
			query.Attr[Event]{Key: "author", Get: func(e Event) string { return e.Author }},
		),
	},
}

type Repository = resource.Repository[Event]

func NewService(repo Repository, logger log.Logger) *resource.Service[Event] {
	return resource.NewService(Schema, repo, logger)
}
