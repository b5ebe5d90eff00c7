package admin

import (
	"strconv"

	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/salt/log"
)

const Endpoint = "/api/admins"

type Status string

const (
	StatusInUse     Status = "이용중"
	StatusSuspended Status = "정지중"
)

// Permissions lists the back-office areas an admin can be granted. They are
// stored as data and not enforced.
var Permissions = []string{
	"회원관리", "상품등록 관리", "상품예약", "정산관리", "게시판관리", "여행후기관리", "통계관리", "설정관리",
}

type Admin struct {
	ID          int      `json:"id"`
	UserID      string   `json:"userId"`
	Name        string   `json:"name"`
	Position    string   `json:"position"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	DirectPhone string   `json:"directPhone,omitempty"`
	Status      Status   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	Permissions []string `json:"permissions"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

func (a Admin) Key() string {
	return strconv.Itoa(a.ID)
}

type Filter struct {
	Status      string
	Permissions []string
	SearchTerm  string
}

func (f Filter) Criteria() query.Criteria {
	return query.Criteria{}.
		Set("status", query.Eq(query.Specific(f.Status))).
		Set("permission", query.In(f.Permissions...)).
		Set("q", query.Contains(f.SearchTerm))
}

var Schema = query.Schema[Admin]{
	Resource: "admin",
	Fields: []query.Field[Admin]{
		query.Exact("status", query.Attr[Admin]{Key: "status", Get: func(a Admin) string { return string(a.Status) }}),
		query.Membership("permission", query.Attr[Admin]{Key: "permissions", Values: func(a Admin) []string { return a.Permissions }}),
		query.Search("q",
			query.Attr[Admin]{Key: "name", Get: func(a Admin) string { return a.Name }},
			query.Attr[Admin]{Key: "userId", Get: func(a Admin) string { return a.UserID }},
			query.Attr[Admin]{Key: "email", Get: func(a Admin) string { return a.Email }},
		),
	},
}

type Repository = resource.Repository[Admin]

func NewService(repo Repository, logger log.Logger) *resource.Service[Admin] {
	return resource.NewService(Schema, repo, logger)
}
