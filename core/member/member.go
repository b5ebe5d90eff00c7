package member

import (
	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/salt/log"
)

const Endpoint = "/api/members"

type Grade string

const (
	GradeVIP    Grade = "VIP"
	GradeGold   Grade = "GOLD"
	GradeSilver Grade = "SILVER"
	GradeBronze Grade = "BRONZE"
)

var Grades = []Grade{GradeVIP, GradeGold, GradeSilver, GradeBronze}

type Status string

const (
	StatusActive  Status = "정상"
	StatusDormant Status = "휴면"
	StatusLeft    Status = "탈퇴"
)

type Member struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Grade         Grade  `json:"grade"`
	Status        Status `json:"status"`
	TotalOrders   int    `json:"totalOrders"`
	TotalAmount   int64  `json:"totalAmount"`
	Points        int64  `json:"points"`
	JoinDate      string `json:"joinDate"`
	LastLoginDate string `json:"lastLoginDate"`
	BirthDate     string `json:"birthDate,omitempty"`
	Gender        string `json:"gender,omitempty"`
}

func (m Member) Key() string {
	return m.ID
}

type Filter struct {
	Grade      string
	Status     string
	SearchTerm string
}

func (f Filter) Criteria() query.Criteria {
	return query.Criteria{}.
		Set("grade", query.Eq(query.Specific(f.Grade))).
		Set("status", query.Eq(query.Specific(f.Status))).
		Set("q", query.Contains(f.SearchTerm))
}

var Schema = query.Schema[Member]{
	Resource: "member",
	Fields: []query.Field[Member]{
		query.Exact("grade", query.Attr[Member]{Key: "grade", Get: func(m Member) string { return string(m.Grade) }}),
		query.Exact("status", query.Attr[Member]{Key: "status", Get: func(m Member) string { return string(m.Status) }}),
		query.Search("q",
			query.Attr[Member]{Key: "name", Get: func(m Member) string { return m.Name }},
			query.Attr[Member]{Key: "email", Get: func(m Member) string { return m.Email }},
			query.Attr[Member]{Key: "phone", Get: func(m Member) string { return m.Phone }},
		),
	},
}

type Repository = resource.Repository[Member]

func NewService(repo Repository, logger log.Logger) *resource.Service[Member] {
	return resource.NewService(Schema, repo, logger)
}

// GradeShare is the number and share of active members in one grade.
type GradeShare struct {
	Grade      Grade   `json:"grade"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// GradeShares breaks active members down by grade, in grade order.
func GradeShares(items []Member) []GradeShare {
	counts := map[Grade]int{}
	total := 0
	for _, m := range items {
		if m.Status != StatusActive {
			continue
		}
		counts[m.Grade]++
		total++
	}

	shares := make([]GradeShare, 0, len(Grades))
	for _, g := range Grades {
		share := GradeShare{Grade: g, Count: counts[g]}
		if total > 0 {
			share.Percentage = float64(counts[g]) / float64(total) * 100
		}
		shares = append(shares, share)
	}
	return shares
}
