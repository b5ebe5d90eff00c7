package product

import (
	"time"

	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/salt/log"
)

const Endpoint = "/api/products"

type Status string

const (
	StatusOnSale    Status = "판매중"
	StatusSoldOut   Status = "품절"
	StatusSuspended Status = "판매중지"
)

var (
	Categories = []string{"Tickets", "Hotels", "Tour", "K-Beauty", "Dining", "Vehicle", "K-goods"}
	Regions    = []string{"Seoul", "Busan", "Jeju", "Gangwon", "Gyeongju", "Jeonju", "Yeosu", "Sokcho", "Daegu", "Incheon"}
)

type Product struct {
	ID            string    `json:"id" validate:"omitempty"`
	Name          string    `json:"name" validate:"required"`
	Category      string    `json:"category" validate:"required"`
	SubCategory   string    `json:"subCategory,omitempty"`
	Price         int64     `json:"price" validate:"gte=0"`
	DiscountPrice *int64    `json:"discountPrice,omitempty"`
	Stock         int       `json:"stock" validate:"gte=0"`
	Status        Status    `json:"status" validate:"required,oneof=판매중 품절 판매중지"`
	DisplayStatus string    `json:"displayStatus"`
	Region        string    `json:"region"`
	Duration      string    `json:"duration,omitempty"`
	MaxPersons    int       `json:"maxPersons"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	SalesCount    int       `json:"salesCount"`
	Views         int       `json:"views"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p Product) Key() string {
	return p.ID
}

type Filter struct {
	Category   string
	Status     string
	Region     string
	SearchTerm string
}

func (f Filter) Criteria() query.Criteria {
	return query.Criteria{}.
		Set("category", query.Eq(query.Specific(f.Category))).
		Set("status", query.Eq(query.Specific(f.Status))).
		Set("region", query.Eq(query.Specific(f.Region))).
		Set("q", query.Contains(f.SearchTerm))
}

var Schema = query.Schema[Product]{
	Resource: "product",
	Fields: []query.Field[Product]{
		query.Exact("category", query.Attr[Product]{Key: "category", Get: func(p Product) string { return p.Category }}),
		query.Exact("status", query.Attr[Product]{Key: "status", Get: func(p Product) string { return string(p.Status) }}),
		query.Exact("region", region),
		query.Search("q",
			query.Attr[Product]{Key: "name", Get: func(p Product) string { return p.Name }},
			region,
		),
	},
}

var region = query.Attr[Product]{Key: "region", Get: func(p Product) string { return p.Region }}

type Repository = resource.Repository[Product]

func NewService(repo Repository, logger log.Logger) *resource.Service[Product] {
	return resource.NewService(Schema, repo, logger)
}
