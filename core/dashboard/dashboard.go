package dashboard

import (
	"context"

	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/reservation"
)

const (
	StatsEndpoint              = "/api/dashboard/stats"
	RevenueEndpoint            = "/api/dashboard/revenue"
	ProductSalesEndpoint       = "/api/dashboard/product-sales"
	RecentReservationsEndpoint = "/api/dashboard/recent-reservations"
	MemberGradesEndpoint       = "/api/dashboard/member-grades"
)

// Stats are the headline figures. Changes are percentages against the
// previous window of the same length.
type Stats struct {
	TotalRevenue   int64   `json:"totalRevenue"`
	TotalOrders    int     `json:"totalOrders"`
	TotalMembers   int     `json:"totalMembers"`
	ActiveProducts int     `json:"activeProducts"`
	RevenueChange  float64 `json:"revenueChange"`
	OrdersChange   float64 `json:"ordersChange"`
	MembersChange  float64 `json:"membersChange"`
	ProductsChange float64 `json:"productsChange"`
}

type DailyRevenue struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
	Orders  int    `json:"orders"`
}

type ProductSales struct {
	ProductName string  `json:"productName"`
	Sales       int     `json:"sales"`
	Revenue     int64   `json:"revenue"`
	Percentage  float64 `json:"percentage"`
}

// Range bounds a daily series. Empty bounds fall back to the last 30 days.
type Range struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

//go:generate mockery --name=Source -r --case underscore --with-expecter --structname Source --filename source_mock.go --output=./mocks

type Source interface {
	Stats(ctx context.Context) (Stats, error)
	DailyRevenue(ctx context.Context, rng Range) ([]DailyRevenue, error)
	ProductSales(ctx context.Context) ([]ProductSales, error)
	RecentReservations(ctx context.Context) ([]reservation.Reservation, error)
	MemberGrades(ctx context.Context) ([]member.GradeShare, error)
}
