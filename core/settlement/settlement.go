package settlement

import (
	"strconv"
	"time"

	"github.com/golang-module/carbon/v2"
	"github.com/goto/backoffice/core/reservation"
)

const Endpoint = "/api/settlements"

type Status string

const (
	StatusPending Status = "정산대기"
	StatusDone    Status = "정산완료"
	StatusOnHold  Status = "정산보류"
)

var Statuses = []Status{StatusPending, StatusDone, StatusOnHold}

var PaymentMethods = []string{"신용카드", "실시간계좌이체", "포인트"}

// Settlement is the accounting view of one reservation.
type Settlement struct {
	ID                int                `json:"id"`
	GroupNumber       string             `json:"groupNumber"`
	ReservationNumber string             `json:"reservationNumber"`
	Status            reservation.Status `json:"status"`
	ProductCategory   string             `json:"productCategory"`
	ProductName       string             `json:"productName"`
	Commission        int64              `json:"commission"`
	Points            int64              `json:"points"`
	Coupon            int64              `json:"coupon"`
	ReservationDate   string             `json:"reservationDate"`
	CustomerName      string             `json:"customerName"`
	CustomerID        string             `json:"customerId"`
	Phone             string             `json:"phone"`
	Email             string             `json:"email"`
	PriceKRW          int64              `json:"priceKRW"`
	PriceTHB          int64              `json:"priceTHB"`
	PaymentMethod     string             `json:"paymentMethod,omitempty"`
	SettlementStatus  Status             `json:"settlementStatus,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
}

func (s Settlement) Key() string {
	return strconv.Itoa(s.ID)
}

// Profit is the sale price minus commission, points and coupon discounts.
func (s Settlement) Profit() int64 {
	return s.PriceKRW - s.Commission - s.Points - s.Coupon
}

// Stats is the settlement summary shown above the list.
type Stats struct {
	SalesAmount int64 `json:"salesAmount"`
	Commission  int64 `json:"commission"`
	Points      int64 `json:"points"`
	Coupon      int64 `json:"coupon"`
	TotalProfit int64 `json:"totalProfit"`
	SalesCount  int   `json:"salesCount"`
}

// SalesStats counts settlements per reservation status.
type SalesStats = reservation.Stats

// PeriodStats is the sales amount over fixed windows relative to a day.
type PeriodStats struct {
	TodaySales     int64 `json:"todaySales"`
	YesterdaySales int64 `json:"yesterdaySales"`
	LastWeekSales  int64 `json:"lastWeekSales"`
	ThisMonthSales int64 `json:"thisMonthSales"`
}

func Summarize(items []Settlement) Stats {
	var st Stats
	for _, s := range items {
		st.SalesAmount += s.PriceKRW
		st.Commission += s.Commission
		st.Points += s.Points
		st.Coupon += s.Coupon
		st.TotalProfit += s.Profit()
		st.SalesCount++
	}
	return st
}

func CountByStatus(items []Settlement) SalesStats {
	stats := make(SalesStats, len(reservation.Statuses))
	for _, s := range reservation.Statuses {
		stats[s] = 0
	}
	for _, s := range items {
		stats[s.Status]++
	}
	return stats
}

// Periods sums sales for the day of now, the day before, the previous
// Monday-to-Sunday week and the calendar month of now.
func Periods(items []Settlement, now time.Time) PeriodStats {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	thisWeek := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var (
		todayDay      = today.Format(dateLayout)
		yesterdayDay  = today.AddDate(0, 0, -1).Format(dateLayout)
		lastWeekStart = thisWeek.AddDate(0, 0, -7).Format(dateLayout)
		lastWeekEnd   = thisWeek.AddDate(0, 0, -1).Format(dateLayout)
		monthStart    = month.Format(dateLayout)
		monthEnd      = month.AddDate(0, 1, -1).Format(dateLayout)
	)

	var ps PeriodStats
	for _, s := range items {
		d := carbon.Parse(s.ReservationDate, carbon.UTC)
		if d.Error != nil {
			continue
		}
		day := d.ToDateString()
		switch day {
		case todayDay:
			ps.TodaySales += s.PriceKRW
		case yesterdayDay:
			ps.YesterdaySales += s.PriceKRW
		}
		if day >= lastWeekStart && day <= lastWeekEnd {
			ps.LastWeekSales += s.PriceKRW
		}
		if day >= monthStart && day <= monthEnd {
			ps.ThisMonthSales += s.PriceKRW
		}
	}
	return ps
}

const dateLayout = "2006-01-02"
