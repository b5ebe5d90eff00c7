package statistics

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/golang-module/carbon/v2"
	"github.com/goto/backoffice/pkg/apierror"
)

const (
	SalesEndpoint        = "/api/statistics/sales"
	PaymentTypesEndpoint = "/api/statistics/payment-types"
	ProductsEndpoint     = "/api/statistics/products"
	MembersEndpoint      = "/api/statistics/members"
	VisitorsEndpoint     = "/api/statistics/visitors"
)

// Unit is the width of one period in a series.
type Unit string

const (
	UnitYear    Unit = "year"
	UnitMonth   Unit = "month"
	UnitDay     Unit = "day"
	UnitWeekday Unit = "weekday"
	UnitHour    Unit = "hour"
)

var Units = []Unit{UnitYear, UnitMonth, UnitDay, UnitWeekday, UnitHour}

// Weekdays label weekday periods, Sunday first.
var Weekdays = []string{"일", "월", "화", "수", "목", "금", "토"}

// Query selects the period unit and the days a report covers. Both bounds are
// inclusive. Open bounds end today and start at a default depending on Unit.
type Query struct {
	Unit      Unit   `json:"unit,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// AssignDefault reports by day when no unit is given.
func (q *Query) AssignDefault() {
	if q.Unit == "" {
		q.Unit = UnitDay
	}
}

func (q Query) Validate() error {
	if q.Unit != "" && !slices.Contains(Units, q.Unit) {
		return apierror.Invalid(fmt.Sprintf("unit: unknown value %q", q.Unit), nil)
	}
	var start, end carbon.Carbon
	if q.StartDate != "" {
		if start = carbon.Parse(q.StartDate, carbon.UTC); start.Error != nil {
			return apierror.Invalid(fmt.Sprintf("startDate: invalid date %q", q.StartDate), nil)
		}
	}
	if q.EndDate != "" {
		if end = carbon.Parse(q.EndDate, carbon.UTC); end.Error != nil {
			return apierror.Invalid(fmt.Sprintf("endDate: invalid date %q", q.EndDate), nil)
		}
	}
	if q.StartDate != "" && q.EndDate != "" && start.Gt(end) {
		return apierror.Invalid("startDate cannot be after endDate", nil)
	}
	return nil
}

type SalesPeriod struct {
	Period          string  `json:"period"`
	Sales           int64   `json:"sales"`
	Orders          int     `json:"orders"`
	Products        int     `json:"products"`
	SalesPercent    float64 `json:"salesPercent"`
	ProductsPercent float64 `json:"productsPercent"`
	Points          int64   `json:"points"`
	Coupons         int64   `json:"coupons"`
}

type SalesSummary struct {
	Sales    int64 `json:"sales"`
	Orders   int   `json:"orders"`
	Products int   `json:"products"`
	Points   int64 `json:"points"`
	Coupons  int64 `json:"coupons"`
}

// SalesReport covers settled sales and newly registered products per period.
type SalesReport struct {
	Unit      Unit          `json:"unit"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Periods   []SalesPeriod `json:"periods"`
	Summary   SalesSummary  `json:"summary"`
}

type PaymentShare struct {
	Rank         int     `json:"rank"`
	PaymentType  string  `json:"paymentType"`
	Sales        int64   `json:"sales"`
	SharePercent float64 `json:"sharePercent"`
}

type ProductRank struct {
	Rank        int    `json:"rank"`
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	SalesCount  int    `json:"salesCount"`
	SalesTotal  int64  `json:"salesTotal"`
}

type MemberPeriod struct {
	Period          string `json:"period"`
	SignupCount     int    `json:"signupCount"`
	WithdrawalCount int    `json:"withdrawalCount"`
	NetCount        int    `json:"netCount"`
}

type MemberSummary struct {
	TotalSignupCount     int `json:"totalSignupCount"`
	TotalWithdrawalCount int `json:"totalWithdrawalCount"`
	TotalNetCount        int `json:"totalNetCount"`
}

type MemberReport struct {
	Unit      Unit           `json:"unit"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Periods   []MemberPeriod `json:"periods"`
	Summary   MemberSummary  `json:"summary"`
}

type VisitorPeriod struct {
	Period       string `json:"period"`
	VisitorCount int    `json:"visitorCount"`
}

type VisitorReport struct {
	Unit      Unit            `json:"unit"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Periods   []VisitorPeriod `json:"periods"`
	Total     int             `json:"total"`
}

//go:generate mockery --name=Source -r --case underscore --with-expecter --structname Source --filename source_mock.go --output=./mocks

type Source interface {
	Sales(ctx context.Context, q Query) (SalesReport, error)
	PaymentTypes(ctx context.Context, q Query) ([]PaymentShare, error)
	Products(ctx context.Context, q Query) ([]ProductRank, error)
	Members(ctx context.Context, q Query) (MemberReport, error)
	Visitors(ctx context.Context, q Query) (VisitorReport, error)
}

// span is a resolved report window of whole UTC days, end inclusive.
type span struct {
	unit       Unit
	start, end time.Time
}

// maxSpan caps how far back a report may reach for each unit.
func maxSpan(u Unit) (years, days int) {
	switch u {
	case UnitYear:
		return 100, 0
	case UnitMonth:
		return 10, 0
	default:
		return 0, 366
	}
}

// resolveSpan fills open bounds relative to today and applies the length cap.
func resolveSpan(q Query, today time.Time) (span, error) {
	if err := q.Validate(); err != nil {
		return span{}, err
	}
	q.AssignDefault()
	s := span{unit: q.Unit, end: today}
	if q.EndDate != "" {
		s.end = parseDay(q.EndDate)
	}
	switch q.Unit {
	case UnitYear:
		s.start = time.Date(s.end.Year()-4, time.January, 1, 0, 0, 0, 0, time.UTC)
	case UnitMonth:
		s.start = time.Date(s.end.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		s.start = s.end.AddDate(0, 0, -29)
	}
	if q.StartDate != "" {
		s.start = parseDay(q.StartDate)
	}

	if s.start.After(s.end) {
		return span{}, apierror.Invalid("startDate cannot be after endDate", nil)
	}
	years, days := maxSpan(q.Unit)
	if !s.start.AddDate(years, 0, days).After(s.end) {
		if years > 0 {
			return span{}, apierror.Invalid(fmt.Sprintf("%s range cannot be longer than %d years", q.Unit, years), nil)
		}
		return span{}, apierror.Invalid(fmt.Sprintf("%s range cannot be longer than %d days", q.Unit, days), nil)
	}
	return s, nil
}

// keys lists every period label of s in order.
func (s span) keys() []string {
	var keys []string
	switch s.unit {
	case UnitYear:
		for y := s.start.Year(); y <= s.end.Year(); y++ {
			keys = append(keys, fmt.Sprintf("%04d", y))
		}
	case UnitMonth:
		last := time.Date(s.end.Year(), s.end.Month(), 1, 0, 0, 0, 0, time.UTC)
		for m := time.Date(s.start.Year(), s.start.Month(), 1, 0, 0, 0, 0, time.UTC); !m.After(last); m = m.AddDate(0, 1, 0) {
			keys = append(keys, m.Format("2006-01"))
		}
	case UnitWeekday:
		keys = append(keys, Weekdays...)
	case UnitHour:
		for h := 0; h < 24; h++ {
			keys = append(keys, fmt.Sprintf("%02d:00", h))
		}
	default:
		for d := s.start; !d.After(s.end); d = d.AddDate(0, 0, 1) {
			keys = append(keys, d.Format(dateLayout))
		}
	}
	return keys
}

// key is the period label of t, or false when t falls outside s.
func (s span) key(t time.Time) (string, bool) {
	t = t.UTC()
	if t.IsZero() || t.Before(s.start) || !t.Before(s.end.AddDate(0, 0, 1)) {
		return "", false
	}
	switch s.unit {
	case UnitYear:
		return t.Format("2006"), true
	case UnitMonth:
		return t.Format("2006-01"), true
	case UnitWeekday:
		return Weekdays[t.Weekday()], true
	case UnitHour:
		return fmt.Sprintf("%02d:00", t.Hour()), true
	default:
		return t.Format(dateLayout), true
	}
}

const dateLayout = "2006-01-02"

func parseDay(v string) time.Time {
	t := instant(v)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// instant reads a date or timestamp in UTC. Unparseable values are the zero time.
func instant(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	c := carbon.Parse(v, carbon.UTC)
	if c.Error != nil {
		return time.Time{}
	}
	return c.Carbon2Time().UTC()
}

func percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
