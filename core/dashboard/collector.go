package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/golang-module/carbon/v2"
	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/product"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/pkg/apierror"
)

const (
	defaultWindowDays = 30
	topProducts       = 10
	recentLimit       = 10
	dateLayout        = "2006-01-02"
)

// Collector computes dashboard figures by reading whole collections from the
// resource repositories. Only settled reservations count as sales.
type Collector struct {
	Reservations reservation.Repository
	Members      member.Repository
	Products     product.Repository
	// Now is the reference day for windows. nil means time.Now.
	Now func() time.Time
}

func (c Collector) Stats(ctx context.Context) (Stats, error) {
	reservations, err := resource.All(ctx, c.Reservations, nil)
	if err != nil {
		return Stats{}, err
	}
	members, err := resource.All(ctx, c.Members, nil)
	if err != nil {
		return Stats{}, err
	}
	products, err := resource.All(ctx, c.Products, nil)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, r := range reservations {
		if r.Status.Settled() {
			st.TotalRevenue += r.PriceKRW
			st.TotalOrders++
		}
	}
	for _, m := range members {
		if m.Status == member.StatusActive {
			st.TotalMembers++
		}
	}
	for _, p := range products {
		if p.Status == product.StatusOnSale {
			st.ActiveProducts++
		}
	}

	cur, prev := c.windows(defaultWindowDays)

	var curRevenue, prevRevenue int64
	var curOrders, prevOrders int
	for _, r := range reservations {
		if !r.Status.Settled() {
			continue
		}
		switch day := dayOf(r.ReservationDate); {
		case cur.contains(day):
			curRevenue += r.PriceKRW
			curOrders++
		case prev.contains(day):
			prevRevenue += r.PriceKRW
			prevOrders++
		}
	}
	st.RevenueChange = change(float64(curRevenue), float64(prevRevenue))
	st.OrdersChange = change(float64(curOrders), float64(prevOrders))

	var curMembers, prevMembers int
	for _, m := range members {
		switch day := dayOf(m.JoinDate); {
		case cur.contains(day):
			curMembers++
		case prev.contains(day):
			prevMembers++
		}
	}
	st.MembersChange = change(float64(curMembers), float64(prevMembers))

	var curProducts, prevProducts int
	for _, p := range products {
		switch day := p.CreatedAt.UTC().Format(dateLayout); {
		case cur.contains(day):
			curProducts++
		case prev.contains(day):
			prevProducts++
		}
	}
	st.ProductsChange = change(float64(curProducts), float64(prevProducts))

	return st, nil
}

// DailyRevenue returns one entry per day of rng, including days without sales.
// Open bounds are resolved before the length cap is applied.
func (c Collector) DailyRevenue(ctx context.Context, rng Range) ([]DailyRevenue, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	start, end := c.resolve(rng)
	if start.After(end) {
		return nil, apierror.Invalid("startDate cannot be after endDate", nil)
	}
	if !start.AddDate(0, 0, MaxRangeDays).After(end) {
		return nil, apierror.Invalid(fmt.Sprintf("range cannot be longer than %d days", MaxRangeDays), nil)
	}

	reservations, err := resource.All(ctx, c.Reservations, nil)
	if err != nil {
		return nil, err
	}

	byDay := map[string]*DailyRevenue{}
	var series []DailyRevenue
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		series = append(series, DailyRevenue{Date: d.Format(dateLayout)})
	}
	for i := range series {
		byDay[series[i].Date] = &series[i]
	}

	for _, r := range reservations {
		if !r.Status.Settled() {
			continue
		}
		if entry, ok := byDay[dayOf(r.ReservationDate)]; ok {
			entry.Revenue += r.PriceKRW
			entry.Orders++
		}
	}
	return series, nil
}

// ProductSales ranks products by settled revenue, top ten first.
func (c Collector) ProductSales(ctx context.Context) ([]ProductSales, error) {
	reservations, err := resource.All(ctx, c.Reservations, nil)
	if err != nil {
		return nil, err
	}

	byName := map[string]*ProductSales{}
	var order []string
	var total int64
	for _, r := range reservations {
		if !r.Status.Settled() {
			continue
		}
		ps, ok := byName[r.ProductName]
		if !ok {
			ps = &ProductSales{ProductName: r.ProductName}
			byName[r.ProductName] = ps
			order = append(order, r.ProductName)
		}
		ps.Sales++
		ps.Revenue += r.PriceKRW
		total += r.PriceKRW
	}

	sales := make([]ProductSales, 0, len(order))
	for _, name := range order {
		ps := *byName[name]
		if total > 0 {
			ps.Percentage = float64(ps.Revenue) / float64(total) * 100
		}
		sales = append(sales, ps)
	}
	sort.SliceStable(sales, func(i, j int) bool { return sales[i].Revenue > sales[j].Revenue })
	if len(sales) > topProducts {
		sales = sales[:topProducts]
	}
	return sales, nil
}

// RecentReservations returns the ten most recently created reservations.
func (c Collector) RecentReservations(ctx context.Context) ([]reservation.Reservation, error) {
	reservations, err := resource.All(ctx, c.Reservations, nil)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].CreatedAt.After(reservations[j].CreatedAt)
	})
	if len(reservations) > recentLimit {
		reservations = reservations[:recentLimit]
	}
	return reservations, nil
}

func (c Collector) MemberGrades(ctx context.Context) ([]member.GradeShare, error) {
	members, err := resource.All(ctx, c.Members, nil)
	if err != nil {
		return nil, err
	}
	return member.GradeShares(members), nil
}

type window struct {
	from, until string
}

func (w window) contains(day string) bool {
	return day != "" && day >= w.from && day <= w.until
}

// windows returns the last n days up to today and the n days before them.
func (c Collector) windows(n int) (cur, prev window) {
	today := c.today()
	cur = window{
		from:  today.AddDate(0, 0, -(n - 1)).Format(dateLayout),
		until: today.Format(dateLayout),
	}
	prev = window{
		from:  today.AddDate(0, 0, -(2*n - 1)).Format(dateLayout),
		until: today.AddDate(0, 0, -n).Format(dateLayout),
	}
	return cur, prev
}

func (c Collector) resolve(rng Range) (start, end time.Time) {
	end = c.today()
	if rng.EndDate != "" {
		end = parseDay(rng.EndDate)
	}
	start = end.AddDate(0, 0, -(defaultWindowDays - 1))
	if rng.StartDate != "" {
		start = parseDay(rng.StartDate)
	}
	return start, end
}

func (c Collector) today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	t := now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDay(v string) time.Time {
	t, _ := time.Parse(dateLayout, dayOf(v))
	return t
}

func dayOf(v string) string {
	c := carbon.Parse(v, carbon.UTC)
	if c.Error != nil {
		return ""
	}
	return c.ToDateString()
}

func change(cur, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return (cur - prev) / prev * 100
}
