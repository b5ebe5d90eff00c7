package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/product"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/core/settlement"
)

const (
	topProducts    = 10
	unknownPayment = "기타"
)

// Collector computes statistics by reading whole collections from the
// resource repositories. Sales are settled settlements bucketed by creation
// time. Signups use the join date; withdrawals are members who left, dated by
// their last login. Visitors are members by last login.
type Collector struct {
	Settlements settlement.Repository
	MemberRepo  member.Repository
	ProductRepo product.Repository
	// Now is the reference day for open ranges. nil means time.Now.
	Now func() time.Time
}

func (c Collector) Sales(ctx context.Context, q Query) (SalesReport, error) {
	sp, err := resolveSpan(q, c.today())
	if err != nil {
		return SalesReport{}, err
	}
	settlements, err := resource.All(ctx, c.Settlements, nil)
	if err != nil {
		return SalesReport{}, err
	}
	products, err := resource.All(ctx, c.ProductRepo, nil)
	if err != nil {
		return SalesReport{}, err
	}

	keys := sp.keys()
	periods := make([]SalesPeriod, len(keys))
	index := make(map[string]*SalesPeriod, len(keys))
	for i, k := range keys {
		periods[i] = SalesPeriod{Period: k}
		index[k] = &periods[i]
	}

	var sum SalesSummary
	for _, s := range settlements {
		if !s.Status.Settled() {
			continue
		}
		k, ok := sp.key(s.CreatedAt)
		if !ok {
			continue
		}
		p := index[k]
		p.Sales += s.PriceKRW
		p.Orders++
		p.Points += s.Points
		p.Coupons += s.Coupon
		sum.Sales += s.PriceKRW
		sum.Orders++
		sum.Points += s.Points
		sum.Coupons += s.Coupon
	}
	for _, pr := range products {
		if k, ok := sp.key(pr.CreatedAt); ok {
			index[k].Products++
			sum.Products++
		}
	}
	for i := range periods {
		periods[i].SalesPercent = percent(float64(periods[i].Sales), float64(sum.Sales))
		periods[i].ProductsPercent = percent(float64(periods[i].Products), float64(sum.Products))
	}

	return SalesReport{
		Unit:      sp.unit,
		StartDate: sp.start.Format(dateLayout),
		EndDate:   sp.end.Format(dateLayout),
		Periods:   periods,
		Summary:   sum,
	}, nil
}

func (c Collector) PaymentTypes(ctx context.Context, q Query) ([]PaymentShare, error) {
	settlements, err := c.settled(ctx, q)
	if err != nil {
		return nil, err
	}

	byType := map[string]*PaymentShare{}
	var order []string
	var total int64
	for _, s := range settlements {
		method := s.PaymentMethod
		if method == "" {
			method = unknownPayment
		}
		ps, ok := byType[method]
		if !ok {
			ps = &PaymentShare{PaymentType: method}
			byType[method] = ps
			order = append(order, method)
		}
		ps.Sales += s.PriceKRW
		total += s.PriceKRW
	}

	shares := make([]PaymentShare, 0, len(order))
	for _, method := range order {
		ps := *byType[method]
		ps.SharePercent = percent(float64(ps.Sales), float64(total))
		shares = append(shares, ps)
	}
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Sales > shares[j].Sales })
	for i := range shares {
		shares[i].Rank = i + 1
	}
	return shares, nil
}

// Products ranks products by settled revenue, top ten first. The product code
// is the first catalogue product carrying the sold name.
func (c Collector) Products(ctx context.Context, q Query) ([]ProductRank, error) {
	settlements, err := c.settled(ctx, q)
	if err != nil {
		return nil, err
	}
	products, err := resource.All(ctx, c.ProductRepo, nil)
	if err != nil {
		return nil, err
	}
	codes := map[string]string{}
	for _, p := range products {
		if _, ok := codes[p.Name]; !ok {
			codes[p.Name] = p.ID
		}
	}

	byName := map[string]*ProductRank{}
	var order []string
	for _, s := range settlements {
		pr, ok := byName[s.ProductName]
		if !ok {
			pr = &ProductRank{ProductName: s.ProductName, ProductCode: codes[s.ProductName]}
			byName[s.ProductName] = pr
			order = append(order, s.ProductName)
		}
		pr.SalesCount++
		pr.SalesTotal += s.PriceKRW
	}

	ranks := make([]ProductRank, 0, len(order))
	for _, name := range order {
		ranks = append(ranks, *byName[name])
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].SalesTotal > ranks[j].SalesTotal })
	if len(ranks) > topProducts {
		ranks = ranks[:topProducts]
	}
	for i := range ranks {
		ranks[i].Rank = i + 1
	}
	return ranks, nil
}

func (c Collector) Members(ctx context.Context, q Query) (MemberReport, error) {
	sp, err := resolveSpan(q, c.today())
	if err != nil {
		return MemberReport{}, err
	}
	members, err := resource.All(ctx, c.MemberRepo, nil)
	if err != nil {
		return MemberReport{}, err
	}

	keys := sp.keys()
	periods := make([]MemberPeriod, len(keys))
	index := make(map[string]*MemberPeriod, len(keys))
	for i, k := range keys {
		periods[i] = MemberPeriod{Period: k}
		index[k] = &periods[i]
	}

	var sum MemberSummary
	for _, m := range members {
		if k, ok := sp.key(instant(m.JoinDate)); ok {
			index[k].SignupCount++
			sum.TotalSignupCount++
		}
		if m.Status != member.StatusLeft {
			continue
		}
		if k, ok := sp.key(instant(m.LastLoginDate)); ok {
			index[k].WithdrawalCount++
			sum.TotalWithdrawalCount++
		}
	}
	for i := range periods {
		periods[i].NetCount = periods[i].SignupCount - periods[i].WithdrawalCount
	}
	sum.TotalNetCount = sum.TotalSignupCount - sum.TotalWithdrawalCount

	return MemberReport{
		Unit:      sp.unit,
		StartDate: sp.start.Format(dateLayout),
		EndDate:   sp.end.Format(dateLayout),
		Periods:   periods,
		Summary:   sum,
	}, nil
}

func (c Collector) Visitors(ctx context.Context, q Query) (VisitorReport, error) {
	sp, err := resolveSpan(q, c.today())
	if err != nil {
		return VisitorReport{}, err
	}
	members, err := resource.All(ctx, c.MemberRepo, nil)
	if err != nil {
		return VisitorReport{}, err
	}

	keys := sp.keys()
	periods := make([]VisitorPeriod, len(keys))
	index := make(map[string]*VisitorPeriod, len(keys))
	for i, k := range keys {
		periods[i] = VisitorPeriod{Period: k}
		index[k] = &periods[i]
	}

	var total int
	for _, m := range members {
		if k, ok := sp.key(instant(m.LastLoginDate)); ok {
			index[k].VisitorCount++
			total++
		}
	}

	return VisitorReport{
		Unit:      sp.unit,
		StartDate: sp.start.Format(dateLayout),
		EndDate:   sp.end.Format(dateLayout),
		Periods:   periods,
		Total:     total,
	}, nil
}

// settled returns settled settlements created within the optional bounds of q.
func (c Collector) settled(ctx context.Context, q Query) ([]settlement.Settlement, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	settlements, err := resource.All(ctx, c.Settlements, nil)
	if err != nil {
		return nil, err
	}

	var from, until time.Time
	if q.StartDate != "" {
		from = parseDay(q.StartDate)
	}
	if q.EndDate != "" {
		until = parseDay(q.EndDate).AddDate(0, 0, 1)
	}

	out := make([]settlement.Settlement, 0, len(settlements))
	for _, s := range settlements {
		if !s.Status.Settled() {
			continue
		}
		at := s.CreatedAt.UTC()
		if !from.IsZero() && at.Before(from) {
			continue
		}
		if !until.IsZero() && !at.Before(until) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (c Collector) today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	t := now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
