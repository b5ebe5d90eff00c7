package settlement

import (
	"github.com/goto/backoffice/core/query"
)

type Filter struct {
	Category         string
	SettlementStatus string
	PaymentMethods   []string
	StartDate        string
	EndDate          string
	SearchType       string
	SearchQuery      string
}

func (f Filter) Criteria() query.Criteria {
	return query.Criteria{}.
		Set("category", query.Eq(query.Specific(f.Category))).
		Set("settlementStatus", query.Eq(query.Specific(f.SettlementStatus))).
		Set("paymentMethod", query.In(f.PaymentMethods...)).
		Set("startDate", query.Eq(f.StartDate)).
		Set("endDate", query.Eq(f.EndDate)).
		Set("q", query.Contains(f.SearchQuery).WithScope(search.ScopeOf(f.SearchType)))
}

// SearchTypes maps the settlement search selector labels to attribute keys.
var SearchTypes = map[string]string{
	"예약번호": "reservationNumber",
	"예약자명": "customerName",
	"상품명":  "productName",
}

var Schema = query.Schema[Settlement]{
	Resource: "settlement",
	Fields: []query.Field[Settlement]{
		query.Exact("category", query.Attr[Settlement]{Key: "productCategory", Get: func(s Settlement) string { return s.ProductCategory }}),
		query.Exact("settlementStatus", query.Attr[Settlement]{Key: "settlementStatus", Get: func(s Settlement) string { return string(s.SettlementStatus) }}),
		query.Membership("paymentMethod", query.Attr[Settlement]{Key: "paymentMethod", Get: func(s Settlement) string { return s.PaymentMethod }}),
		query.From("startDate", reservationDate),
		query.Until("endDate", reservationDate),
		search,
	},
}

var search = query.Search("q",
	query.Attr[Settlement]{Key: "productName", Get: func(s Settlement) string { return s.ProductName }},
	query.Attr[Settlement]{Key: "customerName", Get: func(s Settlement) string { return s.CustomerName }},
	query.Attr[Settlement]{Key: "reservationNumber", Get: func(s Settlement) string { return s.ReservationNumber }},
).WithLabels(SearchTypes)

var reservationDate = query.Attr[Settlement]{Key: "reservationDate", Get: func(s Settlement) string { return s.ReservationDate }}
