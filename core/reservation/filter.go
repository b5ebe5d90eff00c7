package reservation

import (
	"github.com/goto/backoffice/core/query"
)

// SearchTypes maps the search selector labels used by the back-office to the
// attribute they narrow the search to.
var SearchTypes = map[string]string{
	"예약번호":   "reservationNumber",
	"예약자명":   "customerName",
	"담당자명":   "managerName",
	"상품명":    "productName",
	"예약지휴대폰": "phone",
}

type Filter struct {
	Category       string
	Statuses       []string
	PaymentMethods []string
	StartDate      string
	EndDate        string
	SearchType     string
	SearchQuery    string
}

// Criteria converts the filter into list criteria. "all" means no constraint.
func (f Filter) Criteria() query.Criteria {
	return query.Criteria{}.
		Set("category", query.Eq(query.Specific(f.Category))).
		Set("status", query.In(f.Statuses...)).
		Set("paymentMethod", query.In(f.PaymentMethods...)).
		Set("startDate", query.Eq(f.StartDate)).
		Set("endDate", query.Eq(f.EndDate)).
		Set("q", query.Contains(f.SearchQuery).WithScope(search.ScopeOf(f.SearchType)))
}

// Validate checks the selector values against the known statuses, payment
// methods and categories.
func (f Filter) Validate() error {
	return Schema.Validate(f.Criteria())
}

var Schema = query.Schema[Reservation]{
	Resource: "reservation",
	Fields: []query.Field[Reservation]{
		query.Exact("category", query.Attr[Reservation]{Key: "productCategory", Get: func(r Reservation) string { return r.ProductCategory }}).
			OneOf(Categories...),
		query.Membership("status", query.Attr[Reservation]{Key: "status", Get: func(r Reservation) string { return string(r.Status) }}).
			OneOf(statusNames()...),
		query.Membership("paymentMethod", query.Attr[Reservation]{Key: "paymentMethod", Get: func(r Reservation) string { return r.PaymentMethod }}).
			OneOf(PaymentMethods...),
		query.From("startDate", reservationDate),
		query.Until("endDate", reservationDate),
		search,
	},
}

var search = query.Search("q",
	query.Attr[Reservation]{Key: "productName", Get: func(r Reservation) string { return r.ProductName }},
	query.Attr[Reservation]{Key: "customerName", Get: func(r Reservation) string { return r.CustomerName }},
	query.Attr[Reservation]{Key: "phone", Get: func(r Reservation) string { return r.Phone }},
	query.Attr[Reservation]{Key: "reservationNumber", Get: func(r Reservation) string { return r.ReservationNumber }},
	query.Attr[Reservation]{Key: "managerName", Get: func(r Reservation) string { return r.ManagerName }},
).WithLabels(SearchTypes)

var reservationDate = query.Attr[Reservation]{Key: "reservationDate", Get: func(r Reservation) string { return r.ReservationDate }}

func statusNames() []string {
	names := make([]string, 0, len(Statuses))
	for _, s := range Statuses {
		names = append(names, string(s))
	}
	return names
}
