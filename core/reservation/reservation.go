package reservation

import (
	"strconv"
	"time"
)

// Endpoint is the collection path served by the backend.
const Endpoint = "/api/reservations"

type Status string

const (
	StatusReceived    Status = "예약접수"
	StatusAvailable   Status = "예약가능"
	StatusPaid        Status = "결제완료"
	StatusConfirmed   Status = "예약확정"
	StatusAwaitingPay Status = "결제대기"
	StatusCancelled   Status = "예약취소"
	StatusUnavailable Status = "예약불가"
	StatusCompleted   Status = "이용완료"
)

// Statuses lists every status in display order.
var Statuses = []Status{
	StatusReceived, StatusAvailable, StatusPaid, StatusConfirmed,
	StatusAwaitingPay, StatusCancelled, StatusUnavailable, StatusCompleted,
}

// Settled reports whether the reservation has been paid for.
func (s Status) Settled() bool {
	return s == StatusPaid || s == StatusConfirmed || s == StatusCompleted
}

var Categories = []string{"Hotels", "Tour", "K-Beauty", "Tickets", "Dining", "Vehicle", "K-goods", "Guide", "Golf"}

var PaymentMethods = []string{"신용카드", "실시간계좌이체", "가상계좌", "계좌입금", "포인트"}

// Reservation is a travel product booking.
type Reservation struct {
	ID                int       `json:"id"`
	GroupNumber       string    `json:"groupNumber"`
	ReservationNumber string    `json:"reservationNumber"`
	Status            Status    `json:"status"`
	ProductCategory   string    `json:"productCategory"`
	ProductName       string    `json:"productName"`
	ReservationDate   string    `json:"reservationDate"`
	CustomerName      string    `json:"customerName"`
	CustomerID        string    `json:"customerId"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	PriceKRW          int64     `json:"priceKRW"`
	PriceTHB          int64     `json:"priceTHB"`
	PaymentMethod     string    `json:"paymentMethod,omitempty"`
	CheckIn           string    `json:"checkIn,omitempty"`
	CheckOut          string    `json:"checkOut,omitempty"`
	Adults            int       `json:"adults,omitempty"`
	Children          int       `json:"children,omitempty"`
	SpecialRequests   string    `json:"specialRequests,omitempty"`
	AdminMemo         string    `json:"adminMemo,omitempty"`
	ManagerName       string    `json:"managerName,omitempty"`
	ManagerPhone      string    `json:"managerPhone,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt,omitempty"`
}

func (r Reservation) Key() string {
	return strconv.Itoa(r.ID)
}

// Stats counts reservations per status.
type Stats map[Status]int

// CountByStatus tallies reservations per status. Every known status is present.
func CountByStatus(items []Reservation) Stats {
	stats := make(Stats, len(Statuses))
	for _, s := range Statuses {
		stats[s] = 0
	}
	for _, r := range items {
		stats[r.Status]++
	}
	return stats
}
