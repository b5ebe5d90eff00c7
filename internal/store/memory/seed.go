package memory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/goto/backoffice/core/admin"
	"github.com/goto/backoffice/core/event"
	"github.com/goto/backoffice/core/member"
	"github.com/goto/backoffice/core/notice"
	"github.com/goto/backoffice/core/policy"
	"github.com/goto/backoffice/core/product"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/backoffice/core/settlement"
)

const (
	ReservationCount = 162
	SettlementCount  = 120
	MemberCount      = 250
	ProductCount     = 80
	NoticeCount      = 15

	defaultSeed = 20241130
)

// Anchor is the day the demo data is generated around.
var Anchor = time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC)

// Dataset is one generated set of collections.
type Dataset struct {
	Anchor       time.Time
	Reservations []reservation.Reservation
	Settlements  []settlement.Settlement
	Members      []member.Member
	Products     []product.Product
	Events       []event.Event
	Admins       []admin.Admin
	Policies     []policy.Policy
	Notices      []notice.Notice
}

// Seed generates the default demo dataset. The same seed always yields the same data.
func Seed() Dataset {
	return Generate(defaultSeed)
}

func Generate(seed int64) Dataset {
	g := generator{rnd: rand.New(rand.NewSource(seed)), anchor: Anchor}

	ds := Dataset{
		Anchor:   Anchor,
		Products: make([]product.Product, ProductCount),
		Members:  make([]member.Member, MemberCount),
		Events:   g.events(),
		Admins:   admins(),
		Policies: policies(),
	}
	for i := range ds.Products {
		ds.Products[i] = g.product(i)
	}
	for i := range ds.Members {
		ds.Members[i] = g.member(i)
	}
	ds.Reservations = make([]reservation.Reservation, ReservationCount)
	for i := range ds.Reservations {
		ds.Reservations[i] = g.reservation(i, ds.Products)
	}
	ds.Settlements = make([]settlement.Settlement, SettlementCount)
	for i := range ds.Settlements {
		ds.Settlements[i] = g.settlement(i, ds.Reservations[i%len(ds.Reservations)])
	}
	ds.Notices = make([]notice.Notice, NoticeCount)
	for i := range ds.Notices {
		ds.Notices[i] = g.notice(i)
	}
	return ds
}

var (
	managers      = []string{"김민수", "이지은", "박서준", "최유리"}
	productTitles = []string{"럭셔리 리조트", "프리미엄 패키지", "맛집 투어", "힐링 여행", "가족 여행"}
	subCategories = map[string][]string{
		"Tickets":  {"Gangwon", "Gyeonggi", "Jeju", "Busan"},
		"Hotels":   {"Seoul", "Busan", "Jeju"},
		"Tour":     {"Cultural", "Nature", "City"},
		"K-Beauty": {"Skincare", "Makeup", "Spa"},
		"Dining":   {"Korean", "Western", "Japanese"},
		"Vehicle":  {"Car", "Bus", "Bike"},
		"K-goods":  {"Fashion", "Cosmetics", "Food"},
	}
)

type generator struct {
	rnd    *rand.Rand
	anchor time.Time
}

func (g generator) pick(values []string) string {
	return values[g.rnd.Intn(len(values))]
}

func (g generator) between(lo, hi int) int {
	return lo + g.rnd.Intn(hi-lo+1)
}

// daysAgo returns a time between minDays and maxDays before the anchor.
func (g generator) daysAgo(minDays, maxDays int) time.Time {
	d := g.between(minDays, maxDays)
	return g.anchor.AddDate(0, 0, -d).Add(time.Duration(g.rnd.Intn(24*60)) * time.Minute)
}

func (g generator) phone() string {
	return fmt.Sprintf("010-%04d-%04d", g.between(1000, 9999), g.between(1000, 9999))
}

func (g generator) product(i int) product.Product {
	category := g.pick(product.Categories)
	region := g.pick(product.Regions)
	price := int64(g.between(50000, 550000))

	p := product.Product{
		ID:            fmt.Sprintf("PROD-%05d", i+1),
		Name:          region + " " + g.pick(productTitles),
		Category:      category,
		SubCategory:   g.pick(subCategories[category]),
		Price:         price,
		Region:        region,
		Duration:      fmt.Sprintf("%d박%d일", g.between(2, 4), g.between(3, 5)),
		MaxPersons:    g.between(2, 5),
		Rating:        float64(g.between(30, 50)) / 10,
		ReviewCount:   g.rnd.Intn(200),
		SalesCount:    g.rnd.Intn(500),
		Views:         g.between(10, 499),
		ImageURL:      fmt.Sprintf("https://images.example.com/products/%05d.jpg", i+1),
		CreatedAt:     g.daysAgo(180, 700),
		UpdatedAt:     g.daysAgo(0, 179),
		DisplayStatus: "노출",
	}
	if g.rnd.Intn(100) >= 60 {
		discount := price * 8 / 10
		p.DiscountPrice = &discount
	}
	if g.rnd.Intn(100) >= 80 {
		p.DisplayStatus = "비노출"
	}

	switch n := g.rnd.Intn(100); {
	case n < 85:
		p.Status = product.StatusOnSale
		p.Stock = g.between(10, 59)
	case n < 95:
		p.Status = product.StatusSoldOut
	default:
		p.Status = product.StatusSuspended
	}
	return p
}

func (g generator) member(i int) member.Member {
	m := member.Member{
		ID:            fmt.Sprintf("MEM-%06d", i+1),
		Name:          fmt.Sprintf("회원%d", i+1),
		Email:         fmt.Sprintf("member%d@example.com", i+1),
		Phone:         g.phone(),
		JoinDate:      g.daysAgo(30, 1700).Format(timeLayout),
		LastLoginDate: g.daysAgo(0, 330).Format(timeLayout),
	}

	switch n := g.rnd.Intn(100); {
	case n < 5:
		m.Grade, m.TotalOrders = member.GradeVIP, g.between(30, 79)
	case n < 20:
		m.Grade, m.TotalOrders = member.GradeGold, g.between(15, 44)
	case n < 50:
		m.Grade, m.TotalOrders = member.GradeSilver, g.between(5, 19)
	default:
		m.Grade, m.TotalOrders = member.GradeBronze, g.rnd.Intn(5)
	}

	switch n := g.rnd.Intn(100); {
	case n < 85:
		m.Status = member.StatusActive
	case n < 95:
		m.Status = member.StatusDormant
	default:
		m.Status = member.StatusLeft
	}

	m.TotalAmount = int64(m.TotalOrders) * int64(g.between(100000, 400000))
	m.Points = m.TotalAmount / 100
	if g.rnd.Intn(10) >= 3 {
		m.BirthDate = g.daysAgo(7000, 23000).Format(dateLayout)
	}
	if g.rnd.Intn(10) >= 2 {
		m.Gender = g.pick([]string{"남", "여"})
	}
	return m
}

func (g generator) reservation(i int, products []product.Product) reservation.Reservation {
	p := products[g.rnd.Intn(len(products))]
	created := g.daysAgo(0, 330)
	price := int64(g.between(100000, 600000))
	checkIn := created.AddDate(0, 0, g.between(7, 120))

	return reservation.Reservation{
		ID:                i + 1,
		GroupNumber:       fmt.Sprintf("G%s%04d", created.Format("060102"), i+1),
		ReservationNumber: fmt.Sprintf("R%s%05d", created.Format("2006"), i+1),
		Status:            reservation.Statuses[g.rnd.Intn(len(reservation.Statuses))],
		ProductCategory:   p.Category,
		ProductName:       p.Name,
		ReservationDate:   created.Format(dateLayout),
		CustomerName:      fmt.Sprintf("홍길동%d", i%50+1),
		CustomerID:        fmt.Sprintf("customer%d", i+1),
		Phone:             g.phone(),
		Email:             fmt.Sprintf("customer%d@example.com", i+1),
		PriceKRW:          price,
		PriceTHB:          price / 38,
		PaymentMethod:     g.pick(reservation.PaymentMethods),
		CheckIn:           checkIn.Format(dateLayout),
		CheckOut:          checkIn.AddDate(0, 0, g.between(1, 5)).Format(dateLayout),
		Adults:            g.between(1, 4),
		Children:          g.rnd.Intn(3),
		ManagerName:       g.pick(managers),
		CreatedAt:         created,
		UpdatedAt:         created.Add(time.Duration(g.between(1, 72)) * time.Hour),
	}
}

func (g generator) settlement(i int, r reservation.Reservation) settlement.Settlement {
	method := g.pick(settlement.PaymentMethods)
	s := settlement.Settlement{
		ID:                i + 1,
		GroupNumber:       r.GroupNumber,
		ReservationNumber: r.ReservationNumber,
		Status:            r.Status,
		ProductCategory:   r.ProductCategory,
		ProductName:       r.ProductName,
		Commission:        r.PriceKRW / 10,
		ReservationDate:   r.ReservationDate,
		CustomerName:      r.CustomerName,
		CustomerID:        r.CustomerID,
		Phone:             r.Phone,
		Email:             r.Email,
		PriceKRW:          r.PriceKRW,
		PriceTHB:          r.PriceTHB,
		PaymentMethod:     method,
		SettlementStatus:  settlement.Statuses[g.rnd.Intn(len(settlement.Statuses))],
		CreatedAt:         r.CreatedAt,
	}
	if method == "포인트" {
		s.Points = int64(g.between(1, 20)) * 1000
	}
	if g.rnd.Intn(4) == 0 {
		s.Coupon = int64(g.between(1, 5)) * 5000
	}
	return s
}

var eventSeeds = []struct {
	title, content string
}{
	{"겨울 특가 이벤트 - 최대 50% 할인", "이번 겨울 시즌을 맞아 인기 여행 상품을 최대 50% 할인된 가격으로 만나보세요."},
	{"크리스마스 특별 프로모션", "크리스마스 시즌을 맞아 특별한 여행 상품을 준비했습니다."},
	{"신규 회원 가입 혜택", "신규 회원 가입 시 즉시 사용 가능한 10% 할인 쿠폰을 드립니다."},
	{"제주도 여행 패키지 특가", "항공권과 숙박이 포함된 제주도 패키지 상품입니다."},
	{"설 연휴 특별 할인", "설 연휴 기간 동안 사용 가능한 특별 할인 쿠폰을 제공합니다."},
	{"강원도 스키장 시즌 오픈", "강원도 주요 스키장 리프트권과 숙박을 포함한 패키지 상품입니다."},
	{"봄맞이 벚꽃 투어 예약 이벤트", "사진 작가와 함께하는 벚꽃 명소 프리미엄 투어입니다."},
	{"VIP 회원 전용 할인", "VIP 등급 회원님께 추가 할인과 무료 업그레이드를 제공합니다."},
	{"가족 여행 패키지 특가", "어린이 동반 시 추가 할인 혜택을 드리는 가족 여행 패키지입니다."},
	{"호텔 예약 시 무료 업그레이드", "호텔 예약 시 객실 등급을 무료로 업그레이드해드립니다."},
}

func (g generator) events() []event.Event {
	events := make([]event.Event, 0, len(eventSeeds))
	for i, s := range eventSeeds {
		start := g.anchor.AddDate(0, 0, -g.between(0, 29))
		events = append(events, event.Event{
			ID:        fmt.Sprintf("EVENT-%04d", i+1),
			Title:     s.title,
			Content:   s.content,
			ImageURL:  fmt.Sprintf("https://images.example.com/events/%04d.jpg", i+1),
			StartDate: start.Format(dateLayout),
			EndDate:   start.AddDate(0, 0, g.between(7, 36)).Format(dateLayout),
			Author:    "관리자",
			Views:     g.between(100, 1099),
			CreatedAt: g.daysAgo(30, 60),
		})
	}
	return events
}

func (g generator) notice(i int) notice.Notice {
	n := notice.Notice{
		ID:        fmt.Sprintf("NOTICE-%03d", i+1),
		Title:     fmt.Sprintf("공지사항 제목 %d", i+1),
		Content:   "공지사항 내용입니다.",
		Author:    "관리자",
		CreatedAt: g.anchor.AddDate(0, 0, -i).Format(dateLayout),
		Views:     g.rnd.Intn(500),
		Important: i < 3,
	}
	if n.Important {
		n.Title = fmt.Sprintf("[중요] 시스템 점검 안내 %d", i+1)
	}
	return n
}

func admins() []admin.Admin {
	return []admin.Admin{
		{ID: 128, UserID: "dudeoddl", Name: "김영준", Position: "DOS", Email: "dudeoddl@example.com", Phone: "010-7151-9826", Status: admin.StatusInUse, CreatedAt: "2025-05-14 20:36:48", Permissions: []string{"여행후기관리", "상품등록 관리", "게시판관리"}},
		{ID: 112, UserID: "hihi1920", Name: "조아영", Email: "hihi1920@example.com", Phone: "010-7527-8331", Status: admin.StatusInUse, CreatedAt: "2025-04-14 15:53:58", Permissions: []string{"회원관리", "게시판관리"}},
		{ID: 94, UserID: "uwal001", Name: "김태균", Position: "팀장", Email: "uwal001@example.com", Phone: "010-7277-1892", Status: admin.StatusInUse, CreatedAt: "2025-03-05 12:14:04", Permissions: []string{"상품등록 관리", "상품예약", "통계관리"}},
		{ID: 78, UserID: "parkops", Name: "박지현", Position: "매니저", Email: "parkops@example.com", Phone: "010-3321-4410", Status: admin.StatusSuspended, CreatedAt: "2025-01-20 09:02:11", Permissions: []string{"정산관리"}},
		{ID: 51, UserID: "root", Name: "최고관리자", Position: "대표", Email: "root@example.com", Phone: "010-1000-0001", Status: admin.StatusInUse, CreatedAt: "2024-11-01 10:00:00", Permissions: append([]string(nil), admin.Permissions...)},
	}
}

func policies() []policy.Policy {
	return []policy.Policy{
		{ID: 52, Title: "이용약관 (개인)", Priority: 17, ContentPC: "<p>이용약관 내용...</p>", ContentMobile: "<p>이용약관 내용...</p>", CreatedAt: "2025-10-01", UpdatedAt: "2025-10-31"},
		{ID: 49, Title: "이용약관 (기업)", Priority: 20, ContentPC: "<p>TRENVL B2B Partner Terms and Conditions</p>", ContentMobile: "<p>TRENVL B2B Partner Terms</p>", CreatedAt: "2025-10-01", UpdatedAt: "2025-10-31"},
		{ID: 53, Title: "개인정보처리방침 (개인)", Priority: 16, ContentPC: "<p>개인정보처리방침 내용...</p>", ContentMobile: "<p>개인정보처리방침 내용...</p>", CreatedAt: "2025-10-01", UpdatedAt: "2025-10-31"},
		{ID: 50, Title: "개인정보처리방침 (기업)", Priority: 19, ContentPC: "<p>개인정보처리방침 내용...</p>", ContentMobile: "<p>개인정보처리방침 내용...</p>", CreatedAt: "2025-10-01", UpdatedAt: "2025-10-31"},
		{ID: 51, Title: "개인정보 제 3자 제공 및 공유안내 (기업)", Priority: 18, ContentPC: "<p>제 3자 제공 안내...</p>", ContentMobile: "<p>제 3자 제공 안내...</p>", CreatedAt: "2025-10-01", UpdatedAt: "2025-10-31"},
	}
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02 15:04:05"
)
