package entities

import "time"

type Product struct {
	Id            int      `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Sku           string   `json:"sku"`
	Category      int      `json:"category"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"originalPrice"` // non-nil means the product is on sale
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Stock         int      `json:"stock"`
	Featured      bool     `json:"featured"`
	New           bool     `json:"new"`
	Sale          bool     `json:"sale"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
}

type Category struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Collection struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ProductIds  []int  `json:"productIds"`
}

// CartLine is one cart entry keyed by (ProductId, Size, Color). Price, Name
// and Image are snapshots taken when the line was added and do not follow
// later catalog edits.
type CartLine struct {
	ProductId int    `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

type CartView struct {
	Lines    []CartLine `json:"lines"`
	Subtotal int        `json:"subtotal"`
	Count    int        `json:"count"`
}

type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
)

type Coupon struct {
	Code      string     `json:"code"`
	Discount  int        `json:"discount"`
	Type      CouponType `json:"type"`
	MinAmount int        `json:"minAmount"`
}

type Totals struct {
	Subtotal int     `json:"subtotal"`
	Discount int     `json:"discount"`
	Shipping int     `json:"shipping"`
	Total    int     `json:"total"`
	Coupon   *Coupon `json:"coupon"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CheckoutInfo carries the customer contact and address fields collected at
// checkout.
type CheckoutInfo struct {
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	PaymentMethod string `json:"paymentMethod"`
}

type Order struct {
	Id       int64       `json:"id"`
	Date     time.Time   `json:"date"`
	Items    []CartLine  `json:"items"`
	Subtotal int         `json:"subtotal"`
	Discount int         `json:"discount"`
	Shipping int         `json:"shipping"`
	Total    int         `json:"total"`
	Status   OrderStatus `json:"status"`
	Coupon   *Coupon     `json:"coupon"`
	CheckoutInfo
}

type Settings struct {
	StoreName             string `json:"storeName"`
	StoreEmail            string `json:"storeEmail"`
	StorePhone            string `json:"storePhone"`
	StoreAddress          string `json:"storeAddress"`
	FreeShippingThreshold int    `json:"freeShippingThreshold"`
	StandardShipping      int    `json:"standardShipping"`
	ExpressShipping       int    `json:"expressShipping"`
	AcceptCash            bool   `json:"acceptCash"`
	AcceptCard            bool   `json:"acceptCard"`
	AcceptTransfer        bool   `json:"acceptTransfer"`
	EmailNewOrder         bool   `json:"emailNewOrder"`
	EmailLowStock         bool   `json:"emailLowStock"`
	StockThreshold        int    `json:"stockThreshold"`
	MetaTitle             string `json:"metaTitle"`
	MetaDescription       string `json:"metaDescription"`
	Instagram             string `json:"instagram"`
	Facebook              string `json:"facebook"`
	Twitter               string `json:"twitter"`
}

type User struct {
	Id           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	IsAdmin      bool   `json:"isAdmin"`
}

// Customer is the admin-side view derived from order history, one row per
// distinct order email.
type Customer struct {
	Id         int       `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Orders     int       `json:"orders"`
	TotalSpent int       `json:"totalSpent"`
	LastOrder  time.Time `json:"lastOrder"`
}

type CategoryStock struct {
	Category string `json:"category"`
	Stock    int    `json:"stock"`
}

type DashboardStats struct {
	TotalRevenue    int                 `json:"totalRevenue"`
	TotalOrders     int                 `json:"totalOrders"`
	TotalProducts   int                 `json:"totalProducts"`
	TotalCustomers  int                 `json:"totalCustomers"`
	OrdersByStatus  map[OrderStatus]int `json:"ordersByStatus"`
	LowStock        []Product           `json:"lowStock"`
	StockByCategory []CategoryStock     `json:"stockByCategory"`
}
