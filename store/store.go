package store

import (
	"sync"

	"voltstore/entities"
	"voltstore/models"
)

// Store holds the entire storefront state in memory: catalog, cart, coupons,
// wishlist, orders, settings and users. Construct one per process (or per
// test) with New or NewSeeded; there is no package-level instance. All state
// transitions happen through its methods and are pure with respect to I/O —
// persistence is layered on top via Snapshot/Restore.
type Store struct {
	mu sync.Mutex

	products    []entities.Product
	categories  []entities.Category
	collections []entities.Collection
	coupons     []entities.Coupon

	cart          []entities.CartLine
	appliedCoupon *entities.Coupon
	wishlist      []int

	orders      []entities.Order
	lastOrderId int64

	settings entities.Settings
	users    []entities.User
}

// New returns an empty store with default settings and the coupon catalog.
// Coupons are configuration rather than state, so they are present even
// before any seeding or restore.
func New() *Store {
	return &Store{
		settings: DefaultSettings(),
		coupons:  CouponCatalog(),
	}
}

// NewSeeded returns a store preloaded with the demo catalog, collections and
// a few historical orders.
func NewSeeded() *Store {
	s := New()
	s.categories = seedCategories()
	s.products = seedProducts()
	s.collections = seedCollections()
	s.orders = seedOrders(s.products)
	for _, o := range s.orders {
		if o.Id > s.lastOrderId {
			s.lastOrderId = o.Id
		}
	}
	return s
}

// Snapshot is the persisted form of the store: one JSON-serializable record
// covering everything the next process start needs to rehydrate.
type Snapshot struct {
	Products      []entities.Product    `json:"products"`
	Categories    []entities.Category   `json:"categories"`
	Collections   []entities.Collection `json:"collections"`
	Cart          []entities.CartLine   `json:"cart"`
	AppliedCoupon *entities.Coupon      `json:"appliedCoupon"`
	Wishlist      []int                 `json:"wishlist"`
	Orders        []entities.Order      `json:"orders"`
	Settings      entities.Settings     `json:"settings"`
	Users         []models.StoredUser   `json:"users"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Products:    append([]entities.Product(nil), s.products...),
		Categories:  append([]entities.Category(nil), s.categories...),
		Collections: append([]entities.Collection(nil), s.collections...),
		Cart:        append([]entities.CartLine(nil), s.cart...),
		Wishlist:    append([]int(nil), s.wishlist...),
		Orders:      append([]entities.Order(nil), s.orders...),
		Settings:    s.settings,
	}
	if s.appliedCoupon != nil {
		c := *s.appliedCoupon
		snap.AppliedCoupon = &c
	}
	for _, u := range s.users {
		snap.Users = append(snap.Users, models.StoredUser{
			Id:           u.Id,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Name:         u.Name,
			Phone:        u.Phone,
			IsAdmin:      u.IsAdmin,
		})
	}
	return snap
}

// Restore replaces the whole state with a previously taken snapshot. The
// coupon catalog is not part of the snapshot and survives as-is.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = snap.Products
	s.categories = snap.Categories
	s.collections = snap.Collections
	s.cart = snap.Cart
	s.appliedCoupon = snap.AppliedCoupon
	s.wishlist = snap.Wishlist
	s.orders = snap.Orders
	s.settings = snap.Settings

	s.users = nil
	for _, u := range snap.Users {
		s.users = append(s.users, entities.User{
			Id:           u.Id,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Name:         u.Name,
			Phone:        u.Phone,
			IsAdmin:      u.IsAdmin,
		})
	}

	s.lastOrderId = 0
	for _, o := range s.orders {
		if o.Id > s.lastOrderId {
			s.lastOrderId = o.Id
		}
	}
}
