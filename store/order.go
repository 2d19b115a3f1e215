package store

import (
	"time"

	"voltstore/entities"
	"voltstore/models"
)

// CreateOrder materializes the current cart into an order: it snapshots the
// lines, fixes the four totals at this instant, attaches the active coupon
// and the caller's contact fields, and prepends the order to the history.
// Checkout consumes the cart and the active coupon. An empty cart is
// rejected.
func (s *Store) CreateOrder(info entities.CheckoutInfo) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return entities.Order{}, models.ErrEmptyCart
	}

	t := s.totals()
	order := entities.Order{
		Id:           s.nextOrderId(),
		Date:         time.Now().UTC(),
		Items:        append([]entities.CartLine{}, s.cart...),
		Subtotal:     t.Subtotal,
		Discount:     t.Discount,
		Shipping:     t.Shipping,
		Total:        t.Total,
		Status:       entities.OrderPending,
		Coupon:       t.Coupon,
		CheckoutInfo: info,
	}

	s.orders = append([]entities.Order{order}, s.orders...)
	s.cart = nil
	s.appliedCoupon = nil
	return order, nil
}

// nextOrderId derives ids from the wall clock in milliseconds. Two checkouts
// inside the same millisecond still get distinct, strictly increasing ids.
func (s *Store) nextOrderId() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastOrderId {
		id = s.lastOrderId + 1
	}
	s.lastOrderId = id
	return id
}

// Orders returns the history, most recent first.
func (s *Store) Orders() []entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Order{}, s.orders...)
}

func (s *Store) OrderById(id int64) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.Id == id {
			return o, nil
		}
	}
	return entities.Order{}, models.ErrNotFound
}

// UpdateOrderStatus overwrites the status unconditionally; any status may
// follow any other. Unknown ids are reported, nothing else changes.
func (s *Store) UpdateOrderStatus(id int64, status entities.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].Id == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return models.ErrNotFound
}
