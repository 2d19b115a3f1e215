package store

import (
	"strings"

	"voltstore/entities"
	"voltstore/models"
)

func (s *Store) Coupons() []entities.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Coupon{}, s.coupons...)
}

// SetCouponCatalog replaces the promo set. The active coupon, if any, stays
// applied; it is a snapshot of whatever was valid when it was applied.
func (s *Store) SetCouponCatalog(coupons []entities.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons = append([]entities.Coupon{}, coupons...)
}

// ApplyCoupon looks the code up case-insensitively and makes it the single
// active coupon, provided the current subtotal reaches the coupon's minimum.
// On failure the previously applied coupon stays in place.
func (s *Store) ApplyCoupon(code string) (entities.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.coupons {
		if strings.EqualFold(c.Code, strings.TrimSpace(code)) {
			if s.subtotal() < c.MinAmount {
				return entities.Coupon{}, models.ErrMinimumNotMet
			}
			applied := c
			s.appliedCoupon = &applied
			return c, nil
		}
	}
	return entities.Coupon{}, models.ErrCouponNotFound
}

func (s *Store) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appliedCoupon = nil
}

func (s *Store) AppliedCoupon() *entities.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appliedCoupon == nil {
		return nil
	}
	c := *s.appliedCoupon
	return &c
}

// Discount is zero without an active coupon. Percentage coupons floor to the
// whole currency unit; fixed coupons never exceed the subtotal, keeping
// every order total non-negative.
func (s *Store) Discount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discount()
}

// Shipping is free once the subtotal reaches the configured threshold.
func (s *Store) Shipping() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipping()
}

// FinalTotal is subtotal - discount + shipping.
func (s *Store) FinalTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotal() - s.discount() + s.shipping()
}

// Totals bundles the four derived amounts plus the active coupon for a
// single consistent read.
func (s *Store) Totals() entities.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals()
}

func (s *Store) totals() entities.Totals {
	t := entities.Totals{
		Subtotal: s.subtotal(),
		Discount: s.discount(),
		Shipping: s.shipping(),
	}
	t.Total = t.Subtotal - t.Discount + t.Shipping
	if s.appliedCoupon != nil {
		c := *s.appliedCoupon
		t.Coupon = &c
	}
	return t
}

func (s *Store) discount() int {
	if s.appliedCoupon == nil {
		return 0
	}
	sub := s.subtotal()
	var d int
	switch s.appliedCoupon.Type {
	case entities.CouponPercentage:
		d = sub * s.appliedCoupon.Discount / 100
	case entities.CouponFixed:
		d = s.appliedCoupon.Discount
	}
	if d > sub {
		d = sub
	}
	return d
}

func (s *Store) shipping() int {
	if s.subtotal() >= s.settings.FreeShippingThreshold {
		return 0
	}
	return s.settings.StandardShipping
}
