package store

import (
	"voltstore/entities"
	"voltstore/models"
)

// AddToCart merges into an existing line when the (product, size, color)
// triple already sits in the cart, otherwise appends a new line carrying a
// snapshot of the product's display fields. A non-positive quantity is a
// no-op.
func (s *Store) AddToCart(productId int, size, color string, quantity int) error {
	if quantity <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.productById(productId)
	if !ok {
		return models.ErrNotFound
	}

	for i := range s.cart {
		if s.cart[i].ProductId == productId && s.cart[i].Size == size && s.cart[i].Color == color {
			s.cart[i].Quantity += quantity
			return nil
		}
	}

	s.cart = append(s.cart, entities.CartLine{
		ProductId: p.Id,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Size:      size,
		Color:     color,
		Quantity:  quantity,
	})
	return nil
}

// RemoveFromCart drops the matching line. Removing an absent line is
// deliberately not an error.
func (s *Store) RemoveFromCart(productId int, size, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLine(productId, size, color)
}

// UpdateQuantity sets the line's quantity. Zero is equivalent to
// RemoveFromCart; negative values and unknown lines are no-ops.
func (s *Store) UpdateQuantity(productId int, size, color string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity == 0 {
		s.removeLine(productId, size, color)
		return
	}
	if quantity < 0 {
		return
	}
	for i := range s.cart {
		if s.cart[i].ProductId == productId && s.cart[i].Size == size && s.cart[i].Color == color {
			s.cart[i].Quantity = quantity
			return
		}
	}
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

func (s *Store) Cart() entities.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entities.CartView{
		Lines:    append([]entities.CartLine{}, s.cart...),
		Subtotal: s.subtotal(),
		Count:    s.count(),
	}
}

// CartTotal is the sum of price*quantity over all lines.
func (s *Store) CartTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotal()
}

// CartCount is the sum of quantities over all lines.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count()
}

func (s *Store) removeLine(productId int, size, color string) {
	kept := s.cart[:0]
	for _, line := range s.cart {
		if !(line.ProductId == productId && line.Size == size && line.Color == color) {
			kept = append(kept, line)
		}
	}
	s.cart = kept
}

func (s *Store) subtotal() int {
	total := 0
	for _, line := range s.cart {
		total += line.Price * line.Quantity
	}
	return total
}

func (s *Store) count() int {
	count := 0
	for _, line := range s.cart {
		count += line.Quantity
	}
	return count
}
