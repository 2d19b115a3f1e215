package store

// AddToWishlist has set semantics: adding a product twice keeps one entry.
func (s *Store) AddToWishlist(productId int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.wishlist {
		if id == productId {
			return
		}
	}
	s.wishlist = append(s.wishlist, productId)
}

func (s *Store) RemoveFromWishlist(productId int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.wishlist[:0]
	for _, id := range s.wishlist {
		if id != productId {
			kept = append(kept, id)
		}
	}
	s.wishlist = kept
}

func (s *Store) InWishlist(productId int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.wishlist {
		if id == productId {
			return true
		}
	}
	return false
}

func (s *Store) Wishlist() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int{}, s.wishlist...)
}
