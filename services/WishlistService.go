package services

import (
	"voltstore/entities"
	"voltstore/repository"
	"voltstore/store"
)

type WishlistService struct {
	st *store.Store
	sr repository.SnapshotRepository
}

func NewWishlistService(st *store.Store, snapshotRepo repository.SnapshotRepository) WishlistService {
	return WishlistService{
		st: st,
		sr: snapshotRepo,
	}
}

func (ws *WishlistService) Add(productId int) {
	ws.st.AddToWishlist(productId)
	persist(ws.st, ws.sr, "WishlistAdd")
}

func (ws *WishlistService) Remove(productId int) {
	ws.st.RemoveFromWishlist(productId)
	persist(ws.st, ws.sr, "WishlistRemove")
}

func (ws *WishlistService) Contains(productId int) bool {
	return ws.st.InWishlist(productId)
}

func (ws *WishlistService) Ids() []int {
	return ws.st.Wishlist()
}

// GetProducts resolves the wishlist against the catalog; ids of deleted
// products are skipped rather than surfaced as errors.
func (ws *WishlistService) GetProducts() (products []entities.Product) {
	for _, id := range ws.st.Wishlist() {
		if p, err := ws.st.ProductById(id); err == nil {
			products = append(products, p)
		}
	}
	return
}
