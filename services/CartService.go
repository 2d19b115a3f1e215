package services

import (
	"github.com/sirupsen/logrus"

	"voltstore/entities"
	"voltstore/models"
	"voltstore/repository"
	"voltstore/store"
)

type CartService struct {
	st *store.Store
	sr repository.SnapshotRepository
}

func NewCartService(st *store.Store, snapshotRepo repository.SnapshotRepository) CartService {
	return CartService{
		st: st,
		sr: snapshotRepo,
	}
}

func (cs *CartService) AddToCart(req models.CartAddRequest) (err error) {
	if req.Quantity <= 0 {
		logrus.WithField("quantity", req.Quantity).Debug("AddToCart: non-positive quantity ignored")
		return
	}
	err = cs.st.AddToCart(req.ProductId, req.Size, req.Color, req.Quantity)
	if err != nil {
		return
	}
	persist(cs.st, cs.sr, "AddToCart")
	return
}

func (cs *CartService) RemoveFromCart(key models.CartLineKey) {
	cs.st.RemoveFromCart(key.ProductId, key.Size, key.Color)
	persist(cs.st, cs.sr, "RemoveFromCart")
}

func (cs *CartService) UpdateQuantity(req models.QuantityUpdate) {
	cs.st.UpdateQuantity(req.ProductId, req.Size, req.Color, req.Quantity)
	persist(cs.st, cs.sr, "UpdateQuantity")
}

func (cs *CartService) ClearCart() {
	cs.st.ClearCart()
	persist(cs.st, cs.sr, "ClearCart")
}

func (cs *CartService) GetCart() entities.CartView {
	return cs.st.Cart()
}

func (cs *CartService) ApplyCoupon(code string) (coupon entities.Coupon, err error) {
	coupon, err = cs.st.ApplyCoupon(code)
	if err != nil {
		logrus.WithField("code", code).WithError(err).Info("ApplyCoupon rejected")
		return
	}
	persist(cs.st, cs.sr, "ApplyCoupon")
	return
}

func (cs *CartService) RemoveCoupon() {
	cs.st.RemoveCoupon()
	persist(cs.st, cs.sr, "RemoveCoupon")
}

// GetTotals returns subtotal, discount, shipping and final total as one
// consistent read.
func (cs *CartService) GetTotals() entities.Totals {
	return cs.st.Totals()
}
