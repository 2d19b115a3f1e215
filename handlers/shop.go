package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"voltstore/entities"
	"voltstore/models"
)

// catalog

func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.ps.GetProducts())
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	prod, err := h.ps.GetProductById(id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, prod)
}

func (h *Handler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	prod, err := h.ps.GetProductBySlug(mux.Vars(r)["slug"])
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, prod)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var in models.ProductCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logrus.WithError(err).Info("CreateProduct: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	prod, err := h.ps.CreateProduct(in)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, prod)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	var patch models.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		logrus.WithError(err).Info("UpdateProduct: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	prod, err := h.ps.UpdateProduct(id, patch)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, prod)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.ps.DeleteProduct(id); err != nil {
		WriteErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.ps.GetCategories())
}

// collections

func (h *Handler) GetCollections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.cls.GetCollections())
}

func (h *Handler) GetCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	col, err := h.cls.GetCollectionById(id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, col)
}

func (h *Handler) GetCollectionProducts(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	products, err := h.cls.GetCollectionProducts(id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, products)
}

func (h *Handler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var in models.CollectionCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logrus.WithError(err).Info("CreateCollection: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	col, err := h.cls.CreateCollection(in)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, col)
}

func (h *Handler) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	var patch models.CollectionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		logrus.WithError(err).Info("UpdateCollection: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	col, err := h.cls.UpdateCollection(id, patch)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, col)
}

func (h *Handler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.cls.DeleteCollection(id); err != nil {
		WriteErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// cart

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.cs.GetCart())
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req models.CartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.WithError(err).Info("AddToCart: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.cs.AddToCart(req); err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, h.cs.GetCart())
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var key models.CartLineKey
	if err := json.NewDecoder(r.Body).Decode(&key); err != nil {
		logrus.WithError(err).Info("RemoveFromCart: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.cs.RemoveFromCart(key)
	writeJSON(w, h.cs.GetCart())
}

func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req models.QuantityUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.WithError(err).Info("UpdateQuantity: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.cs.UpdateQuantity(req)
	writeJSON(w, h.cs.GetCart())
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cs.ClearCart()
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetTotals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.cs.GetTotals())
}

// coupons

func (h *Handler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req models.CouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.WithError(err).Info("ApplyCoupon: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	coupon, err := h.cs.ApplyCoupon(req.Code)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, coupon)
}

func (h *Handler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	h.cs.RemoveCoupon()
	w.WriteHeader(http.StatusOK)
}

// checkout & orders

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var info entities.CheckoutInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		logrus.WithError(err).Info("Checkout: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	order, err := h.ors.Checkout(info)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, order)
}

func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.ors.GetOrders())
}

func (h *Handler) GetOrderById(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	order, err := h.ors.GetOrderById(id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, order)
}

func (h *Handler) SetOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	var update models.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logrus.WithError(err).Info("SetOrderStatus: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.ors.SetOrderStatus(id, update.Status); err != nil {
		WriteErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// wishlist

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.ws.GetProducts())
}

func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.ws.Add(id)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.ws.Remove(id)
	w.WriteHeader(http.StatusOK)
}

// settings & admin views

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.ses.GetSettings())
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings entities.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		logrus.WithError(err).Info("UpdateSettings: decode failed")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.ses.UpdateSettings(settings); err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, h.ses.GetSettings())
}

func (h *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.ors.GetCustomers())
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.ors.GetStats())
}

func pathInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

func pathInt64(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
