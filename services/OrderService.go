package services

import (
	"github.com/sirupsen/logrus"

	"voltstore/entities"
	"voltstore/models"
	"voltstore/repository"
	"voltstore/store"
)

type OrderService struct {
	st *store.Store
	sr repository.SnapshotRepository
}

func NewOrderService(st *store.Store, snapshotRepo repository.SnapshotRepository) OrderService {
	return OrderService{
		st: st,
		sr: snapshotRepo,
	}
}

// Checkout validates the contact fields and turns the cart into an order.
// There is no payment gateway; a valid checkout "pays" immediately and the
// order starts out pending.
func (ors *OrderService) Checkout(info entities.CheckoutInfo) (order entities.Order, err error) {
	if info.Email == "" || info.FirstName == "" || info.LastName == "" || info.Address == "" {
		logrus.Info("Checkout: missing required customer fields")
		err = models.ErrBadRequest
		return
	}
	order, err = ors.st.CreateOrder(info)
	if err != nil {
		return
	}
	logrus.WithFields(logrus.Fields{"order": order.Id, "total": order.Total}).Info("order created")
	persist(ors.st, ors.sr, "Checkout")
	return
}

func (ors *OrderService) GetOrders() []entities.Order {
	return ors.st.Orders()
}

func (ors *OrderService) GetOrderById(orderId int64) (entities.Order, error) {
	return ors.st.OrderById(orderId)
}

func (ors *OrderService) SetOrderStatus(orderId int64, status entities.OrderStatus) (err error) {
	if !entities.ValidOrderStatus(status) {
		logrus.WithField("status", status).Info("SetOrderStatus: unknown status")
		err = models.ErrBadRequest
		return
	}
	err = ors.st.UpdateOrderStatus(orderId, status)
	if err != nil {
		return
	}
	persist(ors.st, ors.sr, "SetOrderStatus")
	return
}

func (ors *OrderService) GetCustomers() []entities.Customer {
	return ors.st.Customers()
}

func (ors *OrderService) GetStats() entities.DashboardStats {
	return ors.st.Stats()
}
