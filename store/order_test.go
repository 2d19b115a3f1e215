package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltstore/entities"
	"voltstore/models"
	"voltstore/store"
)

func checkoutInfo() entities.CheckoutInfo {
	return entities.CheckoutInfo{
		Email:         "ana@example.com",
		FirstName:     "Ana",
		LastName:      "García",
		Phone:         "+54 11 5555-0001",
		Address:       "Av. Corrientes 1234",
		City:          "Buenos Aires",
		State:         "CABA",
		ZipCode:       "C1043",
		PaymentMethod: "card",
	}
}

func TestCreateOrderCheckoutFlow(t *testing.T) {
	st, ids := catalogStore(12000, 28000)
	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 2))
	require.NoError(t, st.AddToCart(ids[1], "L", "White", 1))

	_, err := st.ApplyCoupon("VOLT10")
	require.NoError(t, err)

	order, err := st.CreateOrder(checkoutInfo())
	require.NoError(t, err)

	assert.Equal(t, 52000, order.Subtotal)
	assert.Equal(t, 5200, order.Discount)
	assert.Equal(t, 0, order.Shipping)
	assert.Equal(t, 46800, order.Total)
	assert.Equal(t, entities.OrderPending, order.Status)
	assert.Len(t, order.Items, 2)
	require.NotNil(t, order.Coupon)
	assert.Equal(t, "VOLT10", order.Coupon.Code)
	assert.Equal(t, "ana@example.com", order.Email)

	// Checkout consumes the cart and the coupon.
	assert.Empty(t, st.Cart().Lines)
	assert.Nil(t, st.AppliedCoupon())
	assert.Equal(t, 0, st.Discount())

	// Newest first.
	orders := st.Orders()
	require.NotEmpty(t, orders)
	assert.Equal(t, order.Id, orders[0].Id)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	st, _ := catalogStore(12000)
	_, err := st.CreateOrder(checkoutInfo())
	assert.ErrorIs(t, err, models.ErrEmptyCart)
	assert.Empty(t, st.Orders())
}

func TestOrderIdsUniqueAndIncreasing(t *testing.T) {
	st, ids := catalogStore(12000)

	var prev int64
	for i := 0; i < 10; i++ {
		require.NoError(t, st.AddToCart(ids[0], "M", "Black", 1))
		order, err := st.CreateOrder(checkoutInfo())
		require.NoError(t, err)
		assert.Greater(t, order.Id, prev)
		prev = order.Id
	}
}

func TestOrderItemsAreSnapshots(t *testing.T) {
	st, ids := catalogStore(12000)
	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 1))

	order, err := st.CreateOrder(checkoutInfo())
	require.NoError(t, err)

	require.NoError(t, st.DeleteProduct(ids[0]))

	got, err := st.OrderById(order.Id)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 12000, got.Items[0].Price)
}

func TestUpdateOrderStatus(t *testing.T) {
	st, ids := catalogStore(12000)
	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 1))
	order, err := st.CreateOrder(checkoutInfo())
	require.NoError(t, err)

	// Any transition is allowed, including moving backwards.
	for _, status := range []entities.OrderStatus{
		entities.OrderDelivered,
		entities.OrderProcessing,
		entities.OrderCancelled,
	} {
		require.NoError(t, st.UpdateOrderStatus(order.Id, status))
		got, err := st.OrderById(order.Id)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	assert.ErrorIs(t, st.UpdateOrderStatus(424242, entities.OrderShipped), models.ErrNotFound)
}

func TestOrderByIdNotFound(t *testing.T) {
	st := store.New()
	_, err := st.OrderById(1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCustomersAggregation(t *testing.T) {
	st, ids := catalogStore(10000)

	ana := checkoutInfo()
	ben := checkoutInfo()
	ben.Email = "ben@example.com"
	ben.FirstName = "Ben"
	ben.LastName = "Díaz"

	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 1))
	_, err := st.CreateOrder(ana)
	require.NoError(t, err)

	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 2))
	_, err = st.CreateOrder(ben)
	require.NoError(t, err)

	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 1))
	_, err = st.CreateOrder(ana)
	require.NoError(t, err)

	customers := st.Customers()
	require.Len(t, customers, 2)

	byEmail := make(map[string]entities.Customer)
	for _, c := range customers {
		byEmail[c.Email] = c
	}

	require.Contains(t, byEmail, "ana@example.com")
	require.Contains(t, byEmail, "ben@example.com")
	assert.Equal(t, 2, byEmail["ana@example.com"].Orders)
	assert.Equal(t, 26000, byEmail["ana@example.com"].TotalSpent)
	assert.Equal(t, "Ana García", byEmail["ana@example.com"].Name)
	assert.Equal(t, 1, byEmail["ben@example.com"].Orders)
	assert.Equal(t, 23000, byEmail["ben@example.com"].TotalSpent)
}

func TestDashboardStats(t *testing.T) {
	st := store.NewSeeded()
	stats := st.Stats()

	orders := st.Orders()
	revenue := 0
	for _, o := range orders {
		revenue += o.Total
	}

	assert.Equal(t, len(orders), stats.TotalOrders)
	assert.Equal(t, revenue, stats.TotalRevenue)
	assert.Equal(t, 24, stats.TotalProducts)
	assert.NotEmpty(t, stats.OrdersByStatus)

	byStatus := 0
	for _, n := range stats.OrdersByStatus {
		byStatus += n
	}
	assert.Equal(t, stats.TotalOrders, byStatus)

	assert.LessOrEqual(t, len(stats.LowStock), 5)
	for i := 1; i < len(stats.LowStock); i++ {
		assert.LessOrEqual(t, stats.LowStock[i-1].Stock, stats.LowStock[i].Stock)
	}
	for _, p := range stats.LowStock {
		assert.Less(t, p.Stock, st.Settings().StockThreshold)
	}

	assert.Len(t, stats.StockByCategory, 4)
}
