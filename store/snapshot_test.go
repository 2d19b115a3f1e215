package store_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltstore/entities"
	"voltstore/store"
)

func TestSnapshotRoundTrip(t *testing.T) {
	st := store.NewSeeded()
	require.NoError(t, st.AddToCart(1, "M", "Black", 2))
	_, err := st.ApplyCoupon("VOLT10")
	require.NoError(t, err)
	st.AddToWishlist(3)
	_, err = st.AddUser(entities.User{
		Email:        "ana@example.com",
		PasswordHash: "$2a$08$notarealhash",
		Name:         "Ana García",
	})
	require.NoError(t, err)

	data, err := json.Marshal(st.Snapshot())
	require.NoError(t, err)

	var snap store.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))

	restored := store.New()
	restored.Restore(snap)

	assert.Equal(t, st.Products(), restored.Products())
	assert.Equal(t, st.Cart(), restored.Cart())
	assert.Equal(t, st.Wishlist(), restored.Wishlist())
	assert.Equal(t, st.Settings(), restored.Settings())
	assert.Equal(t, len(st.Orders()), len(restored.Orders()))

	applied := restored.AppliedCoupon()
	require.NotNil(t, applied)
	assert.Equal(t, "VOLT10", applied.Code)

	// Password hashes survive the round trip even though API responses
	// never carry them.
	u, ok := restored.UserByEmail("ana@example.com")
	require.True(t, ok)
	assert.Equal(t, "$2a$08$notarealhash", u.PasswordHash)
}

func TestSnapshotIsDetachedFromLiveState(t *testing.T) {
	st := store.NewSeeded()
	snap := st.Snapshot()

	require.NoError(t, st.DeleteProduct(1))
	assert.Len(t, snap.Products, 24)
}

func TestRestoreRecomputesOrderIdHighWater(t *testing.T) {
	st := store.NewSeeded()
	snap := st.Snapshot()

	restored := store.New()
	restored.Restore(snap)

	require.NoError(t, restored.AddToCart(1, "M", "Black", 1))
	order, err := restored.CreateOrder(checkoutInfo())
	require.NoError(t, err)

	for _, o := range restored.Orders()[1:] {
		assert.Greater(t, order.Id, o.Id)
	}
}

func TestRestoreKeepsCouponCatalog(t *testing.T) {
	st := store.New()
	restored := store.New()
	restored.Restore(st.Snapshot())

	assert.Len(t, restored.Coupons(), 3)
}

func TestUserEmailsAreExactMatch(t *testing.T) {
	st := store.New()
	_, err := st.AddUser(entities.User{Email: "ana@example.com"})
	require.NoError(t, err)

	_, ok := st.UserByEmail("ANA@example.com")
	assert.False(t, ok)

	// But a second registration with the same exact email is rejected.
	_, err = st.AddUser(entities.User{Email: "ana@example.com"})
	assert.Error(t, err)
}
