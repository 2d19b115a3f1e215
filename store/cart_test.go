package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltstore/models"
	"voltstore/store"
)

// catalogStore returns an empty store with a handful of products at known
// prices.
func catalogStore(prices ...int) (*store.Store, []int) {
	st := store.New()
	var ids []int
	for _, price := range prices {
		p := st.AddProduct(models.ProductCreate{
			Name:   "Test Tee",
			Price:  price,
			Stock:  100,
			Colors: []string{"Black", "White"},
			Sizes:  []string{"S", "M", "L"},
		})
		ids = append(ids, p.Id)
	}
	return st, ids
}

func TestAddToCartMergesSameTriple(t *testing.T) {
	st, ids := catalogStore(12000)

	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 1))
	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 1))

	cart := st.Cart()
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestAddToCartDistinctTriplesStaySeparate(t *testing.T) {
	st, ids := catalogStore(12000)

	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 1))
	require.NoError(t, st.AddToCart(ids[0], "L", "Black", 1))
	require.NoError(t, st.AddToCart(ids[0], "M", "White", 1))

	assert.Len(t, st.Cart().Lines, 3)
	assert.Equal(t, 3, st.CartCount())
}

func TestAddToCartNonPositiveQuantityIsNoOp(t *testing.T) {
	st, ids := catalogStore(12000)

	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 0))
	require.NoError(t, st.AddToCart(ids[0], "M", "Black", -3))

	assert.Empty(t, st.Cart().Lines)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	st, _ := catalogStore(12000)
	assert.ErrorIs(t, st.AddToCart(999, "M", "Black", 1), models.ErrNotFound)
}

func TestAddToCartSnapshotsProductFields(t *testing.T) {
	st, ids := catalogStore(12000)
	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 1))

	newPrice := 99000
	_, err := st.UpdateProduct(ids[0], models.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	// The line keeps the price from add time.
	assert.Equal(t, 12000, st.Cart().Lines[0].Price)
	assert.Equal(t, 12000, st.CartTotal())
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	st, ids := catalogStore(12000)
	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 2))

	st.RemoveFromCart(ids[0], "L", "White") // absent line
	assert.Len(t, st.Cart().Lines, 1)

	st.RemoveFromCart(ids[0], "M", "Black")
	assert.Empty(t, st.Cart().Lines)

	st.RemoveFromCart(ids[0], "M", "Black") // already gone
	assert.Empty(t, st.Cart().Lines)
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	st, ids := catalogStore(12000, 28000)

	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 2))
	require.NoError(t, st.AddToCart(ids[1], "L", "Black", 1))
	st.UpdateQuantity(ids[0], "M", "Black", 0)

	viaUpdate := st.Cart()

	st2, ids2 := catalogStore(12000, 28000)
	require.NoError(t, st2.AddToCart(ids2[0], "M", "Black", 2))
	require.NoError(t, st2.AddToCart(ids2[1], "L", "Black", 1))
	st2.RemoveFromCart(ids2[0], "M", "Black")

	viaRemove := st2.Cart()

	require.Len(t, viaUpdate.Lines, 1)
	assert.Equal(t, viaRemove.Subtotal, viaUpdate.Subtotal)
	assert.Equal(t, viaRemove.Count, viaUpdate.Count)
	assert.Equal(t, viaRemove.Lines[0].Size, viaUpdate.Lines[0].Size)
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	st, ids := catalogStore(12000)
	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 2))

	st.UpdateQuantity(ids[0], "M", "Black", 5)
	assert.Equal(t, 5, st.Cart().Lines[0].Quantity)

	// Negative quantities and unknown lines change nothing.
	st.UpdateQuantity(ids[0], "M", "Black", -1)
	st.UpdateQuantity(ids[0], "XL", "Black", 3)
	cart := st.Cart()
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestClearCart(t *testing.T) {
	st, ids := catalogStore(12000, 28000)
	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 2))
	require.NoError(t, st.AddToCart(ids[1], "L", "Black", 1))

	st.ClearCart()

	assert.Empty(t, st.Cart().Lines)
	assert.Equal(t, 0, st.CartTotal())
	assert.Equal(t, 0, st.CartCount())
}

func TestCartTotalAndCount(t *testing.T) {
	st, ids := catalogStore(12000, 28000)
	require.NoError(t, st.AddToCart(ids[0], "M", "Black", 2))
	require.NoError(t, st.AddToCart(ids[1], "L", "Black", 1))

	assert.Equal(t, 52000, st.CartTotal())
	assert.Equal(t, 3, st.CartCount())
}
