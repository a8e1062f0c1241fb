package cartControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/models"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/testutil"
)

func TestAddCartItem(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "alice@example.com", "")
	product := testutil.CreateProduct(t, db, "Flower Pot", "4.99", "")

	item, err := AddCartItem(db, user.Email, CartItemInput{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, product.ID, item.ProductID)
	assert.Equal(t, 3, item.Quantity)
	assert.EqualValues(t, 1, testutil.CountCartItems(t, db, user))
}

func TestAddCartItemDuplicateProduct(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "bob@example.com", "")
	product := testutil.CreateProduct(t, db, "Hedge Trimmer", "59.00", "")

	_, err := AddCartItem(db, user.Email, CartItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	// The unique index rejects the second line for the same product.
	_, err = AddCartItem(db, user.Email, CartItemInput{ProductID: product.ID, Quantity: 2})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
	assert.EqualValues(t, 1, testutil.CountCartItems(t, db, user))
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "carol@example.com", "")

	_, err := AddCartItem(db, user.Email, CartItemInput{ProductID: 9999, Quantity: 1})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddCartItemUnknownUser(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.CreateProduct(t, db, "Sprinkler", "14.00", "")

	_, err := AddCartItem(db, "nobody@example.com", CartItemInput{ProductID: 1, Quantity: 1})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddCartItemRecreatesMissingCart(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "dave@example.com", "")
	product := testutil.CreateProduct(t, db, "Wheelbarrow", "85.00", "")

	// A user without a cart row is abnormal, but add-to-cart repairs it.
	require.NoError(t, db.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error)

	_, err := AddCartItem(db, user.Email, CartItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 1, testutil.CountCartItems(t, db, user))
}

func TestRemoveCartItem(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "erin@example.com", "")
	product := testutil.CreateProduct(t, db, "Soil Bag", "6.50", "")
	testutil.AddCartItem(t, db, user, product, 2)

	require.NoError(t, RemoveCartItem(db, user.Email, product.ID))
	assert.EqualValues(t, 0, testutil.CountCartItems(t, db, user))

	// Removing again finds nothing.
	assert.ErrorIs(t, RemoveCartItem(db, user.Email, product.ID), models.ErrNotFound)
}

func TestGetCartItems(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "frank@example.com", "")
	productA := testutil.CreateProduct(t, db, "Gloves", "8.00", "")
	productB := testutil.CreateProduct(t, db, "Kneeling Pad", "11.00", "")
	testutil.AddCartItem(t, db, user, productA, 1)
	testutil.AddCartItem(t, db, user, productB, 4)

	items, err := GetCartItems(db, user.Email)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
