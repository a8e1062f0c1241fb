package favoriteControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/models"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/testutil"
)

func TestAddFavorite(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "alice@example.com", "")
	product := testutil.CreateProduct(t, db, "Rose Bush", "18.00", "")

	favorite, err := AddFavorite(db, user.Email, product.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, favorite.UserID)
	assert.Equal(t, product.ID, favorite.ProductID)

	// Second add for the same product is a conflict.
	_, err = AddFavorite(db, user.Email, product.ID)
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
}

func TestAddFavoriteUnknownProduct(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "bob@example.com", "")

	_, err := AddFavorite(db, user.Email, 9999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRemoveFavorite(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "carol@example.com", "")
	product := testutil.CreateProduct(t, db, "Tulip Bulbs", "5.00", "")

	_, err := AddFavorite(db, user.Email, product.ID)
	require.NoError(t, err)

	require.NoError(t, RemoveFavorite(db, user.Email, product.ID))
	assert.ErrorIs(t, RemoveFavorite(db, user.Email, product.ID), models.ErrNotFound)
}

func TestGetFavorites(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "dave@example.com", "")
	other := testutil.CreateUser(t, db, "erin@example.com", "")
	productA := testutil.CreateProduct(t, db, "Fern", "9.00", "")
	productB := testutil.CreateProduct(t, db, "Cactus", "7.00", "")

	_, err := AddFavorite(db, user.Email, productA.ID)
	require.NoError(t, err)
	_, err = AddFavorite(db, user.Email, productB.ID)
	require.NoError(t, err)
	_, err = AddFavorite(db, other.Email, productA.ID)
	require.NoError(t, err)

	favorites, err := GetFavorites(db, user.Email)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)
}
