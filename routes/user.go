package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/controllers/cart"
	categoryControllers "github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/controllers/category"
	favoriteControllers "github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/controllers/favorite"
	productController "github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/controllers/product"
	userControllers "github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/controllers/user"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))
		userGroup.DELETE("/", userControllers.DeleteUserHandler(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCartItemsHandler(db))
			cartGroup.POST("/", cartControllers.AddCartItemHandler(db))
			cartGroup.DELETE("/:product_id", cartControllers.RemoveCartItemHandler(db))
		}

		// ──────────────── Favorites ────────────────
		favoriteGroup := userGroup.Group("/favorites")
		{
			favoriteGroup.GET("/", favoriteControllers.GetFavoritesHandler(db))
			favoriteGroup.POST("/", favoriteControllers.AddFavoriteHandler(db))
			favoriteGroup.DELETE("/:product_id", favoriteControllers.RemoveFavoriteHandler(db))
		}

		// ──────────────── Browse Catalog ────────────────
		userGroup.GET("/products", productController.GetProducts(db))
		userGroup.GET("/products/max-discount", productController.GetMaxDiscountProduct(db))
		userGroup.GET("/products/:id", productController.GetProductByID(db))
		userGroup.GET("/categories", categoryControllers.GetAllCategories(db))
	}
}
