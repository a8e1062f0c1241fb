package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryControllers "github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/controllers/category"
	productController "github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/controllers/product"
	userControllers "github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/controllers/user"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires JWT plus the
// administrator role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productController.CreateProduct(db))
			productAdmin.PUT("/:id", productController.UpdateProduct(db))
			productAdmin.PUT("/:id/discount", productController.SetDiscountPrice(db))
			productAdmin.DELETE("/:id", productController.DeleteProduct(db))
			productAdmin.GET("/export-excel", productController.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", categoryControllers.CreateCategory(db))
			categoryAdmin.PUT("/:id", categoryControllers.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", categoryControllers.DeleteCategory(db))
		}

		// ─────────── Reporting ───────────
		reports := adminGroup.Group("/reports")
		{
			reports.GET("/top-products", productController.TopProductsHandler(db))
			reports.GET("/pending", productController.PendingProductsHandler(db))
			reports.GET("/profit", productController.ProfitHandler(db))
		}
	}
}
