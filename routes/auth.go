package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/auth"
	userControllers "github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/controllers/user"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", userControllers.RegisterUserHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))
		authGroup.POST("/refresh", auth.RefreshHandler(db))
		authGroup.POST("/access", auth.AccessTokenHandler(db))

		// Creating another administrator requires an administrator.
		authGroup.POST("/register-admin",
			middleware.ValidateToken, middleware.RequireAdmin,
			userControllers.RegisterAdminHandler(db))
	}
}
