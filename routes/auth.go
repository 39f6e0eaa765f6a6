package routes

import (
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.SignUp(db))
		authGroup.POST("/signin", auth.SignIn(db))
		authGroup.POST("/refresh", auth.Refresh(db))
	}
}
