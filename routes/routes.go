package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront API.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupOrderRoutes(r, db)
}
