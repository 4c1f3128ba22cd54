package words

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to vocabulary words
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	words := r.Group("/words")
	words.Use(middleware.AuthMiddleware())
	{
		words.GET("/", GetUserWords)
		words.POST("/", CreateWord)
		words.POST("/import", ImportWordsExcel)
	}
}
