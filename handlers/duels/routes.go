package duels

import (
	"api/middleware"
	"api/realtime"
	"api/services"

	"github.com/gin-gonic/gin"
)

var (
	svc *services.DuelService
	hub *realtime.Hub
)

// RegisterRoutes registers all routes related to duels
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, duelService *services.DuelService, eventHub *realtime.Hub) {
	svc = duelService
	hub = eventHub

	// Event stream authenticates via query token, outside the middleware chain
	r.GET("/duels/ws", DuelWebSocket)

	duels := r.Group("/duels")
	duels.Use(middleware.AuthMiddleware())
	{
		// Challenge lifecycle routes
		duels.POST("/", CreateDuel)
		duels.GET("/", GetUserDuels)
		duels.GET("/leaderboard", GetDuelLeaderboard)
		duels.GET("/:id", GetDuel)
		duels.PUT("/:id/accept", AcceptDuel)
		duels.PUT("/:id/decline", DeclineDuel)

		// Answer routes
		duels.POST("/answer", SubmitAnswer)
		duels.GET("/:id/responses", GetDuelResponses)

		// Export routes
		duels.GET("/:id/export", ExportDuelDataExcel)
	}
}
