package main

import (
	"log"

	"api/config"
	"api/database"
	"api/middleware"
	"api/realtime"
	v1 "api/routes/v1"
	"api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Init()
	database.InitDB()
	database.InitRedis()

	hub := realtime.NewHub()
	leaderboard := services.NewLeaderboardService(database.Redis)
	duelService := services.NewDuelService(hub, leaderboard)

	if config.ExpirySweepEnabled {
		duelService.StartExpirySweeper()
	}

	middleware.UpdateSystemMetrics()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	v1.Register(r, duelService, hub)

	log.Printf("Listening on :%s", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
