package duels

import (
	"log"
	"net/http"

	"api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// DuelWebSocket handles the per-user duel event stream. Browsers cannot set
// an Authorization header on websocket upgrades, so the token rides in the
// query string.
func DuelWebSocket(c *gin.Context) {
	token := c.Query("token")
	userID, err := middleware.ParseUserToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	hub.RegisterClient(userID, conn)
	defer func() {
		hub.UnregisterClient(userID, conn)
		conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			log.Printf("WebSocket read error: %v", err)
			break
		}
	}
}
