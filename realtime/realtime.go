package realtime

import (
	"log"
	"sync"

	"api/metrics"
	"api/models"

	"github.com/gorilla/websocket"
)

// DuelEvent is one lifecycle event pushed to a participant's session
type DuelEvent struct {
	Event string       `json:"event"`
	Duel  *models.Duel `json:"duel"`
}

type outbound struct {
	event      DuelEvent
	recipients []string
}

// Hub fans duel events out to the participants' websocket connections,
// keyed by user ID. It implements the duel service's notifier boundary:
// sends never block the caller and never report failure upstream — a client
// that missed an event reconciles by re-reading the duel.
type Hub struct {
	userClients map[string]map[*websocket.Conn]bool // Map of user ID to connected clients
	broadcast   chan outbound                       // Broadcast channel for events
	mutex       sync.Mutex                          // Mutex to protect userClients map
}

// NewHub creates a hub and starts its broadcast pump
func NewHub() *Hub {
	h := &Hub{
		userClients: make(map[string]map[*websocket.Conn]bool),
		broadcast:   make(chan outbound, 256),
	}
	go h.handleBroadcast()
	return h
}

// RegisterClient adds a WebSocket client for a specific user
func (h *Hub) RegisterClient(userID string, conn *websocket.Conn) {
	h.mutex.Lock()
	if h.userClients[userID] == nil {
		h.userClients[userID] = make(map[*websocket.Conn]bool)
	}
	h.userClients[userID][conn] = true
	h.mutex.Unlock()
	metrics.WebsocketConnections.Inc()
}

// UnregisterClient removes a WebSocket client for a specific user
func (h *Hub) UnregisterClient(userID string, conn *websocket.Conn) {
	h.mutex.Lock()
	if clients, exists := h.userClients[userID]; exists {
		if clients[conn] {
			delete(clients, conn)
			metrics.WebsocketConnections.Dec()
		}
		if len(clients) == 0 {
			delete(h.userClients, userID)
		}
	}
	h.mutex.Unlock()
}

// Notify queues a duel event for the recipients. Fire-and-forget: when the
// broadcast buffer is full the event is dropped and counted, never blocked on.
func (h *Hub) Notify(event string, duel *models.Duel, recipients []string) {
	select {
	case h.broadcast <- outbound{event: DuelEvent{Event: event, Duel: duel}, recipients: recipients}:
	default:
		metrics.NotificationsDropped.Inc()
	}
}

func (h *Hub) handleBroadcast() {
	for msg := range h.broadcast {
		h.mutex.Lock()
		for _, userID := range msg.recipients {
			clients, exists := h.userClients[userID]
			if !exists {
				metrics.NotificationsDropped.Inc()
				continue
			}
			for client := range clients {
				if err := client.WriteJSON(msg.event); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
					metrics.WebsocketConnections.Dec()
					metrics.NotificationsDropped.Inc()
					continue
				}
				metrics.NotificationsSent.WithLabelValues(msg.event.Event).Inc()
			}
		}
		h.mutex.Unlock()
	}
}
