package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"tenanta/backend/internal/eventhub"
	"tenanta/backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten in production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and attaches it to the event hub.
// Every registry mutation from then on is pushed to this client.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &eventhub.WebSocketClient{
		ClientID: uuid.New().String(),
		Conn:     conn,
		Hub:      h.Hub,
		Send:     make(chan models.Event, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
