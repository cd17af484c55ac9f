package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/orchestrators/gacha"
)

// sendBuffer bounds the per-client queue. The frame loop must never
// block on a slow reader, so a full queue drops frames for that client.
const sendBuffer = 256

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type subscription struct {
	profileID string
	stage     catalog.Stage
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

func (c *wsClient) writeLoop() {
	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			break
		}
	}
	_ = c.conn.Close()
}

// Hub fans roulette events out to WebSocket subscribers. It implements
// gacha.EventSink.
type Hub struct {
	mu      sync.Mutex
	clients map[*wsClient]subscription
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{clients: make(map[*wsClient]subscription)}
}

var _ gacha.EventSink = (*Hub)(nil)

// Publish sends the event to every subscriber watching its profile and
// stage. Never blocks.
func (h *Hub) Publish(event gacha.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client, sub := range h.clients {
		if sub.profileID != event.ProfileID || sub.stage != event.Stage {
			continue
		}
		select {
		case client.send <- payload:
		default:
		}
	}
}

// Count returns the number of connected subscribers
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(client *wsClient, sub subscription) {
	h.mu.Lock()
	h.clients[client] = sub
	h.mu.Unlock()
}

func (h *Hub) remove(client *wsClient) {
	h.mu.Lock()
	_, ok := h.clients[client]
	delete(h.clients, client)
	h.mu.Unlock()

	if ok {
		close(client.send)
	}
}

// streamRoll upgrades the connection and streams one stage's frame,
// tick, and landed events until the client hangs up.
func (h *Handler) streamRoll(c *gin.Context) {
	stage := c.Param("stage")
	if !catalog.IsValidStage(stage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown stage"})
		return
	}
	profileID := c.Query("profileId")
	if profileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profileId required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	h.hub.add(client, subscription{profileID: profileID, stage: catalog.Stage(stage)})
	go client.writeLoop()

	slog.Info("roll stream connected", "profile_id", profileID, "stage", stage)

	// incoming messages are ignored; reading detects the hangup
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.hub.remove(client)
	slog.Info("roll stream disconnected", "profile_id", profileID, "stage", stage)
}
