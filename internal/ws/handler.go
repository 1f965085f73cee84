package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/cueline/backend/internal/config"
	"github.com/cueline/backend/internal/presets"
	"github.com/cueline/backend/internal/trajectory"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin is checked by the CORS layer before upgrade
	},
}

// Client represents one connected aiming session.
type Client struct {
	conn    *websocket.Conn
	send    chan []byte
	lastSeq int64
}

// WSMessage is the envelope for both directions of the aiming channel.
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// AimFrame is one drag-gesture update from the client. Seq increases per
// update within a session so stale results can be discarded client-side.
type AimFrame struct {
	Seq         int64           `json:"seq"`
	Origin      trajectory.Vec2 `json:"origin"`
	AngleDeg    float64         `json:"angle_degrees"`
	Force       float64         `json:"force"`
	TableWidth  float64         `json:"table_width"`
	TableHeight float64         `json:"table_height"`
	MaxBounces  *int            `json:"max_bounces,omitempty"`
}

// PathFrame is the server's answer to an AimFrame.
type PathFrame struct {
	Seq          int64                 `json:"seq"`
	Points       trajectory.Path       `json:"points"`
	Guide        trajectory.Path       `json:"guide"`
	BouncePoints trajectory.Path       `json:"bounce_points"`
	Contacts     []int                 `json:"contacts"`
	Reason       trajectory.StopReason `json:"reason"`
}

// HandleAiming upgrades the connection and serves one aiming session.
// Frames are read and answered by a single goroutine, so a newer aim
// update naturally supersedes any older one (last-write-wins); worst-case
// cost per frame is bounded by the point cap, so no cancellation is needed.
func HandleAiming(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] Upgrade failed: %v", err)
			return
		}

		client := &Client{
			conn: conn,
			send: make(chan []byte, 16),
		}
		go client.writePump()
		client.readPump(c.Request.Context(), db, rdb, cfg)
	}
}

// readPump consumes aim frames until the client disconnects.
func (c *Client) readPump(ctx context.Context, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	defer func() {
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Read error: %v", err)
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.sendError("malformed message")
			continue
		}

		switch msg.Type {
		case "aim":
			var frame AimFrame
			if err := json.Unmarshal(msg.Data, &frame); err != nil {
				c.sendError("malformed aim frame")
				continue
			}
			c.handleAim(ctx, frame, db, rdb, cfg)
		case "ping":
			// Client keepalive; nothing to do.
		default:
			c.sendError("unknown message type: " + msg.Type)
		}
	}
}

func (c *Client) handleAim(ctx context.Context, frame AimFrame, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	// Frames can arrive out of order after client-side retries; keep only
	// the newest.
	if frame.Seq < c.lastSeq {
		return
	}
	c.lastSeq = frame.Seq

	maxBounces := cfg.DefaultMaxBounces
	if frame.MaxBounces != nil {
		maxBounces = *frame.MaxBounces
	}

	sim := trajectory.NewSimulator(presets.ConfigOrDefault(ctx, db, rdb, cfg))
	pred := sim.Predict(trajectory.LaunchRequest{
		Origin:       frame.Origin,
		AngleDegrees: frame.AngleDeg,
		Force:        frame.Force,
		TableWidth:   frame.TableWidth,
		TableHeight:  frame.TableHeight,
		MaxBounces:   maxBounces,
	})

	resp := PathFrame{
		Seq:          frame.Seq,
		Points:       pred.Points,
		Guide:        trajectory.SmoothTrajectory(pred.Points, trajectory.DefaultSmoothingSpacing),
		BouncePoints: trajectory.ExtractBouncePoints(pred.Points, trajectory.DefaultBounceAngleThreshold),
		Contacts:     pred.Contacts,
		Reason:       pred.Reason,
	}

	data, err := json.Marshal(WSMessage{Type: "path", Data: mustMarshal(resp)})
	if err != nil {
		log.Printf("[WS] Failed to marshal path frame: %v", err)
		return
	}

	select {
	case c.send <- data:
	default:
		// Buffer full: the client is behind, newer frames will follow.
		log.Printf("[WS] Dropping path frame seq=%d (send buffer full)", frame.Seq)
	}
}

// writePump writes messages to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Channel closed — connection is being cleaned up.
				// Best-effort close frame; ignore errors.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("[WS] Write error: %v", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// sendError sends an error message to the client
func (c *Client) sendError(message string) {
	data, _ := json.Marshal(map[string]interface{}{
		"type":    "error",
		"message": message,
	})
	select {
	case c.send <- data:
	default:
	}
}

func mustMarshal(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WS] Marshal error: %v", err)
		return json.RawMessage("{}")
	}
	return data
}
