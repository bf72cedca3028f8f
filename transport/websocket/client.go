package websocket

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// Client is one active WebSocket connection bound to a session.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	session string
	send    chan []byte
}

func NewClient(hub *Hub, conn *websocket.Conn, session string) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		session: session,
		send:    make(chan []byte, 8),
	}
}

// Register adds the client to the hub.
func (that *Client) Register() {
	that.hub.register <- that
}

// ReadPump drains the connection until it closes. The page never sends
// game commands over the socket (those go through the REST API), so
// inbound frames only keep the connection alive.
func (that *Client) ReadPump() {
	defer func() {
		that.hub.unregister <- that
		that.conn.Close()
	}()

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := that.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// WritePump forwards snapshots from the hub to the peer and pings it
// periodically.
func (that *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		that.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
