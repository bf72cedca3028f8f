package websocket

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Workflow-Manager-admin/tic-tac-toe-web-game-7731-7806/internal/entity"
)

// envelope is a payload addressed to every client of one session.
type envelope struct {
	session string
	payload []byte
}

// Hub maintains the set of active clients grouped by session and fans
// game snapshots out to them. All map access happens inside Run.
type Hub struct {
	logger *slog.Logger

	rooms      map[string]map[*Client]bool
	broadcast  chan envelope
	register   chan *Client
	unregister chan *Client
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,

		rooms:      make(map[string]map[*Client]bool),
		broadcast:  make(chan envelope, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run handles client registration and broadcasts until the context ends.
func (that *Hub) Run(ctx context.Context) {
	log := that.logger.With("component", "ws-hub")

	for {
		select {
		case <-ctx.Done():
			log.Info("hub shutting down")
			return
		case client := <-that.register:
			room, ok := that.rooms[client.session]
			if !ok {
				room = make(map[*Client]bool)
				that.rooms[client.session] = room
			}
			room[client] = true
			log.Debug("client registered", "session", client.session)
		case client := <-that.unregister:
			if room, ok := that.rooms[client.session]; ok {
				if _, ok := room[client]; ok {
					delete(room, client)
					close(client.send)
					if len(room) == 0 {
						delete(that.rooms, client.session)
					}
					log.Debug("client unregistered", "session", client.session)
				}
			}
		case message := <-that.broadcast:
			for client := range that.rooms[message.session] {
				select {
				case client.send <- message.payload:
				default:
					// slow client, drop it
					close(client.send)
					delete(that.rooms[message.session], client)
				}
			}
		}
	}
}

// BroadcastGame serializes the game snapshot and sends it to every client
// watching the session.
func (that *Hub) BroadcastGame(sessionID string, game *entity.Game) {
	payload, err := json.Marshal(game)
	if err != nil {
		that.logger.Error("failed to marshal game for broadcast", "error", err)
		return
	}

	that.broadcast <- envelope{session: sessionID, payload: payload}
}
