package server

import (
	"context"
	"sync"

	"github.com/bucket-sort/ratingd/internal/domains/dtos"
	"github.com/gorilla/websocket"
)

// feedHub tracks the websocket connection of each subscribed player and
// implements ratings.Notifier for in-process deployments.
type feedHub struct {
	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

func newFeedHub() *feedHub {
	return &feedHub{
		conns: make(map[string]*websocket.Conn),
	}
}

// subscribe registers a player's connection, closing any previous one.
func (h *feedHub) subscribe(playerId string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if previous, ok := h.conns[playerId]; ok {
		previous.Close()
	}
	h.conns[playerId] = conn
}

func (h *feedHub) unsubscribe(playerId string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[playerId] == conn {
		delete(h.conns, playerId)
	}
}

func (h *feedHub) NotifyRatingUpdate(_ context.Context, update dtos.RatingUpdateNotification) error {
	h.mu.Lock()
	conn, ok := h.conns[update.PlayerId]
	h.mu.Unlock()
	if !ok {
		return nil
	}
	return conn.WriteJSON(update)
}
