// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hackforge/hackslot/status"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The event frontend is served from a different origin in dev
	CheckOrigin: func(r *http.Request) bool { return true },
}

type FeedHandler struct {
	bc *status.Broadcaster
}

func NewFeedHandler(bc *status.Broadcaster) *FeedHandler {
	return &FeedHandler{bc: bc}
}

// Live handles GET /problems/live
// Upgrades to a websocket and streams capacity snapshots: the latest
// state immediately on connect, then a fresh snapshot after every
// committed claim. The client subscribes on mount and simply closes the
// socket on teardown.
func (h *FeedHandler) Live(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response
		slog.Warn("feed upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	snapshots, cancel := h.bc.Subscribe()
	defer cancel()

	// Reader goroutine: consume control frames, detect client close
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer conn.Close()

	for {
		select {
		case snaps, ok := <-snapshots:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(snaps); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
