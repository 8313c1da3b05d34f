package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordchain/internal/app"
	"wordchain/internal/config"
	"wordchain/internal/store"
)

type nopOracle struct{}

func (nopOracle) Lookup(context.Context, string) bool { return false }

func newTestServer(t *testing.T) (*Server, *app.RoomHub) {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0", Env: "production"},
		Game: config.GameConfig{
			MaxRounds:      10,
			RoundInterval:  30 * time.Second,
			MinPlayers:     2,
			RoomCodeLength: 6,
		},
	}
	hub := app.NewRoomHub(cfg.Game, nopOracle{}, store.NewMemoryStore(), zerolog.Nop())
	t.Cleanup(hub.Close)
	return NewServer(cfg, hub, zerolog.Nop()), hub
}

func doGet(srv *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	srv.server.Handler.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doGet(srv, "/api/health")
	assert.Equal(t, 200, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestStats(t *testing.T) {
	srv, hub := newTestServer(t)
	hub.CreateRoom("conn-1", "salon")

	w := doGet(srv, "/api/stats")
	assert.Equal(t, 200, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ActiveRooms)
	assert.Equal(t, 0, resp.ConnectedClients)
}

func TestRooms(t *testing.T) {
	srv, hub := newTestServer(t)
	hub.CreateRoom("conn-1", "salon")

	w := doGet(srv, "/api/rooms")
	assert.Equal(t, 200, w.Code)

	var resp RoomsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "salon", resp.Rooms[0].Name)
	assert.False(t, resp.Rooms[0].IsGameStarted)
	assert.Equal(t, 10, resp.Rooms[0].TotalRounds)
}
