package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wordchain/internal/domain"
)

// HealthResponse is the response for the health check
type HealthResponse struct {
	Status string `json:"status"`
}

// StatsResponse is the response for the stats endpoint
type StatsResponse struct {
	ActiveRooms      int `json:"activeRooms"`
	ConnectedClients int `json:"connectedClients"`
}

// RoomsResponse is the response for the lobby listing
type RoomsResponse struct {
	Rooms []domain.RoomSummary `json:"rooms"`
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(c *gin.Context) {
	rooms, clients := s.hub.Stats()
	c.JSON(http.StatusOK, StatsResponse{
		ActiveRooms:      rooms,
		ConnectedClients: clients,
	})
}

// handleRooms handles GET /api/rooms: the same summary the rooms_update
// broadcast carries, for clients that land on the lobby fresh
func (s *Server) handleRooms(c *gin.Context) {
	c.JSON(http.StatusOK, RoomsResponse{Rooms: s.hub.Summaries()})
}
