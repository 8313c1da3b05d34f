package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"wordchain/internal/config"
	"wordchain/internal/dict"
	"wordchain/internal/domain"
)

// roomIDChars are the characters room ids are built from
const roomIDChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// ClientConnection represents a connected client
type ClientConnection interface {
	Send(message interface{}) error
	Close() error
}

// RoomHub is the room lifecycle manager: it owns every room, the connected
// clients and their display names, the round scheduler, the persistence
// collaborator and the dictionary oracle. A single mutex serializes all
// room and game mutations; only the dictionary lookup runs outside it.
type RoomHub struct {
	mu        sync.Mutex
	rooms     map[string]*domain.Room
	clients   map[string]ClientConnection
	usernames map[string]string

	scheduler *Scheduler
	store     Store
	oracle    dict.Oracle
	cfg       config.GameConfig
	logger    zerolog.Logger
}

// NewRoomHub creates an empty hub
func NewRoomHub(cfg config.GameConfig, oracle dict.Oracle, store Store, logger zerolog.Logger) *RoomHub {
	return &RoomHub{
		rooms:     make(map[string]*domain.Room),
		clients:   make(map[string]ClientConnection),
		usernames: make(map[string]string),
		scheduler: NewScheduler(),
		store:     store,
		oracle:    oracle,
		cfg:       cfg,
		logger:    logger,
	}
}

// Restore loads persisted rooms into the hub. Any embedded game state is
// rehydrated as a fresh default game: round progress and scores are not
// durable across restarts. A failed load leaves the hub empty and the
// server running.
func (h *RoomHub) Restore(ctx context.Context) {
	snaps, err := h.store.LoadAll(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load room snapshots, starting empty")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, snap := range snaps {
		h.rooms[snap.ID] = domain.RoomFromSnapshot(snap, h.cfg.MaxRounds)
	}
	if len(snaps) > 0 {
		h.logger.Info().Int("rooms", len(snaps)).Msg("restored room snapshots")
	}
}

// RegisterClient registers a client connection under its connection id
func (h *RoomHub) RegisterClient(connID string, client ClientConnection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[connID] = client
}

// SetUsername records the display name for a connection
func (h *RoomHub) SetUsername(connID, username string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.usernames[connID] = username
	h.sendToLocked(connID, domain.NewEvent(domain.EventUsernameSet, username))
	h.sendToLocked(connID, domain.NewEvent(domain.EventYourID, connID))
}

// CreateRoom creates a room with the caller as sole member and host
func (h *RoomHub) CreateRoom(connID, name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	roomID, err := h.newRoomIDLocked()
	if err != nil {
		h.logger.Error().Err(err).Msg("room id generation failed")
		h.sendToLocked(connID, domain.NewEvent(domain.EventErrorMsg, "Could not create room"))
		return
	}
	if name == "" {
		name = roomID
	}

	room := domain.NewRoom(roomID, name, connID, h.cfg.MaxRounds)
	h.rooms[roomID] = room
	h.logger.Info().Str("roomId", roomID).Str("connId", connID).Msg("room created")

	h.persistLocked(context.Background())
	h.sendToLocked(connID, domain.NewEvent(domain.EventRoomCreated, roomID))
	h.broadcastRoomLocked(room, domain.NewEvent(domain.EventRoomUpdate, h.roomStateLocked(room)))
	h.broadcastAllLocked(domain.NewEvent(domain.EventRoomsUpdate, h.summariesLocked()))
}

// JoinRoom appends the caller to an existing room with readiness cleared
func (h *RoomHub) JoinRoom(connID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		h.sendToLocked(connID, domain.NewEvent(domain.EventErrorMsg, "Room not found"))
		return
	}
	room.AddMember(connID)

	h.persistLocked(context.Background())
	h.broadcastRoomLocked(room, domain.NewEvent(domain.EventRoomUpdate, h.roomStateLocked(room)))
	h.broadcastAllLocked(domain.NewEvent(domain.EventRoomsUpdate, h.summariesLocked()))
}

// ToggleReady flips the caller's readiness flag. Unknown rooms are a no-op.
func (h *RoomHub) ToggleReady(connID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		return
	}
	room.ToggleReady(connID)

	h.persistLocked(context.Background())
	h.broadcastRoomLocked(room, domain.NewEvent(domain.EventRoomUpdate, h.roomStateLocked(room)))
	h.broadcastAllLocked(domain.NewEvent(domain.EventRoomsUpdate, h.summariesLocked()))
}

// StartGame begins the game. Only the host may start, and only once every
// member of a big enough room is ready; anything else is surfaced to the
// caller and mutates nothing.
func (h *RoomHub) StartGame(connID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		h.sendToLocked(connID, domain.NewEvent(domain.EventErrorMsg, "Room not found"))
		return
	}
	if !room.IsHost(connID) {
		h.sendToLocked(connID, domain.NewEvent(domain.EventErrorMsg, domain.ErrNotHost.Error()))
		return
	}
	if !room.CanStart(h.cfg.MinPlayers) {
		msg := domain.ErrPlayersNotReady.Error()
		if len(room.Members) < h.cfg.MinPlayers {
			msg = domain.ErrNotEnoughPlayers.Error()
		}
		h.sendToLocked(connID, domain.NewEvent(domain.EventErrorMsg, msg))
		return
	}
	if err := room.Game.Start(); err != nil {
		h.sendToLocked(connID, domain.NewEvent(domain.EventErrorMsg, err.Error()))
		return
	}

	h.logger.Info().Str("roomId", roomID).Int("players", len(room.Members)).Msg("game started")

	h.persistLocked(context.Background())
	payload := h.roundPayloadLocked(room)
	h.broadcastRoomLocked(room, domain.NewEvent(domain.EventGameStarted, payload))
	h.broadcastRoomLocked(room, domain.NewEvent(domain.EventRoundEnd, payload))

	h.scheduler.Schedule(roomID, h.cfg.RoundInterval, func() { h.advanceRound(roomID) })
}

// advanceRound is the scheduled round-timer callback: it moves the game to
// the next round regardless of player activity, broadcasts the new round,
// and either reschedules itself or arms the final game-over broadcast.
func (h *RoomHub) advanceRound(roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok || !room.Game.Started {
		return
	}
	if err := room.Game.AdvanceRound(); err != nil {
		return
	}

	h.persistLocked(context.Background())
	h.broadcastRoomLocked(room, domain.NewEvent(domain.EventRoundEnd, h.roundPayloadLocked(room)))

	if room.Game.Over() {
		// let the last round's words stay visible for one more interval
		// before revealing final results
		h.scheduler.Schedule(roomID, h.cfg.RoundInterval, func() { h.finishGame(roomID) })
		return
	}
	h.scheduler.Schedule(roomID, h.cfg.RoundInterval, func() { h.advanceRound(roomID) })
}

// finishGame broadcasts the single final game_over for a finished game
func (h *RoomHub) finishGame(roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		return
	}
	h.logger.Info().Str("roomId", roomID).Msg("game over")
	h.broadcastRoomLocked(room, domain.NewEvent(domain.EventGameOver, room.Game.State()))
}

// SendMessage relays a chat message to the room
func (h *RoomHub) SendMessage(connID, roomID, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		return
	}
	h.broadcastRoomLocked(room, domain.NewEvent(domain.EventNewMessage, domain.ChatMessage{
		Username: h.usernames[connID],
		Message:  message,
	}))
}

// LeaveRoom removes the caller from a room. A departure after round 1 resets
// the game wholesale; a departing host closes the room for everyone; an
// emptied room is destroyed.
func (h *RoomHub) LeaveRoom(connID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		return
	}
	wasHost := room.IsHost(connID)
	room.RemoveMember(connID)

	if !room.Empty() && room.Game.Round > 1 {
		room.ResetGame()
		h.scheduler.Cancel(roomID)
		h.logger.Info().Str("roomId", roomID).Msg("game reset after mid-game departure")
		h.broadcastRoomLocked(room, domain.NewEvent(domain.EventGameReset, h.roomStateLocked(room)))
	}

	if room.Empty() {
		h.destroyRoomLocked(roomID)
	} else if wasHost {
		h.broadcastRoomLocked(room, domain.NewEvent(domain.EventRoomClosed, nil))
		h.destroyRoomLocked(roomID)
		h.persistLocked(context.Background())
		h.broadcastAllLocked(domain.NewEvent(domain.EventRoomsUpdate, h.summariesLocked()))
		return
	} else {
		room.PromoteNextHost()
	}

	h.persistLocked(context.Background())
	if _, alive := h.rooms[roomID]; alive {
		h.broadcastRoomLocked(room, domain.NewEvent(domain.EventRoomUpdate, h.roomStateLocked(room)))
	}
	h.broadcastAllLocked(domain.NewEvent(domain.EventRoomsUpdate, h.summariesLocked()))
}

// Disconnect removes a closed connection from every room it belongs to.
// Unlike an explicit leave there is no mid-game reset and no room-closed
// broadcast: emptied rooms are destroyed and the first remaining member
// inherits an orphaned host seat.
func (h *RoomHub) Disconnect(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, connID)
	delete(h.usernames, connID)

	for roomID, room := range h.rooms {
		if !room.RemoveMember(connID) {
			continue
		}
		if room.Empty() {
			h.destroyRoomLocked(roomID)
			continue
		}
		if room.HostID == connID {
			room.PromoteNextHost()
		}
	}

	h.persistLocked(context.Background())
	h.broadcastAllLocked(domain.NewEvent(domain.EventRoomsUpdate, h.summariesLocked()))
	h.logger.Info().Str("connId", connID).Msg("client disconnected")
}

// Summaries returns the lobby view of every room
func (h *RoomHub) Summaries() []domain.RoomSummary {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.summariesLocked()
}

// Stats returns the number of rooms and connected clients
func (h *RoomHub) Stats() (rooms, clients int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms), len(h.clients)
}

// Close stops all timers and drops every client connection
func (h *RoomHub) Close() {
	h.scheduler.Stop()

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, client := range h.clients {
		client.Close()
	}
	h.clients = make(map[string]ClientConnection)
}

// destroyRoomLocked removes a room and cancels its pending timer
func (h *RoomHub) destroyRoomLocked(roomID string) {
	delete(h.rooms, roomID)
	h.scheduler.Cancel(roomID)
	h.logger.Info().Str("roomId", roomID).Msg("room destroyed")
}

// persistLocked writes a full snapshot of every room. Persistence failures
// are logged and never interrupt gameplay.
func (h *RoomHub) persistLocked(ctx context.Context) {
	snaps := make([]domain.RoomSnapshot, 0, len(h.rooms))
	for _, room := range h.rooms {
		snaps = append(snaps, room.Snapshot())
	}
	if err := h.store.SaveAll(ctx, snaps); err != nil {
		h.logger.Error().Err(err).Msg("failed to persist room snapshots")
	}
}

// sendToLocked delivers an event to one connection if it is still attached
func (h *RoomHub) sendToLocked(connID string, event *domain.Event) {
	if client, ok := h.clients[connID]; ok {
		if err := client.Send(event); err != nil {
			h.logger.Debug().Str("connId", connID).Err(err).Msg("failed to send to client")
		}
	}
}

// broadcastRoomLocked delivers an event to every member of a room
func (h *RoomHub) broadcastRoomLocked(room *domain.Room, event *domain.Event) {
	for _, connID := range room.Members {
		h.sendToLocked(connID, event)
	}
}

// broadcastAllLocked delivers an event to every connected client
func (h *RoomHub) broadcastAllLocked(event *domain.Event) {
	for connID := range h.clients {
		h.sendToLocked(connID, event)
	}
}

// roomStateLocked builds the member-facing view of a room
func (h *RoomHub) roomStateLocked(room *domain.Room) domain.RoomStatePayload {
	return domain.RoomStatePayload{
		ID:      room.ID,
		Name:    room.Name,
		Players: h.playersLocked(room),
		HostID:  room.HostID,
	}
}

// roundPayloadLocked builds the game_started / round_end payload
func (h *RoomHub) roundPayloadLocked(room *domain.Room) domain.RoundPayload {
	return domain.RoundPayload{
		GameStatePayload: room.Game.State(),
		RoundTime:        int(h.cfg.RoundInterval.Seconds()),
		Players:          h.playersLocked(room),
		CurrentRound:     room.Game.Round,
	}
}

// playersLocked builds the member list with display names and scores
func (h *RoomHub) playersLocked(room *domain.Room) []domain.PlayerState {
	players := make([]domain.PlayerState, 0, len(room.Members))
	for _, connID := range room.Members {
		name := h.usernames[connID]
		if name == "" {
			name = connID
		}
		_, active := h.clients[connID]
		players = append(players, domain.PlayerState{
			ID:       connID,
			Name:     name,
			IsReady:  room.Ready[connID],
			Score:    room.Game.Scores[name],
			IsActive: active,
		})
	}
	return players
}

// summariesLocked builds the lobby view of every room
func (h *RoomHub) summariesLocked() []domain.RoomSummary {
	summaries := make([]domain.RoomSummary, 0, len(h.rooms))
	for _, room := range h.rooms {
		summaries = append(summaries, domain.RoomSummary{
			ID:            room.ID,
			Name:          room.Name,
			Players:       h.playersLocked(room),
			IsGameStarted: room.Game.Started,
			CurrentRound:  room.Game.Round,
			TotalRounds:   room.Game.MaxRounds,
		})
	}
	return summaries
}

// newRoomIDLocked generates a unique room id of the form room-xxxxxx
func (h *RoomHub) newRoomIDLocked() (string, error) {
	length := h.cfg.RoomCodeLength
	if length <= 0 {
		length = 6
	}
	for attempts := 0; attempts < 10; attempts++ {
		b := make([]byte, length)
		rand.Read(b)
		code := make([]byte, length)
		for i := range code {
			code[i] = roomIDChars[int(b[i])%len(roomIDChars)]
		}
		id := "room-" + string(code)
		if _, exists := h.rooms[id]; !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique room id")
}
