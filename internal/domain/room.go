package domain

import "time"

// Room groups connected players around one Game. Members are connection ids
// kept in join order; host succession picks the first remaining member. The
// room is destroyed by its owner the moment the member list empties.
type Room struct {
	ID        string
	Name      string
	Members   []string
	HostID    string
	Ready     map[string]bool
	Game      *Game
	CreatedAt time.Time
}

// NewRoom creates a room with the creator as sole member and host
func NewRoom(id, name, creatorID string, maxRounds int) *Room {
	return &Room{
		ID:        id,
		Name:      name,
		Members:   []string{creatorID},
		HostID:    creatorID,
		Ready:     map[string]bool{creatorID: false},
		Game:      NewGame(maxRounds),
		CreatedAt: time.Now(),
	}
}

// HasMember reports whether a connection belongs to the room
func (r *Room) HasMember(connID string) bool {
	for _, id := range r.Members {
		if id == connID {
			return true
		}
	}
	return false
}

// AddMember appends a connection in join order with readiness cleared
func (r *Room) AddMember(connID string) {
	if r.HasMember(connID) {
		return
	}
	r.Members = append(r.Members, connID)
	r.Ready[connID] = false
}

// RemoveMember drops a connection and its readiness flag. It reports whether
// the member was present.
func (r *Room) RemoveMember(connID string) bool {
	for i, id := range r.Members {
		if id == connID {
			r.Members = append(r.Members[:i], r.Members[i+1:]...)
			delete(r.Ready, connID)
			return true
		}
	}
	return false
}

// Empty reports whether no members remain
func (r *Room) Empty() bool {
	return len(r.Members) == 0
}

// IsHost reports whether the connection is the room's host
func (r *Room) IsHost(connID string) bool {
	return r.HostID == connID
}

// PromoteNextHost makes the first remaining member host
func (r *Room) PromoteNextHost() {
	if !r.Empty() {
		r.HostID = r.Members[0]
	}
}

// ToggleReady flips a member's readiness flag
func (r *Room) ToggleReady(connID string) {
	if r.HasMember(connID) {
		r.Ready[connID] = !r.Ready[connID]
	}
}

// CanStart reports whether the game may begin: enough members and every
// single one of them ready
func (r *Room) CanStart(minPlayers int) bool {
	if len(r.Members) < minPlayers {
		return false
	}
	for _, id := range r.Members {
		if !r.Ready[id] {
			return false
		}
	}
	return true
}

// ResetGame replaces the game wholesale and clears all readiness flags.
// Scores and round progress are lost; this is the disruption policy for a
// mid-game departure.
func (r *Room) ResetGame() {
	r.Game = NewGame(r.Game.MaxRounds)
	r.Ready = make(map[string]bool, len(r.Members))
	for _, id := range r.Members {
		r.Ready[id] = false
	}
}
