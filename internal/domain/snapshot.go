package domain

// RoomSnapshot is the persisted form of a room. Timer handles and live
// connections are not part of it. The game snapshot is recorded for
// inspection but is rehydrated into a fresh default Game on load: round
// progress and scores do not survive a restart.
type RoomSnapshot struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Members []string        `json:"members"`
	HostID  string          `json:"host"`
	Ready   map[string]bool `json:"readyStates"`
	Game    *GameSnapshot   `json:"game,omitempty"`
}

// GameSnapshot is the serialized game state embedded in a room snapshot
type GameSnapshot struct {
	Round       int            `json:"round"`
	MaxRounds   int            `json:"maxRounds"`
	Started     bool           `json:"started"`
	FirstLetter string         `json:"currentFirstLetter"`
	LastLetter  string         `json:"currentLastLetter"`
	UsedWords   []string       `json:"usedWords"`
	Scores      map[string]int `json:"scores"`
}

// Snapshot builds the persistable view of the room
func (r *Room) Snapshot() RoomSnapshot {
	snap := RoomSnapshot{
		ID:      r.ID,
		Name:    r.Name,
		Members: append([]string(nil), r.Members...),
		HostID:  r.HostID,
		Ready:   make(map[string]bool, len(r.Ready)),
	}
	for id, ready := range r.Ready {
		snap.Ready[id] = ready
	}
	if r.Game != nil {
		snap.Game = &GameSnapshot{
			Round:       r.Game.Round,
			MaxRounds:   r.Game.MaxRounds,
			Started:     r.Game.Started,
			FirstLetter: r.Game.FirstLetter,
			LastLetter:  r.Game.LastLetter,
			UsedWords:   r.Game.UsedWordList(),
			Scores:      r.Game.ScoresCopy(),
		}
	}
	return snap
}

// RoomFromSnapshot rebuilds a room from its persisted form with a fresh
// default Game
func RoomFromSnapshot(snap RoomSnapshot, maxRounds int) *Room {
	room := &Room{
		ID:      snap.ID,
		Name:    snap.Name,
		Members: append([]string(nil), snap.Members...),
		HostID:  snap.HostID,
		Ready:   make(map[string]bool, len(snap.Ready)),
		Game:    NewGame(maxRounds),
	}
	for id, ready := range snap.Ready {
		room.Ready[id] = ready
	}
	return room
}
