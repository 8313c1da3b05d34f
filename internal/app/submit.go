package app

import (
	"context"

	"wordchain/internal/domain"
)

// SubmitWord runs the full submission pipeline: structural validation
// against the current letter constraint and used-word set, then the
// dictionary lookup, then scoring. The lookup runs outside the hub lock so
// other events keep flowing during the (up to 4 second) wait; the game state
// read back afterwards may therefore have moved on, and is deliberately not
// re-validated before the commit.
func (h *RoomHub) SubmitWord(ctx context.Context, connID, roomID, word string) {
	h.mu.Lock()
	room, ok := h.rooms[roomID]
	if !ok {
		h.sendToLocked(connID, domain.NewEvent(domain.EventErrorMsg, "Room not found"))
		h.mu.Unlock()
		return
	}
	if !room.Game.Started {
		h.sendToLocked(connID, domain.NewEvent(domain.EventErrorMsg, domain.ErrGameNotStarted.Error()))
		h.mu.Unlock()
		return
	}

	username := h.usernames[connID]
	normalized := domain.Normalize(word)
	room.Game.EnsureScore(username)
	structOK := room.Game.CheckStructure(normalized)
	h.mu.Unlock()

	// the oracle is only consulted for structurally valid words; its
	// failures are downgraded to a rejection, never propagated
	accepted := false
	if structOK {
		accepted = h.oracle.Lookup(ctx, normalized)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok = h.rooms[roomID]
	if !ok {
		return
	}
	game := room.Game

	points := 0
	if structOK && accepted {
		points = game.CommitWord(username, normalized)
		h.logger.Debug().Str("roomId", roomID).Str("username", username).
			Str("word", normalized).Int("points", points).Msg("word accepted")
	}

	result := domain.SubmissionResult{
		Username:     username,
		Word:         normalized,
		Valid:        structOK,
		Points:       points,
		Round:        game.Round,
		RoundOver:    false,
		GameOver:     game.Over(),
		Scores:       game.ScoresCopy(),
		NextLetters:  [2]string{game.FirstLetter, game.LastLetter},
		Players:      h.playersLocked(room),
		CurrentRound: game.Round,
	}

	h.persistLocked(ctx)
	h.broadcastRoomLocked(room, domain.NewEvent(domain.EventWordResult, result))
	if game.Over() {
		h.broadcastRoomLocked(room, domain.NewEvent(domain.EventGameOver, game.State()))
	}
}
