package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	r := NewRoom("room-abc123", "salon", "conn-1", 10)

	assert.Equal(t, []string{"conn-1"}, r.Members)
	assert.True(t, r.IsHost("conn-1"))
	assert.False(t, r.Ready["conn-1"])
	assert.False(t, r.Game.Started)
}

func TestAddRemoveMember(t *testing.T) {
	r := NewRoom("room-abc123", "salon", "conn-1", 10)

	r.AddMember("conn-2")
	r.AddMember("conn-2") // idempotent
	assert.Equal(t, []string{"conn-1", "conn-2"}, r.Members)

	assert.True(t, r.RemoveMember("conn-1"))
	assert.False(t, r.RemoveMember("conn-1"))
	assert.Equal(t, []string{"conn-2"}, r.Members)
	assert.NotContains(t, r.Ready, "conn-1")
	assert.False(t, r.Empty())

	r.RemoveMember("conn-2")
	assert.True(t, r.Empty())
}

func TestPromoteNextHost(t *testing.T) {
	r := NewRoom("room-abc123", "salon", "conn-1", 10)
	r.AddMember("conn-2")
	r.AddMember("conn-3")

	r.RemoveMember("conn-1")
	r.PromoteNextHost()
	assert.Equal(t, "conn-2", r.HostID, "join order decides succession")
}

func TestToggleReady(t *testing.T) {
	r := NewRoom("room-abc123", "salon", "conn-1", 10)

	r.ToggleReady("conn-1")
	assert.True(t, r.Ready["conn-1"])
	r.ToggleReady("conn-1")
	assert.False(t, r.Ready["conn-1"])

	r.ToggleReady("stranger")
	assert.NotContains(t, r.Ready, "stranger")
}

func TestCanStart(t *testing.T) {
	r := NewRoom("room-abc123", "salon", "conn-1", 10)
	r.ToggleReady("conn-1")
	assert.False(t, r.CanStart(2), "one ready player is not enough")

	r.AddMember("conn-2")
	assert.False(t, r.CanStart(2), "every member must be ready")

	r.ToggleReady("conn-2")
	assert.True(t, r.CanStart(2))
}

func TestResetGame(t *testing.T) {
	r := NewRoom("room-abc123", "salon", "conn-1", 5)
	r.AddMember("conn-2")
	r.ToggleReady("conn-1")
	r.ToggleReady("conn-2")
	require.NoError(t, r.Game.Start())
	r.Game.CommitWord("zeynep", "kitap")

	r.ResetGame()

	assert.False(t, r.Game.Started)
	assert.Equal(t, 0, r.Game.Round)
	assert.Equal(t, 5, r.Game.MaxRounds, "round limit survives the reset")
	assert.Empty(t, r.Game.Scores)
	assert.Equal(t, map[string]bool{"conn-1": false, "conn-2": false}, r.Ready)
}
