package app

import (
	"context"

	"wordchain/internal/domain"
)

// Store is the persistence collaborator for room snapshots. Writes are
// full-snapshot and last-write-wins; a failed load at startup must leave the
// hub running with an empty room set.
type Store interface {
	SaveAll(ctx context.Context, rooms []domain.RoomSnapshot) error
	LoadAll(ctx context.Context) ([]domain.RoomSnapshot, error)
	Close() error
}
