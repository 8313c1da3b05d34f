package domain

import "errors"

// Domain errors
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrNotHost            = errors.New("only the host can start the game")
	ErrNotEnoughPlayers   = errors.New("at least two players are needed to start")
	ErrPlayersNotReady    = errors.New("all players must be ready")
	ErrGameAlreadyStarted = errors.New("game already started")
	ErrGameNotStarted     = errors.New("game has not started")
	ErrGameFinished       = errors.New("game already finished")
)
