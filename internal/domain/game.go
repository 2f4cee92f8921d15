package domain

import (
	"time"

	"github.com/google/uuid"
)

type GameStatus string

const (
	GameOpen GameStatus = "open"
	GameFull GameStatus = "full"
)

// GameSize is fixed: padel is played two versus two.
const GameSize = 4

type Game struct {
	ID           uuid.UUID
	StartsAt     time.Time
	CreatorID    uuid.UUID
	Participants []uuid.UUID
	MinLevel     float64
	MaxLevel     float64
	Status       GameStatus
	Description  string

	Version int64
}

func (g Game) HasParticipant(userID uuid.UUID) bool {
	for _, id := range g.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

func (g Game) SlotsLeft() int {
	return GameSize - len(g.Participants)
}

// LevelFits reports whether a player level falls inside the
// game's eligibility window.
func (g Game) LevelFits(level float64) bool {
	return level >= g.MinLevel && level <= g.MaxLevel
}

// GameAction is the affordance the shell renders next to an open game.
type GameAction string

const (
	GameActionJoined   GameAction = "joined"
	GameActionCanJoin  GameAction = "can_join"
	GameActionBadLevel GameAction = "bad_level"
)

func (g Game) ActionFor(viewer User) GameAction {
	switch {
	case g.HasParticipant(viewer.ID):
		return GameActionJoined
	case g.LevelFits(viewer.Level):
		return GameActionCanJoin
	default:
		return GameActionBadLevel
	}
}
