package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Training struct {
	ID              uuid.UUID
	StartsAt        time.Time
	MaxParticipants int
	Participants    []uuid.UUID
	// Waitlist is strictly FIFO: departures promote its head.
	Waitlist []uuid.UUID
	// Coach is empty for self-organized slots.
	Coach string

	Version int64
}

func (t Training) HasParticipant(userID uuid.UUID) bool {
	for _, id := range t.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

func (t Training) InWaitlist(userID uuid.UUID) bool {
	for _, id := range t.Waitlist {
		if id == userID {
			return true
		}
	}
	return false
}

func (t Training) IsFull() bool {
	return len(t.Participants) >= t.MaxParticipants
}

// CostPerPlayer splits the base court price between current
// participants, rounding up.
func (t Training) CostPerPlayer(baseCost int) int {
	n := len(t.Participants)
	if n == 0 {
		n = 1
	}
	return int(math.Ceil(float64(baseCost) / float64(n)))
}

// TrainingJoinStatus is the discriminated outcome of a join attempt.
// The old client silently swallowed full/duplicate joins; callers here
// can tell them apart.
type TrainingJoinStatus string

const (
	TrainingJoined        TrainingJoinStatus = "joined"
	TrainingAlreadyMember TrainingJoinStatus = "already_member"
	TrainingIsFull        TrainingJoinStatus = "full"
	TrainingQueued        TrainingJoinStatus = "queued"
	TrainingAlreadyQueued TrainingJoinStatus = "already_queued"
)
