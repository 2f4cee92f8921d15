package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

const (
	DefaultReliability = 5.0
	MaxReliability     = 5.0

	// Penalty applied when a player leaves a game less than
	// LateCancelWindow before the start.
	LateCancelPenalty = 0.5
	LateCancelWindow  = 4 * time.Hour
)

type User struct {
	ID           uuid.UUID
	Telegram     string
	Name         string
	Surname      string
	Level        float64
	Availability string
	Reliability  float64
	Role         Role

	MatchesPlayed     int
	TrainingsAttended int

	RegisteredAt time.Time

	Version int64
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName renders "Имя Ф." the way the roster lists show players.
func (u User) DisplayName() string {
	if u.Surname == "" {
		return u.Name
	}
	return u.Name + " " + string([]rune(u.Surname)[:1]) + "."
}

// Penalize lowers the reliability score, floored at zero.
func (u *User) Penalize(penalty float64) {
	u.Reliability -= penalty
	if u.Reliability < 0 {
		u.Reliability = 0
	}
}
