package model

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	NewGame          EventType = "new_game"
	WaitlistPromoted EventType = "waitlist_promoted"
)

type UserRole int

const (
	RoleAdmin UserRole = 1
	RoleUser  UserRole = 2
)

type User struct {
	ID        int
	FirstName string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time

	Role UserRole

	// ClubUserID links the chat account to a club member; nil until
	// the user runs /me with their handle.
	ClubUserID *uuid.UUID

	Subscriptions []EventType
}

func (u User) Linked() bool {
	return u.ClubUserID != nil
}
