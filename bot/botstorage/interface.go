package botstorage

import (
	"github.com/goserg/padelclub/bot/model"

	"github.com/google/uuid"
)

type BotStorage interface {
	NewUser(user model.User) (model.User, error)
	GetUser(id int) (model.User, error)
	GetUserByClubID(clubUserID uuid.UUID) (model.User, error)
	ListUsers() ([]model.User, error)
	LinkClubUser(user model.User, clubUserID uuid.UUID) error
	Subscribe(user model.User, event model.EventType) error
	Unsubscribe(user model.User, event model.EventType) error
	Log(user model.User, msg string) error
}
