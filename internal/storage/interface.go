package storage

import (
	"context"

	"github.com/goserg/padelclub/internal/domain"

	"github.com/google/uuid"
)

// Update calls compare the record's Version against the stored one and
// return domain.ErrConflict on mismatch, so services can re-read and
// retry. Every returned record carries the new version.

type UserStorage interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetUserByTelegram(ctx context.Context, handle string) (domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type GameStorage interface {
	ListGames(ctx context.Context) ([]domain.Game, error)
	GetGame(ctx context.Context, id uuid.UUID) (domain.Game, error)
	CreateGame(ctx context.Context, game domain.Game) (domain.Game, error)
	UpdateGame(ctx context.Context, game domain.Game) (domain.Game, error)
	DeleteGame(ctx context.Context, id uuid.UUID) error
}

// TrainingStorage has no delete: trainings persist even when empty.
type TrainingStorage interface {
	ListTrainings(ctx context.Context) ([]domain.Training, error)
	GetTraining(ctx context.Context, id uuid.UUID) (domain.Training, error)
	CreateTraining(ctx context.Context, training domain.Training) (domain.Training, error)
	UpdateTraining(ctx context.Context, training domain.Training) (domain.Training, error)
}
