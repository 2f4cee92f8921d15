package service

import (
	"context"
	"errors"
	"time"

	"github.com/goserg/padelclub/internal/cache/mem"
	"github.com/goserg/padelclub/internal/config"
	"github.com/goserg/padelclub/internal/domain"
	"github.com/goserg/padelclub/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Notifier receives club events worth pushing to members. The telegram
// bot implements it; without a bot the service uses a no-op.
type Notifier interface {
	GameCreated(game domain.Game, creator domain.User)
	WaitlistPromoted(training domain.Training, userID uuid.UUID)
}

type nopNotifier struct{}

func (nopNotifier) GameCreated(domain.Game, domain.User)        {}
func (nopNotifier) WaitlistPromoted(domain.Training, uuid.UUID) {}

type ClubService struct {
	users     storage.UserStorage
	games     storage.GameStorage
	trainings storage.TrainingStorage

	schedule config.Schedule
	notifier Notifier
	members  *mem.Cache
	log      *logrus.Entry
	now      func() time.Time
}

func New(
	l *logrus.Logger,
	users storage.UserStorage,
	games storage.GameStorage,
	trainings storage.TrainingStorage,
	schedule config.Schedule,
) *ClubService {
	return &ClubService{
		users:     users,
		games:     games,
		trainings: trainings,
		schedule:  schedule,
		notifier:  nopNotifier{},
		members:   mem.New(),
		log:       l.WithField("from", "club-service"),
		now:       time.Now,
	}
}

func (s *ClubService) SetNotifier(n Notifier) {
	if n == nil {
		n = nopNotifier{}
	}
	s.notifier = n
}

// conflictRetries bounds how often a read-modify-write is replayed when
// the store reports a stale version.
const conflictRetries = 3

// errNoChange aborts a mutation without writing; the caller gets the
// freshly read record back.
var errNoChange = errors.New("no change")

func (s *ClubService) updateUser(ctx context.Context, id uuid.UUID, mutate func(*domain.User) error) (domain.User, error) {
	var lastErr error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		user, err := s.users.GetUser(ctx, id)
		if err != nil {
			return domain.User{}, err
		}
		err = mutate(&user)
		if errors.Is(err, errNoChange) {
			return user, nil
		}
		if err != nil {
			return domain.User{}, err
		}
		updated, err := s.users.UpdateUser(ctx, user)
		if err == nil {
			s.members.Invalidate()
			return updated, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return domain.User{}, err
		}
		lastErr = err
	}
	return domain.User{}, lastErr
}

func (s *ClubService) updateGame(ctx context.Context, id uuid.UUID, mutate func(*domain.Game) error) (domain.Game, error) {
	var lastErr error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		game, err := s.games.GetGame(ctx, id)
		if err != nil {
			return domain.Game{}, err
		}
		err = mutate(&game)
		if errors.Is(err, errNoChange) {
			return game, nil
		}
		if err != nil {
			return domain.Game{}, err
		}
		updated, err := s.games.UpdateGame(ctx, game)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return domain.Game{}, err
		}
		lastErr = err
	}
	return domain.Game{}, lastErr
}

func (s *ClubService) updateTraining(ctx context.Context, id uuid.UUID, mutate func(*domain.Training) error) (domain.Training, error) {
	var lastErr error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		training, err := s.trainings.GetTraining(ctx, id)
		if err != nil {
			return domain.Training{}, err
		}
		err = mutate(&training)
		if errors.Is(err, errNoChange) {
			return training, nil
		}
		if err != nil {
			return domain.Training{}, err
		}
		updated, err := s.trainings.UpdateTraining(ctx, training)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return domain.Training{}, err
		}
		lastErr = err
	}
	return domain.Training{}, lastErr
}
