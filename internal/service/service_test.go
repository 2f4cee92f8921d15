package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goserg/padelclub/internal/config"
	"github.com/goserg/padelclub/internal/domain"
	"github.com/goserg/padelclub/internal/logger"

	"github.com/google/uuid"
)

// memStorage is an in-memory stand-in for the sqlite storage with the
// same version-stamp semantics. Conflict counters let tests serve a
// fixed number of stale-write failures.
type memStorage struct {
	mu        sync.Mutex
	users     map[uuid.UUID]domain.User
	games     map[uuid.UUID]domain.Game
	trainings map[uuid.UUID]domain.Training

	userConflicts     int
	gameConflicts     int
	trainingConflicts int

	gameUpdateErr error
}

func newMemStorage() *memStorage {
	return &memStorage{
		users:     make(map[uuid.UUID]domain.User),
		games:     make(map[uuid.UUID]domain.Game),
		trainings: make(map[uuid.UUID]domain.Training),
	}
}

// Reads hand out snapshot copies, like the sqlite storage does; callers
// may mutate rosters freely without touching stored state.
func cloneIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}
	return append([]uuid.UUID(nil), ids...)
}

func cloneGame(g domain.Game) domain.Game {
	g.Participants = cloneIDs(g.Participants)
	return g
}

func cloneTraining(t domain.Training) domain.Training {
	t.Participants = cloneIDs(t.Participants)
	t.Waitlist = cloneIDs(t.Waitlist)
	return t
}

func (m *memStorage) ListUsers(context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *memStorage) GetUser(_ context.Context, id uuid.UUID) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (m *memStorage) GetUserByTelegram(_ context.Context, handle string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Telegram == handle {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (m *memStorage) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Telegram == user.Telegram {
			return domain.User{}, domain.ErrConflict
		}
	}
	user.Version = 0
	m.users[user.ID] = user
	return user, nil
}

func (m *memStorage) UpdateUser(_ context.Context, user domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.users[user.ID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	if m.userConflicts > 0 {
		m.userConflicts--
		return domain.User{}, domain.ErrConflict
	}
	if stored.Version != user.Version {
		return domain.User{}, domain.ErrConflict
	}
	user.Version++
	m.users[user.ID] = user
	return user, nil
}

func (m *memStorage) DeleteUser(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memStorage) ListGames(context.Context) ([]domain.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	games := make([]domain.Game, 0, len(m.games))
	for _, g := range m.games {
		games = append(games, cloneGame(g))
	}
	return games, nil
}

func (m *memStorage) GetGame(_ context.Context, id uuid.UUID) (domain.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	game, ok := m.games[id]
	if !ok {
		return domain.Game{}, domain.ErrNotFound
	}
	return cloneGame(game), nil
}

func (m *memStorage) CreateGame(_ context.Context, game domain.Game) (domain.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	game.Version = 0
	m.games[game.ID] = cloneGame(game)
	return game, nil
}

func (m *memStorage) UpdateGame(_ context.Context, game domain.Game) (domain.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gameUpdateErr != nil {
		return domain.Game{}, m.gameUpdateErr
	}
	stored, ok := m.games[game.ID]
	if !ok {
		return domain.Game{}, domain.ErrNotFound
	}
	if m.gameConflicts > 0 {
		m.gameConflicts--
		return domain.Game{}, domain.ErrConflict
	}
	if stored.Version != game.Version {
		return domain.Game{}, domain.ErrConflict
	}
	game.Version++
	m.games[game.ID] = cloneGame(game)
	return game, nil
}

func (m *memStorage) DeleteGame(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *memStorage) ListTrainings(context.Context) ([]domain.Training, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	trainings := make([]domain.Training, 0, len(m.trainings))
	for _, t := range m.trainings {
		trainings = append(trainings, cloneTraining(t))
	}
	return trainings, nil
}

func (m *memStorage) GetTraining(_ context.Context, id uuid.UUID) (domain.Training, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	training, ok := m.trainings[id]
	if !ok {
		return domain.Training{}, domain.ErrNotFound
	}
	return cloneTraining(training), nil
}

func (m *memStorage) CreateTraining(_ context.Context, training domain.Training) (domain.Training, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	training.Version = 0
	m.trainings[training.ID] = cloneTraining(training)
	return training, nil
}

func (m *memStorage) UpdateTraining(_ context.Context, training domain.Training) (domain.Training, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.trainings[training.ID]
	if !ok {
		return domain.Training{}, domain.ErrNotFound
	}
	if m.trainingConflicts > 0 {
		m.trainingConflicts--
		return domain.Training{}, domain.ErrConflict
	}
	if stored.Version != training.Version {
		return domain.Training{}, domain.ErrConflict
	}
	training.Version++
	m.trainings[training.ID] = cloneTraining(training)
	return training, nil
}

var testNow = time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*ClubService, *memStorage) {
	t.Helper()
	store := newMemStorage()
	svc := New(logger.New(false), store, store, store, config.Default().Schedule)
	svc.now = func() time.Time { return testNow }
	return svc, store
}

func addUser(t *testing.T, store *memStorage, handle string, level float64, role domain.Role) domain.User {
	t.Helper()
	user := domain.User{
		ID:           uuid.New(),
		Telegram:     handle,
		Name:         "Иван",
		Surname:      "Петров",
		Level:        level,
		Reliability:  domain.DefaultReliability,
		Role:         role,
		RegisteredAt: testNow,
	}
	store.users[user.ID] = user
	return user
}
