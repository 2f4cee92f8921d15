package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/goserg/padelclub/internal/domain"

	"github.com/google/uuid"
)

type GameFilter struct {
	// Date restricts to games on that calendar day.
	Date *time.Time
	// Level restricts to games whose eligibility window contains it.
	Level *float64
}

// GameView is what the shell renders per open game.
type GameView struct {
	Game      domain.Game
	Players   []string
	SlotsLeft int
	Action    domain.GameAction
}

// ListOpenGames returns open future games matching the filter, with the
// affordance computed for the viewer.
func (s *ClubService) ListOpenGames(ctx context.Context, viewer domain.User, filter GameFilter) ([]GameView, error) {
	games, err := s.games.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	views := make([]GameView, 0, len(games))
	for _, game := range games {
		if game.Status != domain.GameOpen || !game.StartsAt.After(now) {
			continue
		}
		if filter.Date != nil && !sameDay(game.StartsAt, *filter.Date) {
			continue
		}
		if filter.Level != nil && !game.LevelFits(*filter.Level) {
			continue
		}
		views = append(views, GameView{
			Game:      game,
			Players:   displayNames(game.Participants, users),
			SlotsLeft: game.SlotsLeft(),
			Action:    game.ActionFor(viewer),
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Game.StartsAt.Before(views[j].Game.StartsAt)
	})
	return views, nil
}

// MyGames returns every game the user participates in, with the
// late-cancellation flag precomputed.
func (s *ClubService) MyGames(ctx context.Context, userID uuid.UUID) ([]GameView, error) {
	games, err := s.games.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]GameView, 0)
	for _, game := range games {
		if !game.HasParticipant(userID) {
			continue
		}
		views = append(views, GameView{
			Game:      game,
			Players:   displayNames(game.Participants, users),
			SlotsLeft: game.SlotsLeft(),
			Action:    domain.GameActionJoined,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Game.StartsAt.Before(views[j].Game.StartsAt)
	})
	return views, nil
}

func (s *ClubService) CreateGame(ctx context.Context, creator domain.User, startsAt time.Time, minLevel, maxLevel float64, description string) (domain.Game, error) {
	if minLevel > maxLevel {
		return domain.Game{}, fmt.Errorf("%w: минимальный уровень не может быть больше максимального", domain.ErrValidation)
	}
	game := domain.Game{
		ID:           uuid.New(),
		StartsAt:     startsAt,
		CreatorID:    creator.ID,
		Participants: []uuid.UUID{creator.ID},
		MinLevel:     minLevel,
		MaxLevel:     maxLevel,
		Status:       domain.GameOpen,
		Description:  description,
	}
	created, err := s.games.CreateGame(ctx, game)
	if err != nil {
		return domain.Game{}, err
	}
	s.log.WithField("game_id", created.ID).Info("game created")
	s.notifier.GameCreated(created, creator)
	return created, nil
}

// JoinGame appends the user to an open game. The level gate is a UI
// affordance only, the operation itself stays permissive. A repeated
// join succeeds without a second seat.
func (s *ClubService) JoinGame(ctx context.Context, user domain.User, gameID uuid.UUID) (domain.Game, error) {
	return s.updateGame(ctx, gameID, func(game *domain.Game) error {
		if game.HasParticipant(user.ID) {
			return errNoChange
		}
		if len(game.Participants) >= domain.GameSize {
			return domain.ErrCapacity
		}
		game.Participants = append(game.Participants, user.ID)
		if len(game.Participants) == domain.GameSize {
			game.Status = domain.GameFull
		}
		return nil
	})
}

type LeaveGameResult struct {
	Game      domain.Game
	Deleted   bool
	Penalized bool
}

// LeaveGame removes the user from a game. Inside the late-cancellation
// window the caller has to accept the reliability penalty first; the
// penalty is persisted before the roster write, so a failed removal can
// leave the user penalized but still on the roster.
func (s *ClubService) LeaveGame(ctx context.Context, user domain.User, gameID uuid.UUID, acceptPenalty bool) (LeaveGameResult, error) {
	game, err := s.games.GetGame(ctx, gameID)
	if err != nil {
		return LeaveGameResult{}, err
	}
	var result LeaveGameResult
	if game.StartsAt.Sub(s.now()) <= domain.LateCancelWindow {
		if !acceptPenalty {
			return LeaveGameResult{}, domain.ErrLateCancellation
		}
		_, err = s.updateUser(ctx, user.ID, func(u *domain.User) error {
			u.Penalize(domain.LateCancelPenalty)
			return nil
		})
		if err != nil {
			return LeaveGameResult{}, err
		}
		result.Penalized = true
		s.log.WithField("user_id", user.ID).Warn("reliability penalty applied")
	}

	var lastErr error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		game, err = s.games.GetGame(ctx, gameID)
		if err != nil {
			return result, err
		}
		game.Participants = removeID(game.Participants, user.ID)
		if len(game.Participants) == 0 {
			err = s.games.DeleteGame(ctx, gameID)
			if err != nil {
				return result, err
			}
			result.Deleted = true
			s.log.WithField("game_id", gameID).Info("empty game deleted")
			return result, nil
		}
		// Any departure reopens the game, full or not.
		game.Status = domain.GameOpen
		updated, err := s.games.UpdateGame(ctx, game)
		if err == nil {
			result.Game = updated
			return result, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return result, err
		}
		lastErr = err
	}
	return result, lastErr
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	filtered := ids[:0]
	for _, v := range ids {
		if v != id {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
