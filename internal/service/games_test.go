package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goserg/padelclub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGame(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)

	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 2.5, 4.0, "ищем еще двоих")
	require.NoError(t, err)
	assert.Equal(t, domain.GameOpen, game.Status)
	assert.Equal(t, []uuid.UUID{creator.ID}, game.Participants)
	assert.Equal(t, 2.5, game.MinLevel)
	assert.Equal(t, 4.0, game.MaxLevel)

	fetched, err := store.GetGame(context.Background(), game.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.5, fetched.MinLevel)
	assert.Equal(t, 4.0, fetched.MaxLevel)
}

func TestCreateGameLevelBoundsSwapped(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)

	_, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 4.0, 2.5, "")
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, store.games, "no record may be created on rejected bounds")
}

func TestJoinGame(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 0, 7, "")
	require.NoError(t, err)

	joiners := []domain.User{
		addUser(t, store, "@maria_sports", 2.5, domain.RoleMember),
		addUser(t, store, "@alexey", 4.0, domain.RoleMember),
	}
	for _, joiner := range joiners {
		game, err = svc.JoinGame(context.Background(), joiner, game.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.GameOpen, game.Status)
	}

	// Fourth player fills the game.
	fourth := addUser(t, store, "@oleg", 3.0, domain.RoleMember)
	game, err = svc.JoinGame(context.Background(), fourth, game.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GameFull, game.Status)
	assert.Len(t, game.Participants, 4)

	// Fifth is rejected and nothing changes.
	fifth := addUser(t, store, "@petr", 3.0, domain.RoleMember)
	_, err = svc.JoinGame(context.Background(), fifth, game.ID)
	require.ErrorIs(t, err, domain.ErrCapacity)
	stored, err := store.GetGame(context.Background(), game.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Participants, 4)
	assert.Equal(t, domain.GameFull, stored.Status)
}

func TestJoinGameDuplicateIsNoop(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 0, 7, "")
	require.NoError(t, err)

	game, err = svc.JoinGame(context.Background(), creator, game.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{creator.ID}, game.Participants)
}

func TestJoinGameNotFound(t *testing.T) {
	svc, store := newTestService(t)
	user := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)

	_, err := svc.JoinGame(context.Background(), user, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJoinGameIgnoresLevelGate(t *testing.T) {
	// The level window is a UI affordance; the operation itself must
	// keep accepting out-of-range players.
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 3.0, 4.0, "")
	require.NoError(t, err)

	novice := addUser(t, store, "@novice", 0.5, domain.RoleMember)
	game, err = svc.JoinGame(context.Background(), novice, game.ID)
	require.NoError(t, err)
	assert.True(t, game.HasParticipant(novice.ID))
}

func TestJoinGameRetriesOnConflict(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 0, 7, "")
	require.NoError(t, err)

	joiner := addUser(t, store, "@maria_sports", 2.5, domain.RoleMember)
	store.gameConflicts = 2
	game, err = svc.JoinGame(context.Background(), joiner, game.ID)
	require.NoError(t, err)
	assert.True(t, game.HasParticipant(joiner.ID))
}

func TestJoinGameGivesUpAfterRetries(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 0, 7, "")
	require.NoError(t, err)

	joiner := addUser(t, store, "@maria_sports", 2.5, domain.RoleMember)
	store.gameConflicts = conflictRetries
	_, err = svc.JoinGame(context.Background(), joiner, game.ID)
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestLeaveGameReopens(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 0, 7, "")
	require.NoError(t, err)
	var joiners []domain.User
	for _, handle := range []string{"@a", "@b", "@c"} {
		joiner := addUser(t, store, handle, 3.0, domain.RoleMember)
		joiners = append(joiners, joiner)
		game, err = svc.JoinGame(context.Background(), joiner, game.ID)
		require.NoError(t, err)
	}
	require.Equal(t, domain.GameFull, game.Status)

	result, err := svc.LeaveGame(context.Background(), joiners[0], game.ID, false)
	require.NoError(t, err)
	assert.False(t, result.Deleted)
	assert.False(t, result.Penalized)
	assert.Equal(t, domain.GameOpen, result.Game.Status)
	assert.Len(t, result.Game.Participants, 3)
	assert.False(t, result.Game.HasParticipant(joiners[0].ID))
}

func TestLeaveGameLastParticipantDeletes(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 0, 7, "")
	require.NoError(t, err)

	result, err := svc.LeaveGame(context.Background(), creator, game.ID, false)
	require.NoError(t, err)
	assert.True(t, result.Deleted)
	_, err = store.GetGame(context.Background(), game.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLeaveGameLateNeedsConfirmation(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(2*time.Hour), 0, 7, "")
	require.NoError(t, err)

	_, err = svc.LeaveGame(context.Background(), creator, game.ID, false)
	require.ErrorIs(t, err, domain.ErrLateCancellation)

	stored, err := store.GetGame(context.Background(), game.ID)
	require.NoError(t, err)
	assert.True(t, stored.HasParticipant(creator.ID), "aborted leave must not touch the roster")
	user, err := store.GetUser(context.Background(), creator.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultReliability, user.Reliability)
}

func TestLeaveGameLatePenalty(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(2*time.Hour), 0, 7, "")
	require.NoError(t, err)

	result, err := svc.LeaveGame(context.Background(), creator, game.ID, true)
	require.NoError(t, err)
	assert.True(t, result.Penalized)
	user, err := store.GetUser(context.Background(), creator.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, user.Reliability, 1e-9)
}

func TestLeaveGamePenaltyFloorsAtZero(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	user := store.users[creator.ID]
	user.Reliability = 0.3
	store.users[creator.ID] = user
	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(time.Hour), 0, 7, "")
	require.NoError(t, err)

	_, err = svc.LeaveGame(context.Background(), creator, game.ID, true)
	require.NoError(t, err)
	stored, err := store.GetUser(context.Background(), creator.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.Reliability, "score 0.3 minus penalty 0.5 floors at 0")
}

func TestLeaveGamePenaltySticksWhenRemovalFails(t *testing.T) {
	// Penalty and removal are separate writes; a failed removal leaves
	// the user penalized but still on the roster.
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	second := addUser(t, store, "@maria_sports", 2.5, domain.RoleMember)
	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(time.Hour), 0, 7, "")
	require.NoError(t, err)
	_, err = svc.JoinGame(context.Background(), second, game.ID)
	require.NoError(t, err)

	storeErr := errors.New("disk full")
	store.gameUpdateErr = storeErr
	_, err = svc.LeaveGame(context.Background(), creator, game.ID, true)
	require.ErrorIs(t, err, storeErr)

	user, err := store.GetUser(context.Background(), creator.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, user.Reliability, 1e-9)
	store.gameUpdateErr = nil
	stored, err := store.GetGame(context.Background(), game.ID)
	require.NoError(t, err)
	assert.True(t, stored.HasParticipant(creator.ID))
}

func TestListOpenGames(t *testing.T) {
	svc, store := newTestService(t)
	viewer := addUser(t, store, "@viewer", 3.0, domain.RoleMember)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)

	future, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 2.5, 4.0, "")
	require.NoError(t, err)
	_, err = svc.CreateGame(context.Background(), creator, testNow.Add(-time.Hour), 0, 7, "")
	require.NoError(t, err)
	highLevel, err := svc.CreateGame(context.Background(), creator, testNow.Add(48*time.Hour), 5.0, 7.0, "")
	require.NoError(t, err)

	views, err := svc.ListOpenGames(context.Background(), viewer, GameFilter{})
	require.NoError(t, err)
	require.Len(t, views, 2, "past games are hidden")
	assert.Equal(t, future.ID, views[0].Game.ID)
	assert.Equal(t, domain.GameActionCanJoin, views[0].Action)
	assert.Equal(t, 3, views[0].SlotsLeft)
	assert.Equal(t, []string{"Иван П."}, views[0].Players)
	assert.Equal(t, highLevel.ID, views[1].Game.ID)
	assert.Equal(t, domain.GameActionBadLevel, views[1].Action)
}

func TestListOpenGamesFilters(t *testing.T) {
	svc, store := newTestService(t)
	viewer := addUser(t, store, "@viewer", 3.0, domain.RoleMember)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)

	tomorrow, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 2.5, 4.0, "")
	require.NoError(t, err)
	_, err = svc.CreateGame(context.Background(), creator, testNow.Add(72*time.Hour), 5.0, 6.0, "")
	require.NoError(t, err)

	day := testNow.Add(24 * time.Hour)
	views, err := svc.ListOpenGames(context.Background(), viewer, GameFilter{Date: &day})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, tomorrow.ID, views[0].Game.ID)

	level := 3.0
	views, err = svc.ListOpenGames(context.Background(), viewer, GameFilter{Level: &level})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, tomorrow.ID, views[0].Game.ID)
}

func TestListOpenGamesJoinedAffordance(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	_, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 2.5, 4.0, "")
	require.NoError(t, err)

	views, err := svc.ListOpenGames(context.Background(), creator, GameFilter{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, domain.GameActionJoined, views[0].Action)
}

func TestGameRosterBoundedAlways(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	game, err := svc.CreateGame(context.Background(), creator, testNow.Add(24*time.Hour), 0, 7, "")
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		joiner := addUser(t, store, "@p"+string(rune('a'+i)), 3.0, domain.RoleMember)
		_, _ = svc.JoinGame(context.Background(), joiner, game.ID)
		stored, err := store.GetGame(context.Background(), game.ID)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(stored.Participants), domain.GameSize)
	}
}
