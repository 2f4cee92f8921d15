package service

import (
	"context"
	"testing"
	"time"

	"github.com/goserg/padelclub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTraining(t *testing.T, store *memStorage, startsAt time.Time, capacity int, participants ...uuid.UUID) domain.Training {
	t.Helper()
	training := domain.Training{
		ID:              uuid.New(),
		StartsAt:        startsAt,
		MaxParticipants: capacity,
		Participants:    participants,
		Coach:           "Алексей",
	}
	store.trainings[training.ID] = training
	return training
}

func TestJoinTraining(t *testing.T) {
	svc, store := newTestService(t)
	user := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)
	training := addTraining(t, store, testNow.Add(24*time.Hour), 4)

	status, updated, err := svc.JoinTraining(context.Background(), user, training.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TrainingJoined, status)
	assert.Equal(t, []uuid.UUID{user.ID}, updated.Participants)
}

func TestJoinTrainingOutcomes(t *testing.T) {
	svc, store := newTestService(t)
	member := addUser(t, store, "@member", 3.0, domain.RoleMember)
	other := addUser(t, store, "@other", 3.0, domain.RoleMember)
	full := addTraining(t, store, testNow.Add(24*time.Hour), 1, member.ID)

	tests := []struct {
		name string
		user domain.User
		want domain.TrainingJoinStatus
	}{
		{name: "already member", user: member, want: domain.TrainingAlreadyMember},
		{name: "full", user: other, want: domain.TrainingIsFull},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			status, _, err := svc.JoinTraining(context.Background(), tt.user, full.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
			stored, err := store.GetTraining(context.Background(), full.ID)
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{member.ID}, stored.Participants, "no-op outcomes must not write")
		})
	}
}

func TestJoinTrainingNotFound(t *testing.T) {
	svc, store := newTestService(t)
	user := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)

	_, _, err := svc.JoinTraining(context.Background(), user, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLeaveTrainingPromotesWaitlistHead(t *testing.T) {
	svc, store := newTestService(t)
	leaver := addUser(t, store, "@leaver", 3.0, domain.RoleMember)
	first := addUser(t, store, "@first", 3.0, domain.RoleMember)
	second := addUser(t, store, "@second", 3.0, domain.RoleMember)
	training := addTraining(t, store, testNow.Add(24*time.Hour), 1, leaver.ID)
	stored := store.trainings[training.ID]
	stored.Waitlist = []uuid.UUID{first.ID, second.ID}
	store.trainings[training.ID] = stored

	updated, err := svc.LeaveTraining(context.Background(), leaver, training.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID}, updated.Participants, "exactly the head moves in")
	assert.Equal(t, []uuid.UUID{second.ID}, updated.Waitlist, "waitlist shrinks by one")
}

func TestLeaveTrainingPromotionIsUnconditional(t *testing.T) {
	// Promotion fires on any departure, including one by a user who
	// was never a participant and on trainings that never filled.
	svc, store := newTestService(t)
	outsider := addUser(t, store, "@outsider", 3.0, domain.RoleMember)
	member := addUser(t, store, "@member", 3.0, domain.RoleMember)
	queued := addUser(t, store, "@queued", 3.0, domain.RoleMember)
	training := addTraining(t, store, testNow.Add(24*time.Hour), 4, member.ID)
	stored := store.trainings[training.ID]
	stored.Waitlist = []uuid.UUID{queued.ID}
	store.trainings[training.ID] = stored

	updated, err := svc.LeaveTraining(context.Background(), outsider, training.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{member.ID, queued.ID}, updated.Participants)
	assert.Empty(t, updated.Waitlist)
}

func TestLeaveTrainingOrderAcrossDepartures(t *testing.T) {
	svc, store := newTestService(t)
	a := addUser(t, store, "@a", 3.0, domain.RoleMember)
	b := addUser(t, store, "@b", 3.0, domain.RoleMember)
	q1 := addUser(t, store, "@q1", 3.0, domain.RoleMember)
	q2 := addUser(t, store, "@q2", 3.0, domain.RoleMember)
	training := addTraining(t, store, testNow.Add(24*time.Hour), 2, a.ID, b.ID)
	stored := store.trainings[training.ID]
	stored.Waitlist = []uuid.UUID{q1.ID, q2.ID}
	store.trainings[training.ID] = stored

	updated, err := svc.LeaveTraining(context.Background(), a, training.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID, q1.ID}, updated.Participants)

	updated, err = svc.LeaveTraining(context.Background(), b, training.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{q1.ID, q2.ID}, updated.Participants)
	assert.Empty(t, updated.Waitlist)
}

func TestJoinWaitlist(t *testing.T) {
	svc, store := newTestService(t)
	member := addUser(t, store, "@member", 3.0, domain.RoleMember)
	queued := addUser(t, store, "@queued", 3.0, domain.RoleMember)
	training := addTraining(t, store, testNow.Add(24*time.Hour), 1, member.ID)

	status, updated, err := svc.JoinWaitlist(context.Background(), queued, training.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TrainingQueued, status)
	assert.Equal(t, []uuid.UUID{queued.ID}, updated.Waitlist)

	// Queueing twice keeps a single entry.
	status, updated, err = svc.JoinWaitlist(context.Background(), queued, training.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TrainingAlreadyQueued, status)
	assert.Equal(t, []uuid.UUID{queued.ID}, updated.Waitlist)

	// Participants cannot also queue.
	status, _, err = svc.JoinWaitlist(context.Background(), member, training.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TrainingAlreadyMember, status)
}

func TestLeaveWaitlist(t *testing.T) {
	svc, store := newTestService(t)
	queued := addUser(t, store, "@queued", 3.0, domain.RoleMember)
	other := addUser(t, store, "@other", 3.0, domain.RoleMember)
	training := addTraining(t, store, testNow.Add(24*time.Hour), 1)
	stored := store.trainings[training.ID]
	stored.Waitlist = []uuid.UUID{queued.ID}
	store.trainings[training.ID] = stored

	updated, err := svc.LeaveWaitlist(context.Background(), queued, training.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Waitlist)

	// Leaving without being queued succeeds silently.
	_, err = svc.LeaveWaitlist(context.Background(), other, training.ID)
	require.NoError(t, err)
}

func TestCreateTraining(t *testing.T) {
	svc, store := newTestService(t)
	creator := addUser(t, store, "@ivan_padel", 3.5, domain.RoleMember)

	training, err := svc.CreateTraining(context.Background(), creator, testNow.Add(24*time.Hour), 4)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{creator.ID}, training.Participants)
	assert.Empty(t, training.Coach, "self-organized slot has no coach")

	_, err = svc.CreateTraining(context.Background(), creator, testNow.Add(24*time.Hour), 0)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestGenerateWeeklySchedule(t *testing.T) {
	svc, store := newTestService(t)
	// testNow is Monday 2024-04-01; the window Tue..Mon contains one
	// Wednesday, one Friday and one Sunday.
	created, err := svc.GenerateWeeklySchedule(context.Background(), testNow)
	require.NoError(t, err)
	require.Len(t, created, 9, "3 fixed days times 3 slots")
	require.Len(t, store.trainings, 9)

	for _, training := range created {
		assert.Empty(t, training.Participants)
		assert.Empty(t, training.Waitlist)
		assert.Equal(t, "Алексей", training.Coach)
		assert.Equal(t, 4, training.MaxParticipants)
		switch training.StartsAt.Weekday() {
		case time.Wednesday, time.Friday, time.Sunday:
		default:
			t.Errorf("training generated on %s", training.StartsAt.Weekday())
		}
		switch training.StartsAt.Hour() {
		case 18, 19, 20:
		default:
			t.Errorf("training generated at %d:00", training.StartsAt.Hour())
		}
	}
}

func TestGenerateWeeklyScheduleIsNotIdempotent(t *testing.T) {
	// Known limitation carried over from the original client: no dedup
	// key, a second run books every slot twice.
	svc, store := newTestService(t)
	_, err := svc.GenerateWeeklySchedule(context.Background(), testNow)
	require.NoError(t, err)
	_, err = svc.GenerateWeeklySchedule(context.Background(), testNow)
	require.NoError(t, err)
	assert.Len(t, store.trainings, 18)
}

func TestUpcomingTrainings(t *testing.T) {
	svc, store := newTestService(t)
	viewer := addUser(t, store, "@viewer", 3.0, domain.RoleMember)
	later := addTraining(t, store, testNow.Add(48*time.Hour), 4)
	sooner := addTraining(t, store, testNow.Add(24*time.Hour), 4, viewer.ID)
	addTraining(t, store, testNow.Add(-time.Hour), 4)

	views, err := svc.UpcomingTrainings(context.Background(), viewer)
	require.NoError(t, err)
	require.Len(t, views, 2, "past trainings are hidden")
	assert.Equal(t, sooner.ID, views[0].Training.ID)
	assert.True(t, views[0].IsParticipant)
	assert.Equal(t, 4000, views[0].CostPerPlayer, "one participant pays the full court")
	assert.Equal(t, later.ID, views[1].Training.ID)
	assert.Equal(t, 4000, views[1].CostPerPlayer, "empty training displays the full base cost")
}

func TestTrainingCostSplit(t *testing.T) {
	tests := []struct {
		name         string
		participants int
		want         int
	}{
		{name: "empty", participants: 0, want: 4000},
		{name: "single", participants: 1, want: 4000},
		{name: "three", participants: 3, want: 1334},
		{name: "four", participants: 4, want: 1000},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			training := domain.Training{Participants: make([]uuid.UUID, tt.participants)}
			if got := training.CostPerPlayer(4000); got != tt.want {
				t.Errorf("CostPerPlayer() = %v, want %v", got, tt.want)
			}
		})
	}
}
