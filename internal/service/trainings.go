package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/goserg/padelclub/internal/domain"

	"github.com/google/uuid"
)

// TrainingView is what the shell renders per training slot.
type TrainingView struct {
	Training      domain.Training
	CostPerPlayer int
	IsParticipant bool
	InWaitlist    bool
}

// UpcomingTrainings returns future trainings sorted by start time.
func (s *ClubService) UpcomingTrainings(ctx context.Context, viewer domain.User) ([]TrainingView, error) {
	trainings, err := s.trainings.ListTrainings(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	views := make([]TrainingView, 0, len(trainings))
	for _, training := range trainings {
		if !training.StartsAt.After(now) {
			continue
		}
		views = append(views, TrainingView{
			Training:      training,
			CostPerPlayer: training.CostPerPlayer(s.schedule.BaseCost),
			IsParticipant: training.HasParticipant(viewer.ID),
			InWaitlist:    training.InWaitlist(viewer.ID),
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Training.StartsAt.Before(views[j].Training.StartsAt)
	})
	return views, nil
}

// MyTrainings returns the trainings the user is enrolled in.
func (s *ClubService) MyTrainings(ctx context.Context, userID uuid.UUID) ([]TrainingView, error) {
	trainings, err := s.trainings.ListTrainings(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]TrainingView, 0)
	for _, training := range trainings {
		if !training.HasParticipant(userID) {
			continue
		}
		views = append(views, TrainingView{
			Training:      training,
			CostPerPlayer: training.CostPerPlayer(s.schedule.BaseCost),
			IsParticipant: true,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Training.StartsAt.Before(views[j].Training.StartsAt)
	})
	return views, nil
}

// CreateTraining books a self-organized slot: the creator picks the
// capacity and takes the first seat, no coach assigned.
func (s *ClubService) CreateTraining(ctx context.Context, creator domain.User, startsAt time.Time, maxParticipants int) (domain.Training, error) {
	if maxParticipants < 1 {
		return domain.Training{}, fmt.Errorf("%w: нужен хотя бы один участник", domain.ErrValidation)
	}
	training := domain.Training{
		ID:              uuid.New(),
		StartsAt:        startsAt,
		MaxParticipants: maxParticipants,
		Participants:    []uuid.UUID{creator.ID},
	}
	created, err := s.trainings.CreateTraining(ctx, training)
	if err != nil {
		return domain.Training{}, err
	}
	s.log.WithField("training_id", created.ID).Info("self-organized training created")
	return created, nil
}

// JoinTraining reports the outcome explicitly instead of the old
// client's silent no-op on full or duplicate joins.
func (s *ClubService) JoinTraining(ctx context.Context, user domain.User, trainingID uuid.UUID) (domain.TrainingJoinStatus, domain.Training, error) {
	status := domain.TrainingJoined
	training, err := s.updateTraining(ctx, trainingID, func(t *domain.Training) error {
		if t.HasParticipant(user.ID) {
			status = domain.TrainingAlreadyMember
			return errNoChange
		}
		if t.IsFull() {
			status = domain.TrainingIsFull
			return errNoChange
		}
		t.Participants = append(t.Participants, user.ID)
		return nil
	})
	if err != nil {
		return "", domain.Training{}, err
	}
	return status, training, nil
}

// LeaveTraining removes the user and promotes the waitlist head.
// Promotion is unconditional on any departure: one slot freed, one
// promotion, even when the training never filled up.
func (s *ClubService) LeaveTraining(ctx context.Context, user domain.User, trainingID uuid.UUID) (domain.Training, error) {
	var promoted *uuid.UUID
	training, err := s.updateTraining(ctx, trainingID, func(t *domain.Training) error {
		promoted = nil
		t.Participants = removeID(t.Participants, user.ID)
		if len(t.Waitlist) > 0 {
			head := t.Waitlist[0]
			t.Waitlist = append([]uuid.UUID{}, t.Waitlist[1:]...)
			t.Participants = append(t.Participants, head)
			promoted = &head
		}
		return nil
	})
	if err != nil {
		return domain.Training{}, err
	}
	if promoted != nil {
		s.log.WithFields(map[string]interface{}{
			"training_id": trainingID,
			"user_id":     *promoted,
		}).Info("waitlist head promoted")
		s.notifier.WaitlistPromoted(training, *promoted)
	}
	return training, nil
}

// JoinWaitlist queues the user at the tail. Capacity is deliberately
// not checked, queueing up for a training with free seats is allowed.
func (s *ClubService) JoinWaitlist(ctx context.Context, user domain.User, trainingID uuid.UUID) (domain.TrainingJoinStatus, domain.Training, error) {
	status := domain.TrainingQueued
	training, err := s.updateTraining(ctx, trainingID, func(t *domain.Training) error {
		if t.HasParticipant(user.ID) {
			status = domain.TrainingAlreadyMember
			return errNoChange
		}
		if t.InWaitlist(user.ID) {
			status = domain.TrainingAlreadyQueued
			return errNoChange
		}
		t.Waitlist = append(t.Waitlist, user.ID)
		return nil
	})
	if err != nil {
		return "", domain.Training{}, err
	}
	return status, training, nil
}

func (s *ClubService) LeaveWaitlist(ctx context.Context, user domain.User, trainingID uuid.UUID) (domain.Training, error) {
	return s.updateTraining(ctx, trainingID, func(t *domain.Training) error {
		if !t.InWaitlist(user.ID) {
			return errNoChange
		}
		t.Waitlist = removeID(t.Waitlist, user.ID)
		return nil
	})
}

// GenerateWeeklySchedule creates the fixed slots for the seven days
// after from. There is no dedup key: calling it twice for the same week
// books every slot twice.
func (s *ClubService) GenerateWeeklySchedule(ctx context.Context, from time.Time) ([]domain.Training, error) {
	fixed := make(map[time.Weekday]bool, len(s.schedule.FixedDays))
	for _, d := range s.schedule.FixedDays {
		fixed[time.Weekday(d)] = true
	}
	created := make([]domain.Training, 0)
	for i := 1; i <= 7; i++ {
		day := from.AddDate(0, 0, i)
		if !fixed[day.Weekday()] {
			continue
		}
		for _, slot := range s.schedule.Times {
			at, err := time.Parse("15:04", slot)
			if err != nil {
				return nil, fmt.Errorf("%w: неверное время %q", domain.ErrValidation, slot)
			}
			training := domain.Training{
				ID:              uuid.New(),
				StartsAt:        time.Date(day.Year(), day.Month(), day.Day(), at.Hour(), at.Minute(), 0, 0, day.Location()),
				MaxParticipants: s.schedule.MaxParticipants,
				Coach:           s.schedule.Coach,
			}
			stored, err := s.trainings.CreateTraining(ctx, training)
			if err != nil {
				return created, err
			}
			created = append(created, stored)
		}
	}
	s.log.WithField("count", len(created)).Info("weekly schedule generated")
	return created, nil
}
