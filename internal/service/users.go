package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/goserg/padelclub/internal/domain"
	"github.com/goserg/padelclub/internal/normalize"

	"github.com/google/uuid"
)

// SignUp registers a new member by telegram handle. The handle is the
// only identity the club uses, there are no passwords.
func (s *ClubService) SignUp(ctx context.Context, handle, name, surname string, level float64, availability string) (domain.User, error) {
	handle = normalize.Handle(handle)
	if !strings.HasPrefix(handle, "@") {
		return domain.User{}, fmt.Errorf("%w: telegram должен начинаться с @", domain.ErrValidation)
	}
	name = strings.TrimSpace(name)
	surname = strings.TrimSpace(surname)
	availability = strings.TrimSpace(availability)
	if name == "" || surname == "" || availability == "" {
		return domain.User{}, fmt.Errorf("%w: заполните все поля для регистрации", domain.ErrValidation)
	}
	user := domain.User{
		ID:           uuid.New(),
		Telegram:     handle,
		Name:         name,
		Surname:      surname,
		Level:        level,
		Availability: availability,
		Reliability:  domain.DefaultReliability,
		Role:         domain.RoleMember,
		RegisteredAt: s.now(),
	}
	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	s.members.Invalidate()
	s.log.WithField("telegram", created.Telegram).Info("new member registered")
	return created, nil
}

// SignIn resolves a handle to an existing member.
func (s *ClubService) SignIn(ctx context.Context, handle string) (domain.User, error) {
	return s.GetUserByTelegram(ctx, handle)
}

func (s *ClubService) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return s.users.GetUser(ctx, id)
}

func (s *ClubService) GetUserByTelegram(ctx context.Context, handle string) (domain.User, error) {
	handle = normalize.Handle(handle)
	if user, ok := s.members.GetByTelegram(handle); ok {
		return user, nil
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}
	s.members.Update(users)
	if user, ok := s.members.GetByTelegram(handle); ok {
		return user, nil
	}
	return domain.User{}, domain.ErrNotFound
}

func (s *ClubService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListUsers(ctx)
}

// UpdateProfile overwrites the self-service fields only. Reliability,
// role and the handle are not reachable from here.
func (s *ClubService) UpdateProfile(ctx context.Context, userID uuid.UUID, name, surname string, level float64, availability string) (domain.User, error) {
	name = strings.TrimSpace(name)
	surname = strings.TrimSpace(surname)
	if name == "" || surname == "" {
		return domain.User{}, fmt.Errorf("%w: имя и фамилия обязательны", domain.ErrValidation)
	}
	return s.updateUser(ctx, userID, func(u *domain.User) error {
		u.Name = name
		u.Surname = surname
		u.Level = level
		u.Availability = strings.TrimSpace(availability)
		return nil
	})
}

// AdminUpdateUser lets an admin overwrite level and role. The role is
// accepted as-is, member/admin is a convention, not a constraint.
func (s *ClubService) AdminUpdateUser(ctx context.Context, admin domain.User, targetID uuid.UUID, level float64, role string) (domain.User, error) {
	if !admin.IsAdmin() {
		return domain.User{}, domain.ErrForbidden
	}
	return s.updateUser(ctx, targetID, func(u *domain.User) error {
		u.Level = level
		u.Role = domain.Role(role)
		return nil
	})
}

// DeleteUser removes a member record. Roster references are not cleaned
// up; listings render unknown ids as placeholders.
func (s *ClubService) DeleteUser(ctx context.Context, admin domain.User, targetID uuid.UUID) error {
	if !admin.IsAdmin() {
		return domain.ErrForbidden
	}
	if targetID == admin.ID {
		return fmt.Errorf("%w: нельзя удалить самого себя", domain.ErrForbidden)
	}
	err := s.users.DeleteUser(ctx, targetID)
	if err != nil {
		return err
	}
	s.members.Invalidate()
	s.log.WithField("user_id", targetID).Info("member deleted")
	return nil
}

type DashboardStats struct {
	ActivePlayers int
	OpenGames     int
	Trainings     int
}

func (s *ClubService) Dashboard(ctx context.Context) (DashboardStats, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	games, err := s.games.ListGames(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	trainings, err := s.trainings.ListTrainings(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	stats := DashboardStats{
		ActivePlayers: len(users),
		Trainings:     len(trainings),
	}
	now := s.now()
	for _, game := range games {
		if game.Status == domain.GameOpen && game.StartsAt.After(now) {
			stats.OpenGames++
		}
	}
	return stats, nil
}

// displayNames maps roster ids to short names; ids orphaned by member
// deletion render as "...".
func displayNames(ids []uuid.UUID, users []domain.User) []string {
	byID := make(map[uuid.UUID]domain.User, len(users))
	for i := range users {
		byID[users[i].ID] = users[i]
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		user, ok := byID[id]
		if !ok {
			names = append(names, "...")
			continue
		}
		names = append(names, user.DisplayName())
	}
	return names
}
