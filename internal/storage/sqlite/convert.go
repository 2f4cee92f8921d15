package sqlite

import (
	"github.com/goserg/padelclub/gen/model"
	"github.com/goserg/padelclub/internal/domain"

	"github.com/google/uuid"
)

func convertUserToDomain(user model.Users) (domain.User, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:                id,
		Telegram:          user.Telegram,
		Name:              user.Name,
		Surname:           user.Surname,
		Level:             user.Level,
		Availability:      user.Availability,
		Reliability:       user.Reliability,
		Role:              domain.Role(user.Role),
		MatchesPlayed:     int(user.MatchesPlayed),
		TrainingsAttended: int(user.TrainingsAttended),
		RegisteredAt:      user.RegisteredAt,
		Version:           user.Version,
	}, nil
}

func convertUsersToDomain(users []model.Users) ([]domain.User, error) {
	converted := make([]domain.User, 0, len(users))
	for i := range users {
		user, err := convertUserToDomain(users[i])
		if err != nil {
			return nil, err
		}
		converted = append(converted, user)
	}
	return converted, nil
}

func convertUserFromDomain(user domain.User) model.Users {
	return model.Users{
		ID:                user.ID.String(),
		Telegram:          user.Telegram,
		Name:              user.Name,
		Surname:           user.Surname,
		Level:             user.Level,
		Availability:      user.Availability,
		Reliability:       user.Reliability,
		Role:              string(user.Role),
		MatchesPlayed:     int32(user.MatchesPlayed),
		TrainingsAttended: int32(user.TrainingsAttended),
		RegisteredAt:      user.RegisteredAt,
		Version:           user.Version,
	}
}

func convertGameToDomain(game model.Games, players []model.GamePlayers) (domain.Game, error) {
	id, err := uuid.Parse(game.ID)
	if err != nil {
		return domain.Game{}, err
	}
	creatorID, err := uuid.Parse(game.CreatorID)
	if err != nil {
		return domain.Game{}, err
	}
	participants := make([]uuid.UUID, 0, len(players))
	for i := range players {
		userID, err := uuid.Parse(players[i].UserID)
		if err != nil {
			return domain.Game{}, err
		}
		participants = append(participants, userID)
	}
	return domain.Game{
		ID:           id,
		StartsAt:     game.StartsAt,
		CreatorID:    creatorID,
		Participants: participants,
		MinLevel:     game.MinLevel,
		MaxLevel:     game.MaxLevel,
		Status:       domain.GameStatus(game.Status),
		Description:  game.Description,
		Version:      game.Version,
	}, nil
}

func convertGamesToDomain(games []model.Games, players []model.GamePlayers) ([]domain.Game, error) {
	byGame := make(map[string][]model.GamePlayers)
	for i := range players {
		byGame[players[i].GameID] = append(byGame[players[i].GameID], players[i])
	}
	converted := make([]domain.Game, 0, len(games))
	for i := range games {
		game, err := convertGameToDomain(games[i], byGame[games[i].ID])
		if err != nil {
			return nil, err
		}
		converted = append(converted, game)
	}
	return converted, nil
}

func convertGameFromDomain(game domain.Game) model.Games {
	return model.Games{
		ID:          game.ID.String(),
		StartsAt:    game.StartsAt,
		CreatorID:   game.CreatorID.String(),
		MinLevel:    game.MinLevel,
		MaxLevel:    game.MaxLevel,
		Status:      string(game.Status),
		Description: game.Description,
		Version:     game.Version,
	}
}

func convertGameRosterFromDomain(game domain.Game) []model.GamePlayers {
	rows := make([]model.GamePlayers, 0, len(game.Participants))
	for i := range game.Participants {
		rows = append(rows, model.GamePlayers{
			GameID:   game.ID.String(),
			UserID:   game.Participants[i].String(),
			Position: int32(i),
		})
	}
	return rows
}

func convertTrainingToDomain(training model.Trainings, players []model.TrainingPlayers, waitlist []model.TrainingWaitlist) (domain.Training, error) {
	id, err := uuid.Parse(training.ID)
	if err != nil {
		return domain.Training{}, err
	}
	participants := make([]uuid.UUID, 0, len(players))
	for i := range players {
		userID, err := uuid.Parse(players[i].UserID)
		if err != nil {
			return domain.Training{}, err
		}
		participants = append(participants, userID)
	}
	queued := make([]uuid.UUID, 0, len(waitlist))
	for i := range waitlist {
		userID, err := uuid.Parse(waitlist[i].UserID)
		if err != nil {
			return domain.Training{}, err
		}
		queued = append(queued, userID)
	}
	return domain.Training{
		ID:              id,
		StartsAt:        training.StartsAt,
		MaxParticipants: int(training.MaxParticipants),
		Participants:    participants,
		Waitlist:        queued,
		Coach:           training.Coach,
		Version:         training.Version,
	}, nil
}

func convertTrainingsToDomain(trainings []model.Trainings, players []model.TrainingPlayers, waitlist []model.TrainingWaitlist) ([]domain.Training, error) {
	playersByTraining := make(map[string][]model.TrainingPlayers)
	for i := range players {
		playersByTraining[players[i].TrainingID] = append(playersByTraining[players[i].TrainingID], players[i])
	}
	waitlistByTraining := make(map[string][]model.TrainingWaitlist)
	for i := range waitlist {
		waitlistByTraining[waitlist[i].TrainingID] = append(waitlistByTraining[waitlist[i].TrainingID], waitlist[i])
	}
	converted := make([]domain.Training, 0, len(trainings))
	for i := range trainings {
		training, err := convertTrainingToDomain(
			trainings[i],
			playersByTraining[trainings[i].ID],
			waitlistByTraining[trainings[i].ID],
		)
		if err != nil {
			return nil, err
		}
		converted = append(converted, training)
	}
	return converted, nil
}

func convertTrainingFromDomain(training domain.Training) model.Trainings {
	return model.Trainings{
		ID:              training.ID.String(),
		StartsAt:        training.StartsAt,
		MaxParticipants: int32(training.MaxParticipants),
		Coach:           training.Coach,
		Version:         training.Version,
	}
}

func convertTrainingRosterFromDomain(training domain.Training) []model.TrainingPlayers {
	rows := make([]model.TrainingPlayers, 0, len(training.Participants))
	for i := range training.Participants {
		rows = append(rows, model.TrainingPlayers{
			TrainingID: training.ID.String(),
			UserID:     training.Participants[i].String(),
			Position:   int32(i),
		})
	}
	return rows
}

func convertTrainingWaitlistFromDomain(training domain.Training) []model.TrainingWaitlist {
	rows := make([]model.TrainingWaitlist, 0, len(training.Waitlist))
	for i := range training.Waitlist {
		rows = append(rows, model.TrainingWaitlist{
			TrainingID: training.ID.String(),
			UserID:     training.Waitlist[i].String(),
			Position:   int32(i),
		})
	}
	return rows
}
