package web

import (
	"errors"
	"regexp"
	"time"

	"github.com/goserg/padelclub/internal/domain"
	"github.com/goserg/padelclub/internal/service"
)

var handleRegexp = regexp.MustCompile(`^@[A-Za-z]\w{2,}$`)

type signupRequest struct {
	Telegram     string  `json:"telegram"`
	Name         string  `json:"name"`
	Surname      string  `json:"surname"`
	Level        float64 `json:"level"`
	Availability string  `json:"availability"`
}

func (r signupRequest) Validate() error {
	var err error
	if !handleRegexp.MatchString(r.Telegram) {
		err = errors.Join(err, errors.New("telegram должен начинаться с @ и содержать только латинские буквы, цифры и знаки подчеркивания"))
	}
	if r.Name == "" {
		err = errors.Join(err, errors.New("имя не должно быть пустым"))
	}
	if r.Surname == "" {
		err = errors.Join(err, errors.New("фамилия не должна быть пустой"))
	}
	if r.Level < 0 || r.Level > 7 {
		err = errors.Join(err, errors.New("уровень должен быть от 0 до 7"))
	}
	if r.Availability == "" {
		err = errors.Join(err, errors.New("укажите, когда вы можете играть"))
	}
	return err
}

type signinRequest struct {
	Telegram string `json:"telegram"`
}

func (r signinRequest) Validate() error {
	if r.Telegram == "" {
		return errors.New("telegram не должен быть пустым")
	}
	return nil
}

type createGameRequest struct {
	StartsAt    time.Time `json:"startsAt"`
	MinLevel    float64   `json:"minLevel"`
	MaxLevel    float64   `json:"maxLevel"`
	Description string    `json:"description"`
}

func (r createGameRequest) Validate() error {
	var err error
	if r.StartsAt.IsZero() {
		err = errors.Join(err, errors.New("укажите время игры"))
	}
	if r.MinLevel < 0 || r.MaxLevel < 0 {
		err = errors.Join(err, errors.New("уровень не может быть отрицательным"))
	}
	return err
}

type leaveGameRequest struct {
	AcceptPenalty bool `json:"acceptPenalty"`
}

type createTrainingRequest struct {
	StartsAt        time.Time `json:"startsAt"`
	MaxParticipants int       `json:"maxParticipants"`
}

func (r createTrainingRequest) Validate() error {
	var err error
	if r.StartsAt.IsZero() {
		err = errors.Join(err, errors.New("укажите время тренировки"))
	}
	if r.MaxParticipants < 1 {
		err = errors.Join(err, errors.New("нужно хотя бы одно место"))
	}
	return err
}

type profileRequest struct {
	Name         string  `json:"name"`
	Surname      string  `json:"surname"`
	Level        float64 `json:"level"`
	Availability string  `json:"availability"`
}

func (r profileRequest) Validate() error {
	var err error
	if r.Name == "" {
		err = errors.Join(err, errors.New("имя не должно быть пустым"))
	}
	if r.Surname == "" {
		err = errors.Join(err, errors.New("фамилия не должна быть пустой"))
	}
	if r.Level < 0 || r.Level > 7 {
		err = errors.Join(err, errors.New("уровень должен быть от 0 до 7"))
	}
	return err
}

type adminUserRequest struct {
	Level float64 `json:"level"`
	Role  string  `json:"role"`
}

func (r adminUserRequest) Validate() error {
	var err error
	if r.Level < 0 || r.Level > 7 {
		err = errors.Join(err, errors.New("уровень должен быть от 0 до 7"))
	}
	if r.Role == "" {
		err = errors.Join(err, errors.New("роль не должна быть пустой"))
	}
	return err
}

type scheduleRequest struct {
	From string `json:"from"`
}

const scheduleDateLayout = "2006-01-02"

func (r scheduleRequest) Validate() error {
	if _, err := time.Parse(scheduleDateLayout, r.From); err != nil {
		return errors.New("дата должна быть в формате ГГГГ-ММ-ДД")
	}
	return nil
}

func (r scheduleRequest) FromDate() time.Time {
	t, _ := time.Parse(scheduleDateLayout, r.From)
	return t
}

type userResponse struct {
	ID                string    `json:"id"`
	Telegram          string    `json:"telegram"`
	Name              string    `json:"name"`
	Surname           string    `json:"surname"`
	Level             float64   `json:"level"`
	Availability      string    `json:"availability"`
	Reliability       float64   `json:"reliability"`
	Role              string    `json:"role"`
	MatchesPlayed     int       `json:"matchesPlayed"`
	TrainingsAttended int       `json:"trainingsAttended"`
	RegisteredAt      time.Time `json:"registeredAt"`
}

func convertUser(u domain.User) userResponse {
	return userResponse{
		ID:                u.ID.String(),
		Telegram:          u.Telegram,
		Name:              u.Name,
		Surname:           u.Surname,
		Level:             u.Level,
		Availability:      u.Availability,
		Reliability:       u.Reliability,
		Role:              string(u.Role),
		MatchesPlayed:     u.MatchesPlayed,
		TrainingsAttended: u.TrainingsAttended,
		RegisteredAt:      u.RegisteredAt,
	}
}

func convertUsers(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, convertUser(u))
	}
	return out
}

type gameResponse struct {
	ID          string    `json:"id"`
	StartsAt    time.Time `json:"startsAt"`
	MinLevel    float64   `json:"minLevel"`
	MaxLevel    float64   `json:"maxLevel"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	Players     []string  `json:"players"`
	SlotsLeft   int       `json:"slotsLeft"`
	Action      string    `json:"action,omitempty"`
}

func convertGame(g domain.Game) gameResponse {
	return gameResponse{
		ID:          g.ID.String(),
		StartsAt:    g.StartsAt,
		MinLevel:    g.MinLevel,
		MaxLevel:    g.MaxLevel,
		Status:      string(g.Status),
		Description: g.Description,
		SlotsLeft:   g.SlotsLeft(),
	}
}

func convertGameView(v service.GameView) gameResponse {
	resp := convertGame(v.Game)
	resp.Players = v.Players
	resp.SlotsLeft = v.SlotsLeft
	resp.Action = string(v.Action)
	return resp
}

func convertGameViews(views []service.GameView) []gameResponse {
	out := make([]gameResponse, 0, len(views))
	for _, v := range views {
		out = append(out, convertGameView(v))
	}
	return out
}

type trainingResponse struct {
	ID              string    `json:"id"`
	StartsAt        time.Time `json:"startsAt"`
	Coach           string    `json:"coach,omitempty"`
	MaxParticipants int       `json:"maxParticipants"`
	Participants    int       `json:"participants"`
	Waitlist        int       `json:"waitlist"`
	CostPerPlayer   int       `json:"costPerPlayer,omitempty"`
	IsParticipant   bool      `json:"isParticipant"`
	InWaitlist      bool      `json:"inWaitlist"`
}

func convertTraining(t domain.Training) trainingResponse {
	return trainingResponse{
		ID:              t.ID.String(),
		StartsAt:        t.StartsAt,
		Coach:           t.Coach,
		MaxParticipants: t.MaxParticipants,
		Participants:    len(t.Participants),
		Waitlist:        len(t.Waitlist),
	}
}

func convertTrainingView(v service.TrainingView) trainingResponse {
	resp := convertTraining(v.Training)
	resp.CostPerPlayer = v.CostPerPlayer
	resp.IsParticipant = v.IsParticipant
	resp.InWaitlist = v.InWaitlist
	return resp
}

func convertTrainingViews(views []service.TrainingView) []trainingResponse {
	out := make([]trainingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, convertTrainingView(v))
	}
	return out
}

type joinTrainingResponse struct {
	Status   string           `json:"status"`
	Training trainingResponse `json:"training"`
}

type leaveGameResponse struct {
	Deleted   bool          `json:"deleted"`
	Penalized bool          `json:"penalized"`
	Game      *gameResponse `json:"game,omitempty"`
}
