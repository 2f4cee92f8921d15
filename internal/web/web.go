package web

import (
	"errors"
	"strconv"
	"time"

	authservice "github.com/goserg/padelclub/auth/service"
	"github.com/goserg/padelclub/internal/config"
	"github.com/goserg/padelclub/internal/domain"
	"github.com/goserg/padelclub/internal/service"
	"github.com/goserg/padelclub/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Server struct {
	auth *authservice.Service
	club *service.ClubService
	app  *fiber.App
	cfg  config.Server
	log  *logrus.Entry
}

const userKey = "user"

func New(club *service.ClubService, cfg config.Server, authService *authservice.Service, log *logrus.Logger) *Server {
	server := Server{
		club: club,
		auth: authService,
		cfg:  cfg,
		log:  log.WithField("from", "web"),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		tokenCookie := c.Cookies("token")
		user, err := authService.Auth(c.Context(), tokenCookie, c.Method(), c.OriginalURL())
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrForbidden):
				c.Status(fiber.StatusForbidden)
			case errors.Is(err, authservice.ErrNotAuthorized):
				c.Status(fiber.StatusUnauthorized)
			default:
				c.Status(fiber.StatusInternalServerError)
			}
			return c.JSON(errResponse(err))
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	})

	app.Post(webpath.Signup, server.handleSignUp)
	app.Post(webpath.Signin, server.handleSignIn)
	app.Get(webpath.Signout, server.handleSignOut)
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Api)
	})

	app.Get(webpath.ApiHome, server.handleDashboard)
	app.Get(webpath.ApiGames, server.handleListGames)
	app.Post(webpath.ApiGames, server.handleCreateGame)
	app.Get(webpath.ApiMyGames, server.handleMyGames)
	app.Post(webpath.ApiJoinGame, server.handleJoinGame)
	app.Post(webpath.ApiLeaveGame, server.handleLeaveGame)
	app.Get(webpath.ApiTrainings, server.handleListTrainings)
	app.Post(webpath.ApiTrainings, server.handleCreateTraining)
	app.Get(webpath.ApiMyTrainings, server.handleMyTrainings)
	app.Post(webpath.ApiJoinTraining, server.handleJoinTraining)
	app.Post(webpath.ApiLeaveTraining, server.handleLeaveTraining)
	app.Post(webpath.ApiWaitlist, server.handleJoinWaitlist)
	app.Delete(webpath.ApiWaitlist, server.handleLeaveWaitlist)
	app.Get(webpath.ApiProfile, server.handleGetProfile)
	app.Put(webpath.ApiProfile, server.handleUpdateProfile)

	app.Get(webpath.ApiAdminUsers, server.handleAdminListUsers)
	app.Put(webpath.ApiAdminUser, server.handleAdminUpdateUser)
	app.Delete(webpath.ApiAdminUser, server.handleAdminDeleteUser)
	app.Post(webpath.ApiAdminSchedule, server.handleGenerateSchedule)

	server.app = app
	return &server
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	if s.cfg.CertFile != "" && s.cfg.KeyFile != "" {
		return s.app.ListenTLS(addr, s.cfg.CertFile, s.cfg.KeyFile)
	}
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// errorHandler translates domain errors to statuses. Late cancellation
// is checked before the validation family it wraps, it has to come back
// as a conflict the client can confirm.
func errorHandler(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrLateCancellation):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, domain.ErrCapacity):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrConflict):
		status = fiber.StatusConflict
	}
	return ctx.Status(status).JSON(errResponse(err))
}

func currentUser(ctx *fiber.Ctx) domain.User {
	user, _ := ctx.Context().UserValue(userKey).(domain.User)
	return user
}

func parseID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.UUID{}, errors.New("некорректный идентификатор")
	}
	return id, nil
}

func (s *Server) handleSignUp(ctx *fiber.Ctx) error {
	var req signupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	user, err := s.club.SignUp(ctx.Context(), req.Telegram, req.Name, req.Surname, req.Level, req.Availability)
	if err != nil {
		return err
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Status(fiber.StatusCreated).JSON(newResponse(convertUser(user)))
}

func (s *Server) handleSignIn(ctx *fiber.Ctx) error {
	var req signinRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	user, err := s.auth.Login(ctx.Context(), req.Telegram)
	if err != nil {
		return err
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.JSON(newResponse(convertUser(user)))
}

func (s *Server) handleSignOut(ctx *fiber.Ctx) error {
	ctx.ClearCookie("token")
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleDashboard(ctx *fiber.Ctx) error {
	stats, err := s.club.Dashboard(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(fiber.Map{
		"user":          convertUser(currentUser(ctx)),
		"activePlayers": stats.ActivePlayers,
		"openGames":     stats.OpenGames,
		"trainings":     stats.Trainings,
	}))
}

func (s *Server) handleListGames(ctx *fiber.Ctx) error {
	var filter service.GameFilter
	if raw := ctx.Query("date"); raw != "" {
		date, err := time.Parse(scheduleDateLayout, raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(errors.New("дата должна быть в формате ГГГГ-ММ-ДД")))
		}
		filter.Date = &date
	}
	if raw := ctx.Query("level"); raw != "" {
		level, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(errors.New("уровень должен быть числом")))
		}
		filter.Level = &level
	}
	views, err := s.club.ListOpenGames(ctx.Context(), currentUser(ctx), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(convertGameViews(views)))
}

func (s *Server) handleCreateGame(ctx *fiber.Ctx) error {
	var req createGameRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	game, err := s.club.CreateGame(ctx.Context(), currentUser(ctx), req.StartsAt, req.MinLevel, req.MaxLevel, req.Description)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(newResponse(convertGame(game)))
}

func (s *Server) handleMyGames(ctx *fiber.Ctx) error {
	views, err := s.club.MyGames(ctx.Context(), currentUser(ctx).ID)
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(convertGameViews(views)))
}

func (s *Server) handleJoinGame(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	game, err := s.club.JoinGame(ctx.Context(), currentUser(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(convertGame(game)))
}

func (s *Server) handleLeaveGame(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	var req leaveGameRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
		}
	}
	result, err := s.club.LeaveGame(ctx.Context(), currentUser(ctx), id, req.AcceptPenalty)
	if err != nil {
		return err
	}
	resp := leaveGameResponse{
		Deleted:   result.Deleted,
		Penalized: result.Penalized,
	}
	if !result.Deleted {
		game := convertGame(result.Game)
		resp.Game = &game
	}
	return ctx.JSON(newResponse(resp))
}

func (s *Server) handleListTrainings(ctx *fiber.Ctx) error {
	views, err := s.club.UpcomingTrainings(ctx.Context(), currentUser(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(convertTrainingViews(views)))
}

func (s *Server) handleCreateTraining(ctx *fiber.Ctx) error {
	var req createTrainingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	training, err := s.club.CreateTraining(ctx.Context(), currentUser(ctx), req.StartsAt, req.MaxParticipants)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(newResponse(convertTraining(training)))
}

func (s *Server) handleMyTrainings(ctx *fiber.Ctx) error {
	views, err := s.club.MyTrainings(ctx.Context(), currentUser(ctx).ID)
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(convertTrainingViews(views)))
}

func (s *Server) handleJoinTraining(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	status, training, err := s.club.JoinTraining(ctx.Context(), currentUser(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(joinTrainingResponse{
		Status:   string(status),
		Training: convertTraining(training),
	}))
}

func (s *Server) handleLeaveTraining(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	training, err := s.club.LeaveTraining(ctx.Context(), currentUser(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(convertTraining(training)))
}

func (s *Server) handleJoinWaitlist(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	status, training, err := s.club.JoinWaitlist(ctx.Context(), currentUser(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(joinTrainingResponse{
		Status:   string(status),
		Training: convertTraining(training),
	}))
}

func (s *Server) handleLeaveWaitlist(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	training, err := s.club.LeaveWaitlist(ctx.Context(), currentUser(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(convertTraining(training)))
}

func (s *Server) handleGetProfile(ctx *fiber.Ctx) error {
	user, err := s.club.GetUser(ctx.Context(), currentUser(ctx).ID)
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(convertUser(user)))
}

func (s *Server) handleUpdateProfile(ctx *fiber.Ctx) error {
	var req profileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	user, err := s.club.UpdateProfile(ctx.Context(), currentUser(ctx).ID, req.Name, req.Surname, req.Level, req.Availability)
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(convertUser(user)))
}

func (s *Server) handleAdminListUsers(ctx *fiber.Ctx) error {
	users, err := s.club.ListUsers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(convertUsers(users)))
}

func (s *Server) handleAdminUpdateUser(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	var req adminUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	user, err := s.club.AdminUpdateUser(ctx.Context(), currentUser(ctx), id, req.Level, req.Role)
	if err != nil {
		return err
	}
	return ctx.JSON(newResponse(convertUser(user)))
}

func (s *Server) handleAdminDeleteUser(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
	}
	if err := s.club.DeleteUser(ctx.Context(), currentUser(ctx), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleGenerateSchedule(ctx *fiber.Ctx) error {
	var req scheduleRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
		}
	}
	from := time.Now()
	if req.From != "" {
		if err := req.Validate(); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(errResponse(err))
		}
		from = req.FromDate()
	}
	trainings, err := s.club.GenerateWeeklySchedule(ctx.Context(), from)
	if err != nil {
		return err
	}
	out := make([]trainingResponse, 0, len(trainings))
	for _, t := range trainings {
		out = append(out, convertTraining(t))
	}
	s.log.WithField("count", len(out)).Info("weekly schedule generated")
	return ctx.Status(fiber.StatusCreated).JSON(newResponse(out))
}
