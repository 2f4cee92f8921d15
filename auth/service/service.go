package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/goserg/padelclub/internal/domain"
	"github.com/goserg/padelclub/internal/normalize"
	"github.com/goserg/padelclub/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service issues and checks session cookies. Identity is the telegram
// handle, there are no passwords: the club is small enough that holding
// a known handle is the whole proof.
type Service struct {
	users storage.UserStorage
	cfg   Config
	rules []compiledRule
	log   *logrus.Entry
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

var (
	ErrForbidden     = errors.New("access denied")
	ErrNotAuthorized = errors.New("unauthorized")
)

func New(ctx context.Context, cfg Config, users storage.UserStorage, log *logrus.Logger) (*Service, error) {
	s := Service{
		cfg:   cfg,
		users: users,
		log:   log.WithField("from", "auth"),
	}
	for _, rule := range cfg.Rules {
		re, err := regexp.Compile(rule.Path)
		if err != nil {
			return nil, err
		}
		s.rules = append(s.rules, compiledRule{Rule: rule, re: re})
	}
	if cfg.AdminTelegram != "" {
		if err := s.bootstrapAdmin(ctx); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// bootstrapAdmin makes sure the configured handle exists and holds the
// admin role, so a fresh database has someone who can manage the club.
func (s *Service) bootstrapAdmin(ctx context.Context) error {
	handle := normalize.Handle(s.cfg.AdminTelegram)
	_, err := s.users.GetUserByTelegram(ctx, handle)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	_, err = s.users.CreateUser(ctx, domain.User{
		ID:           uuid.New(),
		Telegram:     handle,
		Name:         "Админ",
		Surname:      "Клуба",
		Reliability:  domain.DefaultReliability,
		Role:         domain.RoleAdmin,
		RegisteredAt: time.Now(),
	})
	if err != nil {
		return err
	}
	s.log.WithField("telegram", handle).Info("admin account created")
	return nil
}

func (s *Service) Login(ctx context.Context, handle string) (domain.User, error) {
	return s.users.GetUserByTelegram(ctx, normalize.Handle(handle))
}

func (s *Service) GenerateJWTCookie(userID uuid.UUID, host string) (*fiber.Cookie, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	expirationTime := time.Now().Add(expiresIn)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  time.Now().Unix(),
		Subject:   userID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		Secure:   false,
		HTTPOnly: true,
	}, nil
}

// Auth resolves the cookie to a member and checks the request against
// the configured access rules. The first rule whose path and method
// match decides the outcome.
func (s *Service) Auth(ctx context.Context, cookie string, method string, url string) (domain.User, error) {
	user, err := s.getUserFromToken(ctx, cookie)
	if err != nil {
		return domain.User{}, ErrNotAuthorized
	}

	for _, rule := range s.rules {
		if !rule.re.MatchString(url) {
			continue
		}
		for _, ruleMethod := range rule.Method {
			if ruleMethod != "*" && ruleMethod != method {
				continue
			}
			for _, role := range rule.Allow {
				if role == "*" || role == string(user.Role) {
					return user, nil
				}
			}
			return domain.User{}, ErrForbidden
		}
	}
	return domain.User{}, ErrForbidden
}

func (s *Service) getUserFromToken(ctx context.Context, cookie string) (domain.User, error) {
	if cookie == "" {
		return domain.User{}, errors.New("no token")
	}
	token, err := jwt.ParseWithClaims(cookie, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Token), nil
	})
	if err == nil && token.Valid {
		claims, ok := token.Claims.(*jwt.StandardClaims)
		if !ok {
			return domain.User{}, errors.New("bad request")
		}
		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			return domain.User{}, err
		}
		return s.users.GetUser(ctx, id)
	}
	ve := jwt.ValidationError{}
	if ok := errors.As(err, &ve); !ok {
		return domain.User{}, err
	}
	if ve.Errors&jwt.ValidationErrorMalformed != 0 {
		return domain.User{}, errors.New("bad request")
	}
	if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
		return domain.User{}, errors.New("token expired")
	}
	return domain.User{}, err
}
