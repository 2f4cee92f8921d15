package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/goserg/padelclub/bot/botstorage"
	"github.com/goserg/padelclub/bot/model"
	"github.com/goserg/padelclub/internal/domain"
	"github.com/goserg/padelclub/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type MeCommand struct {
	club       *service.ClubService
	botStorage botstorage.BotStorage
}

func (c *MeCommand) Run(ctx context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if user.Linked() {
		member, err := c.club.GetUser(ctx, *user.ClubUserID)
		if err != nil {
			return err
		}
		resp.Text = printMember(member)
		return nil
	}
	text, err := c.link(ctx, user)
	if err != nil {
		return err
	}
	resp.Text = text
	return nil
}

// link matches the chat account to a member by telegram username, so
// nobody can claim someone else's profile.
func (c *MeCommand) link(ctx context.Context, user model.User) (string, error) {
	if user.Username == "" {
		return "", errors.New("у вашего аккаунта нет ника в телеграме, привязка невозможна")
	}
	member, err := c.club.GetUserByTelegram(ctx, "@"+user.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", errors.New("участник @" + user.Username + " не найден, зарегистрируйтесь на сайте клуба")
		}
		return "", err
	}
	err = c.botStorage.LinkClubUser(user, member.ID)
	if err != nil {
		return "", err
	}
	return "Аккаунт привязан. Профиль:\n" + printMember(member), nil
}

func printMember(member domain.User) string {
	var b strings.Builder
	b.WriteString("Имя: ")
	b.WriteString(member.Name)
	b.WriteString(" ")
	b.WriteString(member.Surname)
	b.WriteString("\n")
	b.WriteString("Уровень: ")
	b.WriteString(strconv.FormatFloat(member.Level, 'f', -1, 64))
	b.WriteString("\n")
	b.WriteString("Надежность: ")
	b.WriteString(strconv.FormatFloat(member.Reliability, 'f', 1, 64))
	b.WriteString("\n")
	b.WriteString("Сыграно игр: ")
	b.WriteString(strconv.Itoa(member.MatchesPlayed))
	b.WriteString("\n")
	b.WriteString("Посещено тренировок: ")
	b.WriteString(strconv.Itoa(member.TrainingsAttended))
	b.WriteString("\n")
	b.WriteString("Зарегистрирован: ")
	b.WriteString(member.RegisteredAt.Format(time.RFC1123))
	return b.String()
}

func (c *MeCommand) Help() string {
	return "Привязывает аккаунт по нику и показывает профиль участника клуба"
}

func (c *MeCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *MeCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
