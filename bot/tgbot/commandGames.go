package tgbot

import (
	"context"
	"strconv"
	"strings"

	"github.com/goserg/padelclub/bot/model"
	"github.com/goserg/padelclub/internal/domain"
	"github.com/goserg/padelclub/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type GamesCommand struct {
	club *service.ClubService
}

func (c *GamesCommand) Run(ctx context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	var viewer domain.User
	if user.Linked() {
		member, err := c.club.GetUser(ctx, *user.ClubUserID)
		if err == nil {
			viewer = member
		}
	}
	views, err := c.club.ListOpenGames(ctx, viewer, service.GameFilter{})
	if err != nil {
		return err
	}
	if len(views) == 0 {
		resp.Text = "Открытых игр нет. Создать игру можно на сайте клуба."
		return nil
	}
	var b strings.Builder
	b.WriteString("Открытые игры:\n")
	for _, view := range views {
		b.WriteString(printGame(view))
		b.WriteString("\n")
	}
	resp.Text = b.String()
	return nil
}

func printGame(view service.GameView) string {
	var b strings.Builder
	b.WriteString(view.Game.StartsAt.Format("02.01 15:04"))
	b.WriteString(" | уровень ")
	b.WriteString(strconv.FormatFloat(view.Game.MinLevel, 'f', -1, 64))
	b.WriteString("-")
	b.WriteString(strconv.FormatFloat(view.Game.MaxLevel, 'f', -1, 64))
	b.WriteString(" | ")
	b.WriteString(strings.Join(view.Players, ", "))
	b.WriteString(" | мест: ")
	b.WriteString(strconv.Itoa(view.SlotsLeft))
	return b.String()
}

func (c *GamesCommand) Help() string {
	return "Список открытых игр"
}

func (c *GamesCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *GamesCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
