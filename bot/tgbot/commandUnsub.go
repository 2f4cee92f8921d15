package tgbot

import (
	"context"

	"github.com/goserg/padelclub/bot/botstorage"
	"github.com/goserg/padelclub/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	unsub      func(int)
}

func (c *UnsubCommand) Run(_ context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	err := c.botStorage.Unsubscribe(user, model.NewGame)
	if err != nil {
		return err
	}
	c.unsub(user.ID)
	resp.Text = "Вы отписаны от уведомлений. Подписаться снова: /sub"
	return nil
}

func (c *UnsubCommand) Help() string {
	return "Отписаться от уведомлений о новых играх"
}

func (c *UnsubCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *UnsubCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
