package tgbot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goserg/padelclub/bot/botstorage"
	botmodel "github.com/goserg/padelclub/bot/model"
	"github.com/goserg/padelclub/internal/config"
	"github.com/goserg/padelclub/internal/domain"
	"github.com/goserg/padelclub/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	bot *tgbotapi.BotAPI

	botStorage botstorage.BotStorage
	club       *service.ClubService
	log        *logrus.Entry

	// cancel func to stop the bot
	cancel func()

	subs subscriptions

	commands *Commands
}

var ErrBadRequest = errors.New("неизвестная команда")

func New(club *service.ClubService, bs botstorage.BotStorage, cfg config.Config, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("telegram api token: %w", err)
	}

	bot.Debug = cfg.Server.Debug
	_, err = bot.GetMe()
	if err != nil {
		return nil, err
	}
	subs := newSubs()
	users, err := bs.ListUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		for _, subType := range users[i].Subscriptions {
			subs.Add(subType, users[i].ID)
		}
	}

	b := Bot{
		bot:        bot,
		botStorage: bs,
		club:       club,
		log:        log.WithField("from", "tg_bot"),
		subs:       subs,
	}

	b.commands = NewCommands(
		club,
		bs,
		func(id int) {
			b.subs.Add(botmodel.NewGame, id)
		},
		func(id int) {
			b.subs.Remove(botmodel.NewGame, id)
		},
	)

	return &b, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(ctx, update)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	tgUser := update.SentFrom()
	if tgUser == nil {
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"user_id": tgUser.ID,
		"text":    update.Message.Text,
	})
	user, err := b.botStorage.GetUser(int(tgUser.ID))
	if err != nil {
		user, err = b.botStorage.NewUser(botmodel.User{
			ID:        int(tgUser.ID),
			FirstName: tgUser.FirstName,
			Username:  tgUser.UserName,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
		if err != nil {
			log.WithError(err).Error("unable to get user from db")
			return
		}
	}
	user.Role = b.resolveRole(ctx, user)

	err = b.botStorage.Log(user, update.Message.Text)
	if err != nil {
		log.WithError(err).Error("can't log to db")
	}

	if !update.Message.IsCommand() {
		return
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	err = b.commands.RunCommand(ctx, user, update.Message.Command(), update.Message.CommandArguments(), &msg)
	if err != nil {
		msg.Text = err.Error()
	}
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}

// resolveRole mirrors the linked club member's role; unlinked chat
// accounts act as plain users.
func (b *Bot) resolveRole(ctx context.Context, user botmodel.User) botmodel.UserRole {
	if !user.Linked() {
		return botmodel.RoleUser
	}
	member, err := b.club.GetUser(ctx, *user.ClubUserID)
	if err != nil {
		return botmodel.RoleUser
	}
	if member.IsAdmin() {
		return botmodel.RoleAdmin
	}
	return botmodel.RoleUser
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

// GameCreated pushes a note about a fresh open game to everyone
// subscribed to /sub notifications.
func (b *Bot) GameCreated(game domain.Game, creator domain.User) {
	text := fmt.Sprintf(
		"Новая игра %s, уровень %.1f-%.1f, организатор %s. Смотреть: /games",
		game.StartsAt.Format("02.01 15:04"),
		game.MinLevel,
		game.MaxLevel,
		creator.DisplayName(),
	)
	for _, id := range b.subs.GetUserIDs(botmodel.NewGame) {
		b.send(id, text)
	}
}

// WaitlistPromoted messages the promoted member directly if their chat
// account is linked.
func (b *Bot) WaitlistPromoted(training domain.Training, userID uuid.UUID) {
	user, err := b.botStorage.GetUserByClubID(userID)
	if err != nil {
		b.log.WithField("club_user_id", userID).WithError(err).Info("promoted member has no chat account")
		return
	}
	text := "Место освободилось: вы записаны на тренировку " + training.StartsAt.Format("02.01 15:04")
	b.send(user.ID, text)
}

func (b *Bot) send(chatID int, text string) {
	msg := tgbotapi.NewMessage(int64(chatID), text)
	if _, err := b.bot.Send(msg); err != nil {
		b.log.WithError(err).Error("send error")
	}
}
