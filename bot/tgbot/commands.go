package tgbot

import (
	"context"

	"github.com/goserg/padelclub/bot/botstorage"
	"github.com/goserg/padelclub/bot/model"
	"github.com/goserg/padelclub/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Command interface {
	Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error
	Help() string
	Permission() mapset.Set[model.UserRole]
	Visibility() mapset.Set[model.UserRole]
}

type Commands struct {
	list map[string]Command
}

func NewCommands(
	club *service.ClubService,
	bs botstorage.BotStorage,
	subFn func(id int),
	unsubFn func(id int),
) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"games": &GamesCommand{
				club: club,
			},
			"schedule": &ScheduleCommand{
				club: club,
			},
			"me": &MeCommand{
				club:       club,
				botStorage: bs,
			},
			"sub": &SubCommand{
				botStorage: bs,
				sub:        subFn,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				unsub:      unsubFn,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(ctx context.Context, user model.User, cmd string, args string, resp *tgbotapi.MessageConfig) error {
	command, ok := uc.list[cmd]
	if !ok {
		return ErrBadRequest
	}
	if !command.Permission().Contains(user.Role) {
		return ErrBadRequest
	}
	return command.Run(ctx, user, args, resp)
}

func allRoles() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleUser)
}
