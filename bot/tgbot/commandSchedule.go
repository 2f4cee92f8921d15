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

type ScheduleCommand struct {
	club *service.ClubService
}

func (c *ScheduleCommand) Run(ctx context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	var viewer domain.User
	if user.Linked() {
		member, err := c.club.GetUser(ctx, *user.ClubUserID)
		if err == nil {
			viewer = member
		}
	}
	views, err := c.club.UpcomingTrainings(ctx, viewer)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		resp.Text = "Ближайших тренировок нет."
		return nil
	}
	var b strings.Builder
	b.WriteString("Расписание тренировок:\n")
	for _, view := range views {
		b.WriteString(printTraining(view))
		b.WriteString("\n")
	}
	resp.Text = b.String()
	return nil
}

func printTraining(view service.TrainingView) string {
	var b strings.Builder
	t := view.Training
	b.WriteString(t.StartsAt.Format("02.01 15:04"))
	if t.Coach != "" {
		b.WriteString(" | тренер ")
		b.WriteString(t.Coach)
	}
	b.WriteString(" | ")
	b.WriteString(strconv.Itoa(len(t.Participants)))
	b.WriteString("/")
	b.WriteString(strconv.Itoa(t.MaxParticipants))
	if len(t.Waitlist) > 0 {
		b.WriteString(" (+")
		b.WriteString(strconv.Itoa(len(t.Waitlist)))
		b.WriteString(" в очереди)")
	}
	b.WriteString(" | ")
	b.WriteString(strconv.Itoa(view.CostPerPlayer))
	b.WriteString(" ₽ с человека")
	return b.String()
}

func (c *ScheduleCommand) Help() string {
	return "Расписание ближайших тренировок"
}

func (c *ScheduleCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *ScheduleCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
