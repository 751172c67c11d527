package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/command"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
)

const usage = "Try `add HH:MM`, `list`, `delete <index|all>` or `timezone [offset]`."

// CommandHandler turns a text command from any chat platform into a reply.
// User mistakes become friendly replies, they are never returned as errors.
type CommandHandler struct {
	schedule contract.ScheduleService
	resolver contract.DestinationResolver
	log      *zap.Logger
}

func NewCommandHandler(schedule contract.ScheduleService, resolver contract.DestinationResolver, log *zap.Logger) *CommandHandler {
	return &CommandHandler{
		schedule: schedule,
		resolver: resolver,
		log:      log.Named("commands"),
	}
}

func (h *CommandHandler) Handle(ctx context.Context, owner entity.Owner, text string) string {
	cmd, err := command.Parse(text)
	if err != nil {
		return h.reject(err, text)
	}

	switch cmd.Type {
	case command.CmdAdd:
		return h.handleAdd(ctx, owner, cmd)
	case command.CmdList:
		return h.handleList(ctx, owner)
	case command.CmdDelete:
		return h.handleDelete(ctx, owner, cmd)
	case command.CmdTimezone:
		return h.handleTimezone(ctx, owner, cmd)
	default:
		return h.reject(domain.ErrUnknownCommand, text)
	}
}

func (h *CommandHandler) handleAdd(ctx context.Context, owner entity.Owner, cmd *command.Command) string {
	destination := owner.ChannelID
	if owner.Key.Kind == entity.DirectMessage {
		destination = owner.AuthorID
	}

	e, err := h.schedule.AddEntry(ctx, owner.Key, cmd.Hour, cmd.Minute, destination, owner.AuthorID)
	if err != nil {
		return h.reject(err, domain.FormatTime(cmd.Hour, cmd.Minute))
	}
	return fmt.Sprintf("Scheduled a daily meeting at %s", e.Time())
}

func (h *CommandHandler) handleList(ctx context.Context, owner entity.Owner) string {
	entries := h.schedule.ListEntries(owner.Key)
	if len(entries) == 0 {
		return "Our schedule is empty."
	}

	var sb strings.Builder
	sb.WriteString("Here's our schedule:")
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("\n[%d] %s on %s", i, e.Time(), h.destinationName(ctx, e)))
	}
	return sb.String()
}

// destinationName is best effort, listing must work even if a channel is gone.
func (h *CommandHandler) destinationName(ctx context.Context, e entity.Entry) string {
	if e.Kind == entity.DirectMessage {
		return domain.DirectMessageName
	}

	target, err := h.resolver.Resolve(ctx, e)
	if err != nil {
		h.log.Debug("could not resolve destination for listing",
			zap.String("destination", e.DestinationID), zap.Error(err))
		return "#" + e.DestinationID
	}
	return "#" + target.Name
}

func (h *CommandHandler) handleDelete(ctx context.Context, owner entity.Owner, cmd *command.Command) string {
	if len(h.schedule.ListEntries(owner.Key)) == 0 {
		return h.reject(domain.ErrEmptySchedule, "")
	}

	if cmd.All {
		n, err := h.schedule.ClearEntries(ctx, owner.Key)
		if err != nil {
			return h.reject(err, "")
		}
		return fmt.Sprintf("Deleted all %d entries from our schedule.", n)
	}

	e, err := h.schedule.DeleteEntry(ctx, owner.Key, cmd.Index)
	if err != nil {
		return h.reject(err, fmt.Sprint(cmd.Index))
	}
	return fmt.Sprintf("Deleted the daily meeting at %s", e.Time())
}

func (h *CommandHandler) handleTimezone(ctx context.Context, owner entity.Owner, cmd *command.Command) string {
	if cmd.Offset == nil {
		offset, ok := h.schedule.GetTimezone(owner.Key)
		if !ok {
			return fmt.Sprintf("No timezone set, times are read as %s.", domain.FormatOffset(0))
		}
		return fmt.Sprintf("Current timezone is %s", domain.FormatOffset(offset))
	}

	if err := h.schedule.SetTimezone(ctx, owner.Key, *cmd.Offset); err != nil {
		return h.reject(err, fmt.Sprint(*cmd.Offset))
	}
	return fmt.Sprintf("Timezone set to %s", domain.FormatOffset(*cmd.Offset))
}

// reject maps an error to the reply shown to the user. Anything that is not a
// user mistake is logged and hidden behind a generic message.
func (h *CommandHandler) reject(err error, input string) string {
	switch {
	case errors.Is(err, domain.ErrScheduleFull):
		return fmt.Sprintf("Couldn't schedule, you reached the %d entries limit.", domain.ScheduleLimit)
	case errors.Is(err, domain.ErrDuplicateTime):
		return fmt.Sprintf("There's already a daily meeting at %s.", input)
	case errors.Is(err, domain.ErrInvalidTimeFormat):
		return "Didn't understand the time. Please provide a time like so \"20:30\"."
	case errors.Is(err, domain.ErrInvalidIndex):
		return "There's no entry with that index, check the schedule with `list`."
	case errors.Is(err, domain.ErrInvalidOffset):
		return fmt.Sprintf("The timezone must be a whole number of hours between %d and %d.",
			domain.MinUTCOffset, domain.MaxUTCOffset)
	case errors.Is(err, domain.ErrEmptySchedule):
		return "Our schedule is empty, there's nothing to delete."
	case errors.Is(err, domain.ErrUnknownCommand):
		return fmt.Sprintf("I don't know what %q means. %s", strings.TrimSpace(input), usage)
	default:
		h.log.Error("command failed", zap.Error(err))
		return "Something went wrong, please try again."
	}
}
