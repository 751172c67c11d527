package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
)

type Discord struct {
	session contract.DiscordSession
}

func NewDiscord(session contract.DiscordSession) *Discord {
	return &Discord{session: session}
}

func (d *Discord) Channel(ctx context.Context, channelID string) (*entity.Target, error) {
	ch, err := d.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, discordError(err, "channel "+channelID)
	}
	return &entity.Target{ID: ch.ID, Name: ch.Name}, nil
}

func (d *Discord) DirectChannel(ctx context.Context, userID string) (*entity.Target, error) {
	ch, err := d.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, discordError(err, "user "+userID)
	}
	return &entity.Target{ID: ch.ID, Name: domain.DirectMessageName}, nil
}

func (d *Discord) Send(ctx context.Context, target *entity.Target, text string) error {
	if _, err := d.session.ChannelMessageSend(target.ID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send discord message to %s: %w", target.ID, err)
	}
	return nil
}

func (d *Discord) MentionEveryone() string {
	return "@everyone"
}

// discordError maps unknown or forbidden resources to ErrDestinationNotFound.
func discordError(err error, what string) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusNotFound, http.StatusForbidden:
			return fmt.Errorf("%w: %s: %v", domain.ErrDestinationNotFound, what, err)
		}
	}
	return fmt.Errorf("failed to get discord %s: %w", what, err)
}
