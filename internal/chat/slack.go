package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
)

// slack API error codes meaning the destination is gone or out of reach
var slackNotFound = map[string]bool{
	"channel_not_found": true,
	"user_not_found":    true,
	"user_disabled":     true,
	"is_archived":       true,
	"not_in_channel":    true,
	"cannot_dm_bot":     true,
}

type Slack struct {
	client contract.SlackClient
}

func NewSlack(client contract.SlackClient) *Slack {
	return &Slack{client: client}
}

func (s *Slack) Channel(ctx context.Context, channelID string) (*entity.Target, error) {
	ch, err := s.client.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{
		ChannelID: channelID,
	})
	if err != nil {
		return nil, slackError(err, "channel "+channelID)
	}
	return &entity.Target{ID: ch.ID, Name: ch.Name}, nil
}

func (s *Slack) DirectChannel(ctx context.Context, userID string) (*entity.Target, error) {
	ch, _, _, err := s.client.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users:    []string{userID},
		ReturnIM: true,
	})
	if err != nil {
		return nil, slackError(err, "user "+userID)
	}
	return &entity.Target{ID: ch.ID, Name: domain.DirectMessageName}, nil
}

func (s *Slack) Send(ctx context.Context, target *entity.Target, text string) error {
	_, _, err := s.client.PostMessageContext(ctx, target.ID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to send slack message to %s: %w", target.ID, err)
	}
	return nil
}

func (s *Slack) MentionEveryone() string {
	return "<!channel>"
}

func slackError(err error, what string) error {
	var apiErr slack.SlackErrorResponse
	if errors.As(err, &apiErr) && slackNotFound[apiErr.Err] {
		return fmt.Errorf("%w: %s: %v", domain.ErrDestinationNotFound, what, err)
	}
	return fmt.Errorf("failed to get slack %s: %w", what, err)
}
