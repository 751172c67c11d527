package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the subset of the Slack API the messenger uses
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	GetConversationInfoContext(ctx context.Context, input *slack.GetConversationInfoInput) (*slack.Channel, error)
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
