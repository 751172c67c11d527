package contract

import (
	"context"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
)

// Messenger is the chat platform as seen by the scheduler
type Messenger interface {
	// Channel looks up a channel the bot can post to
	Channel(ctx context.Context, channelID string) (*entity.Target, error)
	// DirectChannel opens (or reuses) the private channel with a user
	DirectChannel(ctx context.Context, userID string) (*entity.Target, error)
	Send(ctx context.Context, target *entity.Target, text string) error
	// MentionEveryone is the platform's all-members mention
	MentionEveryone() string
}
