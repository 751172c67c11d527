package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
	"github.com/diegoclair/meeting-alarm-bot/mocks"
)

func newSlackTest(t *testing.T) (*mocks.MockSlackClient, *Slack, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockSlackClient(ctrl)
	return client, NewSlack(client), ctrl
}

func TestSlack_Channel(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return channel name", func(t *testing.T) {
		client, s, ctrl := newSlackTest(t)
		defer ctrl.Finish()

		ch := &slack.Channel{}
		ch.ID = "C1"
		ch.Name = "general"
		client.EXPECT().
			GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{ChannelID: "C1"}).
			Return(ch, nil).Times(1)

		target, err := s.Channel(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, &entity.Target{ID: "C1", Name: "general"}, target)
	})

	t.Run("Should map channel_not_found", func(t *testing.T) {
		client, s, ctrl := newSlackTest(t)
		defer ctrl.Finish()

		client.EXPECT().GetConversationInfoContext(ctx, gomock.Any()).
			Return(nil, slack.SlackErrorResponse{Err: "channel_not_found"}).Times(1)

		_, err := s.Channel(ctx, "C1")
		require.ErrorIs(t, err, domain.ErrDestinationNotFound)
	})

	t.Run("Should keep other errors", func(t *testing.T) {
		client, s, ctrl := newSlackTest(t)
		defer ctrl.Finish()

		netErr := errors.New("connection reset")
		client.EXPECT().GetConversationInfoContext(ctx, gomock.Any()).Return(nil, netErr).Times(1)

		_, err := s.Channel(ctx, "C1")
		require.ErrorIs(t, err, netErr)
		assert.NotErrorIs(t, err, domain.ErrDestinationNotFound)
	})
}

func TestSlack_DirectChannel(t *testing.T) {
	ctx := context.Background()
	client, s, ctrl := newSlackTest(t)
	defer ctrl.Finish()

	ch := &slack.Channel{}
	ch.ID = "D1"
	client.EXPECT().
		OpenConversationContext(ctx, &slack.OpenConversationParameters{Users: []string{"U1"}, ReturnIM: true}).
		Return(ch, false, true, nil).Times(1)

	target, err := s.DirectChannel(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, &entity.Target{ID: "D1", Name: domain.DirectMessageName}, target)

	client.EXPECT().OpenConversationContext(ctx, gomock.Any()).
		Return(nil, false, false, slack.SlackErrorResponse{Err: "user_disabled"}).Times(1)

	_, err = s.DirectChannel(ctx, "U2")
	require.ErrorIs(t, err, domain.ErrDestinationNotFound)
}

func TestSlack_Send(t *testing.T) {
	ctx := context.Background()
	client, s, ctrl := newSlackTest(t)
	defer ctrl.Finish()

	target := &entity.Target{ID: "C1"}

	client.EXPECT().PostMessageContext(ctx, "C1", gomock.Any()).Return("C1", "123.456", nil).Times(1)
	require.NoError(t, s.Send(ctx, target, "hello"))

	postErr := errors.New("ratelimited")
	client.EXPECT().PostMessageContext(ctx, "C1", gomock.Any()).Return("", "", postErr).Times(1)
	require.ErrorIs(t, s.Send(ctx, target, "hello"), postErr)

	assert.Equal(t, "<!channel>", s.MentionEveryone())
}
