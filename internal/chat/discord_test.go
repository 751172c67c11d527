package chat

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
	"github.com/diegoclair/meeting-alarm-bot/mocks"
)

func restError(status int) error {
	return &discordgo.RESTError{Response: &http.Response{StatusCode: status, Status: http.StatusText(status)}}
}

func TestDiscord_Channel(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    *entity.Target
		wantErr error
	}{
		{name: "Should return channel", want: &entity.Target{ID: "C1", Name: "general"}},
		{name: "Should map unknown channel", err: restError(http.StatusNotFound), wantErr: domain.ErrDestinationNotFound},
		{name: "Should map missing access", err: restError(http.StatusForbidden), wantErr: domain.ErrDestinationNotFound},
		{name: "Should keep server errors", err: restError(http.StatusBadGateway)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			session := mocks.NewMockDiscordSession(ctrl)
			if tt.err != nil {
				session.EXPECT().Channel("C1", gomock.Any()).Return(nil, tt.err).Times(1)
			} else {
				session.EXPECT().Channel("C1", gomock.Any()).
					Return(&discordgo.Channel{ID: "C1", Name: "general"}, nil).Times(1)
			}

			target, err := NewDiscord(session).Channel(context.Background(), "C1")
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.err != nil:
				require.ErrorIs(t, err, tt.err)
				assert.NotErrorIs(t, err, domain.ErrDestinationNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, target)
			}
		})
	}
}

func TestDiscord_DirectChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockDiscordSession(ctrl)
	session.EXPECT().UserChannelCreate("U1", gomock.Any()).Return(&discordgo.Channel{ID: "D1"}, nil).Times(1)

	target, err := NewDiscord(session).DirectChannel(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, &entity.Target{ID: "D1", Name: domain.DirectMessageName}, target)
}

func TestDiscord_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockDiscordSession(ctrl)
	d := NewDiscord(session)
	target := &entity.Target{ID: "C1"}

	session.EXPECT().ChannelMessageSend("C1", "Hey, @everyone! It's time - 09:30!", gomock.Any()).
		Return(&discordgo.Message{ID: "M1"}, nil).Times(1)
	require.NoError(t, d.Send(context.Background(), target, "Hey, @everyone! It's time - 09:30!"))

	sendErr := errors.New("missing permissions")
	session.EXPECT().ChannelMessageSend("C1", gomock.Any(), gomock.Any()).Return(nil, sendErr).Times(1)
	require.ErrorIs(t, d.Send(context.Background(), target, "x"), sendErr)

	assert.Equal(t, "@everyone", d.MentionEveryone())
}
