package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/slack-go/slack"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
)

// slack reports this channel name for slash commands typed in a DM
const slackDirectMessageChannel = "directmessage"

type SlackHandler struct {
	commands      *CommandHandler
	signingSecret string
}

func NewSlackHandler(commands *CommandHandler, signingSecret string) *SlackHandler {
	return &SlackHandler{
		commands:      commands,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	reply := h.commands.Handle(r.Context(), slackOwner(&s), s.Text)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(&slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         reply,
	})
}

// slackOwner maps a workspace to a guild bucket and a DM to the user's bucket.
func slackOwner(s *slack.SlashCommand) entity.Owner {
	key := entity.GuildKey(s.TeamID)
	if s.ChannelName == slackDirectMessageChannel {
		key = entity.DirectKey(s.UserID)
	}

	return entity.Owner{
		Key:       key,
		ChannelID: s.ChannelID,
		AuthorID:  s.UserID,
	}
}
