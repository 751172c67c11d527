package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
)

type DiscordHandler struct {
	commands *CommandHandler
	prefix   string
	timeout  time.Duration
	log      *zap.Logger
}

func NewDiscordHandler(commands *CommandHandler, prefix string, timeout time.Duration, log *zap.Logger) *DiscordHandler {
	return &DiscordHandler{
		commands: commands,
		prefix:   prefix,
		timeout:  timeout,
		log:      log.Named("discord"),
	}
}

// OnMessageCreate is registered with session.AddHandler.
func (h *DiscordHandler) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	reply, ok := h.Reply(ctx, m.Message, systemChannel(s, m.GuildID))
	if !ok {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply, discordgo.WithContext(ctx)); err != nil {
		h.log.Error("failed to reply", zap.String("channel", m.ChannelID), zap.Error(err))
	}
}

// Reply runs a prefixed command and returns the answer. ok is false when the
// message is not a command for this bot.
func (h *DiscordHandler) Reply(ctx context.Context, msg *discordgo.Message, systemChannelID string) (reply string, ok bool) {
	text, ok := strings.CutPrefix(msg.Content, h.prefix)
	if !ok || strings.TrimSpace(text) == "" {
		return "", false
	}
	return h.commands.Handle(ctx, discordOwner(msg, systemChannelID), text), true
}

// discordOwner picks the bucket for a message. Guild entries are delivered to
// the guild's system channel when it has one, else to the invoking channel.
func discordOwner(msg *discordgo.Message, systemChannelID string) entity.Owner {
	if msg.GuildID == "" {
		return entity.Owner{
			Key:       entity.DirectKey(msg.Author.ID),
			ChannelID: msg.ChannelID,
			AuthorID:  msg.Author.ID,
		}
	}

	channelID := msg.ChannelID
	if systemChannelID != "" {
		channelID = systemChannelID
	}
	return entity.Owner{
		Key:       entity.GuildKey(msg.GuildID),
		ChannelID: channelID,
		AuthorID:  msg.Author.ID,
	}
}

func systemChannel(s *discordgo.Session, guildID string) string {
	if guildID == "" {
		return ""
	}
	if g, err := s.State.Guild(guildID); err == nil {
		return g.SystemChannelID
	}
	if g, err := s.Guild(guildID); err == nil {
		return g.SystemChannelID
	}
	return ""
}
