package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// MessageSender posts a reply to a channel message. *discordgo.Session
// implements it.
type MessageSender interface {
	ChannelMessageSendReply(
		channelID string,
		content string,
		reference *discordgo.MessageReference,
		options ...discordgo.RequestOption,
	) (*discordgo.Message, error)
}

// Listener answers messages whose whole text equals the trigger.
type Listener struct {
	trigger string
	replier Replier
	log     *zerolog.Logger
}

// NewListener creates a Listener for the given trigger text.
func NewListener(trigger string, replier Replier, log *zerolog.Logger) *Listener {
	return &Listener{
		trigger: trigger,
		replier: replier,
		log:     log,
	}
}

// OnMessageCreate is registered with the discordgo session. discordgo runs
// every handler call in its own goroutine.
func (l *Listener) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	l.handleMessage(context.Background(), s, m)
}

func (l *Listener) handleMessage(ctx context.Context, sender MessageSender, m *discordgo.MessageCreate) {
	// Guard against nil message
	if m == nil || m.Message == nil {
		return
	}

	if m.Content != l.trigger {
		return
	}

	logger := l.log.With().
		Str("channel_id", m.ChannelID).
		Str("message_id", m.ID).
		Logger()

	text, err := l.replier.Reply(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("unable to build drink reply")
		return
	}

	if _, err := sender.ChannelMessageSendReply(m.ChannelID, text, m.Reference()); err != nil {
		logger.Error().Err(err).Msg("unable to send reply")
		return
	}
	logger.Debug().Msg("drink reply sent")
}
