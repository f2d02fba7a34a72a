package bot

import (
	"context"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/api/cmdroute"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/j0lvera/drinkbot/internal/config"
	"github.com/rs/zerolog"
)

// deferTimeout is how long a handler may run before the interaction is
// deferred and answered with a follow-up instead.
var deferTimeout = 1500 * time.Millisecond

// InteractionResponder sends the initial response to an interaction.
// *state.State implements it.
type InteractionResponder interface {
	RespondInteraction(id discord.InteractionID, token string, resp api.InteractionResponse) error
}

// Commands routes slash command interactions to the drink pipeline.
type Commands struct {
	*cmdroute.Router

	command config.Command
	replier Replier
	log     *zerolog.Logger
}

// NewCommands builds the router for the configured command. Handlers that
// take longer than cmdroute's deadline are deferred and followed up through
// sender.
func NewCommands(
	command config.Command,
	replier Replier,
	sender cmdroute.FollowUpSender,
	log *zerolog.Logger,
) *Commands {
	c := &Commands{
		command: command,
		replier: replier,
		log:     log,
	}

	c.Router = cmdroute.NewRouter()
	c.Use(cmdroute.Deferrable(sender, cmdroute.DeferOpts{
		Timeout: deferTimeout,
		Error: func(err error) {
			log.Error().Err(err).Str("command", command.Name).Msg("unable to send follow-up")
		},
	}))
	c.AddFunc(command.Name, c.cmdRandom)

	return c
}

// Data returns the commands to register with Discord.
func (c *Commands) Data() []api.CreateCommandData {
	return []api.CreateCommandData{
		{
			Name:        c.command.Name,
			Description: c.command.Description,
		},
	}
}

// OnInteraction handles one gateway interaction and sends the response.
// Send failures are logged and dropped.
func (c *Commands) OnInteraction(s InteractionResponder, ev *gateway.InteractionCreateEvent) {
	resp := c.HandleInteraction(&ev.InteractionEvent)
	if resp == nil {
		return
	}

	if err := s.RespondInteraction(ev.ID, ev.Token, *resp); err != nil {
		c.log.Error().Err(err).Str("interaction_id", ev.ID.String()).Msg("unable to respond to interaction")
	}
}

func (c *Commands) cmdRandom(ctx context.Context, data cmdroute.CommandData) *api.InteractionResponseData {
	logger := c.log.With().Str("command", c.command.Name).Logger()
	if data.Event != nil {
		logger = logger.With().Str("interaction_id", data.Event.ID.String()).Logger()
	}

	text, err := c.replier.Reply(ctx)
	if err != nil {
		// If the interaction was already deferred, no follow-up is sent and
		// the user is left with the pending "thinking" state.
		logger.Error().Err(err).Msg("unable to build drink reply")
		return nil
	}
	logger.Debug().Msg("drink reply ready")

	return &api.InteractionResponseData{
		Content: option.NewNullableString(text),
	}
}
