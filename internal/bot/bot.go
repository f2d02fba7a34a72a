package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/diamondburned/arikawa/v3/api/cmdroute"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/j0lvera/drinkbot/internal/config"
	"github.com/j0lvera/drinkbot/internal/drink"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// ListenerIntents are the gateway intents the message listener subscribes to.
const ListenerIntents = discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

// SlashGateway is the part of *state.State driven by the slash binding's
// lifecycle.
type SlashGateway interface {
	cmdroute.BulkCommandsOverwriter
	Connect(ctx context.Context) error
}

// ListenerGateway is the part of *discordgo.Session driven by the listener
// binding's lifecycle.
type ListenerGateway interface {
	Open() error
	Close() error
}

type Params struct {
	fx.In

	Config     *config.Config
	Responder  *drink.Responder
	Shutdowner fx.Shutdowner
}

type SlashResult struct {
	fx.Out

	State    *state.State
	Commands *Commands
}

type ListenerResult struct {
	fx.Out

	Session  *discordgo.Session
	Listener *Listener
}

// NewSlash creates the slash command binding. Commands are registered
// globally when the app starts, then the gateway runs until the app stops
// or the connection fails.
func NewSlash(lc fx.Lifecycle, p Params, log zerolog.Logger) (SlashResult, error) {
	if err := p.Config.RequireDiscord(); err != nil {
		return SlashResult{}, err
	}

	s := state.New("Bot " + p.Config.DiscordToken)
	s.AddIntents(gateway.IntentGuilds)

	commands := NewCommands(p.Config.Command, p.Responder, s, &log)
	s.AddHandler(func(ev *gateway.InteractionCreateEvent) {
		commands.OnInteraction(s, ev)
	})
	s.AddHandler(func(*gateway.ReadyEvent) {
		me, err := s.Me()
		if err != nil {
			log.Warn().Err(err).Msg("connected to the gateway")
			return
		}
		log.Info().Str("user", me.Tag()).Msg("connected to the gateway")
	})

	lc.Append(slashHook(s, commands, p.Shutdowner, &log))

	return SlashResult{
		State:    s,
		Commands: commands,
	}, nil
}

// slashHook registers the commands on start, then runs the gateway in the
// background. A gateway that stops on its own shuts the app down.
func slashHook(gw SlashGateway, commands *Commands, shutdowner fx.Shutdowner, log *zerolog.Logger) fx.Hook {
	var cancel context.CancelFunc

	return fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cmdroute.OverwriteCommands(gw, commands.Data()); err != nil {
				return fmt.Errorf("unable to register commands: %w", err)
			}
			log.Info().Str("command", commands.command.Name).Msg("commands registered globally")

			var runCtx context.Context
			runCtx, cancel = context.WithCancel(context.Background())

			log.Info().Msg("starting discord slash command bot...")
			go func() {
				err := gw.Connect(runCtx)
				if runCtx.Err() != nil {
					return
				}
				if err != nil {
					log.Error().Err(err).Msg("discord client error")
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping discord slash command bot...")
			if cancel != nil {
				cancel()
			}
			return nil
		},
	}
}

// NewListenerBot creates the message listener binding on a raw discordgo
// session.
func NewListenerBot(lc fx.Lifecycle, p Params, log zerolog.Logger) (ListenerResult, error) {
	if err := p.Config.RequireDiscord(); err != nil {
		return ListenerResult{}, err
	}

	session, err := discordgo.New("Bot " + p.Config.DiscordToken)
	if err != nil {
		return ListenerResult{}, fmt.Errorf("unable to create discord session: %w", err)
	}
	session.Identify.Intents = ListenerIntents

	listener := NewListener(p.Config.Listener.Trigger, p.Responder, &log)
	session.AddHandler(listener.OnMessageCreate)
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.Username).Msg("connected to the gateway")
	})

	lc.Append(listenerHook(session, p.Config.Listener.Trigger, &log))

	return ListenerResult{
		Session:  session,
		Listener: listener,
	}, nil
}

func listenerHook(gw ListenerGateway, trigger string, log *zerolog.Logger) fx.Hook {
	return fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Str("trigger", trigger).Msg("starting discord message listener...")
			if err := gw.Open(); err != nil {
				return fmt.Errorf("unable to open discord session: %w", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping discord message listener...")
			return gw.Close()
		},
	}
}

// SlashModule runs the drink pipeline behind a slash command.
func SlashModule() fx.Option {
	return fx.Module(
		"bot",
		fx.Provide(
			NewSlash,
		),
		fx.Invoke(
			func(s *state.State) {},
		),
	)
}

// ListenerModule runs the drink pipeline behind a message trigger.
func ListenerModule() fx.Option {
	return fx.Module(
		"bot",
		fx.Provide(
			NewListenerBot,
		),
		fx.Invoke(
			func(s *discordgo.Session) {},
		),
	)
}
