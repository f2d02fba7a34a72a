package main

import (
	"fmt"
	"io"
	"os"

	"github.com/j0lvera/drinkbot/internal/bot"
	"github.com/j0lvera/drinkbot/internal/cocktail"
	"github.com/j0lvera/drinkbot/internal/config"
	"github.com/j0lvera/drinkbot/internal/drink"
	"github.com/j0lvera/drinkbot/internal/log"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "drinkbot",
		Short:         "Discord bot that replies with a random cocktail from TheCocktailDB",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "slash",
			Short: "Serve the /random slash command",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd.OutOrStdout(), bot.SlashModule())
			},
		},
		&cobra.Command{
			Use:   "listen",
			Short: "Reply to !drink messages",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd.OutOrStdout(), bot.ListenerModule())
			},
		},
		&cobra.Command{
			Use:   "random",
			Short: "Print one random drink and exit",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				// stdout carries only the drink; logs go to stderr
				var responder *drink.Responder
				app := fx.New(
					append(modules(cmd.ErrOrStderr()), fx.Populate(&responder))...,
				)
				if err := app.Err(); err != nil {
					return err
				}

				text, err := responder.Reply(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			},
		},
	)

	return root
}

func modules(logOut io.Writer) []fx.Option {
	return []fx.Option{
		log.Module(logOut),
		log.EventLogger(),
		config.Module(),
		cocktail.Module(),
		drink.Module(),
	}
}

// run blocks until the process is signalled or the bot shuts itself down.
func run(logOut io.Writer, transport fx.Option) error {
	app := fx.New(
		append(modules(logOut), transport)...,
	)
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}
