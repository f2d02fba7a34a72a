package drink

import (
	"github.com/j0lvera/drinkbot/internal/cocktail"
	"go.uber.org/fx"
)

// Params for creating a Responder
type Params struct {
	fx.In

	Client *cocktail.Client
}

// Result of creating a Responder
type Result struct {
	fx.Out

	Responder *Responder
}

// New wires the shared client into a Responder
func New(p Params) Result {
	return Result{
		Responder: NewResponder(p.Client),
	}
}

// Module provides the drink Responder
func Module() fx.Option {
	return fx.Module(
		"drink",
		fx.Provide(
			New,
		),
	)
}
