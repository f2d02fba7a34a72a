package cocktail

import (
	"github.com/j0lvera/drinkbot/internal/config"
	"go.uber.org/fx"
)

// Params for creating a Client
type Params struct {
	fx.In

	Config *config.Config
}

// Result of creating a Client
type Result struct {
	fx.Out

	Client *Client
}

// New creates the process-wide TheCocktailDB client from configuration
func New(p Params) (Result, error) {
	client, err := NewClient(
		p.Config.CocktailBaseURL,
		p.Config.CocktailToken,
		WithTimeout(p.Config.CocktailTimeout),
	)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Client: client,
	}, nil
}

// Module provides the TheCocktailDB client
func Module() fx.Option {
	return fx.Module(
		"cocktail",
		fx.Provide(
			New,
		),
	)
}
