package drink

import (
	"context"
	"fmt"

	"github.com/j0lvera/drinkbot/internal/cocktail"
)

// Fetcher returns randomly selected drink records.
type Fetcher interface {
	Random(ctx context.Context) ([]cocktail.Drink, error)
}

// Responder runs the fetch, pick, format pipeline shared by every trigger.
type Responder struct {
	fetcher Fetcher
}

// NewResponder creates a Responder backed by fetcher.
func NewResponder(fetcher Fetcher) *Responder {
	return &Responder{fetcher: fetcher}
}

// Reply fetches one random record and formats the first result. A failed
// fetch is returned as an error and no text; an empty result is NotFound.
func (r *Responder) Reply(ctx context.Context) (string, error) {
	drinks, err := r.fetcher.Random(ctx)
	if err != nil {
		return "", fmt.Errorf("unable to fetch random drink: %w", err)
	}

	if len(drinks) == 0 {
		return NotFound, nil
	}

	return Format(drinks[0]), nil
}
