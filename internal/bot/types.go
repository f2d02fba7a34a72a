package bot

import "context"

// Replier produces the text sent back for a trigger. *drink.Responder is the
// production implementation.
type Replier interface {
	Reply(ctx context.Context) (string, error)
}
