package await

import (
	"context"
)

// Awaiter is a single blocking event. Await reports false if ctx was done
// or the event source was closed before the event happened.
type Awaiter interface {
	Value() (any, bool)
	Await(ctx context.Context) (waited bool)
}
