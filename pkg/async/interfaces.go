package async

import "context"

// Action is a unit of side-effecting work that may fail.
type Action func(ctx context.Context) error
