package async

import "context"

// Run executes every action concurrently and waits for all of them.
//
// Errors returned by actions are discarded: a batch where every action fails is
// indistinguishable from one where every action succeeds. When onEachComplete is
// non-nil it is called once per action, right after the attempt, on the goroutine
// that ran it. It must therefore be safe for concurrent use.
func Run(ctx context.Context, actions []Action, onEachComplete func()) {
	RunLimit(ctx, 0, actions, onEachComplete)
}

// RunLimit is Run with at most limit actions in flight.
// A limit <= 0 means unbounded.
func RunLimit(ctx context.Context, limit int, actions []Action, onEachComplete func()) {
	if len(actions) == 0 {
		return
	}

	g := newGroup(limit)
	for _, action := range actions {
		g.Go(func() error {
			if action != nil {
				_ = action(ctx)
			}
			if onEachComplete != nil {
				onEachComplete()
			}
			// Never fail the group: a failing action must not affect its siblings.
			return nil
		})
	}
	_ = g.Wait()
}

// Settle executes every action concurrently like Run but returns the errors of
// the actions that failed, in completion order. A nil result means all succeeded.
func Settle(ctx context.Context, actions []Action) []error {
	return SettleLimit(ctx, 0, actions)
}

// SettleLimit is Settle with at most limit actions in flight.
func SettleLimit(ctx context.Context, limit int, actions []Action) []error {
	outcomes := TaskGroupLimit(ctx, limit, actions, func(ctx context.Context, action Action) error {
		if action == nil {
			return nil
		}
		return action(ctx)
	})

	var errs []error
	for _, err := range outcomes {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
