package config

import "go.uber.org/multierr"

// Hook is a caller-installed procedure invoked with the root group before
// or after parsing. It may mutate the tree.
type Hook func(root *Node) error

// OnFailureHook is consulted when parsing fails. It receives the partial
// root and decides whether the parse error propagates: true propagates,
// false swallows it.
type OnFailureHook func(root *Node) bool

// runHooksFailFast runs hooks in order and returns the first error,
// without running the remaining hooks. Used for before_hooks: a hook that
// fails before parsing has started should stop the pipeline immediately.
func runHooksFailFast(hooks []Hook, root *Node) error {
	for _, h := range hooks {
		if err := h(root); err != nil {
			return err
		}
	}
	return nil
}

// runHooksAggregate runs every hook regardless of earlier failures and
// returns all errors combined. Used for after_hooks: parsing already
// succeeded, so the caller benefits from seeing every broken hook rather
// than just the first.
func runHooksAggregate(hooks []Hook, root *Node) error {
	var errs error
	for _, h := range hooks {
		if err := h(root); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
