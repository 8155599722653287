package commands

import "context"

// AvailabilityInvalidator drops cached availability for a link after a
// state change. Best effort; failures are logged, never returned.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, slug string) error
}
