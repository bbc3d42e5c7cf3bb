package ports

import "context"

// Notifier delivers a due-date reminder to a borrower. Callers run it
// detached: delivery failure or delay must never fail the loan that
// triggered it.
type Notifier interface {
	Notify(ctx context.Context, borrower string, message string) error
}
