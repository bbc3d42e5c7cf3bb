package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/FabianGG03/Gestor-Biblioteca/internal/domain"
	"github.com/FabianGG03/Gestor-Biblioteca/internal/ports"
)

// Console simulates a delayed delivery and reports it on its writer.
// The manager runs it detached; nothing here touches library state.
type Console struct {
	out   io.Writer
	delay time.Duration
}

type Option func(*Console)

// WithWriter overrides the output sink (tests).
func WithWriter(w io.Writer) Option {
	return func(c *Console) { c.out = w }
}

// WithDelay overrides the simulated delivery delay (tests).
func WithDelay(d time.Duration) Option {
	return func(c *Console) { c.delay = d }
}

func NewConsole(cfg domain.Config, opts ...Option) *Console {
	c := &Console{
		out:   os.Stdout,
		delay: time.Duration(cfg.Notify.DelayMS) * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.Notifier = (*Console)(nil)

func (c *Console) Notify(ctx context.Context, borrower string, message string) error {
	if c.delay > 0 {
		t := time.NewTimer(c.delay)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	_, err := fmt.Fprintf(c.out, "\nNotification sent to %s: %s\n", borrower, message)
	return err
}
