package ui

import (
	"context"
	"errors"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/tui/journal"
)

// UI opens the full-screen journal interface.
type UI struct {
	Service *app.Service
}

func (n *UI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not start ui, no service")
	}
	return journal.Run(n.Service)
}
