package search

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
)

// Search lists entry titles matching a text query.
type Search struct {
	Query string

	Service *app.Service
}

func (n *Search) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not search, no service")
	}
	if n.Query == "" {
		return errors.New("search text required")
	}

	titles, err := n.Service.Search(ctx, n.Query)
	if err != nil {
		return fmt.Errorf("searching for %q: %w", n.Query, err)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(fmt.Sprintf("Matches for %q", n.Query))
	pp.Titles(titles)
	return nil
}
