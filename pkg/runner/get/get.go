package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/document"
	"tableflip.dev/daybook/pkg/printers"
)

// Get prints the journal entry for one day.
type Get struct {
	// Date is a YYYY-MM-DD day, or "today" / "" for the current day.
	Date string

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	date, err := n.resolveDate()
	if err != nil {
		return err
	}

	doc, err := n.Service.Day(ctx, date)
	if err != nil {
		return fmt.Errorf("loading %s: %w", document.FormatKey(date), err)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Entry(doc)
	return nil
}

func (n *Get) resolveDate() (time.Time, error) {
	if n.Date == "" || n.Date == "today" {
		return n.Service.Today(), nil
	}
	return document.ParseDate(n.Date)
}
