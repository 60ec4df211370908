package add

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/document"
	"tableflip.dev/daybook/pkg/printers"
)

// Add appends a line to a day's entry and saves it back.
type Add struct {
	// Date is a YYYY-MM-DD day, or "today" / "" for the current day.
	Date    string
	Message string

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Message == "" {
		return errors.New("nothing to add")
	}

	date, err := n.resolveDate()
	if err != nil {
		return err
	}

	doc, err := n.Service.Day(ctx, date)
	if err != nil {
		return fmt.Errorf("loading %s: %w", document.FormatKey(date), err)
	}

	text := doc.Text
	if text != "" {
		text += "\n"
	}
	text += n.Message

	saved, err := n.Service.SaveDay(ctx, doc, text)
	if err != nil {
		return fmt.Errorf("saving %s: %w", doc.Title, err)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Entry(saved)
	return nil
}

func (n *Add) resolveDate() (time.Time, error) {
	if n.Date == "" || n.Date == "today" {
		return n.Service.Today(), nil
	}
	return document.ParseDate(n.Date)
}
