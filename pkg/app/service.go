// Package app provides the high-level day-entry operations shared by
// the CLI runners and the TUI.
package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/daybook/pkg/document"
	"tableflip.dev/daybook/pkg/store"
)

// Service wraps persistence and the clock so UIs and CLIs share logic
// and tests can inject fakes.
type Service struct {
	Persistence store.Persistence

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

var errNoPersistence = errors.New("app: no persistence configured")

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Today returns the current calendar day.
func (s *Service) Today() time.Time {
	return s.now()
}

// Day fetches the entry for a calendar day, synthesizing an empty one
// when the wiki has none.
func (s *Service) Day(ctx context.Context, date time.Time) (*document.Document, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Fetch(ctx, document.FormatKey(date))
}

// SaveDay copies text into doc and persists it. The store stamps
// Modified; on failure doc keeps its previous text untouched.
func (s *Service) SaveDay(ctx context.Context, doc *document.Document, text string) (*document.Document, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	prevText, prevMod := doc.Text, doc.Modified
	doc.Text = text
	saved, err := s.Persistence.Save(ctx, doc)
	if err != nil {
		doc.Text, doc.Modified = prevText, prevMod
		return nil, err
	}
	return saved, nil
}

// Search lists entry titles matching text, in server order.
func (s *Service) Search(ctx context.Context, text string) ([]string, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Search(ctx, text)
}
