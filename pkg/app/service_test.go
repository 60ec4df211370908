package app

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/document"
	"tableflip.dev/daybook/pkg/store"
)

type fakePersistence struct {
	docs     map[string]*document.Document
	titles   []string
	saveErr  error
	fetched  []string
	searched []string
}

func (f *fakePersistence) Fetch(ctx context.Context, key string) (*document.Document, error) {
	f.fetched = append(f.fetched, key)
	if d, ok := f.docs[key]; ok {
		copied := *d
		return &copied, nil
	}
	return document.NewForKey(key, time.Now().UnixMilli()), nil
}

func (f *fakePersistence) Save(ctx context.Context, doc *document.Document) (*document.Document, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	doc.Modified = time.Now().UnixMilli()
	if f.docs == nil {
		f.docs = map[string]*document.Document{}
	}
	copied := *doc
	f.docs[doc.Title] = &copied
	return doc, nil
}

func (f *fakePersistence) Search(ctx context.Context, query string) ([]string, error) {
	f.searched = append(f.searched, query)
	return f.titles, nil
}

func TestDayFormatsKey(t *testing.T) {
	fp := &fakePersistence{}
	svc := &Service{Persistence: fp}

	date := time.Date(2025, time.August, 3, 0, 0, 0, 0, time.UTC)
	doc, err := svc.Day(context.Background(), date)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if doc.Title != "2025-08-03 (Sun)" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(fp.fetched) != 1 || fp.fetched[0] != "2025-08-03 (Sun)" {
		t.Errorf("fetched keys = %v", fp.fetched)
	}
}

func TestSaveDayFailureLeavesDocumentUntouched(t *testing.T) {
	fp := &fakePersistence{saveErr: &store.StatusError{Code: 500}}
	svc := &Service{Persistence: fp}

	doc := document.NewForKey("2025-08-03 (Sun)", 100)
	doc.Text = "old"
	doc.Modified = 100

	_, err := svc.SaveDay(context.Background(), doc, "new")
	if !store.IsStatus(err, 500) {
		t.Fatalf("want StatusError 500, got %v", err)
	}
	if doc.Text != "old" || doc.Modified != 100 {
		t.Errorf("document mutated on failed save: text=%q modified=%d", doc.Text, doc.Modified)
	}
}

func TestSaveDayCopiesText(t *testing.T) {
	fp := &fakePersistence{}
	svc := &Service{Persistence: fp}

	doc := document.NewForKey("2025-08-03 (Sun)", 100)
	saved, err := svc.SaveDay(context.Background(), doc, "Hi")
	if err != nil {
		t.Fatalf("SaveDay: %v", err)
	}
	if saved.Text != "Hi" {
		t.Errorf("saved text = %q", saved.Text)
	}
	if saved.Modified == 100 {
		t.Errorf("Modified not restamped")
	}
}

func TestServiceWithoutPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Day(context.Background(), time.Now()); err == nil {
		t.Error("Day: expected error")
	}
	if _, err := svc.Search(context.Background(), "x"); err == nil {
		t.Error("Search: expected error")
	}
}
