package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/daybook/pkg/document"
)

// Persistence is the contract against the remote wiki. All methods are
// stateless; configuration is re-read by the caller, never cached here.
type Persistence interface {
	// Fetch returns the entry stored under key. A missing entry is not
	// an error: an empty day is synthesized locally.
	Fetch(ctx context.Context, key string) (*document.Document, error)
	// Save upserts the full entry under its title, stamping Modified
	// with the current time before the write.
	Save(ctx context.Context, doc *document.Document) (*document.Document, error)
	// Search lists entry titles matching the query, case-insensitively,
	// in the order the wiki returns them.
	Search(ctx context.Context, query string) ([]string, error)
}

// Load builds a Persistence talking to the wiki named by cfg.
func Load(cfg Config, log *zap.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &remote{
		cfg:    cfg,
		client: &http.Client{},
		now:    time.Now,
		log:    log,
	}, nil
}

type remote struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
	log    *zap.Logger
}

func (r *remote) entryURL(key string) (string, error) {
	base := r.cfg.BaseURL()
	if base == "" || key == "" {
		return "", ErrNotConfigured
	}
	return fmt.Sprintf("%s/recipes/%s/tiddlers/%s",
		strings.TrimSuffix(base, "/"), document.Bag, url.PathEscape(key)), nil
}

// setAuth attaches basic auth only when a user is configured.
func (r *remote) setAuth(req *http.Request) {
	if user := r.cfg.User(); user != "" {
		req.SetBasicAuth(user, r.cfg.Password())
	}
}

func (r *remote) Fetch(ctx context.Context, key string) (*document.Document, error) {
	u, err := r.entryURL(key)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	r.setAuth(req)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		r.log.Debug("entry missing, synthesizing empty day", zap.String("title", key))
		return document.NewForKey(key, r.now().UnixMilli()), nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var doc document.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", key, err)
	}
	r.log.Debug("fetched entry", zap.String("title", doc.Title), zap.Int("bytes", len(doc.Text)))
	return &doc, nil
}

func (r *remote) Save(ctx context.Context, doc *document.Document) (*document.Document, error) {
	u, err := r.entryURL(doc.Title)
	if err != nil {
		return nil, err
	}

	doc.Modified = r.now().UnixMilli()

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", doc.Title, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	r.setAuth(req)
	req.Header.Set("Content-Type", "application/json")
	// The wiki rejects writes without this header.
	req.Header.Set("X-Requested-With", "TiddlyWiki")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("saving %q: %w", doc.Title, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	r.log.Debug("saved entry", zap.String("title", doc.Title), zap.Int64("modified", doc.Modified))
	return doc, nil
}

func (r *remote) Search(ctx context.Context, query string) ([]string, error) {
	base := r.cfg.BaseURL()
	if base == "" {
		return nil, ErrNotConfigured
	}

	// The query is interpolated into the wiki's regexp filter verbatim;
	// metacharacters keep their regexp meaning.
	filter := fmt.Sprintf("[regexp[(?i).*%s.*]]", query)
	u := fmt.Sprintf("%s/recipes/%s/tiddlers.json?filter=%s",
		strings.TrimSuffix(base, "/"), document.Bag, url.QueryEscape(filter))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	r.setAuth(req)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var hits []struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return nil, fmt.Errorf("decoding search results: %w", err)
	}

	// Server order is the contract; no client-side re-sort.
	titles := make([]string, 0, len(hits))
	for _, h := range hits {
		titles = append(titles, h.Title)
	}
	r.log.Debug("search finished", zap.String("query", query), zap.Int("hits", len(titles)))
	return titles, nil
}
