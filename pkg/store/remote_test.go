package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tableflip.dev/daybook/pkg/document"
)

type testConfig struct {
	base string
	user string
	pass string
}

func (c *testConfig) BaseURL() string  { return c.base }
func (c *testConfig) User() string     { return c.user }
func (c *testConfig) Password() string { return c.pass }
func (c *testConfig) LogPath() string  { return "" }

func newTestRemote(base string, now time.Time) *remote {
	return &remote{
		cfg:    &testConfig{base: base, user: "alice", pass: "secret"},
		client: &http.Client{},
		now:    func() time.Time { return now },
		log:    zap.NewNop(),
	}
}

func TestFetchMissingEntrySynthesizesEmptyDay(t *testing.T) {
	now := time.Date(2025, time.August, 3, 10, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := newTestRemote(srv.URL, now)
	doc, err := r.Fetch(context.Background(), "2025-08-03 (Sun)")
	require.NoError(t, err)
	require.Equal(t, "2025-08-03 (Sun)", doc.Title)
	require.Empty(t, doc.Text)
	require.Equal(t, document.JournalTag, doc.Tags)
	require.Equal(t, now.UnixMilli(), doc.Created)
	require.Equal(t, doc.Created, doc.Modified)
}

func TestFetchDecodesEntry(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(document.Document{
			Bag: "default", Type: document.ContentType,
			Title: "2025-08-03 (Sun)", Text: "Hi", Tags: "Journal",
		})
	}))
	defer srv.Close()

	r := newTestRemote(srv.URL, time.Now())
	doc, err := r.Fetch(context.Background(), "2025-08-03 (Sun)")
	require.NoError(t, err)
	require.Equal(t, "Hi", doc.Text)
	require.Equal(t, "/recipes/default/tiddlers/2025-08-03%20%28Sun%29", gotPath)
	require.Contains(t, gotAuth, "Basic ")
}

func TestFetchNoAuthHeaderWithoutUser(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := newTestRemote(srv.URL, time.Now())
	r.cfg = &testConfig{base: srv.URL}
	_, err := r.Fetch(context.Background(), "2025-08-03 (Sun)")
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestFetchServerErrorIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r := newTestRemote(srv.URL, time.Now())
	_, err := r.Fetch(context.Background(), "2025-08-03 (Sun)")
	require.Error(t, err)
	require.True(t, IsStatus(err, http.StatusBadGateway), "want StatusError 502, got %v", err)
}

func TestFetchWithoutConfigFailsFast(t *testing.T) {
	r := newTestRemote("", time.Now())
	r.cfg = &testConfig{}
	_, err := r.Fetch(context.Background(), "2025-08-03 (Sun)")
	require.ErrorIs(t, err, ErrNotConfigured)

	r2 := newTestRemote("http://example.invalid", time.Now())
	_, err = r2.Fetch(context.Background(), "")
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestSaveStampsModifiedAndSendsHeaders(t *testing.T) {
	now := time.Date(2025, time.August, 3, 12, 30, 0, 0, time.UTC)
	var gotMethod, gotCT, gotXRW string
	var gotBody document.Document
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotCT = r.Header.Get("Content-Type")
		gotXRW = r.Header.Get("X-Requested-With")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	r := newTestRemote(srv.URL, now)
	doc := document.NewForKey("2025-08-03 (Sun)", 1)
	doc.Text = "Hi"
	doc.Modified = 42 // caller-supplied value must be overwritten

	saved, err := r.Save(context.Background(), doc)
	require.NoError(t, err)
	require.Equal(t, now.UnixMilli(), saved.Modified)
	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "application/json", gotCT)
	require.Equal(t, "TiddlyWiki", gotXRW)
	require.Equal(t, "Hi", gotBody.Text)
	require.Equal(t, now.UnixMilli(), gotBody.Modified)
}

func TestSaveServerErrorIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := newTestRemote(srv.URL, time.Now())
	_, err := r.Save(context.Background(), document.NewForKey("2025-08-03 (Sun)", 1))
	require.True(t, IsStatus(err, http.StatusInternalServerError), "want StatusError 500, got %v", err)
}

func TestSearchBuildsFilterAndKeepsServerOrder(t *testing.T) {
	var gotFilter string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filter")
		_, _ = w.Write([]byte(`[{"title":"Zeta"},{"title":"Alpha"},{"title":"Beta"}]`))
	}))
	defer srv.Close()

	r := newTestRemote(srv.URL, time.Now())
	titles, err := r.Search(context.Background(), "alp")
	require.NoError(t, err)
	require.Equal(t, []string{"Zeta", "Alpha", "Beta"}, titles)
	require.Equal(t, "[regexp[(?i).*alp.*]]", gotFilter)
}

func TestSearchEncodesQueryIntoURL(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	r := newTestRemote(srv.URL, time.Now())
	_, err := r.Search(context.Background(), "a b&c")
	require.NoError(t, err)
	want := "filter=" + url.QueryEscape("[regexp[(?i).*a b&c.*]]")
	require.Equal(t, want, rawQuery)
}
