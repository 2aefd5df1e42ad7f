package enrich

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html><head>
<title>Example Page</title>
<meta name="description" content="A page for tests.">
<link rel="icon" href="/static/fav.png">
</head><body><p>hi</p></body></html>`

func TestFetchLinkMeta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	e := New(Options{HTTPClient: srv.Client()})
	got := e.FetchLinkMeta(context.Background(), srv.URL)
	if !got.Available {
		t.Fatalf("meta unavailable: %+v", got)
	}
	if got.Title != "Example Page" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.Description != "A page for tests." {
		t.Fatalf("description = %q", got.Description)
	}
	if got.FaviconURL != "/static/fav.png" {
		t.Fatalf("favicon = %q", got.FaviconURL)
	}
}

func TestFetchLinkMetaOpenGraphAndFaviconFallback(t *testing.T) {
	page := `<html><head><meta property="og:title" content="OG Title"></head><body></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	e := New(Options{HTTPClient: srv.Client()})
	got := e.FetchLinkMeta(context.Background(), srv.URL)
	if got.Title != "OG Title" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.FaviconURL != srv.URL+"/favicon.ico" {
		t.Fatalf("favicon fallback = %q", got.FaviconURL)
	}
}

func TestFetchLinkMetaUnavailableOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	e := New(Options{HTTPClient: srv.Client()})
	got := e.FetchLinkMeta(context.Background(), srv.URL)
	if got.Available {
		t.Fatalf("expected unavailable, got %+v", got)
	}
	if got.URL != srv.URL {
		t.Fatalf("url not echoed: %+v", got)
	}
}

func TestFetchLinkMetaMemoized(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	e := New(Options{HTTPClient: srv.Client()})
	ctx := context.Background()
	e.FetchLinkMeta(ctx, srv.URL)
	e.FetchLinkMeta(ctx, srv.URL)
	if hits != 1 {
		t.Fatalf("server hit %d times, want 1", hits)
	}
}

func TestFetchLinkMetaRejectsNonHTTP(t *testing.T) {
	e := New(Options{})
	got := e.FetchLinkMeta(context.Background(), "ftp://example.com/x")
	if got.Available {
		t.Fatalf("expected unavailable for ftp, got %+v", got)
	}
}

func TestDecodeCharsetLatin1(t *testing.T) {
	// "café" in ISO-8859-1: é = 0xE9
	body := []byte{'c', 'a', 'f', 0xE9}
	r, err := decodeCharset(body, "text/html; charset=iso-8859-1")
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(decoded); got != "café" {
		t.Fatalf("decoded = %q", got)
	}
}
