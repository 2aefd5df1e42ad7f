package enrich

import (
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Enricher owns the memo and the clients the enrichment tasks share. The
// zero value is not usable; construct with New.
type Enricher struct {
	memo *memo

	fetch  *Client
	vision *openai.Client
	model  string
}

// Options configures the optional collaborators. Leaving Vision empty
// disables OCR; the other tasks always work.
type Options struct {
	UserAgent string
	// HTTPClient overrides the link-metadata client, mainly for tests.
	HTTPClient *http.Client

	VisionBaseURL string
	VisionAPIKey  string
	VisionModel   string
}

func New(opts Options) *Enricher {
	ua := opts.UserAgent
	if ua == "" {
		ua = "cliplens/1.0 (+https://github.com/hyperifyio/cliplens)"
	}
	e := &Enricher{
		memo: newMemo(),
		fetch: &Client{
			HTTPClient:        opts.HTTPClient,
			UserAgent:         ua,
			MaxAttempts:       2,
			PerRequestTimeout: 10 * time.Second,
			MaxBodyBytes:      1 << 20,
		},
	}
	if opts.VisionAPIKey != "" || opts.VisionBaseURL != "" {
		cfg := openai.DefaultConfig(opts.VisionAPIKey)
		if opts.VisionBaseURL != "" {
			cfg.BaseURL = opts.VisionBaseURL
		}
		e.vision = openai.NewClientWithConfig(cfg)
		e.model = opts.VisionModel
		if e.model == "" {
			e.model = "gpt-4o-mini"
		}
	}
	return e
}
