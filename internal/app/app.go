// Package app wires the pure classification core to its collaborators: the
// enrichment tasks, the sanitizer-backed HTML path, and the configuration
// both commands share.
package app

import (
	"github.com/hyperifyio/cliplens/internal/classify"
	"github.com/hyperifyio/cliplens/internal/clip"
	"github.com/hyperifyio/cliplens/internal/enrich"
	"github.com/hyperifyio/cliplens/internal/preview"
	"github.com/hyperifyio/cliplens/internal/tags"
)

type App struct {
	cfg      Config
	Enricher *enrich.Enricher
}

func New(cfg Config) *App {
	return &App{
		cfg: cfg,
		Enricher: enrich.New(enrich.Options{
			UserAgent:     cfg.UserAgent,
			VisionBaseURL: cfg.Vision.BaseURL,
			VisionAPIKey:  cfg.Vision.APIKey,
			VisionModel:   cfg.Vision.Model,
		}),
	}
}

// Render is the single call path the presentation layer uses.
func (a *App) Render(c clip.RawClip, mode clip.DisplayMode) preview.Preview {
	return preview.Render(c, mode)
}

// Classify exposes the bare classification decision, used by the daemon's
// classify endpoint and by search-side filtering.
func (a *App) Classify(c clip.RawClip) clip.Kind {
	return classify.Classify(c.Content, c.Type)
}

// Tags returns the quick capture-time tags for a payload.
func (a *App) Tags(content string) []string {
	return tags.Detect(content)
}
