// Package httpapi exposes the render call path over HTTP for the
// presentation layer. Handlers never panic outward and never block the clip
// list: enrichment endpoints answer with explicit unavailable states when a
// collaborator fails.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/cliplens/internal/app"
	"github.com/hyperifyio/cliplens/internal/clip"
)

type Server struct {
	app *app.App
}

func New(a *app.App) *Server {
	return &Server{app: a}
}

// Router builds the HTTP surface. Request logging stays at this layer; the
// core underneath is silent.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/render", s.handleRender)
	r.Post("/v1/classify", s.handleClassify)
	r.Get("/v1/enrich/file", s.handleEnrichFile)
	r.Get("/v1/enrich/link", s.handleEnrichLink)
	r.Get("/v1/enrich/palette", s.handleEnrichPalette)
	r.Get("/v1/enrich/ocr", s.handleEnrichOCR)
	return r
}

type renderRequest struct {
	Content string `json:"content"`
	Type    string `json:"type"`
	Compact bool   `json:"compact"`
}

func (req renderRequest) rawClip() clip.RawClip {
	coarse := clip.CoarseType(req.Type)
	switch coarse {
	case clip.CoarseText, clip.CoarseImage, clip.CoarseFiles, clip.CoarseHTML:
	default:
		coarse = clip.CoarseText
	}
	return clip.RawClip{Content: req.Content, Type: coarse}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p := s.app.Render(req.rawClip(), clip.DisplayMode{Compact: req.Compact})
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c := req.rawClip()
	writeJSON(w, http.StatusOK, map[string]any{
		"kind": s.app.Classify(c),
		"tags": s.app.Tags(c.Content),
	})
}

func (s *Server) handleEnrichFile(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing path")
		return
	}
	writeJSON(w, http.StatusOK, s.app.Enricher.CheckFile(r.Context(), path))
}

func (s *Server) handleEnrichLink(w http.ResponseWriter, r *http.Request) {
	u := r.URL.Query().Get("url")
	if u == "" {
		writeError(w, http.StatusBadRequest, "missing url")
		return
	}
	writeJSON(w, http.StatusOK, s.app.Enricher.FetchLinkMeta(r.Context(), u))
}

func (s *Server) handleEnrichPalette(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing path")
		return
	}
	writeJSON(w, http.StatusOK, s.app.Enricher.ExtractPalette(r.Context(), path))
}

func (s *Server) handleEnrichOCR(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing path")
		return
	}
	writeJSON(w, http.StatusOK, s.app.Enricher.OCR(r.Context(), path))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
