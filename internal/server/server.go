// Package server exposes the resolver over HTTP: token-to-markup rendering
// and single-emoji lookups. The CDN images themselves are never served here.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	kemoji "github.com/kyokomi/emoji/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/haytac/emojify/internal/config"
	"github.com/haytac/emojify/internal/emoji"
	"github.com/haytac/emojify/internal/metrics"
	"github.com/haytac/emojify/pkg/interfaces"
)

var _ interfaces.Renderer = (*emoji.Resolver)(nil)

// Server serves rendering and lookup endpoints over a resolver.
type Server struct {
	renderer  interfaces.Renderer
	sanitizer *bluemonday.Policy // nil disables input sanitization
	limiter   *rate.Limiter
	addr      string
}

// New creates a Server from the resolver and the server configuration.
func New(renderer interfaces.Renderer, cfg config.ServerConfig) *Server {
	s := &Server{
		renderer: renderer,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
		addr:     cfg.Addr,
	}
	if cfg.SanitizeHTML {
		s.sanitizer = bluemonday.StrictPolicy()
	}
	return s
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.throttle)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Get("/emoji/{name}", s.handleLookup)
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", s.addr).Msg("Starting render server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info().Msg("Shutting down render server")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			metrics.RenderRequests.WithLabelValues("throttled").Inc()
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type renderRequest struct {
	Text    string   `json:"text"`
	ByName  *bool    `json:"by_name,omitempty"`
	Classes []string `json:"classes,omitempty"`
}

type renderResponse struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

type lookupResponse struct {
	Name        string `json:"name"`
	Unicode     string `json:"unicode"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RenderRequests.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	text := req.Text
	if s.sanitizer != nil {
		text = s.sanitizer.Sanitize(text)
	}

	byName := true
	if req.ByName != nil {
		byName = *req.ByName
	}

	resp := renderResponse{
		HTML: s.renderer.Replace(text, byName, req.Classes...),
		// Native rendering for consumers that want characters, not markup.
		Text: kemoji.Sprint(text),
	}
	metrics.RenderRequests.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	token := ":" + chi.URLParam(r, "name") + ":"

	unicode, err := s.renderer.UnicodeForName(token)
	if err != nil {
		metrics.Lookups.WithLabelValues("miss").Inc()
		if errors.Is(err, emoji.ErrUnknownName) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	metrics.Lookups.WithLabelValues("hit").Inc()

	description, err := s.renderer.DescriptionForName(token)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	url, err := s.renderer.URL(token, true)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse{
		Name:        chi.URLParam(r, "name"),
		Unicode:     unicode,
		Description: description,
		URL:         url,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
