package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/facet-dev/facet/internal/config"
	"github.com/facet-dev/facet/internal/providers"
	"github.com/facet-dev/facet/internal/review"
)

// Server is the inbound HTTP transport for the review service.
type Server struct {
	cfg    config.Config
	svc    *review.Service
	logger *log.Logger
	srv    *http.Server
	ln     net.Listener
}

// New creates a server for the given review service. A nil logger
// defaults to stderr.
func New(cfg config.Config, svc *review.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(os.Stderr, "facet: ", log.LstdFlags)
	}
	return &Server{cfg: cfg, svc: svc, logger: logger}
}

// Handler returns the full route table wrapped in request middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/review", s.handleReview)
	mux.HandleFunc("/api/health", s.handleHealth)
	return s.withRequestLog(mux)
}

// Start begins serving on the configured host and port. It blocks until
// the listener is ready, then serves in the background.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.ln = ln

	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("serve error: %v", err)
		}
	}()

	s.logger.Printf("listening on http://%s (provider %s, model %s)", ln.Addr(), s.cfg.Provider, s.cfg.Model)
	return nil
}

// Addr returns the listener address, useful for tests with port 0.
func (s *Server) Addr() net.Addr {
	if s.ln != nil {
		return s.ln.Addr()
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

type reviewRequest struct {
	Code       string   `json:"code"`
	Language   string   `json:"language"`
	FocusAreas []string `json:"focus_areas,omitempty"`
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondDetail(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "request body must be JSON with code and language fields")
		return
	}

	result, err := s.svc.Review(r.Context(), req.Code, req.Language, req.FocusAreas)
	if err != nil {
		s.respondReviewError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// respondReviewError maps pipeline failures to stable client-facing
// bodies. Internal error detail and raw model text never leak.
func (s *Server) respondReviewError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case review.IsInvalidInput(err):
		respondDetail(w, http.StatusBadRequest, err.Error())
	case providers.IsAuthError(err):
		s.logger.Printf("request %s: %v", requestID(r), err)
		respondDetail(w, http.StatusInternalServerError, "the review service is not configured correctly; contact the operator")
	case providers.IsTimeout(err), providers.IsRateLimited(err), providers.IsUnavailable(err):
		s.logger.Printf("request %s: %v", requestID(r), err)
		respondDetail(w, http.StatusServiceUnavailable, "the code reviewer is temporarily unavailable, please try again")
	case review.IsMalformedResponse(err):
		s.logger.Printf("request %s: %v", requestID(r), err)
		respondDetail(w, http.StatusBadGateway, "the code reviewer returned an unusable response, please try again")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
	default:
		s.logger.Printf("request %s: %v", requestID(r), err)
		respondDetail(w, http.StatusInternalServerError, "review failed")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"model":  s.cfg.Model,
	})
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>facet</title></head>
<body>
<h1>facet</h1>
<p>AI code quality review. POST {"code": "...", "language": "auto"} to <code>/api/review</code>.</p>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondDetail(w, http.StatusNotFound, "not found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}
