package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"word-finder/internal/matcher"
	"word-finder/internal/metrics"
	"word-finder/internal/wordstore"
)

// DefaultMaxResults caps the matches returned by one filter response.
const DefaultMaxResults = 100

// Options configures a Server.
type Options struct {
	MaxResults     int
	AllowedOrigins []string
	Scanner        matcher.Scanner
	Logger         *slog.Logger
}

// Server answers word queries against one dictionary.
type Server struct {
	store          *wordstore.Store
	scanner        matcher.Scanner
	maxResults     int
	allowedOrigins []string
	logger         *slog.Logger
}

// NewServer creates a server for store. An empty store is accepted: the
// server then reports the dictionary as unavailable on every query.
func NewServer(store *wordstore.Store, opts Options) *Server {
	if store == nil {
		store = wordstore.Empty()
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	metrics.DictionaryWords.Set(float64(store.Len()))

	return &Server{
		store:          store,
		scanner:        opts.Scanner,
		maxResults:     opts.MaxResults,
		allowedOrigins: opts.AllowedOrigins,
		logger:         opts.Logger,
	}
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Post("/filter", s.Filter)
	r.Get("/dictionary", s.GetDictionaryStats)
	r.Get("/healthz", s.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// available reports whether the dictionary was loaded. When it was not, it
// writes the 503 response.
func (s *Server) available(w http.ResponseWriter) bool {
	if s.store.IsEmpty() {
		writeError(w, http.StatusServiceUnavailable, "word database is not available")
		return false
	}
	return true
}
