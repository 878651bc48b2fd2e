package serve

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angeljsb/reactive"
	"github.com/angeljsb/reactive/internal/errors"
)

// Page is one mounted component kind, served at /p/{name} with a live
// WebSocket channel at /ws/{name}.
type Page struct {
	Name  string
	Title string
	Kind  *reactive.Kind
}

// Server hosts component kinds behind an HTTP/WebSocket preview surface.
// Every page request renders a fresh instance server-side; every
// WebSocket connection owns its own instance and streams the mutations
// its re-renders produce.
type Server struct {
	mux      *chi.Mux
	pages    []*Page
	byName   map[string]*Page
	logger   *slog.Logger
	upgrader websocket.Upgrader
	metrics  *metrics
	tracer   *tracer
	name     string
}

// Option configures a Server.
type Option func(*serverConfig)

type serverConfig struct {
	logger        *slog.Logger
	name          string
	metrics       bool
	metricsConfig MetricsConfig
	tracing       bool
	tracerName    string
	checkOrigin   func(*http.Request) bool
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *serverConfig) { c.logger = logger }
}

// WithName sets the project name shown in page titles.
func WithName(name string) Option {
	return func(c *serverConfig) { c.name = name }
}

// WithMetrics enables or disables the Prometheus /metrics endpoint.
// Enabled by default.
func WithMetrics(enabled bool) Option {
	return func(c *serverConfig) { c.metrics = enabled }
}

// WithMetricsConfig overrides the Prometheus registration settings.
func WithMetricsConfig(cfg MetricsConfig) Option {
	return func(c *serverConfig) {
		c.metrics = true
		c.metricsConfig = cfg
	}
}

// WithTracing enables OpenTelemetry spans for page renders and events.
// The tracer resolves from the global provider; configure that in main().
func WithTracing(tracerName string) Option {
	return func(c *serverConfig) {
		c.tracing = true
		c.tracerName = tracerName
	}
}

// WithCheckOrigin sets the WebSocket origin check. The default accepts
// all origins, which is fine for a local preview server.
func WithCheckOrigin(fn func(*http.Request) bool) Option {
	return func(c *serverConfig) { c.checkOrigin = fn }
}

// New creates a preview server. Mount pages before calling Handler or
// ListenAndServe.
func New(opts ...Option) *Server {
	cfg := serverConfig{
		metrics:       true,
		metricsConfig: defaultMetricsConfig(),
		checkOrigin:   func(*http.Request) bool { return true },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	s := &Server{
		mux:    chi.NewRouter(),
		byName: make(map[string]*Page),
		logger: cfg.logger,
		name:   cfg.name,
		tracer: newTracer(cfg.tracing, cfg.tracerName),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     cfg.checkOrigin,
		},
	}
	if cfg.metrics {
		s.metrics = getMetrics(cfg.metricsConfig)
	}

	s.mux.Get("/", s.handleIndex)
	s.mux.Get("/p/{page}", s.handlePage)
	s.mux.Get("/ws/{page}", s.handleWS)
	s.mux.Get("/client.js", s.handleClientJS)
	if cfg.metrics {
		s.mux.Handle("/metrics", promhttp.Handler())
	}

	return s
}

// Mount registers a component kind under the given page name.
func (s *Server) Mount(name, title string, kind *reactive.Kind) {
	p := &Page{Name: name, Title: title, Kind: kind}
	s.pages = append(s.pages, p)
	s.byName[name] = p
	s.logger.Info("mounted page", "page", name, "title", title)
}

// Pages returns the mounted pages in mount order.
func (s *Server) Pages() []*Page {
	return s.pages
}

// Handler returns the http.Handler for mounting in external routers or
// httptest servers.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.Newf(errors.CategoryServe, "server failed: %v", err).Wrap(err)
		}
		return nil
	}
}

// lookupPage resolves a page by its chi URL parameter, writing the
// error response itself when the page is unknown.
func (s *Server) lookupPage(w http.ResponseWriter, r *http.Request) *Page {
	name := chi.URLParam(r, "page")
	p, ok := s.byName[name]
	if !ok {
		s.logger.Warn("unknown page requested", "page", name)
		err := errors.New("E080").WithDetail("No page named " + name)
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil
	}
	return p
}
