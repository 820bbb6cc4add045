// Package web hosts the browser-facing student admin service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/studentadmin/internal/platform/servicetoken"
	"github.com/louisbranch/studentadmin/internal/platform/timeouts"
	webapp "github.com/louisbranch/studentadmin/internal/services/web/app"
	"github.com/louisbranch/studentadmin/internal/services/web/modules"
	studentgateway "github.com/louisbranch/studentadmin/internal/services/web/modules/students/gateway"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/httpx"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/observability"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/studentadmin/internal/services/web/routepath"
	webstatic "github.com/louisbranch/studentadmin/internal/services/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr            string
	StudentAPIBaseURL   string
	TokenSecret         string
	TokenIssuer         string
	TrustForwardedProto bool
	// HTTPClient overrides the Student API transport. Nil uses a default client.
	HTTPClient studentgateway.HTTPDoer
	// Logger receives request and failure lines. Nil uses log.Default().
	Logger *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler: module routes, static assets, health,
// and metrics behind the shared middleware chain.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	metrics := observability.NewMetrics()

	deps := modules.Dependencies{
		StudentAPIBaseURL: strings.TrimSpace(cfg.StudentAPIBaseURL),
		HTTPClient:        cfg.HTTPClient,
		Metrics:           metrics,
		Logger:            logger,
	}
	tokens, err := servicetoken.New(servicetoken.Config{
		Secret: []byte(cfg.TokenSecret),
		Issuer: cfg.TokenIssuer,
		TTL:    timeouts.ServiceToken,
	})
	if err != nil {
		return nil, fmt.Errorf("configure student api token: %w", err)
	}
	if tokens != nil {
		deps.Tokens = tokens
	}

	publicModules := modules.DefaultPublicModules(deps)
	for id, healthy := range modules.ModuleHealth(publicModules) {
		if !healthy {
			logger.Printf("web module unavailable module=%s", id)
		}
	}

	h, err := webapp.BuildRootHandler(webapp.Config{
		PublicModules:       publicModules,
		RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	rootMux.Handle(http.MethodGet+" "+routepath.Metrics, metrics.Handler())
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
		metrics.Middleware(),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
