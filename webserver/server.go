package webserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	// TODO: configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
)

// A PathHandler services requests whose URL path begins with the prefix it
// registered under.
type PathHandler func(*Request) error

// A hook pairs a path prefix with its PathHandler.
type hook struct {
	prefix  string
	handler PathHandler
}

// A Server dispatches HTTP requests on a port to registered PathHandlers.
type Server struct {
	cancel   context.CancelFunc
	ctx      context.Context
	env      waypoint.Environment
	hooks    []hook
	l        logger.Logger
	mws      []Adapter
	port     int
	protocol string
	srv      *http.Server
}

// New constructs a Server from the provided options.
// Default configuration comes from the environment:
// ENVIRONMENT for the deploy environment and PORT for the port to bind.
func New(opts ...ServerOption) (*Server, error) {
	s := &Server{
		env:      waypoint.EnvVarOrEnv("ENVIRONMENT", waypoint.Development),
		port:     waypoint.EnvVarOrInt("PORT", 8080),
		protocol: "https",
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("%w: %s", waypoint.ErrBadConfig, err)
		}
	}

	if s.l == nil {
		s.l = logger.NewLogger()
	}

	mws := append([]Adapter{
		RequestID(waypoint.RequestIDKey),
		InjectIPAddress(),
		LogRequest(s.l),
		RateLimit(NewVisitors()),
	}, s.mws...)

	var h http.Handler = http.HandlerFunc(s.dispatch)
	h = Chain(h, mws...)
	h = handlers.CompressHandler(h)
	h = handlers.ProxyHeaders(h)

	r := mux.NewRouter()
	r.PathPrefix("/").Handler(h)

	if s.srv == nil {
		s.srv = &http.Server{
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		}
	}
	s.srv.Addr = fmt.Sprintf(":%d", s.port)
	s.srv.Handler = r

	return s, nil
}

// AddPathHandler registers handler under the path prefix.
//
// Handlers are searched in registration order;
// the first prefix matching a request's URL path services it.
func (s *Server) AddPathHandler(prefix string, handler PathHandler) {
	s.hooks = append(s.hooks, hook{prefix: prefix, handler: handler})
}

// Env returns the Environment the Server runs in.
func (s *Server) Env() waypoint.Environment { return s.env }

// Port returns the port the Server binds.
func (s *Server) Port() int { return s.port }

// MakeEndpointURL renders the absolute URL reaching path on this Server,
// using either localhost or the machine's hostname.
func (s *Server) MakeEndpointURL(useLocalhost bool, path string) string {
	host := "localhost"
	if !useLocalhost {
		if h, err := os.Hostname(); err == nil {
			host = h
		}
	}

	return fmt.Sprintf("%s://%s:%d%s", s.protocol, host, s.port, path)
}

// ServeHTTP responds to an HTTP request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.srv.Handler.ServeHTTP(w, r)
}

// Startup begins the web server and blocks until it stops.
//
// These, and (*Server).Shutdown, stop Startup:
//
// - os.Interrupt
// - os.Kill
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (s *Server) Startup() error {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		os.Kill,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		sig := <-ch
		s.l.Info(fmt.Sprint("received shutdown signal: ", sig), nil)
		s.cancel()
	}()

	go func() {
		s.l.Info(fmt.Sprintf("running web server at %s", s.srv.Addr), nil)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			s.l.Error(err.Error(), nil)
			s.cancel()
		}
	}()

	<-s.ctx.Done()
	return s.Shutdown()
}

// Shutdown shutdowns the web server, draining in-flight requests.
func (s *Server) Shutdown() error {
	if s.cancel != nil {
		s.cancel()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.l.Info("shutting down web server", nil)
	err := s.srv.Shutdown(shutdownCtx)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	s.l.Info("web server shutdown successfully", nil)
	return nil
}

// dispatch finds the first registered hook matching the request path
// and runs its PathHandler; unmatched requests get a plain 404.
func (s *Server) dispatch(w http.ResponseWriter, httpReq *http.Request) {
	r := newRequest(w, httpReq)
	for _, h := range s.hooks {
		if strings.HasPrefix(r.URL().Path(), h.prefix) {
			if err := h.handler(r); err != nil {
				s.l.Error(err.Error(), &logger.LogContext{Error: err, Request: httpReq})
			}
			return
		}
	}

	if err := SendText(r.Response(), http.StatusNotFound, "NOT FOUND\n"+r.URL().Path()); err != nil {
		s.l.Error(err.Error(), &logger.LogContext{Error: err, Request: httpReq})
	}
}
