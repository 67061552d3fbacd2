package webserver

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
)

// A ServerOption configures a *Server under construction by New.
type ServerOption func(*Server) error

// WithEnv casts the provided string into a valid Environment.
// If that fails, WithEnv reads the ENVIRONMENT environment variable,
// falling back to Development.
func WithEnv(envVar string) ServerOption {
	return func(s *Server) error {
		e := waypoint.Environment(envVar)
		if err := e.Valid(); err != nil {
			e = waypoint.EnvVarOrEnv("ENVIRONMENT", waypoint.Development)
		}

		s.env = e
		return nil
	}
}

// WithLogger sets the logger.Logger the Server and its middlewares use.
func WithLogger(l logger.Logger) ServerOption {
	return func(s *Server) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}

		s.l = l
		return nil
	}
}

// WithMiddlewares appends the Adapters to the default middleware stack.
func WithMiddlewares(mws ...Adapter) ServerOption {
	return func(s *Server) error {
		s.mws = append(s.mws, mws...)
		return nil
	}
}

// WithPort sets the port the Server binds.
func WithPort(port int) ServerOption {
	return func(s *Server) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("port %d out of range", port)
		}

		s.port = port
		return nil
	}
}

// WithProtocol sets the scheme MakeEndpointURL renders, e.g., "http".
func WithProtocol(protocol string) ServerOption {
	return func(s *Server) error {
		if protocol == "" {
			return fmt.Errorf(`protocol cannot be ""`)
		}

		s.protocol = protocol
		return nil
	}
}

// WithServer sets the underlying *http.Server.
// New overwrites its Addr and Handler.
func WithServer(srv *http.Server) ServerOption {
	return func(s *Server) error {
		if srv == nil {
			return fmt.Errorf("server cannot be nil")
		}

		s.srv = srv
		return nil
	}
}
