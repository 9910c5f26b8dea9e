package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultMaxBodySize limits the size of request bodies, 32 MiB
const DefaultMaxBodySize = 32 << 20

// ShutdownTimeout is how long Shutdown waits for running requests
const ShutdownTimeout = 5 * time.Second

// HttpServer exposes the encoders over HTTP
type HttpServer struct {
	Address     string `json:"address"`
	MaxBodySize int64  `json:"maxBodySize"`

	server   *http.Server
	listener net.Listener
}

func NewHttpServer(address string) *HttpServer {
	return &HttpServer{
		Address:     address,
		MaxBodySize: DefaultMaxBodySize,
	}
}

func (ws *HttpServer) String() string {
	return ws.Addr()
}

// Addr returns the address the server listens on, once started
func (ws *HttpServer) Addr() string {
	if ws.listener != nil {
		return ws.listener.Addr().String()
	}
	return ws.Address
}

// Router builds the request handler with all middleware attached
func (ws *HttpServer) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(ws.Addr()),
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		middleware.Recoverer,       // Recover from panics without crashing the server
	)

	h := &handlers{maxBodySize: ws.MaxBodySize}
	router.Post("/encode", h.encode)
	router.Post("/decode", h.decode)
	router.Get("/encodings", h.encodings)
	return router
}

// Startup starts listening and serves requests in the background
func (ws *HttpServer) Startup() error {
	ln, err := net.Listen("tcp", ws.Address)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", ws.Address)
	}
	ws.listener = ln
	ws.server = &http.Server{
		Addr:    ws.Addr(),
		Handler: ws.Router(),
	}

	go func() {
		log.Infof("Starting HTTP server at %v", ws)
		if err := ws.server.Serve(ln); err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
		}
	}()

	return nil
}

func (ws *HttpServer) Shutdown() error {
	if ws.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer func() {
		cancel()
	}()
	return errors.WithStack(ws.server.Shutdown(ctx))
}
