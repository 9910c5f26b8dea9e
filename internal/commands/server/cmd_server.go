package server

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bokysan/base32768/internal/logging"
	"github.com/bokysan/base32768/internal/server"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Command struct {
	Address     string `yaml:"address"       short:"a" long:"address"       env:"ADDRESS"       description:"Address to listen on" default:"127.0.0.1:8032"`
	MaxBodySize int64  `yaml:"max-body-size" short:"m" long:"max-body-size" env:"MAX_BODY_SIZE" description:"Largest accepted request body, in bytes" default:"33554432"`

	srv *server.HttpServer
}

func NewCommand() *Command {
	return &Command{
		Address:     "127.0.0.1:8032",
		MaxBodySize: server.DefaultMaxBodySize,
	}
}

func (s *Command) String() string {
	return "Serve"
}

func (s *Command) Startup() error {
	s.srv = server.NewHttpServer(s.Address)
	s.srv.MaxBodySize = s.MaxBodySize
	return s.srv.Startup()
}

func (s *Command) Shutdown() error {
	var errs error

	log.Infof("Graceful server shutdown...")
	if s.srv != nil {
		log.Debugf("[Server] Shutting down %v", s.srv)
		if err := s.srv.Shutdown(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not shutdown %v", s.srv))
		}
	}

	return errs
}

//noinspection GoUnusedParameter
func (s *Command) Execute(args []string) error {
	logging.SetupLogging()
	log.Tracef("[Server] Options: %v", spew.Sdump(s))

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	return s.run(interrupted)
}

func (s *Command) run(interrupted <-chan os.Signal) error {
	if err := s.Startup(); err != nil {
		return err
	}

	sig := <-interrupted
	log.Debugf("[Server] Received %v", sig)
	return s.Shutdown()
}
