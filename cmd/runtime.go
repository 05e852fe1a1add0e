package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/papapumpkin/holonet/internal/config"
	"github.com/papapumpkin/holonet/internal/journal"
	"github.com/papapumpkin/holonet/internal/logging"
	"github.com/papapumpkin/holonet/internal/swapi"
)

// runtime bundles what every command needs after config is loaded.
type runtime struct {
	cfg     config.Config
	logger  *slog.Logger
	client  *swapi.Client
	closers []io.Closer
}

// newRuntime loads config and builds the logger and API client. extra
// handlers receive log records alongside the log file.
func newRuntime(extra ...slog.Handler) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, closer := logging.New(logging.Options{
		Path:  cfg.LogFile,
		Level: cfg.Level(),
		Extra: extra,
	})
	return &runtime{
		cfg:     cfg,
		logger:  logger,
		client:  newClient(cfg, logger),
		closers: []io.Closer{closer},
	}, nil
}

// openJournal opens the transition journal when one is configured. The
// returned emitter is nil, and safe to use, when it is not.
func (r *runtime) openJournal(session string) (*journal.Emitter, error) {
	if r.cfg.JournalPath == "" {
		return nil, nil
	}
	j, err := journal.Open(r.cfg.JournalPath, session, journal.WithLogger(r.logger))
	if err != nil {
		return nil, err
	}
	r.closers = append(r.closers, j)
	return j, nil
}

// Close releases the journal and the log file.
func (r *runtime) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i].Close())
	}
	return errors.Join(errs...)
}

func newClient(cfg config.Config, logger *slog.Logger) *swapi.Client {
	return swapi.NewClient(swapi.Options{
		BaseURL:   cfg.APIBaseURL,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	})
}

// isStderrTTY reports whether stderr is attached to a terminal.
func isStderrTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// isTTY reports whether w is a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
