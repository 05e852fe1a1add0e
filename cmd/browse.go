package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/holonet/internal/app"
	"github.com/papapumpkin/holonet/internal/config"
	"github.com/papapumpkin/holonet/internal/journal"
	"github.com/papapumpkin/holonet/internal/store"
	"github.com/papapumpkin/holonet/internal/tui"
)

// errNoTTY is returned when the interactive explorer is started without a
// terminal.
var errNoTTY = errors.New("holonet browse requires a TTY (terminal)")

// browseCmd launches the interactive explorer.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive explorer",
	Long: `Launch the full-screen explorer. Pick a category, type a search term and
press enter; open any result for its details.

Edits to the config file are picked up while running: a new api_base_url
applies to the next request.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if !isStderrTTY() {
		return errNoTTY
	}

	statusLog := tui.NewLogHandler(slog.LevelWarn)
	rt, err := newRuntime(statusLog)
	if err != nil {
		return err
	}
	defer rt.Close()

	session := uuid.NewString()
	rec, err := rt.openJournal(session)
	if err != nil {
		return err
	}
	_ = rec.Emit(journal.Event{Kind: journal.KindSessionStart, Data: map[string]string{"api": rt.cfg.APIBaseURL}})
	defer func() { _ = rec.Emit(journal.Event{Kind: journal.KindSessionEnd}) }()

	var opts []store.Option
	if rec != nil {
		opts = append(opts, store.WithRecorder(rec))
	}
	ctrl := app.NewController(store.New(opts...), rt.logger.With("session", session))

	p := tui.NewProgram(cmd.Context(), ctrl, rt.client)
	statusLog.SetProgram(p)
	watchConfig(p, rt.logger)

	rt.logger.Info("explorer started", "session", session, "api", rt.cfg.APIBaseURL)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// watchConfig forwards config file edits to the running program as a
// replacement gateway. Invalid edits are logged and ignored.
func watchConfig(p *tui.Program, logger *slog.Logger) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := config.Load()
		if err != nil {
			logger.Warn("config reload rejected", "file", e.Name, "error", err)
			return
		}
		logger.Info("config reloaded", "file", e.Name, "api", cfg.APIBaseURL)
		p.Send(tui.MsgGatewayChanged{Gateway: newClient(cfg, logger)})
	})
	viper.WatchConfig()
}
