package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/mbti/am"
	"github.com/teranos/mbti/errors"
	"github.com/teranos/mbti/logger"
	"github.com/teranos/mbti/server"
)

// ServeCmd starts the HTTP server
var ServeCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the HTTP server",
	Long: `Serve type derivations over HTTP.

Routes:
  GET  /               all sixteen types
  GET  /type?code=     derive a code (POST accepts a form field or JSON body)
  GET  /{code}/info    full profile for one type
  GET  /health         liveness and version
  GET  /metrics        Prometheus metrics

The active config file is watched; allowed origins and rate limits reload
without a restart.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	servePort    int
	serveHost    string
	serveNoWatch bool
)

func init() {
	ServeCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides server.port)")
	ServeCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind (overrides server.host)")
	ServeCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "Disable config hot reload")
}

func runServe(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	cfg := *loaded
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serveHost
	}
	if err := cfg.Validate(); err != nil {
		return errors.WithHint(err, "check --port and --host")
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	log := logger.Named("server")
	srv := server.New(&cfg, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watchedPath := ""
	if path := am.ActiveConfigPath(); path != "" && !serveNoWatch {
		watcher, err := am.NewConfigWatcher(path)
		if err != nil {
			log.Warnw("Config hot reload disabled", logger.FieldConfigPath, path, logger.FieldError, err)
		} else {
			watcher.OnReload(func(next *am.Config) error {
				srv.ApplyConfig(next)
				pterm.Info.Println("Configuration reloaded from " + path)
				return nil
			})
			watcher.Start()
			am.SetGlobalWatcher(watcher)
			defer func() {
				am.SetGlobalWatcher(nil)
				if err := watcher.Stop(); err != nil {
					log.Warnw("Failed to stop config watcher", logger.FieldError, err)
				}
			}()
			watchedPath = path
		}
	}

	ready := make(chan string, 1)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe(ctx, ready)
	}()

	select {
	case addr := <-ready:
		printStartupBanner(cmd.OutOrStdout(), addr, verbosity, watchedPath)
	case err := <-serveErr:
		return err
	}

	if err := <-serveErr; err != nil {
		return err
	}
	pterm.Success.Println("Server stopped cleanly")
	return nil
}
