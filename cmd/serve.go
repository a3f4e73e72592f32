package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/db"
	"github.com/jsphweid/fretdex/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", constants.GetAddr(), "listen address")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the JSON API",
	Long: `Serves the JSON API: catalogue, grids, scales, chords, frequency conversion,
pitch detection and sessions that hold a selection and preferences.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := db.Open(constants.GetPrefsEndpoint(), constants.GetPrefsRegion(), constants.GetPrefsTable())
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return serve(ctx, addr, NewServer(prefs, constants.GetMaxSessions()))
	},
}

func serve(ctx context.Context, addr string, s *Server) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		logging.Logger.Info("listening", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logging.Logger.Info("shutting down")
	return errors.Wrap(srv.Shutdown(shutdownCtx), "could not shut down cleanly")
}
