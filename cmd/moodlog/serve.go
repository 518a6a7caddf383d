package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/unowned-ai/moodlog/pkg/httpapi"
	"github.com/unowned-ai/moodlog/pkg/records"
	"github.com/unowned-ai/moodlog/pkg/refresh"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REST API and keep the wellness views fresh",
	Long: `Start an HTTP server exposing moods, insights, entries and the wellness views.
A background refresher recomputes the all-time views every refresh_interval and
serves the result at /api/views/latest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.HTTP.Addr
		if cmd.Flags().Changed("addr") {
			addr = addrFlag
		}
		if cfg.RefreshInterval <= 0 {
			return fmt.Errorf("refresh_interval must be positive, got %s", cfg.RefreshInterval)
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		loc := location()
		refresher := &refresh.Refresher{
			Interval: cfg.RefreshInterval,
			Clock:    refresh.RealClock(),
			Load: func(ctx context.Context) (wellness.Snapshot, error) {
				return records.LoadSnapshot(ctx, dbConn, cfg.User)
			},
			Log: log.With("component", "refresher"),
		}
		refresher.SetQuery(wellness.Query{Location: loc})

		srv := httpapi.NewServer(addr, httpapi.Options{
			DB:             dbConn,
			User:           cfg.User,
			Location:       loc,
			Refresher:      refresher,
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
			Log:            log.With("component", "http"),
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return refresher.Run(gctx) })
		g.Go(func() error { return srv.Run(gctx) })

		log.Info("moodlog serving", "addr", addr, "user", cfg.User, "refresh_interval", cfg.RefreshInterval.String())
		return g.Wait()
	},
}

func initServeCmd() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (overrides http.addr from the config)")
}
