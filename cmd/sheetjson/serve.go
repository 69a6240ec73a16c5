package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aerissecure/sheetjson/internal/cache"
	"github.com/aerissecure/sheetjson/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve conversions over HTTP and WebSocket",
	Long: `Start the conversion service.

Endpoints:
  POST /parse   multipart upload, workbook in the "file" field
  GET  /health  liveness
  GET  /ws      binary workbook messages in, JSON text messages out

Set cache.driver to sqlite3 or postgres to reuse results for identical
uploads.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var c *cache.Cache
	if cfg.Cache.Driver != "" {
		c, err = cache.Open(ctx, cfg.Cache.Driver, cfg.Cache.DSN)
		if err != nil {
			return err
		}
		defer c.Close()
		log.WithField("driver", cfg.Cache.Driver).Info("result cache enabled")
	}

	return server.New(cfg, log, c).Run(ctx)
}
