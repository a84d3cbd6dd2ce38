package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rezonia/invoice-issuer/internal/config"
	"github.com/rezonia/invoice-issuer/internal/logging"
	"github.com/rezonia/invoice-issuer/internal/server"
)

var (
	serveAddr       string
	serveDebug      bool
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server exposing the consolidation and rendering
engines.

Endpoints:
  - POST /api/v1/consolidate           - Consolidate raw billing lines
  - POST /api/v1/invoices/render       - Render one invoice record as PDF
  - POST /api/v1/invoices/render-batch - Render records into one merged PDF
  - POST /api/v1/summary/render        - Render the batch summary (pdf/xlsx)
  - GET  /health                       - Health check

Examples:
  invoice-issuer serve
  invoice-issuer serve --address :9090 --debug
  invoice-issuer serve --config issuer.yaml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "address", "", "Server listen address (overrides config)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Config file path (yaml)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Address = serveAddr
	}
	if serveDebug {
		cfg.Server.Debug = true
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	defer logger.Sync()

	srv := server.NewServer(&server.Config{
		Address:      cfg.Server.Address,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Debug:        cfg.Server.Debug,
	}, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	logger.Info("starting server", zap.String("address", cfg.Server.Address))
	return srv.Run()
}
