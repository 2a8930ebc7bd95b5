package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marshallshelly/boardwalk/cmd/boardwalk/output"
	"github.com/marshallshelly/boardwalk/pkg/logging"
	"github.com/marshallshelly/boardwalk/pkg/mockapi"
)

var (
	// Serve flags
	servePort     int
	serveEmail    string
	servePassword string
	serveSecret   string
	serveSeed     int
	serveRate     int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bundled mock board API",
	Long: `Run an in-memory board API for local development and demos.

The server speaks the same contract the client consumes: bearer-token
auth, cursor-paginated /posts with filters, full post CRUD, and the six
analytics endpoints. State lives in memory and is lost on exit.

Examples:
  boardwalk serve                         # Defaults on :8080
  boardwalk serve --port 9090 --seed 500
  boardwalk serve --email me@dev.local --password hunter2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	defaults := mockapi.DefaultConfig()
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Listen port")
	serveCmd.Flags().StringVar(&serveEmail, "email", defaults.Email, "Accepted login email")
	serveCmd.Flags().StringVar(&servePassword, "password", defaults.Password, "Accepted login password")
	serveCmd.Flags().StringVar(&serveSecret, "jwt-secret", defaults.JWTSecret, "Token signing secret")
	serveCmd.Flags().IntVar(&serveSeed, "seed", defaults.SeedPosts, "Number of seed posts")
	serveCmd.Flags().IntVar(&serveRate, "rate", defaults.RatePerMinute, "Requests per minute per client IP")

	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	level := "info"
	if verbose {
		level = "debug"
	}
	// Unlike the TUIs the server owns stdout, so it logs to the console too.
	log, err := logging.New(logging.Config{Level: level, Console: true, Path: logFile})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg := mockapi.DefaultConfig()
	cfg.Email = serveEmail
	cfg.Password = servePassword
	cfg.JWTSecret = serveSecret
	cfg.SeedPosts = serveSeed
	cfg.RatePerMinute = serveRate

	server, err := mockapi.NewServer(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	addr := fmt.Sprintf(":%d", servePort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	output.Success("Mock board API listening on %s", addr)
	output.Muted("login: %s / %s  (%d seed posts)", cfg.Email, cfg.Password, cfg.SeedPosts)
	log.Info("server started", zap.String("addr", addr), zap.Int("seed_posts", cfg.SeedPosts))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	output.Muted("Server stopped.")
	return nil
}
