package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marshallshelly/boardwalk/pkg/api"
	"github.com/marshallshelly/boardwalk/pkg/logging"
	"github.com/marshallshelly/boardwalk/pkg/session"
)

var (
	// Global flags
	apiURL     string
	configDir  string
	logFile    string
	verbose    bool
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "boardwalk",
	Short: "Boardwalk - terminal admin client for the discussion board",
	Long: `Boardwalk is a terminal admin client for the discussion-board API.

Features:
  - Interactive posts browser with filtering, infinite scroll and inline editing
  - Scriptable posts CRUD with JSON output
  - Analytics dashboard with toggleable chart legends
  - Bundled in-memory mock API server for local development`,
	Version: "1.2.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultAPI := os.Getenv("BOARDWALK_API_URL")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}
	defaultDir := os.Getenv("BOARDWALK_CONFIG_DIR")

	// Global flags
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "Board API base URL")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", defaultDir, "Directory for the stored session token")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// tokenStore resolves the session store from flags.
func tokenStore() (*session.Store, error) {
	dir := configDir
	if dir == "" {
		var err error
		dir, err = session.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config dir: %w", err)
		}
	}
	return session.NewStore(dir), nil
}

// newLogger builds the debug logger; a no-op unless --log-file is set.
func newLogger() (*zap.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{Level: level, Path: logFile})
}

// gateway builds the API client bound to the stored session.
func gateway() (*api.Client, *session.Store, error) {
	store, err := tokenStore()
	if err != nil {
		return nil, nil, err
	}
	log, err := newLogger()
	if err != nil {
		return nil, nil, err
	}
	return api.NewClient(apiURL, store, api.WithLogger(log)), store, nil
}
