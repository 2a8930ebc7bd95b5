package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marshallshelly/boardwalk/cmd/boardwalk/output"
	"github.com/marshallshelly/boardwalk/pkg/api"
	"github.com/marshallshelly/boardwalk/pkg/session"
)

var (
	// Login flags
	loginEmail    string
	loginPassword string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store a session token",
	Long: `Sign in against the board API and store the bearer token locally.

The token is written to the config directory and attached to every
authenticated request until you run logout.

Examples:
  boardwalk login --email admin@example.com     # Prompt for the password
  boardwalk login                               # Prompt for both`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogin()
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogout()
	},
}

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show whether a session token is stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWhoami()
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin() error {
	store, err := tokenStore()
	if err != nil {
		return err
	}
	if d := session.GuestOnly(store, ""); !d.Allowed {
		output.Warning("Already signed in; a new login replaces the stored token.")
	}

	email := loginEmail
	if email == "" {
		fmt.Print("Email: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}

	password := loginPassword
	if password == "" {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(raw)
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	client, store, err := gateway()
	if err != nil {
		return err
	}

	auth := api.NewAuthClient(client, store)
	if _, err := auth.Login(context.Background(), email, password); err != nil {
		if api.IsStatus(err, 401) {
			output.Error("Invalid email or password")
			return fmt.Errorf("login rejected")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	output.Success("Signed in as %s", email)
	output.Muted("Token stored; run `boardwalk logout` to discard it.")
	return nil
}

func runLogout() error {
	store, err := tokenStore()
	if err != nil {
		return err
	}
	if _, ok := store.Get(); !ok {
		output.Muted("No stored session.")
		return nil
	}
	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	output.Success("Signed out")
	return nil
}

func runWhoami() error {
	store, err := tokenStore()
	if err != nil {
		return err
	}
	token, ok := store.Get()
	if !ok {
		output.Warning("Not signed in")
		output.Muted("Run `boardwalk login` first.")
		return nil
	}

	// The token is opaque to the client; validity is the server's call.
	output.Success("Session token present (%d chars)", len(token))
	output.Muted("API: %s", apiURL)
	return nil
}
