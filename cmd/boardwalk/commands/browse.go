package commands

import (
	"github.com/spf13/cobra"

	"github.com/marshallshelly/boardwalk/cmd/boardwalk/tui"
	"github.com/marshallshelly/boardwalk/pkg/api"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive posts browser",
	Long: `Open the interactive posts browser.

The browser lists posts with infinite scroll, debounced search, category
and date filters, column toggles and resizing, and inline create, edit
and delete. It requires a stored session; run login first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := gateway()
		if err != nil {
			return err
		}
		return tui.RunBrowse(api.NewPostsClient(client), store)
	},
}

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Analytics dashboard",
	Long: `Open the analytics dashboard.

Six chart panels are loaded up front: coffee brand popularity, snack
brand share, weekly mood and workout trends, coffee consumption against
bugs and productivity, and snack impact by department. Each panel keeps
its own legend; toggled series stay toggled across refreshes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := gateway()
		if err != nil {
			return err
		}
		return tui.RunDashboard(api.NewAnalyticsClient(client))
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(dashboardCmd)
}
