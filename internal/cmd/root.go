package cmd

import (
	"github.com/spf13/cobra"
)

type globalOptions struct {
	user string
	json bool
}

// NewRootCmd creates the root command for engstudy.
func NewRootCmd(app *App) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "engstudy",
		Short: "Spaced repetition vocabulary trainer",
		Long: `Learn English vocabulary with spaced repetition.

engstudy provides tools to:
- Import word lists from Excel or CSV files
- Plan study sessions of due and new words
- Grade reviews as again, good or easy
- Track progress and send review reminders`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.user, "user", "u", "", "username to study as")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON output")

	root.AddCommand(newUserCmd(app, opts))
	root.AddCommand(newImportCmd(app, opts))
	root.AddCommand(newSessionCmd(app, opts))
	root.AddCommand(newReviewCmd(app, opts))
	root.AddCommand(newResetCmd(app, opts))
	root.AddCommand(newStatsCmd(app, opts))
	root.AddCommand(newRemindCmd(app, opts))
	root.AddCommand(newServeCmd(app))

	return root
}
