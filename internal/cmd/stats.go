package cmd

import (
	"fmt"

	"github.com/example/engstudy/pkg/models"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App, opts *globalOptions) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show learning progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := app.userByName(ctx, opts.user)
			if err != nil {
				return err
			}

			progress, err := app.Study.Progress(ctx, user.ID, app.Now())
			if err != nil {
				return err
			}

			history, err := app.History.ListRecent(ctx, user.ID, recent)
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
					"progress": progress,
					"recent":   history,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Progress for %s\n", user.DisplayName)
			fmt.Fprintf(out, "==================\n\n")
			fmt.Fprintf(out, "Catalog:       %d\n", progress.CatalogSize)
			fmt.Fprintf(out, "Learned:       %d\n", progress.TotalLearned)
			fmt.Fprintf(out, "Due now:       %d\n", progress.DueNow)
			fmt.Fprintf(out, "Reviews today: %d\n", progress.ReviewsToday)
			fmt.Fprintln(out, "By level:")
			for _, level := range models.Levels {
				fmt.Fprintf(out, "  %-9s %d\n", level.String()+":", progress.Levels[level])
			}

			if len(history) > 0 {
				fmt.Fprintln(out, "\nRecent reviews:")
				for _, h := range history {
					fmt.Fprintf(out, "  %s  %-16s %-5s next in %dd\n",
						h.ReviewedAt.Local().Format("2006-01-02 15:04"), h.WordKey, h.Quality, h.IntervalDays)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 10, "number of recent reviews to show")
	return cmd
}
