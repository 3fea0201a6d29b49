package cmd

import (
	"fmt"

	"github.com/example/engstudy/internal/excel"
	sr "github.com/example/engstudy/internal/spaced_repetition"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "review <word> <again|good|easy>",
		Short: "Grade one review of a word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := app.userByName(ctx, opts.user)
			if err != nil {
				return err
			}

			quality, err := sr.ParseRecallQuality(args[1])
			if err != nil {
				return err
			}

			word := excel.NormalizeKey(args[0])
			rec, err := app.Study.SubmitReview(ctx, user.ID, word, quality, app.Now())
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), rec)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, next review in %d day(s) on %s (%s)\n",
				word, quality, rec.IntervalDays, rec.DueAt.Local().Format("2006-01-02 15:04"), rec.SRSLevel)
			return nil
		},
	}
}
