package cmd

import (
	"errors"
	"fmt"

	"github.com/example/engstudy/internal/excel"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App, opts *globalOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reset <word...>",
		Short: "Forget progress on words",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if all == (len(args) > 0) {
				return errors.New("pass either words or --all")
			}

			user, err := app.userByName(ctx, opts.user)
			if err != nil {
				return err
			}

			if all {
				if err := app.Study.ResetAll(ctx, user.ID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All progress reset.")
				return nil
			}

			words := make([]string, len(args))
			for i, a := range args {
				words[i] = excel.NormalizeKey(a)
			}
			if err := app.Study.ResetProgress(ctx, user.ID, words); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %d word(s).\n", len(words))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "reset every word")
	return cmd
}
