package cmd

import (
	"fmt"
	"io"

	"github.com/example/engstudy/pkg/models"
	"github.com/spf13/cobra"
)

type sessionItem struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Status      string `json:"status"`
}

type sessionOutput struct {
	Plan  models.SessionPlan `json:"plan"`
	Items []sessionItem      `json:"items"`
}

func newSessionCmd(app *App, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the words for the next study session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := app.userByName(ctx, opts.user)
			if err != nil {
				return err
			}

			plan, err := app.Study.PlanSession(ctx, user.ID, app.Now())
			if err != nil {
				return err
			}

			catalog, err := app.Words.Catalog(ctx)
			if err != nil {
				return err
			}
			translations := make(map[string]string, len(catalog))
			for _, w := range catalog {
				translations[w.Key] = w.Translation
			}

			out := sessionOutput{Plan: plan, Items: []sessionItem{}}
			for _, k := range plan.Due {
				out.Items = append(out.Items, sessionItem{Word: k, Translation: translations[k], Status: "review"})
			}
			for _, k := range plan.New {
				out.Items = append(out.Items, sessionItem{Word: k, Translation: translations[k], Status: "new"})
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			printSession(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func printSession(w io.Writer, out sessionOutput) {
	plan := out.Plan
	fmt.Fprintf(w, "Due for review: %d of %d\n", len(plan.Due), plan.DueTotal)
	fmt.Fprintf(w, "New words:      %d of %d\n", len(plan.New), plan.NewTotal)
	fmt.Fprintf(w, "Learned:        %d / %d\n\n", plan.TotalLearned, plan.CatalogSize)

	if len(out.Items) == 0 {
		fmt.Fprintln(w, "Nothing to study right now.")
		return
	}
	for i, item := range out.Items {
		fmt.Fprintf(w, "%3d. [%s] %s - %s\n", i+1, item.Status, item.Word, item.Translation)
	}
}
