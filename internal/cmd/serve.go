package cmd

import (
	"fmt"

	"github.com/example/engstudy/internal/scheduler"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *App) newScheduler(cmd *cobra.Command) (*scheduler.Scheduler, error) {
	notifier, err := a.NewNotifier(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to set up notifications: %w", err)
	}
	return scheduler.New(a.Config.Notify, a.Users, a.Study, notifier, a.Log.Named("scheduler"),
		scheduler.WithClock(a.Now)), nil
}

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the review reminder scheduler",
		Long:  `Send review reminders every check interval until interrupted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !app.Config.Notify.Enabled {
				return fmt.Errorf("notifications are disabled, set NOTIFICATIONS_ENABLED=true")
			}

			s, err := app.newScheduler(cmd)
			if err != nil {
				return err
			}
			if err := s.Start(ctx); err != nil {
				return err
			}
			defer s.Stop()

			fmt.Fprintln(cmd.OutOrStdout(), "Reminder scheduler started. Press Ctrl+C to stop.")
			<-ctx.Done()
			app.Log.Info("shutting down", zap.Error(ctx.Err()))
			return nil
		},
	}
}

func newRemindCmd(app *App, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Send a review reminder to the user now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := app.userByName(ctx, opts.user)
			if err != nil {
				return err
			}

			s, err := app.newScheduler(cmd)
			if err != nil {
				return err
			}

			sent, err := s.RunManualCheck(ctx, user.ID)
			if err != nil {
				return err
			}
			if sent {
				fmt.Fprintf(cmd.OutOrStdout(), "Reminder sent to %s.\n", user.Username)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No reminder sent to %s.\n", user.Username)
			}
			return nil
		},
	}
}
