package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/example/engstudy/pkg/models"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App, opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage learners",
	}
	cmd.AddCommand(newUserAddCmd(app, opts))
	cmd.AddCommand(newUserSetCmd(app, opts))
	cmd.AddCommand(newUserListCmd(app, opts))
	return cmd
}

func newUserAddCmd(app *App, opts *globalOptions) *cobra.Command {
	var (
		user     models.User
		noRemind bool
	)

	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Create a learner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user.Username = args[0]
			if user.DisplayName == "" {
				user.DisplayName = user.Username
			}
			user.NotificationEnabled = !noRemind
			if err := checkSettings(&user); err != nil {
				return err
			}

			if err := app.Users.Create(cmd.Context(), &user); err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), user)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&user.DisplayName, "name", "", "display name")
	cmd.Flags().StringVar(&user.Email, "email", "", "email for reminders")
	cmd.Flags().Int64Var(&user.TelegramChatID, "telegram-chat", 0, "telegram chat id for reminders")
	cmd.Flags().IntVar(&user.NotificationHour, "hour", 9, "hour of day for reminders (0-23)")
	cmd.Flags().IntVar(&user.MaxNewPerSession, "max-new", 0, "new words per session (0 uses the default)")
	cmd.Flags().IntVar(&user.MaxReviewPerSession, "max-review", 0, "reviews per session (0 uses the default)")
	cmd.Flags().BoolVar(&noRemind, "no-remind", false, "disable reminders")
	return cmd
}

func newUserSetCmd(app *App, opts *globalOptions) *cobra.Command {
	var (
		patch  models.User
		remind bool
	)

	cmd := &cobra.Command{
		Use:   "set <username>",
		Short: "Change a learner's settings",
		Long:  `Change only the settings passed as flags, the rest stay as they are.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := app.userByName(ctx, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			changed := false
			for _, name := range []string{"name", "email", "telegram-chat", "hour", "max-new", "max-review", "remind"} {
				changed = changed || flags.Changed(name)
			}
			if !changed {
				return fmt.Errorf("nothing to change for %s", user.Username)
			}
			if flags.Changed("name") {
				user.DisplayName = patch.DisplayName
			}
			if flags.Changed("email") {
				user.Email = patch.Email
			}
			if flags.Changed("telegram-chat") {
				user.TelegramChatID = patch.TelegramChatID
			}
			if flags.Changed("hour") {
				user.NotificationHour = patch.NotificationHour
			}
			if flags.Changed("max-new") {
				user.MaxNewPerSession = patch.MaxNewPerSession
			}
			if flags.Changed("max-review") {
				user.MaxReviewPerSession = patch.MaxReviewPerSession
			}
			if flags.Changed("remind") {
				user.NotificationEnabled = remind
			}
			if err := checkSettings(user); err != nil {
				return err
			}

			if err := app.Users.Update(ctx, user); err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), user)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated user %s\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&patch.DisplayName, "name", "", "display name")
	cmd.Flags().StringVar(&patch.Email, "email", "", "email for reminders, empty to remove")
	cmd.Flags().Int64Var(&patch.TelegramChatID, "telegram-chat", 0, "telegram chat id for reminders, 0 to remove")
	cmd.Flags().IntVar(&patch.NotificationHour, "hour", 9, "hour of day for reminders (0-23)")
	cmd.Flags().IntVar(&patch.MaxNewPerSession, "max-new", 0, "new words per session (0 uses the default)")
	cmd.Flags().IntVar(&patch.MaxReviewPerSession, "max-review", 0, "reviews per session (0 uses the default)")
	cmd.Flags().BoolVar(&remind, "remind", true, "send reminders")
	return cmd
}

func newUserListCmd(app *App, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List learners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(cmd.Context())
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), users)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tREMINDER")
			for _, u := range users {
				reminder := "off"
				if u.NotificationEnabled {
					reminder = fmt.Sprintf("%02d:00", u.NotificationHour)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.DisplayName, reminder)
			}
			return tw.Flush()
		},
	}
}

func checkSettings(user *models.User) error {
	if user.NotificationHour < 0 || user.NotificationHour > 23 {
		return fmt.Errorf("reminder hour %d out of range 0-23", user.NotificationHour)
	}
	if user.MaxNewPerSession < 0 || user.MaxReviewPerSession < 0 {
		return fmt.Errorf("session limits must not be negative")
	}
	return nil
}
