package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Dias221467/Wellness_Tracker/internal/services"
	"github.com/spf13/cobra"
)

var syncGoals bool

var reportCmd = &cobra.Command{
	Use:   "report <user-id>",
	Short: "Show a user's wellness report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUserID(args[0])
		if err != nil {
			return err
		}
		return withApp(cmd.Context(), func(a *app) error {
			report, err := a.wellness.Report(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return writeReport(cmd.OutOrStdout(), report)
		})
	},
}

var remindersCmd = &cobra.Command{
	Use:   "reminders <user-id>",
	Short: "List every reminder that applies to a user right now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUserID(args[0])
		if err != nil {
			return err
		}
		return withApp(cmd.Context(), func(a *app) error {
			feed, err := a.reminders.GetReminders(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(cmd.OutOrStdout(), feed)
			}
			return writeReminders(cmd.OutOrStdout(), feed)
		})
	},
}

var goalsCmd = &cobra.Command{
	Use:   "goals <user-id>",
	Short: "Evaluate a user's goals",
	Long: `Evaluate a user's goals against their logs. Stored completion flags are
left alone unless --sync is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUserID(args[0])
		if err != nil {
			return err
		}
		return withApp(cmd.Context(), func(a *app) error {
			evaluate := a.goals.EvaluateGoals
			if syncGoals {
				evaluate = a.goals.ListGoals
			}
			goals, err := evaluate(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(cmd.OutOrStdout(), goals)
			}
			return writeGoals(cmd.OutOrStdout(), goals)
		})
	},
}

var nudges = map[string]services.Nudge{
	"meal":     services.MealNudge,
	"workout":  services.WorkoutNudge,
	"mood":     services.MoodNudge,
	"goals":    services.GoalReviewNudge,
	"inactive": services.InactiveNudge,
}

func nudgeNames() []string {
	names := make([]string, 0, len(nudges))
	for name := range nudges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var nudgeCmd = &cobra.Command{
	Use:       "nudge <kind>",
	Short:     "Run one scheduled nudge for all users now",
	ValidArgs: nudgeNames(),
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, ok := nudges[args[0]]
		if !ok {
			return fmt.Errorf("unknown nudge %q, want one of %s", args[0], strings.Join(nudgeNames(), ", "))
		}
		return withApp(cmd.Context(), func(a *app) error {
			if err := a.notifications.RunNudge(cmd.Context(), n); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ran %s nudge\n", n.Type)
			return nil
		})
	},
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete expired notifications",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			if err := a.notifications.DeleteExpiredNotifications(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Expired notifications deleted")
			return nil
		})
	},
}

func init() {
	goalsCmd.Flags().BoolVar(&syncGoals, "sync", false, "Write recomputed completion flags back")
}
