package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func analyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics HABIT_ID",
		Short: "查看连续天数与成功率",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			habitID, err := parseID(args[0])
			if err != nil {
				return err
			}
			stats, err := core.Services.Analytics.HabitAnalytics(cmd.Context(), habitID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "streak         %s\n", bold(fmt.Sprintf("%d", stats.Streak)))
			fmt.Fprintf(out, "success rate   %s\n", green(fmt.Sprintf("%.2f%%", stats.SuccessRate)))
			fmt.Fprintf(out, "total check-ins %d\n", stats.TotalCheckins)
			return nil
		},
	}
}
