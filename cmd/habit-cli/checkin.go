package main

import (
	"fmt"

	"github.com/diya-el-fadhil/Habit-Hero/internal/service"
	"github.com/spf13/cobra"
)

func checkinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "打卡",
	}
	cmd.AddCommand(checkinAddCmd(), checkinListCmd())
	return cmd
}

func checkinAddCmd() *cobra.Command {
	var date, notes string
	var missed bool

	cmd := &cobra.Command{
		Use:   "add HABIT_ID",
		Short: "记录一次打卡",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			habitID, err := parseID(args[0])
			if err != nil {
				return err
			}
			if date == "" {
				date = today()
			}
			completed := !missed
			in := service.CreateCheckInInput{HabitID: habitID, Date: date, Completed: &completed}
			if notes != "" {
				in.Notes = &notes
			}
			c, err := core.Services.CheckIns.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			mark := green("✓")
			if !c.Completed {
				mark = red("✗")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s habit #%d on %s\n", mark, c.HabitID, c.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "日期 YYYY-MM-DD，默认今天")
	cmd.Flags().StringVar(&notes, "notes", "", "备注")
	cmd.Flags().BoolVar(&missed, "missed", false, "记录为未完成")
	return cmd
}

func checkinListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list HABIT_ID",
		Short: "列出某习惯的打卡",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			habitID, err := parseID(args[0])
			if err != nil {
				return err
			}
			checkins, err := core.Services.CheckIns.ListByHabit(cmd.Context(), habitID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(checkins) == 0 {
				fmt.Fprintln(out, faint("no check-ins"))
				return nil
			}
			for _, c := range checkins {
				mark := green("✓")
				if !c.Completed {
					mark = red("✗")
				}
				line := fmt.Sprintf("%s %s", mark, c.Date)
				if c.Notes != nil && *c.Notes != "" {
					line += "  " + faint(*c.Notes)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
