package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/diya-el-fadhil/Habit-Hero/internal/repository"
	"github.com/diya-el-fadhil/Habit-Hero/internal/schema"
	"github.com/diya-el-fadhil/Habit-Hero/internal/service"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

func habitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "管理习惯",
	}
	cmd.AddCommand(habitAddCmd(), habitListCmd(), habitShowCmd(), habitDeleteCmd())
	return cmd
}

func habitAddCmd() *cobra.Command {
	var in service.CreateHabitInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "新建习惯",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.StartDate == "" {
				in.StartDate = today()
			}
			h, err := core.Services.Habits.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s created habit #%d %s\n", green("✓"), h.ID, bold(h.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "习惯名称")
	cmd.Flags().StringVar(&in.Category, "category", "", "分类，例如 health / work / learning")
	cmd.Flags().StringVar(&in.Frequency, "frequency", schema.FrequencyDaily, "daily 或 weekly")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "开始日期 YYYY-MM-DD，默认今天")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func habitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "列出全部习惯",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := core.Services.Habits.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(habits) == 0 {
				fmt.Fprintln(out, faint("no habits yet"))
				return nil
			}
			for i := range habits {
				printHabit(out, &habits[i])
			}
			return nil
		},
	}
}

func habitShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "查看习惯",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			h, err := core.Services.Habits.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			printHabit(cmd.OutOrStdout(), h)
			return nil
		},
	}
}

func habitDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "删除习惯（保留打卡记录）",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := core.Services.Habits.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s deleted habit #%d\n", red("✗"), id)
			return nil
		},
	}
}

func printHabit(w io.Writer, h *schema.Habit) {
	fmt.Fprintf(w, "#%-4d %-24s %-10s %-7s %s\n", h.ID, bold(h.Name), h.Category, h.Frequency, faint("since "+h.StartDate))
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("无效的 ID: %q", s)
	}
	return id, nil
}

// today 按 app.timezone 取当天日期，与统计口径一致
func today() string {
	return repository.FormatDate(core.Services.Analytics.Today())
}
