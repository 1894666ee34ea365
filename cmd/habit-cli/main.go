package main

import (
	"os"

	"github.com/diya-el-fadhil/Habit-Hero/internal/bootstrap"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	core    *bootstrap.Core
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// skipCore 不需要打开数据库的命令
var skipCore = map[string]bool{
	"version": true,
	"init":    true,
	"help":    true,
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "habit",
		Short:         "Habit Hero - 习惯打卡与统计",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipCore[cmd.Name()] {
				return nil
			}
			// 上一次命令失败时 PostRun 不会执行
			if core != nil {
				_ = core.Close()
			}
			var err error
			core, err = bootstrap.NewCore(cfgFile)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if core != nil {
				err := core.Close()
				core = nil
				return err
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(habitCmd())
	rootCmd.AddCommand(checkinCmd())
	rootCmd.AddCommand(analyticsCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}
