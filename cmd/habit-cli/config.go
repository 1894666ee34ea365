package main

import (
	"fmt"
	"os"

	"github.com/diya-el-fadhil/Habit-Hero/internal/pkg/buildinfo"
	"github.com/diya-el-fadhil/Habit-Hero/internal/pkg/config"
	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "配置文件",
	}
	cmd.AddCommand(configInitCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "写入默认配置",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s 已存在，使用 --force 覆盖", path)
			}
			if err := config.WriteFile(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s wrote %s\n", green("✓"), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "输出路径，默认 config/config.yaml")
	cmd.Flags().BoolVar(&force, "force", false, "覆盖已有文件")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "打印版本",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "habit %s (%s)\n", buildinfo.Version, buildinfo.Commit)
		},
	}
}
