package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diya-el-fadhil/Habit-Hero/internal/bootstrap"
	"github.com/diya-el-fadhil/Habit-Hero/internal/httpapi"
	"github.com/diya-el-fadhil/Habit-Hero/internal/pkg/buildinfo"
	"github.com/diya-el-fadhil/Habit-Hero/internal/pkg/config"
	"github.com/spf13/cobra"
)

func main() {
	var cfgPath, addr string

	rootCmd := &cobra.Command{
		Use:          "habit-server",
		Short:        "Habit Hero HTTP API",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfgPath, addr)
		},
	}
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "配置文件路径")
	rootCmd.Flags().StringVar(&addr, "addr", "", "监听地址，覆盖 server.listen_addr")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("habit-server 退出", "error", err)
		os.Exit(1)
	}
}

func run(parent context.Context, cfgPath, addr string) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	core, err := bootstrap.NewCore(cfgPath)
	if err != nil {
		return err
	}
	defer core.Close()

	slog.Info("Habit Hero 启动中...", "name", core.Cfg.App.Name, "version", buildinfo.Version, "commit", buildinfo.Commit)

	if cfgPath != "" {
		if err := config.Watch(ctx, cfgPath, func(c *config.Config) {
			config.SetLogLevel(c.App.LogLevel)
		}); err != nil {
			slog.Warn("配置热更新不可用", "error", err)
		}
	}

	srv, err := httpapi.Start(ctx, core, httpapi.Options{ListenAddr: addr})
	if err != nil {
		return err
	}

	<-ctx.Done()
	slog.Info("收到退出信号，正在关闭...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
