package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diya-el-fadhil/Habit-Hero/internal/httpapi"
	"github.com/diya-el-fadhil/Habit-Hero/internal/pkg/config"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfgFile != "" {
				_ = watchLogLevel(ctx, cfgFile)
			}

			srv, err := httpapi.Start(ctx, core, httpapi.Options{ListenAddr: addr})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", srv.BaseURL())

			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "监听地址，覆盖 server.listen_addr")
	return cmd
}

// watchLogLevel 配置文件变化时重新应用日志级别；监听失败只记录警告，不影响启动
func watchLogLevel(ctx context.Context, path string) error {
	err := config.Watch(ctx, path, func(c *config.Config) {
		config.SetLogLevel(c.App.LogLevel)
	})
	if err != nil {
		slog.Warn("配置热更新不可用", "path", path, "error", err)
	}
	return err
}
