package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/diya-el-fadhil/Habit-Hero/internal/bootstrap"
	"github.com/diya-el-fadhil/Habit-Hero/internal/handler"
)

// Server HTTP 服务
type Server struct {
	core    *bootstrap.Core
	ln      net.Listener
	srv     *http.Server
	baseURL string
}

// Options 启动参数
type Options struct {
	ListenAddr string // 为空使用配置中的 server.listen_addr
}

// NewHandler 构建带中间件的根 handler
func NewHandler(core *bootstrap.Core) http.Handler {
	api := handler.NewAPI(core)
	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	var origins []string
	if core != nil && core.Cfg != nil {
		origins = core.Cfg.Server.CORSOrigins
	}
	return handler.Chain(mux,
		handler.Recover,
		handler.RequestID,
		handler.AccessLog,
		handler.CORS(origins),
	)
}

// Start 监听端口并在后台提供服务，ctx 结束时自动关闭
func Start(ctx context.Context, core *bootstrap.Core, opts Options) (*Server, error) {
	if core == nil || core.Cfg == nil {
		return nil, fmt.Errorf("core 不能为空")
	}
	addr := strings.TrimSpace(opts.ListenAddr)
	if addr == "" {
		addr = core.Cfg.Server.ListenAddr
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("监听 %s 失败: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           NewHandler(core),
		ReadHeaderTimeout: core.Cfg.ReadHeaderTimeout(),
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s := &Server{
		core:    core,
		ln:      ln,
		srv:     srv,
		baseURL: "http://" + ln.Addr().String(),
	}

	go func() {
		<-ctx.Done()
		_ = s.Shutdown(context.Background())
	}()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server 异常退出", "error", err)
		}
	}()

	slog.Info("HTTP 服务已启动", "addr", ln.Addr().String())
	return s, nil
}

// BaseURL 实际监听地址
func (s *Server) BaseURL() string {
	if s == nil {
		return ""
	}
	return s.baseURL
}

// Shutdown 优雅关闭
func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil || s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
