package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/diya-el-fadhil/Habit-Hero/internal/bootstrap"
	"github.com/diya-el-fadhil/Habit-Hero/internal/dto"
)

// API HTTP 处理器
type API struct {
	core      *bootstrap.Core
	startTime time.Time
	// pingInterval SSE 心跳间隔
	pingInterval time.Duration
}

// NewAPI 创建 API 处理器
func NewAPI(core *bootstrap.Core) *API {
	return &API{
		core:         core,
		startTime:    time.Now(),
		pingInterval: 15 * time.Second,
	}
}

// RegisterRoutes 注册全部路由
func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", a.HandleRoot)
	mux.HandleFunc("GET /health", a.HandleHealth)
	mux.HandleFunc("GET /api/events", a.HandleSSE)

	for _, p := range []string{"/habits", "/habits/{$}"} {
		mux.HandleFunc("POST "+p, a.HandleCreateHabit)
		mux.HandleFunc("GET "+p, a.HandleListHabits)
	}
	mux.HandleFunc("GET /habits/{id}", a.HandleGetHabit)
	mux.HandleFunc("DELETE /habits/{id}", a.HandleDeleteHabit)

	for _, p := range []string{"/checkins", "/checkins/{$}"} {
		mux.HandleFunc("POST "+p, a.HandleCreateCheckIn)
	}
	mux.HandleFunc("GET /checkins/{habit_id}", a.HandleListCheckIns)

	mux.HandleFunc("GET /analytics/{habit_id}", a.HandleAnalytics)
}

// HandleRoot 欢迎信息
func (a *API) HandleRoot(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, dto.MessageDTO{Message: "Welcome to Habit Hero API"})
}

// HandleHealth 健康检查接口
func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if a == nil || a.core == nil || a.core.Cfg == nil {
		WriteError(w, http.StatusServiceUnavailable, "core 未初始化")
		return
	}
	out := dto.HealthDTO{
		OK:        true,
		Name:      a.core.Cfg.App.Name,
		Version:   a.core.Cfg.App.Version,
		StartedAt: a.startTime.Format(time.RFC3339),
	}
	if a.core.DB != nil {
		out.SchemaVersion = a.core.DB.SchemaVersion
		out.SafeMode = a.core.DB.SafeMode
		out.MigrationError = a.core.DB.MigrationError
	}
	if repo := a.core.Repos.Habit; repo != nil {
		n, err := repo.Count(r.Context())
		if err != nil {
			slog.Warn("统计习惯失败", "error", err)
		}
		out.Habits = n
	}
	if repo := a.core.Repos.CheckIn; repo != nil {
		n, err := repo.Count(r.Context())
		if err != nil {
			slog.Warn("统计打卡失败", "error", err)
		}
		out.CheckIns = n
	}
	WriteJSON(w, http.StatusOK, out)
}

// HandleSSE Server-Sent Events 接口，推送习惯与打卡的变更事件
func (a *API) HandleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, http.StatusInternalServerError, "stream not supported")
		return
	}
	if a == nil || a.core == nil || a.core.Hub == nil {
		WriteError(w, http.StatusServiceUnavailable, "hub 未初始化")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ctx := r.Context()
	sub := a.core.Hub.Subscribe(ctx, 32)

	_, _ = io.WriteString(w, "event: ready\n")
	_, _ = io.WriteString(w, "data: {}\n\n")
	flusher.Flush()

	ticker := time.NewTicker(a.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, "event: ping\n")
			_, _ = io.WriteString(w, "data: {}\n\n")
			flusher.Flush()
		case evt, ok := <-sub:
			if !ok {
				return
			}
			b, _ := json.Marshal(evt)
			_, _ = io.WriteString(w, "event: "+sanitizeSSEName(evt.Type)+"\n")
			_, _ = io.WriteString(w, "data: ")
			_, _ = w.Write(b)
			_, _ = io.WriteString(w, "\n\n")
			flusher.Flush()
		}
	}
}

// sanitizeSSEName 清理 SSE 事件名称
func sanitizeSSEName(name string) string {
	n := strings.TrimSpace(name)
	if n == "" {
		return "message"
	}
	n = strings.ReplaceAll(n, "\n", "")
	n = strings.ReplaceAll(n, "\r", "")
	return n
}

func (a *API) requireWritableDB(w http.ResponseWriter) bool {
	if a == nil || a.core == nil || a.core.DB == nil {
		WriteAPIError(w, http.StatusServiceUnavailable, APIError{
			Detail: "数据库未初始化",
			Code:   "db_not_ready",
		})
		return false
	}
	if a.core.DB.SafeMode {
		WriteAPIError(w, http.StatusServiceUnavailable, APIError{
			Detail: "数据库处于安全模式，已禁用写入操作",
			Code:   "db_safe_mode",
			Hint:   "查看 /health 中的 migration_error，修复后重启服务",
		})
		return false
	}
	return true
}
