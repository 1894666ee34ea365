package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/diya-el-fadhil/Habit-Hero/internal/service"
)

// MsgHabitNotFound 习惯不存在时固定返回的 detail
const MsgHabitNotFound = "Habit not found"

// APIError 错误响应体
type APIError struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
	Hint   string `json:"hint,omitempty"`
}

// WriteJSON 将数据序列化为 JSON 并写入响应
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteAPIError(w http.ResponseWriter, status int, e APIError) {
	if strings.TrimSpace(e.Detail) == "" {
		e.Detail = http.StatusText(status)
	}
	WriteJSON(w, status, e)
}

// WriteError 写入错误响应
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteAPIError(w, status, APIError{Detail: msg})
}

// writeServiceError 将 service 层错误映射为 HTTP 状态码
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrHabitNotFound):
		WriteError(w, http.StatusNotFound, MsgHabitNotFound)
	case errors.Is(err, service.ErrInvalidInput):
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("请求处理失败", "method", r.Method, "path", r.URL.Path, "request_id", RequestIDFrom(r.Context()), "error", err)
		WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// readJSON 从请求体读取并解析 JSON
func readJSON(r *http.Request, out any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("请求体不是合法的 JSON: %w", err)
	}
	return nil
}

// parseInt64Param 解析路径参数为 int64
func parseInt64Param(value string) (int64, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, fmt.Errorf("参数为空")
	}
	return strconv.ParseInt(v, 10, 64)
}

// pathID 读取并解析路径参数，失败时直接写 422
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := parseInt64Param(r.PathValue(name))
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, name+" 必须为整数")
		return 0, false
	}
	return id, true
}
