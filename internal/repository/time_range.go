package repository

import (
	"fmt"
	"time"

	"github.com/diya-el-fadhil/Habit-Hero/internal/schema"
)

// ParseDate 将 YYYY-MM-DD 解析为 UTC 零点，便于按整天做差
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(schema.DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("解析日期失败: %w", err)
	}
	return t, nil
}

// CivilDate 取 t 在其所在时区的日历日期，返回对应的 UTC 零点
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate 将时间格式化为 YYYY-MM-DD（按 t 自身时区）
func FormatDate(t time.Time) string {
	return t.Format(schema.DateLayout)
}
