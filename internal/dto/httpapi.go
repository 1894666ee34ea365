package dto

// 注意：本包承载对外 HTTP 契约，与前端保持稳定。
// 持久化结构见 internal/schema；业务逻辑收敛在 internal/service。

type HabitCreateRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Frequency string `json:"frequency"`
	StartDate string `json:"start_date"`
}

type HabitDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Frequency string `json:"frequency"`
	StartDate string `json:"start_date"`
}

type CheckInCreateRequest struct {
	HabitID   int64   `json:"habit_id"`
	Date      string  `json:"date"`
	Completed *bool   `json:"completed"` // 缺省为 true
	Notes     *string `json:"notes"`
}

type CheckInDTO struct {
	ID        int64   `json:"id"`
	HabitID   int64   `json:"habit_id"`
	Date      string  `json:"date"`
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes"`
}

type AnalyticsDTO struct {
	Streak        int     `json:"streak"`
	SuccessRate   float64 `json:"success_rate"`
	TotalCheckins int     `json:"total_checkins"`
}

type MessageDTO struct {
	Message string `json:"message"`
}

type HealthDTO struct {
	OK             bool   `json:"ok"`
	Name           string `json:"name"`
	Version        string `json:"version"`
	StartedAt      string `json:"started_at"`
	SchemaVersion  int    `json:"schema_version"`
	SafeMode       bool   `json:"safe_mode"`
	MigrationError string `json:"migration_error,omitempty"`
	Habits         int64  `json:"habits"`
	CheckIns       int64  `json:"checkins"`
}
