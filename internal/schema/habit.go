package schema

import "time"

const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// DateLayout 习惯与打卡日期统一使用的格式
const DateLayout = "2006-01-02"

// Habit 用户定义的习惯
// start_date 创建后不可变，系统不提供更新接口
type Habit struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;index" json:"name"`
	Category  string    `gorm:"size:100" json:"category"`  // health, work, learning ...
	Frequency string    `gorm:"size:20" json:"frequency"`  // daily, weekly
	StartDate string    `gorm:"size:10" json:"start_date"` // YYYY-MM-DD
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (Habit) TableName() string {
	return "habits"
}

// IsValidFrequency 判断频率取值是否合法
func IsValidFrequency(f string) bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}
