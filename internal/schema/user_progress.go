package schema

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// UserProgress 游戏化进度（仅保留表结构，当前没有任何逻辑读写它）
type UserProgress struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TotalXP       int       `gorm:"column:total_xp;default:0" json:"total_xp"`
	Level         int       `gorm:"default:1" json:"level"`
	TotalCheckins int       `gorm:"default:0" json:"total_checkins"`
	LongestStreak int       `gorm:"default:0" json:"longest_streak"`
	Badges        JSONArray `gorm:"type:text" json:"badges"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (UserProgress) TableName() string {
	return "user_progress"
}

// JSONArray 以 JSON 文本形式存储的字符串数组
type JSONArray []string

// Value 实现 driver.Valuer 接口
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return "[]", nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner 接口
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSONArray, 0)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*j = make(JSONArray, 0)
		return nil
	}

	return json.Unmarshal(bytes, j)
}
