package schema

import "time"

// CheckIn 某个习惯在某一天的打卡记录
// habit_id 不是外键：允许孤儿打卡；同一天可以存在多条记录
type CheckIn struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	HabitID   int64     `gorm:"index" json:"habit_id"`
	Date      string    `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	Completed bool      `gorm:"default:true" json:"completed"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (CheckIn) TableName() string {
	return "checkins"
}
