package repository

import (
	"context"
	"fmt"

	"github.com/diya-el-fadhil/Habit-Hero/internal/schema"
	"gorm.io/gorm"
)

// CheckInRepository 打卡仓储
type CheckInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository 创建打卡仓储
func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

// Create 创建打卡记录
// completed 默认值为 true，GORM 会跳过零值字段，因此 false 需要显式写入
func (r *CheckInRepository) Create(ctx context.Context, checkin *schema.CheckIn) error {
	if checkin == nil {
		return fmt.Errorf("checkin is nil")
	}
	completed := checkin.Completed
	if err := r.db.WithContext(ctx).Create(checkin).Error; err != nil {
		return fmt.Errorf("创建打卡失败: %w", err)
	}
	if !completed {
		if err := r.db.WithContext(ctx).
			Model(&schema.CheckIn{}).
			Where("id = ?", checkin.ID).
			Update("completed", false).Error; err != nil {
			return fmt.Errorf("写入打卡状态失败: %w", err)
		}
		checkin.Completed = false
	}
	return nil
}

// GetByHabit 查询某习惯的全部打卡（按 ID 升序）
func (r *CheckInRepository) GetByHabit(ctx context.Context, habitID int64) ([]schema.CheckIn, error) {
	var checkins []schema.CheckIn
	if err := r.db.WithContext(ctx).
		Where("habit_id = ?", habitID).
		Order("id ASC").
		Find(&checkins).Error; err != nil {
		return nil, fmt.Errorf("查询打卡失败: %w", err)
	}
	return checkins, nil
}

// GetCompletedByHabit 查询某习惯已完成的打卡
func (r *CheckInRepository) GetCompletedByHabit(ctx context.Context, habitID int64) ([]schema.CheckIn, error) {
	var checkins []schema.CheckIn
	if err := r.db.WithContext(ctx).
		Where("habit_id = ? AND completed = ?", habitID, true).
		Order("id ASC").
		Find(&checkins).Error; err != nil {
		return nil, fmt.Errorf("查询已完成打卡失败: %w", err)
	}
	return checkins, nil
}

// Count 统计打卡数量
func (r *CheckInRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&schema.CheckIn{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("统计打卡失败: %w", err)
	}
	return count, nil
}
