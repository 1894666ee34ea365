package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/diya-el-fadhil/Habit-Hero/internal/schema"
	"gorm.io/gorm"
)

// HabitRepository 习惯仓储
type HabitRepository struct {
	db *gorm.DB
}

// NewHabitRepository 创建习惯仓储
func NewHabitRepository(db *gorm.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

// Create 创建习惯，写入后 habit.ID 被回填
func (r *HabitRepository) Create(ctx context.Context, habit *schema.Habit) error {
	if habit == nil {
		return fmt.Errorf("habit is nil")
	}
	if err := r.db.WithContext(ctx).Create(habit).Error; err != nil {
		return fmt.Errorf("创建习惯失败: %w", err)
	}
	return nil
}

// GetAll 按 ID 升序返回全部习惯
func (r *HabitRepository) GetAll(ctx context.Context) ([]schema.Habit, error) {
	var habits []schema.Habit
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&habits).Error; err != nil {
		return nil, fmt.Errorf("查询习惯失败: %w", err)
	}
	return habits, nil
}

// GetByID 按 ID 查询习惯，不存在返回 nil, nil
func (r *HabitRepository) GetByID(ctx context.Context, id int64) (*schema.Habit, error) {
	var habit schema.Habit
	if err := r.db.WithContext(ctx).First(&habit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询习惯失败: %w", err)
	}
	return &habit, nil
}

// Delete 删除习惯，返回是否确实删除了记录
// 打卡记录不级联删除
func (r *HabitRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&schema.Habit{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("删除习惯失败: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Count 统计习惯数量
func (r *HabitRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&schema.Habit{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("统计习惯失败: %w", err)
	}
	return count, nil
}
