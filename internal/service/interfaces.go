package service

import (
	"context"
	"time"

	"github.com/diya-el-fadhil/Habit-Hero/internal/eventbus"
	"github.com/diya-el-fadhil/Habit-Hero/internal/schema"
)

// 仓储/外部依赖的最小接口集合（ISP）

type HabitRepository interface {
	Create(ctx context.Context, habit *schema.Habit) error
	GetAll(ctx context.Context) ([]schema.Habit, error)
	GetByID(ctx context.Context, id int64) (*schema.Habit, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type CheckInRepository interface {
	Create(ctx context.Context, checkin *schema.CheckIn) error
	GetByHabit(ctx context.Context, habitID int64) ([]schema.CheckIn, error)
	GetCompletedByHabit(ctx context.Context, habitID int64) ([]schema.CheckIn, error)
}

type EventPublisher interface {
	Publish(evt eventbus.Event)
}

// Clock 返回当前时间；测试中注入固定值
type Clock func() time.Time
