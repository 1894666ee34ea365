package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diya-el-fadhil/Habit-Hero/internal/eventbus"
	"github.com/diya-el-fadhil/Habit-Hero/internal/repository"
	"github.com/diya-el-fadhil/Habit-Hero/internal/schema"
)

// CreateCheckInInput 创建打卡的参数；Completed 为空时视为 true
type CreateCheckInInput struct {
	HabitID   int64
	Date      string
	Completed *bool
	Notes     *string
}

// CheckInService 打卡服务
// 不校验 habit_id 是否存在，孤儿打卡是允许的
type CheckInService struct {
	checkinRepo CheckInRepository
	events      EventPublisher
}

// NewCheckInService 创建打卡服务
func NewCheckInService(checkinRepo CheckInRepository, events EventPublisher) *CheckInService {
	return &CheckInService{checkinRepo: checkinRepo, events: events}
}

// Create 校验并写入打卡
func (s *CheckInService) Create(ctx context.Context, in CreateCheckInInput) (*schema.CheckIn, error) {
	if in.HabitID <= 0 {
		return nil, fmt.Errorf("%w: habit_id 必须为正整数", ErrInvalidInput)
	}
	if _, err := repository.ParseDate(in.Date); err != nil {
		return nil, fmt.Errorf("%w: date 必须为 YYYY-MM-DD", ErrInvalidInput)
	}

	completed := true
	if in.Completed != nil {
		completed = *in.Completed
	}

	checkin := &schema.CheckIn{
		HabitID:   in.HabitID,
		Date:      in.Date,
		Completed: completed,
		Notes:     in.Notes,
	}
	if err := s.checkinRepo.Create(ctx, checkin); err != nil {
		return nil, err
	}

	slog.Debug("打卡已记录", "checkin_id", checkin.ID, "habit_id", checkin.HabitID, "date", checkin.Date)
	if s.events != nil {
		s.events.Publish(eventbus.Event{
			Type: EventCheckInCreated,
			Data: map[string]any{
				"checkin_id": checkin.ID,
				"habit_id":   checkin.HabitID,
				"date":       checkin.Date,
				"completed":  checkin.Completed,
			},
		})
	}
	return checkin, nil
}

// ListByHabit 返回某习惯的全部打卡，无记录时返回空切片
func (s *CheckInService) ListByHabit(ctx context.Context, habitID int64) ([]schema.CheckIn, error) {
	checkins, err := s.checkinRepo.GetByHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if checkins == nil {
		checkins = []schema.CheckIn{}
	}
	return checkins, nil
}
