package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/diya-el-fadhil/Habit-Hero/internal/eventbus"
	"github.com/diya-el-fadhil/Habit-Hero/internal/repository"
	"github.com/diya-el-fadhil/Habit-Hero/internal/schema"
)

const (
	EventHabitCreated   = "habit.created"
	EventHabitDeleted   = "habit.deleted"
	EventCheckInCreated = "checkin.created"
)

// CreateHabitInput 创建习惯的参数
type CreateHabitInput struct {
	Name      string
	Category  string
	Frequency string
	StartDate string
}

// HabitService 习惯管理服务
type HabitService struct {
	habitRepo HabitRepository
	events    EventPublisher
}

// NewHabitService 创建习惯服务；events 可为空
func NewHabitService(habitRepo HabitRepository, events EventPublisher) *HabitService {
	return &HabitService{habitRepo: habitRepo, events: events}
}

// Create 校验并创建习惯
func (s *HabitService) Create(ctx context.Context, in CreateHabitInput) (*schema.Habit, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name 不能为空", ErrInvalidInput)
	}
	if !schema.IsValidFrequency(in.Frequency) {
		return nil, fmt.Errorf("%w: frequency 必须为 daily 或 weekly", ErrInvalidInput)
	}
	if _, err := repository.ParseDate(in.StartDate); err != nil {
		return nil, fmt.Errorf("%w: start_date 必须为 YYYY-MM-DD", ErrInvalidInput)
	}

	habit := &schema.Habit{
		Name:      name,
		Category:  strings.TrimSpace(in.Category),
		Frequency: in.Frequency,
		StartDate: in.StartDate,
	}
	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, err
	}

	slog.Debug("习惯已创建", "habit_id", habit.ID, "name", habit.Name)
	s.publish(EventHabitCreated, map[string]any{"habit_id": habit.ID})
	return habit, nil
}

// List 返回全部习惯
func (s *HabitService) List(ctx context.Context) ([]schema.Habit, error) {
	habits, err := s.habitRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if habits == nil {
		habits = []schema.Habit{}
	}
	return habits, nil
}

// Get 按 ID 获取习惯
func (s *HabitService) Get(ctx context.Context, id int64) (*schema.Habit, error) {
	habit, err := s.habitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}
	return habit, nil
}

// Delete 删除习惯；其打卡记录保留
func (s *HabitService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.habitRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrHabitNotFound
	}
	slog.Debug("习惯已删除", "habit_id", id)
	s.publish(EventHabitDeleted, map[string]any{"habit_id": id})
	return nil
}

func (s *HabitService) publish(typ string, data map[string]any) {
	if s.events == nil {
		return
	}
	s.events.Publish(eventbus.Event{Type: typ, Data: data})
}
