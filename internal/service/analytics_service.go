package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/diya-el-fadhil/Habit-Hero/internal/repository"
)

// Analytics 单个习惯的统计结果
type Analytics struct {
	Streak        int     `json:"streak"`
	SuccessRate   float64 `json:"success_rate"`
	TotalCheckins int     `json:"total_checkins"`
}

// AnalyticsService 习惯统计服务
type AnalyticsService struct {
	habitRepo   HabitRepository
	checkinRepo CheckInRepository
	now         Clock
	loc         *time.Location
}

// NewAnalyticsService 创建统计服务；now 为空时使用 time.Now，loc 为空时使用本地时区
func NewAnalyticsService(habitRepo HabitRepository, checkinRepo CheckInRepository, now Clock, loc *time.Location) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &AnalyticsService{
		habitRepo:   habitRepo,
		checkinRepo: checkinRepo,
		now:         now,
		loc:         loc,
	}
}

// Today 当前日历日期（UTC 零点表示）
func (s *AnalyticsService) Today() time.Time {
	return repository.CivilDate(s.now().In(s.loc))
}

// HabitAnalytics 计算习惯的连续天数、成功率与完成次数
func (s *AnalyticsService) HabitAnalytics(ctx context.Context, habitID int64) (*Analytics, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}

	startDate, err := repository.ParseDate(habit.StartDate)
	if err != nil {
		return nil, fmt.Errorf("习惯 %d 的开始日期无效: %w", habit.ID, err)
	}

	checkins, err := s.checkinRepo.GetCompletedByHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(checkins))
	for _, c := range checkins {
		d, err := repository.ParseDate(c.Date)
		if err != nil {
			return nil, fmt.Errorf("打卡 %d 的日期无效: %w", c.ID, err)
		}
		dates = append(dates, d)
	}

	result := ComputeAnalytics(dates, startDate, s.Today())
	return &result, nil
}

// ComputeAnalytics 根据已完成打卡的日期计算统计，纯函数
//
// 日期不去重：同一天的两条记录相邻时差为 0，会像断档一样终止连续天数的计算。
// success_rate 以习惯开始日期到 today（含两端）的天数为分母，天数 <= 0 时为 0。
func ComputeAnalytics(completedDates []time.Time, startDate, today time.Time) Analytics {
	if len(completedDates) == 0 {
		return Analytics{}
	}

	days := make([]int64, len(completedDates))
	for i, d := range completedDates {
		days[i] = dayNumber(d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })

	streak := 1
	for i := 0; i < len(days)-1; i++ {
		if days[i]-days[i+1] != 1 {
			break
		}
		streak++
	}

	total := len(completedDates)
	daysSinceStart := dayNumber(today) - dayNumber(startDate) + 1

	var rate float64
	if daysSinceStart > 0 {
		rate = roundTo2(float64(total) / float64(daysSinceStart) * 100)
	}

	return Analytics{
		Streak:        streak,
		SuccessRate:   rate,
		TotalCheckins: total,
	}
}

// dayNumber 日历日期自 1970-01-01 起的天数
func dayNumber(t time.Time) int64 {
	d := repository.CivilDate(t)
	return d.Unix() / 86400
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
