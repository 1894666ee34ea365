package service

import (
	"context"
	"sync"

	"github.com/diya-el-fadhil/Habit-Hero/internal/eventbus"
	"github.com/diya-el-fadhil/Habit-Hero/internal/schema"
)

type fakeHabitRepo struct {
	habits map[int64]schema.Habit
	nextID int64
	err    error
}

func newFakeHabitRepo(habits ...schema.Habit) *fakeHabitRepo {
	f := &fakeHabitRepo{habits: make(map[int64]schema.Habit)}
	for _, h := range habits {
		f.habits[h.ID] = h
		if h.ID > f.nextID {
			f.nextID = h.ID
		}
	}
	return f
}

func (f *fakeHabitRepo) Create(ctx context.Context, habit *schema.Habit) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	habit.ID = f.nextID
	f.habits[habit.ID] = *habit
	return nil
}

func (f *fakeHabitRepo) GetAll(ctx context.Context) ([]schema.Habit, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []schema.Habit
	for id := int64(1); id <= f.nextID; id++ {
		if h, ok := f.habits[id]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHabitRepo) GetByID(ctx context.Context, id int64) (*schema.Habit, error) {
	if f.err != nil {
		return nil, f.err
	}
	h, ok := f.habits[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (f *fakeHabitRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.habits[id]; !ok {
		return false, nil
	}
	delete(f.habits, id)
	return true, nil
}

type fakeCheckInRepo struct {
	rows []schema.CheckIn
}

func (f *fakeCheckInRepo) Create(ctx context.Context, checkin *schema.CheckIn) error {
	checkin.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *checkin)
	return nil
}

func (f *fakeCheckInRepo) GetByHabit(ctx context.Context, habitID int64) ([]schema.CheckIn, error) {
	var out []schema.CheckIn
	for _, c := range f.rows {
		if c.HabitID == habitID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCheckInRepo) GetCompletedByHabit(ctx context.Context, habitID int64) ([]schema.CheckIn, error) {
	var out []schema.CheckIn
	for _, c := range f.rows {
		if c.HabitID == habitID && c.Completed {
			out = append(out, c)
		}
	}
	return out, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(evt eventbus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
