package repository

import (
	"context"
	"testing"

	"github.com/diya-el-fadhil/Habit-Hero/internal/schema"
	"github.com/diya-el-fadhil/Habit-Hero/internal/testutil"
)

func TestCheckInRepositoryCompletedFilter(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewCheckInRepository(db)
	ctx := context.Background()

	note := "felt good"
	rows := []*schema.CheckIn{
		{HabitID: 1, Date: "2025-05-01", Completed: true, Notes: &note},
		{HabitID: 1, Date: "2025-05-02", Completed: false},
		{HabitID: 1, Date: "2025-05-02", Completed: true},
		{HabitID: 2, Date: "2025-05-02", Completed: true},
	}
	for _, c := range rows {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	all, err := repo.GetByHabit(ctx, 1)
	if err != nil {
		t.Fatalf("GetByHabit error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all)=%d, want 3", len(all))
	}
	if all[0].Notes == nil || *all[0].Notes != "felt good" {
		t.Fatalf("notes not persisted: %+v", all[0])
	}
	if all[1].Completed {
		t.Fatalf("completed=false was not persisted: %+v", all[1])
	}

	done, err := repo.GetCompletedByHabit(ctx, 1)
	if err != nil {
		t.Fatalf("GetCompletedByHabit error: %v", err)
	}
	if len(done) != 2 {
		t.Fatalf("len(done)=%d, want 2", len(done))
	}
}

func TestCheckInRepositoryAllowsOrphans(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewCheckInRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &schema.CheckIn{HabitID: 999, Date: "2025-05-01", Completed: true}); err != nil {
		t.Fatalf("Create orphan error: %v", err)
	}
	got, err := repo.GetByHabit(ctx, 999)
	if err != nil {
		t.Fatalf("GetByHabit error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len=%d, want 1", len(got))
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-02-28")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if FormatDate(d.AddDate(0, 0, 1)) != "2025-03-01" {
		t.Fatalf("unexpected next day: %s", FormatDate(d.AddDate(0, 0, 1)))
	}
	if _, err := ParseDate("2025-13-01"); err == nil {
		t.Fatalf("expected error for invalid month")
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatalf("expected error for garbage")
	}
}
