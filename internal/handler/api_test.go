package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diya-el-fadhil/Habit-Hero/internal/bootstrap"
	"github.com/diya-el-fadhil/Habit-Hero/internal/dto"
	"github.com/diya-el-fadhil/Habit-Hero/internal/pkg/config"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestCore(t *testing.T) *bootstrap.Core {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.DBPath = ":memory:"
	cfg.App.Timezone = "UTC"

	core, err := bootstrap.NewCoreWithConfig(cfg, bootstrap.Options{
		Clock:      func() time.Time { return testNow },
		SkipLogger: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = core.Close() })
	return core
}

func newTestHandler(t *testing.T) (http.Handler, *bootstrap.Core) {
	t.Helper()
	core := newTestCore(t)
	mux := http.NewServeMux()
	NewAPI(core).RegisterRoutes(mux)
	return Chain(mux, Recover, RequestID, CORS(core.Cfg.Server.CORSOrigins)), core
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body=%s", rec.Body.String())
	return out
}

func createHabit(t *testing.T, h http.Handler, name, start string) dto.HabitDTO {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/habits/", map[string]any{
		"name":       name,
		"category":   "health",
		"frequency":  "daily",
		"start_date": start,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[dto.HabitDTO](t, rec)
}

func checkIn(t *testing.T, h http.Handler, habitID int64, date string, completed bool) {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/checkins/", map[string]any{
		"habit_id":  habitID,
		"date":      date,
		"completed": completed,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRootWelcome(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Welcome to Habit Hero API", decode[dto.MessageDTO](t, rec).Message)
}

func TestHabitCRUD(t *testing.T) {
	h, _ := newTestHandler(t)

	created := createHabit(t, h, "Drink water", "2025-06-01")
	require.NotZero(t, created.ID)
	require.Equal(t, "2025-06-01", created.StartDate)

	rec := doJSON(t, h, http.MethodGet, "/habits/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]dto.HabitDTO](t, rec)
	require.Len(t, list, 1)

	rec = doJSON(t, h, http.MethodGet, "/habits", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/habits/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Drink water", decode[dto.HabitDTO](t, rec).Name)

	rec = doJSON(t, h, http.MethodDelete, "/habits/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Habit deleted", decode[dto.MessageDTO](t, rec).Message)

	rec = doJSON(t, h, http.MethodGet, "/habits/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Habit not found", decode[APIError](t, rec).Detail)

	rec = doJSON(t, h, http.MethodDelete, "/habits/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListHabitsEmptyIsArray(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/habits/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateHabitValidation(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/habits/", map[string]any{
		"name": "Run", "category": "health", "frequency": "hourly", "start_date": "2025-06-01",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/habits/", map[string]any{
		"name": "Run", "category": "health", "frequency": "daily", "start_date": "June 1st",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/habits/", map[string]any{"unexpected": true})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestInvalidPathParam(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/analytics/abc", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCheckInsListAndDefaults(t *testing.T) {
	h, _ := newTestHandler(t)
	habit := createHabit(t, h, "Stretch", "2025-06-10")

	rec := doJSON(t, h, http.MethodPost, "/checkins/", map[string]any{
		"habit_id": habit.ID,
		"date":     "2025-06-14",
		"notes":    "morning",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	c := decode[dto.CheckInDTO](t, rec)
	require.True(t, c.Completed)
	require.NotNil(t, c.Notes)
	require.Equal(t, "morning", *c.Notes)

	checkIn(t, h, habit.ID, "2025-06-15", false)

	rec = doJSON(t, h, http.MethodGet, "/checkins/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]dto.CheckInDTO](t, rec)
	require.Len(t, list, 2)
	require.False(t, list[1].Completed)
	require.Nil(t, list[1].Notes)

	rec = doJSON(t, h, http.MethodGet, "/checkins/999", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestAnalyticsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/analytics/404", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"detail":"Habit not found"}`, rec.Body.String())
}

func TestAnalyticsNoCheckIns(t *testing.T) {
	h, _ := newTestHandler(t)
	habit := createHabit(t, h, "Journal", "2025-06-01")

	rec := doJSON(t, h, http.MethodGet, "/analytics/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, dto.AnalyticsDTO{}, decode[dto.AnalyticsDTO](t, rec))
	_ = habit
}

func TestAnalyticsStreakAndRate(t *testing.T) {
	h, _ := newTestHandler(t)
	habit := createHabit(t, h, "Walk", "2025-06-12")
	for _, d := range []string{"2025-06-15", "2025-06-14", "2025-06-13", "2025-06-12"} {
		checkIn(t, h, habit.ID, d, true)
	}
	checkIn(t, h, habit.ID, "2025-06-11", false)

	rec := doJSON(t, h, http.MethodGet, "/analytics/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, dto.AnalyticsDTO{Streak: 4, SuccessRate: 100, TotalCheckins: 4}, decode[dto.AnalyticsDTO](t, rec))
}

func TestAnalyticsGapAndRounding(t *testing.T) {
	h, _ := newTestHandler(t)
	habit := createHabit(t, h, "Read", "2025-06-13")
	checkIn(t, h, habit.ID, "2025-06-15", true)

	rec := doJSON(t, h, http.MethodGet, "/analytics/1", nil)
	require.Equal(t, dto.AnalyticsDTO{Streak: 1, SuccessRate: 33.33, TotalCheckins: 1}, decode[dto.AnalyticsDTO](t, rec))

	checkIn(t, h, habit.ID, "2025-06-13", true)
	rec = doJSON(t, h, http.MethodGet, "/analytics/1", nil)
	got := decode[dto.AnalyticsDTO](t, rec)
	require.Equal(t, 1, got.Streak)
	require.Equal(t, 2, got.TotalCheckins)
}

func TestAnalyticsFutureStart(t *testing.T) {
	h, _ := newTestHandler(t)
	habit := createHabit(t, h, "Swim", "2025-07-01")
	checkIn(t, h, habit.ID, "2025-06-15", true)

	rec := doJSON(t, h, http.MethodGet, "/analytics/1", nil)
	got := decode[dto.AnalyticsDTO](t, rec)
	require.Equal(t, float64(0), got.SuccessRate)
	require.Equal(t, 1, got.TotalCheckins)
}

func TestHealthReportsSchema(t *testing.T) {
	h, core := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[dto.HealthDTO](t, rec)
	require.True(t, health.OK)
	require.False(t, health.SafeMode)
	require.Equal(t, core.DB.SchemaVersion, health.SchemaVersion)
	require.Zero(t, health.Habits)
	require.Zero(t, health.CheckIns)
}

func TestHealthCountsRecords(t *testing.T) {
	h, _ := newTestHandler(t)
	habit := createHabit(t, h, "Run", "2025-06-01")
	checkIn(t, h, habit.ID, "2025-06-14", true)
	checkIn(t, h, habit.ID, "2025-06-15", false)
	checkIn(t, h, 99, "2025-06-15", true)

	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[dto.HealthDTO](t, rec)
	require.EqualValues(t, 1, health.Habits)
	require.EqualValues(t, 3, health.CheckIns)
}

func TestSafeModeRejectsWrites(t *testing.T) {
	h, core := newTestHandler(t)
	core.DB.SafeMode = true

	rec := doJSON(t, h, http.MethodPost, "/habits/", map[string]any{
		"name": "Run", "category": "health", "frequency": "daily", "start_date": "2025-06-01",
	})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "db_safe_mode", decode[APIError](t, rec).Code)

	rec = doJSON(t, h, http.MethodGet, "/habits/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
