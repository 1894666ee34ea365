package handler

import (
	"net/http"

	"github.com/diya-el-fadhil/Habit-Hero/internal/dto"
)

func (a *API) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	habitID, ok := pathID(w, r, "habit_id")
	if !ok {
		return
	}
	stats, err := a.core.Services.Analytics.HabitAnalytics(r.Context(), habitID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, dto.AnalyticsDTO{
		Streak:        stats.Streak,
		SuccessRate:   stats.SuccessRate,
		TotalCheckins: stats.TotalCheckins,
	})
}
