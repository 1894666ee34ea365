package handler

import (
	"net/http"

	"github.com/diya-el-fadhil/Habit-Hero/internal/dto"
	"github.com/diya-el-fadhil/Habit-Hero/internal/schema"
	"github.com/diya-el-fadhil/Habit-Hero/internal/service"
)

func toCheckInDTO(c *schema.CheckIn) dto.CheckInDTO {
	return dto.CheckInDTO{
		ID:        c.ID,
		HabitID:   c.HabitID,
		Date:      c.Date,
		Completed: c.Completed,
		Notes:     c.Notes,
	}
}

func (a *API) HandleCreateCheckIn(w http.ResponseWriter, r *http.Request) {
	if !a.requireWritableDB(w) {
		return
	}
	var req dto.CheckInCreateRequest
	if err := readJSON(r, &req); err != nil {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	checkin, err := a.core.Services.CheckIns.Create(r.Context(), service.CreateCheckInInput{
		HabitID:   req.HabitID,
		Date:      req.Date,
		Completed: req.Completed,
		Notes:     req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, toCheckInDTO(checkin))
}

// HandleListCheckIns 习惯不存在时返回空列表
func (a *API) HandleListCheckIns(w http.ResponseWriter, r *http.Request) {
	habitID, ok := pathID(w, r, "habit_id")
	if !ok {
		return
	}
	checkins, err := a.core.Services.CheckIns.ListByHabit(r.Context(), habitID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	result := make([]dto.CheckInDTO, 0, len(checkins))
	for i := range checkins {
		result = append(result, toCheckInDTO(&checkins[i]))
	}
	WriteJSON(w, http.StatusOK, result)
}
