package handler

import (
	"net/http"

	"github.com/diya-el-fadhil/Habit-Hero/internal/dto"
	"github.com/diya-el-fadhil/Habit-Hero/internal/schema"
	"github.com/diya-el-fadhil/Habit-Hero/internal/service"
)

func toHabitDTO(h *schema.Habit) dto.HabitDTO {
	return dto.HabitDTO{
		ID:        h.ID,
		Name:      h.Name,
		Category:  h.Category,
		Frequency: h.Frequency,
		StartDate: h.StartDate,
	}
}

func (a *API) HandleCreateHabit(w http.ResponseWriter, r *http.Request) {
	if !a.requireWritableDB(w) {
		return
	}
	var req dto.HabitCreateRequest
	if err := readJSON(r, &req); err != nil {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	habit, err := a.core.Services.Habits.Create(r.Context(), service.CreateHabitInput{
		Name:      req.Name,
		Category:  req.Category,
		Frequency: req.Frequency,
		StartDate: req.StartDate,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, toHabitDTO(habit))
}

func (a *API) HandleListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := a.core.Services.Habits.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	result := make([]dto.HabitDTO, 0, len(habits))
	for i := range habits {
		result = append(result, toHabitDTO(&habits[i]))
	}
	WriteJSON(w, http.StatusOK, result)
}

func (a *API) HandleGetHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	habit, err := a.core.Services.Habits.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, toHabitDTO(habit))
}

func (a *API) HandleDeleteHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if !a.requireWritableDB(w) {
		return
	}
	if err := a.core.Services.Habits.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, dto.MessageDTO{Message: "Habit deleted"})
}
