package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
	"github.com/valeriaulyamaeva/personal-tracker/models"
)

func (h *Handler) Goals(c *gin.Context) {
	goals, err := database.GetAllGoals(c.Request.Context(), h.db)
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "goals.tmpl", goalsPage{
		ActivePage: "goals",
		Goals:      goals,
		Sections:   goalSections(models.GroupByCadence(goals)),
	})
}

// AddGoal derives status and completion time from the submitted progress.
func (h *Handler) AddGoal(c *gin.Context) {
	f, ok := h.postForm(c)
	if !ok {
		return
	}
	goal := models.Goal{
		Title:       f.String("title"),
		Description: f.OptionalString("description"),
		Type:        f.Valid("type", models.ValidCadence, "must be daily, weekly, monthly or yearly"),
		DueDate:     f.OptionalDate("due_date"),
		Priority:    f.OptionalString("priority"),
		Category:    f.OptionalString("category"),
	}
	progress := f.IntDefault("progress", 0)
	f.Range("progress", progress, 0, models.MaxGoalProgress)
	if err := f.Err(); err != nil {
		h.badRequest(c, err)
		return
	}

	goal.Progress = progress
	if err := database.CreateGoal(c.Request.Context(), h.db, &goal, h.now()); err != nil {
		h.storeFailure(c, err)
		return
	}
	redirect(c, "/goals")
}

func (h *Handler) UpdateGoalProgress(c *gin.Context) {
	f, ok := h.postForm(c)
	if !ok {
		return
	}
	id := f.ID("id")
	progress := f.Int("progress")
	f.Range("progress", progress, 0, models.MaxGoalProgress)
	if err := f.Err(); err != nil {
		h.badRequest(c, err)
		return
	}

	if id == 0 {
		h.noRow(c)
		redirect(c, "/goals")
		return
	}

	affected, err := database.UpdateGoalProgress(c.Request.Context(), h.db, id, progress, h.now())
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	if affected == 0 {
		h.noRow(c)
	}
	redirect(c, "/goals")
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	f, ok := h.postForm(c)
	if !ok {
		return
	}
	id := f.ID("id")
	if err := f.Err(); err != nil {
		h.badRequest(c, err)
		return
	}

	if id == 0 {
		h.noRow(c)
		redirect(c, "/goals")
		return
	}

	affected, err := database.DeleteGoal(c.Request.Context(), h.db, id)
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	if affected == 0 {
		h.noRow(c)
	}
	redirect(c, "/goals")
}

func (h *Handler) GoalsJSON(c *gin.Context) {
	goals, err := database.GetAllGoals(c.Request.Context(), h.db)
	if err != nil {
		h.storeFailureJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"goals":      goals,
		"by_cadence": models.GroupByCadence(goals),
	})
}
