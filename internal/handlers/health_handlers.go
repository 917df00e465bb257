package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
	"github.com/valeriaulyamaeva/personal-tracker/models"
)

func (h *Handler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	plans, err := database.GetAllWorkoutPlans(ctx, h.db)
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	logs, err := database.GetRecentWorkoutLogs(ctx, h.db, database.RecentWorkoutLogs)
	if err != nil {
		h.storeFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "health.tmpl", healthPage{
		ActivePage:   "health",
		WorkoutPlans: plans,
		WorkoutLogs:  logs,
	})
}

func (h *Handler) AddWorkoutPlan(c *gin.Context) {
	f, ok := h.postForm(c)
	if !ok {
		return
	}
	plan := models.WorkoutPlan{
		Name:   f.String("name"),
		Type:   f.String("type"),
		Target: f.OptionalString("target"),
		Note:   f.OptionalString("note"),
	}
	if err := f.Err(); err != nil {
		h.badRequest(c, err)
		return
	}

	if err := database.CreateWorkoutPlan(c.Request.Context(), h.db, &plan); err != nil {
		h.storeFailure(c, err)
		return
	}
	redirect(c, "/health")
}

// AddWorkoutLog stores blank numeric fields as NULL; an explicit 0 stays 0.
func (h *Handler) AddWorkoutLog(c *gin.Context) {
	f, ok := h.postForm(c)
	if !ok {
		return
	}
	entry := models.WorkoutLog{
		Date:     f.Date("date"),
		Type:     f.String("type"),
		Exercise: f.OptionalString("exercise"),
		Duration: f.OptionalInt("duration"),
		Distance: f.OptionalDecimal("distance"),
		Weight:   f.OptionalDecimal("weight"),
		Sets:     f.OptionalInt("sets"),
		Reps:     f.OptionalInt("reps"),
		Calories: f.OptionalInt("calories"),
		Note:     f.OptionalString("note"),
	}
	if err := f.Err(); err != nil {
		h.badRequest(c, err)
		return
	}

	if err := database.CreateWorkoutLog(c.Request.Context(), h.db, &entry); err != nil {
		h.storeFailure(c, err)
		return
	}
	redirect(c, "/health")
}
