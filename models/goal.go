package models

import (
	"time"
)

const (
	GoalStatusInProgress = "in-progress"
	GoalStatusCompleted  = "completed"

	CadenceDaily   = "daily"
	CadenceWeekly  = "weekly"
	CadenceMonthly = "monthly"
	CadenceYearly  = "yearly"

	MaxGoalProgress = 100
)

type Goal struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	Type        string     `json:"type" db:"type"`
	DueDate     *time.Time `json:"due_date,omitempty" db:"due_date"`
	Status      string     `json:"status" db:"status"`
	Priority    *string    `json:"priority,omitempty" db:"priority"`
	Category    *string    `json:"category,omitempty" db:"category"`
	Progress    int        `json:"progress" db:"progress"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// ValidCadence reports whether t is one of the four grouping cadences.
func ValidCadence(t string) bool {
	switch t {
	case CadenceDaily, CadenceWeekly, CadenceMonthly, CadenceYearly:
		return true
	}
	return false
}

// StatusForProgress: a goal is completed once progress reaches 100.
func StatusForProgress(progress int) string {
	if progress >= MaxGoalProgress {
		return GoalStatusCompleted
	}
	return GoalStatusInProgress
}

// SetProgress updates progress and keeps Status and CompletedAt consistent
// with it. Moving a completed goal back under 100 clears CompletedAt.
func (g *Goal) SetProgress(progress int, now time.Time) {
	g.Progress = progress
	g.Status = StatusForProgress(progress)
	if g.Status == GoalStatusCompleted {
		completed := now
		g.CompletedAt = &completed
		return
	}
	g.CompletedAt = nil
}

func (g *Goal) IsCompleted() bool {
	return g.Status == GoalStatusCompleted
}

type GoalsByCadence struct {
	Daily   []Goal `json:"daily"`
	Weekly  []Goal `json:"weekly"`
	Monthly []Goal `json:"monthly"`
	Yearly  []Goal `json:"yearly"`
}

// GroupByCadence partitions goals by type, keeping their relative order.
// Goals with an unknown type are left out of every group.
func GroupByCadence(goals []Goal) GoalsByCadence {
	var g GoalsByCadence
	for _, goal := range goals {
		switch goal.Type {
		case CadenceDaily:
			g.Daily = append(g.Daily, goal)
		case CadenceWeekly:
			g.Weekly = append(g.Weekly, goal)
		case CadenceMonthly:
			g.Monthly = append(g.Monthly, goal)
		case CadenceYearly:
			g.Yearly = append(g.Yearly, goal)
		}
	}
	return g
}
