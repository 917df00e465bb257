package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WorkoutPlan struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Type      string    `json:"type" db:"type"`
	Target    *string   `json:"target,omitempty" db:"target"`
	Note      *string   `json:"note,omitempty" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// WorkoutLog keeps every measurement optional: nil means "not recorded",
// which is different from a recorded zero.
type WorkoutLog struct {
	ID        int                 `json:"id" db:"id"`
	Date      time.Time           `json:"date" db:"date"`
	Type      string              `json:"type" db:"type"`
	Exercise  *string             `json:"exercise,omitempty" db:"exercise"`
	Duration  *int                `json:"duration,omitempty" db:"duration"`
	Distance  decimal.NullDecimal `json:"distance" db:"distance"`
	Weight    decimal.NullDecimal `json:"weight" db:"weight"`
	Sets      *int                `json:"sets,omitempty" db:"sets"`
	Reps      *int                `json:"reps,omitempty" db:"reps"`
	Calories  *int                `json:"calories,omitempty" db:"calories"`
	Note      *string             `json:"note,omitempty" db:"note"`
	CreatedAt time.Time           `json:"created_at" db:"created_at"`
}
