package database

import (
	"context"
	"fmt"

	"github.com/valeriaulyamaeva/personal-tracker/models"
)

// RecentWorkoutLogs is how many log entries the health page shows.
const RecentWorkoutLogs = 20

func CreateWorkoutPlan(ctx context.Context, db DBTX, plan *models.WorkoutPlan) error {
	query := `
		INSERT INTO workout_plan (name, type, target, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := db.QueryRow(ctx, query, plan.Name, plan.Type, plan.Target, plan.Note).
		Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении плана тренировок: %w", err)
	}
	return nil
}

func GetAllWorkoutPlans(ctx context.Context, db DBTX) ([]models.WorkoutPlan, error) {
	query := `
		SELECT id, name, type, target, note, created_at
		FROM workout_plan
		ORDER BY created_at DESC`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении планов тренировок: %w", err)
	}
	defer rows.Close()

	plans := []models.WorkoutPlan{}
	for rows.Next() {
		var p models.WorkoutPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Target, &p.Note, &p.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// CreateWorkoutLog stores nil measurements as NULL, never as zero.
func CreateWorkoutLog(ctx context.Context, db DBTX, log *models.WorkoutLog) error {
	query := `
		INSERT INTO workout_log (date, type, exercise, duration, distance, weight, sets, reps, calories, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err := db.QueryRow(ctx, query,
		log.Date,
		log.Type,
		log.Exercise,
		log.Duration,
		log.Distance,
		log.Weight,
		log.Sets,
		log.Reps,
		log.Calories,
		log.Note).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении записи тренировки: %w", err)
	}
	return nil
}

// GetRecentWorkoutLogs returns at most limit entries, newest first.
func GetRecentWorkoutLogs(ctx context.Context, db DBTX, limit int) ([]models.WorkoutLog, error) {
	query := `
		SELECT id, date, type, exercise, duration, distance, weight, sets, reps, calories, note, created_at
		FROM workout_log
		ORDER BY date DESC, id DESC
		LIMIT $1`

	rows, err := db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении записей тренировок: %w", err)
	}
	defer rows.Close()

	logs := []models.WorkoutLog{}
	for rows.Next() {
		var l models.WorkoutLog
		if err := rows.Scan(&l.ID, &l.Date, &l.Type, &l.Exercise, &l.Duration, &l.Distance,
			&l.Weight, &l.Sets, &l.Reps, &l.Calories, &l.Note, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
