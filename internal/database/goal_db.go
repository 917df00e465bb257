package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/valeriaulyamaeva/personal-tracker/models"
)

const goalColumns = `
	id, title, description, type, due_date, status, priority, category, progress, created_at, completed_at`

// CreateGoal inserts a goal. Status and CompletedAt are
// derived from Progress before the insert.
func CreateGoal(ctx context.Context, db DBTX, goal *models.Goal, now time.Time) error {
	goal.SetProgress(goal.Progress, now)

	query := `
		INSERT INTO goals (title, description, type, due_date, status, priority, category, progress, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	err := db.QueryRow(ctx, query,
		goal.Title,
		goal.Description,
		goal.Type,
		goal.DueDate,
		goal.Status,
		goal.Priority,
		goal.Category,
		goal.Progress,
		goal.CompletedAt).Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении цели: %w", err)
	}
	return nil
}

// GetGoalByID returns a single goal.
func GetGoalByID(ctx context.Context, db DBTX, goalID int) (*models.Goal, error) {
	query := `SELECT` + goalColumns + ` FROM goals WHERE id = $1`

	goal, err := scanGoal(db.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("цель с ID %d не найдена: %w", goalID, err)
		}
		return nil, fmt.Errorf("ошибка при получении цели: %w", err)
	}
	return goal, nil
}

// GetAllGoals returns in-progress goals first, then completed, then any
// other status; each group by due date.
func GetAllGoals(ctx context.Context, db DBTX) ([]models.Goal, error) {
	query := `SELECT` + goalColumns + `
		FROM goals
		ORDER BY
			CASE status
				WHEN 'in-progress' THEN 1
				WHEN 'completed' THEN 2
				ELSE 3
			END,
			due_date ASC`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении целей: %w", err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *goal)
	}
	return goals, rows.Err()
}

// UpdateGoalProgress sets progress and the status/completed_at pair that
// follows from it. Returns the number of rows changed.
func UpdateGoalProgress(ctx context.Context, db DBTX, goalID, progress int, now time.Time) (int64, error) {
	var goal models.Goal
	goal.SetProgress(progress, now)

	query := `
		UPDATE goals
		SET progress = $1, status = $2, completed_at = $3
		WHERE id = $4`
	result, err := db.Exec(ctx, query, goal.Progress, goal.Status, goal.CompletedAt, goalID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при обновлении прогресса: %w", err)
	}
	return result.RowsAffected(), nil
}

// DeleteGoal removes a goal permanently. Deleting a missing goal is not an error.
func DeleteGoal(ctx context.Context, db DBTX, goalID int) (int64, error) {
	result, err := db.Exec(ctx, `DELETE FROM goals WHERE id = $1`, goalID)
	if err != nil {
		return 0, fmt.Errorf("ошибка удаления цели: %w", err)
	}
	return result.RowsAffected(), nil
}

func scanGoal(row pgx.Row) (*models.Goal, error) {
	g := &models.Goal{}
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.Type, &g.DueDate, &g.Status,
		&g.Priority, &g.Category, &g.Progress, &g.CreatedAt, &g.CompletedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}
