package database

import (
	"context"
	"fmt"

	"github.com/valeriaulyamaeva/personal-tracker/models"
)

func CreateCategory(ctx context.Context, db DBTX, category *models.Category) error {
	query := `INSERT INTO category (name, type) VALUES ($1, $2) RETURNING id`

	err := db.QueryRow(ctx, query, category.Name, category.Type).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении категории: %w", err)
	}
	return nil
}

// GetAllCategories returns categories ordered by type, then name.
func GetAllCategories(ctx context.Context, db DBTX) ([]models.Category, error) {
	query := `SELECT id, name, type FROM category ORDER BY type, name`
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении категорий: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Type); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
