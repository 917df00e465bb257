package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/personal-tracker/models"
)

// ErrBadSettingValue is returned when a stored setting cannot be parsed.
var ErrBadSettingValue = errors.New("setting value is not a number")

func GetSetting(ctx context.Context, db DBTX, key string) (*models.Setting, error) {
	query := `SELECT id, key, value, updated_at FROM settings WHERE key = $1`

	var s models.Setting
	err := db.QueryRow(ctx, query, key).Scan(&s.ID, &s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertSetting writes value under key in a single statement, so two
// concurrent writers can never produce two rows for the same key.
func UpsertSetting(ctx context.Context, db DBTX, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("ошибка обновления настройки %s: %w", key, err)
	}
	return nil
}

// GetInitialBalance returns zero when the balance was never set.
// A stored value that is not a number yields zero and ErrBadSettingValue.
func GetInitialBalance(ctx context.Context, db DBTX) (decimal.Decimal, error) {
	s, err := GetSetting(ctx, db, models.InitialBalanceKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("ошибка получения начального баланса: %w", err)
	}
	balance, err := decimal.NewFromString(s.Value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrBadSettingValue, s.Value)
	}
	return balance, nil
}

func SetInitialBalance(ctx context.Context, db DBTX, amount decimal.Decimal) error {
	return UpsertSetting(ctx, db, models.InitialBalanceKey, amount.String())
}
