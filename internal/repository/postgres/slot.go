package postgres

import (
	"context"
	"database/sql"
	"errors"
)

// SlotRepo implements repository.SlotRepository
type SlotRepo struct {
	db *sql.DB
}

// NewSlotRepo creates a new slot repository
func NewSlotRepo(db *sql.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// GetSlot returns the value stored under key for the user
// A missing row is reported as ok == false, not as an error
func (r *SlotRepo) GetSlot(ctx context.Context, userID int64, key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM slots WHERE user_id = $1 AND key = $2`
	err := r.db.QueryRowContext(ctx, query, userID, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// SetSlot overwrites the value stored under key for the user
func (r *SlotRepo) SetSlot(ctx context.Context, userID int64, key, value string) error {
	query := `
		INSERT INTO slots (user_id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, userID, key, value)
	return err
}

// ListSlots returns every slot stored for the user
func (r *SlotRepo) ListSlots(ctx context.Context, userID int64) (map[string]string, error) {
	query := `
		SELECT key, value
		FROM slots
		WHERE user_id = $1
		ORDER BY key
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		slots[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}
