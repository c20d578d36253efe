package database

import (
	"context"
	"fmt"
)

// ============================================
// Banned users
// ============================================

func (db *DB) IsBanned(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM banned_users WHERE user_id = $1)`

	var banned bool
	err := db.Pool.QueryRow(ctx, query, userID).Scan(&banned)
	return banned, err
}

func (db *DB) Ban(ctx context.Context, userID int64) error {
	query := `INSERT INTO banned_users (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`

	_, err := db.Pool.Exec(ctx, query, userID)
	return err
}

func (db *DB) Unban(ctx context.Context, userID int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM banned_users WHERE user_id = $1`, userID)
	return err
}

func (db *DB) BannedCount(ctx context.Context) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM banned_users`).Scan(&count)
	return count, err
}

// ============================================
// Stats
// ============================================

// IncrementStat увеличивает счётчик одним UPDATE, без окна чтения-записи
func (db *DB) IncrementStat(ctx context.Context, key string) error {
	tag, err := db.Pool.Exec(ctx, `UPDATE stats SET value = value + 1 WHERE key = $1`, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("неизвестный счётчик %q", key)
	}
	return nil
}

func (db *DB) GetStats(ctx context.Context) (map[string]int64, error) {
	rows, err := db.Pool.Query(ctx, `SELECT key, value FROM stats`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(map[string]int64)
	for rows.Next() {
		var key string
		var value int64
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		stats[key] = value
	}
	return stats, rows.Err()
}
