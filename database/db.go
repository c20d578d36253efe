package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	Pool *pgxpool.Pool
}

const schema = `
CREATE TABLE IF NOT EXISTS banned_users (
	user_id BIGINT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS stats (
	key   TEXT PRIMARY KEY,
	value BIGINT NOT NULL DEFAULT 0
);

INSERT INTO stats (key, value)
VALUES ('suggestions', 0), ('approved', 0), ('declined', 0)
ON CONFLICT (key) DO NOTHING;
`

// New открывает пул и создаёт таблицы, если их ещё нет
func New(ctx context.Context, url string) (*DB, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}
	return &DB{Pool: pool}, nil
}

func (db *DB) Close() {
	db.Pool.Close()
}
