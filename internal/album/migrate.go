package album

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS pgcrypto`); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS albums (
          id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
          name       TEXT NOT NULL,
          year       INT NOT NULL,
          created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
          updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		return err
	}

	// One edge per (user, album); the constraint backs the toggle race
	// described in handleToggleLike.
	_, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS user_album_likes (
          id         TEXT PRIMARY KEY,
          user_id    TEXT NOT NULL,
          album_id   uuid NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
          created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
          UNIQUE(user_id, album_id)
      )
    `)
	return err
}
