package collab

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	// At most one grant per (playlist, user).
	_, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS collaborations (
          id          uuid NOT NULL DEFAULT gen_random_uuid(),
          playlist_id uuid NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          user_id     TEXT NOT NULL,
          created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
          PRIMARY KEY(playlist_id, user_id)
      )
    `)
	return err
}
