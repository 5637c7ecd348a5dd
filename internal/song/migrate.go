package song

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS pgcrypto`); err != nil {
		return err
	}

	_, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS songs (
          id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
          title      TEXT NOT NULL,
          year       INT NOT NULL,
          genre      TEXT NOT NULL,
          performer  TEXT NOT NULL,
          duration   INT,
          album_id   uuid REFERENCES albums(id) ON DELETE CASCADE,
          created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
          updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `)
	return err
}
