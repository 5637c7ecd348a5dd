package playlist

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS pgcrypto`); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlists (
          id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
          name       TEXT NOT NULL,
          owner_id   TEXT NOT NULL,
          created_at TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlist_songs (
          id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
          playlist_id uuid NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          song_id     uuid NOT NULL REFERENCES songs(id) ON DELETE CASCADE,
          created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
          UNIQUE(playlist_id, song_id)
      )
    `); err != nil {
		return err
	}

	_, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlist_song_activities (
          id          TEXT PRIMARY KEY,
          playlist_id uuid NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          song_id     TEXT NOT NULL,
          user_id     TEXT NOT NULL,
          action      TEXT NOT NULL,
          time        TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `)
	return err
}
