package song

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/trisnanto/open-music-api-v1/internal/apperr"
)

// Exists reports whether a song is present in the catalog. The playlist
// service calls this before touching playlist contents.
func (s *Server) Exists(ctx context.Context, songID string) error {
	var id string
	err := s.db.QueryRow(ctx, `SELECT id FROM songs WHERE id = $1`, songID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("song not found")
	}
	return err
}
