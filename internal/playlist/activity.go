package playlist

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trisnanto/open-music-api-v1/internal/apperr"
)

// recordActivity appends one log entry for an acknowledged song mutation.
// The log and the mutation must stay observably consistent: if the append
// fails, the caller withholds its success response, so a failed write here
// is an invariant violation rather than a retryable condition.
func (s *Server) recordActivity(ctx context.Context, playlistID, songID, userID, action string) error {
	_, err := s.store.AppendActivity(ctx, Activity{
		ID:         uuid.NewString(),
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     action,
		Time:       time.Now().UTC(),
	})
	if err != nil {
		return apperr.Invariant("failed to record playlist activity")
	}
	return nil
}
