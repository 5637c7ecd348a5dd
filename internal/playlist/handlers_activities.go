package playlist

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trisnanto/open-music-api-v1/internal/httpx"
)

// handleListActivities returns the playlist's mutation history in
// non-decreasing time order. A playlist with no history yields an empty
// list, not an error.
func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserID(r)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")

	if err := s.VerifyAccess(r.Context(), playlistID, userID); err != nil {
		httpx.WriteDomainError(w, "playlist-service", err)
		return
	}

	activities, err := s.store.ListActivities(r.Context(), playlistID)
	if err != nil {
		log.Printf("playlist-service: list activities: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"playlistId": playlistID,
		"activities": activities,
	})
}
