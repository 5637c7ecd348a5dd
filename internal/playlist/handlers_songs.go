package playlist

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/trisnanto/open-music-api-v1/internal/httpx"
)

// handleAddSong attaches a song to a playlist. The sequence is fixed:
// access check, song existence, durable insert, then the activity append.
// Success is reported only after the append is acknowledged.
func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserID(r)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")

	var body struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.SongID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "songId is required")
		return
	}

	if err := s.VerifyAccess(r.Context(), playlistID, userID); err != nil {
		httpx.WriteDomainError(w, "playlist-service", err)
		return
	}

	if err := s.songs.Exists(r.Context(), body.SongID); err != nil {
		httpx.WriteDomainError(w, "playlist-service", err)
		return
	}

	entryID, err := s.store.AddSong(r.Context(), playlistID, body.SongID)
	if err != nil {
		if errors.Is(err, ErrSongConflict) {
			httpx.WriteError(w, http.StatusBadRequest, "song already in playlist")
			return
		}
		log.Printf("playlist-service: add song: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	if err := s.recordActivity(r.Context(), playlistID, body.SongID, userID, actionAdd); err != nil {
		httpx.WriteDomainError(w, "playlist-service", err)
		return
	}

	s.publishEvent(r.Context(), "playlist.song.added", map[string]any{
		"playlistId": playlistID,
		"songId":     body.SongID,
		"userId":     userID,
	})

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"playlistSongId": entryID})
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
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

	detail, err := s.store.GetPlaylistWithSongs(r.Context(), playlistID)
	if err != nil {
		log.Printf("playlist-service: list songs: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"playlist": detail})
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserID(r)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")

	var body struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.SongID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "songId is required")
		return
	}

	if err := s.VerifyAccess(r.Context(), playlistID, userID); err != nil {
		httpx.WriteDomainError(w, "playlist-service", err)
		return
	}

	if err := s.songs.Exists(r.Context(), body.SongID); err != nil {
		httpx.WriteDomainError(w, "playlist-service", err)
		return
	}

	if err := s.store.RemoveSong(r.Context(), playlistID, body.SongID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			httpx.WriteError(w, http.StatusNotFound, "song not found in playlist")
			return
		}
		log.Printf("playlist-service: remove song: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	if err := s.recordActivity(r.Context(), playlistID, body.SongID, userID, actionDelete); err != nil {
		httpx.WriteDomainError(w, "playlist-service", err)
		return
	}

	s.publishEvent(r.Context(), "playlist.song.deleted", map[string]any{
		"playlistId": playlistID,
		"songId":     body.SongID,
		"userId":     userID,
	})

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
