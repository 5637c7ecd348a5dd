package playlist

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/trisnanto/open-music-api-v1/internal/httpx"
)

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserID(r)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" || len(body.Name) > 300 {
		httpx.WriteError(w, http.StatusBadRequest, "name must be between 1 and 300 characters")
		return
	}

	id, err := s.store.CreatePlaylist(r.Context(), body.Name, userID)
	if err != nil {
		log.Printf("playlist-service: create playlist: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	s.publishEvent(r.Context(), "playlist.created", map[string]any{
		"playlistId": id,
		"ownerId":    userID,
	})

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"playlistId": id})
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserID(r)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	playlists, err := s.store.ListPlaylists(r.Context(), userID)
	if err != nil {
		log.Printf("playlist-service: list playlists: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"playlists": playlists})
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserID(r)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")

	if err := s.VerifyOwner(r.Context(), playlistID, userID); err != nil {
		httpx.WriteDomainError(w, "playlist-service", err)
		return
	}

	// Collaborator grants, songs and activity entries go with the
	// playlist via ON DELETE CASCADE.
	if err := s.store.DeletePlaylist(r.Context(), playlistID); err != nil {
		log.Printf("playlist-service: delete playlist: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	s.publishEvent(r.Context(), "playlist.deleted", map[string]any{
		"playlistId": playlistID,
	})

	w.WriteHeader(http.StatusNoContent)
}
