package album

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trisnanto/open-music-api-v1/internal/httpx"
)

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "id")
	userID := httpx.UserID(r)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	exists, err := s.albumExists(r.Context(), albumID)
	if err != nil {
		log.Printf("album-service: toggle like lookup: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}
	if !exists {
		httpx.WriteError(w, http.StatusNotFound, "album not found")
		return
	}

	action, err := s.likes.Toggle(r.Context(), albumID, userID)
	if err != nil {
		log.Printf("album-service: toggle like: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"status": action})
}

func (s *Server) handleGetLikes(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "id")

	exists, err := s.albumExists(r.Context(), albumID)
	if err != nil {
		log.Printf("album-service: get likes lookup: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}
	if !exists {
		httpx.WriteError(w, http.StatusNotFound, "album not found")
		return
	}

	res, err := s.likes.Count(r.Context(), albumID)
	if err != nil {
		log.Printf("album-service: count likes: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	if res.Source == SourceCache {
		w.Header().Set("X-Data-Source", SourceCache)
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]int{"likes": res.Count})
}
