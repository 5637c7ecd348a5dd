package collab

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/trisnanto/open-music-api-v1/internal/httpx"
)

type collaborationPayload struct {
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
}

func decodePayload(w http.ResponseWriter, r *http.Request) (collaborationPayload, bool) {
	var body collaborationPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return body, false
	}
	if body.PlaylistID == "" || body.UserID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "playlistId and userId are required")
		return body, false
	}
	return body, true
}

func (s *Server) handleAddCollaboration(w http.ResponseWriter, r *http.Request) {
	actorID := httpx.UserID(r)
	if actorID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	body, ok := decodePayload(w, r)
	if !ok {
		return
	}

	if err := s.owners.VerifyOwner(r.Context(), body.PlaylistID, actorID); err != nil {
		httpx.WriteDomainError(w, "collab-service", err)
		return
	}

	id, err := s.store.Add(r.Context(), body.PlaylistID, body.UserID)
	if err != nil {
		log.Printf("collab-service: add grant: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"collaborationId": id})
}

func (s *Server) handleDeleteCollaboration(w http.ResponseWriter, r *http.Request) {
	actorID := httpx.UserID(r)
	if actorID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	body, ok := decodePayload(w, r)
	if !ok {
		return
	}

	if err := s.owners.VerifyOwner(r.Context(), body.PlaylistID, actorID); err != nil {
		httpx.WriteDomainError(w, "collab-service", err)
		return
	}

	if err := s.store.Delete(r.Context(), body.PlaylistID, body.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			httpx.WriteError(w, http.StatusNotFound, "collaboration not found")
			return
		}
		log.Printf("collab-service: delete grant: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
