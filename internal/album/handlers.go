package album

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/trisnanto/open-music-api-v1/internal/httpx"
	"github.com/trisnanto/open-music-api-v1/internal/song"
)

type albumPayload struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

func (p *albumPayload) validate() string {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return "name is required"
	}
	if p.Year <= 0 || p.Year > 9999 {
		return "year must be between 1 and 9999"
	}
	return ""
}

func (s *Server) handleAddAlbum(w http.ResponseWriter, r *http.Request) {
	var body albumPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := body.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	var id string
	err := s.db.QueryRow(r.Context(), `
        INSERT INTO albums (name, year)
        VALUES ($1, $2)
        RETURNING id
    `, body.Name, body.Year).Scan(&id)
	if err != nil {
		log.Printf("album-service: add album: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"albumId": id})
}

func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var al Album
	err := s.db.QueryRow(r.Context(), `
        SELECT id, name, year FROM albums WHERE id = $1
    `, id).Scan(&al.ID, &al.Name, &al.Year)
	if errors.Is(err, pgx.ErrNoRows) {
		httpx.WriteError(w, http.StatusNotFound, "album not found")
		return
	}
	if err != nil {
		log.Printf("album-service: get album: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	rows, err := s.db.Query(r.Context(), `
        SELECT id, title, performer FROM songs WHERE album_id = $1 ORDER BY created_at
    `, id)
	if err != nil {
		log.Printf("album-service: get album songs: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}
	defer rows.Close()

	al.Songs = make([]song.Summary, 0)
	for rows.Next() {
		var sm song.Summary
		if err := rows.Scan(&sm.ID, &sm.Title, &sm.Performer); err != nil {
			log.Printf("album-service: scan album song: %v", err)
			httpx.WriteError(w, http.StatusInternalServerError, "database error")
			return
		}
		al.Songs = append(al.Songs, sm)
	}
	if err := rows.Err(); err != nil {
		log.Printf("album-service: get album songs rows: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"album": al})
}

func (s *Server) handleEditAlbum(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body albumPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := body.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	tag, err := s.db.Exec(r.Context(), `
        UPDATE albums SET name = $1, year = $2, updated_at = now() WHERE id = $3
    `, body.Name, body.Year, id)
	if err != nil {
		log.Printf("album-service: edit album: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}
	if tag.RowsAffected() == 0 {
		httpx.WriteError(w, http.StatusNotFound, "album not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tag, err := s.db.Exec(r.Context(), `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		log.Printf("album-service: delete album: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}
	if tag.RowsAffected() == 0 {
		httpx.WriteError(w, http.StatusNotFound, "album not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) albumExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
        SELECT EXISTS(SELECT 1 FROM albums WHERE id=$1)
    `, id).Scan(&exists)
	return exists, err
}
