package song

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/trisnanto/open-music-api-v1/internal/httpx"
)

type songPayload struct {
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

func (p *songPayload) validate() string {
	p.Title = strings.TrimSpace(p.Title)
	p.Genre = strings.TrimSpace(p.Genre)
	p.Performer = strings.TrimSpace(p.Performer)
	switch {
	case p.Title == "":
		return "title is required"
	case p.Year <= 0 || p.Year > 9999:
		return "year must be between 1 and 9999"
	case p.Genre == "":
		return "genre is required"
	case p.Performer == "":
		return "performer is required"
	}
	return ""
}

func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	var body songPayload
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
        INSERT INTO songs (title, year, genre, performer, duration, album_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, body.Title, body.Year, body.Genre, body.Performer, body.Duration, body.AlbumID).Scan(&id)
	if err != nil {
		log.Printf("song-service: add song: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"songId": id})
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	title := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("title")))
	performer := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("performer")))

	rows, err := s.db.Query(r.Context(), `
        SELECT id, title, performer
        FROM songs
        WHERE ($1 = '' OR LOWER(title) LIKE '%' || $1 || '%')
          AND ($2 = '' OR LOWER(performer) LIKE '%' || $2 || '%')
        ORDER BY created_at
    `, title, performer)
	if err != nil {
		log.Printf("song-service: list songs: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}
	defer rows.Close()

	songs := make([]Summary, 0)
	for rows.Next() {
		var sm Summary
		if err := rows.Scan(&sm.ID, &sm.Title, &sm.Performer); err != nil {
			log.Printf("song-service: scan song: %v", err)
			httpx.WriteError(w, http.StatusInternalServerError, "database error")
			return
		}
		songs = append(songs, sm)
	}
	if err := rows.Err(); err != nil {
		log.Printf("song-service: list songs rows: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"songs": songs})
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var sg Song
	err := s.db.QueryRow(r.Context(), `
        SELECT id, title, year, genre, performer, duration, album_id
        FROM songs
        WHERE id = $1
    `, id).Scan(&sg.ID, &sg.Title, &sg.Year, &sg.Genre, &sg.Performer, &sg.Duration, &sg.AlbumID)
	if errors.Is(err, pgx.ErrNoRows) {
		httpx.WriteError(w, http.StatusNotFound, "song not found")
		return
	}
	if err != nil {
		log.Printf("song-service: get song: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"song": sg})
}

func (s *Server) handleEditSong(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body songPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := body.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	tag, err := s.db.Exec(r.Context(), `
        UPDATE songs
        SET title = $1, year = $2, genre = $3, performer = $4,
            duration = $5, album_id = $6, updated_at = now()
        WHERE id = $7
    `, body.Title, body.Year, body.Genre, body.Performer, body.Duration, body.AlbumID, id)
	if err != nil {
		log.Printf("song-service: edit song: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}
	if tag.RowsAffected() == 0 {
		httpx.WriteError(w, http.StatusNotFound, "song not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tag, err := s.db.Exec(r.Context(), `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		log.Printf("song-service: delete song: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}
	if tag.RowsAffected() == 0 {
		httpx.WriteError(w, http.StatusNotFound, "song not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
