package playlist

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

// SongChecker confirms a song exists before it is attached to or logged
// against a playlist. Implemented by the song service.
type SongChecker interface {
	Exists(ctx context.Context, songID string) error
}

// CollaboratorChecker is the collaboration registry seam used by the
// access resolver. Implemented by the collab store.
type CollaboratorChecker interface {
	IsCollaborator(ctx context.Context, playlistID, userID string) (bool, error)
}

type Server struct {
	store   Store
	songs   SongChecker
	collabs CollaboratorChecker
	rdb     *redis.Client
}

func NewServer(store Store, songs SongChecker, collabs CollaboratorChecker, rdb *redis.Client) *Server {
	return &Server{
		store:   store,
		songs:   songs,
		collabs: collabs,
		rdb:     rdb,
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Post("/", s.handleCreatePlaylist)
	r.Get("/", s.handleListPlaylists)
	r.Delete("/{id}", s.handleDeletePlaylist)

	r.Post("/{id}/songs", s.handleAddSong)
	r.Get("/{id}/songs", s.handleListSongs)
	r.Delete("/{id}/songs", s.handleDeleteSong)

	r.Get("/{id}/activities", s.handleListActivities)

	return r
}

func (s *Server) publishEvent(ctx context.Context, eventType string, payload any) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(map[string]any{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		log.Printf("playlist-service: marshal event: %v", err)
		return
	}
	if err := s.rdb.Publish(ctx, "broadcast", string(data)).Err(); err != nil {
		log.Printf("playlist-service: publish event: %v", err)
	}
}
