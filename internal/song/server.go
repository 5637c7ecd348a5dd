package song

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the song handlers need. It is
// implemented by *pgxpool.Pool and mocked with pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Server struct {
	db DB
}

func NewServer(db DB) *Server {
	return &Server{db: db}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Post("/", s.handleAddSong)
	r.Get("/", s.handleListSongs)
	r.Get("/{id}", s.handleGetSong)
	r.Put("/{id}", s.handleEditSong)
	r.Delete("/{id}", s.handleDeleteSong)

	return r
}
