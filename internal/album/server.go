package album

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the album handlers need. It is
// implemented by *pgxpool.Pool and mocked with pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Server struct {
	db    DB
	likes *LikeCounter
}

func NewServer(db DB, likes *LikeCounter) *Server {
	return &Server{
		db:    db,
		likes: likes,
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Post("/", s.handleAddAlbum)
	r.Get("/{id}", s.handleGetAlbum)
	r.Put("/{id}", s.handleEditAlbum)
	r.Delete("/{id}", s.handleDeleteAlbum)

	r.Post("/{id}/likes", s.handleToggleLike)
	r.Get("/{id}/likes", s.handleGetLikes)

	return r
}
