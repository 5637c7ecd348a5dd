package collab

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the store needs. Implemented by
// *pgxpool.Pool and mocked with pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	db DB
}

func NewStore(db DB) *Store {
	return &Store{db: db}
}

// Add upserts a grant; re-granting an existing collaborator is idempotent
// and returns the existing grant id.
func (s *Store) Add(ctx context.Context, playlistID, userID string) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `
        INSERT INTO collaborations(playlist_id, user_id)
        VALUES($1,$2)
        ON CONFLICT(playlist_id, user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id
    `, playlistID, userID).Scan(&id)
	return id, err
}

func (s *Store) Delete(ctx context.Context, playlistID, userID string) error {
	res, err := s.db.Exec(ctx, `
        DELETE FROM collaborations WHERE playlist_id=$1 AND user_id=$2
    `, playlistID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) IsCollaborator(ctx context.Context, playlistID, userID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
        SELECT EXISTS(SELECT 1 FROM collaborations WHERE playlist_id=$1 AND user_id=$2)
    `, playlistID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
