package album

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Store persists like edges in the user_album_likes table.
type Store struct {
	db DB
}

func NewStore(db DB) *Store {
	return &Store{db: db}
}

func (s *Store) HasLiked(ctx context.Context, albumID, userID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
        SELECT EXISTS(SELECT 1 FROM user_album_likes WHERE user_id=$1 AND album_id=$2)
    `, userID, albumID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Store) AddLike(ctx context.Context, id, albumID, userID string) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO user_album_likes(id, user_id, album_id)
        VALUES($1,$2,$3)
    `, id, userID, albumID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (s *Store) RemoveLike(ctx context.Context, albumID, userID string) error {
	res, err := s.db.Exec(ctx, `
        DELETE FROM user_album_likes
        WHERE user_id=$1 AND album_id=$2
    `, userID, albumID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) CountLikes(ctx context.Context, albumID string) (int, error) {
	var total int
	err := s.db.QueryRow(ctx, `
        SELECT COUNT(*) FROM user_album_likes WHERE album_id=$1
    `, albumID).Scan(&total)
	return total, err
}
