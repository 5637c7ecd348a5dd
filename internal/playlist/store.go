package playlist

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSongConflict reports that a song is already on the playlist.
var ErrSongConflict = errors.New("song already in playlist")

type Store interface {
	CreatePlaylist(ctx context.Context, name, ownerID string) (string, error)
	ListPlaylists(ctx context.Context, userID string) ([]Summary, error)
	DeletePlaylist(ctx context.Context, id string) error
	// GetOwner resolves the playlist owner; pgx.ErrNoRows when the
	// playlist does not exist.
	GetOwner(ctx context.Context, id string) (string, error)
	AddSong(ctx context.Context, playlistID, songID string) (string, error)
	RemoveSong(ctx context.Context, playlistID, songID string) error
	GetPlaylistWithSongs(ctx context.Context, id string) (*Detail, error)
	AppendActivity(ctx context.Context, a Activity) (string, error)
	ListActivities(ctx context.Context, playlistID string) ([]ActivityRecord, error)
}

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) CreatePlaylist(ctx context.Context, name, ownerID string) (string, error) {
	var id string
	err := s.pool.QueryRow(ctx, `
        INSERT INTO playlists(name, owner_id)
        VALUES($1,$2)
        RETURNING id
    `, name, ownerID).Scan(&id)
	return id, err
}

func (s *PostgresStore) ListPlaylists(ctx context.Context, userID string) ([]Summary, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT DISTINCT p.id, p.name, p.owner_id, p.created_at
        FROM playlists p
        LEFT JOIN collaborations c ON c.playlist_id = p.id
        WHERE p.owner_id = $1 OR c.user_id = $1
        ORDER BY p.created_at
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Summary, 0)
	for rows.Next() {
		var sm Summary
		var createdAt time.Time
		if err := rows.Scan(&sm.ID, &sm.Name, &sm.OwnerID, &createdAt); err != nil {
			return nil, err
		}
		out = append(out, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) DeletePlaylist(ctx context.Context, id string) error {
	res, err := s.pool.Exec(ctx, `DELETE FROM playlists WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) GetOwner(ctx context.Context, id string) (string, error) {
	var owner string
	err := s.pool.QueryRow(ctx, `SELECT owner_id FROM playlists WHERE id=$1`, id).Scan(&owner)
	if err != nil {
		return "", err
	}
	return owner, nil
}

func (s *PostgresStore) AddSong(ctx context.Context, playlistID, songID string) (string, error) {
	var id string
	err := s.pool.QueryRow(ctx, `
        INSERT INTO playlist_songs(playlist_id, song_id)
        VALUES($1,$2)
        RETURNING id
    `, playlistID, songID).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrSongConflict
		}
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) RemoveSong(ctx context.Context, playlistID, songID string) error {
	res, err := s.pool.Exec(ctx, `
        DELETE FROM playlist_songs
        WHERE playlist_id=$1 AND song_id=$2
    `, playlistID, songID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) GetPlaylistWithSongs(ctx context.Context, id string) (*Detail, error) {
	var d Detail
	err := s.pool.QueryRow(ctx, `
        SELECT id, name, owner_id FROM playlists WHERE id=$1
    `, id).Scan(&d.ID, &d.Name, &d.OwnerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
        SELECT s.id, s.title, s.performer
        FROM playlist_songs ps
        JOIN songs s ON s.id = ps.song_id
        WHERE ps.playlist_id = $1
        ORDER BY ps.created_at
    `, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	d.Songs = make([]SongEntry, 0)
	for rows.Next() {
		var se SongEntry
		if err := rows.Scan(&se.ID, &se.Title, &se.Performer); err != nil {
			return nil, err
		}
		d.Songs = append(d.Songs, se)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *PostgresStore) AppendActivity(ctx context.Context, a Activity) (string, error) {
	var id string
	err := s.pool.QueryRow(ctx, `
        INSERT INTO playlist_song_activities(id, playlist_id, song_id, user_id, action, time)
        VALUES($1,$2,$3,$4,$5,$6)
        RETURNING id
    `, a.ID, a.PlaylistID, a.SongID, a.UserID, a.Action, a.Time).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) ListActivities(ctx context.Context, playlistID string) ([]ActivityRecord, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT a.user_id, COALESCE(s.title, a.song_id), a.action, a.time
        FROM playlist_song_activities a
        LEFT JOIN songs s ON s.id::text = a.song_id
        WHERE a.playlist_id = $1
        ORDER BY a.time
    `, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ActivityRecord, 0)
	for rows.Next() {
		var rec ActivityRecord
		if err := rows.Scan(&rec.UserID, &rec.Title, &rec.Action, &rec.Time); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
