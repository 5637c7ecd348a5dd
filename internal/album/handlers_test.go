package album

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockServer wires the album server and its like counter onto one
// mocked pool so handler tests see the full query sequence.
func setupMockServer(t *testing.T) (*Server, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	likes := NewLikeCounter(NewStore(mock), nil)
	return NewServer(mock, likes), mock
}

func serve(s *Server, method, path, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHandleAddAlbum(t *testing.T) {
	s, mock := setupMockServer(t)
	defer mock.Close()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO albums").
			WithArgs("Viva la Vida", 2008).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("album-1"))

		w := serve(s, "POST", "/", "", `{"name":"Viva la Vida","year":2008}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "album-1")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingName", func(t *testing.T) {
		w := serve(s, "POST", "/", "", `{"year":2008}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("BadYear", func(t *testing.T) {
		w := serve(s, "POST", "/", "", `{"name":"X","year":0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		w := serve(s, "POST", "/", "", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetAlbum(t *testing.T) {
	s, mock := setupMockServer(t)
	defer mock.Close()

	t.Run("SuccessWithSongs", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, year FROM albums").
			WithArgs("album-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "year"}).
				AddRow("album-1", "Viva la Vida", 2008))
		mock.ExpectQuery("SELECT id, title, performer FROM songs").
			WithArgs("album-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "title", "performer"}).
				AddRow("song-1", "Lost!", "Coldplay"))

		w := serve(s, "GET", "/album-1", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Lost!")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, year FROM albums").
			WithArgs("nope").
			WillReturnError(pgx.ErrNoRows)

		w := serve(s, "GET", "/nope", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleEditAlbum(t *testing.T) {
	s, mock := setupMockServer(t)
	defer mock.Close()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE albums").
			WithArgs("New Name", 2010, "album-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		w := serve(s, "PUT", "/album-1", "", `{"name":"New Name","year":2010}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE albums").
			WithArgs("New Name", 2010, "nope").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		w := serve(s, "PUT", "/nope", "", `{"name":"New Name","year":2010}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleDeleteAlbum(t *testing.T) {
	s, mock := setupMockServer(t)
	defer mock.Close()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM albums").
			WithArgs("album-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		w := serve(s, "DELETE", "/album-1", "", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM albums").
			WithArgs("nope").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		w := serve(s, "DELETE", "/nope", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleToggleLike(t *testing.T) {
	s, mock := setupMockServer(t)
	defer mock.Close()

	t.Run("FirstToggleLikes", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS.*FROM albums").
			WithArgs("album-1").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT EXISTS.*FROM user_album_likes").
			WithArgs("user-1", "album-1").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("INSERT INTO user_album_likes").
			WithArgs(pgxmock.AnyArg(), "user-1", "album-1").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		w := serve(s, "POST", "/album-1/likes", "user-1", "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), ActionLiked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SecondToggleUnlikes", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS.*FROM albums").
			WithArgs("album-1").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT EXISTS.*FROM user_album_likes").
			WithArgs("user-1", "album-1").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectExec("DELETE FROM user_album_likes").
			WithArgs("user-1", "album-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		w := serve(s, "POST", "/album-1/likes", "user-1", "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), ActionUnliked)
	})

	t.Run("MissingAlbum", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS.*FROM albums").
			WithArgs("nope").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		w := serve(s, "POST", "/nope/likes", "user-1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("MissingUserContext", func(t *testing.T) {
		w := serve(s, "POST", "/album-1/likes", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleGetLikes(t *testing.T) {
	s, mock := setupMockServer(t)
	defer mock.Close()

	t.Run("CountsFromStore", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS.*FROM albums").
			WithArgs("album-1").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT COUNT.*FROM user_album_likes").
			WithArgs("album-1").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

		w := serve(s, "GET", "/album-1/likes", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"likes":2`)
		assert.Empty(t, w.Header().Get("X-Data-Source"))
	})

	t.Run("CachedCountIsLabelled", func(t *testing.T) {
		cache := newMemCache()
		require.NoError(t, cache.Set(context.Background(), "likes:album-1", "4", 0))
		cached := NewServer(mock, NewLikeCounter(NewStore(mock), cache))

		mock.ExpectQuery("SELECT EXISTS.*FROM albums").
			WithArgs("album-1").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		w := serve(cached, "GET", "/album-1/likes", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"likes":4`)
		assert.Equal(t, SourceCache, w.Header().Get("X-Data-Source"))
	})

	t.Run("MissingAlbum", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS.*FROM albums").
			WithArgs("nope").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		w := serve(s, "GET", "/nope/likes", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
