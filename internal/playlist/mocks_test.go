package playlist

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreatePlaylist(ctx context.Context, name, ownerID string) (string, error) {
	args := m.Called(ctx, name, ownerID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) ListPlaylists(ctx context.Context, userID string) ([]Summary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Summary), args.Error(1)
}

func (m *MockStore) DeletePlaylist(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) GetOwner(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockStore) AddSong(ctx context.Context, playlistID, songID string) (string, error) {
	args := m.Called(ctx, playlistID, songID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) RemoveSong(ctx context.Context, playlistID, songID string) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *MockStore) GetPlaylistWithSongs(ctx context.Context, id string) (*Detail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Detail), args.Error(1)
}

func (m *MockStore) AppendActivity(ctx context.Context, a Activity) (string, error) {
	args := m.Called(ctx, a)
	return args.String(0), args.Error(1)
}

func (m *MockStore) ListActivities(ctx context.Context, playlistID string) ([]ActivityRecord, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ActivityRecord), args.Error(1)
}

type MockCollabs struct {
	mock.Mock
}

func (m *MockCollabs) IsCollaborator(ctx context.Context, playlistID, userID string) (bool, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.Bool(0), args.Error(1)
}

type MockSongs struct {
	mock.Mock
}

func (m *MockSongs) Exists(ctx context.Context, songID string) error {
	args := m.Called(ctx, songID)
	return args.Error(0)
}
