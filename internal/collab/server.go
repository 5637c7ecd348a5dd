// Package collab manages collaborator grants: non-owner users permitted
// to work on a playlist's contents.
package collab

import (
	"context"

	"github.com/go-chi/chi/v5"
)

// OwnerVerifier gates grant management to the playlist owner. Implemented
// by the playlist server.
type OwnerVerifier interface {
	VerifyOwner(ctx context.Context, playlistID, actorID string) error
}

type Server struct {
	store  *Store
	owners OwnerVerifier
}

func NewServer(store *Store, owners OwnerVerifier) *Server {
	return &Server{
		store:  store,
		owners: owners,
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Post("/", s.handleAddCollaboration)
	r.Delete("/", s.handleDeleteCollaboration)

	return r
}
