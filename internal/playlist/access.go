package playlist

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/trisnanto/open-music-api-v1/internal/apperr"
)

// access is the resolved relationship between an actor and a playlist.
type access int

const (
	accessDenied access = iota
	accessOwner
	accessCollaborator
)

// resolveAccess decides what an actor may do with a playlist.
//
// Order matters: a missing playlist is always reported as not-found, never
// as a permission problem. An owner match short-circuits without touching
// the collaboration registry. On the non-owner path, a registry lookup
// fault is deliberately collapsed into a plain denial so callers cannot
// distinguish "no grant" from "grant lookup failed".
func (s *Server) resolveAccess(ctx context.Context, playlistID, actorID string) (access, error) {
	owner, err := s.store.GetOwner(ctx, playlistID)
	if errors.Is(err, pgx.ErrNoRows) {
		return accessDenied, apperr.NotFound("playlist not found")
	}
	if err != nil {
		return accessDenied, err
	}

	if owner == actorID {
		return accessOwner, nil
	}

	ok, err := s.collabs.IsCollaborator(ctx, playlistID, actorID)
	if err != nil {
		log.Printf("playlist-service: collaborator lookup: %v", err)
		return accessDenied, nil
	}
	if !ok {
		return accessDenied, nil
	}
	return accessCollaborator, nil
}

// VerifyAccess succeeds when the actor owns the playlist or holds a
// collaborator grant.
func (s *Server) VerifyAccess(ctx context.Context, playlistID, actorID string) error {
	lvl, err := s.resolveAccess(ctx, playlistID, actorID)
	if err != nil {
		return err
	}
	if lvl == accessDenied {
		return apperr.Forbidden("not permitted")
	}
	return nil
}

// VerifyOwner succeeds only on an exact owner match. Destructive
// operations (playlist deletion, collaboration management) use this.
func (s *Server) VerifyOwner(ctx context.Context, playlistID, actorID string) error {
	owner, err := s.store.GetOwner(ctx, playlistID)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("playlist not found")
	}
	if err != nil {
		return err
	}
	if owner != actorID {
		return apperr.Forbidden("not permitted")
	}
	return nil
}
