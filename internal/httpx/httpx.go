// Package httpx holds the JSON response helpers shared by every handler
// package.
package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/trisnanto/open-music-api-v1/internal/apperr"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}

// WriteDomainError maps a typed domain failure to its status code.
// Anything untyped is an internal fault: logged, reported as a plain 500.
func WriteDomainError(w http.ResponseWriter, service string, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindNotFound:
			WriteError(w, http.StatusNotFound, ae.Msg)
		case apperr.KindForbidden:
			WriteError(w, http.StatusForbidden, ae.Msg)
		default:
			log.Printf("%s: invariant: %v", service, err)
			WriteError(w, http.StatusInternalServerError, ae.Msg)
		}
		return
	}
	log.Printf("%s: %v", service, err)
	WriteError(w, http.StatusInternalServerError, "internal error")
}

// UserID extracts the pre-authenticated actor identity. The JWT middleware
// (or the gateway in front of us) is responsible for setting the header.
func UserID(r *http.Request) string {
	return r.Header.Get("X-User-Id")
}
