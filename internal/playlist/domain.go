package playlist

import "time"

const (
	actionAdd    = "add"
	actionDelete = "delete"
)

type Playlist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary is the list shape: playlists the actor owns or collaborates on.
type Summary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"ownerId"`
}

type SongEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

type Detail struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	OwnerID string      `json:"ownerId"`
	Songs   []SongEntry `json:"songs"`
}

// Activity is one append-only log entry for a playlist-song mutation.
type Activity struct {
	ID         string
	PlaylistID string
	SongID     string
	UserID     string
	Action     string
	Time       time.Time
}

// ActivityRecord is the retrieval shape, song title resolved.
type ActivityRecord struct {
	UserID string    `json:"userId"`
	Title  string    `json:"title"`
	Action string    `json:"action"`
	Time   time.Time `json:"time"`
}
