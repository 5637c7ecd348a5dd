package song

// Song is a catalog entry. Duration and AlbumID are optional on ingest.
type Song struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  *int    `json:"duration,omitempty"`
	AlbumID   *string `json:"albumId,omitempty"`
}

// Summary is the shape used by list endpoints and playlist expansions.
type Summary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}
