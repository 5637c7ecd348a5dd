package album

import (
	"github.com/trisnanto/open-music-api-v1/internal/song"
)

type Album struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Year  int            `json:"year"`
	Songs []song.Summary `json:"songs"`
}
