// internal/models/song.go
package models

import "time"

// Visible song statuses. A song with any other status is hidden from
// resolution, charts and related lists.
const (
	StatusActive   = "active"
	StatusApproved = "approved"
	StatusDeleted  = "deleted"
)

type Song struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Artist          *string   `json:"artist"`
	UploadedBy      *int      `json:"uploadedBy"`
	CoverArt        *string   `json:"coverArt"`
	FilePath        *string   `json:"filePath"`
	Plays           int       `json:"plays"`
	Downloads       int       `json:"downloads"`
	Lyrics          *string   `json:"lyrics"`
	GenreID         *int      `json:"genreId"`
	Status          *string   `json:"status"`
	IsCollaboration bool      `json:"isCollaboration"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// UploaderName is joined in by the song queries so that slugs can be
	// built without a second lookup. Empty when uploaded_by is NULL.
	UploaderName string `json:"-"`
}

// ArtistText returns the free-text artist column, or "" when NULL.
func (s *Song) ArtistText() string {
	if s.Artist == nil {
		return ""
	}
	return *s.Artist
}

// SongListItem is a song row prepared for embedding in a list payload:
// the record plus its canonical slug.
type SongListItem struct {
	Song Song   `json:"song"`
	Slug string `json:"slug"`
}

type SongFilter struct {
	Title  *string
	Artist *string
}
