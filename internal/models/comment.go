// internal/models/comment.go
package models

import "time"

// Comment is a visitor comment on a song. Rating is nil for plain
// comments; rating-only submissions have empty Content.
type Comment struct {
	ID         int       `json:"id"`
	SongID     int       `json:"songId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	Rating     *int      `json:"rating"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RatingSummary rolls up the non-null ratings of a song's comments.
type RatingSummary struct {
	Average float64 `json:"average_rating"`
	Count   int     `json:"rating_count"`
}
