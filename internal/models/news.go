// internal/models/news.go
package models

import "time"

type NewsArticle struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Content     *string   `json:"content,omitempty"`
	Excerpt     *string   `json:"excerpt"`
	Image       *string   `json:"image"`
	AuthorID    *int      `json:"authorId"`
	IsPublished bool      `json:"isPublished"`
	Featured    bool      `json:"featured"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}
