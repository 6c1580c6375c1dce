// internal/storage/storage.go
package storage

import (
	"context"
	"errors"
	"time"

	"soundhub/internal/models"
)

var (
	ErrSongNotFound   = errors.New("song not found")
	ErrArtistNotFound = errors.New("artist not found")
	ErrNewsNotFound   = errors.New("news article not found")
)

// SongStorage serves the song table. Every lookup that feeds public
// pages is restricted to visible statuses (active, approved, NULL, '').
type SongStorage interface {
	GetByID(ctx context.Context, id int) (*models.Song, error)
	// FindBySlugExact matches case-insensitive trimmed title equality and
	// artist equality against the artist column or the uploader username.
	FindBySlugExact(ctx context.Context, title, artist string) (*models.Song, error)
	// FindBySlugFuzzy relaxes both halves to substring matches.
	FindBySlugFuzzy(ctx context.Context, title, artist string) (*models.Song, error)
	// FindByTitle matches on title alone, ignoring the artist. Ties between
	// same-titled songs go to the highest play count.
	FindByTitle(ctx context.Context, title string) (*models.Song, error)
	ListByArtists(ctx context.Context, artistIDs []int, excludeSongID, limit int) ([]models.Song, error)
	ListByGenre(ctx context.Context, genreID, excludeSongID, limit int) ([]models.Song, error)
	ListRandom(ctx context.Context, excludeSongID, limit int) ([]models.Song, error)
	// ListByUser returns songs the user uploaded or collaborated on.
	ListByUser(ctx context.Context, userID int) ([]models.Song, error)
	Charts(ctx context.Context, limit int) ([]models.Song, error)
	Trending(ctx context.Context, since time.Time, limit int) ([]models.Song, error)
	NewReleases(ctx context.Context, limit int) ([]models.Song, error)
	IncrementPlays(ctx context.Context, id int) (int, error)
	IncrementDownloads(ctx context.Context, id int) (int, error)
	SetStatus(ctx context.Context, id int, status string) error
}

type ArtistStorage interface {
	GetSummaryByID(ctx context.Context, id int) (*models.ArtistSummary, error)
	GetSummaryByUsername(ctx context.Context, username string) (*models.ArtistSummary, error)
	// ListCollaborators returns the song's collaborator rows in added_at
	// ascending order; this is the canonical collaborator order.
	ListCollaborators(ctx context.Context, songID int) ([]models.Collaborator, error)
	SetActive(ctx context.Context, id int, active bool) error
}

type NewsStorage interface {
	GetBySlug(ctx context.Context, slug string) (*models.NewsArticle, error)
	GetNewsByID(ctx context.Context, id int) (*models.NewsArticle, error)
	ListPublished(ctx context.Context, category string, limit int) ([]models.NewsArticle, error)
	ListFeatured(ctx context.Context, limit int) ([]models.NewsArticle, error)
	Categories(ctx context.Context) ([]string, error)
	IncrementViews(ctx context.Context, id int) error
}

type CommentStorage interface {
	ListBySong(ctx context.Context, songID int, pagination *models.Pagination) ([]models.Comment, error)
	Add(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	RatingSummary(ctx context.Context, songID int) (*models.RatingSummary, error)
}
