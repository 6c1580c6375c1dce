// internal/service/resolver.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/lib/slug"
	"soundhub/internal/models"
	"soundhub/internal/storage"

	"go.uber.org/zap"
)

// ResolverService turns "<title>-by-<artist>" URL slugs back into song
// records. Matching is a three-tier fallback, loosest last; within each
// tier ties go to the highest play count.
type ResolverService struct {
	songs storage.SongStorage
}

func NewResolverService(songs storage.SongStorage) *ResolverService {
	return &ResolverService{songs: songs}
}

// ResolveSlug resolves a content slug to a song. A slug without the
// "-by-" separator never matches. Returns storage.ErrSongNotFound when
// every tier misses.
func (s *ResolverService) ResolveSlug(ctx context.Context, contentSlug string) (*models.Song, error) {
	utils.Logger.Debug("ResolverService.ResolveSlug", zap.String("slug", contentSlug))

	title, artist, ok := slug.Split(contentSlug)
	if !ok {
		return nil, storage.ErrSongNotFound
	}

	// Tier 1: exact title and artist (artist column or uploader username).
	song, err := s.songs.FindBySlugExact(ctx, title, artist)
	if err == nil {
		return song, nil
	}
	if !errors.Is(err, storage.ErrSongNotFound) {
		return nil, fmt.Errorf("ResolverService.ResolveSlug - exact tier failed: %w", err)
	}

	// Tier 2: substring match on both halves.
	song, err = s.songs.FindBySlugFuzzy(ctx, title, artist)
	if err == nil {
		return song, nil
	}
	if !errors.Is(err, storage.ErrSongNotFound) {
		return nil, fmt.Errorf("ResolverService.ResolveSlug - fuzzy tier failed: %w", err)
	}

	// Tier 3: title only, ignoring the artist. Tried for every possible
	// "-by-" split so titles containing the word "by" still resolve.
	for _, candidate := range slug.Titles(contentSlug) {
		song, err = s.songs.FindByTitle(ctx, candidate)
		if err == nil {
			return song, nil
		}
		if !errors.Is(err, storage.ErrSongNotFound) {
			return nil, fmt.Errorf("ResolverService.ResolveSlug - title tier failed: %w", err)
		}
	}

	return nil, storage.ErrSongNotFound
}

// ResolveID looks a song up by numeric id and reports its canonical slug
// path. Callers must answer with a permanent redirect to that path so
// each song keeps a single canonical URL.
func (s *ResolverService) ResolveID(ctx context.Context, id int) (*models.Song, string, error) {
	song, err := s.songs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			return nil, "", storage.ErrSongNotFound
		}
		return nil, "", fmt.Errorf("ResolverService.ResolveID - storage.GetByID failed: %w", err)
	}
	return song, CanonicalPath(song), nil
}

// IsNumericID reports whether a path segment is a bare song id rather
// than a slug.
func IsNumericID(segment string) (int, bool) {
	id, err := strconv.Atoi(segment)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CanonicalSlug builds the one canonical slug for a song. The artist
// half is the uploader's username when there is one, because exact-tier
// resolution matches against it; the free-text artist column is only a
// fallback for ownerless records.
func CanonicalSlug(song *models.Song) string {
	artist := song.UploaderName
	if artist == "" {
		artist = song.ArtistText()
	}
	return slug.Make(song.Title, artist)
}

func CanonicalPath(song *models.Song) string {
	return "/songs/" + CanonicalSlug(song)
}
