// internal/service/related.go
package service

import (
	"context"

	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/models"
	"soundhub/internal/storage"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// RelatedService picks the secondary content for a song page. Both
// selectors are non-essential features: a failed query logs a warning
// and yields an empty list, never an error on the page.
type RelatedService struct {
	songs      storage.SongStorage
	fetchLimit int
}

func NewRelatedService(songs storage.SongStorage, fetchLimit int) *RelatedService {
	return &RelatedService{songs: songs, fetchLimit: fetchLimit}
}

// Related returns other visible songs by any of the given artists,
// deduplicated by song id, highest plays then downloads first, current
// song excluded. Slugs come from each song's own uploader so they
// resolve back through the exact tier.
func (s *RelatedService) Related(ctx context.Context, song *models.Song, artistIDs []int) []models.SongListItem {
	songs, err := s.songs.ListByArtists(ctx, artistIDs, song.ID, s.fetchLimit)
	if err != nil {
		utils.Logger.Warn("RelatedService.Related - storage.ListByArtists failed, section empty", zap.Error(err), zap.Int("song_id", song.ID))
		return nil
	}
	return toListItems(songs)
}

// AlsoLike returns same-genre songs, falling back to a random pick when
// the song has no genre or the genre yields nothing. The random branch
// is deliberately non-deterministic.
func (s *RelatedService) AlsoLike(ctx context.Context, song *models.Song, limit int) []models.SongListItem {
	if song.GenreID != nil {
		songs, err := s.songs.ListByGenre(ctx, *song.GenreID, song.ID, limit)
		if err != nil {
			utils.Logger.Warn("RelatedService.AlsoLike - storage.ListByGenre failed, section empty", zap.Error(err), zap.Int("song_id", song.ID))
			return nil
		}
		if len(songs) > 0 {
			return toListItems(songs)
		}
	}

	songs, err := s.songs.ListRandom(ctx, song.ID, limit)
	if err != nil {
		utils.Logger.Warn("RelatedService.AlsoLike - storage.ListRandom failed, section empty", zap.Error(err), zap.Int("song_id", song.ID))
		return nil
	}
	return toListItems(songs)
}

// toListItems attaches canonical slugs and drops duplicate song ids
// while preserving order.
func toListItems(songs []models.Song) []models.SongListItem {
	var (
		items   []models.SongListItem
		seenIDs []int
	)
	for _, song := range songs {
		if slices.Contains(seenIDs, song.ID) {
			continue
		}
		seenIDs = append(seenIDs, song.ID)
		items = append(items, models.SongListItem{Song: song, Slug: CanonicalSlug(&song)})
	}
	return items
}
