// internal/service/artist_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/models"
	"soundhub/internal/storage"

	"go.uber.org/zap"
)

type ArtistService struct {
	artists storage.ArtistStorage
	songs   storage.SongStorage
}

func NewArtistService(artists storage.ArtistStorage, songs storage.SongStorage) *ArtistService {
	return &ArtistService{artists: artists, songs: songs}
}

// Profile returns an artist's summary (stats rolled up on read) and the
// songs they uploaded or collaborated on, newest first. The song list is
// non-essential: a failed query yields a profile with no songs.
func (s *ArtistService) Profile(ctx context.Context, username string) (*models.ArtistSummary, []models.SongListItem, error) {
	utils.Logger.Debug("ArtistService.Profile", zap.String("username", username))

	artist, err := s.artists.GetSummaryByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrArtistNotFound) {
			return nil, nil, storage.ErrArtistNotFound
		}
		return nil, nil, fmt.Errorf("ArtistService.Profile - storage.GetSummaryByUsername failed: %w", err)
	}
	artist.Username = TitleCase(artist.Username)

	songs, err := s.songs.ListByUser(ctx, artist.ID)
	if err != nil {
		utils.Logger.Warn("ArtistService.Profile - song list failed, profile renders without songs", zap.Error(err), zap.Int("artist_id", artist.ID))
		return artist, nil, nil
	}
	return artist, toListItems(songs), nil
}

// SetActive toggles the artist's public visibility flag.
func (s *ArtistService) SetActive(ctx context.Context, id int, active bool) error {
	utils.Logger.Debug("ArtistService.SetActive", zap.Int("id", id), zap.Bool("active", active))

	if err := s.artists.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, storage.ErrArtistNotFound) {
			return storage.ErrArtistNotFound
		}
		utils.Logger.Error("ArtistService.SetActive - storage.SetActive failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("ArtistService.SetActive - storage.SetActive failed: %w", err)
	}
	utils.Logger.Info("ArtistService.SetActive - status updated", zap.Int("artist_id", id), zap.Bool("active", active))
	return nil
}
