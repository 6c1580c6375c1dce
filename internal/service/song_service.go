// internal/service/song_service.go
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

type SongService struct {
	songs storage.SongStorage
}

func NewSongService(songs storage.SongStorage) *SongService {
	return &SongService{songs: songs}
}

func (s *SongService) GetSong(ctx context.Context, id int) (*models.Song, error) {
	utils.Logger.Debug("SongService.GetSong", zap.Int("id", id))

	song, err := s.songs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("SongService.GetSong - storage.GetByID failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("SongService.GetSong - storage.GetByID failed: %w", err)
	}
	return song, nil
}

// RegisterPlay bumps the play counter and returns the new total.
func (s *SongService) RegisterPlay(ctx context.Context, id int) (int, error) {
	utils.Logger.Debug("SongService.RegisterPlay", zap.Int("id", id))

	plays, err := s.songs.IncrementPlays(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			return 0, storage.ErrSongNotFound
		}
		utils.Logger.Error("SongService.RegisterPlay - storage.IncrementPlays failed", zap.Error(err), zap.Int("id", id))
		return 0, fmt.Errorf("SongService.RegisterPlay - storage.IncrementPlays failed: %w", err)
	}
	return plays, nil
}

// RegisterDownload counts the download and returns the song so the
// handler can serve its file path.
func (s *SongService) RegisterDownload(ctx context.Context, id int) (*models.Song, error) {
	utils.Logger.Debug("SongService.RegisterDownload", zap.Int("id", id))

	song, err := s.songs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("SongService.RegisterDownload - storage.GetByID failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("SongService.RegisterDownload - storage.GetByID failed: %w", err)
	}

	downloads, err := s.songs.IncrementDownloads(ctx, id)
	if err != nil {
		utils.Logger.Error("SongService.RegisterDownload - storage.IncrementDownloads failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("SongService.RegisterDownload - storage.IncrementDownloads failed: %w", err)
	}
	song.Downloads = downloads
	return song, nil
}

// DeleteSong soft-deletes: the row stays, the status hides it from every
// public lookup.
func (s *SongService) DeleteSong(ctx context.Context, id int) error {
	utils.Logger.Debug("SongService.DeleteSong", zap.Int("id", id))

	err := s.songs.SetStatus(ctx, id, models.StatusDeleted)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			return storage.ErrSongNotFound
		}
		utils.Logger.Error("SongService.DeleteSong - storage.SetStatus failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("SongService.DeleteSong - storage.SetStatus failed: %w", err)
	}
	utils.Logger.Info("SongService.DeleteSong - song deleted", zap.Int("song_id", id))
	return nil
}
