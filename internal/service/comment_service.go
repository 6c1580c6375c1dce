// internal/service/comment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/models"
	"soundhub/internal/storage"

	"go.uber.org/zap"
)

var (
	ErrEmptyComment  = errors.New("comment content is required")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrMissingAuthor = errors.New("author name is required")
)

type CommentService struct {
	comments storage.CommentStorage
	songs    storage.SongStorage
}

func NewCommentService(comments storage.CommentStorage, songs storage.SongStorage) *CommentService {
	return &CommentService{comments: comments, songs: songs}
}

// List returns a page of a song's comments, newest first, together with
// the song's rolled-up rating summary. The summary always covers all
// ratings regardless of the requested page.
func (s *CommentService) List(ctx context.Context, songID int, pagination *models.Pagination) ([]models.Comment, *models.RatingSummary, error) {
	utils.Logger.Debug("CommentService.List", zap.Int("song_id", songID), zap.Any("pagination", pagination))

	comments, err := s.comments.ListBySong(ctx, songID, pagination)
	if err != nil {
		utils.Logger.Error("CommentService.List - storage.ListBySong failed", zap.Error(err), zap.Int("song_id", songID))
		return nil, nil, fmt.Errorf("CommentService.List - storage.ListBySong failed: %w", err)
	}

	summary, err := s.comments.RatingSummary(ctx, songID)
	if err != nil {
		utils.Logger.Error("CommentService.List - storage.RatingSummary failed", zap.Error(err), zap.Int("song_id", songID))
		return nil, nil, fmt.Errorf("CommentService.List - storage.RatingSummary failed: %w", err)
	}
	return comments, summary, nil
}

func (s *CommentService) AddComment(ctx context.Context, songID int, author, content string) (*models.Comment, error) {
	author = strings.TrimSpace(author)
	content = strings.TrimSpace(content)
	if author == "" {
		return nil, ErrMissingAuthor
	}
	if content == "" {
		return nil, ErrEmptyComment
	}

	if _, err := s.songs.GetByID(ctx, songID); err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			return nil, storage.ErrSongNotFound
		}
		return nil, fmt.Errorf("CommentService.AddComment - song lookup failed: %w", err)
	}

	added, err := s.comments.Add(ctx, &models.Comment{SongID: songID, AuthorName: author, Content: content})
	if err != nil {
		utils.Logger.Error("CommentService.AddComment - storage.Add failed", zap.Error(err), zap.Int("song_id", songID))
		return nil, fmt.Errorf("CommentService.AddComment - storage.Add failed: %w", err)
	}
	utils.Logger.Info("CommentService.AddComment - comment added", zap.Int("song_id", songID), zap.Int("comment_id", added.ID))
	return added, nil
}

func (s *CommentService) Rate(ctx context.Context, songID int, author string, rating int) error {
	author = strings.TrimSpace(author)
	if author == "" {
		return ErrMissingAuthor
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	if _, err := s.songs.GetByID(ctx, songID); err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			return storage.ErrSongNotFound
		}
		return fmt.Errorf("CommentService.Rate - song lookup failed: %w", err)
	}

	if _, err := s.comments.Add(ctx, &models.Comment{SongID: songID, AuthorName: author, Rating: &rating}); err != nil {
		utils.Logger.Error("CommentService.Rate - storage.Add failed", zap.Error(err), zap.Int("song_id", songID))
		return fmt.Errorf("CommentService.Rate - storage.Add failed: %w", err)
	}
	utils.Logger.Info("CommentService.Rate - rating added", zap.Int("song_id", songID), zap.Int("rating", rating))
	return nil
}
