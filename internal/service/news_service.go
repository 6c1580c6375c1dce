// internal/service/news_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/models"
	"soundhub/internal/storage"

	"go.uber.org/zap"
)

type NewsService struct {
	news storage.NewsStorage
}

func NewNewsService(news storage.NewsStorage) *NewsService {
	return &NewsService{news: news}
}

// GetArticle resolves a news URL segment. A numeric segment resolves by
// id and reports the canonical slug path for a permanent redirect;
// otherwise the slug is looked up directly and the view is counted.
// Only published articles resolve.
func (s *NewsService) GetArticle(ctx context.Context, segment string) (*models.NewsArticle, string, error) {
	utils.Logger.Debug("NewsService.GetArticle", zap.String("segment", segment))

	if id, err := strconv.Atoi(segment); err == nil && id > 0 {
		article, err := s.news.GetNewsByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNewsNotFound) {
				return nil, "", storage.ErrNewsNotFound
			}
			return nil, "", fmt.Errorf("NewsService.GetArticle - storage.GetByID failed: %w", err)
		}
		return article, "/news/" + article.Slug, nil
	}

	article, err := s.news.GetBySlug(ctx, segment)
	if err != nil {
		if errors.Is(err, storage.ErrNewsNotFound) {
			return nil, "", storage.ErrNewsNotFound
		}
		return nil, "", fmt.Errorf("NewsService.GetArticle - storage.GetBySlug failed: %w", err)
	}

	// View counting is best effort; a failed bump never fails the page.
	if err := s.news.IncrementViews(ctx, article.ID); err != nil {
		utils.Logger.Warn("NewsService.GetArticle - view count update failed", zap.Error(err), zap.Int("id", article.ID))
	} else {
		article.Views++
	}
	return article, "", nil
}
