// internal/service/homepage.go
package service

import (
	"context"
	"time"

	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/models"
	"soundhub/internal/storage"

	"go.uber.org/zap"
)

// HomepageOptions sizes the homepage sections.
type HomepageOptions struct {
	ChartSize       int
	TrendingWindow  time.Duration
	NewReleaseCount int
	NewsPerCategory int
	TickerSize      int
}

// HomepageService assembles the visitor homepage from a fixed sequence
// of independent queries. Each section degrades to empty on failure; the
// page itself always renders.
type HomepageService struct {
	songs storage.SongStorage
	news  storage.NewsStorage
	opts  HomepageOptions
}

func NewHomepageService(songs storage.SongStorage, news storage.NewsStorage, opts HomepageOptions) *HomepageService {
	return &HomepageService{songs: songs, news: news, opts: opts}
}

func (s *HomepageService) Build(ctx context.Context) *models.Homepage {
	page := &models.Homepage{}

	charts, err := s.songs.Charts(ctx, s.opts.ChartSize)
	if err != nil {
		utils.Logger.Warn("HomepageService.Build - charts query failed, section empty", zap.Error(err))
	} else {
		page.Charts = toListItems(charts)
	}

	trending, err := s.songs.Trending(ctx, time.Now().Add(-s.opts.TrendingWindow), s.opts.ChartSize)
	if err != nil {
		utils.Logger.Warn("HomepageService.Build - trending query failed, section empty", zap.Error(err))
	} else {
		page.Trending = toListItems(trending)
	}

	releases, err := s.songs.NewReleases(ctx, s.opts.NewReleaseCount)
	if err != nil {
		utils.Logger.Warn("HomepageService.Build - new releases query failed, section empty", zap.Error(err))
	} else {
		page.NewReleases = toListItems(releases)
	}

	// News is optional end to end: a site without a news table simply has
	// no news sections on the homepage.
	categories, err := s.news.Categories(ctx)
	if err != nil {
		utils.Logger.Warn("HomepageService.Build - news categories query failed, news omitted", zap.Error(err))
	} else {
		for _, category := range categories {
			articles, err := s.news.ListPublished(ctx, category, s.opts.NewsPerCategory)
			if err != nil {
				utils.Logger.Warn("HomepageService.Build - news section query failed, section omitted", zap.Error(err), zap.String("category", category))
				continue
			}
			if len(articles) == 0 {
				continue
			}
			page.News = append(page.News, models.NewsSection{Category: category, Articles: articles})
		}
	}

	ticker, err := s.news.ListFeatured(ctx, s.opts.TickerSize)
	if err != nil {
		utils.Logger.Warn("HomepageService.Build - ticker query failed, section omitted", zap.Error(err))
	} else {
		page.Ticker = ticker
	}

	return page
}
