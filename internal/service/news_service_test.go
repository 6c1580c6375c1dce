package service_test

import (
	"context"
	"testing"

	"soundhub/internal/models"
	"soundhub/internal/service"
	"soundhub/internal/storage"
	mock_storage "soundhub/internal/storage/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestNewsService_GetArticle_BySlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNews := mock_storage.NewMockNewsStorage(ctrl)
	mockNews.EXPECT().GetBySlug(gomock.Any(), "festival-lineup").Return(&models.NewsArticle{ID: 3, Slug: "festival-lineup", Views: 10}, nil)
	mockNews.EXPECT().IncrementViews(gomock.Any(), 3).Return(nil)

	newsService := service.NewNewsService(mockNews)
	article, redirect, err := newsService.GetArticle(context.Background(), "festival-lineup")

	assert.NoError(t, err)
	assert.Empty(t, redirect)
	assert.Equal(t, 11, article.Views)
}

func TestNewsService_GetArticle_ByIDRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNews := mock_storage.NewMockNewsStorage(ctrl)
	mockNews.EXPECT().GetNewsByID(gomock.Any(), 3).Return(&models.NewsArticle{ID: 3, Slug: "festival-lineup"}, nil)

	newsService := service.NewNewsService(mockNews)
	_, redirect, err := newsService.GetArticle(context.Background(), "3")

	assert.NoError(t, err)
	assert.Equal(t, "/news/festival-lineup", redirect)
}

func TestNewsService_GetArticle_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNews := mock_storage.NewMockNewsStorage(ctrl)
	mockNews.EXPECT().GetBySlug(gomock.Any(), "missing").Return(nil, storage.ErrNewsNotFound)

	newsService := service.NewNewsService(mockNews)
	_, _, err := newsService.GetArticle(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrNewsNotFound)
}

func TestNewsService_GetArticle_ViewCountFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNews := mock_storage.NewMockNewsStorage(ctrl)
	mockNews.EXPECT().GetBySlug(gomock.Any(), "festival-lineup").Return(&models.NewsArticle{ID: 3, Slug: "festival-lineup", Views: 10}, nil)
	mockNews.EXPECT().IncrementViews(gomock.Any(), 3).Return(storage.ErrNewsNotFound)

	newsService := service.NewNewsService(mockNews)
	article, _, err := newsService.GetArticle(context.Background(), "festival-lineup")

	assert.NoError(t, err)
	assert.Equal(t, 10, article.Views)
}
