// internal/storage/postgres/news.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/models"
	"soundhub/internal/storage"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const newsColumns = `
    n.id, n.title, n.slug, n.category, n.content, n.excerpt, n.image,
    n.author_id, n.is_published, n.featured, n.views, n.created_at`

func scanNews(row pgx.Row) (*models.NewsArticle, error) {
	var article models.NewsArticle
	err := row.Scan(
		&article.ID, &article.Title, &article.Slug, &article.Category, &article.Content,
		&article.Excerpt, &article.Image, &article.AuthorID, &article.IsPublished,
		&article.Featured, &article.Views, &article.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *PgStorage) queryNews(ctx context.Context, caller, query string, args ...interface{}) ([]models.NewsArticle, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		utils.Logger.Error(caller+" - query failed", zap.Error(err))
		return nil, fmt.Errorf("%s - query failed: %w", caller, err)
	}
	defer rows.Close()

	var articles []models.NewsArticle
	for rows.Next() {
		article, err := scanNews(rows)
		if err != nil {
			utils.Logger.Error(caller+" - rows.Scan failed", zap.Error(err))
			return nil, fmt.Errorf("%s - rows.Scan failed: %w", caller, err)
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		utils.Logger.Error(caller+" - rows.Err failed", zap.Error(err))
		return nil, fmt.Errorf("%s - rows.Err failed: %w", caller, err)
	}
	return articles, nil
}

func (s *PgStorage) GetBySlug(ctx context.Context, slug string) (*models.NewsArticle, error) {
	query := `SELECT` + newsColumns + ` FROM news n WHERE n.slug = $1 AND n.is_published`
	article, err := scanNews(s.conn.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNewsNotFound
		}
		utils.Logger.Error("PgStorage.GetBySlug - queryRow failed", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("PgStorage.GetBySlug - queryRow failed: %w", err)
	}
	return article, nil
}

func (s *PgStorage) GetNewsByID(ctx context.Context, id int) (*models.NewsArticle, error) {
	query := `SELECT` + newsColumns + ` FROM news n WHERE n.id = $1 AND n.is_published`
	article, err := scanNews(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNewsNotFound
		}
		utils.Logger.Error("PgStorage.GetByID - queryRow failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PgStorage.GetByID - queryRow failed: %w", err)
	}
	return article, nil
}

func (s *PgStorage) ListPublished(ctx context.Context, category string, limit int) ([]models.NewsArticle, error) {
	query := `SELECT` + newsColumns + `
        FROM news n
        WHERE n.is_published AND n.category = $1
        ORDER BY n.created_at DESC
        LIMIT $2`
	return s.queryNews(ctx, "PgStorage.ListPublished", query, category, limit)
}

func (s *PgStorage) ListFeatured(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	query := `SELECT` + newsColumns + `
        FROM news n
        WHERE n.is_published AND n.featured
        ORDER BY n.created_at DESC
        LIMIT $1`
	return s.queryNews(ctx, "PgStorage.ListFeatured", query, limit)
}

func (s *PgStorage) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.conn.Query(ctx, `SELECT DISTINCT category FROM news WHERE is_published ORDER BY category`)
	if err != nil {
		utils.Logger.Error("PgStorage.Categories - query failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.Categories - query failed: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			utils.Logger.Error("PgStorage.Categories - rows.Scan failed", zap.Error(err))
			return nil, fmt.Errorf("PgStorage.Categories - rows.Scan failed: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		utils.Logger.Error("PgStorage.Categories - rows.Err failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.Categories - rows.Err failed: %w", err)
	}
	return categories, nil
}

func (s *PgStorage) IncrementViews(ctx context.Context, id int) error {
	result, err := s.conn.Exec(ctx, `UPDATE news SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		utils.Logger.Error("PgStorage.IncrementViews - exec failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("PgStorage.IncrementViews - exec failed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return storage.ErrNewsNotFound
	}
	return nil
}
