// internal/storage/postgres/comments.go
package postgres

import (
	"context"
	"fmt"

	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/models"

	"go.uber.org/zap"
)

func (s *PgStorage) ListBySong(ctx context.Context, songID int, pagination *models.Pagination) ([]models.Comment, error) {
	query := `
        SELECT id, song_id, author_name, content, rating, created_at
        FROM comments
        WHERE song_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`
	rows, err := s.conn.Query(ctx, query, songID, pagination.GetLimit(), pagination.GetOffset())
	if err != nil {
		utils.Logger.Error("PgStorage.ListBySong - query failed", zap.Error(err), zap.Int("song_id", songID))
		return nil, fmt.Errorf("PgStorage.ListBySong - query failed: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.SongID, &c.AuthorName, &c.Content, &c.Rating, &c.CreatedAt); err != nil {
			utils.Logger.Error("PgStorage.ListBySong - rows.Scan failed", zap.Error(err))
			return nil, fmt.Errorf("PgStorage.ListBySong - rows.Scan failed: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		utils.Logger.Error("PgStorage.ListBySong - rows.Err failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.ListBySong - rows.Err failed: %w", err)
	}
	return comments, nil
}

func (s *PgStorage) Add(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	query := `
        INSERT INTO comments (song_id, author_name, content, rating)
        VALUES ($1, $2, $3, $4)
        RETURNING id, song_id, author_name, content, rating, created_at`
	var added models.Comment
	err := s.conn.QueryRow(ctx, query, comment.SongID, comment.AuthorName, comment.Content, comment.Rating).Scan(
		&added.ID, &added.SongID, &added.AuthorName, &added.Content, &added.Rating, &added.CreatedAt,
	)
	if err != nil {
		utils.Logger.Error("PgStorage.Add - queryRow failed", zap.Error(err), zap.Int("song_id", comment.SongID))
		return nil, fmt.Errorf("PgStorage.Add - queryRow failed: %w", err)
	}
	return &added, nil
}

func (s *PgStorage) RatingSummary(ctx context.Context, songID int) (*models.RatingSummary, error) {
	query := `
        SELECT COALESCE(AVG(rating), 0), COUNT(rating)
        FROM comments
        WHERE song_id = $1 AND rating IS NOT NULL`
	var summary models.RatingSummary
	if err := s.conn.QueryRow(ctx, query, songID).Scan(&summary.Average, &summary.Count); err != nil {
		utils.Logger.Error("PgStorage.RatingSummary - queryRow failed", zap.Error(err), zap.Int("song_id", songID))
		return nil, fmt.Errorf("PgStorage.RatingSummary - queryRow failed: %w", err)
	}
	return &summary, nil
}
