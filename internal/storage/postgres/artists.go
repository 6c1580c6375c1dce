// internal/storage/postgres/artists.go
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

// artistColumns rolls the three profile stats up on read: songs the
// artist uploaded or collaborated on, and their play/download sums.
// Nothing is stored back.
const artistColumns = `
    u.id, u.username, u.avatar, u.bio, u.is_verified, u.is_active,
    u.twitter, u.instagram, u.website,
    (SELECT COUNT(*) FROM songs s
      WHERE s.uploaded_by = u.id
         OR s.id IN (SELECT sc.song_id FROM song_collaborators sc WHERE sc.user_id = u.id)),
    (SELECT COALESCE(SUM(s.plays), 0) FROM songs s
      WHERE s.uploaded_by = u.id
         OR s.id IN (SELECT sc.song_id FROM song_collaborators sc WHERE sc.user_id = u.id)),
    (SELECT COALESCE(SUM(s.downloads), 0) FROM songs s
      WHERE s.uploaded_by = u.id
         OR s.id IN (SELECT sc.song_id FROM song_collaborators sc WHERE sc.user_id = u.id))`

func scanArtist(row pgx.Row) (*models.ArtistSummary, error) {
	var artist models.ArtistSummary
	err := row.Scan(
		&artist.ID, &artist.Username, &artist.Avatar, &artist.Bio, &artist.IsVerified, &artist.IsActive,
		&artist.Twitter, &artist.Instagram, &artist.Website,
		&artist.TotalSongs, &artist.TotalPlays, &artist.TotalDownloads,
	)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *PgStorage) GetSummaryByID(ctx context.Context, id int) (*models.ArtistSummary, error) {
	query := `SELECT` + artistColumns + ` FROM users u WHERE u.id = $1`
	artist, err := scanArtist(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrArtistNotFound
		}
		utils.Logger.Error("PgStorage.GetSummaryByID - queryRow failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PgStorage.GetSummaryByID - queryRow failed: %w", err)
	}
	return artist, nil
}

func (s *PgStorage) GetSummaryByUsername(ctx context.Context, username string) (*models.ArtistSummary, error) {
	query := `SELECT` + artistColumns + ` FROM users u WHERE LOWER(TRIM(u.username)) = LOWER(TRIM($1))`
	artist, err := scanArtist(s.conn.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrArtistNotFound
		}
		utils.Logger.Error("PgStorage.GetSummaryByUsername - queryRow failed", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("PgStorage.GetSummaryByUsername - queryRow failed: %w", err)
	}
	return artist, nil
}

// ListCollaborators preserves added_at ascending order; every consumer
// relies on it as the canonical collaborator order.
func (s *PgStorage) ListCollaborators(ctx context.Context, songID int) ([]models.Collaborator, error) {
	query := `SELECT song_id, user_id, added_at FROM song_collaborators WHERE song_id = $1 ORDER BY added_at ASC`
	rows, err := s.conn.Query(ctx, query, songID)
	if err != nil {
		utils.Logger.Error("PgStorage.ListCollaborators - query failed", zap.Error(err), zap.Int("song_id", songID))
		return nil, fmt.Errorf("PgStorage.ListCollaborators - query failed: %w", err)
	}
	defer rows.Close()

	var collaborators []models.Collaborator
	for rows.Next() {
		var c models.Collaborator
		if err := rows.Scan(&c.SongID, &c.UserID, &c.AddedAt); err != nil {
			utils.Logger.Error("PgStorage.ListCollaborators - rows.Scan failed", zap.Error(err))
			return nil, fmt.Errorf("PgStorage.ListCollaborators - rows.Scan failed: %w", err)
		}
		collaborators = append(collaborators, c)
	}
	if err := rows.Err(); err != nil {
		utils.Logger.Error("PgStorage.ListCollaborators - rows.Err failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.ListCollaborators - rows.Err failed: %w", err)
	}
	return collaborators, nil
}

func (s *PgStorage) SetActive(ctx context.Context, id int, active bool) error {
	result, err := s.conn.Exec(ctx, `UPDATE users SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		utils.Logger.Error("PgStorage.SetActive - exec failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("PgStorage.SetActive - exec failed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return storage.ErrArtistNotFound
	}
	return nil
}
