// internal/storage/postgres/postgres.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/models"
	"soundhub/internal/storage"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PgStorage struct {
	conn *pgx.Conn
}

func NewPgStorage(conn *pgx.Conn) *PgStorage {
	return &PgStorage{conn: conn}
}

// songColumns is the select list shared by every song query. The
// uploader username is joined in so slugs can be generated from a single
// row, and the uploader name stays consistent with slug resolution.
const songColumns = `
    s.id, s.title, s.artist, s.uploaded_by, s.cover_art, s.file_path,
    s.plays, s.downloads, s.lyrics, s.genre_id, s.status, s.is_collaboration,
    s.created_at, s.updated_at, COALESCE(u.username, '')`

const songFrom = ` FROM songs s LEFT JOIN users u ON u.id = s.uploaded_by`

// visibleClause gates every public lookup: active, approved, NULL and
// empty statuses are all treated as visible.
const visibleClause = ` (s.status IS NULL OR s.status IN ('', 'active', 'approved'))`

func scanSong(row pgx.Row) (*models.Song, error) {
	var song models.Song
	err := row.Scan(
		&song.ID, &song.Title, &song.Artist, &song.UploadedBy, &song.CoverArt, &song.FilePath,
		&song.Plays, &song.Downloads, &song.Lyrics, &song.GenreID, &song.Status, &song.IsCollaboration,
		&song.CreatedAt, &song.UpdatedAt, &song.UploaderName,
	)
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (s *PgStorage) querySongs(ctx context.Context, caller, query string, args ...interface{}) ([]models.Song, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		utils.Logger.Error(caller+" - query failed", zap.Error(err))
		return nil, fmt.Errorf("%s - query failed: %w", caller, err)
	}
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			utils.Logger.Error(caller+" - rows.Scan failed", zap.Error(err))
			return nil, fmt.Errorf("%s - rows.Scan failed: %w", caller, err)
		}
		songs = append(songs, *song)
	}
	if err := rows.Err(); err != nil {
		utils.Logger.Error(caller+" - rows.Err failed", zap.Error(err))
		return nil, fmt.Errorf("%s - rows.Err failed: %w", caller, err)
	}
	return songs, nil
}

func (s *PgStorage) GetByID(ctx context.Context, id int) (*models.Song, error) {
	query := `SELECT` + songColumns + songFrom + ` WHERE s.id = $1`
	song, err := scanSong(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("PgStorage.GetByID - queryRow failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PgStorage.GetByID - queryRow failed: %w", err)
	}
	return song, nil
}

func (s *PgStorage) FindBySlugExact(ctx context.Context, title, artist string) (*models.Song, error) {
	query := `SELECT` + songColumns + songFrom + `
        WHERE` + visibleClause + `
          AND LOWER(TRIM(s.title)) = LOWER(TRIM($1))
          AND (LOWER(TRIM(COALESCE(s.artist, ''))) = LOWER(TRIM($2))
           OR LOWER(TRIM(COALESCE(u.username, ''))) = LOWER(TRIM($2)))
        ORDER BY s.plays DESC
        LIMIT 1`
	song, err := scanSong(s.conn.QueryRow(ctx, query, title, artist))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("PgStorage.FindBySlugExact - queryRow failed", zap.Error(err), zap.String("title", title), zap.String("artist", artist))
		return nil, fmt.Errorf("PgStorage.FindBySlugExact - queryRow failed: %w", err)
	}
	return song, nil
}

func (s *PgStorage) FindBySlugFuzzy(ctx context.Context, title, artist string) (*models.Song, error) {
	query := `SELECT` + songColumns + songFrom + `
        WHERE` + visibleClause + `
          AND s.title ILIKE $1
          AND (COALESCE(s.artist, '') ILIKE $2 OR COALESCE(u.username, '') ILIKE $2)
        ORDER BY s.plays DESC
        LIMIT 1`
	song, err := scanSong(s.conn.QueryRow(ctx, query, "%"+title+"%", "%"+artist+"%"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("PgStorage.FindBySlugFuzzy - queryRow failed", zap.Error(err), zap.String("title", title), zap.String("artist", artist))
		return nil, fmt.Errorf("PgStorage.FindBySlugFuzzy - queryRow failed: %w", err)
	}
	return song, nil
}

// FindByTitle is the last-resort tier: same-titled songs by different
// artists tie-break on play count only.
func (s *PgStorage) FindByTitle(ctx context.Context, title string) (*models.Song, error) {
	query := `SELECT` + songColumns + songFrom + `
        WHERE` + visibleClause + `
          AND LOWER(TRIM(s.title)) = LOWER(TRIM($1))
        ORDER BY s.plays DESC
        LIMIT 1`
	song, err := scanSong(s.conn.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrSongNotFound
		}
		utils.Logger.Error("PgStorage.FindByTitle - queryRow failed", zap.Error(err), zap.String("title", title))
		return nil, fmt.Errorf("PgStorage.FindByTitle - queryRow failed: %w", err)
	}
	return song, nil
}

func (s *PgStorage) ListByArtists(ctx context.Context, artistIDs []int, excludeSongID, limit int) ([]models.Song, error) {
	if len(artistIDs) == 0 {
		return nil, nil
	}
	query := `SELECT` + songColumns + songFrom + `
        WHERE` + visibleClause + `
          AND s.id <> $2
          AND (s.uploaded_by = ANY($1)
           OR s.id IN (SELECT sc.song_id FROM song_collaborators sc WHERE sc.user_id = ANY($1)))
        ORDER BY s.plays DESC, s.downloads DESC
        LIMIT $3`
	return s.querySongs(ctx, "PgStorage.ListByArtists", query, artistIDs, excludeSongID, limit)
}

func (s *PgStorage) ListByGenre(ctx context.Context, genreID, excludeSongID, limit int) ([]models.Song, error) {
	query := `SELECT` + songColumns + songFrom + `
        WHERE` + visibleClause + `
          AND s.genre_id = $1 AND s.id <> $2
        ORDER BY s.plays DESC
        LIMIT $3`
	return s.querySongs(ctx, "PgStorage.ListByGenre", query, genreID, excludeSongID, limit)
}

func (s *PgStorage) ListRandom(ctx context.Context, excludeSongID, limit int) ([]models.Song, error) {
	query := `SELECT` + songColumns + songFrom + `
        WHERE` + visibleClause + ` AND s.id <> $1
        ORDER BY RANDOM()
        LIMIT $2`
	return s.querySongs(ctx, "PgStorage.ListRandom", query, excludeSongID, limit)
}

func (s *PgStorage) ListByUser(ctx context.Context, userID int) ([]models.Song, error) {
	query := `SELECT` + songColumns + songFrom + `
        WHERE` + visibleClause + `
          AND (s.uploaded_by = $1
           OR s.id IN (SELECT sc.song_id FROM song_collaborators sc WHERE sc.user_id = $1))
        ORDER BY s.created_at DESC`
	return s.querySongs(ctx, "PgStorage.ListByUser", query, userID)
}

func (s *PgStorage) Charts(ctx context.Context, limit int) ([]models.Song, error) {
	query := `SELECT` + songColumns + songFrom + `
        WHERE` + visibleClause + `
        ORDER BY s.plays DESC
        LIMIT $1`
	return s.querySongs(ctx, "PgStorage.Charts", query, limit)
}

func (s *PgStorage) Trending(ctx context.Context, since time.Time, limit int) ([]models.Song, error) {
	query := `SELECT` + songColumns + songFrom + `
        WHERE` + visibleClause + ` AND s.created_at >= $1
        ORDER BY s.plays DESC, s.downloads DESC
        LIMIT $2`
	return s.querySongs(ctx, "PgStorage.Trending", query, since, limit)
}

func (s *PgStorage) NewReleases(ctx context.Context, limit int) ([]models.Song, error) {
	query := `SELECT` + songColumns + songFrom + `
        WHERE` + visibleClause + `
        ORDER BY s.created_at DESC
        LIMIT $1`
	return s.querySongs(ctx, "PgStorage.NewReleases", query, limit)
}

// IncrementPlays is a plain counter bump; concurrent increments may lose
// updates and that is accepted.
func (s *PgStorage) IncrementPlays(ctx context.Context, id int) (int, error) {
	var plays int
	err := s.conn.QueryRow(ctx, `UPDATE songs SET plays = plays + 1 WHERE id = $1 RETURNING plays`, id).Scan(&plays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, storage.ErrSongNotFound
		}
		utils.Logger.Error("PgStorage.IncrementPlays - queryRow failed", zap.Error(err), zap.Int("id", id))
		return 0, fmt.Errorf("PgStorage.IncrementPlays - queryRow failed: %w", err)
	}
	return plays, nil
}

func (s *PgStorage) IncrementDownloads(ctx context.Context, id int) (int, error) {
	var downloads int
	err := s.conn.QueryRow(ctx, `UPDATE songs SET downloads = downloads + 1 WHERE id = $1 RETURNING downloads`, id).Scan(&downloads)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, storage.ErrSongNotFound
		}
		utils.Logger.Error("PgStorage.IncrementDownloads - queryRow failed", zap.Error(err), zap.Int("id", id))
		return 0, fmt.Errorf("PgStorage.IncrementDownloads - queryRow failed: %w", err)
	}
	return downloads, nil
}

func (s *PgStorage) SetStatus(ctx context.Context, id int, status string) error {
	result, err := s.conn.Exec(ctx, `UPDATE songs SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, status, id)
	if err != nil {
		utils.Logger.Error("PgStorage.SetStatus - exec failed", zap.Error(err), zap.Int("id", id), zap.String("status", status))
		return fmt.Errorf("PgStorage.SetStatus - exec failed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return storage.ErrSongNotFound
	}
	return nil
}
