// internal/service/aggregator.go
package service

import (
	"context"
	"strings"
	"unicode"

	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/models"
	"soundhub/internal/storage"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

const unknownArtist = "Unknown Artist"

// AggregatorService computes a song's contributing artists: uploader
// first, then collaborators in added_at order, deduplicated by id and by
// lower-trimmed name. Lookups that fail degrade to the song's free-text
// artist field; aggregation itself never fails a page.
type AggregatorService struct {
	artists storage.ArtistStorage
}

func NewAggregatorService(artists storage.ArtistStorage) *AggregatorService {
	return &AggregatorService{artists: artists}
}

// Aggregate is idempotent: the same song always yields the same ordered
// artist list and display name.
func (s *AggregatorService) Aggregate(ctx context.Context, song *models.Song) *models.Aggregation {
	collaborators, err := s.artists.ListCollaborators(ctx, song.ID)
	if err != nil {
		utils.Logger.Warn("AggregatorService.Aggregate - collaborator lookup failed, continuing without", zap.Error(err), zap.Int("song_id", song.ID))
		collaborators = nil
	}

	var (
		artists   []models.ArtistSummary
		seenIDs   []int
		seenNames []string
	)
	add := func(summary *models.ArtistSummary) {
		name := strings.ToLower(strings.TrimSpace(summary.Username))
		if slices.Contains(seenIDs, summary.ID) || slices.Contains(seenNames, name) {
			return
		}
		seenIDs = append(seenIDs, summary.ID)
		seenNames = append(seenNames, name)
		entry := *summary
		entry.Username = TitleCase(entry.Username)
		artists = append(artists, entry)
	}

	if song.UploadedBy != nil {
		uploader, err := s.artists.GetSummaryByID(ctx, *song.UploadedBy)
		if err != nil {
			utils.Logger.Warn("AggregatorService.Aggregate - uploader lookup failed, continuing without", zap.Error(err), zap.Int("user_id", *song.UploadedBy))
		} else {
			add(uploader)
		}
	}

	for _, collaborator := range collaborators {
		summary, err := s.artists.GetSummaryByID(ctx, collaborator.UserID)
		if err != nil {
			utils.Logger.Warn("AggregatorService.Aggregate - collaborator lookup failed, skipping", zap.Error(err), zap.Int("user_id", collaborator.UserID))
			continue
		}
		add(summary)
	}

	names := make([]string, 0, len(artists))
	for _, artist := range artists {
		names = append(names, artist.Username)
	}
	displayName := strings.Join(names, " x ")
	if displayName == "" {
		displayName = song.ArtistText()
	}
	if displayName == "" {
		displayName = unknownArtist
	}

	return &models.Aggregation{
		Artists:         artists,
		DisplayName:     displayName,
		IsCollaboration: len(collaborators) > 0,
	}
}

// TitleCase uppercases the first letter of each space-separated word and
// lowercases the rest: "dj max" becomes "Dj Max".
func TitleCase(name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
