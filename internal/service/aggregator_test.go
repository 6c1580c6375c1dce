package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"soundhub/internal/models"
	"soundhub/internal/service"
	mock_storage "soundhub/internal/storage/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func intPointer(i int) *int {
	return &i
}

func stringPointer(s string) *string {
	return &s
}

func collaborator(songID, userID int, addedAt time.Time) models.Collaborator {
	return models.Collaborator{SongID: songID, UserID: userID, AddedAt: addedAt}
}

func TestAggregatorService_Aggregate(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name            string
		song            *models.Song
		mockArtistsFn   func(m *mock_storage.MockArtistStorage)
		expectedNames   []string
		expectedDisplay string
		expectedCollab  bool
	}{
		{
			name: "Uploader plus one collaborator",
			song: &models.Song{ID: 42, Title: "Night Walk", UploadedBy: intPointer(7)},
			mockArtistsFn: func(m *mock_storage.MockArtistStorage) {
				m.EXPECT().ListCollaborators(gomock.Any(), 42).Return([]models.Collaborator{collaborator(42, 9, base)}, nil)
				m.EXPECT().GetSummaryByID(gomock.Any(), 7).Return(&models.ArtistSummary{ID: 7, Username: "nova"}, nil)
				m.EXPECT().GetSummaryByID(gomock.Any(), 9).Return(&models.ArtistSummary{ID: 9, Username: "Echo"}, nil)
			},
			expectedNames:   []string{"Nova", "Echo"},
			expectedDisplay: "Nova x Echo",
			expectedCollab:  true,
		},
		{
			name: "Uploader also listed as collaborator counted once",
			song: &models.Song{ID: 10, UploadedBy: intPointer(7)},
			mockArtistsFn: func(m *mock_storage.MockArtistStorage) {
				m.EXPECT().ListCollaborators(gomock.Any(), 10).Return([]models.Collaborator{
					collaborator(10, 7, base),
					collaborator(10, 9, base.Add(time.Minute)),
				}, nil)
				m.EXPECT().GetSummaryByID(gomock.Any(), 7).Return(&models.ArtistSummary{ID: 7, Username: "nova"}, nil).Times(2)
				m.EXPECT().GetSummaryByID(gomock.Any(), 9).Return(&models.ArtistSummary{ID: 9, Username: "Echo"}, nil)
			},
			expectedNames:   []string{"Nova", "Echo"},
			expectedDisplay: "Nova x Echo",
			expectedCollab:  true,
		},
		{
			name: "Duplicate name under a different id skipped",
			song: &models.Song{ID: 11, UploadedBy: intPointer(7)},
			mockArtistsFn: func(m *mock_storage.MockArtistStorage) {
				m.EXPECT().ListCollaborators(gomock.Any(), 11).Return([]models.Collaborator{collaborator(11, 8, base)}, nil)
				m.EXPECT().GetSummaryByID(gomock.Any(), 7).Return(&models.ArtistSummary{ID: 7, Username: "Nova"}, nil)
				m.EXPECT().GetSummaryByID(gomock.Any(), 8).Return(&models.ArtistSummary{ID: 8, Username: " nova "}, nil)
			},
			expectedNames:   []string{"Nova"},
			expectedDisplay: "Nova",
			expectedCollab:  true,
		},
		{
			name: "No collaborators, uploader only",
			song: &models.Song{ID: 12, UploadedBy: intPointer(7)},
			mockArtistsFn: func(m *mock_storage.MockArtistStorage) {
				m.EXPECT().ListCollaborators(gomock.Any(), 12).Return(nil, nil)
				m.EXPECT().GetSummaryByID(gomock.Any(), 7).Return(&models.ArtistSummary{ID: 7, Username: "nova"}, nil)
			},
			expectedNames:   []string{"Nova"},
			expectedDisplay: "Nova",
			expectedCollab:  false,
		},
		{
			name: "Uploader lookup fails, artist text fallback",
			song: &models.Song{ID: 13, UploadedBy: intPointer(7), Artist: stringPointer("MC Fallback")},
			mockArtistsFn: func(m *mock_storage.MockArtistStorage) {
				m.EXPECT().ListCollaborators(gomock.Any(), 13).Return(nil, nil)
				m.EXPECT().GetSummaryByID(gomock.Any(), 7).Return(nil, errors.New("storage error"))
			},
			expectedNames:   []string{},
			expectedDisplay: "MC Fallback",
			expectedCollab:  false,
		},
		{
			name: "Nothing available, unknown artist",
			song: &models.Song{ID: 14},
			mockArtistsFn: func(m *mock_storage.MockArtistStorage) {
				m.EXPECT().ListCollaborators(gomock.Any(), 14).Return(nil, nil)
			},
			expectedNames:   []string{},
			expectedDisplay: "Unknown Artist",
			expectedCollab:  false,
		},
		{
			name: "Collaborator table failure degrades to uploader",
			song: &models.Song{ID: 15, UploadedBy: intPointer(7)},
			mockArtistsFn: func(m *mock_storage.MockArtistStorage) {
				m.EXPECT().ListCollaborators(gomock.Any(), 15).Return(nil, errors.New("storage error"))
				m.EXPECT().GetSummaryByID(gomock.Any(), 7).Return(&models.ArtistSummary{ID: 7, Username: "nova"}, nil)
			},
			expectedNames:   []string{"Nova"},
			expectedDisplay: "Nova",
			expectedCollab:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockArtists := mock_storage.NewMockArtistStorage(ctrl)
			tc.mockArtistsFn(mockArtists)

			aggregator := service.NewAggregatorService(mockArtists)
			result := aggregator.Aggregate(context.Background(), tc.song)

			names := make([]string, 0, len(result.Artists))
			for _, artist := range result.Artists {
				names = append(names, artist.Username)
			}
			assert.Equal(t, tc.expectedNames, names)
			assert.Equal(t, tc.expectedDisplay, result.DisplayName)
			assert.Equal(t, tc.expectedCollab, result.IsCollaboration)

			// No duplicate ids ever.
			seen := map[int]bool{}
			for _, artist := range result.Artists {
				assert.False(t, seen[artist.ID], "duplicate artist id %d", artist.ID)
				seen[artist.ID] = true
			}
		})
	}
}

func TestAggregatorService_Idempotence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	song := &models.Song{ID: 42, UploadedBy: intPointer(7)}

	mockArtists := mock_storage.NewMockArtistStorage(ctrl)
	mockArtists.EXPECT().ListCollaborators(gomock.Any(), 42).Return([]models.Collaborator{collaborator(42, 9, base)}, nil).Times(2)
	mockArtists.EXPECT().GetSummaryByID(gomock.Any(), 7).Return(&models.ArtistSummary{ID: 7, Username: "nova"}, nil).Times(2)
	mockArtists.EXPECT().GetSummaryByID(gomock.Any(), 9).Return(&models.ArtistSummary{ID: 9, Username: "Echo"}, nil).Times(2)

	aggregator := service.NewAggregatorService(mockArtists)
	first := aggregator.Aggregate(context.Background(), song)
	second := aggregator.Aggregate(context.Background(), song)

	assert.Equal(t, first, second)
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"nova", "Nova"},
		{"dj max", "Dj Max"},
		{"ECHO", "Echo"},
		{"  spaced  out ", "Spaced Out"},
		{"", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, service.TitleCase(tc.in), "TitleCase(%q)", tc.in)
	}
}
