package songs_test

import (
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"soundhub/internal/api/handlers/songs"
	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/models"
	"soundhub/internal/service"
	"soundhub/internal/storage"
	mock_storage "soundhub/internal/storage/mocks"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	if err := utils.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	exitCode := m.Run()
	utils.Logger.Sync()
	os.Exit(exitCode)
}

func newRouter(songStorage *mock_storage.MockSongStorage, artistStorage *mock_storage.MockArtistStorage, commentStorage *mock_storage.MockCommentStorage) *mux.Router {
	resolver := service.NewResolverService(songStorage)
	aggregator := service.NewAggregatorService(artistStorage)
	related := service.NewRelatedService(songStorage, 50)
	songService := service.NewSongService(songStorage)
	commentService := service.NewCommentService(commentStorage, songStorage)

	handlers := songs.NewSongHandlers(resolver, aggregator, related, songService, commentService, songs.PageLimits{
		RelatedShown:       10,
		RelatedShownMobile: 8,
		AlsoLikeCount:      8,
	})

	router := mux.NewRouter()
	router.HandleFunc("/songs/{slug}", handlers.GetSongPageHandler).Methods("GET")
	router.HandleFunc("/api/songs/{id}", handlers.GetSongDataHandler).Methods("GET")
	router.HandleFunc("/api/songs/{id}", handlers.DeleteSongHandler).Methods("DELETE")
	router.HandleFunc("/api/songs/{id}/play", handlers.UpdatePlayCountHandler).Methods("POST")
	router.HandleFunc("/api/comments", handlers.ListCommentsHandler).Methods("GET")
	router.HandleFunc("/api/comments", handlers.PostCommentHandler).Methods("POST")
	return router
}

func TestGetSongPageHandler_NumericIDRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	songStorage := mock_storage.NewMockSongStorage(ctrl)
	uploadedBy := 7
	songStorage.EXPECT().GetByID(gomock.Any(), 42).Return(&models.Song{
		ID: 42, Title: "Night Walk", UploadedBy: &uploadedBy, UploaderName: "nova",
	}, nil)

	router := newRouter(songStorage, mock_storage.NewMockArtistStorage(ctrl), mock_storage.NewMockCommentStorage(ctrl))

	req := httptest.NewRequest("GET", "/songs/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/songs/night-walk-by-nova", w.Header().Get("Location"))
}

func TestGetSongPageHandler_SlugResolvesToPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploadedBy := 7
	song := &models.Song{ID: 42, Title: "Night Walk", UploadedBy: &uploadedBy, UploaderName: "nova"}

	songStorage := mock_storage.NewMockSongStorage(ctrl)
	songStorage.EXPECT().FindBySlugExact(gomock.Any(), "night walk", "nova").Return(song, nil)
	songStorage.EXPECT().ListByArtists(gomock.Any(), []int{7, 9}, 42, 50).Return([]models.Song{
		{ID: 1, Title: "Sunrise", UploaderName: "nova"},
	}, nil)
	songStorage.EXPECT().ListRandom(gomock.Any(), 42, 8).Return(nil, nil)

	artistStorage := mock_storage.NewMockArtistStorage(ctrl)
	artistStorage.EXPECT().ListCollaborators(gomock.Any(), 42).Return([]models.Collaborator{
		{SongID: 42, UserID: 9, AddedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	artistStorage.EXPECT().GetSummaryByID(gomock.Any(), 7).Return(&models.ArtistSummary{ID: 7, Username: "nova"}, nil)
	artistStorage.EXPECT().GetSummaryByID(gomock.Any(), 9).Return(&models.ArtistSummary{ID: 9, Username: "Echo"}, nil)

	router := newRouter(songStorage, artistStorage, mock_storage.NewMockCommentStorage(ctrl))

	req := httptest.NewRequest("GET", "/songs/night-walk-by-nova", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"displayName":"Nova x Echo"`)
	assert.Contains(t, body, `"isCollaboration":true`)
	assert.Contains(t, body, `"slug":"night-walk-by-nova"`)
	assert.Contains(t, body, `"sunrise-by-nova"`)
}

func TestGetSongPageHandler_NoSeparatorIs404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRouter(mock_storage.NewMockSongStorage(ctrl), mock_storage.NewMockArtistStorage(ctrl), mock_storage.NewMockCommentStorage(ctrl))

	req := httptest.NewRequest("GET", "/songs/just-a-title", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePlayCountHandler(t *testing.T) {
	testCases := []struct {
		name           string
		path           string
		mockStorageFn  func(s *mock_storage.MockSongStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Valid request",
			path: "/api/songs/1/play",
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().IncrementPlays(gomock.Any(), 1).Return(5, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"plays":5,"success":true}`,
		},
		{
			name: "Song not found",
			path: "/api/songs/99/play",
			mockStorageFn: func(s *mock_storage.MockSongStorage) {
				s.EXPECT().IncrementPlays(gomock.Any(), 99).Return(0, storage.ErrSongNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"error":"Song not found"}`,
		},
		{
			name:           "Invalid id",
			path:           "/api/songs/abc/play",
			mockStorageFn:  func(s *mock_storage.MockSongStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"Invalid song ID"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			songStorage := mock_storage.NewMockSongStorage(ctrl)
			tc.mockStorageFn(songStorage)

			router := newRouter(songStorage, mock_storage.NewMockArtistStorage(ctrl), mock_storage.NewMockCommentStorage(ctrl))

			req := httptest.NewRequest("POST", tc.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestListCommentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commentStorage := mock_storage.NewMockCommentStorage(ctrl)
	commentStorage.EXPECT().ListBySong(gomock.Any(), 42, models.NewPagination(1, 10)).Return(nil, nil)
	commentStorage.EXPECT().RatingSummary(gomock.Any(), 42).Return(&models.RatingSummary{Average: 4.5, Count: 2}, nil)

	router := newRouter(mock_storage.NewMockSongStorage(ctrl), mock_storage.NewMockArtistStorage(ctrl), commentStorage)

	req := httptest.NewRequest("GET", "/api/comments?song_id=42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"average_rating":4.5,"rating_count":2,"comments":[]}`, w.Body.String())
}

func TestPostCommentHandler_RateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRouter(mock_storage.NewMockSongStorage(ctrl), mock_storage.NewMockArtistStorage(ctrl), mock_storage.NewMockCommentStorage(ctrl))

	req := httptest.NewRequest("POST", "/api/comments?action=rate", strings.NewReader(`{"song_id":42,"author":"listener","rating":9}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSongHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	songStorage := mock_storage.NewMockSongStorage(ctrl)
	songStorage.EXPECT().SetStatus(gomock.Any(), 7, models.StatusDeleted).Return(nil)

	router := newRouter(songStorage, mock_storage.NewMockArtistStorage(ctrl), mock_storage.NewMockCommentStorage(ctrl))

	req := httptest.NewRequest("DELETE", "/api/songs/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Song deleted"}`, w.Body.String())
}
