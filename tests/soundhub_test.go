// tests/soundhub_test.go
package tests

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"soundhub/internal/api/handlers/artists"
	"soundhub/internal/api/handlers/home"
	"soundhub/internal/api/handlers/news"
	"soundhub/internal/api/handlers/songs"
	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/service"
	"soundhub/internal/storage/postgres"
)

var (
	testConn   *pgx.Conn
	testRouter *mux.Router

	novaID, echoID int
	nightWalkID    int
)

func TestMain(m *testing.M) {
	if err := utils.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "soundhub",
				"POSTGRES_PASSWORD": "soundhub",
				"POSTGRES_DB":       "soundhub_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("Failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("Failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, nat.Port("5432/tcp"))
	if err != nil {
		log.Fatalf("Failed to get mapped port: %v", err)
	}
	dbURL := fmt.Sprintf("postgres://soundhub:soundhub@%s:%s/soundhub_test?sslmode=disable", host, port.Port())

	migrations, err := migrate.New("file://../internal/migrations", dbURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrations: %v", err)
	}
	if err := migrations.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	testConn, err = pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := seedTestData(ctx); err != nil {
		log.Fatalf("Failed to seed test data: %v", err)
	}
	testRouter = newTestRouter()

	exitCode := m.Run()

	testConn.Close(ctx)
	container.Terminate(ctx)
	utils.Logger.Sync()
	os.Exit(exitCode)
}

func seedTestData(ctx context.Context) error {
	err := testConn.QueryRow(ctx,
		`INSERT INTO users (username, is_verified) VALUES ('nova', TRUE) RETURNING id`).Scan(&novaID)
	if err != nil {
		return err
	}
	if err := testConn.QueryRow(ctx,
		`INSERT INTO users (username) VALUES ('Echo') RETURNING id`).Scan(&echoID); err != nil {
		return err
	}

	if err := testConn.QueryRow(ctx,
		`INSERT INTO songs (title, uploaded_by, plays, status) VALUES ('Night Walk', $1, 100, 'active') RETURNING id`,
		novaID).Scan(&nightWalkID); err != nil {
		return err
	}
	if _, err := testConn.Exec(ctx,
		`INSERT INTO song_collaborators (song_id, user_id) VALUES ($1, $2)`, nightWalkID, echoID); err != nil {
		return err
	}
	if _, err := testConn.Exec(ctx,
		`INSERT INTO songs (title, uploaded_by, plays, status) VALUES ('Sunrise', $1, 50, 'active')`, novaID); err != nil {
		return err
	}
	if _, err := testConn.Exec(ctx,
		`INSERT INTO news (title, slug, category, is_published) VALUES ('Festival Lineup', 'festival-lineup', 'events', TRUE)`); err != nil {
		return err
	}
	return nil
}

func newTestRouter() *mux.Router {
	pgStorage := postgres.NewPgStorage(testConn)

	resolver := service.NewResolverService(pgStorage)
	aggregator := service.NewAggregatorService(pgStorage)
	related := service.NewRelatedService(pgStorage, 50)
	songService := service.NewSongService(pgStorage)
	newsService := service.NewNewsService(pgStorage)
	commentService := service.NewCommentService(pgStorage, pgStorage)
	artistService := service.NewArtistService(pgStorage, pgStorage)
	homepageService := service.NewHomepageService(pgStorage, pgStorage, service.HomepageOptions{
		ChartSize:       10,
		TrendingWindow:  7 * 24 * time.Hour,
		NewReleaseCount: 12,
		NewsPerCategory: 4,
		TickerSize:      5,
	})

	songHandlers := songs.NewSongHandlers(resolver, aggregator, related, songService, commentService, songs.PageLimits{
		RelatedShown:       10,
		RelatedShownMobile: 8,
		AlsoLikeCount:      8,
	})
	artistHandlers := artists.NewArtistHandlers(artistService)
	newsHandlers := news.NewNewsHandlers(newsService)
	homeHandlers := home.NewHomeHandlers(homepageService)

	router := mux.NewRouter()
	router.HandleFunc("/health", homeHandlers.HealthCheckHandler).Methods("GET")
	router.HandleFunc("/", homeHandlers.GetHomepageHandler).Methods("GET")
	router.HandleFunc("/songs/{slug}", songHandlers.GetSongPageHandler).Methods("GET")
	router.HandleFunc("/artists/{name}", artistHandlers.GetProfileHandler).Methods("GET")
	router.HandleFunc("/news/{slug}", newsHandlers.GetArticleHandler).Methods("GET")
	router.HandleFunc("/api/songs/{id}/play", songHandlers.UpdatePlayCountHandler).Methods("POST")
	router.HandleFunc("/api/comments", songHandlers.ListCommentsHandler).Methods("GET")
	return router
}

func executeRequest(t *testing.T, method, path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthCheck_Integration(t *testing.T) {
	recorder := executeRequest(t, "GET", "/health")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestSongPageBySlug_Integration(t *testing.T) {
	recorder := executeRequest(t, "GET", "/songs/night-walk-by-nova")

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `"displayName":"Nova x Echo"`)
	assert.Contains(t, body, `"isCollaboration":true`)
	assert.Contains(t, body, `"sunrise-by-nova"`)
}

func TestSongPageByID_Redirects_Integration(t *testing.T) {
	recorder := executeRequest(t, "GET", fmt.Sprintf("/songs/%d", nightWalkID))

	assert.Equal(t, http.StatusMovedPermanently, recorder.Code)
	assert.Equal(t, "/songs/night-walk-by-nova", recorder.Header().Get("Location"))
}

func TestSongPage_NoSeparator_Integration(t *testing.T) {
	recorder := executeRequest(t, "GET", "/songs/night-walk")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHomepage_Integration(t *testing.T) {
	recorder := executeRequest(t, "GET", "/")

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `"night-walk-by-nova"`)
	assert.Contains(t, body, `"events"`)
}

func TestArtistProfile_Integration(t *testing.T) {
	recorder := executeRequest(t, "GET", "/artists/nova")

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `"username":"Nova"`)
	// Uploaded plus collaborated rollup.
	assert.Contains(t, body, `"totalSongs":2`)
}

func TestPlayCount_Integration(t *testing.T) {
	recorder := executeRequest(t, "POST", fmt.Sprintf("/api/songs/%d/play", nightWalkID))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"plays":101`)
}

func TestNewsBySlug_Integration(t *testing.T) {
	recorder := executeRequest(t, "GET", "/news/festival-lineup")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Festival Lineup"`)
}
