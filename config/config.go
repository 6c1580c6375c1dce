// config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBURL      string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort int

	// Content knobs. Defaults mirror the site's observed page layout:
	// 50 related songs fetched, 10 shown (8 on mobile), the rest behind
	// a "show more" affordance.
	RelatedFetchLimit  int
	RelatedShown       int
	RelatedShownMobile int
	AlsoLikeCount      int
	ChartSize          int
	TrendingWindowDays int
	NewReleaseCount    int
	NewsPerCategory    int
	TickerSize         int
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	serverPort := intEnv("SERVER_PORT", 8080)

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbHost := os.Getenv("DB_HOST")
		dbPort := intEnv("DB_PORT", 5432)
		dbUser := os.Getenv("DB_USER")
		dbPassword := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")

		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", dbUser, dbPassword, dbHost, dbPort, dbName)
	}

	parsedDBURL, err := url.Parse(dbURL)
	if err != nil {
		return nil, err
	}

	dbPortParsed, _ := strconv.Atoi(parsedDBURL.Port())
	dbPassword, _ := parsedDBURL.User.Password()

	return &Config{
		DBURL:      dbURL,
		DBHost:     parsedDBURL.Hostname(),
		DBPort:     dbPortParsed,
		DBUser:     parsedDBURL.User.Username(),
		DBPassword: dbPassword,
		DBName:     strings.TrimPrefix(parsedDBURL.Path, "/"),
		ServerPort: serverPort,

		RelatedFetchLimit:  intEnv("RELATED_FETCH_LIMIT", 50),
		RelatedShown:       intEnv("RELATED_PAGE_SIZE", 10),
		RelatedShownMobile: intEnv("RELATED_PAGE_SIZE_MOBILE", 8),
		AlsoLikeCount:      intEnv("ALSO_LIKE_COUNT", 8),
		ChartSize:          intEnv("CHART_SIZE", 10),
		TrendingWindowDays: intEnv("TRENDING_WINDOW_DAYS", 7),
		NewReleaseCount:    intEnv("NEW_RELEASE_COUNT", 12),
		NewsPerCategory:    intEnv("NEWS_PER_CATEGORY", 4),
		TickerSize:         intEnv("TICKER_SIZE", 5),
	}, nil
}

func intEnv(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
