// internal/models/homepage.go
package models

// NewsSection is one category block on the homepage. A category whose
// query fails or returns nothing is omitted from the payload entirely.
type NewsSection struct {
	Category string        `json:"category"`
	Articles []NewsArticle `json:"articles"`
}

// Homepage is the assembled result of the fixed homepage query sequence.
// Every field degrades independently: a failed query leaves its section
// empty, never the whole page.
type Homepage struct {
	Charts      []SongListItem `json:"charts"`
	Trending    []SongListItem `json:"trending"`
	NewReleases []SongListItem `json:"newReleases"`
	News        []NewsSection  `json:"news,omitempty"`
	Ticker      []NewsArticle  `json:"ticker,omitempty"`
}
