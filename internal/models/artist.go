// internal/models/artist.go
package models

import "time"

// ArtistSummary is the profile card for an uploader or collaborator.
// The three Total* stats are rolled up on read over songs the artist
// uploaded or collaborated on; they are never stored.
type ArtistSummary struct {
	ID             int     `json:"id"`
	Username       string  `json:"username"`
	Avatar         *string `json:"avatar"`
	Bio            *string `json:"bio"`
	IsVerified     bool    `json:"isVerified"`
	IsActive       bool    `json:"isActive"`
	Twitter        *string `json:"twitter"`
	Instagram      *string `json:"instagram"`
	Website        *string `json:"website"`
	TotalSongs     int     `json:"totalSongs"`
	TotalPlays     int     `json:"totalPlays"`
	TotalDownloads int     `json:"totalDownloads"`
}

type Collaborator struct {
	SongID  int       `json:"songId"`
	UserID  int       `json:"userId"`
	AddedAt time.Time `json:"addedAt"`
}

// Aggregation is the result of resolving a song's contributing artists:
// uploader first, then collaborators in added_at order, deduplicated.
type Aggregation struct {
	Artists         []ArtistSummary `json:"artists"`
	DisplayName     string          `json:"displayName"`
	IsCollaboration bool            `json:"isCollaboration"`
}

// ArtistIDs returns the ids of the aggregated artists in order.
func (a *Aggregation) ArtistIDs() []int {
	ids := make([]int, 0, len(a.Artists))
	for _, artist := range a.Artists {
		ids = append(ids, artist.ID)
	}
	return ids
}
