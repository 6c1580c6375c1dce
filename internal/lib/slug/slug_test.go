package slug_test

import (
	"testing"

	"soundhub/internal/lib/slug"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"Sunrise", "sunrise"},
		{"Dj Max", "dj-max"},
		{"  Night   Walk  ", "night-walk"},
		{"R&B Vibes!", "r-b-vibes"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, slug.Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestMake(t *testing.T) {
	assert.Equal(t, "sunrise-by-dj-max", slug.Make("Sunrise", "Dj Max"))
	assert.Equal(t, "night-walk-by-nova", slug.Make("Night Walk", "nova"))
	assert.Equal(t, "sunrise", slug.Make("Sunrise", ""))
}

func TestSplit(t *testing.T) {
	title, artist, ok := slug.Split("sunrise-by-dj-max")
	assert.True(t, ok)
	assert.Equal(t, "sunrise", title)
	assert.Equal(t, "dj max", artist)

	title, artist, ok = slug.Split("night-walk-by-nova")
	assert.True(t, ok)
	assert.Equal(t, "night walk", title)
	assert.Equal(t, "nova", artist)

	_, _, ok = slug.Split("no-separator-here")
	assert.False(t, ok)

	_, _, ok = slug.Split("")
	assert.False(t, ok)
}

func TestTitles(t *testing.T) {
	assert.Equal(t, []string{"stand", "stand by me"}, slug.Titles("stand-by-me-by-john"))
	assert.Equal(t, []string{"sunrise"}, slug.Titles("sunrise-by-dj-max"))
	assert.Empty(t, slug.Titles("no-separator"))
}

func TestRoundTrip(t *testing.T) {
	s := slug.Make("Sunrise", "Dj Max")
	title, artist, ok := slug.Split(s)
	assert.True(t, ok)
	assert.Equal(t, "sunrise", title)
	assert.Equal(t, "dj max", artist)
}
