package shows

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showbill/internal/models"
)

type stubDB struct {
	shows []models.Show
}

func (s *stubDB) ListShows(_ context.Context) ([]models.Show, error) { return s.shows, nil }
func (s *stubDB) CreateShow(_ context.Context, show *models.Show) error {
	s.shows = append(s.shows, *show)
	return nil
}

func TestListFlattensShowRows(t *testing.T) {
	venue := &models.Venue{ID: 1, Name: "The Blue Note"}
	artist := &models.Artist{ID: 4, Name: "Guns N Petals", ImageLink: "https://example.com/gnp.jpg"}
	start := time.Date(2026, 5, 21, 21, 30, 0, 500000000, time.FixedZone("EDT", -4*3600))

	service := NewShowService(&stubDB{shows: []models.Show{
		{ID: 1, VenueID: 1, ArtistID: 4, StartTime: start, Venue: venue, Artist: artist},
	}})

	rows, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, int64(1), row.VenueID)
	assert.Equal(t, "The Blue Note", row.VenueName)
	assert.Equal(t, int64(4), row.ArtistID)
	assert.Equal(t, "Guns N Petals", row.ArtistName)
	assert.Equal(t, "https://example.com/gnp.jpg", row.ArtistImageLink)
	assert.Equal(t, "2026-05-21T21:30:00.500000-0400", row.StartTime)

	// canonical timestamp shape: YYYY-MM-DDTHH:MM:SS.ffffff±HHMM
	matched := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}[+-]\d{4}$`).MatchString(row.StartTime)
	assert.True(t, matched)
}
