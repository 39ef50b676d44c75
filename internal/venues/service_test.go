package venues

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showbill/internal/models"
	venuedb "showbill/internal/venues/db"
)

type stubDB struct {
	venues        map[int64]*models.Venue
	shows         []models.Show
	areas         []venuedb.Area
	venuesByArea  map[venuedb.Area][]models.Venue
	searchResults []models.Venue
	upcoming      map[int64]int
}

func (s *stubDB) GetVenueByID(_ context.Context, id int64) (*models.Venue, error) {
	return s.venues[id], nil
}

func (s *stubDB) GetVenueWithShows(_ context.Context, id int64) (*models.Venue, []models.Show, error) {
	return s.venues[id], s.shows, nil
}

func (s *stubDB) ListAreas(_ context.Context) ([]venuedb.Area, error) {
	return s.areas, nil
}

func (s *stubDB) ListVenuesByArea(_ context.Context, city, state string) ([]models.Venue, error) {
	return s.venuesByArea[venuedb.Area{City: city, State: state}], nil
}

func (s *stubDB) SearchVenuesByName(_ context.Context, _ string) ([]models.Venue, error) {
	return s.searchResults, nil
}

func (s *stubDB) CountUpcomingShows(_ context.Context, _ []int64, _ time.Time) (map[int64]int, error) {
	return s.upcoming, nil
}

func (s *stubDB) CreateVenue(_ context.Context, _ *models.Venue) error { return nil }
func (s *stubDB) UpdateVenue(_ context.Context, _ *models.Venue) error { return nil }
func (s *stubDB) DeleteVenue(_ context.Context, _ int64) error         { return nil }

func TestPartitionShowsIsExact(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	artist := &models.Artist{ID: 7, Name: "Guns N Petals", ImageLink: "https://example.com/gnp.jpg"}

	shows := []models.Show{
		{ArtistID: 7, Artist: artist, StartTime: now.Add(-48 * time.Hour)},
		{ArtistID: 7, Artist: artist, StartTime: now.Add(-time.Minute)},
		{ArtistID: 7, Artist: artist, StartTime: now}, // boundary counts as upcoming
		{ArtistID: 7, Artist: artist, StartTime: now.Add(72 * time.Hour)},
	}

	past, upcoming := partitionShows(shows, now)
	assert.Len(t, past, 2)
	assert.Len(t, upcoming, 2)
	assert.Equal(t, len(shows), len(past)+len(upcoming))

	assert.Equal(t, int64(7), upcoming[0].ArtistID)
	assert.Equal(t, "Guns N Petals", upcoming[0].ArtistName)
	assert.Equal(t, "https://example.com/gnp.jpg", upcoming[0].ArtistImageLink)
	assert.Equal(t, "2026-09-01T12:00:00.000000+0000", upcoming[0].StartTime)
}

func TestGetPageBuildsDetailView(t *testing.T) {
	now := time.Now()
	venue := &models.Venue{
		ID:     1,
		Name:   "The Blue Note",
		City:   "NYC",
		State:  "NY",
		Genres: models.JoinGenres([]string{"Jazz", "Blues"}),
	}
	stub := &stubDB{
		venues: map[int64]*models.Venue{1: venue},
		shows: []models.Show{
			{ArtistID: 7, StartTime: now.Add(-time.Hour)},
			{ArtistID: 7, StartTime: now.Add(time.Hour)},
		},
	}
	service := NewVenueService(stub)

	page, err := service.GetPage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "The Blue Note", page.Name)
	assert.Equal(t, []string{"Jazz", "Blues"}, page.Genres)
	assert.Equal(t, 1, page.PastShowsCount)
	assert.Equal(t, 1, page.UpcomingShowsCount)
	assert.Equal(t, page.PastShowsCount+page.UpcomingShowsCount, len(stub.shows))
}

func TestListGroupedByArea(t *testing.T) {
	stub := &stubDB{
		areas: []venuedb.Area{
			{City: "San Francisco", State: "CA"},
			{City: "NYC", State: "NY"},
		},
		venuesByArea: map[venuedb.Area][]models.Venue{
			{City: "San Francisco", State: "CA"}: {{ID: 2, Name: "Park Square Live"}},
			{City: "NYC", State: "NY"}:           {{ID: 1, Name: "The Blue Note"}},
		},
	}
	service := NewVenueService(stub)

	groups, err := service.ListGroupedByArea(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "NYC", groups[1].City)
	require.Len(t, groups[1].Venues, 1)
	assert.Equal(t, "The Blue Note", groups[1].Venues[0].Name)
}

func TestSearchAnnotatesUpcomingCounts(t *testing.T) {
	stub := &stubDB{
		searchResults: []models.Venue{{ID: 1, Name: "The Blue Note"}},
		upcoming:      map[int64]int{1: 3},
	}
	service := NewVenueService(stub)

	results, err := service.Search(context.Background(), "blue")
	require.NoError(t, err)
	assert.Equal(t, 1, results.Count)
	require.Len(t, results.Data, 1)
	assert.Equal(t, 3, results.Data[0].UpcomingShows)
}
