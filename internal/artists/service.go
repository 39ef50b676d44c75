package artists

import (
	"context"
	"fmt"
	"time"

	"showbill/internal/models"
)

// DBLayer is the query surface the service needs from the store.
type DBLayer interface {
	GetArtistByID(ctx context.Context, id int64) (*models.Artist, error)
	GetArtistWithShows(ctx context.Context, id int64) (*models.Artist, []models.Show, error)
	ListArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtistsByName(ctx context.Context, term string) ([]models.Artist, error)
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, artist *models.Artist) error
}

type ArtistService struct {
	DB DBLayer
}

func NewArtistService(db DBLayer) *ArtistService {
	return &ArtistService{DB: db}
}

// ArtistSummary is one artist row in listings and search results.
type ArtistSummary struct {
	ID   int64
	Name string
}

// SearchResults carries the match count plus the matching rows.
type SearchResults struct {
	Count int
	Data  []ArtistSummary
}

// ShowInfo annotates one of an artist's shows with the venue it links to.
type ShowInfo struct {
	VenueID        int64
	VenueName      string
	VenueImageLink string
	StartTime      string
}

// ArtistPage is the artist detail view model.
type ArtistPage struct {
	ID                 int64
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
	ImageLink          string
	PastShows          []ShowInfo
	UpcomingShows      []ShowInfo
	PastShowsCount     int
	UpcomingShowsCount int
}

// List returns every artist in ascending id order.
func (s *ArtistService) List(ctx context.Context) ([]ArtistSummary, error) {
	artists, err := s.DB.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	summaries := make([]ArtistSummary, 0, len(artists))
	for _, artist := range artists {
		summaries = append(summaries, ArtistSummary{ID: artist.ID, Name: artist.Name})
	}
	return summaries, nil
}

// Search matches artists whose name contains the term.
func (s *ArtistService) Search(ctx context.Context, term string) (*SearchResults, error) {
	artists, err := s.DB.SearchArtistsByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("artist search failed: %w", err)
	}
	results := &SearchResults{Count: len(artists), Data: make([]ArtistSummary, 0, len(artists))}
	for _, artist := range artists {
		results.Data = append(results.Data, ArtistSummary{ID: artist.ID, Name: artist.Name})
	}
	return results, nil
}

// GetPage loads an artist with its shows partitioned into past and upcoming
// as of now.
func (s *ArtistService) GetPage(ctx context.Context, id int64) (*ArtistPage, error) {
	artist, shows, err := s.DB.GetArtistWithShows(ctx, id)
	if err != nil {
		return nil, err
	}

	page := &ArtistPage{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             artist.GenreList(),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
	}
	page.PastShows, page.UpcomingShows = partitionShows(shows, time.Now())
	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return page, nil
}

// GetArtist fetches the bare entity, used to pre-populate the edit form.
func (s *ArtistService) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	return s.DB.GetArtistByID(ctx, id)
}

func (s *ArtistService) Create(ctx context.Context, artist *models.Artist) error {
	return s.DB.CreateArtist(ctx, artist)
}

func (s *ArtistService) Update(ctx context.Context, artist *models.Artist) error {
	return s.DB.UpdateArtist(ctx, artist)
}

// partitionShows splits shows around now: start_time >= now is upcoming,
// everything else past.
func partitionShows(shows []models.Show, now time.Time) (past, upcoming []ShowInfo) {
	for _, show := range shows {
		info := ShowInfo{
			VenueID:   show.VenueID,
			StartTime: show.FormatStartTime(),
		}
		if show.Venue != nil {
			info.VenueName = show.Venue.Name
			info.VenueImageLink = show.Venue.ImageLink
		}
		if show.Upcoming(now) {
			upcoming = append(upcoming, info)
		} else {
			past = append(past, info)
		}
	}
	return past, upcoming
}
