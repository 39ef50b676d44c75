package venues

import (
	"context"
	"fmt"
	"time"

	"showbill/internal/models"
	venuedb "showbill/internal/venues/db"
)

// DBLayer is the query surface the service needs from the store.
type DBLayer interface {
	GetVenueByID(ctx context.Context, id int64) (*models.Venue, error)
	GetVenueWithShows(ctx context.Context, id int64) (*models.Venue, []models.Show, error)
	ListAreas(ctx context.Context) ([]venuedb.Area, error)
	ListVenuesByArea(ctx context.Context, city, state string) ([]models.Venue, error)
	SearchVenuesByName(ctx context.Context, term string) ([]models.Venue, error)
	CountUpcomingShows(ctx context.Context, venueIDs []int64, now time.Time) (map[int64]int, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id int64) error
}

type VenueService struct {
	DB DBLayer
}

func NewVenueService(db DBLayer) *VenueService {
	return &VenueService{DB: db}
}

// VenueSummary is one venue row in listings and search results.
type VenueSummary struct {
	ID            int64
	Name          string
	UpcomingShows int
}

// AreaGroup is the venues of one (city, state) pair.
type AreaGroup struct {
	City   string
	State  string
	Venues []VenueSummary
}

// SearchResults carries the match count plus the matching rows.
type SearchResults struct {
	Count int
	Data  []VenueSummary
}

// ShowInfo annotates one of a venue's shows with the artist it links to.
type ShowInfo struct {
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

// VenuePage is the venue detail view model.
type VenuePage struct {
	ID                 int64
	Name               string
	Genres             []string
	Address            string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
	PastShows          []ShowInfo
	UpcomingShows      []ShowInfo
	PastShowsCount     int
	UpcomingShowsCount int
}

// ListGroupedByArea returns every venue, grouped by (city, state) pairs in
// deterministic order.
func (s *VenueService) ListGroupedByArea(ctx context.Context) ([]AreaGroup, error) {
	areas, err := s.DB.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}

	groups := make([]AreaGroup, 0, len(areas))
	for _, area := range areas {
		venues, err := s.DB.ListVenuesByArea(ctx, area.City, area.State)
		if err != nil {
			return nil, fmt.Errorf("failed to list venues in %s, %s: %w", area.City, area.State, err)
		}
		group := AreaGroup{City: area.City, State: area.State}
		for _, venue := range venues {
			group.Venues = append(group.Venues, VenueSummary{ID: venue.ID, Name: venue.Name})
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// Search matches venues whose name contains the term, annotating each hit
// with its upcoming-show count.
func (s *VenueService) Search(ctx context.Context, term string) (*SearchResults, error) {
	venues, err := s.DB.SearchVenuesByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("venue search failed: %w", err)
	}

	ids := make([]int64, len(venues))
	for i, venue := range venues {
		ids[i] = venue.ID
	}
	counts, err := s.DB.CountUpcomingShows(ctx, ids, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming shows: %w", err)
	}

	results := &SearchResults{Count: len(venues), Data: make([]VenueSummary, 0, len(venues))}
	for _, venue := range venues {
		results.Data = append(results.Data, VenueSummary{
			ID:            venue.ID,
			Name:          venue.Name,
			UpcomingShows: counts[venue.ID],
		})
	}
	return results, nil
}

// GetPage loads a venue with its shows partitioned into past and upcoming
// as of now.
func (s *VenueService) GetPage(ctx context.Context, id int64) (*VenuePage, error) {
	venue, shows, err := s.DB.GetVenueWithShows(ctx, id)
	if err != nil {
		return nil, err
	}

	page := &VenuePage{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             venue.GenreList(),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
	}
	page.PastShows, page.UpcomingShows = partitionShows(shows, time.Now())
	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return page, nil
}

// GetVenue fetches the bare entity, used to pre-populate the edit form.
func (s *VenueService) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	return s.DB.GetVenueByID(ctx, id)
}

func (s *VenueService) Create(ctx context.Context, venue *models.Venue) error {
	return s.DB.CreateVenue(ctx, venue)
}

func (s *VenueService) Update(ctx context.Context, venue *models.Venue) error {
	return s.DB.UpdateVenue(ctx, venue)
}

func (s *VenueService) Delete(ctx context.Context, id int64) error {
	return s.DB.DeleteVenue(ctx, id)
}

// partitionShows splits shows around now: start_time >= now is upcoming,
// everything else past. The partition is exact, every show lands in one
// bucket.
func partitionShows(shows []models.Show, now time.Time) (past, upcoming []ShowInfo) {
	for _, show := range shows {
		info := ShowInfo{
			ArtistID:  show.ArtistID,
			StartTime: show.FormatStartTime(),
		}
		if show.Artist != nil {
			info.ArtistName = show.Artist.Name
			info.ArtistImageLink = show.Artist.ImageLink
		}
		if show.Upcoming(now) {
			upcoming = append(upcoming, info)
		} else {
			past = append(past, info)
		}
	}
	return past, upcoming
}
