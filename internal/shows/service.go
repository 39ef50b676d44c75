package shows

import (
	"context"
	"fmt"

	"showbill/internal/models"
)

// DBLayer is the query surface the service needs from the store.
type DBLayer interface {
	ListShows(ctx context.Context) ([]models.Show, error)
	CreateShow(ctx context.Context, show *models.Show) error
}

type ShowService struct {
	DB DBLayer
}

func NewShowService(db DBLayer) *ShowService {
	return &ShowService{DB: db}
}

// ShowRow is one show flattened for the listing: both sides of the
// association plus the formatted start time.
type ShowRow struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

// List returns every show in ascending id order.
func (s *ShowService) List(ctx context.Context) ([]ShowRow, error) {
	shows, err := s.DB.ListShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	rows := make([]ShowRow, 0, len(shows))
	for _, show := range shows {
		row := ShowRow{
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: show.FormatStartTime(),
		}
		if show.Venue != nil {
			row.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			row.ArtistName = show.Artist.Name
			row.ArtistImageLink = show.Artist.ImageLink
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *ShowService) Create(ctx context.Context, show *models.Show) error {
	return s.DB.CreateShow(ctx, show)
}
