package db

import (
	"context"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"showbill/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// Area is one (city, state) pair venues group under.
type Area struct {
	City  string `bun:"city"`
	State string `bun:"state"`
}

// ---------------- VENUES ----------------

// GetVenueByID → fetch one venue by its ID
func (d *DB) GetVenueByID(ctx context.Context, id int64) (*models.Venue, error) {
	var venue models.Venue
	err := d.Bun.NewSelect().
		Model(&venue).
		Where("venue.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// GetVenueWithShows retrieves a venue together with its shows, each show
// carrying its artist for display.
func (d *DB) GetVenueWithShows(ctx context.Context, id int64) (*models.Venue, []models.Show, error) {
	venue, err := d.GetVenueByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var shows []models.Show
	err = d.Bun.NewSelect().
		Model(&shows).
		Relation("Artist").
		Where("show.venue_id = ?", id).
		Order("show.start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, nil, err
	}

	return venue, shows, nil
}

// ListAreas → distinct (city, state) pairs, ordered for deterministic grouping
func (d *DB) ListAreas(ctx context.Context) ([]Area, error) {
	var areas []Area
	err := d.Bun.NewSelect().
		Table("venues").
		ColumnExpr("city, state").
		GroupExpr("state, city").
		OrderExpr("state ASC, city ASC").
		Scan(ctx, &areas)
	if err != nil {
		return nil, err
	}
	return areas, nil
}

// ListVenuesByArea → venues of one (city, state) pair, ascending id order
func (d *DB) ListVenuesByArea(ctx context.Context, city, state string) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Where("venue.city = ?", city).
		Where("venue.state = ?", state).
		Order("venue.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchVenuesByName → case-insensitive substring match against the name.
// An empty term matches every row. LOWER/LIKE keeps the query portable
// across the postgres and sqlite dialects.
func (d *DB) SearchVenuesByName(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Where("LOWER(venue.name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("venue.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// CountUpcomingShows → number of shows starting at or after now per venue
func (d *DB) CountUpcomingShows(ctx context.Context, venueIDs []int64, now time.Time) (map[int64]int, error) {
	if len(venueIDs) == 0 {
		return map[int64]int{}, nil
	}

	var rows []struct {
		VenueID int64 `bun:"venue_id"`
		Count   int   `bun:"count"`
	}
	err := d.Bun.NewSelect().
		Table("shows").
		ColumnExpr("venue_id, COUNT(*) AS count").
		Where("venue_id IN (?)", bun.In(venueIDs)).
		Where("start_time >= ?", now).
		GroupExpr("venue_id").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.VenueID] = row.Count
	}
	return counts, nil
}

// ---------------- MUTATIONS ----------------

// CreateVenue → insert new venue inside a transaction
func (d *DB) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(venue).Exec(ctx)
		return err
	})
}

// UpdateVenue → overwrite the editable columns of an existing venue
func (d *DB) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model(venue).
			Column("name", "city", "state", "address", "phone", "website",
				"facebook_link", "genres", "image_link", "seeking_talent",
				"seeking_description").
			Where("id = ?", venue.ID).
			Exec(ctx)
		return err
	})
}

// DeleteVenue → delete a venue and its shows in one transaction. Shows
// reference the venue with a NOT NULL foreign key, so they go first.
func (d *DB) DeleteVenue(ctx context.Context, id int64) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.Show)(nil)).
			Where("venue_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewDelete().
			Model((*models.Venue)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
}
