package db

import (
	"context"
	"strings"

	"github.com/uptrace/bun"

	"showbill/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// GetArtistByID → fetch one artist by its ID
func (d *DB) GetArtistByID(ctx context.Context, id int64) (*models.Artist, error) {
	var artist models.Artist
	err := d.Bun.NewSelect().
		Model(&artist).
		Where("artist.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

// GetArtistWithShows retrieves an artist together with its shows, each show
// carrying its venue for display.
func (d *DB) GetArtistWithShows(ctx context.Context, id int64) (*models.Artist, []models.Show, error) {
	artist, err := d.GetArtistByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var shows []models.Show
	err = d.Bun.NewSelect().
		Model(&shows).
		Relation("Venue").
		Where("show.artist_id = ?", id).
		Order("show.start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, nil, err
	}

	return artist, shows, nil
}

// ListArtists → all artists, ascending id order
func (d *DB) ListArtists(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Order("artist.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// SearchArtistsByName → case-insensitive substring match against the name.
// An empty term matches every row.
func (d *DB) SearchArtistsByName(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Where("LOWER(artist.name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("artist.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// CreateArtist → insert new artist inside a transaction
func (d *DB) CreateArtist(ctx context.Context, artist *models.Artist) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(artist).Exec(ctx)
		return err
	})
}

// UpdateArtist → overwrite the editable columns of an existing artist
func (d *DB) UpdateArtist(ctx context.Context, artist *models.Artist) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model(artist).
			Column("name", "city", "state", "phone", "website", "facebook_link",
				"genres", "image_link", "seeking_venue", "seeking_description").
			Where("id = ?", artist.ID).
			Exec(ctx)
		return err
	})
}
