package db

import (
	"context"

	"github.com/uptrace/bun"

	"showbill/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ListShows → all shows joined with their venue and artist, ascending id
// order
func (d *DB) ListShows(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Relation("Venue").
		Relation("Artist").
		Order("show.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return shows, nil
}

// CreateShow → insert new show inside a transaction. The foreign keys on
// venue_id and artist_id reject shows pointing at entities that do not
// exist.
func (d *DB) CreateShow(ctx context.Context, show *models.Show) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(show).Exec(ctx)
		return err
	})
}
