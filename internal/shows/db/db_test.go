package db_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"showbill/internal/models"
	"showbill/internal/shows/db"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	ctx := context.Background()
	for _, model := range []interface{}{
		(*models.Venue)(nil), (*models.Artist)(nil), (*models.Show)(nil),
	} {
		_, err = bunDB.NewCreateTable().Model(model).WithForeignKeys().Exec(ctx)
		if err != nil {
			t.Fatalf("Failed to create table for %T: %v", model, err)
		}
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func TestCreateAndListShows(t *testing.T) {
	showDB, bunDB := setupTestDB(t)
	defer bunDB.Close()
	ctx := context.Background()

	venue := &models.Venue{Name: "The Blue Note", City: "NYC", State: "NY"}
	_, err := bunDB.NewInsert().Model(venue).Exec(ctx)
	require.NoError(t, err)

	artist := &models.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA", ImageLink: "https://example.com/gnp.jpg"}
	_, err = bunDB.NewInsert().Model(artist).Exec(ctx)
	require.NoError(t, err)

	now := time.Now().UTC()
	first := &models.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: now.Add(48 * time.Hour)}
	second := &models.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: now.Add(24 * time.Hour)}
	require.NoError(t, showDB.CreateShow(ctx, first))
	require.NoError(t, showDB.CreateShow(ctx, second))

	shows, err := showDB.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 2)

	// ascending show id, not start time
	assert.Equal(t, first.ID, shows[0].ID)
	assert.Equal(t, second.ID, shows[1].ID)
	assert.Less(t, shows[0].ID, shows[1].ID)

	require.NotNil(t, shows[0].Venue)
	require.NotNil(t, shows[0].Artist)
	assert.Equal(t, "The Blue Note", shows[0].Venue.Name)
	assert.Equal(t, "Guns N Petals", shows[0].Artist.Name)
	assert.Equal(t, "https://example.com/gnp.jpg", shows[0].Artist.ImageLink)
}

func TestListShowsEmpty(t *testing.T) {
	showDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	shows, err := showDB.ListShows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, shows)
}
