package artist_api_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"showbill/internal/artists"
	"showbill/internal/artists/artist_api"
	artistdb "showbill/internal/artists/db"
	"showbill/internal/logger"
	"showbill/internal/models"
	"showbill/internal/web"
)

func setupServer(t *testing.T) (*chi.Mux, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { bunDB.Close() })

	ctx := context.Background()
	for _, model := range []interface{}{
		(*models.Venue)(nil), (*models.Artist)(nil), (*models.Show)(nil),
	} {
		_, err = bunDB.NewCreateTable().Model(model).WithForeignKeys().Exec(ctx)
		require.NoError(t, err)
	}

	log := logger.New(true)
	flash := web.NewFlash("handler-test-secret")
	renderer, err := web.NewRenderer(flash, log)
	require.NoError(t, err)

	service := artists.NewArtistService(&artistdb.DB{Bun: bunDB})
	handler := artist_api.NewHandler(service, renderer, flash, log)

	router := chi.NewRouter()
	router.Get("/", renderer.Home)
	handler.RegisterRoutes(router)
	return router, bunDB
}

func TestListArtists(t *testing.T) {
	router, bunDB := setupServer(t)
	artist := &models.Artist{Name: "Guns N Petals", City: "SF", State: "CA"}
	_, err := bunDB.NewInsert().Model(artist).Exec(context.Background())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artists", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Guns N Petals")
}

func TestShowArtistNotFound(t *testing.T) {
	router, _ := setupServer(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artists/9999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchArtistsEmptyTermMatchesAll(t *testing.T) {
	router, bunDB := setupServer(t)
	ctx := context.Background()
	for _, name := range []string{"Guns N Petals", "Matt Quevedo"} {
		_, err := bunDB.NewInsert().
			Model(&models.Artist{Name: name, City: "NYC", State: "NY"}).Exec(ctx)
		require.NoError(t, err)
	}

	values := url.Values{"search_term": {""}}
	req := httptest.NewRequest(http.MethodPost, "/artists/search", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Guns N Petals")
	assert.Contains(t, body, "Matt Quevedo")
}

func TestCreateArtistPersists(t *testing.T) {
	router, bunDB := setupServer(t)

	values := url.Values{
		"name":          {"The Wild Sax Band"},
		"city":          {"SF"},
		"state":         {"CA"},
		"genres":        {"Jazz", "Classical"},
		"seeking_venue": {"t"},
	}
	req := httptest.NewRequest(http.MethodPost, "/artists/create", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var artist models.Artist
	err := bunDB.NewSelect().Model(&artist).
		Where("name = ?", "The Wild Sax Band").
		Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Jazz", "Classical"}, artist.GenreList())
	assert.True(t, artist.SeekingVenue)
}
