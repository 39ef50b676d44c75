// Package forms decodes URL-encoded submissions into typed form structs and
// applies edits through an explicit allow-list of fields per entity, each
// with a named coercion rule: plain string, boolean from a token set, or
// list from a multi-valued field.
package forms

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"showbill/internal/models"
)

var (
	decoder  = schema.NewDecoder()
	validate = validator.New()
)

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// truthyTokens is the accepted token set for seeking_* checkbox fields.
// Anything else, including an absent field, coerces to false.
var truthyTokens = map[string]bool{
	"y":    true,
	"t":    true,
	"true": true,
	"True": true,
}

// BoolFromToken coerces a submitted checkbox value to a boolean.
func BoolFromToken(v string) bool {
	return truthyTokens[v]
}

type VenueForm struct {
	Name               string   `schema:"name" validate:"required"`
	City               string   `schema:"city" validate:"required"`
	State              string   `schema:"state" validate:"required"`
	Address            string   `schema:"address"`
	Phone              string   `schema:"phone"`
	Genres             []string `schema:"genres"`
	FacebookLink       string   `schema:"facebook_link"`
	ImageLink          string   `schema:"image_link"`
	WebsiteLink        string   `schema:"website_link"`
	SeekingTalent      string   `schema:"seeking_talent"`
	SeekingDescription string   `schema:"seeking_description"`
}

func DecodeVenueForm(values url.Values) (*VenueForm, error) {
	var form VenueForm
	if err := decoder.Decode(&form, values); err != nil {
		return nil, fmt.Errorf("failed to decode venue form: %w", err)
	}
	if err := validate.Struct(&form); err != nil {
		return nil, fmt.Errorf("venue form validation failed: %w", err)
	}
	return &form, nil
}

// Model builds a new Venue from the submitted fields.
func (f *VenueForm) Model() *models.Venue {
	return &models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             models.JoinGenres(f.Genres),
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		Website:            f.WebsiteLink,
		SeekingTalent:      BoolFromToken(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string   `schema:"name" validate:"required"`
	City               string   `schema:"city" validate:"required"`
	State              string   `schema:"state" validate:"required"`
	Phone              string   `schema:"phone"`
	Genres             []string `schema:"genres"`
	FacebookLink       string   `schema:"facebook_link"`
	ImageLink          string   `schema:"image_link"`
	WebsiteLink        string   `schema:"website_link"`
	SeekingVenue       string   `schema:"seeking_venue"`
	SeekingDescription string   `schema:"seeking_description"`
}

func DecodeArtistForm(values url.Values) (*ArtistForm, error) {
	var form ArtistForm
	if err := decoder.Decode(&form, values); err != nil {
		return nil, fmt.Errorf("failed to decode artist form: %w", err)
	}
	if err := validate.Struct(&form); err != nil {
		return nil, fmt.Errorf("artist form validation failed: %w", err)
	}
	return &form, nil
}

// Model builds a new Artist from the submitted fields.
func (f *ArtistForm) Model() *models.Artist {
	return &models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             models.JoinGenres(f.Genres),
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		Website:            f.WebsiteLink,
		SeekingVenue:       BoolFromToken(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
	}
}

type ShowForm struct {
	VenueID   int64  `schema:"venue_id" validate:"required"`
	ArtistID  int64  `schema:"artist_id" validate:"required"`
	StartTime string `schema:"start_time" validate:"required"`
}

func DecodeShowForm(values url.Values) (*ShowForm, error) {
	var form ShowForm
	if err := decoder.Decode(&form, values); err != nil {
		return nil, fmt.Errorf("failed to decode show form: %w", err)
	}
	if err := validate.Struct(&form); err != nil {
		return nil, fmt.Errorf("show form validation failed: %w", err)
	}
	return &form, nil
}

// start time forms arrive either from a datetime-local input or as a
// plain timestamp string
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// Model builds a new Show, parsing the submitted start time.
func (f *ShowForm) Model() (*models.Show, error) {
	var parsed time.Time
	var err error
	for _, layout := range startTimeLayouts {
		parsed, err = time.Parse(layout, f.StartTime)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("unrecognized start_time %q", f.StartTime)
	}
	return &models.Show{
		VenueID:   f.VenueID,
		ArtistID:  f.ArtistID,
		StartTime: parsed,
	}, nil
}

func setIfPresent(values url.Values, field string, dst *string) {
	if vals, ok := values[field]; ok && len(vals) > 0 {
		*dst = vals[0]
	}
}

// ApplyVenueEdit overwrites the venue's editable fields from the submitted
// form. String fields only change when present; genres is read as the list
// of selected values; seeking_talent always coerces, so an unchecked
// checkbox clears the flag.
func ApplyVenueEdit(v *models.Venue, values url.Values) {
	setIfPresent(values, "name", &v.Name)
	setIfPresent(values, "city", &v.City)
	setIfPresent(values, "state", &v.State)
	setIfPresent(values, "address", &v.Address)
	setIfPresent(values, "phone", &v.Phone)
	setIfPresent(values, "website_link", &v.Website)
	setIfPresent(values, "facebook_link", &v.FacebookLink)
	setIfPresent(values, "image_link", &v.ImageLink)
	setIfPresent(values, "seeking_description", &v.SeekingDescription)
	if genres, ok := values["genres"]; ok {
		v.Genres = models.JoinGenres(genres)
	}
	v.SeekingTalent = BoolFromToken(values.Get("seeking_talent"))
}

// ApplyArtistEdit is the artist counterpart of ApplyVenueEdit.
func ApplyArtistEdit(a *models.Artist, values url.Values) {
	setIfPresent(values, "name", &a.Name)
	setIfPresent(values, "city", &a.City)
	setIfPresent(values, "state", &a.State)
	setIfPresent(values, "phone", &a.Phone)
	setIfPresent(values, "website_link", &a.Website)
	setIfPresent(values, "facebook_link", &a.FacebookLink)
	setIfPresent(values, "image_link", &a.ImageLink)
	setIfPresent(values, "seeking_description", &a.SeekingDescription)
	if genres, ok := values["genres"]; ok {
		a.Genres = models.JoinGenres(genres)
	}
	a.SeekingVenue = BoolFromToken(values.Get("seeking_venue"))
}
