package models

import (
	"strings"

	"github.com/uptrace/bun"
)

type Venue struct {
	bun.BaseModel `bun:"table:venues,alias:venue"`

	ID                 int64  `bun:"id,pk,autoincrement" json:"id"`
	Name               string `bun:"name,notnull" json:"name"`
	City               string `bun:"city,notnull" json:"city"`
	State              string `bun:"state,notnull" json:"state"`
	Address            string `bun:"address,nullzero" json:"address"`
	Phone              string `bun:"phone,nullzero" json:"phone"`
	Website            string `bun:"website,nullzero" json:"website"`
	FacebookLink       string `bun:"facebook_link,nullzero" json:"facebook_link"`
	Genres             string `bun:"genres,nullzero" json:"genres"`
	ImageLink          string `bun:"image_link,nullzero" json:"image_link"`
	SeekingTalent      bool   `bun:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string `bun:"seeking_description,nullzero" json:"seeking_description"`

	Shows []*Show `bun:"rel:has-many,join:id=venue_id" json:"-"`
}

// GenreList splits the stored delimited genres into the submitted categories.
func (v *Venue) GenreList() []string {
	return SplitGenres(v.Genres)
}

// SplitGenres turns the delimited storage form back into the category list,
// preserving order and duplicates exactly as submitted.
func SplitGenres(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// JoinGenres builds the delimited storage form from a category list.
func JoinGenres(genres []string) string {
	return strings.Join(genres, ",")
}
