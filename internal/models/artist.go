package models

import "github.com/uptrace/bun"

type Artist struct {
	bun.BaseModel `bun:"table:artists,alias:artist"`

	ID                 int64  `bun:"id,pk,autoincrement" json:"id"`
	Name               string `bun:"name,notnull" json:"name"`
	City               string `bun:"city,notnull" json:"city"`
	State              string `bun:"state,notnull" json:"state"`
	Phone              string `bun:"phone,nullzero" json:"phone"`
	Website            string `bun:"website,nullzero" json:"website"`
	FacebookLink       string `bun:"facebook_link,nullzero" json:"facebook_link"`
	Genres             string `bun:"genres,nullzero" json:"genres"`
	ImageLink          string `bun:"image_link,nullzero" json:"image_link"`
	SeekingVenue       bool   `bun:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string `bun:"seeking_description,nullzero" json:"seeking_description"`

	Shows []*Show `bun:"rel:has-many,join:id=artist_id" json:"-"`
}

func (a *Artist) GenreList() []string {
	return SplitGenres(a.Genres)
}
