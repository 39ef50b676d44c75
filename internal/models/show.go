package models

import (
	"time"

	"github.com/uptrace/bun"
)

// StartTimeLayout is the canonical display form for show start times,
// e.g. 2026-09-01T20:00:00.000000-0400.
const StartTimeLayout = "2006-01-02T15:04:05.000000-0700"

// Show links one Artist to one Venue at one point in time. It has no
// identity beyond that triple.
type Show struct {
	bun.BaseModel `bun:"table:shows,alias:show"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	VenueID   int64     `bun:"venue_id,notnull" json:"venue_id"`
	ArtistID  int64     `bun:"artist_id,notnull" json:"artist_id"`
	StartTime time.Time `bun:"start_time,notnull" json:"start_time"`

	Venue  *Venue  `bun:"rel:belongs-to,join:venue_id=id" json:"-"`
	Artist *Artist `bun:"rel:belongs-to,join:artist_id=id" json:"-"`
}

// Upcoming reports whether the show starts at or after now. The
// classification is computed on read, never persisted.
func (s *Show) Upcoming(now time.Time) bool {
	return !s.StartTime.Before(now)
}

// FormatStartTime renders the start time in the canonical layout.
func (s *Show) FormatStartTime() string {
	return s.StartTime.Format(StartTimeLayout)
}
