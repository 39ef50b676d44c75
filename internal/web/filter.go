package web

import (
	"time"

	"showbill/internal/models"
)

const (
	// full: weekday, long month, day, year and clock
	fullLayout = "Monday January, 2, 2006 at 3:04PM"
	// medium: abbreviated weekday and numeric month
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

var datetimeParseLayouts = []string{
	models.StartTimeLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// FormatDatetime is the display filter for timestamps: it parses the value
// and renders it in the named format, "full" or "medium". Pure function; an
// unparseable value passes through unchanged.
func FormatDatetime(value, format string) string {
	var parsed time.Time
	var err error
	for _, layout := range datetimeParseLayouts {
		parsed, err = time.Parse(layout, value)
		if err == nil {
			break
		}
	}
	if err != nil {
		return value
	}

	switch format {
	case "full":
		return parsed.Format(fullLayout)
	default:
		return parsed.Format(mediumLayout)
	}
}
