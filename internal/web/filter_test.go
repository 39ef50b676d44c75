package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDatetimeFull(t *testing.T) {
	got := FormatDatetime("2026-05-21T21:30:00.000000+0000", "full")
	assert.Equal(t, "Thursday May, 21, 2026 at 9:30PM", got)
}

func TestFormatDatetimeMedium(t *testing.T) {
	got := FormatDatetime("2026-05-21T21:30:00.000000+0000", "medium")
	assert.Equal(t, "Thu 05, 21, 2026 9:30PM", got)
}

func TestFormatDatetimeAcceptsRFC3339(t *testing.T) {
	got := FormatDatetime("2026-05-21T21:30:00Z", "medium")
	assert.Equal(t, "Thu 05, 21, 2026 9:30PM", got)
}

func TestFormatDatetimePassthrough(t *testing.T) {
	assert.Equal(t, "not a date", FormatDatetime("not a date", "full"))
	assert.Equal(t, "", FormatDatetime("", "medium"))
}
