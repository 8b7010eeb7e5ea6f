package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the calendar date format of listing and profile dates.
const DateLayout = "2006-01-02"

// ParseDuration parses a config duration, falling back to def when the value
// is empty, malformed or not positive.
func ParseDuration(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Warn().Err(err).Str("value", value).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}

// FormatDate renders t as a calendar date in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
