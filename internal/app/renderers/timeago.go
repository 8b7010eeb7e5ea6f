package renderers

import (
	"fmt"
	"time"
)

var timeUnits = []struct {
	name    string
	seconds int64
}{
	{"year", 31536000},
	{"month", 2592000},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
}

// FormatTimeAgo labels an epoch-millisecond timestamp relative to now, using
// the largest whole unit ("2 hours ago"). Anything under a minute, or in the
// future, is "just now".
func FormatTimeAgo(ts int64, now time.Time) string {
	seconds := (now.UnixMilli() - ts) / 1000
	for _, u := range timeUnits {
		n := seconds / u.seconds
		if n >= 1 {
			if n == 1 {
				return fmt.Sprintf("1 %s ago", u.name)
			}
			return fmt.Sprintf("%d %ss ago", n, u.name)
		}
	}
	return "just now"
}

func msTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}
