package analysis

import (
	"time"

	"github.com/hy461283-sudo/pulseX/internal/domain"
)

// WindowDays are the periods the dashboard offers. FilterByWindow
// accepts any positive day count; this list only drives the UI.
var WindowDays = []int{1, 3, 7, 14, 21, 28}

// FilterByWindow keeps tweets created at or after now minus days.
// The cutoff is computed in calendar days, so any positive day count
// works without overflowing a Duration. Tweets carrying the
// unknown-time sentinel are excluded: they cannot be known to be
// in-window.
func FilterByWindow(ds domain.Dataset, now time.Time, days int) domain.Dataset {
	cutoff := now.AddDate(0, 0, -days)

	out := make(domain.Dataset, 0, len(ds))
	for _, t := range ds {
		if t.CreatedAt.IsZero() {
			continue
		}
		if !t.CreatedAt.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}
