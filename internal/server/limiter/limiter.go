// Package limiter counts attempts per account in a fixed window.
package limiter

import (
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/server/models"
)

type Limiter struct {
	max    int
	window time.Duration
}

func New(max int, window time.Duration) *Limiter {
	return &Limiter{max: max, window: window}
}

// TryConsume records one attempt on a and reports whether it is allowed.
// The window restarts on the first attempt made more than one window after
// the previous start. A denied attempt leaves a untouched.
func (l *Limiter) TryConsume(a *models.Attempts, now time.Time) bool {
	if a.WindowStart == nil || now.Sub(*a.WindowStart) > l.window {
		start := now
		a.WindowStart = &start
		a.Count = 1
		return true
	}
	if a.Count >= l.max {
		return false
	}
	a.Count++
	return true
}
