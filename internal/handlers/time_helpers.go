package handlers

import (
	"github.com/BruksfildServices01/barber-frontend/internal/timezone"
)

// today is the earliest date the booking form accepts.
func today(tz string) string {
	return timezone.NowIn(tz).Format("2006-01-02")
}
