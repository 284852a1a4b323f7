package appointment

import "strings"

type AvailabilityQuery struct {
	Date     string `form:"date" json:"date"`
	BarberID string `form:"barber" json:"barber"`
}

// Complete reports whether both date and barber are set.
func (q AvailabilityQuery) Complete() bool {
	return strings.TrimSpace(q.Date) != "" && strings.TrimSpace(q.BarberID) != ""
}

// ComputeAvailableSlots removes booked times from the grid.
// Grid order is kept and each slot appears at most once.
// Booked entries not on the grid are ignored.
func ComputeAvailableSlots(grid, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[NormalizeTime(b)] = struct{}{}
	}

	out := make([]string, 0, len(grid))
	seen := make(map[string]struct{}, len(grid))
	for _, slot := range grid {
		if _, ok := taken[slot]; ok {
			continue
		}
		if _, dup := seen[slot]; dup {
			continue
		}
		seen[slot] = struct{}{}
		out = append(out, slot)
	}
	return out
}

// NormalizeTime trims a backend time value ("10:00:00", " 10:00") to "HH:MM".
func NormalizeTime(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > 5 && v[2] == ':' {
		return v[:5]
	}
	return v
}
