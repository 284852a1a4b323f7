package appointment

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/barber-frontend/internal/domain/appointment"
)

// GetAvailability turns the shop's hourly grid and the booked times into open slots.
type GetAvailability struct {
	source domain.BookedTimesSource
	hours  domain.WorkingHours
}

func NewGetAvailability(source domain.BookedTimesSource, hours domain.WorkingHours) *GetAvailability {
	if !hours.Valid() {
		hours = domain.DefaultWorkingHours()
	}
	return &GetAvailability{source: source, hours: hours}
}

// Execute returns an empty list without any backend call when the query is incomplete.
// A failed fetch is returned as an error; it never falls back to the full grid.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	q domain.AvailabilityQuery,
) ([]string, error) {

	if !q.Complete() {
		return []string{}, nil
	}

	booked, err := uc.source.BookedTimes(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load booked times: %w", err)
	}

	return domain.ComputeAvailableSlots(uc.hours.Grid(), booked), nil
}
