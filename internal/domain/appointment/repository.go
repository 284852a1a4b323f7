package appointment

import "context"

// BookedTimesSource returns the times already booked for a barber on a date.
type BookedTimesSource interface {
	BookedTimes(ctx context.Context, q AvailabilityQuery) ([]string, error)
}

// BookingSubmitter creates an appointment on behalf of the session owner.
// The raw response body of the appointments service is returned on success.
type BookingSubmitter interface {
	Submit(ctx context.Context, token string, req AppointmentRequest) ([]byte, error)
}
