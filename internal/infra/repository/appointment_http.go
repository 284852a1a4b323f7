package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	domain "github.com/BruksfildServices01/barber-frontend/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontend/internal/upstream"
)

// AppointmentHTTPRepository reaches the appointments service through the proxy client.
type AppointmentHTTPRepository struct {
	client *upstream.Client
}

func NewAppointmentHTTPRepository(client *upstream.Client) *AppointmentHTTPRepository {
	return &AppointmentHTTPRepository{client: client}
}

// ======================================================
// BOOKED TIMES
// ======================================================

func (r *AppointmentHTTPRepository) BookedTimes(
	ctx context.Context,
	q domain.AvailabilityQuery,
) ([]string, error) {

	resp, err := r.client.Fetch(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/appointments/available",
		Query:  url.Values{"date": {q.Date}, "barber": {q.BarberID}},
	}, nil)
	if err != nil {
		return nil, err
	}

	return decodeBookedTimes(resp.Body)
}

var errUnreadableBookedTimes = errors.New("booked times: unrecognized response")

// decodeBookedTimes accepts a bare list or one wrapped in "data", "booked" or "booked_times".
// Entries are strings or objects carrying "hora" / "time". Anything else is an error so an
// unreadable reply is never taken as "nothing booked".
func decodeBookedTimes(body []byte) ([]string, error) {
	raw := bytes.TrimSpace(body)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, errUnreadableBookedTimes
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("booked times: %w", err)
		}
		inner, ok := firstKey(wrapped, "data", "booked", "booked_times")
		if !ok {
			return nil, errUnreadableBookedTimes
		}
		if err := json.Unmarshal(inner, &list); err != nil || list == nil {
			return nil, errUnreadableBookedTimes
		}
	}

	out := make([]string, 0, len(list))
	for _, entry := range list {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			out = append(out, domain.NormalizeTime(s))
			continue
		}

		var obj struct {
			Hora string `json:"hora"`
			Time string `json:"time"`
		}
		if err := json.Unmarshal(entry, &obj); err != nil {
			return nil, fmt.Errorf("booked times: %w", err)
		}
		switch {
		case obj.Hora != "":
			out = append(out, domain.NormalizeTime(obj.Hora))
		case obj.Time != "":
			out = append(out, domain.NormalizeTime(obj.Time))
		default:
			return nil, errUnreadableBookedTimes
		}
	}
	return out, nil
}

func firstKey(m map[string]json.RawMessage, keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// ======================================================
// SUBMIT
// ======================================================

func (r *AppointmentHTTPRepository) Submit(
	ctx context.Context,
	token string,
	req domain.AppointmentRequest,
) ([]byte, error) {

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Fetch(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   "/appointments",
		Body:   body,
		Token:  token,
	}, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
