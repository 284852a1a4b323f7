package dto

import "time"

// SlotDTO is one open hourly slot.
type SlotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func NewSlotDTOs(slots []string) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		dto := SlotDTO{Start: s}
		if t, err := time.Parse("15:04", s); err == nil {
			dto.End = slotEnd(t)
		}
		out = append(out, dto)
	}
	return out
}

// slotEnd is one hour after start; the 23:00 slot ends at 24:00, not 00:00.
func slotEnd(start time.Time) string {
	end := start.Add(time.Hour)
	if end.Day() != start.Day() {
		return "24:00"
	}
	return end.Format("15:04")
}
