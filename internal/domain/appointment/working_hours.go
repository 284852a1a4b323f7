package appointment

import "fmt"

// WorkingHours is the shop's daily window. Both ends are bookable slots.
type WorkingHours struct {
	Opening int
	Closing int
}

func DefaultWorkingHours() WorkingHours {
	return WorkingHours{Opening: 9, Closing: 18}
}

func (w WorkingHours) Valid() bool {
	return w.Opening >= 0 && w.Closing <= 23 && w.Opening <= w.Closing
}

// Grid returns one "HH:00" slot per hour from opening to closing, inclusive.
func (w WorkingHours) Grid() []string {
	return GenerateGrid(w.Opening, w.Closing)
}

func GenerateGrid(opening, closing int) []string {
	if opening < 0 || closing > 23 || opening > closing {
		return []string{}
	}

	grid := make([]string, 0, closing-opening+1)
	for h := opening; h <= closing; h++ {
		grid = append(grid, fmt.Sprintf("%02d:00", h))
	}
	return grid
}
