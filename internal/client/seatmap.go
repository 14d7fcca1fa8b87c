package client

import "fmt"

// The seat map is a fixed 6x8 grid labeled A1..F8, identical for every
// showtime. Every seat is always selectable; availability is never checked.
const (
	SeatRows = 6
	SeatCols = 8
)

// SeatLabel returns the label for a zero-based grid index, e.g. 0 -> A1,
// 8 -> B1, 47 -> F8.
func SeatLabel(index int) string {
	row := rune('A' + index/SeatCols)
	col := index%SeatCols + 1
	return fmt.Sprintf("%c%d", row, col)
}

// SeatLabels returns all 48 labels in grid order.
func SeatLabels() []string {
	labels := make([]string, SeatRows*SeatCols)
	for i := range labels {
		labels[i] = SeatLabel(i)
	}
	return labels
}

// SeatIndex maps a label back to its grid index, or -1 for anything outside
// the map.
func SeatIndex(label string) int {
	if len(label) != 2 {
		return -1
	}
	row := int(label[0] - 'A')
	col := int(label[1] - '1')
	if row < 0 || row >= SeatRows || col < 0 || col >= SeatCols {
		return -1
	}
	return row*SeatCols + col
}
