package interview

import (
	"fmt"
	"strings"
)

// Summary builds the finish-confirmation recap from the learned data: one
// line for the room list, then one line per room with its furniture, in
// insertion order.
func Summary(ld LearnedData) string {
	var lines []string

	if len(ld.Rooms) > 0 {
		lines = append(lines, fmt.Sprintf("- Rooms furnished: %s", strings.Join(ld.Rooms, ", ")))
	}

	for _, room := range ld.Rooms {
		if furniture, ok := ld.FurnitureByRoom[room]; ok {
			lines = append(lines, fmt.Sprintf("- %s: %s", room, strings.Join(furniture, ", ")))
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "- Basic room information collected")
	}

	return strings.Join(lines, "\n")
}
