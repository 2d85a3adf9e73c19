package helpers

import (
	"regexp"
	"strconv"

	"Showcase/internal/models"
)

// A standalone digit run: not glued to a letter or another digit, so
// "photo_2.jpg" yields 2 while "youtu.be/abc123" yields nothing.
var orderTokenRegex = regexp.MustCompile(`(?:^|[^A-Za-z0-9])([0-9]+)(?:[^A-Za-z0-9]|$)`)

const maxOrderToken = 9999

// ExtractOrder derives a zero-based display order from the first standalone
// run of digits in name. Only values in [1, 9999] count; "photo_2.jpg" gives 1.
// This is a heuristic: unrelated numbers such as a year are picked up as well.
func ExtractOrder(name string) (int, bool) {
	match := orderTokenRegex.FindStringSubmatch(name)
	if match == nil {
		return 0, false
	}
	value, err := strconv.Atoi(match[1])
	if err != nil || value < 1 || value > maxOrderToken {
		return 0, false
	}
	return value - 1, true
}

// ResolveOrder applies the ordering precedence: a number in the name first,
// then one past the highest order already used in the group, then the
// "last" sentinel.
func ResolveOrder(name, groupID string, metadata models.Metadata) int {
	if order, ok := ExtractOrder(name); ok {
		return order
	}
	if groupID == "" {
		return models.DefaultOrder
	}
	highest := -1
	for _, record := range metadata {
		if record.GroupID == groupID && record.Order > highest {
			highest = record.Order
		}
	}
	return highest + 1
}
