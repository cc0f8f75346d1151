package entity

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Test represents a bookable diagnostic test offering. Slots is kept as a
// stringified integer for wire compatibility with the existing documents;
// SlotCount and FormatSlots are the only sanctioned ways to touch it.
type Test struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"short_description" json:"short_description"`
	Image       string             `bson:"image" json:"image"`
	Date        string             `bson:"date" json:"date"`
	Cost        float64            `bson:"cost" json:"cost"`
	Slots       string             `bson:"slots" json:"slots"`
}

// SlotCount parses the stored slot string. Slot counts are non-negative;
// anything else in the document is a data error.
func (t *Test) SlotCount() (int, error) {
	n, err := strconv.Atoi(t.Slots)
	if err != nil {
		return 0, fmt.Errorf("invalid slot count %q: %w", t.Slots, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative slot count %d", n)
	}
	return n, nil
}

// FormatSlots renders a slot count back into the stored string form.
func FormatSlots(n int) string {
	return strconv.Itoa(n)
}
