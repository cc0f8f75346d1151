package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotCount(t *testing.T) {
	tests := []struct {
		name    string
		slots   string
		want    int
		wantErr bool
	}{
		{name: "plain number", slots: "5", want: 5},
		{name: "zero", slots: "0", want: 0},
		{name: "large", slots: "120", want: 120},
		{name: "empty string", slots: "", wantErr: true},
		{name: "not a number", slots: "five", wantErr: true},
		{name: "negative", slots: "-1", wantErr: true},
		{name: "decimal", slots: "5.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test := Test{Slots: tt.slots}
			got, err := test.SlotCount()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSlots_RoundTrip(t *testing.T) {
	// Booking decrements, cancelling restores: "5" -> "4" -> "5".
	test := Test{Slots: "5"}

	n, err := test.SlotCount()
	require.NoError(t, err)

	test.Slots = FormatSlots(n - 1)
	assert.Equal(t, "4", test.Slots)

	n, err = test.SlotCount()
	require.NoError(t, err)

	test.Slots = FormatSlots(n + 1)
	assert.Equal(t, "5", test.Slots)
}
