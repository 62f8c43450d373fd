package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateKey(t *testing.T) {
	assert.Equal(t, "2026-03-04", NormalizeDateKey("03/04/2026"))
	assert.Equal(t, "2026-03-04", NormalizeDateKey("3/4/2026"))
	assert.Equal(t, "2026-03-04", NormalizeDateKey("2026-03-04"))
	assert.Equal(t, "", NormalizeDateKey(""))

	// Unrecognized formats pass through unchanged.
	assert.Equal(t, "04.03.2026", NormalizeDateKey("04.03.2026"))
	assert.Equal(t, "3/2026", NormalizeDateKey("3/2026"))
}

func TestNormalizeDateKeyIdempotent(t *testing.T) {
	inputs := []string{"03/04/2026", "3/4/2026", "2026-03-04", "", "junk"}
	for _, raw := range inputs {
		once := NormalizeDateKey(raw)
		assert.Equal(t, once, NormalizeDateKey(once), "input %q", raw)
	}
}

func TestNormalizeTimeSlot(t *testing.T) {
	assert.Equal(t, "10:30am", NormalizeTimeSlot("10:30 AM"))
	assert.Equal(t, "10:30am", NormalizeTimeSlot("  10:30am "))
	assert.Equal(t, "10:30am", NormalizeTimeSlot("10:30\tAM"))
	assert.Equal(t, "", NormalizeTimeSlot(""))

	// Idempotent and case/space-insensitive.
	assert.Equal(t, NormalizeTimeSlot("10:30 AM"), NormalizeTimeSlot("10:30am"))
	assert.Equal(t, NormalizeTimeSlot("10:30 AM"), NormalizeTimeSlot(NormalizeTimeSlot("10:30 AM")))
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "12:00am", SlotLabel(0))
	assert.Equal(t, "9:00am", SlotLabel(9*60))
	assert.Equal(t, "11:45am", SlotLabel(11*60+45))
	assert.Equal(t, "12:30pm", SlotLabel(12*60+30))
	assert.Equal(t, "1:00pm", SlotLabel(13*60))
	assert.Equal(t, "4:30pm", SlotLabel(16*60+30))
	assert.Equal(t, "11:59pm", SlotLabel(23*60+59))
}

func TestSlotMinutesRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m += 15 {
		parsed, err := SlotMinutes(SlotLabel(m))
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestSlotMinutesAcceptsUnnormalizedLabels(t *testing.T) {
	mins, err := SlotMinutes("9:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 9*60, mins)

	mins, err = SlotMinutes("12:15 PM")
	require.NoError(t, err)
	assert.Equal(t, 12*60+15, mins)
}

func TestSlotMinutesRejectsGarbage(t *testing.T) {
	for _, label := range []string{"", "9:00", "25:00am", "9:75am", "noonish", "13:00pm"} {
		_, err := SlotMinutes(label)
		assert.Error(t, err, "label %q", label)
	}
}

func TestParseClock(t *testing.T) {
	mins, err := ParseClock("09:00")
	require.NoError(t, err)
	assert.Equal(t, 540, mins)

	mins, err = ParseClock("17:30")
	require.NoError(t, err)
	assert.Equal(t, 1050, mins)

	_, err = ParseClock("24:00")
	assert.Error(t, err)
	_, err = ParseClock("nine")
	assert.Error(t, err)
}
