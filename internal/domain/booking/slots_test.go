package booking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTemplate_OrderAndBounds(t *testing.T) {
	tpl := DefaultTemplate()

	require.Len(t, tpl, 19)
	require.Equal(t, "09:00", tpl[0])
	require.Equal(t, "18:00", tpl[len(tpl)-1])

	// Labels stay in business-hours order.
	for i := 1; i < len(tpl); i++ {
		require.Less(t, tpl[i-1], tpl[i])
	}
}

func TestParseTemplate(t *testing.T) {
	tpl, ok := ParseTemplate("08:00, 08:45,09:30")
	require.True(t, ok)
	require.Equal(t, SlotTemplate{"08:00", "08:45", "09:30"}, tpl)

	_, ok = ParseTemplate("morning,10:00")
	require.False(t, ok)

	_, ok = ParseTemplate("")
	require.False(t, ok)
}

func TestSlotTemplateContains(t *testing.T) {
	tpl := DefaultTemplate()
	require.True(t, tpl.Contains("10:30"))
	require.False(t, tpl.Contains("10:15"))
	require.False(t, tpl.Contains("18:30"))
}

func TestValidDate(t *testing.T) {
	require.True(t, ValidDate("2026-09-01"))
	require.False(t, ValidDate(""))
	require.False(t, ValidDate("01/09/2026"))
	require.False(t, ValidDate("2026-13-40"))
}

func TestStatus(t *testing.T) {
	require.True(t, StatusPending.Valid())
	require.True(t, StatusCompleted.Valid())
	require.True(t, StatusCancelled.Valid())
	require.False(t, Status("scheduled").Valid())

	require.Equal(t, StatusPending, InitialStatus(false))
	require.Equal(t, StatusCompleted, InitialStatus(true))

	require.True(t, StatusPending.OccupiesSlot())
	require.True(t, StatusCompleted.OccupiesSlot())
	require.False(t, StatusCancelled.OccupiesSlot())
}

func TestAvailableTimes(t *testing.T) {
	slots := []TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: false},
		{Time: "10:00", Available: true},
	}
	require.Equal(t, []string{"09:00", "10:00"}, AvailableTimes(slots))
}
