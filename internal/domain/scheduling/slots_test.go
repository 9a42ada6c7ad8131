package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

func fullDay() *models.WorkingHours {
	return &models.WorkingHours{
		DayOfWeek:           1,
		StartTime:           "08:00",
		EndTime:             "18:00",
		Active:              true,
		AppointmentDuration: 30,
		BreakStart:          "12:00",
		BreakEnd:            "13:00",
	}
}

func TestGenerateSlotsClosedDay(t *testing.T) {
	assert.Empty(t, GenerateSlots(nil, nil))

	wh := fullDay()
	wh.Active = false
	assert.Empty(t, GenerateSlots(wh, nil))
}

func TestGenerateSlotsFullDayWithBreak(t *testing.T) {
	got := GenerateSlots(fullDay(), nil)

	want := []string{
		"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
		"11:00", "11:30",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
		"16:00", "16:30", "17:00", "17:30",
	}
	assert.Equal(t, want, got)

	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i], "slots must ascend")
	}
	assert.NotContains(t, got, "12:00")
	assert.NotContains(t, got, "12:30")
}

func TestGenerateSlotsBookedTimeExcluded(t *testing.T) {
	got := GenerateSlots(fullDay(), []string{"09:00"})

	assert.NotContains(t, got, "09:00")
	assert.Contains(t, got, "08:30")
	assert.Contains(t, got, "09:30")
	assert.Len(t, got, 17)
}

func TestGenerateSlotsPartialLastStepDropped(t *testing.T) {
	wh := &models.WorkingHours{
		Active:              true,
		StartTime:           "08:00",
		EndTime:             "09:45",
		AppointmentDuration: 30,
	}

	// 09:30 + 30min passaria do fim da janela.
	assert.Equal(t, []string{"08:00", "08:30", "09:00"}, GenerateSlots(wh, nil))
}

func TestGenerateSlotsDegenerateWindows(t *testing.T) {
	wh := fullDay()
	wh.StartTime = "10:00"
	wh.EndTime = "10:00"
	assert.Empty(t, GenerateSlots(wh, nil))

	wh = fullDay()
	wh.AppointmentDuration = 0
	assert.Empty(t, GenerateSlots(wh, nil))

	wh = fullDay()
	wh.AppointmentDuration = -15
	assert.Empty(t, GenerateSlots(wh, nil))

	wh = fullDay()
	wh.StartTime = "18:00"
	wh.EndTime = "08:00"
	assert.Empty(t, GenerateSlots(wh, nil))
}

func TestGenerateSlotsMalformedBreakIgnored(t *testing.T) {
	wh := fullDay()
	wh.BreakStart = "13:00"
	wh.BreakEnd = "12:00"

	got := GenerateSlots(wh, nil)
	assert.Contains(t, got, "12:00")
	assert.Contains(t, got, "12:30")
	assert.Len(t, got, 20)
}

func TestGenerateSlotsNoBreakConfigured(t *testing.T) {
	wh := fullDay()
	wh.BreakStart = ""
	wh.BreakEnd = ""

	got := GenerateSlots(wh, nil)
	assert.Len(t, got, 20)
	assert.Contains(t, got, "12:00")
}

func TestParseMinutes(t *testing.T) {
	m, ok := parseMinutes("08:30")
	assert.True(t, ok)
	assert.Equal(t, 510, m)

	_, ok = parseMinutes("")
	assert.False(t, ok)

	_, ok = parseMinutes("25:00")
	assert.False(t, ok)

	_, ok = parseMinutes("aa:bb")
	assert.False(t, ok)
}
