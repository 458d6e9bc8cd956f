package booking

import (
	"strings"
	"time"
)

// ===============================
// Slot template
// ===============================

// SlotTemplate is the fixed, ordered list of time labels considered
// bookable in a business day. Availability is always derived from this
// list; no slot is ever synthesized beyond it.
type SlotTemplate []string

// DefaultTemplate covers business hours in 30-minute steps.
func DefaultTemplate() SlotTemplate {
	return SlotTemplate{
		"09:00", "09:30",
		"10:00", "10:30",
		"11:00", "11:30",
		"12:00", "12:30",
		"13:00", "13:30",
		"14:00", "14:30",
		"15:00", "15:30",
		"16:00", "16:30",
		"17:00", "17:30",
		"18:00",
	}
}

// ParseTemplate reads a comma-separated list of HH:MM labels. Labels keep
// the order they were written in.
func ParseTemplate(raw string) (SlotTemplate, bool) {
	var tpl SlotTemplate
	for _, part := range strings.Split(raw, ",") {
		label := strings.TrimSpace(part)
		if label == "" {
			continue
		}
		if _, err := time.Parse("15:04", label); err != nil {
			return nil, false
		}
		tpl = append(tpl, label)
	}
	if len(tpl) == 0 {
		return nil, false
	}
	return tpl, true
}

func (t SlotTemplate) Contains(label string) bool {
	for _, s := range t {
		if s == label {
			return true
		}
	}
	return false
}

// ValidDate checks the YYYY-MM-DD calendar-date format bookings are
// keyed by.
func ValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// ===============================
// Availability types
// ===============================

type AvailabilityInput struct {
	BarberID uint
	Date     string
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// AvailableTimes filters a computed slot list down to the bookable labels,
// preserving template order.
func AvailableTimes(slots []TimeSlot) []string {
	var out []string
	for _, s := range slots {
		if s.Available {
			out = append(out, s.Time)
		}
	}
	return out
}
