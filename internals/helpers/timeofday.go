package helper

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay models the console's two-field time control: hour and minute are
// chosen independently and the pair is exposed as one "HH:MM" string
// (batch_schedules start_time/end_time use this form).
//
// Field defaulting, kept as the control behaves: picking an hour first fills
// the minute with "00"; picking a minute first fills the hour with "23".
// While either field is still unset, Value() falls back to "00:00".
type TimeOfDay struct {
	hour   string
	minute string
}

// ParseTimeOfDay validates an "HH:MM" string (00-23 / 00-59, zero padded).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var tv TimeOfDay
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return tv, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 2 || h < 0 || h > 23 {
		return tv, fmt.Errorf("invalid hour %q", parts[0])
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || m < 0 || m > 59 {
		return tv, fmt.Errorf("invalid minute %q", parts[1])
	}
	tv.hour = parts[0]
	tv.minute = parts[1]
	return tv, nil
}

// SetValue takes an external "HH:MM" update and splits it into the two fields.
// Empty input leaves the fields untouched.
func (tv *TimeOfDay) SetValue(s string) {
	if s == "" {
		return
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return
	}
	tv.hour = parts[0]
	tv.minute = parts[1]
}

// SelectHour picks an hour; an unset minute defaults to "00".
func (tv *TimeOfDay) SelectHour(h string) {
	tv.hour = h
	if tv.minute == "" {
		tv.minute = "00"
	}
}

// SelectMinute picks a minute; an unset hour defaults to "23".
func (tv *TimeOfDay) SelectMinute(m string) {
	tv.minute = m
	if tv.hour == "" {
		tv.hour = "23"
	}
}

// Hour returns the selected hour field ("" when unset).
func (tv *TimeOfDay) Hour() string { return tv.hour }

// Minute returns the selected minute field ("" when unset).
func (tv *TimeOfDay) Minute() string { return tv.minute }

// Value emits the combined string, "00:00" while either field is unset.
func (tv *TimeOfDay) Value() string {
	if tv.hour == "" || tv.minute == "" {
		return "00:00"
	}
	return tv.hour + ":" + tv.minute
}

// HourOptions lists the selectable hours, descending 23..00 as rendered.
func HourOptions() []string {
	out := make([]string, 0, 24)
	for i := 23; i >= 0; i-- {
		out = append(out, fmt.Sprintf("%02d", i))
	}
	return out
}

// MinuteOptions lists the selectable minutes, ascending 00..59.
func MinuteOptions() []string {
	out := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		out = append(out, fmt.Sprintf("%02d", i))
	}
	return out
}
