package helper

import (
	"testing"
)

func TestTimeOfDaySetValue(t *testing.T) {
	var tv TimeOfDay
	tv.SetValue("09:45")
	if tv.Hour() != "09" || tv.Minute() != "45" {
		t.Errorf("SetValue(09:45) gave hour=%q minute=%q", tv.Hour(), tv.Minute())
	}
	if tv.Value() != "09:45" {
		t.Errorf("Value() = %q, want 09:45", tv.Value())
	}
}

func TestTimeOfDayDefaults(t *testing.T) {
	var tv TimeOfDay
	if tv.Value() != "00:00" {
		t.Errorf("unset Value() = %q, want 00:00", tv.Value())
	}

	// hour first: minute defaults to 00
	tv = TimeOfDay{}
	tv.SelectHour("14")
	if tv.Value() != "14:00" {
		t.Errorf("SelectHour(14) Value() = %q, want 14:00", tv.Value())
	}

	// minute first: hour defaults to 23
	tv = TimeOfDay{}
	tv.SelectMinute("30")
	if tv.Value() != "23:30" {
		t.Errorf("SelectMinute(30) Value() = %q, want 23:30", tv.Value())
	}

	// later picks override without re-defaulting
	tv.SelectHour("08")
	if tv.Value() != "08:30" {
		t.Errorf("SelectHour(08) after minute Value() = %q, want 08:30", tv.Value())
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"09:45", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"12:60", true},
		{"9:45", true},
		{"0945", true},
		{"", true},
		{"ab:cd", true},
	}
	for _, tt := range tests {
		_, err := ParseTimeOfDay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimeOfDay(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestHourMinuteOptions(t *testing.T) {
	hours := HourOptions()
	if len(hours) != 24 || hours[0] != "23" || hours[23] != "00" {
		t.Errorf("HourOptions() = len %d first %q last %q", len(hours), hours[0], hours[len(hours)-1])
	}
	minutes := MinuteOptions()
	if len(minutes) != 60 || minutes[0] != "00" || minutes[59] != "59" {
		t.Errorf("MinuteOptions() = len %d first %q last %q", len(minutes), minutes[0], minutes[len(minutes)-1])
	}
}
