package schedule

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		want   TimeOfDay
		wantOK bool
	}{
		{name: "nil", value: nil},
		{name: "empty string", value: ""},
		{name: "blank string", value: "   "},
		{name: "native datetime", value: time.Date(2024, time.January, 15, 13, 45, 0, 0, time.Local), want: TimeOfDay{13, 45}, wantOK: true},
		{name: "zero datetime", value: time.Time{}},
		{name: "military with colon", value: "13:45", want: TimeOfDay{13, 45}, wantOK: true},
		{name: "military without colon", value: "1345", want: TimeOfDay{13, 45}, wantOK: true},
		{name: "military three digits", value: "905", want: TimeOfDay{9, 5}, wantOK: true},
		{name: "military midnight", value: "0:00", want: TimeOfDay{0, 0}, wantOK: true},
		{name: "military last minute", value: "23:59", want: TimeOfDay{23, 59}, wantOK: true},
		{name: "military hours out of range", value: "25:00"},
		{name: "military minutes out of range", value: "12:60"},
		{name: "12-hour pm", value: "1:30 pm", want: TimeOfDay{13, 30}, wantOK: true},
		{name: "12-hour pm no space", value: "1:30pm", want: TimeOfDay{13, 30}, wantOK: true},
		{name: "12-hour am", value: "9:15 am", want: TimeOfDay{9, 15}, wantOK: true},
		{name: "12-hour no minutes", value: "9am", want: TimeOfDay{9, 0}, wantOK: true},
		{name: "12-hour mixed case", value: "11:05 PM", want: TimeOfDay{23, 5}, wantOK: true},
		{name: "12 pm is noon", value: "12:00 pm", want: TimeOfDay{12, 0}, wantOK: true},
		{name: "12 am is midnight", value: "12:00 am", want: TimeOfDay{0, 0}, wantOK: true},
		{name: "12-hour hour out of range", value: "13:00 pm"},
		{name: "12-hour zero hour", value: "0:30 am"},
		{name: "noon", value: "noon", want: TimeOfDay{12, 0}, wantOK: true},
		{name: "midnight", value: "Midnight", want: TimeOfDay{0, 0}, wantOK: true},
		{name: "gibberish", value: "half past two"},
		{name: "lone hour", value: "13"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimeOfDay(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("ParseTimeOfDay(%v) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseTimeOfDay(%v) = %+v, want %+v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseTimeOfDayMilitaryRange(t *testing.T) {
	// every valid military hour/minute round-trips exactly
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 1, 30, 59} {
			s := timeString(h, m)
			got, ok := ParseTimeOfDay(s)
			if !ok {
				t.Fatalf("ParseTimeOfDay(%q) failed", s)
			}
			if got.Hours != h || got.Minutes != m {
				t.Errorf("ParseTimeOfDay(%q) = %+v", s, got)
			}
		}
	}
}

func timeString(h, m int) string {
	return time.Date(2024, time.January, 1, h, m, 0, 0, time.UTC).Format("15:04")
}
