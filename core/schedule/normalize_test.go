package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/trezcool/ratiba/core"
)

// row keys the cells the way the file readers do.
func row(kv map[string]interface{}) RawRow {
	r := make(RawRow, len(kv))
	for k, v := range kv {
		r[core.CleanString(k, true /* lower */)] = v
	}
	return r
}

func TestNormalizeRow(t *testing.T) {
	t.Run("minimal row gets defaults", func(t *testing.T) {
		evt, skip := NormalizeRow(row(map[string]interface{}{
			"section date": "20240115",
			"start time":   "09:00",
			"end time":     "10:00",
		}), 1)
		if skip != nil {
			t.Fatalf("NormalizeRow() skipped: %v", skip)
		}
		if evt.Title != "Untitled Session" {
			t.Errorf("Title = %q", evt.Title)
		}
		if evt.Location != "Unknown Location" {
			t.Errorf("Location = %q", evt.Location)
		}
		if evt.LearnerGroup != Ungrouped {
			t.Errorf("LearnerGroup = %q", evt.LearnerGroup)
		}
		if evt.Description != "" {
			t.Errorf("Description = %q", evt.Description)
		}
		wantStart := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.Local)
		if !evt.Start.Equal(wantStart) || !evt.End.Equal(wantStart.Add(time.Hour)) {
			t.Errorf("Start/End = %v/%v", evt.Start, evt.End)
		}
	})

	t.Run("full row", func(t *testing.T) {
		evt, skip := NormalizeRow(row(map[string]interface{}{
			"Section Date":  "20240115",
			"Start Time":    "1:30 pm",
			"End Time":      "3:00 pm",
			"Course Name":   "Anatomy",
			"Session Type":  "Lecture",
			"Session Name":  "Upper Limb",
			"Section Name":  "Section B2",
			"Location":      "Hall 3",
			"Learner Group": "b2",
		}), 1)
		if skip != nil {
			t.Fatalf("NormalizeRow() skipped: %v", skip)
		}
		if evt.Title != "Upper Limb" {
			t.Errorf("Title = %q", evt.Title)
		}
		if evt.Description != "Anatomy - Lecture - Section B2" {
			t.Errorf("Description = %q", evt.Description)
		}
		if evt.Location != "Hall 3" {
			t.Errorf("Location = %q", evt.Location)
		}
		if evt.LearnerGroup != "B2" {
			t.Errorf("LearnerGroup = %q", evt.LearnerGroup)
		}
	})

	t.Run("native date cell", func(t *testing.T) {
		evt, skip := NormalizeRow(row(map[string]interface{}{
			"section date": time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local),
			"start time":   "09:00",
			"end time":     "10:00",
		}), 1)
		if skip != nil {
			t.Fatalf("NormalizeRow() skipped: %v", skip)
		}
		if want := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.Local); !evt.Start.Equal(want) {
			t.Errorf("Start = %v, want %v", evt.Start, want)
		}
	})

	t.Run("session crossing midnight rolls end to next day", func(t *testing.T) {
		evt, skip := NormalizeRow(row(map[string]interface{}{
			"section date": "20240115",
			"start time":   "14:00",
			"end time":     "13:00",
		}), 1)
		if skip != nil {
			t.Fatalf("NormalizeRow() skipped: %v", skip)
		}
		if got := evt.End.Sub(evt.Start); got != 23*time.Hour {
			t.Errorf("End - Start = %v, want 23h", got)
		}
	})

	skipTests := []struct {
		name       string
		row        RawRow
		wantReason string
	}{
		{
			name:       "missing section date",
			row:        row(map[string]interface{}{"start time": "09:00", "end time": "10:00"}),
			wantReason: "missing section date",
		},
		{
			name:       "blank section date",
			row:        row(map[string]interface{}{"section date": "  ", "start time": "09:00", "end time": "10:00"}),
			wantReason: "missing section date",
		},
		{
			name:       "text leaked into date column",
			row:        row(map[string]interface{}{"section date": "TBD", "start time": "09:00", "end time": "10:00"}),
			wantReason: "invalid date format",
		},
		{
			name:       "unparseable start",
			row:        row(map[string]interface{}{"section date": "20240115", "start time": "soonish", "end time": "10:00"}),
			wantReason: "unparseable start time",
		},
		{
			name:       "unparseable end",
			row:        row(map[string]interface{}{"section date": "20240115", "start time": "09:00", "end time": "25:61"}),
			wantReason: "unparseable end time",
		},
		{
			name:       "equal start and end",
			row:        row(map[string]interface{}{"section date": "20240115", "start time": "14:00", "end time": "14:00"}),
			wantReason: "end before start even after next-day adjustment",
		},
	}
	for _, tt := range skipTests {
		t.Run(tt.name, func(t *testing.T) {
			_, skip := NormalizeRow(tt.row, 7)
			if skip == nil {
				t.Fatal("NormalizeRow() accepted, want skip")
			}
			if skip.Row != 7 {
				t.Errorf("Skip.Row = %d, want 7", skip.Row)
			}
			if tt.wantReason != "" && skip.Reason != tt.wantReason {
				t.Errorf("Skip.Reason = %q, want %q", skip.Reason, tt.wantReason)
			}
		})
	}
}

func TestNormalizeRows(t *testing.T) {
	rows := []RawRow{
		row(map[string]interface{}{"section date": "20240115", "start time": "09:00", "end time": "10:00", "session name": "One"}),
		row(map[string]interface{}{"section date": "", "start time": "09:00", "end time": "10:00"}),
		row(map[string]interface{}{"section date": "20240116", "start time": "09:00", "end time": "10:00", "session name": "Two"}),
	}

	events, skips := NormalizeRows(rows)
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	// source order preserved
	if events[0].Title != "One" || events[1].Title != "Two" {
		t.Errorf("events out of order: %q, %q", events[0].Title, events[1].Title)
	}
	if len(skips) != 1 || skips[0].Row != 2 {
		t.Fatalf("skips = %+v, want row 2", skips)
	}

	// idempotence: same input, byte-identical output
	again, _ := NormalizeRows(rows)
	if !reflect.DeepEqual(events, again) {
		t.Error("NormalizeRows() is not idempotent")
	}
}
