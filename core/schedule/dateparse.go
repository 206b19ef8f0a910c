package schedule

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/trezcool/ratiba/core"
)

const (
	// A known upstream export bug renders two-digit year 23 as 1923; patch the
	// prefix back to 2023. Isolated here so it can be dropped once the source
	// is fixed.
	legacyYearPrefix    = "1923"
	correctedYearPrefix = "2023"

	// Pure numerics below this are Excel 1900-epoch serial day numbers.
	excelSerialMax = 100000
	// Day 60 is Excel's phantom 1900-02-29; later serials run one day ahead.
	excelLeapBugSerial = 59
)

var (
	pureNumberRegex = regexp.MustCompile(`^\d+$`)

	// Accepted date notations, strict, first match wins.
	dateLayouts = []string{
		"20060102",     // YYYYMMDD
		"2006-01-02",   // YYYY-MM-DD
		"01/02/2006",   // MM/DD/YYYY
		"02-01-2006",   // DD-MM-YYYY
		"Jan 02, 2006", // MMM DD, YYYY
		"02 Jan 2006",  // DD MMM YYYY
		"2006/01/02",   // YYYY/MM/DD
	}
)

// fixLegacyYear applies the hardcoded corrupted-prefix substitution. It is a
// fixed string patch, not a general rule.
func fixLegacyYear(s string) string {
	if strings.HasPrefix(s, legacyYearPrefix) {
		return correctedYearPrefix + strings.TrimPrefix(s, legacyYearPrefix)
	}
	return s
}

// ExcelSerialToTime converts an Excel 1900-epoch serial day (with optional
// fractional time of day) to a local wall-clock time. Serial 25569 is the
// Unix epoch; serials past the phantom 1900-02-29 are pulled back one day.
func ExcelSerialToTime(serial float64) time.Time {
	days := int(serial)
	frac := serial - float64(days)

	t := time.Date(1899, time.December, 31, 0, 0, 0, 0, time.Local).AddDate(0, 0, days)
	if days > excelLeapBugSerial {
		t = t.AddDate(0, 0, -1)
	}
	if frac > 0 {
		t = t.Add(time.Duration(math.Round(frac * 24 * float64(time.Hour))))
	}
	return t
}

// parseDate resolves a raw date cell to a calendar date (midnight local).
func parseDate(v interface{}) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		if t.IsZero() {
			return time.Time{}, false
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
	}

	s := fixLegacyYear(core.CleanString(stringifyCell(v)))
	if s == "" {
		return time.Time{}, false
	}

	if pureNumberRegex.MatchString(s) {
		if serial, err := strconv.Atoi(s); err == nil && serial < excelSerialMax {
			if serial <= 0 {
				return time.Time{}, false
			}
			return ExcelSerialToTime(float64(serial)), true
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CombineDateTime merges a raw date cell and a raw time cell into a single
// local timestamp. No timezone normalization is performed. The boolean is
// false when either side is empty or unparseable.
func CombineDateTime(dateV, timeV interface{}) (time.Time, bool) {
	if dateV == nil || timeV == nil {
		return time.Time{}, false
	}

	date, ok := parseDate(dateV)
	if !ok {
		return time.Time{}, false
	}
	tod, ok := ParseTimeOfDay(timeV)
	if !ok {
		return time.Time{}, false
	}

	t := time.Date(date.Year(), date.Month(), date.Day(), tod.Hours, tod.Minutes, 0, 0, time.Local)
	if t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}
