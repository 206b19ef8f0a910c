package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/trezcool/ratiba/core"
)

var (
	// 24-hour: 1-2 digit hours, optional colon, exactly 2 digit minutes (13:45, 1345, 905).
	militaryTimeRegex = regexp.MustCompile(`^(\d{1,2}):?(\d{2})$`)
	// 12-hour: 1-2 digit hours, optional minutes, am/pm suffix (1:30 pm, 9am).
	twelveHourRegex = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)
)

// ParseTimeOfDay turns a raw time cell into a wall-clock hour/minute pair.
// A time.Time value is used directly; anything else is stringified and
// matched against the accepted notations (24-hour, 12-hour, noon, midnight).
// The boolean is false when the value is empty or unrecognized; there are no
// partial results.
func ParseTimeOfDay(v interface{}) (TimeOfDay, bool) {
	if t, ok := v.(time.Time); ok {
		if t.IsZero() {
			return TimeOfDay{}, false
		}
		return TimeOfDay{Hours: t.Hour(), Minutes: t.Minute()}, true
	}

	s := core.CleanString(stringifyCell(v), true /* lower */)
	if s == "" {
		return TimeOfDay{}, false
	}

	if m := militaryTimeRegex.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if hours > 23 || minutes > 59 {
			return TimeOfDay{}, false
		}
		return TimeOfDay{Hours: hours, Minutes: minutes}, true
	}

	switch s {
	case "noon":
		return TimeOfDay{Hours: 12}, true
	case "midnight":
		return TimeOfDay{}, true
	}

	if m := twelveHourRegex.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		var minutes int
		if m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}
		if hours < 1 || hours > 12 || minutes > 59 {
			return TimeOfDay{}, false
		}
		switch {
		case m[3] == "pm" && hours != 12:
			hours += 12
		case m[3] == "am" && hours == 12:
			hours = 0
		}
		return TimeOfDay{Hours: hours, Minutes: minutes}, true
	}

	return TimeOfDay{}, false
}

// stringifyCell renders a raw cell value for parsing; nil stays empty.
func stringifyCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}
