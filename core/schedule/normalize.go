package schedule

import (
	"regexp"
	"strings"
	"time"
)

// Source column names (matched case-insensitively).
const (
	colSectionDate  = "section date"
	colStartTime    = "start time"
	colEndTime      = "end time"
	colCourseName   = "course name"
	colSessionType  = "session type"
	colSessionName  = "session name"
	colSectionName  = "section name"
	colSection      = "section"
	colLocation     = "location"
	colLearnerGroup = "learner group"
)

// Skip records one dropped source row with its 1-based data-row number.
type Skip struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Row-level skip reasons.
const (
	reasonMissingDate    = "missing section date"
	reasonInvalidDate    = "invalid date format"
	reasonInvalidStart   = "unparseable start time"
	reasonInvalidEnd     = "unparseable end time"
	reasonEndBeforeStart = "end before start even after next-day adjustment"
	reasonInvalidRange   = "unresolved start/end timestamps"
)

var (
	alphaRegex    = regexp.MustCompile(`[a-zA-Z]`)
	yyyymmddRegex = regexp.MustCompile(`^\d{8}$`)
)

// NormalizeRow validates and transforms one source row into an Event.
// Every failure is a skip with a reason, never an error: the caller keeps
// processing the rest of the file. The returned Event has no ID; the
// repository assigns one on insert.
func NormalizeRow(row RawRow, index int) (Event, *Skip) {
	skip := func(reason string) (Event, *Skip) {
		return Event{}, &Skip{Row: index, Reason: reason}
	}

	dateV := row.Get(colSectionDate)
	if t, ok := dateV.(time.Time); ok {
		// canonical form for native spreadsheet dates
		dateV = t.Format("20060102")
	}
	dateStr, ok := dateV.(string)
	if !ok || strings.TrimSpace(dateStr) == "" {
		return skip(reasonMissingDate)
	}
	dateStr = strings.TrimSpace(dateStr)

	// Stray text leaking into the date column: anything alphabetic must
	// strictly be YYYYMMDD (which it never is), so it is dropped here while
	// numeric serials keep flowing to the combiner.
	if alphaRegex.MatchString(dateStr) && !yyyymmddRegex.MatchString(dateStr) {
		return skip(reasonInvalidDate)
	}

	start, ok := CombineDateTime(dateStr, row.Get(colStartTime))
	if !ok {
		return skip(reasonInvalidStart)
	}
	end, ok := CombineDateTime(dateStr, row.Get(colEndTime))
	if !ok {
		return skip(reasonInvalidEnd)
	}

	// Same-day rows whose end reads earlier than start cross midnight; push
	// the end to the next day. Anything still not after start (equal times
	// included) is malformed.
	if start.After(end) {
		end = end.AddDate(0, 0, 1)
	}
	if !end.After(start) {
		return skip(reasonEndBeforeStart)
	}

	sectionName := row.GetString(colSectionName)
	if sectionName == "" {
		sectionName = row.GetString(colSection)
	}
	sessionName := row.GetString(colSessionName)

	title := sessionName
	if title == "" {
		title = defaultTitle
	}
	location := row.GetString(colLocation)
	if location == "" {
		location = defaultLocation
	}

	evt := Event{
		Title:        title,
		Start:        start,
		End:          end,
		Description:  joinNonEmpty(" - ", row.GetString(colCourseName), row.GetString(colSessionType), sectionName),
		Location:     location,
		LearnerGroup: DeriveLearnerGroup(row.GetString(colLearnerGroup), sessionName, sectionName),
	}
	if evt.Start.IsZero() || evt.End.IsZero() {
		return skip(reasonInvalidRange)
	}
	return evt, nil
}

// NormalizeRows runs NormalizeRow over a whole file's rows, collecting the
// accepted events in source order and the skip diagnostics. Row numbers are
// 1-based over the data rows (the header row is not counted).
func NormalizeRows(rows []RawRow) ([]Event, []Skip) {
	events := make([]Event, 0, len(rows))
	var skips []Skip
	for i, row := range rows {
		evt, skip := NormalizeRow(row, i+1)
		if skip != nil {
			skips = append(skips, *skip)
			continue
		}
		events = append(events, evt)
	}
	return events, skips
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
