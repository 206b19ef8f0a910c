package schedule

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/trezcool/ratiba/core"
)

// Well-known learner group values.
const (
	Ungrouped = "Ungrouped"
	AllGroups = "All Groups"
)

// Defaults applied when a source row omits the matching column.
const (
	defaultTitle    = "Untitled Session"
	defaultLocation = "Unknown Location"
)

type (
	// RawRow is one tabular source row: a case-insensitive column-name to
	// raw cell value mapping. CSV cells are always strings; spreadsheet cells
	// may also surface as time.Time (date/time-formatted cells).
	RawRow map[string]interface{}

	// TimeOfDay is a wall-clock time produced only by ParseTimeOfDay.
	TimeOfDay struct {
		Hours   int
		Minutes int
	}

	// Event is one normalized calendar event. It is created by the row
	// normalizer (or an API create) and only ever replaced or deleted as a
	// whole; End is always after Start.
	Event struct {
		ID           uuid.UUID `json:"id"`
		Title        string    `json:"title"`
		Start        time.Time `json:"start"`
		End          time.Time `json:"end"`
		Description  string    `json:"description"`
		Location     string    `json:"location"`
		LearnerGroup string    `json:"learner_group"`
	}
)

// Get returns the raw value for a column name, case-insensitively;
// nil when the column is absent.
func (row RawRow) Get(name string) interface{} {
	return row[core.CleanString(name, true /* lower */)]
}

// GetString returns the column value as a trimmed string; empty when the
// column is absent or not a string.
func (row RawRow) GetString(name string) string {
	if s, ok := row.Get(name).(string); ok {
		return core.CleanString(s)
	}
	return ""
}

// NewEvent defines what information must be provided to create an Event.
type NewEvent struct {
	Title        string    `json:"title"`
	Start        time.Time `json:"start" validate:"required"`
	End          time.Time `json:"end" validate:"required,gtfield=Start"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	LearnerGroup string    `json:"learner_group" validate:"omitempty,learnergroup"`
}

func (ne *NewEvent) Validate(validate *validator.Validate) error {
	ne.clean()
	return validate.Struct(ne)
}

func (ne *NewEvent) clean() {
	ne.Title = core.CleanString(ne.Title)
	if ne.Title == "" {
		ne.Title = defaultTitle
	}
	ne.Description = core.CleanString(ne.Description)
	ne.Location = core.CleanString(ne.Location)
	if ne.Location == "" {
		ne.Location = defaultLocation
	}
	ne.LearnerGroup = cleanGroupCode(ne.LearnerGroup)
}

// UpdateEvent defines the whole-record replacement for an existing Event.
type UpdateEvent struct {
	Title        string    `json:"title"`
	Start        time.Time `json:"start" validate:"required"`
	End          time.Time `json:"end" validate:"required,gtfield=Start"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	LearnerGroup string    `json:"learner_group" validate:"omitempty,learnergroup"`
}

func (ue *UpdateEvent) Validate(validate *validator.Validate) error {
	ue.Title = core.CleanString(ue.Title)
	if ue.Title == "" {
		ue.Title = defaultTitle
	}
	ue.Description = core.CleanString(ue.Description)
	ue.Location = core.CleanString(ue.Location)
	if ue.Location == "" {
		ue.Location = defaultLocation
	}
	ue.LearnerGroup = cleanGroupCode(ue.LearnerGroup)
	return validate.Struct(ue)
}

// cleanGroupCode trims and canonicalizes a submitted group value; an empty
// value becomes Ungrouped. Out-of-pattern values are left for the
// `learnergroup` validation to reject.
func cleanGroupCode(g string) string {
	g = core.CleanString(g)
	switch {
	case g == "":
		return Ungrouped
	case strings.EqualFold(g, Ungrouped):
		return Ungrouped
	case groupCodeRegex.MatchString(strings.ToLower(g)):
		return strings.ToUpper(g)
	}
	return g
}
