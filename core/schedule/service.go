package schedule

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core"
)

var (
	// errors
	ErrNotFound = errors.New("event not found")
)

type (
	Repository interface {
		// ReplaceAllEvents atomically swaps the whole stored set for events,
		// assigning fresh IDs; the previous set is discarded.
		ReplaceAllEvents(events []Event) ([]Event, error)
		QueryAllEvents() ([]Event, error)
		GetEventByID(id uuid.UUID) (Event, error)
		CreateEvent(evt Event) (Event, error)
		UpdateEvent(evt Event) (Event, error)
		DeleteEvent(id uuid.UUID) error
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ImportResult summarizes one file upload: how many rows became events and
// which rows were dropped, with reasons.
type ImportResult struct {
	Loaded  int    `json:"loaded"`
	Skipped []Skip `json:"skipped"`
}

// Import reads an uploaded schedule file, normalizes its rows and atomically
// replaces the stored event set. File-level problems (empty file, missing
// required columns, unreadable workbook) abort the whole upload and leave the
// store untouched; malformed rows are skipped and reported.
func (svc *Service) Import(filename string, r io.Reader) (ImportResult, error) {
	rows, err := ReadFile(filename, r)
	if err != nil {
		return ImportResult{}, core.NewValidationError(err)
	}

	events, skips := NormalizeRows(rows)
	for _, s := range skips {
		svc.logger.Debug(fmt.Sprintf("%s: skipping row %d: %s", filename, s.Row, s.Reason))
	}

	if _, err := svc.repo.ReplaceAllEvents(events); err != nil {
		return ImportResult{}, errors.Wrap(err, "replacing events")
	}
	svc.logger.Info(fmt.Sprintf("%s: %d valid events loaded, %d rows skipped", filename, len(events), len(skips)))
	return ImportResult{Loaded: len(events), Skipped: skips}, nil
}

func (svc *Service) QueryAll() ([]Event, error) {
	return svc.repo.QueryAllEvents()
}

func (svc *Service) GetByID(id uuid.UUID) (Event, error) {
	return svc.repo.GetEventByID(id)
}

func (svc *Service) Create(ne NewEvent) (Event, error) {
	evt := Event{
		Title:        ne.Title,
		Start:        ne.Start,
		End:          ne.End,
		Description:  ne.Description,
		Location:     ne.Location,
		LearnerGroup: ne.LearnerGroup,
	}
	return svc.repo.CreateEvent(evt)
}

// Update replaces the stored record wholesale; there is no partial mutation.
func (svc *Service) Update(id uuid.UUID, ue UpdateEvent) (Event, error) {
	evt, err := svc.repo.GetEventByID(id)
	if err != nil {
		return Event{}, err
	}
	evt = Event{
		ID:           evt.ID,
		Title:        ue.Title,
		Start:        ue.Start,
		End:          ue.End,
		Description:  ue.Description,
		Location:     ue.Location,
		LearnerGroup: ue.LearnerGroup,
	}
	return svc.repo.UpdateEvent(evt)
}

func (svc *Service) Delete(id uuid.UUID) error {
	return svc.repo.DeleteEvent(id)
}

// Groups derives the group filter options from the current event set.
func (svc *Service) Groups() ([]GroupOption, error) {
	events, err := svc.repo.QueryAllEvents()
	if err != nil {
		return nil, err
	}
	return GroupOptions(events), nil
}
