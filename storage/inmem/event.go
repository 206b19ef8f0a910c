package inmem

import (
	"github.com/google/uuid"

	"github.com/trezcool/ratiba/core/schedule"
)

type eventRepository struct {
	db *eventTable
}

var _ schedule.Repository = (*eventRepository)(nil) // interface compliance check

func NewEventRepository(db *DB) schedule.Repository {
	return &eventRepository{db: db.event}
}

func (repo *eventRepository) query() []schedule.Event {
	events := make([]schedule.Event, 0, len(repo.db.events))
	for _, evt := range repo.db.events {
		events = append(events, *evt)
	}
	return events
}

// ReplaceAllEvents swaps the whole table for events in one step: the old set
// is discarded and never observed interleaved with the new one.
func (repo *eventRepository) ReplaceAllEvents(events []schedule.Event) ([]schedule.Event, error) {
	table := make([]*schedule.Event, 0, len(events))
	for _, evt := range events {
		evt := evt
		if evt.ID == uuid.Nil {
			evt.ID = uuid.New()
		}
		table = append(table, &evt)
	}

	repo.db.Lock()
	repo.db.events = table
	repo.db.Unlock()

	return repo.QueryAllEvents()
}

func (repo *eventRepository) QueryAllEvents() ([]schedule.Event, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *eventRepository) GetEventByID(id uuid.UUID) (schedule.Event, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, evt := range repo.db.events {
		if evt.ID == id {
			return *evt, nil
		}
	}
	return schedule.Event{}, schedule.ErrNotFound
}

func (repo *eventRepository) CreateEvent(evt schedule.Event) (schedule.Event, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if evt.ID == uuid.Nil {
		evt.ID = uuid.New()
	}
	repo.db.events = append(repo.db.events, &evt)
	return evt, nil
}

func (repo *eventRepository) UpdateEvent(evt schedule.Event) (schedule.Event, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i, stored := range repo.db.events {
		if stored.ID == evt.ID {
			repo.db.events[i] = &evt
			return evt, nil
		}
	}
	return schedule.Event{}, schedule.ErrNotFound
}

func (repo *eventRepository) DeleteEvent(id uuid.UUID) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i, stored := range repo.db.events {
		if stored.ID == id {
			repo.db.events = append(repo.db.events[:i], repo.db.events[i+1:]...)
			return nil
		}
	}
	return schedule.ErrNotFound
}
