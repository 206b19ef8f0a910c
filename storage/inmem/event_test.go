package inmem

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/ratiba/core/schedule"
)

func newRepo(t *testing.T) schedule.Repository {
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return NewEventRepository(db)
}

func makeEvents(titles ...string) []schedule.Event {
	now := time.Now()
	events := make([]schedule.Event, 0, len(titles))
	for i, title := range titles {
		start := now.Add(time.Duration(i) * time.Hour)
		events = append(events, schedule.Event{
			Title:        title,
			Start:        start,
			End:          start.Add(time.Hour),
			LearnerGroup: schedule.Ungrouped,
		})
	}
	return events
}

func TestEventRepositoryReplaceAll(t *testing.T) {
	repo := newRepo(t)

	stored, err := repo.ReplaceAllEvents(makeEvents("a", "b", "c"))
	if err != nil {
		t.Fatalf("ReplaceAllEvents() failed: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("len(stored) = %d, want 3", len(stored))
	}
	for i, want := range []string{"a", "b", "c"} {
		if stored[i].Title != want {
			t.Errorf("stored[%d].Title = %q, want %q (source order must hold)", i, stored[i].Title, want)
		}
		if stored[i].ID == uuid.Nil {
			t.Errorf("stored[%d] has no ID", i)
		}
	}

	// a second replace discards the first set entirely
	stored, err = repo.ReplaceAllEvents(makeEvents("x"))
	if err != nil {
		t.Fatalf("ReplaceAllEvents() failed: %v", err)
	}
	if len(stored) != 1 || stored[0].Title != "x" {
		t.Fatalf("stored = %+v, want only x", stored)
	}
}

func TestEventRepositoryCRUD(t *testing.T) {
	repo := newRepo(t)

	evt, err := repo.CreateEvent(makeEvents("a")[0])
	if err != nil {
		t.Fatalf("CreateEvent() failed: %v", err)
	}
	if evt.ID == uuid.Nil {
		t.Fatal("CreateEvent() assigned no ID")
	}

	got, err := repo.GetEventByID(evt.ID)
	if err != nil {
		t.Fatalf("GetEventByID() failed: %v", err)
	}
	if got.Title != "a" {
		t.Errorf("GetEventByID() = %+v", got)
	}

	evt.Title = "renamed"
	if _, err = repo.UpdateEvent(evt); err != nil {
		t.Fatalf("UpdateEvent() failed: %v", err)
	}
	got, _ = repo.GetEventByID(evt.ID)
	if got.Title != "renamed" {
		t.Errorf("after update: %+v", got)
	}

	unknown := evt
	unknown.ID = uuid.New()
	if _, err = repo.UpdateEvent(unknown); err != schedule.ErrNotFound {
		t.Errorf("UpdateEvent(unknown) error = %v, want ErrNotFound", err)
	}

	if err = repo.DeleteEvent(evt.ID); err != nil {
		t.Fatalf("DeleteEvent() failed: %v", err)
	}
	if _, err = repo.GetEventByID(evt.ID); err != schedule.ErrNotFound {
		t.Errorf("GetEventByID(deleted) error = %v, want ErrNotFound", err)
	}
	if err = repo.DeleteEvent(evt.ID); err != schedule.ErrNotFound {
		t.Errorf("DeleteEvent(again) error = %v, want ErrNotFound", err)
	}
}

func TestEventRepositoryQueryReturnsCopies(t *testing.T) {
	repo := newRepo(t)
	if _, err := repo.ReplaceAllEvents(makeEvents("a")); err != nil {
		t.Fatalf("ReplaceAllEvents() failed: %v", err)
	}

	events, _ := repo.QueryAllEvents()
	events[0].Title = "mutated"

	again, _ := repo.QueryAllEvents()
	if again[0].Title != "a" {
		t.Error("QueryAllEvents() leaks internal state")
	}
}
