package inmem

import (
	"sync"

	"github.com/trezcool/ratiba/core/schedule"
)

type (
	DB struct {
		event *eventTable
	}

	eventTable struct {
		sync.RWMutex
		events []*schedule.Event // source order preserved
	}
)

func Open() (*DB, error) {
	db := &DB{
		event: &eventTable{events: make([]*schedule.Event, 0)},
	}
	return db, nil
}
