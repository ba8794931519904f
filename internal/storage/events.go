package storage

import (
	"database/sql"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/zeunio/reactphysics3d/internal/sim"
)

const eventsSchema = `
CREATE TABLE IF NOT EXISTS events (
	seq  INTEGER PRIMARY KEY AUTOINCREMENT,
	step INTEGER NOT NULL,
	kind TEXT    NOT NULL,
	id1  INTEGER NOT NULL,
	id2  INTEGER NOT NULL
);`

// Recorder buffers pair lifecycle events during a run. It plugs into the
// runner as an event sink; Store.Save flushes the buffer into the run's
// events.db.
type Recorder struct {
	events []sim.PairEvent
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnPairEvent(ev sim.PairEvent) {
	r.events = append(r.events, ev)
}

func (r *Recorder) Events() []sim.PairEvent {
	return r.events
}

func writeEvents(path string, events []sim.PairEvent) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(eventsSchema); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO events (step, kind, id1, id2) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.Exec(ev.Step, string(ev.Kind), ev.ID1, ev.ID2); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// LoadEvents reads back a run's pair lifecycle journal in emission order.
func (s *Store) LoadEvents(runID string) ([]sim.PairEvent, error) {
	db, err := sql.Open("sqlite3", filepath.Join(s.baseDir, runID, "events.db"))
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT step, kind, id1, id2 FROM events ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []sim.PairEvent
	for rows.Next() {
		var ev sim.PairEvent
		var kind string
		if err := rows.Scan(&ev.Step, &kind, &ev.ID1, &ev.ID2); err != nil {
			return nil, err
		}
		ev.Kind = sim.EventKind(kind)
		events = append(events, ev)
	}
	return events, rows.Err()
}
