// internal/souls/souls.go
//
// Hall of Souls: the durable record of players who escaped the
// mansion. Defines the Entry type and the Store interface; the two
// implementations (append-only text scroll, SQLite leaderboard) live
// in this package as well.

package souls

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one escaped soul.
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	EscapedAt time.Time `json:"escapedAt"`
	Health    int       `json:"health"` // life force remaining at escape
}

// NewEntry stamps a fresh entry with an ID and the current time.
func NewEntry(name string, health int) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Name:      name,
		EscapedAt: time.Now().UTC(),
		Health:    health,
	}
}

// Store persists escape records.
// Implementations: FileStore (text scroll), SQLiteStore (leaderboard).
type Store interface {
	// Record appends a new escape.
	Record(ctx context.Context, e Entry) error

	// Dump returns the hall formatted for terminal display. Reads are
	// display-only; nothing parses the result.
	Dump(ctx context.Context) (string, error)
}
