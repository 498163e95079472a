// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - ResultKind: what happened when an input line was applied.
//   - Result: outcome of a single input, consumed by the ui package.
//   - Session: state for a single walk through the mansion.

package game

import "github.com/robalobadob/haunted-chessboard/internal/rooms"

// ResultKind classifies the outcome of applying one input line.
type ResultKind int

const (
	// Solved: the input matched an answer; more rooms remain.
	Solved ResultKind = iota
	// Escaped: the input matched an answer in the final room.
	Escaped
	// WrongMove: well-formed move, not an accepted answer; health was
	// reduced by the configured penalty.
	WrongMove
	// Drained: a wrong move brought health to zero; the session is lost.
	Drained
	// BadFormat: input is not shaped like a move; no penalty.
	BadFormat
	// Hint: the player asked for the current room's hint.
	Hint
	// Quit: the player gave up; the session is lost.
	Quit
)

// Result is the engine's answer to a single input line.
type Result struct {
	Kind ResultKind
	Room rooms.Room // the room the input applied to
	Hint string     // set for Kind == Hint
}

// Session holds the state of one playthrough. Room data itself is
// immutable; progress lives here as the current index plus a
// per-room solved record.
type Session struct {
	rooms   []rooms.Room
	current int
	solved  []bool

	Health  int
	penalty int
	lost    bool
}
