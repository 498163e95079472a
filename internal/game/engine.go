// internal/game/engine.go
//
// Core game engine for a single mansion session.
// Responsibilities:
//   - Track the current room, per-room solved record, and life force.
//   - Classify each input line: keyword, malformed, wrong move, or
//     accepted answer.
//   - Track state transitions: playing → escaped/lost.
//
// Notes:
//   - The engine does no I/O. Prompting, pacing and narrative belong
//     to the ui package.
//   - Acceptance is purely syntactic-then-literal: an input must pass
//     the notation classifier AND equal one of the room's answer
//     strings exactly (case-sensitive, no normalization). The board
//     is never consulted and never mutated.
package game

import (
	"strings"

	"github.com/robalobadob/haunted-chessboard/internal/notation"
	"github.com/robalobadob/haunted-chessboard/internal/rooms"
)

const (
	// DefaultHealth is the starting life force.
	DefaultHealth = 100
	// DefaultPenalty is the life force lost on a wrong but
	// well-formed move.
	DefaultPenalty = 10
)

// New constructs a session over the given room table. Zero or
// negative health/penalty fall back to the defaults.
func New(rs []rooms.Room, health, penalty int) *Session {
	if health <= 0 {
		health = DefaultHealth
	}
	if penalty <= 0 {
		penalty = DefaultPenalty
	}
	return &Session{
		rooms:   rs,
		solved:  make([]bool, len(rs)),
		Health:  health,
		penalty: penalty,
	}
}

// Room returns the room the player is currently in. After escaping,
// it keeps returning the final room.
func (s *Session) Room() rooms.Room {
	i := s.current
	if i >= len(s.rooms) {
		i = len(s.rooms) - 1
	}
	return s.rooms[i]
}

// RoomNumber is the 1-based index of the current room, for display.
func (s *Session) RoomNumber() int { return s.current + 1 }

// Penalty is the life force cost of a wrong move, for display.
func (s *Session) Penalty() int { return s.penalty }

// Solved reports whether the room at index i has been cleared.
func (s *Session) Solved(i int) bool {
	return i >= 0 && i < len(s.solved) && s.solved[i]
}

// Finished reports whether the session is over, either way.
func (s *Session) Finished() bool {
	return s.lost || s.current >= len(s.rooms)
}

// State reports a coarse string representation of the session:
// "playing", "escaped" or "lost".
func (s *Session) State() string {
	if s.lost {
		return "lost"
	}
	if s.current >= len(s.rooms) {
		return "escaped"
	}
	return "playing"
}

// Apply processes one input line against the current room.
//
// Order of evaluation:
//  1. "quit" / "hint" keywords (case-insensitive).
//  2. Notation shape check. Malformed input is rejected with no
//     penalty and no state change.
//  3. Exact match against the room's answer list. A hit marks the
//     room solved (exactly once) and advances; in the final room it
//     ends the session as an escape.
//  4. Anything else is a wrong move: health drops by the penalty,
//     clamped at zero, and zero ends the session as a loss.
//
// Apply on a finished session reports Quit/Escaped per its end state
// without further changes.
func (s *Session) Apply(input string) Result {
	if s.Finished() {
		if s.State() == "escaped" {
			return Result{Kind: Escaped, Room: s.Room()}
		}
		return Result{Kind: Quit, Room: s.Room()}
	}

	room := s.rooms[s.current]
	input = strings.TrimSpace(input)

	switch strings.ToLower(input) {
	case "quit":
		s.lost = true
		return Result{Kind: Quit, Room: room}
	case "hint":
		return Result{Kind: Hint, Room: room, Hint: room.Hint}
	}

	if !notation.IsValid(input) {
		return Result{Kind: BadFormat, Room: room}
	}

	for _, answer := range room.Answers {
		if input == answer {
			s.solved[s.current] = true
			s.current++
			if s.current >= len(s.rooms) {
				return Result{Kind: Escaped, Room: room}
			}
			return Result{Kind: Solved, Room: room}
		}
	}

	s.Health -= s.penalty
	if s.Health <= 0 {
		s.Health = 0
		s.lost = true
		return Result{Kind: Drained, Room: room}
	}
	return Result{Kind: WrongMove, Room: room}
}
