// internal/notation/notation.go
//
// Syntactic classifier for algebraic-notation-shaped move strings.
//
// The accepted grammar is small and explicit (tagged variants rather
// than regexes, so it stays auditable):
//
//	move     = core [suffix]
//	core     = piece dest            (PieceMove,    "Qh5")
//	         | dest                  (PawnMove,     "e4")
//	         | piece "x" dest        (PieceCapture, "Qxh5")
//	         | file  "x" dest        (PawnCapture,  "exd5")
//	         | "O-O"                 (CastleKingside)
//	         | "O-O-O"               (CastleQueenside)
//	piece    = "K" | "Q" | "R" | "B" | "N"
//	dest     = file rank
//	file     = "a".."h"
//	rank     = "1".."8"
//	suffix   = "+" | "#"
//
// This is shape only: no board is consulted, no legality is checked,
// and a well-formed but chess-nonsensical string is accepted. Whether
// a move actually solves a puzzle is decided by exact string match
// against the room's answer list, in the game package.
package notation

// Kind tags the structural variant a move string matched.
type Kind int

const (
	PieceMove Kind = iota // Qh5
	PawnMove              // e4
	PieceCapture          // Qxh5
	PawnCapture           // exd5
	CastleKingside        // O-O
	CastleQueenside       // O-O-O
)

// Suffix is the optional check or mate annotation.
type Suffix int

const (
	SuffixNone Suffix = iota
	SuffixCheck        // +
	SuffixMate         // #
)

// Move is the parsed shape of a syntactically valid move string.
// Piece is set for PieceMove/PieceCapture, FromFile for PawnCapture,
// Dest for everything except castling.
type Move struct {
	Kind     Kind
	Piece    byte   // 'K','Q','R','B','N'
	FromFile byte   // 'a'..'h', pawn captures only
	Dest     string // "e4" style, empty for castling
	Suffix   Suffix
}

func isPiece(c byte) bool { return c == 'K' || c == 'Q' || c == 'R' || c == 'B' || c == 'N' }
func isFile(c byte) bool  { return c >= 'a' && c <= 'h' }
func isRank(c byte) bool  { return c >= '1' && c <= '8' }

// Parse matches s against the grammar above. The boolean is false
// when s has no valid shape; there is no partial-match detail.
func Parse(s string) (Move, bool) {
	var m Move

	// Peel the optional check/mate suffix off the core.
	if n := len(s); n > 0 {
		switch s[n-1] {
		case '+':
			m.Suffix = SuffixCheck
			s = s[:n-1]
		case '#':
			m.Suffix = SuffixMate
			s = s[:n-1]
		}
	}

	switch {
	case s == "O-O":
		m.Kind = CastleKingside
		return m, true
	case s == "O-O-O":
		m.Kind = CastleQueenside
		return m, true
	case len(s) == 2 && isFile(s[0]) && isRank(s[1]):
		m.Kind = PawnMove
		m.Dest = s
		return m, true
	case len(s) == 3 && isPiece(s[0]) && isFile(s[1]) && isRank(s[2]):
		m.Kind = PieceMove
		m.Piece = s[0]
		m.Dest = s[1:]
		return m, true
	case len(s) == 4 && s[1] == 'x' && isFile(s[2]) && isRank(s[3]):
		if isPiece(s[0]) {
			m.Kind = PieceCapture
			m.Piece = s[0]
			m.Dest = s[2:]
			return m, true
		}
		if isFile(s[0]) {
			m.Kind = PawnCapture
			m.FromFile = s[0]
			m.Dest = s[2:]
			return m, true
		}
	}
	return Move{}, false
}

// IsValid reports whether s has the shape of a plausible move.
func IsValid(s string) bool {
	_, ok := Parse(s)
	return ok
}
