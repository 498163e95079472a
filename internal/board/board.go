// internal/board/board.go
//
// Static chess position model backed by FEN.
// Responsibilities:
//   - Parse the placement + side-to-move fields of a FEN string into
//     an 8x8 grid of piece codes.
//   - Look up the piece on a named square ("e4" style labels).
//   - Render the grid as a box-drawn board with Unicode pieces.
//
// Notes:
//   - Positions are display-only. Moves are never applied to the grid;
//     puzzle answers are matched as strings elsewhere.
//   - Parsing is deliberately forgiving: malformed input degrades to a
//     partial or blank board rather than returning an error. Writes
//     past the 8th rank or file are dropped.
package board

import "strings"

// Empty is the piece code for an unoccupied square.
const Empty byte = ' '

// Position is an 8x8 grid of piece codes plus a side-to-move flag.
// Row 0 is rank 8, column 0 is file a. Uppercase codes are white,
// lowercase are black.
type Position struct {
	grid   [8][8]byte
	toMove string // "w" or "b"
}

// ParseFEN builds a Position from a FEN-like string. Only the
// placement field and the side-to-move field are consulted; castling
// rights, en passant and the move clocks are ignored.
//
// Clamping rules:
//   - '/' advances the rank counter and resets the file counter.
//   - A digit advances the file counter by its value (empty run).
//   - Any other symbol is written as a piece code, if the rank and
//     file counters are still inside the 8x8 grid; otherwise the
//     write is silently dropped.
//
// A missing side-to-move field defaults to white.
func ParseFEN(fen string) Position {
	p := Position{toMove: "w"}
	for row := range p.grid {
		for col := range p.grid[row] {
			p.grid[row][col] = Empty
		}
	}

	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return p
	}
	if len(parts) > 1 && (parts[1] == "w" || parts[1] == "b") {
		p.toMove = parts[1]
	}

	row, col := 0, 0
	for i := 0; i < len(parts[0]); i++ {
		c := parts[0][i]
		switch {
		case c == '/':
			row++
			col = 0
		case c >= '0' && c <= '9':
			col += int(c - '0')
		default:
			if row < 8 && col < 8 {
				p.grid[row][col] = c
				col++
			}
		}
	}
	return p
}

// ToMove reports the side to move, "w" or "b".
func (p Position) ToMove() string { return p.toMove }

// PieceAt returns the piece code on a square labelled in algebraic
// notation ("a1".."h8"), or Empty for malformed or out-of-range
// labels. There is no error path.
func (p Position) PieceAt(square string) byte {
	if len(square) != 2 {
		return Empty
	}
	col := int(square[0]) - 'a'
	row := 8 - (int(square[1]) - '0')
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return Empty
	}
	return p.grid[row][col]
}

// glyphs maps FEN piece codes to Unicode chess symbols.
var glyphs = map[byte]rune{
	'K': '♔', 'Q': '♕', 'R': '♖', 'B': '♗', 'N': '♘', 'P': '♙',
	'k': '♚', 'q': '♛', 'r': '♜', 'b': '♝', 'n': '♞', 'p': '♟',
}

// Glyph converts a piece code to its Unicode symbol. Unknown codes
// are passed through unchanged so a corrupt grid still renders.
func Glyph(piece byte) rune {
	if g, ok := glyphs[piece]; ok {
		return g
	}
	return rune(piece)
}

// Render returns the board as a box-drawn grid with file letters,
// rank numbers and a side-to-move caption. Pure projection; nothing
// else consumes the output.
func (p Position) Render() string {
	var b strings.Builder

	b.WriteString(strings.Repeat("─", 40) + "\n")
	b.WriteString("     a   b   c   d   e   f   g   h\n")
	b.WriteString("   ┌" + strings.Repeat("───┬", 7) + "───┐\n")

	for row := 0; row < 8; row++ {
		rank := byte('0' + 8 - row)
		b.WriteByte(' ')
		b.WriteByte(rank)
		b.WriteString(" │")
		for col := 0; col < 8; col++ {
			b.WriteByte(' ')
			b.WriteRune(Glyph(p.grid[row][col]))
			b.WriteString(" │")
		}
		b.WriteByte(' ')
		b.WriteByte(rank)
		b.WriteByte('\n')
		if row < 7 {
			b.WriteString("   ├" + strings.Repeat("───┼", 7) + "───┤\n")
		}
	}

	b.WriteString("   └" + strings.Repeat("───┴", 7) + "───┘\n")
	b.WriteString("     a   b   c   d   e   f   g   h\n")
	b.WriteString(strings.Repeat("─", 40) + "\n")

	turn := "White"
	if p.toMove == "b" {
		turn = "Black"
	}
	b.WriteString("Turn: " + turn + "\n")
	return b.String()
}
