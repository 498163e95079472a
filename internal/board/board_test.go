package board

import (
	"fmt"
	"strings"
	"testing"

	"github.com/notnil/chess"
)

func TestParseFENStartingPosition(t *testing.T) {
	pos := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	want := [8]string{
		"rnbqkbnr",
		"pppppppp",
		"        ",
		"        ",
		"        ",
		"        ",
		"PPPPPPPP",
		"RNBQKBNR",
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			label := fmt.Sprintf("%c%d", 'a'+col, 8-row)
			if got := pos.PieceAt(label); got != want[row][col] {
				t.Errorf("square %s: got %q, want %q", label, got, want[row][col])
			}
		}
	}
	if pos.ToMove() != "w" {
		t.Errorf("to move: got %q, want w", pos.ToMove())
	}
}

// Piece lookup must be the inverse of placement: every cell written
// during parsing reads back through its square label.
func TestPieceLookupInverse(t *testing.T) {
	cases := []struct {
		fen     string
		squares map[string]byte
	}{
		{
			fen: "6k1/5ppp/8/8/8/8/5PPP/4Q1K1 w - - 0 1",
			squares: map[string]byte{
				"g8": 'k', "f7": 'p', "g7": 'p', "h7": 'p',
				"f2": 'P', "g2": 'P', "h2": 'P',
				"e1": 'Q', "g1": 'K',
				"a1": Empty, "e8": Empty, "d4": Empty,
			},
		},
		{
			fen: "6k1/6pp/8/8/8/8/6PP/R5K1 w - - 0 1",
			squares: map[string]byte{
				"a1": 'R', "g1": 'K', "g8": 'k',
				"g7": 'p', "h7": 'p', "g2": 'P', "h2": 'P',
				"b1": Empty, "a8": Empty,
			},
		},
	}
	for _, c := range cases {
		pos := ParseFEN(c.fen)
		for sq, want := range c.squares {
			if got := pos.PieceAt(sq); got != want {
				t.Errorf("%s: square %s: got %q, want %q", c.fen, sq, got, want)
			}
		}
	}
}

// Cross-check the parser against a real chess library on the three
// room positions: occupancy and piece identity must agree square by
// square.
func TestParseFENMatchesReference(t *testing.T) {
	fens := []string{
		"6k1/5ppp/8/8/8/8/5PPP/4Q1K1 w - - 0 1",
		"r3k2r/ppp2ppp/2n5/2bqp3/2B1P3/3P1N2/PPP2PPP/R1BQK2R w KQkq - 0 1",
		"6k1/6pp/8/8/8/8/6PP/R5K1 w - - 0 1",
	}
	codes := map[chess.Piece]byte{
		chess.WhiteKing: 'K', chess.WhiteQueen: 'Q', chess.WhiteRook: 'R',
		chess.WhiteBishop: 'B', chess.WhiteKnight: 'N', chess.WhitePawn: 'P',
		chess.BlackKing: 'k', chess.BlackQueen: 'q', chess.BlackRook: 'r',
		chess.BlackBishop: 'b', chess.BlackKnight: 'n', chess.BlackPawn: 'p',
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			opt, err := chess.FEN(fen)
			if err != nil {
				t.Fatalf("reference FEN rejected: %v", err)
			}
			ref := chess.NewGame(opt).Position().Board()
			pos := ParseFEN(fen)

			for rank := 0; rank < 8; rank++ {
				for file := 0; file < 8; file++ {
					label := fmt.Sprintf("%c%d", 'a'+file, rank+1)
					got := pos.PieceAt(label)
					refPiece := ref.Piece(chess.Square(file + 8*rank))
					if refPiece == chess.NoPiece {
						if got != Empty {
							t.Errorf("square %s: got %q, want empty", label, got)
						}
						continue
					}
					if got != codes[refPiece] {
						t.Errorf("square %s: got %q, want %q", label, got, codes[refPiece])
					}
				}
			}
		})
	}
}

func TestParseFENClamping(t *testing.T) {
	// 9 symbols on one rank: the 9th write is dropped, not an error.
	pos := ParseFEN("rnbqkbnrr/8/8/8/8/8/8/8 w - - 0 1")
	if got := pos.PieceAt("h8"); got != 'r' {
		t.Errorf("h8: got %q, want r", got)
	}

	// 9 ranks: writes past the 8th rank are dropped.
	pos = ParseFEN("8/8/8/8/8/8/8/8/QQQQQQQQ w - - 0 1")
	for col := 0; col < 8; col++ {
		label := fmt.Sprintf("%c1", 'a'+col)
		if got := pos.PieceAt(label); got != Empty {
			t.Errorf("%s: got %q, want empty", label, got)
		}
	}

	// Garbage degrades to a blank board with white to move.
	pos = ParseFEN("")
	if got := pos.PieceAt("e4"); got != Empty {
		t.Errorf("blank board e4: got %q", got)
	}
	if pos.ToMove() != "w" {
		t.Errorf("blank board to move: got %q, want w", pos.ToMove())
	}
}

func TestPieceAtFallback(t *testing.T) {
	pos := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	for _, sq := range []string{"", "e", "e44", "i1", "a9", "a0", "z3", "4e", "  "} {
		if got := pos.PieceAt(sq); got != Empty {
			t.Errorf("PieceAt(%q): got %q, want empty", sq, got)
		}
	}
}

func TestSideToMove(t *testing.T) {
	cases := []struct {
		fen  string
		want string
	}{
		{"8/8/8/8/8/8/8/8 w - - 0 1", "w"},
		{"8/8/8/8/8/8/8/8 b - - 0 1", "b"},
		{"8/8/8/8/8/8/8/8", "w"},   // missing field defaults to white
		{"8/8/8/8/8/8/8/8 x", "w"}, // unrecognized token ignored
	}
	for _, c := range cases {
		if got := ParseFEN(c.fen).ToMove(); got != c.want {
			t.Errorf("ParseFEN(%q).ToMove(): got %q, want %q", c.fen, got, c.want)
		}
	}
}

func TestRender(t *testing.T) {
	out := ParseFEN("6k1/5ppp/8/8/8/8/5PPP/4Q1K1 w - - 0 1").Render()

	for _, want := range []string{
		"a   b   c   d   e   f   g   h",
		"Turn: White",
		"♕", // white queen glyph
		"♚", // black king glyph
		" 8 │",
		" 1 │",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}

	out = ParseFEN("8/8/8/8/8/8/8/8 b - - 0 1").Render()
	if !strings.Contains(out, "Turn: Black") {
		t.Errorf("render output missing black turn caption:\n%s", out)
	}
}
