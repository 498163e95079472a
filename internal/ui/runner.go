// internal/ui/runner.go
//
// Interactive run loop: display board → read input → apply to the
// engine → narrate the result. Owns prompting, pacing and the
// end-of-game Hall of Souls recording; all game rules live in the
// game package.

package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/haunted-chessboard/internal/board"
	"github.com/robalobadob/haunted-chessboard/internal/game"
	"github.com/robalobadob/haunted-chessboard/internal/souls"
)

// DefaultName is recorded when the player leaves the name prompt
// empty.
const DefaultName = "Anonymous Hero"

// Runner drives one session over stdin/stdout (or any reader/writer
// in tests).
type Runner struct {
	In      *bufio.Scanner
	Printer *Printer

	Session *game.Session
	Stores  []souls.Store // best-effort recording, in order
	Scroll  *souls.FileStore
}

// Run plays the whole game and returns the session's final state
// string ("escaped" or "lost").
func (r *Runner) Run(ctx context.Context) string {
	out := r.Printer.Out

	Banner(out, "HAUNTED CHESSBOARD", '=')
	fmt.Fprint(out, Intro+"\n")
	r.promptEnter("Press Enter to begin your haunting journey...")

	for !r.Session.Finished() {
		r.playRoom()
		if r.Session.State() == "playing" {
			r.promptEnter("Press Enter to continue to the next room...")
		}
	}

	if r.Session.State() == "escaped" {
		r.Printer.Cutscene()
		r.recordEscape(ctx)
	}
	fmt.Fprintln(out, "\nThanks for playing Haunted Chessboard!")
	return r.Session.State()
}

// playRoom loops on one room until it is solved or the session ends.
func (r *Runner) playRoom() {
	out := r.Printer.Out
	room := r.Session.Room()
	pos := board.ParseFEN(room.FEN)

	fmt.Fprintln(out)
	Banner(out, "ENTERING: "+strings.ToUpper(room.Name), '#')
	r.Printer.Typewrite(room.Description)

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, HealthBar(r.Session.Health))
		fmt.Fprint(out, pos.Render())

		input, ok := r.prompt("\nEnter your move (or 'hint'/'quit'): ")
		if !ok {
			// Input stream closed; treat as giving up.
			input = "quit"
		}

		res := r.Session.Apply(input)
		switch res.Kind {
		case game.Quit:
			fmt.Fprintln(out, "\n"+QuitMessage)
			return
		case game.Hint:
			fmt.Fprintln(out, "\n"+res.Hint)
		case game.BadFormat:
			fmt.Fprintln(out, "Invalid move format! Use algebraic notation (e.g., Qh5, Nf3)")
		case game.WrongMove:
			fmt.Fprintf(out, "\nWrong move! The spirits grow angry... (-%d life force)\n", r.Session.Penalty())
		case game.Drained:
			fmt.Fprintf(out, "\nWrong move! The spirits grow angry... (-%d life force)\n", r.Session.Penalty())
			fmt.Fprintln(out, "\n"+DrainedMessage)
			return
		case game.Solved, game.Escaped:
			fmt.Fprintln(out, "\nCorrect! The spirits whisper their approval...")
			fmt.Fprintln(out, "\n"+strings.Repeat("=", 50))
			r.Printer.Typewrite(res.Room.Backstory)
			fmt.Fprintln(out, strings.Repeat("=", 50))
			return
		}
	}
}

// recordEscape asks for a name, records the escape in every
// configured store, and dumps the scroll. Store failures are
// reported and otherwise ignored; the escape stands either way.
func (r *Runner) recordEscape(ctx context.Context) {
	out := r.Printer.Out

	Banner(out, "ENTERING THE HALL OF SOULS...", '~')
	name, _ := r.prompt("\nEnter your name for the Hall of Souls: ")
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}

	entry := souls.NewEntry(name, r.Session.Health)
	for _, st := range r.Stores {
		if err := st.Record(ctx, entry); err != nil {
			log.Warn().Err(err).Msg("record soul")
			fmt.Fprintln(out, "Could not record in the Hall of Souls:", err)
		}
	}

	fmt.Fprintln(out, "\nYour escape has been recorded in the Hall of Souls!")
	if r.Scroll != nil {
		fmt.Fprintf(out, "Check '%s' to see all escaped souls.\n", r.Scroll.Path())
	}
	DumpHall(ctx, out, r.Scroll)
}

// DumpHall prints the Hall of Souls scroll, or a placeholder line
// when nobody has escaped yet.
func DumpHall(ctx context.Context, out io.Writer, scroll *souls.FileStore) {
	if scroll == nil {
		return
	}
	Banner(out, "HALL OF SOULS - ESCAPED HEROES", '~')
	content, err := scroll.Dump(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("read hall of souls")
		fmt.Fprintln(out, "Could not read the Hall of Souls:", err)
		return
	}
	if strings.TrimSpace(content) == "" {
		fmt.Fprintln(out, "The Hall of Souls is empty... You are the first to escape!")
		return
	}
	fmt.Fprintln(out, content)
}

// prompt prints a prompt and reads one line. ok is false when the
// input stream is exhausted.
func (r *Runner) prompt(msg string) (string, bool) {
	fmt.Fprint(r.Printer.Out, msg)
	if !r.In.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.In.Text()), true
}

// promptEnter waits for a bare newline.
func (r *Runner) promptEnter(msg string) {
	fmt.Fprint(r.Printer.Out, "\n"+msg)
	r.In.Scan()
	fmt.Fprintln(r.Printer.Out)
}
