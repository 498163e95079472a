// internal/ui/ui.go
//
// Terminal presentation helpers: typewriter pacing, the life force
// bar, and the fixed narrative blocks (intro, cutscene, endings).
// All output goes through an io.Writer so the run loop is testable.

package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Intro is shown once at startup.
const Intro = `
You wake up in a mysterious mansion, trapped by restless spirits.
The only way to escape is to solve their chess puzzles.

Each wrong move drains your life force...
Solve all puzzles to uncover the truth and escape!

Commands:
- Enter moves in algebraic notation (e.g., Qh5, Nf3, e4)
- Type 'hint' for a clue
- Type 'quit' to give up and remain trapped forever
`

// End-of-session lines.
const (
	QuitMessage      = "You give up and become another lost soul in the mansion..."
	DrainedMessage   = "Your life force is drained... You become part of the mansion forever..."
	InterruptMessage = "You flee in terror, leaving the spirits unsolved..."
)

// cutsceneFrames are printed in order after the final room, with a
// pause between frames.
var cutsceneFrames = []string{
	`
    ╔══════════════════════════════════════════════╗
    ║           THE MANSION TREMBLES...            ║
    ╚══════════════════════════════════════════════╝`,
	`
              ░░░░░░░░░░░░░░░░░░░
              ░  WALLS CRACKING  ░
              ░░░░░░░░░░░░░░░░░░░`,
	`
    ╭──────────────────────────────────────────────╮
    │        CHAINS OF TORMENT BREAKING            │
    │                                              │
    │        SPIRITS ASCENDING TO PEACE...         │
    ╰──────────────────────────────────────────────╯`,
	`
                   SOULS FREED!

           THE DOOR OPENS WITH A CREAK...`,
	`
    ╔══════════════════════════════════════════════╗
    ║   SUNLIGHT STREAMS THROUGH THE DOORWAY       ║
    ║                                              ║
    ║          YOU STEP INTO FREEDOM...            ║
    ╚══════════════════════════════════════════════╝`,
}

// victoryBanner closes the cutscene.
const victoryBanner = `
    ╔══════════════════════════════════════════════╗
    ║      CONGRATULATIONS, CHESS MASTER!          ║
    ║                                              ║
    ║  You have broken the curse of the Haunted    ║
    ║  Mansion! The spirits can finally rest in    ║
    ║  peace, thanks to your superior chess        ║
    ║  knowledge!                                  ║
    ║                                              ║
    ║  YOUR NAME SHALL BE RECORDED IN THE          ║
    ║  HALL OF SOULS                               ║
    ╚══════════════════════════════════════════════╝
`

// Printer paces narrative output. A zero delay disables both the
// typewriter effect and the inter-frame pauses, which keeps tests
// fast.
type Printer struct {
	Out   io.Writer
	Delay time.Duration // per-rune typewriter delay
}

// Typewrite prints text one rune at a time, then a newline.
func (p *Printer) Typewrite(text string) {
	if p.Delay <= 0 {
		fmt.Fprintln(p.Out, text)
		return
	}
	for _, r := range text {
		fmt.Fprintf(p.Out, "%c", r)
		time.Sleep(p.Delay)
	}
	fmt.Fprintln(p.Out)
}

// pause sleeps d, scaled to zero when pacing is disabled.
func (p *Printer) pause(d time.Duration) {
	if p.Delay > 0 {
		time.Sleep(d)
	}
}

// HealthBar renders the life force readout, one block per ten points.
func HealthBar(health int) string {
	if health < 0 {
		health = 0
	}
	filled := health / 10
	if filled > 10 {
		filled = 10
	}
	return fmt.Sprintf("Life Force: [%s%s] %d/100",
		strings.Repeat("█", filled), strings.Repeat("░", 10-filled), health)
}

// Banner wraps a title in a rule of the given rune.
func Banner(w io.Writer, title string, rule rune) {
	line := strings.Repeat(string(rule), 60)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, line)
}

// Cutscene plays the escape sequence.
func (p *Printer) Cutscene() {
	for _, frame := range cutsceneFrames {
		fmt.Fprintln(p.Out, frame)
		p.pause(2 * time.Second)
	}
	fmt.Fprint(p.Out, victoryBanner+"\n")
	p.pause(2 * time.Second)
}
