// internal/rooms/rooms.go
//
// The fixed room table for the haunted mansion.
//
// Rooms are immutable configuration: puzzle data carries no solved
// flag and is never mutated. Which rooms have been cleared is session
// state, tracked by the game package against the room index.
package rooms

// Room pairs a chess position with its narrative framing and the
// exact answer strings that clear it. Answers are matched
// case-sensitively with no normalization; a correct move written
// with an unlisted annotation is rejected.
type Room struct {
	Name        string
	Description string   // shown on entry
	FEN         string   // static position, display-only
	Answers     []string // accepted answer strings
	Hint        string
	Backstory   string // shown after solving
}

// rooms is the mansion, in walking order.
var rooms = []Room{
	{
		Name: "The Dusty Library",
		Description: `You awaken in a dimly lit library, ancient books scattered everywhere.
A ghostly whisper echoes: 'Solve the puzzle... or remain forever...'
The chess board glows with an eerie light. White to move and mate in 1.`,
		FEN:     "6k1/5ppp/8/8/8/8/5PPP/4Q1K1 w - - 0 1",
		Answers: []string{"Qe8#", "Qe8"},
		Hint:    "The queen can deliver mate from the back rank...",
		Backstory: `As the pieces settle, you hear a voice from beyond:
'I was the mansion's chess master... trapped here when I failed to solve the final puzzle.
The next room holds darker secrets...'`,
	},
	{
		Name: "The Moonlit Parlor",
		Description: `You enter a parlor bathed in pale moonlight. Portraits on the walls
seem to watch your every move. The temperature drops suddenly.
A spectral figure points at the board: 'White to move... mate in 2...'`,
		FEN:     "r3k2r/ppp2ppp/2n5/2bqp3/2B1P3/3P1N2/PPP2PPP/R1BQK2R w KQkq - 0 1",
		Answers: []string{"Qd5", "Qd5+"},
		Hint:    "Look for a powerful central move with the queen...",
		Backstory: `The ghostly figure nods approvingly:
'Well done... I am the mansion's former owner. My obsession with chess
led to my downfall. One final challenge awaits in the master bedroom...'`,
	},
	{
		Name: "The Master Bedroom",
		Description: `You enter the master bedroom where shadows dance on the walls.
An ornate chess set sits on a table beside a four-poster bed.
A deep, menacing voice booms: 'This is your final test... White to move and mate in 1.
Fail, and join us in eternal torment!'`,
		FEN:     "6k1/6pp/8/8/8/8/6PP/R5K1 w - - 0 1",
		Answers: []string{"Ra8#", "Ra8"},
		Hint:    "The rook can deliver mate along the back rank...",
		Backstory: `As you make the final move, the room fills with blinding light.
The spirits are finally at peace. You hear a gentle voice:
'Thank you for freeing us from this cursed game. The door is now open...'`,
	},
}

// All returns the room table in walking order. Callers must not
// modify the returned slice.
func All() []Room { return rooms }

// Count reports how many rooms the mansion has.
func Count() int { return len(rooms) }
