package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StateWin     GameStateType = "win"
	StateStuck   GameStateType = "stuck"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Board   [BoardSize][BoardSize]int // 0 for empty cells
	MaxTile int                       // Highest tile on board
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.HasWon():
		state = StateWin
	case !g.CanMove():
		state = StateStuck
	}

	var cells [BoardSize][BoardSize]int
	for _, c := range g.board.AllCells() {
		cells[c.I-1][c.J-1] = g.board.Get(c).Value
	}

	return Snapshot{
		Board:   cells,
		MaxTile: MaxTile(g.board),
		State:   state,
	}
}
