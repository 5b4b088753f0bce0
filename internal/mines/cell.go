package mines

// Cell holds the facts about a single board position. Mine and AdjacentMines
// are fixed at construction. Revealed and Flagged belong to whatever gameplay
// logic owns the board; nothing in this package mutates them.
type Cell struct {
	Mine          bool `json:"mine"`
	AdjacentMines int  `json:"adjacent_mines"`
	Revealed      bool `json:"revealed"`
	Flagged       bool `json:"flagged"`
}

func NewCell(mine bool, adjacentMines int) Cell {
	return Cell{Mine: mine, AdjacentMines: adjacentMines}
}
