package engine

// GridSize is the side length of every board.
const GridSize = 10

// TotalShipCells is the number of cells a complete fleet occupies:
// 4*1 + 3*2 + 2*3 + 1*4.
const TotalShipCells = 20

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

type CellState string

const (
	CellEmpty CellState = "empty"
	CellShip  CellState = "ship"
	CellHit   CellState = "hit"
	CellMiss  CellState = "miss"
	CellSunk  CellState = "sunk"
)

// ShipClass describes one entry of the required fleet composition.
type ShipClass struct {
	Name  string
	Size  int
	Count int
}

// Fleet is the fixed composition every participant must place.
var Fleet = []ShipClass{
	{Name: "battleship", Size: 4, Count: 1},
	{Name: "cruiser", Size: 3, Count: 2},
	{Name: "destroyer", Size: 2, Count: 3},
	{Name: "submarine", Size: 1, Count: 4},
}

type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Ship struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Size        int         `json:"size"`
	Orientation Orientation `json:"orientation"`
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	Hits        int         `json:"hits"`
	Sunk        bool        `json:"sunk"`
}

// Cells returns the coordinates covered by the ship, anchor first. No bounds
// checking here; that is the validator's job.
func (s *Ship) Cells() []Coordinate {
	cells := make([]Coordinate, 0, s.Size)
	for i := 0; i < s.Size; i++ {
		if s.Orientation == Horizontal {
			cells = append(cells, Coordinate{Row: s.Row, Col: s.Col + i})
		} else {
			cells = append(cells, Coordinate{Row: s.Row + i, Col: s.Col})
		}
	}
	return cells
}

type Cell struct {
	State  CellState `json:"state"`
	ShipID string    `json:"shipId,omitempty"`
}

// Board is one participant's grid with the fleet stamped onto it. Ships are
// fixed after construction; only per-cell shot state mutates.
type Board struct {
	Grid     [][]Cell `json:"grid"`
	Ships    []*Ship  `json:"ships"`
	HitCount int      `json:"hitCount"`
}

// NewGrid builds an empty GridSize x GridSize grid.
func NewGrid() [][]Cell {
	grid := make([][]Cell, GridSize)
	for i := range grid {
		grid[i] = make([]Cell, GridSize)
		for j := range grid[i] {
			grid[i][j] = Cell{State: CellEmpty}
		}
	}
	return grid
}

// BuildBoard stamps a validated fleet onto an empty grid. Hit counters start
// at zero regardless of what the client sent.
func BuildBoard(ships []Ship) *Board {
	board := &Board{Grid: NewGrid(), Ships: make([]*Ship, 0, len(ships))}
	for i := range ships {
		ship := ships[i]
		ship.Hits = 0
		ship.Sunk = false
		for _, c := range ship.Cells() {
			board.Grid[c.Row][c.Col] = Cell{State: CellShip, ShipID: ship.ID}
		}
		board.Ships = append(board.Ships, &ship)
	}
	return board
}
