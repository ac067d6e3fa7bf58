package engine

type ShotResult string

const (
	ShotAlready ShotResult = "already_shot"
	ShotMiss    ShotResult = "miss"
	ShotHit     ShotResult = "hit"
	ShotSunk    ShotResult = "sunk"
)

// Shot is the authoritative outcome of one attack.
type Shot struct {
	Result   ShotResult
	SunkShip *Ship
	GameOver bool
}

// ApplyShot resolves an attack against the board. A cell that was already
// resolved returns ShotAlready without mutating anything, so repeated shots
// at the same coordinate are idempotent. When a ship's last cell is hit the
// whole footprint is re-marked as sunk and the ship is returned. GameOver is
// derived from the board's cumulative hit tally, not from counting sunk
// ships.
func (b *Board) ApplyShot(row, col int) Shot {
	cell := &b.Grid[row][col]

	switch cell.State {
	case CellHit, CellMiss, CellSunk:
		return Shot{Result: ShotAlready}
	case CellEmpty:
		cell.State = CellMiss
		return Shot{Result: ShotMiss}
	}

	cell.State = CellHit
	b.HitCount++

	ship := b.shipByID(cell.ShipID)
	ship.Hits++

	if ship.Hits == ship.Size {
		ship.Sunk = true
		for _, c := range ship.Cells() {
			b.Grid[c.Row][c.Col] = Cell{State: CellSunk, ShipID: ship.ID}
		}
		return Shot{Result: ShotSunk, SunkShip: ship, GameOver: b.HitCount >= TotalShipCells}
	}

	return Shot{Result: ShotHit}
}

func (b *Board) shipByID(id string) *Ship {
	for _, s := range b.Ships {
		if s.ID == id {
			return s
		}
	}
	return nil
}
