package engine

import (
	"errors"
	"fmt"
)

var (
	errOutOfBounds = errors.New("ship is out of bounds")
	errOverlap     = errors.New("ships overlap")
	errAdjacent    = errors.New("ships must be at least one cell apart")
)

// ValidateFleet checks a candidate fleet against composition, bounds, overlap
// and adjacency rules, in that order, returning the first failure. It is a
// pure function of the candidate; the board is not touched.
func ValidateFleet(ships []Ship) error {
	// Composition: required classes in fleet-definition order.
	counts := make(map[string]int, len(Fleet))
	for i := range ships {
		counts[ships[i].Name]++
	}
	for _, class := range Fleet {
		if counts[class.Name] != class.Count {
			return fmt.Errorf("invalid number of %q ships", class.Name)
		}
		for i := range ships {
			if ships[i].Name == class.Name && ships[i].Size != class.Size {
				return fmt.Errorf("invalid size for %q ship", class.Name)
			}
		}
	}

	// Bounds, overlap and adjacency: ships in submission order, each checked
	// against the cells accepted so far.
	occupied := make(map[Coordinate]bool, TotalShipCells)
	for i := range ships {
		cells := ships[i].Cells()

		for _, c := range cells {
			if c.Row < 0 || c.Row >= GridSize || c.Col < 0 || c.Col >= GridSize {
				return errOutOfBounds
			}
			if occupied[c] {
				return errOverlap
			}
		}

		for _, c := range cells {
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					n := Coordinate{Row: c.Row + dr, Col: c.Col + dc}
					if n.Row >= 0 && n.Row < GridSize && n.Col >= 0 && n.Col < GridSize && occupied[n] {
						return errAdjacent
					}
				}
			}
		}

		for _, c := range cells {
			occupied[c] = true
		}
	}

	return nil
}
