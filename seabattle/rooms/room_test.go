package rooms

import (
	"testing"

	"github.com/DiabloDraco/local-boat-game/seabattle/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFleet() []engine.Ship {
	return []engine.Ship{
		{ID: "b1", Name: "battleship", Size: 4, Orientation: engine.Horizontal, Row: 0, Col: 0},
		{ID: "c1", Name: "cruiser", Size: 3, Orientation: engine.Horizontal, Row: 0, Col: 5},
		{ID: "c2", Name: "cruiser", Size: 3, Orientation: engine.Horizontal, Row: 2, Col: 0},
		{ID: "d1", Name: "destroyer", Size: 2, Orientation: engine.Horizontal, Row: 2, Col: 4},
		{ID: "d2", Name: "destroyer", Size: 2, Orientation: engine.Horizontal, Row: 2, Col: 7},
		{ID: "d3", Name: "destroyer", Size: 2, Orientation: engine.Horizontal, Row: 4, Col: 0},
		{ID: "s1", Name: "submarine", Size: 1, Orientation: engine.Horizontal, Row: 4, Col: 3},
		{ID: "s2", Name: "submarine", Size: 1, Orientation: engine.Horizontal, Row: 4, Col: 5},
		{ID: "s3", Name: "submarine", Size: 1, Orientation: engine.Horizontal, Row: 4, Col: 7},
		{ID: "s4", Name: "submarine", Size: 1, Orientation: engine.Vertical, Row: 6, Col: 0},
	}
}

// battleRoom sets up a room with both fleets placed, returning the room and
// the ids of the player holding the turn and their opponent.
func battleRoom(t *testing.T) (room *Room, shooter, target string) {
	t.Helper()
	registry := NewRegistry()
	room = registry.Create("p1", "Alice")
	_, _, err := registry.Join(room.Code(), "p2", "Bob")
	require.NoError(t, err)

	out := room.PlaceFleet("p1", testFleet())
	require.True(t, out.Accepted)
	require.False(t, out.BattleStarted)

	out = room.PlaceFleet("p2", testFleet())
	require.True(t, out.Accepted)
	require.True(t, out.BattleStarted)

	shooter = room.CurrentTurn()
	require.Contains(t, []string{"p1", "p2"}, shooter)
	require.Equal(t, shooter, out.FirstTurn)

	target = "p1"
	if shooter == "p1" {
		target = "p2"
	}
	return room, shooter, target
}

func TestPlacementStartsBattle(t *testing.T) {
	room, _, _ := battleRoom(t)
	assert.Equal(t, PhaseBattle, room.Phase())
}

func TestPlacementOutsidePhaseDropped(t *testing.T) {
	registry := NewRegistry()
	room := registry.Create("p1", "Alice")

	// Still in lobby: no opponent yet.
	out := room.PlaceFleet("p1", testFleet())
	assert.False(t, out.Accepted)
	assert.NoError(t, out.Err)
}

func TestPlacementRejectsInvalidFleet(t *testing.T) {
	registry := NewRegistry()
	room := registry.Create("p1", "Alice")
	_, _, err := registry.Join(room.Code(), "p2", "Bob")
	require.NoError(t, err)

	fleet := testFleet()[:9]
	out := room.PlaceFleet("p1", fleet)
	assert.False(t, out.Accepted)
	assert.Error(t, out.Err)
	assert.Equal(t, PhasePlacement, room.Phase())
}

func TestPlacementResubmissionDropped(t *testing.T) {
	registry := NewRegistry()
	room := registry.Create("p1", "Alice")
	_, _, err := registry.Join(room.Code(), "p2", "Bob")
	require.NoError(t, err)

	require.True(t, room.PlaceFleet("p1", testFleet()).Accepted)

	// First accepted fleet is final.
	out := room.PlaceFleet("p1", testFleet())
	assert.False(t, out.Accepted)
	assert.NoError(t, out.Err)
}

func TestPlacementFromStrangerDropped(t *testing.T) {
	registry := NewRegistry()
	room := registry.Create("p1", "Alice")
	_, _, err := registry.Join(room.Code(), "p2", "Bob")
	require.NoError(t, err)

	out := room.PlaceFleet("p3", testFleet())
	assert.False(t, out.Accepted)
	assert.NoError(t, out.Err)
}

func TestFireMissFlipsTurn(t *testing.T) {
	room, shooter, target := battleRoom(t)

	out := room.Fire(shooter, 9, 9)
	require.True(t, out.OK)
	assert.Equal(t, engine.ShotMiss, out.Result)
	assert.True(t, out.TurnChanged)
	assert.Equal(t, target, out.CurrentTurn)
	assert.Equal(t, target, room.CurrentTurn())
}

func TestFireHitRetainsTurn(t *testing.T) {
	room, shooter, _ := battleRoom(t)

	out := room.Fire(shooter, 0, 0)
	require.True(t, out.OK)
	assert.Equal(t, engine.ShotHit, out.Result)
	assert.False(t, out.TurnChanged)
	assert.Equal(t, shooter, room.CurrentTurn())
}

func TestFireSunkRetainsTurn(t *testing.T) {
	room, shooter, _ := battleRoom(t)

	// Single-cell submarine: sunk at once, game far from over.
	out := room.Fire(shooter, 4, 3)
	require.True(t, out.OK)
	assert.Equal(t, engine.ShotSunk, out.Result)
	require.NotNil(t, out.SunkShip)
	assert.Equal(t, "s1", out.SunkShip.ID)
	assert.False(t, out.GameOver)
	assert.False(t, out.TurnChanged)
	assert.Equal(t, shooter, room.CurrentTurn())
}

func TestFireOutOfTurnIgnored(t *testing.T) {
	room, _, target := battleRoom(t)

	out := room.Fire(target, 0, 0)
	assert.False(t, out.OK)
	assert.Equal(t, PhaseBattle, room.Phase())
}

func TestFireAlreadyShotIgnored(t *testing.T) {
	room, shooter, _ := battleRoom(t)

	require.True(t, room.Fire(shooter, 0, 0).OK)

	// Re-targeting a resolved cell is a no-op: no events, turn unchanged.
	out := room.Fire(shooter, 0, 0)
	assert.False(t, out.OK)
	assert.Equal(t, shooter, room.CurrentTurn())
}

func TestFireOffGridIgnored(t *testing.T) {
	room, shooter, _ := battleRoom(t)

	assert.False(t, room.Fire(shooter, -1, 0).OK)
	assert.False(t, room.Fire(shooter, 0, engine.GridSize).OK)
	assert.Equal(t, shooter, room.CurrentTurn())
}

func TestFullGame(t *testing.T) {
	room, shooter, _ := battleRoom(t)

	// Only ship cells are targeted, so the turn never leaves the shooter.
	shots := 0
	var out ShotOutcome
	for _, ship := range testFleet() {
		for _, c := range ship.Cells() {
			out = room.Fire(shooter, c.Row, c.Col)
			require.True(t, out.OK)
			shots++
			if shots < engine.TotalShipCells {
				require.False(t, out.GameOver)
				require.Equal(t, shooter, room.CurrentTurn())
			}
		}
	}

	assert.Equal(t, engine.ShotSunk, out.Result)
	assert.True(t, out.GameOver)
	assert.Equal(t, shooter, out.WinnerID)
	assert.Equal(t, PhaseGameOver, room.Phase())
	assert.Equal(t, shooter, room.Winner())

	// The session is terminal: nothing more to shoot.
	assert.False(t, room.Fire(shooter, 9, 9).OK)
}

func TestFireWithoutOpponentIgnored(t *testing.T) {
	registry := NewRegistry()
	room := registry.Create("p1", "Alice")
	_, _, err := registry.Join(room.Code(), "p2", "Bob")
	require.NoError(t, err)
	require.True(t, room.PlaceFleet("p1", testFleet()).Accepted)
	require.True(t, room.PlaceFleet("p2", testFleet()).BattleStarted)

	shooter := room.CurrentTurn()
	target := "p1"
	if shooter == "p1" {
		target = "p2"
	}

	// Opponent disconnects mid-battle: the room survives with one member but
	// accepts no further shots.
	remaining := registry.Remove(target)
	require.NotNil(t, remaining)
	assert.Len(t, room.Players(), 1)

	assert.False(t, room.Fire(shooter, 0, 0).OK)
}
