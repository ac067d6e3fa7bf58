package rooms

import (
	"math/rand"
	"sync"
	"time"

	"github.com/DiabloDraco/local-boat-game/seabattle/engine"
)

type Phase string

const (
	PhaseLobby     Phase = "lobby"
	PhasePlacement Phase = "placement"
	PhaseBattle    Phase = "battle"
	PhaseGameOver  Phase = "game_over"
)

const (
	RoleHost  = "host"
	RoleGuest = "guest"
)

type Player struct {
	ID   string
	Name string
	Role string
}

// Room holds one match: its phase, at most two players, their boards and the
// turn pointer. Every mutation goes through the room mutex so check-then-act
// sequences (turn legality, battle start, game over) are atomic per room.
type Room struct {
	mu          sync.Mutex
	code        string
	phase       Phase
	players     []*Player
	boards      map[string]*engine.Board
	currentTurn string
	winner      string
	rng         *rand.Rand
}

func newRoom(code string, hostID, hostName string) *Room {
	return &Room{
		code:    code,
		phase:   PhaseLobby,
		players: []*Player{{ID: hostID, Name: hostName, Role: RoleHost}},
		boards:  make(map[string]*engine.Board, 2),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *Room) Code() string { return r.code }

func (r *Room) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *Room) CurrentTurn() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentTurn
}

func (r *Room) Winner() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.winner
}

// Players returns a snapshot of the room's members.
func (r *Room) Players() []Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, *p)
	}
	return out
}

// Player returns the member with the given id, or nil.
func (r *Room) Player(id string) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playerLocked(id)
}

// Opponent returns the other member of the room, or nil.
func (r *Room) Opponent(id string) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opponentLocked(id)
}

func (r *Room) playerLocked(id string) *Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) opponentLocked(id string) *Player {
	for _, p := range r.players {
		if p.ID != id {
			return p
		}
	}
	return nil
}

// join appends the second player and advances the phase to placement in one
// critical section, returning the host for notification. Called by the
// registry with the player already indexed.
func (r *Room) join(id, name string) (*Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.players) >= 2 {
		return nil, ErrRoomFull
	}
	host := *r.players[0]
	r.players = append(r.players, &Player{ID: id, Name: name, Role: RoleGuest})
	r.phase = PhasePlacement
	return &host, nil
}

// removePlayer drops a member and reports how many remain.
func (r *Room) removePlayer(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			break
		}
	}
	return len(r.players)
}

// PlacementOutcome reports what a fleet submission did. A zero Accepted with
// nil Err means the submission was silently dropped (wrong phase, or a board
// was already built for this player).
type PlacementOutcome struct {
	Accepted      bool
	Err           error
	BattleStarted bool
	FirstTurn     string
}

// PlaceFleet validates and accepts one player's fleet. When the second board
// is built the room moves to battle and the first turn is assigned uniformly
// at random, inside the same critical section.
func (r *Room) PlaceFleet(playerID string, ships []engine.Ship) PlacementOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhasePlacement || r.playerLocked(playerID) == nil {
		return PlacementOutcome{}
	}
	if r.boards[playerID] != nil {
		// First accepted fleet is final.
		return PlacementOutcome{}
	}

	if err := engine.ValidateFleet(ships); err != nil {
		return PlacementOutcome{Err: err}
	}
	r.boards[playerID] = engine.BuildBoard(ships)

	out := PlacementOutcome{Accepted: true}
	if len(r.players) == 2 && r.boards[r.players[0].ID] != nil && r.boards[r.players[1].ID] != nil {
		first := r.players[r.rng.Intn(2)]
		r.currentTurn = first.ID
		r.phase = PhaseBattle
		out.BattleStarted = true
		out.FirstTurn = first.ID
	}
	return out
}

// ShotOutcome reports a resolved shot. OK is false when the request was
// illegal (wrong phase or turn, no opponent, coordinate off-grid) or hit an
// already resolved cell; such requests change nothing and emit nothing.
type ShotOutcome struct {
	OK          bool
	Row, Col    int
	Result      engine.ShotResult
	SunkShip    *engine.Ship
	TurnChanged bool
	CurrentTurn string
	GameOver    bool
	WinnerID    string
	WinnerName  string
}

// Fire resolves one shot by playerID against the opponent's board. Turn is
// retained on hit and non-winning sunk, flipped on miss; a winning sunk fixes
// the winner and ends the game.
func (r *Room) Fire(playerID string, row, col int) ShotOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseBattle || r.currentTurn != playerID {
		return ShotOutcome{}
	}
	if row < 0 || row >= engine.GridSize || col < 0 || col >= engine.GridSize {
		return ShotOutcome{}
	}
	opponent := r.opponentLocked(playerID)
	if opponent == nil {
		return ShotOutcome{}
	}
	board := r.boards[opponent.ID]
	if board == nil {
		return ShotOutcome{}
	}

	shot := board.ApplyShot(row, col)
	if shot.Result == engine.ShotAlready {
		return ShotOutcome{}
	}

	out := ShotOutcome{
		OK:       true,
		Row:      row,
		Col:      col,
		Result:   shot.Result,
		SunkShip: shot.SunkShip,
	}

	if shot.GameOver {
		r.phase = PhaseGameOver
		r.winner = playerID
		out.GameOver = true
		out.WinnerID = playerID
		out.WinnerName = r.playerLocked(playerID).Name
		return out
	}

	if shot.Result == engine.ShotMiss {
		r.currentTurn = opponent.ID
		out.TurnChanged = true
		out.CurrentTurn = opponent.ID
	}
	return out
}
