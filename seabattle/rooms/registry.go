package rooms

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is already full")
)

// Codes avoid easily confused characters (no I, O, 0, 1).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 4

// Registry owns the live rooms and keeps the code and participant indexes
// consistent behind one lock: every indexed participant resolves to a room
// that contains it.
type Registry struct {
	mu         sync.Mutex
	rooms      map[string]*Room
	playerRoom map[string]string
	rng        *rand.Rand
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:      make(map[string]*Room),
		playerRoom: make(map[string]string),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Create opens a new room in the lobby phase with the caller as host.
func (g *Registry) Create(playerID, name string) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	code := g.uniqueCodeLocked()
	room := newRoom(code, playerID, name)
	g.rooms[code] = room
	g.playerRoom[playerID] = code
	return room
}

// Join adds the caller to the room with the given code as guest and returns
// the room and its host for notification.
func (g *Registry) Join(code, playerID, name string) (*Room, *Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	room, ok := g.rooms[code]
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	host, err := room.join(playerID, name)
	if err != nil {
		return nil, nil, err
	}
	g.playerRoom[playerID] = code
	return room, host, nil
}

// Get looks a room up by code.
func (g *Registry) Get(code string) (*Room, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	room, ok := g.rooms[code]
	return room, ok
}

// ByPlayer resolves a participant identity to its room.
func (g *Registry) ByPlayer(playerID string) (*Room, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	code, ok := g.playerRoom[playerID]
	if !ok {
		return nil, false
	}
	room, ok := g.rooms[code]
	return room, ok
}

// Remove drops a participant from the indexes and from its room. The room is
// destroyed once its last member leaves. Returns the still-populated room so
// the caller can notify the remaining member, or nil.
func (g *Registry) Remove(playerID string) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	code, ok := g.playerRoom[playerID]
	if !ok {
		return nil
	}
	delete(g.playerRoom, playerID)
	room, ok := g.rooms[code]
	if !ok {
		return nil
	}
	if room.removePlayer(playerID) == 0 {
		delete(g.rooms, code)
		return nil
	}
	return room
}

// Stats reports live room and participant counts.
func (g *Registry) Stats() (roomCount, playerCount int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rooms), len(g.playerRoom)
}

func (g *Registry) uniqueCodeLocked() string {
	for {
		b := make([]byte, codeLength)
		for i := range b {
			b[i] = codeAlphabet[g.rng.Intn(len(codeAlphabet))]
		}
		code := string(b)
		if _, exists := g.rooms[code]; !exists {
			return code
		}
	}
}
