package models

import (
	"github.com/DiabloDraco/local-boat-game/seabattle/engine"
)

// Inbound message types.
const (
	ActionCreateRoom = "room:create"
	ActionJoinRoom   = "room:join"
	ActionPlaceFleet = "game:place"
	ActionFireShot   = "game:shoot"
	ActionChat       = "chat:message"
)

// Outbound event types.
const (
	EventConnected      = "connected"
	EventRoomCreated    = "room:created"
	EventRoomJoined     = "room:joined"
	EventRoomError      = "room:error"
	EventOpponentJoined = "room:opponent_joined"
	EventOpponentLeft   = "room:opponent_left"
	EventPhaseChanged   = "game:phase_changed"
	EventPlacementOK    = "game:placement_ok"
	EventPlacementError = "game:placement_error"
	EventBattleStart    = "game:battle_start"
	EventShotResult     = "game:shot_result"
	EventIncomingShot   = "game:incoming_shot"
	EventTurnChanged    = "game:turn_changed"
	EventGameOver       = "game:over"
	EventChatIncoming   = "chat:incoming"
)

// Envelope carries only the discriminator; the full frame is re-decoded into
// the matching request struct.
type Envelope struct {
	Type string `json:"type"`
}

type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

type JoinRoomRequest struct {
	Code       string `json:"code"`
	PlayerName string `json:"playerName"`
}

type PlaceFleetRequest struct {
	Ships []engine.Ship `json:"ships"`
}

type FireShotRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type ChatRequest struct {
	Text string `json:"text"`
}

type ConnectedEvent struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
}

type RoomCreatedEvent struct {
	Type string `json:"type"`
	Code string `json:"code"`
	Role string `json:"role"`
}

type RoomJoinedEvent struct {
	Type         string `json:"type"`
	Code         string `json:"code"`
	Role         string `json:"role"`
	OpponentName string `json:"opponentName"`
}

type RoomErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type OpponentJoinedEvent struct {
	Type         string `json:"type"`
	OpponentName string `json:"opponentName"`
}

type OpponentLeftEvent struct {
	Type string `json:"type"`
}

type PhaseChangedEvent struct {
	Type  string `json:"type"`
	Phase string `json:"phase"`
}

type PlacementOKEvent struct {
	Type string `json:"type"`
}

type PlacementErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type BattleStartEvent struct {
	Type      string `json:"type"`
	FirstTurn string `json:"firstTurn"`
}

// ShotEvent is sent to both sides of a shot: as game:shot_result to the
// shooter and game:incoming_shot to the target. The outcome data is
// identical; only the framing differs. SunkShip is always the fully resolved
// ship on a sunk result.
type ShotEvent struct {
	Type     string       `json:"type"`
	Row      int          `json:"row"`
	Col      int          `json:"col"`
	Result   string       `json:"result"`
	SunkShip *engine.Ship `json:"sunkShip"`
}

type TurnChangedEvent struct {
	Type        string `json:"type"`
	CurrentTurn string `json:"currentTurn"`
}

type GameOverEvent struct {
	Type       string `json:"type"`
	Winner     string `json:"winner"`
	WinnerName string `json:"winnerName"`
}

type ChatIncomingEvent struct {
	Type      string `json:"type"`
	From      string `json:"from"`
	FromID    string `json:"fromId"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}
