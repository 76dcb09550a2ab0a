package model

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/chesshall/chesshall/internal/engine"
	"github.com/chesshall/chesshall/internal/ws"
)

const initialClockTime = 600 * time.Second

// GameConnections tracks the websocket connections watching one game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is a single game session: the rule engine plus everything the
// clients need around it (seats, clocks, notation, connections). All
// rule decisions are delegated to the engine; this layer never
// re-derives legality on its own.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *engine.Board
	players     Players
	moveHistory []Move
	captured    CapturedPieces
	lastMove    *SimpleMove
	sound       string
	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
}

// GameState is the JSON snapshot broadcast to clients after every
// state change.
type GameState struct {
	Sound          string            `json:"sound"`
	Board          [][]*engine.Piece `json:"board"`
	ToMove         engine.Color      `json:"toMove"`
	MoveHistory    []Move            `json:"moveHistory"`
	CapturedPieces CapturedPieces    `json:"capturedPieces"`
	IsCheck        bool              `json:"isCheck"`
	Resolve        *string           `json:"resolve"`
	Winner         *engine.Color     `json:"winner"`
	LastMove       *SimpleMove       `json:"lastMove"`
	Players        Players           `json:"players"`
}

type CapturedPieces struct {
	White []engine.Piece `json:"white"`
	Black []engine.Piece `json:"black"`
}

func NewGame(id string) *Game {
	board := engine.NewBoard()
	board.Initialize()
	return &Game{
		ID:          id,
		board:       board,
		connections: NewGameConnections(),
		whiteClock:  NewClock(initialClockTime),
		blackClock:  NewClock(initialClockTime),
	}
}

func (g *Game) AddPlayer(playerID string) (engine.Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.players.White.ID == "" {
		g.players.White = ClientPlayer{
			ID:       playerID,
			Color:    engine.White,
			TimeLeft: clientTime(g.whiteClock),
		}
		return engine.White, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = ClientPlayer{
			ID:       playerID,
			Color:    engine.Black,
			TimeLeft: clientTime(g.blackClock),
		}
		return engine.Black, nil
	}
	return "", ErrGameFull
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	if g.players.White.ID != "" && g.players.White.ID == playerID {
		return true
	}
	if g.players.Black.ID != "" && g.players.Black.ID == playerID {
		return true
	}
	return false
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.players.White.ID == "" || g.players.Black.ID == ""
}

// GetState assembles the client snapshot under the game lock.
func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateSnapshot()
}

func (g *Game) stateSnapshot() GameState {
	grid := make([][]*engine.Piece, engine.BoardSize)
	for y := range grid {
		grid[y] = make([]*engine.Piece, engine.BoardSize)
		for x := range grid[y] {
			if p, ok := g.board.PieceAt(engine.Position{X: x, Y: y}); ok {
				piece := p
				grid[y][x] = &piece
			}
		}
	}

	state := GameState{
		Sound:          g.sound,
		Board:          grid,
		ToMove:         g.board.Turn(),
		MoveHistory:    append([]Move(nil), g.moveHistory...),
		CapturedPieces: g.captured,
		IsCheck:        g.board.IsInCheck(g.board.Turn()),
		LastMove:       g.lastMove,
		Players:        g.players,
	}
	if g.board.GameOver() {
		if winner, ok := g.board.Winner(); ok {
			resolve := "checkmate"
			state.Resolve = &resolve
			state.Winner = &winner
		} else {
			resolve := "stalemate"
			state.Resolve = &resolve
		}
	}
	return state
}

// MakeMove validates seat and turn, hands the move to the engine, and
// maps the result onto session state. A rejected move changes nothing.
func (g *Game) MakeMove(playerID string, move WSMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	mover, ok := g.board.PieceAt(move.From)
	if !ok {
		return ErrNoPiece
	}
	if mover.Color != g.board.Turn() {
		return ErrNotYourTurn
	}
	if g.seatColor(playerID) != mover.Color {
		return ErrNotYourTurn
	}

	result := g.board.MovePiece(move.From, move.To)
	if result == engine.Invalid {
		return ErrInvalidMove
	}

	entry, _ := g.board.LastMove()
	g.recordPly(entry, result)
	g.lastMove = &SimpleMove{From: entry.From, To: entry.To}
	g.sound = soundFor(entry, result)

	g.clockFor(entry.Turn).Stop()
	if !g.board.GameOver() {
		g.clockFor(g.board.Turn()).Start()
	} else {
		g.clockFor(g.board.Turn()).Stop()
	}
	g.refreshClientClocks()

	go g.broadcastState()
	return nil
}

// UndoMove pops the most recent engine record and rolls the session
// view back with it.
func (g *Game) UndoMove(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if playerID != "" && !g.isPlayerInGame(playerID) {
		return ErrNotAuthorized
	}

	entry, ok := g.board.LastMove()
	if !ok {
		return ErrNothingToUndo
	}
	g.board.UndoLastMove()

	if entry.Captured != nil {
		g.popCaptured(entry.Captured.Color)
	}
	if n := len(g.moveHistory); n > 0 {
		if g.moveHistory[n-1].BlackPly != nil {
			g.moveHistory[n-1].BlackPly = nil
		} else {
			g.moveHistory = g.moveHistory[:n-1]
		}
	}
	if prev, ok := g.board.LastMove(); ok {
		g.lastMove = &SimpleMove{From: prev.From, To: prev.To}
	} else {
		g.lastMove = nil
	}
	g.sound = "undo"

	g.clockFor(g.board.Turn().Opponent()).Stop()
	g.clockFor(g.board.Turn()).Start()
	g.refreshClientClocks()

	go g.broadcastState()
	return nil
}

// LegalMovesAt returns the check-filtered destinations for the piece
// on pos, for client move hints.
func (g *Game) LegalMovesAt(pos engine.Position) []engine.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.LegalMoves(pos)
}

// seatColor returns the color playerID occupies, or "" for
// spectators. While a seat is still open the turn color is allowed so
// a lone player can try the game.
func (g *Game) seatColor(playerID string) engine.Color {
	if g.players.White.ID == playerID && playerID != "" {
		return engine.White
	}
	if g.players.Black.ID == playerID && playerID != "" {
		return engine.Black
	}
	if g.canSpectate() {
		return g.board.Turn()
	}
	return ""
}

func (g *Game) recordPly(entry engine.HistoryEntry, result engine.MoveResult) {
	ply := Ply{
		Piece:     entry.Moved,
		From:      entry.From,
		To:        entry.To,
		Captured:  entry.Captured,
		Promotion: entry.Promotion,
		Notation:  notation(entry, result),
	}
	if entry.Captured != nil {
		g.pushCaptured(*entry.Captured)
	}
	if entry.Turn == engine.White {
		g.moveHistory = append(g.moveHistory, Move{WhitePly: &ply})
		return
	}
	if n := len(g.moveHistory); n > 0 && g.moveHistory[n-1].BlackPly == nil {
		g.moveHistory[n-1].BlackPly = &ply
		return
	}
	g.moveHistory = append(g.moveHistory, Move{BlackPly: &ply})
}

func (g *Game) pushCaptured(p engine.Piece) {
	if p.Color == engine.White {
		g.captured.White = append(g.captured.White, p)
	} else {
		g.captured.Black = append(g.captured.Black, p)
	}
}

func (g *Game) popCaptured(c engine.Color) {
	if c == engine.White {
		if n := len(g.captured.White); n > 0 {
			g.captured.White = g.captured.White[:n-1]
		}
	} else {
		if n := len(g.captured.Black); n > 0 {
			g.captured.Black = g.captured.Black[:n-1]
		}
	}
}

// notation renders a ply in lightweight algebraic form, e.g. "Nf3",
// "exd5", "a8=Q+", "Qh4#".
func notation(entry engine.HistoryEntry, result engine.MoveResult) string {
	s := entry.Moved.Type.Notation()
	if entry.Moved.Type == engine.Pawn && entry.From.X != entry.To.X {
		s += entry.From.String()[:1]
	}
	if entry.Captured != nil {
		s += "x"
	}
	s += entry.To.String()
	if entry.Promotion {
		s += "=Q"
	}
	switch result {
	case engine.Check:
		s += "+"
	case engine.Checkmate:
		s += "#"
	}
	return s
}

func soundFor(entry engine.HistoryEntry, result engine.MoveResult) string {
	switch {
	case result == engine.Check || result == engine.Checkmate:
		return "check"
	case entry.Captured != nil:
		return "capture"
	default:
		return "move"
	}
}

func (g *Game) clockFor(c engine.Color) *Clock {
	if c == engine.White {
		return g.whiteClock
	}
	return g.blackClock
}

func (g *Game) refreshClientClocks() {
	g.players.White.TimeLeft = clientTime(g.whiteClock)
	g.players.Black.TimeLeft = clientTime(g.blackClock)
}

// clientTime converts a clock to the tenth-of-a-second unit clients
// display.
func clientTime(c *Clock) int {
	return int(c.GetTimeLeft().Milliseconds() / 100)
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !isAuthorized {
		return ErrNotAuthorized
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the healthy connection and reject the newcomer.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, playerID)
}

func (g *Game) broadcastState() {
	g.mu.Lock()
	state := g.stateSnapshot()
	g.mu.Unlock()

	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("marshal game state: %v", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		})
		if err != nil {
			log.Printf("send state to player %s: %v", playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
