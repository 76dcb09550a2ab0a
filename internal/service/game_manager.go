package service

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/chesshall/chesshall/internal/engine"
	"github.com/chesshall/chesshall/internal/model"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns every live game and the matchmaking queue.
type GameManager struct {
	games   map[string]*model.Game
	queue   *model.Queue
	matches map[string]model.MatchFoundEvent // playerID -> pending match
	mu      sync.RWMutex
}

func NewGameManager() *GameManager {
	gm := &GameManager{
		games:   make(map[string]*model.Game),
		queue:   model.NewQueue(),
		matches: make(map[string]model.MatchFoundEvent),
	}

	go gm.processMatchmaking()

	return gm
}

// processMatchmaking pairs the two longest-waiting players once a
// second and parks a MatchFoundEvent for each until they poll for it.
func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		for gm.queue.Size() >= 2 {
			player1, player2 := gm.queue.GetNextPair()

			gameID := uuid.New().String()
			game := model.NewGame(gameID)

			p1Color, err := game.AddPlayer(player1.ID)
			if err != nil {
				continue
			}
			p2Color, err := game.AddPlayer(player2.ID)
			if err != nil {
				continue
			}

			gm.mu.Lock()
			gm.games[gameID] = game
			gm.matches[player1.ID] = model.MatchFoundEvent{GameID: gameID, Color: p1Color}
			gm.matches[player2.ID] = model.MatchFoundEvent{GameID: gameID, Color: p2Color}
			gm.mu.Unlock()
		}
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}

	gm.games[gameID] = model.NewGame(gameID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (engine.Color, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

// PollMatch returns the pending match for playerID, if any, and
// removes it. Clients poll this after joining the queue.
func (gm *GameManager) PollMatch(playerID string) (model.MatchFoundEvent, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	event, ok := gm.matches[playerID]
	if ok {
		delete(gm.matches, playerID)
	}
	return event, ok
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, move model.WSMove) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, move)
}

func (gm *GameManager) UndoMove(gameID string, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.UndoMove(playerID)
}

func (gm *GameManager) LegalMoves(gameID string, pos engine.Position) ([]engine.Position, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMovesAt(pos), nil
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
