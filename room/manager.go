package room

import (
	"crypto/rand"
	"math/big"
	"sync"

	"github.com/rs/zerolog"

	"hopper/game"
)

// RoomInfo is returned by the API for the room list.
type RoomInfo struct {
	Code     string `json:"code"`
	Occupied bool   `json:"occupied"`
}

// Manager holds rooms by code. Every room runs the same game settings;
// rooms are created on first join or via CreateRoom and removed when
// their player leaves.
type Manager struct {
	mu       sync.RWMutex
	rooms    map[string]*Room
	settings game.Settings
	log      zerolog.Logger
}

func NewManager(settings game.Settings, log zerolog.Logger) *Manager {
	return &Manager{
		rooms:    make(map[string]*Room),
		settings: settings,
		log:      log,
	}
}

// GetOrCreateRoom returns the room for the given code, creating it if
// needed. A nil room and error mean the code was empty or the session
// could not be built.
func (m *Manager) GetOrCreateRoom(code string) (*Room, error) {
	if code == "" {
		return m.create("")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		return r, nil
	}
	return m.startLocked(code)
}

func (m *Manager) removeRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		r.Stop()
		delete(m.rooms, code)
		m.log.Info().Str("room", code).Msg("room closed")
	}
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CreateRoom generates a unique 6-char code, creates the room, and
// returns the code.
func (m *Manager) CreateRoom() (string, error) {
	r, err := m.create("")
	if err != nil {
		return "", err
	}
	return r.Code, nil
}

func (m *Manager) create(code string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for code == "" {
		c := generateCode(6)
		if _, exists := m.rooms[c]; !exists {
			code = c
		}
	}
	return m.startLocked(code)
}

func (m *Manager) startLocked(code string) (*Room, error) {
	r, err := New(m.settings, m.log)
	if err != nil {
		return nil, err
	}
	r.Code = code
	r.OnEmpty = func(c string) {
		m.removeRoom(c)
	}
	m.rooms[code] = r
	go r.Run()
	m.log.Info().Str("room", code).Msg("room opened")
	return r, nil
}

// ListRooms returns all active rooms.
func (m *Manager) ListRooms() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, RoomInfo{Code: code, Occupied: r.Occupied()})
	}
	return out
}

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
