package room

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"hopper/game"
	"hopper/protocol"
)

// Room runs one game session on its own goroutine. Everything that
// touches the session (commands, ticks) is funneled through the Run loop,
// so the core never sees concurrent access.
type Room struct {
	Inbox          chan any
	tickHz         int
	broadcastEvery int
	settings       game.Settings
	session        *game.Session
	client         Conn
	playerID       string
	name           string
	nextID         int
	ticks          int
	quit           chan struct{}
	occupied       atomic.Bool
	log            zerolog.Logger

	Code    string            // room code (e.g. "ABC123")
	OnEmpty func(code string) // called when the player leaves
}

// New builds a room around a fresh session. The settings are kept so a
// restart command can rebuild the session after game over.
func New(settings game.Settings, log zerolog.Logger) (*Room, error) {
	session, err := game.NewSession(settings)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Room{
		Inbox:          make(chan any, 256),
		tickHz:         protocol.SimTickHz,
		broadcastEvery: broadcastEvery,
		settings:       settings,
		session:        session,
		nextID:         1,
		quit:           make(chan struct{}),
		log:            log,
	}, nil
}

func (r *Room) Stop() {
	close(r.quit)
}

// Occupied reports whether a player is seated. Safe from any goroutine.
func (r *Room) Occupied() bool {
	return r.occupied.Load()
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.ticks++
			r.sendEvents(r.session.Step())
			if r.ticks%r.broadcastEvery == 0 {
				r.broadcastState()
			}
		}
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		if r.client != nil {
			c.Reply <- JoinResult{}
			_ = c.Conn.Close()
			return
		}
		playerID := fmt.Sprintf("p%d", r.nextID)
		r.nextID++
		r.client = c.Conn
		r.playerID = playerID
		r.name = c.Name
		r.occupied.Store(true)
		r.log.Info().Str("room", r.Code).Str("player", playerID).Str("name", c.Name).Msg("joined")
		c.Reply <- JoinResult{
			PlayerID: playerID,
			Welcome: protocol.Welcome{
				PlayerID: playerID,
				Room:     r.Code,
				TickHz:   r.tickHz,
				FieldW:   r.session.Width,
				FieldH:   r.session.Height,
				RowH:     r.settings.RowHeight,
			},
		}
		r.sendStateTo(c.Conn)
	case Command:
		if c.PlayerID != r.playerID || r.client == nil {
			return
		}
		r.sendEvents(r.applyAction(c.Action))
	case Leave:
		r.handleLeave(c.PlayerID)
	}
}

func (r *Room) applyAction(action string) []game.Event {
	switch action {
	case protocol.ActionLeft:
		return r.session.MoveLeft()
	case protocol.ActionRight:
		return r.session.MoveRight()
	case protocol.ActionUp:
		return r.session.MoveUp()
	case protocol.ActionDown:
		return r.session.MoveDown()
	case protocol.ActionRestart:
		if !r.session.Over() {
			return nil
		}
		session, err := game.NewSession(r.settings)
		if err != nil {
			// settings were valid at construction, so this cannot fail
			r.log.Error().Err(err).Str("room", r.Code).Msg("restart failed")
			return nil
		}
		r.session = session
		r.log.Info().Str("room", r.Code).Msg("session restarted")
		r.broadcastState()
	}
	return nil
}

func (r *Room) handleLeave(playerID string) {
	if playerID != r.playerID || r.client == nil {
		return
	}
	r.sendStateTo(r.client)
	_ = r.client.Close()
	r.client = nil
	r.playerID = ""
	r.occupied.Store(false)
	r.log.Info().Str("room", r.Code).Str("player", playerID).Msg("left")
	if r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) dropClient() {
	if r.client != nil {
		_ = r.client.Close()
	}
	r.client = nil
	r.playerID = ""
	r.occupied.Store(false)
}

func (r *Room) sendEvents(events []game.Event) {
	if r.client == nil {
		return
	}
	for _, ev := range events {
		b, err := protocol.Encode(protocol.MsgEvent, protocol.EventNote{Kind: ev.Kind.String()})
		if err != nil {
			continue
		}
		if err := r.client.Send(b); err != nil {
			r.dropClient()
			return
		}
	}
}

func (r *Room) broadcastState() {
	if r.client == nil {
		return
	}
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	if err := r.client.Send(b); err != nil {
		r.dropClient()
	}
}

func (r *Room) sendStateTo(c Conn) {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) buildSnapshot() protocol.State {
	s := r.session
	snapshot := protocol.State{
		Tick:     s.Tick,
		Phase:    uint8(s.Phase),
		Lives:    s.Lives(),
		Scores:   s.Scores(),
		Points:   s.Points(),
		TimeLeft: s.TimeLeft(),
		Player: protocol.PlayerSnapshot{
			X:        s.Player.X,
			Y:        s.Player.Y,
			Frame:    s.Player.Frame,
			Disabled: s.Player.Disabled,
		},
	}
	for _, road := range []*game.Road{s.Traffic, s.River} {
		for _, lane := range road.Lanes {
			for _, v := range lane.Vehicles {
				snapshot.Vehicles = append(snapshot.Vehicles, protocol.VehicleSnapshot{
					X: v.X, Y: v.Y, W: v.W, H: v.H,
					Kind: uint8(v.Kind), Dir: uint8(v.Dir),
				})
			}
		}
	}
	for _, h := range s.Homes.Spaces {
		snapshot.Homes = append(snapshot.Homes, protocol.HomeSnapshot{X: h.X, Y: h.Y, Taken: h.Taken})
	}
	return snapshot
}
