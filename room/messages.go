package room

import "hopper/protocol"

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello parsed. A room seats one player; a
// second join is refused with an empty PlayerID.
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	PlayerID string
	Welcome  protocol.Welcome
}

// Command: one movement or lifecycle trigger for the seated player.
type Command struct {
	PlayerID string
	Action   string
}

// Leave: issued on disconnect.
type Leave struct {
	PlayerID string
}
