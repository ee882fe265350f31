package protocol

import (
	"encoding/json"
)

const (
	MsgHello   = "hello"
	MsgCommand = "command"
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgEvent   = "event"
)

const (
	// SimTickHz is the simulation rate; one tick is ~15.6ms.
	SimTickHz = 64
	// BroadcastHz is the state snapshot rate. Must divide SimTickHz.
	BroadcastHz = 32
)

// Command actions a client may send.
const (
	ActionLeft    = "left"
	ActionRight   = "right"
	ActionUp      = "up"
	ActionDown    = "down"
	ActionRestart = "restart"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
