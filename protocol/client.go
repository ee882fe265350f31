package protocol

// Messages coming in from the client.

type Hello struct {
	V    int    `json:"v"`              // version
	Name string `json:"name,omitempty"` // optional name
}

// Command is a single no-argument movement or lifecycle trigger.
type Command struct {
	Action string `json:"action"` // one of the Action* constants
}
