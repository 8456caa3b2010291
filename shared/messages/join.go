package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest is sent by a client after connecting to ask for a fighter slot.
type JoinRequest struct {
	Version    string
	PlayerName string
	Character  string
}

// JoinAccepted is sent by the server when a client gets a slot.
type JoinAccepted struct {
	NetworkID  esync.NetworkId
	Slot       int
	FighterID  string
	ServerName string
	TickRate   int
	Stage      string
	Character  string
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
