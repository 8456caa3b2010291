package messages

import "github.com/automoto/versus/shared/netconfig"

// FighterInput is sent from client to server every frame with the buttons
// the player holds. The server applies the latest one per tick.
type FighterInput struct {
	Sequence  uint32 // incrementing, older inputs are dropped
	Buttons   netconfig.Buttons
	Timestamp int64 // client Unix ms
}
