package systems

import (
	"log"
	"time"

	cfg "github.com/automoto/versus/config"
	"github.com/automoto/versus/shared/messages"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/yohamta/donburi/ecs"
)

type netInputState struct {
	seq          uint32
	last         netconfig.Buttons
	lastSendTime time.Time
}

// NewNetworkInputSystem returns an ECS system that polls input and sends
// FighterInput messages to the server when the buttons change, and again
// at the configured send rate while they are held.
func NewNetworkInputSystem(sendFn func(any) error) func(*ecs.ECS) {
	state := &netInputState{}
	resendInterval := time.Second / time.Duration(max(cfg.Network.SendRate, 1))

	return func(_ *ecs.ECS) {
		buttons := PollButtons()
		now := time.Now()
		if buttons == state.last && now.Sub(state.lastSendTime) < resendInterval {
			return
		}

		state.seq++
		input := messages.FighterInput{
			Sequence:  state.seq,
			Buttons:   buttons,
			Timestamp: now.UnixMilli(),
		}
		if err := sendFn(input); err != nil {
			log.Printf("[netinput] send error: %v", err)
		}
		state.last = buttons
		state.lastSendTime = now
	}
}
