package components

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
)

// ErrUnknownAnimation is returned by Play for a name the fighter has no
// animation for.
var ErrUnknownAnimation = errors.New("unknown animation")

// AnimationData is a headless animation clock. Lengths are in seconds; a
// zero length loops forever.
type AnimationData struct {
	Lengths map[string]float64
	Current string
	Elapsed float64
}

func (a *AnimationData) Play(name string) error {
	if _, ok := a.Lengths[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAnimation, name)
	}
	a.Current = name
	a.Elapsed = 0
	return nil
}

func (a *AnimationData) Tick(dt float64) {
	a.Elapsed += dt
}

func (a *AnimationData) IsFinished() bool {
	length := a.Lengths[a.Current]
	return length > 0 && a.Elapsed >= length
}

func (a *AnimationData) NormalizedProgress() float64 {
	length := a.Lengths[a.Current]
	if length <= 0 {
		return 0
	}
	return min(a.Elapsed/length, 1)
}

var Animation = donburi.NewComponentType[AnimationData]()
