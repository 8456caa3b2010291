package systems

import (
	"github.com/automoto/versus/shared/arena"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewArenaSystem steps the arena once per ebiten update.
func NewArenaSystem(a *arena.Arena) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		a.Tick(1 / float64(ebiten.TPS()))
	}
}
