package archetypes

import (
	"github.com/automoto/versus/components"
	"github.com/automoto/versus/tags"
	"github.com/yohamta/donburi"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Physics,
		components.Animation,
		components.Tint,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Stage = newArchetype(
		components.Stage,
	)
	Match = newArchetype(
		components.Match,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
