package arena

import (
	"github.com/automoto/versus/components"
	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/tags"
	"github.com/yohamta/donburi"
)

// body is the fsm.Body of a fighter entity. Position is the feet center of
// its resolv object.
type body struct {
	entry *donburi.Entry
}

func (b body) object() components.ObjectData {
	return *components.Object.Get(b.entry)
}

func (b body) physics() *components.PhysicsData {
	return components.Physics.Get(b.entry)
}

func (b body) Position() gamemath.Vector { return b.object().Feet() }
func (b body) Velocity() gamemath.Vector { return b.physics().Velocity }
func (b body) SetVelocity(v gamemath.Vector) { b.physics().Velocity = v }
func (b body) Grounded() bool { return b.physics().OnGround }
func (b body) SetGrounded(g bool) { b.physics().OnGround = g }
func (b body) SetSimulated(on bool) { b.physics().Simulated = on }

// place puts the feet at p and stops the body.
func (b body) place(p gamemath.Vector) {
	obj := b.object().Object
	obj.X = p.X - obj.W/2
	obj.Y = p.Y - obj.H
	obj.Update()
	phys := b.physics()
	phys.Velocity = gamemath.Vector{}
	phys.OnGround = true
	phys.Simulated = true
}

// integrate moves the body by its velocity, stopping at solids. It is the
// only writer of OnGround besides a jump.
func (b body) integrate(dt, maxFall float64) {
	phys := b.physics()
	if !phys.Simulated {
		return
	}
	obj := b.object().Object
	if phys.Velocity.Y > maxFall {
		phys.Velocity.Y = maxFall
	}

	dx := phys.Velocity.X * dt
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
				phys.Velocity.X = 0
			}
		}
		obj.X += dx
	}

	dy := phys.Velocity.Y * dt
	checkDist := dy
	if dy >= 0 {
		checkDist++
	}
	if check := obj.Check(0, checkDist, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			obj.Y += check.ContactWithObject(solids[0]).Y()
			phys.Velocity.Y = 0
			phys.OnGround = dy >= 0
			obj.Update()
			return
		}
	}

	phys.OnGround = false
	obj.Y += dy
	obj.Update()
}

// animation is the fsm.AnimationPlayer of a fighter entity.
type animation struct {
	entry *donburi.Entry
}

func (a animation) Play(name string) error {
	return components.Animation.Get(a.entry).Play(name)
}

func (a animation) IsFinished() bool {
	return components.Animation.Get(a.entry).IsFinished()
}

func (a animation) NormalizedProgress() float64 {
	return components.Animation.Get(a.entry).NormalizedProgress()
}
