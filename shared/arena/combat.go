package arena

import (
	"log"

	"github.com/automoto/versus/archetypes"
	"github.com/automoto/versus/components"
	"github.com/automoto/versus/shared/fsm"
	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/shared/hitbox"
	"github.com/automoto/versus/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Spawn creates a projectile entity for a fighter's special.
func (a *Arena) Spawn(req fsm.SpawnRequest) {
	p := req.Move.Projectile
	if p == nil || req.Attack == nil {
		return
	}
	w, h := p.W, p.H
	if w <= 0 || h <= 0 {
		w, h = 16, 16
	}

	e := archetypes.Projectile.Spawn(a.world)
	obj := resolv.NewObject(req.Origin.X-w/2, req.Origin.Y-h/2, w, h, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	a.space.Add(obj)

	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Projectile.SetValue(e, components.ProjectileData{
		Owner:     req.Owner,
		Attack:    req.Attack,
		Velocity:  gamemath.Vector{X: p.Speed * gamemath.Sign(req.Facing, 1)},
		Remaining: p.Lifetime,
	})
	if a.cfg.Fighter.Debug {
		log.Printf("[arena] %s fired %s", req.Owner, req.Move.Name)
	}
}

// Projectiles returns the live projectile entries.
func (a *Arena) Projectiles() []*donburi.Entry {
	var out []*donburi.Entry
	components.Projectile.Each(a.world, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func (a *Arena) moveProjectiles(dt float64) {
	for _, e := range a.Projectiles() {
		proj := components.Projectile.Get(e)
		proj.Remaining -= dt
		if proj.Remaining <= 0 {
			proj.Destroy = true
			continue
		}
		obj := components.Object.Get(e).Object
		obj.X += proj.Velocity.X * dt
		obj.Y += proj.Velocity.Y * dt
		obj.Update()

		if check := obj.Check(0, 0, tags.ResolvSolid); check != nil {
			od := components.ObjectData{Object: obj}
			for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
				if od.Overlaps(s) {
					proj.Destroy = true
					break
				}
			}
		}
	}
}

// frontal reports whether defender faces the point an attack comes from.
func frontal(defender *fsm.Machine, from gamemath.Vector) bool {
	dx := from.X - defender.Position().X
	if dx == 0 {
		return true
	}
	return gamemath.Sign(dx, 1) == defender.Facing()
}

// syncHitbox moves the fighter's melee box to its open hitbox, adding it to
// or removing it from the space. It reports whether the box is live.
func (a *Arena) syncHitbox(f *components.FighterData) bool {
	x, y, w, h, ok := f.Machine.HitboxRect()
	if !ok {
		if f.HitboxActive {
			a.space.Remove(f.Hitbox)
			f.HitboxActive = false
		}
		return false
	}
	f.Hitbox.X, f.Hitbox.Y, f.Hitbox.W, f.Hitbox.H = x, y, w, h
	f.Hitbox.SetShape(resolv.NewRectangle(0, 0, w, h))
	if !f.HitboxActive {
		a.space.Add(f.Hitbox)
		f.HitboxActive = true
	}
	f.Hitbox.Update()
	return true
}

// resolveMelee resolves every open hitbox against the other fighters' boxes
// in slot order. A hit knocks the defender back, which closes the
// defender's own attack before its turn comes.
func (a *Arena) resolveMelee() {
	for _, e := range a.fighters {
		f := components.Fighter.Get(e)
		if !a.syncHitbox(f) {
			continue
		}
		attack := f.Machine.ActiveAttack()
		check := f.Hitbox.Check(0, 0, tags.ResolvFighter)
		if check == nil {
			continue
		}
		box := components.ObjectData{Object: f.Hitbox}
		for _, obj := range check.ObjectsByTags(tags.ResolvFighter) {
			target, ok := obj.Data.(*donburi.Entry)
			if !ok || target == e || !box.Overlaps(obj) {
				continue
			}
			def := components.Fighter.Get(target).Machine
			a.resolver.Resolve(attack, def, frontal(def, f.Machine.Position()))
		}
		a.syncHitbox(f)
	}
}

// resolveProjectiles resolves projectiles against fighters. A projectile is
// spent by the first fighter it hits or is blocked by.
func (a *Arena) resolveProjectiles() {
	for _, e := range a.Projectiles() {
		proj := components.Projectile.Get(e)
		if proj.Destroy {
			continue
		}
		od := *components.Object.Get(e)
		check := od.Check(0, 0, tags.ResolvFighter)
		if check == nil {
			continue
		}
		for _, obj := range check.ObjectsByTags(tags.ResolvFighter) {
			target, ok := obj.Data.(*donburi.Entry)
			if !ok || !od.Overlaps(obj) {
				continue
			}
			def := components.Fighter.Get(target).Machine
			if a.resolver.Resolve(proj.Attack, def, frontal(def, od.Center())) != hitbox.Whiffed {
				proj.Destroy = true
				break
			}
		}
	}
	a.removeDestroyed()
}

func (a *Arena) removeDestroyed() {
	for _, e := range a.Projectiles() {
		if components.Projectile.Get(e).Destroy {
			a.removeProjectile(e)
		}
	}
}

func (a *Arena) removeProjectile(e *donburi.Entry) {
	a.space.Remove(components.Object.Get(e).Object)
	a.world.Remove(e.Entity())
}

func (a *Arena) clearProjectiles() {
	for _, e := range a.Projectiles() {
		a.removeProjectile(e)
	}
}
