package core

import (
	"log"

	"github.com/automoto/versus/components"
	"github.com/automoto/versus/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

func (s *Server) newFighterEntity() donburi.Entity {
	entity := s.world.Create(
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetFighterState,
	)
	err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetFighterState,
	)
	if err != nil {
		log.Printf("[server] network sync for fighter: %v", err)
	}
	return entity
}

func (s *Server) newMatchEntity() donburi.Entity {
	entity := s.world.Create(netcomponents.NetMatch)
	if err := srvsync.NetworkSync(s.world, &entity, netcomponents.NetMatch); err != nil {
		log.Printf("[server] network sync for match: %v", err)
	}
	return entity
}

func (s *Server) networkID(entity donburi.Entity) *esync.NetworkId {
	if !s.world.Valid(entity) {
		return nil
	}
	return esync.GetNetworkId(s.world.Entry(entity))
}

// syncWorld copies the arena into the synced components.
func (s *Server) syncWorld() {
	for slot := range s.arena.Fighters() {
		entity := s.fighters[slot]
		if !s.world.Valid(entity) {
			continue
		}
		m, err := s.arena.Fighter(slot)
		if err != nil {
			continue
		}
		entry := s.world.Entry(entity)
		pos := m.Position()
		vel := m.Body().Velocity()
		stats := m.Ledger().Snapshot()
		limits := m.Ledger().Config()

		netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: pos.X, Y: pos.Y})
		netcomponents.NetVelocity.SetValue(entry, netcomponents.NetVelocityData{VelX: vel.X, VelY: vel.Y})

		move := ""
		if m.CurrentState().Locked() {
			move = m.CurrentMove().Name
		}
		netcomponents.NetFighterState.SetValue(entry, netcomponents.NetFighterStateData{
			FighterID:    m.ID(),
			Character:    m.Character(),
			Slot:         slot,
			StateID:      m.CurrentState(),
			Move:         move,
			Facing:       int(m.Facing()),
			Health:       stats.Health,
			Hyper:        stats.Hyper,
			Stun:         stats.Stun,
			Combo:        stats.ComboCount,
			MaxHealth:    limits.MaxHealth,
			MaxHyper:     limits.MaxHyper,
			MaxStun:      limits.MaxStun,
			LastSequence: s.lastSeq[slot],
		})
	}

	match := s.arena.Match()
	netcomponents.NetMatch.SetValue(s.world.Entry(s.match), netcomponents.NetMatchData{
		MatchID: match.ID,
		State:   match.State,
		Round:   match.Round,
		Timer:   match.Timer,
		Wins:    match.Wins,
		Winner:  match.Winner,
	})

	s.syncProjectiles()
}

// syncProjectiles mirrors live projectiles, creating and removing synced
// entities as they appear and expire.
func (s *Server) syncProjectiles() {
	live := make(map[donburi.Entity]bool)
	for _, e := range s.arena.Projectiles() {
		src := e.Entity()
		live[src] = true

		entity, ok := s.projectiles[src]
		if !ok {
			entity = s.world.Create(netcomponents.NetProjectile)
			if err := srvsync.NetworkSync(s.world, &entity,
				srvsync.WithInterp(netcomponents.NetProjectile),
			); err != nil {
				log.Printf("[server] network sync for projectile: %v", err)
			}
			s.projectiles[src] = entity
		}

		proj := components.Projectile.Get(e)
		obj := components.Object.Get(e)
		center := obj.Center()
		move := ""
		if proj.Attack != nil {
			move = proj.Attack.Move
		}
		netcomponents.NetProjectile.SetValue(s.world.Entry(entity), netcomponents.NetProjectileData{
			X:         center.X,
			Y:         center.Y,
			W:         obj.W,
			H:         obj.H,
			VelX:      proj.Velocity.X,
			OwnerSlot: s.arena.SlotOf(proj.Owner),
			Move:      move,
		})
	}

	for src, entity := range s.projectiles {
		if live[src] {
			continue
		}
		if s.world.Valid(entity) {
			s.world.Remove(entity)
		}
		delete(s.projectiles, src)
	}
}
