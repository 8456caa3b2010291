package network

import (
	"github.com/automoto/versus/components"
	"github.com/automoto/versus/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// Mirror keeps a client world in step with the server's snapshots.
type Mirror struct {
	world     donburi.World
	localSlot int
	present   map[esync.NetworkId]bool
}

func NewMirror(world donburi.World, localSlot int) *Mirror {
	return &Mirror{
		world:     world,
		localSlot: localSlot,
		present:   make(map[esync.NetworkId]bool),
	}
}

// Apply creates, updates and removes entities to match the snapshot.
// Positions are retargeted rather than set so they can be interpolated.
func (m *Mirror) Apply(snapshot esync.WorldSnapshot) {
	clear(m.present)

	for _, ent := range snapshot {
		m.present[ent.Id] = true

		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}

		entity := esync.FindByNetworkId(m.world, ent.Id)
		if !m.world.Valid(entity) {
			entity = m.world.Create(componentTypesFromInstances(compData)...)
			entry := m.world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.Id)
		}

		entry := m.world.Entry(entity)
		for _, data := range compData {
			m.apply(entry, data)
		}
	}

	esync.NetworkEntityQuery.Each(m.world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !m.present[*id] {
			entry.Remove()
		}
	})
}

func (m *Mirror) apply(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetPositionData:
		ensure(entry, netcomponents.NetPosition)
		netcomponents.NetPosition.SetValue(entry, v)
		ensure(entry, components.NetInterp)
		components.NetInterp.Get(entry).Retarget(v.X, v.Y)
	case netcomponents.NetVelocityData:
		ensure(entry, netcomponents.NetVelocity)
		netcomponents.NetVelocity.SetValue(entry, v)
	case netcomponents.NetFighterStateData:
		ensure(entry, netcomponents.NetFighterState)
		v.IsLocal = v.Slot == m.localSlot
		netcomponents.NetFighterState.SetValue(entry, v)
	case netcomponents.NetProjectileData:
		ensure(entry, netcomponents.NetProjectile)
		netcomponents.NetProjectile.SetValue(entry, v)
	case netcomponents.NetMatchData:
		ensure(entry, netcomponents.NetMatch)
		netcomponents.NetMatch.SetValue(entry, v)
	}
}

func ensure(entry *donburi.Entry, c donburi.IComponentType) {
	if !entry.HasComponent(c) {
		entry.AddComponent(c)
	}
}

func componentTypesFromInstances(data []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, d := range data {
		switch d.(type) {
		case netcomponents.NetPositionData:
			ctypes = append(ctypes, netcomponents.NetPosition, components.NetInterp)
		case netcomponents.NetVelocityData:
			ctypes = append(ctypes, netcomponents.NetVelocity)
		case netcomponents.NetFighterStateData:
			ctypes = append(ctypes, netcomponents.NetFighterState)
		case netcomponents.NetProjectileData:
			ctypes = append(ctypes, netcomponents.NetProjectile)
		case netcomponents.NetMatchData:
			ctypes = append(ctypes, netcomponents.NetMatch)
		}
	}
	return ctypes
}
