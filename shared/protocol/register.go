package protocol

import (
	"fmt"

	"github.com/automoto/versus/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition     uint = 10
	SyncIDNetVelocity     uint = 11
	SyncIDNetFighterState uint = 12
	SyncIDNetProjectile   uint = 13
	SyncIDNetMatch        uint = 14
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition   uint8 = 10
	InterpIDNetVelocity   uint8 = 11
	InterpIDNetProjectile uint8 = 13
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return fmt.Errorf("register position: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetVelocity,
		netcomponents.NetVelocityData{},
		netcomponents.NetVelocity,
		esync.WithInterpFn(InterpIDNetVelocity, netcomponents.LerpNetVelocity),
	); err != nil {
		return fmt.Errorf("register velocity: %w", err)
	}

	// Fighter state: no interpolation (discrete state changes)
	if err := esync.RegisterComponent(
		SyncIDNetFighterState,
		netcomponents.NetFighterStateData{},
		netcomponents.NetFighterState,
	); err != nil {
		return fmt.Errorf("register fighter state: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetProjectile,
		netcomponents.NetProjectileData{},
		netcomponents.NetProjectile,
		esync.WithInterpFn(InterpIDNetProjectile, netcomponents.LerpNetProjectile),
	); err != nil {
		return fmt.Errorf("register projectile: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetMatch,
		netcomponents.NetMatchData{},
		netcomponents.NetMatch,
	); err != nil {
		return fmt.Errorf("register match: %w", err)
	}

	return nil
}
