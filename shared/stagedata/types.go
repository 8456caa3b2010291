// Package stagedata loads fight stages from Tiled TMX files. It is shared by
// the client, the server and the headless arena, so it has no dependencies
// on ebiten, donburi or resolv.
package stagedata

// Stage is the collision-relevant part of one TMX stage.
type Stage struct {
	Name   string
	Solids []Solid
	Spawns []Spawn
	Width  float64
	Height float64
}

// Solid is one solid tile in world units.
type Solid struct {
	X, Y, W, H float64
}

// Spawn is a fighter start position. X, Y is the feet center.
type Spawn struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn for slot i, wrapping when the stage has fewer.
func (s *Stage) Spawn(i int) Spawn {
	if len(s.Spawns) == 0 {
		return Spawn{X: s.Width / 2, Y: s.Height}
	}
	return s.Spawns[i%len(s.Spawns)]
}

// Floor returns the top of the lowest solid row, or the stage height when
// the stage has no solids.
func (s *Stage) Floor() float64 {
	floor := 0.0
	for _, r := range s.Solids {
		if r.Y > floor {
			floor = r.Y
		}
	}
	if floor == 0 {
		return s.Height
	}
	return floor
}
