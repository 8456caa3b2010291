package components

import (
	"github.com/automoto/versus/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's box in the resolv space.
type ObjectData struct {
	*resolv.Object
}

// Feet returns the bottom center of the box.
func (o ObjectData) Feet() gamemath.Vector {
	return gamemath.Vector{X: o.X + o.W/2, Y: o.Y + o.H}
}

// Center returns the middle of the box.
func (o ObjectData) Center() gamemath.Vector {
	return gamemath.Vector{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// Overlaps is an exact AABB test. resolv's Check only narrows by cell.
func (o ObjectData) Overlaps(other *resolv.Object) bool {
	return o.X < other.X+other.W && o.X+o.W > other.X &&
		o.Y < other.Y+other.H && o.Y+o.H > other.Y
}

var Object = donburi.NewComponentType[ObjectData]()
