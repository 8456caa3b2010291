package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetInterpFirstTargetSnaps(t *testing.T) {
	var n NetInterpData
	n.Retarget(100, 50)

	x, y := n.Position()
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)
}

func TestNetInterpMovesTowardTarget(t *testing.T) {
	var n NetInterpData
	n.Retarget(0, 0)
	n.Retarget(100, 0)

	n.Advance(0.5)
	x, _ := n.Position()
	assert.InDelta(t, 50, x, 1e-9)

	n.Advance(2)
	x, _ = n.Position()
	assert.InDelta(t, 100, x, 1e-9, "T clamps at the target")
}

func TestNetInterpRetargetsFromDrawnPosition(t *testing.T) {
	var n NetInterpData
	n.Retarget(0, 0)
	n.Retarget(100, 0)
	n.Advance(0.25)

	n.Retarget(200, 0)

	assert.InDelta(t, 25, n.PrevX, 1e-9)
	x, _ := n.Position()
	assert.InDelta(t, 25, x, 1e-9, "no jump when a snapshot arrives mid-segment")
}
