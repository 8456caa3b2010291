package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFriction(t *testing.T) {
	assert.Equal(t, 3.0, ApplyFriction(4, 1))
	assert.Equal(t, -3.0, ApplyFriction(-4, 1))
	assert.Equal(t, 0.0, ApplyFriction(0.5, 1))
}

func TestApproach(t *testing.T) {
	assert.Equal(t, 2.0, Approach(0, 10, 2))
	assert.Equal(t, 10.0, Approach(9, 10, 2))
	assert.Equal(t, -2.0, Approach(0, -10, 2))
	assert.Equal(t, -10.0, Approach(-9, -10, 2))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-3, 1))
	assert.Equal(t, 1.0, Sign(0.1, -1))
	assert.Equal(t, -1.0, Sign(0, -1))
}

func TestVectorMirrorX(t *testing.T) {
	v := Vector{X: 4, Y: -2}
	assert.Equal(t, Vector{X: -4, Y: -2}, v.MirrorX(-1))
	assert.Equal(t, v, v.MirrorX(1))
}
