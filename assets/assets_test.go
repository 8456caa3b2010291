package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStagesLoad(t *testing.T) {
	stages, names := MustLoadStages()
	assert.Equal(t, []string{"dojo", "rooftop"}, names)
	for _, name := range names {
		s := stages[name]
		assert.Len(t, s.Spawns, 2, name)
		assert.Equal(t, 352.0, s.Floor(), name)
	}

	s, err := LoadStage("dojo")
	require.NoError(t, err)
	assert.Less(t, s.Spawn(0).X, s.Spawn(1).X)
}
