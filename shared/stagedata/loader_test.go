package stagedata_test

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/versus/shared/stagedata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0">
 <tileset firstgid="1" name="solid" tilewidth="32" tileheight="32" tilecount="1" columns="1">
  <image source="solid.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="solids" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
1,1,1,1
</data>
 </layer>
`

func spawn(id int, x float64, idx int) string {
	return fmt.Sprintf(`  <object id="%d" x="%g" y="64">
   <properties><property name="spawnIndex" type="int" value="%d"/></properties>
   <point/>
  </object>
`, id, x, idx)
}

func stageFile(spawns ...string) string {
	s := header
	if len(spawns) > 0 {
		s += ` <objectgroup id="2" name="FighterSpawn">` + "\n" + strings.Join(spawns, "") + " </objectgroup>\n"
	}
	return s + "</map>\n"
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"stages/pit.tmx": {Data: []byte(stageFile(spawn(1, 96, 1), spawn(2, 32, 0)))},
	}

	s, err := stagedata.Load(fsys, "stages/pit.tmx")
	require.NoError(t, err)

	assert.Equal(t, "pit", s.Name)
	assert.Equal(t, 128.0, s.Width)
	assert.Equal(t, 96.0, s.Height)
	require.Len(t, s.Solids, 4)
	assert.Equal(t, stagedata.Solid{X: 0, Y: 64, W: 32, H: 32}, s.Solids[0])
	assert.Equal(t, 64.0, s.Floor())

	require.Len(t, s.Spawns, 2)
	assert.Equal(t, 0, s.Spawns[0].Index, "sorted by spawn index")
	assert.Equal(t, 32.0, s.Spawns[0].X)
	assert.Equal(t, s.Spawns[0], s.Spawn(2))
}

func TestLoadNeedsTwoSpawns(t *testing.T) {
	fsys := fstest.MapFS{
		"stages/solo.tmx": {Data: []byte(stageFile(spawn(1, 32, 0)))},
		"stages/none.tmx": {Data: []byte(stageFile())},
	}

	for _, name := range []string{"stages/solo.tmx", "stages/none.tmx"} {
		_, err := stagedata.Load(fsys, name)
		assert.ErrorIs(t, err, stagedata.ErrNoSpawns, name)
	}
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"stages/b.tmx":     {Data: []byte(stageFile(spawn(1, 32, 0), spawn(2, 96, 1)))},
		"stages/a.tmx":     {Data: []byte(stageFile(spawn(1, 32, 0), spawn(2, 96, 1)))},
		"stages/notes.txt": {Data: []byte("ignored")},
	}

	stages, names, err := stagedata.LoadAll(fsys, "stages")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, stages, 2)
}

func TestLoadAllEmpty(t *testing.T) {
	_, _, err := stagedata.LoadAll(fstest.MapFS{}, "stages")
	assert.Error(t, err)
}
