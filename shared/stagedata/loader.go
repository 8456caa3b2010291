package stagedata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrNoSpawns is returned for a stage without two fighter spawns.
var ErrNoSpawns = errors.New("stage needs two fighter spawns")

const (
	solidLayer = "solids"
	spawnGroup = "FighterSpawn"
)

// Load parses a TMX file into a Stage. It takes an fs.FS so callers can pass
// embed.FS (client) or os.DirFS (server).
func Load(fsys fs.FS, tmxPath string) (*Stage, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stage := &Stage{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}

	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)
	for _, layer := range m.Layers {
		if layer.Name != solidLayer {
			continue
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if layer.Tiles[y*m.Width+x].IsNil() {
					continue
				}
				stage.Solids = append(stage.Solids, Solid{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range m.ObjectGroups {
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			stage.Spawns = append(stage.Spawns, Spawn{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}
	if len(stage.Spawns) < 2 {
		return nil, fmt.Errorf("%s: found %d: %w", tmxPath, len(stage.Spawns), ErrNoSpawns)
	}

	sort.Slice(stage.Spawns, func(i, j int) bool {
		a, b := stage.Spawns[i], stage.Spawns[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return stage, nil
}

// LoadAll discovers every .tmx file in dir and returns the stages keyed by
// file stem, plus the sorted stems.
func LoadAll(fsys fs.FS, dir string) (map[string]*Stage, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	stages := make(map[string]*Stage, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		s, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		stages[s.Name] = s
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return stages, names, nil
}
