package scenes

import (
	"fmt"
	"log"

	"github.com/automoto/versus/assets"
	cfg "github.com/automoto/versus/config"
	"github.com/automoto/versus/shared/ai"
	"github.com/automoto/versus/shared/arena"
	"github.com/automoto/versus/shared/movedb"
	"github.com/automoto/versus/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const layerDefault ecs.LayerID = 0

// VersusSetup picks the fighters and stage of a local match.
type VersusSetup struct {
	Character  string
	Opponent   string
	Stage      string
	Difficulty ai.Difficulty
}

// VersusScene is a local match: the keyboard drives slot 0 and a bot
// drives slot 1.
type VersusScene struct {
	ecs          *ecs.ECS
	arena        *arena.Arena
	sceneChanger SceneChanger
}

func NewVersusScene(sc SceneChanger, setup VersusSetup) (*VersusScene, error) {
	db, err := movedb.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load moves: %w", err)
	}
	stage, err := assets.LoadStage(setup.Stage)
	if err != nil {
		return nil, fmt.Errorf("load stage %s: %w", setup.Stage, err)
	}

	acfg := cfg.Combat
	acfg.Fighter.Debug = cfg.Debug.LogCombat
	acfg.Hitbox.Debug = cfg.Debug.LogCombat

	var playerID string
	a := arena.New(acfg, stage, db, systems.NewResultRecorder(setup.Character, func() string { return playerID }))

	playerID, err = a.AddFighter(arena.FighterSpec{Character: setup.Character})
	if err != nil {
		return nil, fmt.Errorf("add %s: %w", setup.Character, err)
	}
	bot := ai.Preset(setup.Difficulty)
	if _, err := a.AddFighter(arena.FighterSpec{Character: setup.Opponent, Bot: &bot, Seed: cfg.Bot.Seed}); err != nil {
		return nil, fmt.Errorf("add %s: %w", setup.Opponent, err)
	}
	if err := a.Start(); err != nil {
		return nil, fmt.Errorf("start match: %w", err)
	}
	systems.SelectCharacter(setup.Character)
	log.Printf("[versus] %s vs %s (%s) on %s", setup.Character, setup.Opponent, setup.Difficulty, stage.Name)

	vs := &VersusScene{
		ecs:          ecs.NewECS(a.World()),
		arena:        a,
		sceneChanger: sc,
	}
	vs.ecs.AddSystem(systems.NewLocalInputSystem(a, 0))
	vs.ecs.AddSystem(systems.NewArenaSystem(a))
	vs.ecs.AddRenderer(layerDefault, systems.DrawStage)
	vs.ecs.AddRenderer(layerDefault, systems.DrawProjectiles)
	vs.ecs.AddRenderer(layerDefault, systems.DrawFighters)
	vs.ecs.AddRenderer(layerDefault, systems.DrawHUD)
	return vs, nil
}

func (vs *VersusScene) Update() {
	vs.ecs.Update()

	if vs.arena.Finished() && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := vs.arena.Start(); err != nil {
			log.Printf("[versus] rematch: %v", err)
		}
	}
}

func (vs *VersusScene) Draw(screen *ebiten.Image) {
	vs.ecs.Draw(screen)
}
