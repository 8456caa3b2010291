package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/versus/config"
	"github.com/automoto/versus/network"
	"github.com/automoto/versus/scenes"
	"github.com/automoto/versus/shared/ai"
	"github.com/automoto/versus/shared/messages"
	"github.com/automoto/versus/shared/protocol"
	"github.com/automoto/versus/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	connect := flag.String("connect", "", "server address (host:port); plays locally when empty")
	character := flag.String("character", "", "your fighter; defaults to the saved profile")
	opponent := flag.String("opponent", config.Bot.Character, "bot fighter for local matches")
	stage := flag.String("stage", config.Match.Stage, "stage for local matches")
	difficulty := flag.String("difficulty", config.Bot.Difficulty.String(), "bot difficulty: easy, normal or hard")
	flag.Parse()

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	d, err := ai.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatal(err)
	}
	setup := scenes.VersusSetup{
		Character:  *character,
		Opponent:   *opponent,
		Stage:      *stage,
		Difficulty: d,
	}
	if setup.Character == "" {
		setup.Character = systems.LoadProfile().Character(config.Match.DefaultCharacter)
	}

	g := &Game{}
	if *connect != "" {
		client := network.NewClient()
		client.Connect(*connect, messages.JoinRequest{
			Version:    config.Network.Version,
			PlayerName: config.Network.PlayerName,
			Character:  setup.Character,
		})
		g.scene = scenes.NewOnlineScene(g, client, setup)
	} else {
		vs, err := scenes.NewVersusScene(g, setup)
		if err != nil {
			log.Fatal(err)
		}
		g.scene = vs
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
