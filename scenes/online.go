package scenes

import (
	"image/color"
	"log"

	"github.com/automoto/versus/assets"
	cfg "github.com/automoto/versus/config"
	"github.com/automoto/versus/network"
	"github.com/automoto/versus/shared/events"
	"github.com/automoto/versus/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnlineScene plays on a dedicated server. The server runs the arena; this
// scene only mirrors synced state and sends input.
type OnlineScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	mirror       *network.Mirror
	results      events.Sink
	fallback     VersusSetup
}

// NewOnlineScene takes a client that is already connecting. fallback is the
// local match to switch to if the connection is lost.
func NewOnlineScene(sc SceneChanger, client *network.Client, fallback VersusSetup) *OnlineScene {
	return &OnlineScene{
		sceneChanger: sc,
		netClient:    client,
		fallback:     fallback,
	}
}

func (s *OnlineScene) Update() {
	switch s.netClient.State() {
	case network.StateDisconnected, network.StateError:
		log.Printf("[online] connection lost (%v), playing locally", s.netClient.LastError())
		s.netClient.Disconnect()
		s.goLocal()
		return
	case network.StateJoinedGame:
		if s.ecs == nil {
			s.configure()
		}
		if s.ecs == nil {
			return
		}
	default:
		return
	}

	if snap := s.netClient.LatestSnapshot(); snap != nil {
		s.mirror.Apply(*snap)
	}
	s.drainMessages()
	s.ecs.Update()
}

func (s *OnlineScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		screen.Fill(color.Black)
		ebitenutil.DebugPrint(screen, "Connecting...")
		return
	}
	s.ecs.Draw(screen)
}

func (s *OnlineScene) configure() {
	joined := s.netClient.Joined()
	stage, err := assets.LoadStage(joined.Stage)
	if err != nil {
		log.Printf("[online] server stage %q: %v, falling back to %s", joined.Stage, err, cfg.Match.Stage)
		if stage, err = assets.LoadStage(cfg.Match.Stage); err != nil {
			log.Printf("[online] load stage: %v", err)
			s.netClient.Disconnect()
			return
		}
	}

	world := donburi.NewWorld()
	s.ecs = ecs.NewECS(world)
	s.mirror = network.NewMirror(world, joined.Slot)
	character := joined.Character
	if character == "" {
		character = s.fallback.Character
	}
	s.results = systems.NewResultRecorder(character, func() string { return joined.FighterID })

	sendFn := func(msg any) error {
		if s.netClient.State() != network.StateJoinedGame {
			return nil
		}
		return s.netClient.SendMessage(msg)
	}
	tickRate := func() int { return joined.TickRate }

	s.ecs.AddSystem(systems.NewNetworkInputSystem(sendFn))
	s.ecs.AddSystem(systems.NewNetInterpSystem(tickRate))
	s.ecs.AddRenderer(layerDefault, systems.NewNetStageRenderer(stage))
	s.ecs.AddRenderer(layerDefault, systems.DrawNetworkedProjectiles)
	s.ecs.AddRenderer(layerDefault, systems.DrawNetworkedFighters)
	s.ecs.AddRenderer(layerDefault, systems.DrawNetworkHUD)
}

func (s *OnlineScene) drainMessages() {
	for _, hit := range s.netClient.DrainHits() {
		if cfg.Debug.LogCombat {
			log.Printf("[online] hit %s -> %s for %.0f (combo %d)", hit.Attacker, hit.Defender, hit.Damage, hit.Combo)
		}
	}
	for _, block := range s.netClient.DrainBlocks() {
		if cfg.Debug.LogCombat {
			log.Printf("[online] block %s <- %s chip %.0f", block.Defender, block.Attacker, block.Chip)
		}
	}
	for _, end := range s.netClient.DrainRoundEnds() {
		log.Printf("[online] round %d over by %s", end.Round, end.Reason)
	}
	for _, end := range s.netClient.DrainMatchEnds() {
		s.results.Emit(events.MatchEndEvent{MatchID: end.MatchID, Winner: end.Winner})
	}
}

func (s *OnlineScene) goLocal() {
	vs, err := NewVersusScene(s.sceneChanger, s.fallback)
	if err != nil {
		log.Fatalf("[online] local match: %v", err)
	}
	s.sceneChanger.ChangeScene(vs)
}
