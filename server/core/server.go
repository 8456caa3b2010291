package core

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/versus/shared/arena"
	"github.com/automoto/versus/shared/events"
	"github.com/automoto/versus/shared/messages"
	"github.com/automoto/versus/shared/movedb"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/automoto/versus/shared/stagedata"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	"golang.org/x/sync/errgroup"
)

// Peer is a connected client. *router.NetworkClient satisfies it.
type Peer interface {
	Id() string
	SendMessage(msg any) error
}

// Server runs one authoritative match and mirrors it into a necs-synced
// world for clients.
type Server struct {
	cfg      Config
	db       *movedb.Database
	stage    *stagedata.Stage
	arena    *arena.Arena
	recorder *events.Recorder

	// world holds only synced components; the arena keeps its own.
	world       donburi.World
	fighters    [2]donburi.Entity
	match       donburi.Entity
	projectiles map[donburi.Entity]donburi.Entity

	loop      *GameLoop
	transport *transports.WsServerTransport

	// Router callbacks run on necs goroutines. They only queue commands,
	// which the loop applies before each tick.
	commands chan func()

	seats    [2]Peer
	lastSeq  [2]uint32
	finished float64

	mu      sync.RWMutex
	clients map[Peer]int // slot
}

// NewServer creates a server for one stage. Components must already be
// registered with protocol.RegisterComponents.
func NewServer(cfg Config, db *movedb.Database, stage *stagedata.Stage) *Server {
	world := donburi.NewWorld()

	acfg := arena.DefaultConfig()
	acfg.Match.RoundsToWin = cfg.Match.RoundsToWin
	acfg.Match.RoundTime = cfg.Match.RoundTime
	acfg.Fighter.Debug = cfg.Server.Debug
	acfg.Hitbox.Debug = cfg.Server.Debug

	s := &Server{
		cfg:         cfg,
		db:          db,
		stage:       stage,
		recorder:    &events.Recorder{},
		world:       world,
		projectiles: make(map[donburi.Entity]donburi.Entity),
		commands:    make(chan func(), 256),
		clients:     make(map[Peer]int),
	}
	s.arena = arena.New(acfg, stage, db, s.recorder)
	s.loop = NewGameLoop(s, cfg.Server.TickRate)

	srvsync.UseEsync(world)
	s.match = s.newMatchEntity()

	return s
}

// Run serves clients until ctx is done or the transport fails.
func (s *Server) Run(ctx context.Context) error {
	s.setupRouterCallbacks()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.loop.Run(ctx)
	})
	g.Go(func() error {
		s.transport = transports.NewWsServerTransport(s.cfg.Server.Port, "", nil)
		errCh := make(chan error, 1)
		go func() { errCh <- s.transport.Start() }()
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("transport: %w", err)
			}
			return nil
		}
	})
	return g.Wait()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client %s connected", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.enqueue(func() { s.leave(client, err) })
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.enqueue(func() { s.join(client, req) })
	})

	router.On(func(client *router.NetworkClient, input messages.FighterInput) {
		s.enqueue(func() { s.applyInput(client, input) })
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client %s error: %v", client.Id(), err)
	})
}

func (s *Server) enqueue(cmd func()) {
	select {
	case s.commands <- cmd:
	default:
		log.Printf("[server] command queue full, dropping command")
	}
}

// ProcessCommands applies every queued client command.
func (s *Server) ProcessCommands() {
	for {
		select {
		case cmd := <-s.commands:
			cmd()
		default:
			return
		}
	}
}

func (s *Server) join(p Peer, req messages.JoinRequest) {
	if v := s.cfg.Server.Version; v != "" && req.Version != v {
		s.reject(p, fmt.Sprintf("version mismatch: server wants %s", v))
		return
	}
	if _, ok := s.slotOf(p); ok {
		return
	}
	slot := s.freeSlot()
	if slot < 0 {
		s.reject(p, "match is full")
		return
	}

	if slot >= s.arena.Fighters() {
		character := req.Character
		if character == "" {
			character = s.cfg.Match.DefaultCharacter
		}
		if _, err := s.addFighter(arena.FighterSpec{Character: character}); err != nil {
			s.reject(p, err.Error())
			return
		}
	} else {
		if err := s.arena.SetBot(slot, nil, 0); err != nil {
			s.reject(p, err.Error())
			return
		}
		if m, _ := s.arena.Fighter(slot); req.Character != "" && req.Character != m.Character() {
			log.Printf("[server] %s asked for %s, taking over %s in slot %d", p.Id(), req.Character, m.Character(), slot)
		}
	}

	s.seats[slot] = p
	s.lastSeq[slot] = 0
	s.mu.Lock()
	s.clients[p] = slot
	s.mu.Unlock()

	if s.cfg.Bot.Fill && s.arena.Fighters() == 1 {
		preset := s.cfg.BotPreset()
		if _, err := s.addFighter(arena.FighterSpec{Character: s.cfg.Bot.Character, Bot: &preset, Seed: s.cfg.Bot.Seed}); err != nil {
			log.Printf("[server] bot fill failed: %v", err)
		}
	}
	if s.arena.Fighters() == 2 && s.arena.Match().State == netconfig.MatchStateWaiting {
		if err := s.arena.Start(); err != nil {
			log.Printf("[server] start match: %v", err)
		}
	}

	m, _ := s.arena.Fighter(slot)
	accepted := messages.JoinAccepted{
		Slot:       slot,
		FighterID:  m.ID(),
		ServerName: s.cfg.Server.Name,
		TickRate:   s.cfg.Server.TickRate,
		Stage:      s.stage.Name,
		Character:  m.Character(),
	}
	if nid := s.networkID(s.fighters[slot]); nid != nil {
		accepted.NetworkID = *nid
	}
	if err := p.SendMessage(accepted); err != nil {
		log.Printf("[server] send join accepted to %s: %v", p.Id(), err)
	}
	log.Printf("[server] %s (%s) took slot %d as %s", p.Id(), req.PlayerName, slot, m.Character())
}

func (s *Server) addFighter(spec arena.FighterSpec) (string, error) {
	slot := s.arena.Fighters()
	id, err := s.arena.AddFighter(spec)
	if err != nil {
		return "", err
	}
	s.fighters[slot] = s.newFighterEntity()
	return id, nil
}

func (s *Server) reject(p Peer, reason string) {
	log.Printf("[server] rejected %s: %s", p.Id(), reason)
	if err := p.SendMessage(messages.JoinRejected{Reason: reason}); err != nil {
		log.Printf("[server] send join rejected to %s: %v", p.Id(), err)
	}
}

func (s *Server) leave(p Peer, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", p.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", p.Id())
	}
	slot, ok := s.slotOf(p)
	if !ok {
		return
	}
	s.mu.Lock()
	delete(s.clients, p)
	s.mu.Unlock()
	s.seats[slot] = nil

	if s.cfg.Bot.Fill {
		preset := s.cfg.BotPreset()
		if err := s.arena.SetBot(slot, &preset, s.cfg.Bot.Seed+int64(slot)); err != nil {
			log.Printf("[server] bot takeover of slot %d: %v", slot, err)
		}
		return
	}
	if err := s.arena.SetInput(slot, 0); err != nil {
		log.Printf("[server] clear input of slot %d: %v", slot, err)
	}
}

func (s *Server) applyInput(p Peer, in messages.FighterInput) {
	slot, ok := s.slotOf(p)
	if !ok {
		return
	}
	if in.Sequence != 0 && in.Sequence <= s.lastSeq[slot] {
		return
	}
	s.lastSeq[slot] = in.Sequence
	if err := s.arena.SetInput(slot, in.Buttons); err != nil {
		log.Printf("[server] input for slot %d: %v", slot, err)
	}
}

func (s *Server) slotOf(p Peer) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.clients[p]
	return slot, ok
}

// freeSlot returns the lowest slot no client holds, or -1.
func (s *Server) freeSlot() int {
	for i, p := range s.seats {
		if p == nil {
			return i
		}
	}
	return -1
}

// Step runs one server tick: queued commands, the arena at 60 Hz
// sub-steps, match restart, then the synced world and event broadcast.
func (s *Server) Step() {
	s.ProcessCommands()

	stepsPerTick := 60 / s.cfg.Server.TickRate
	if stepsPerTick < 1 {
		stepsPerTick = 1
	}
	dt := 1 / float64(s.cfg.Server.TickRate*stepsPerTick)
	for range stepsPerTick {
		s.arena.Tick(dt)
	}

	if s.arena.Finished() {
		s.finished += 1 / float64(s.cfg.Server.TickRate)
		if s.finished >= s.cfg.Match.RestartDelay {
			s.finished = 0
			if err := s.arena.Start(); err != nil {
				log.Printf("[server] restart match: %v", err)
			}
		}
	}

	s.syncWorld()
	s.broadcastEvents()
}

func (s *Server) broadcastEvents() {
	for _, e := range s.recorder.Drain() {
		msg, ok := messages.FromEvent(e)
		if !ok {
			continue
		}
		for _, p := range s.seats {
			if p == nil {
				continue
			}
			if err := p.SendMessage(msg); err != nil {
				log.Printf("[server] send %T to %s: %v", msg, p.Id(), err)
			}
		}
	}
}

// Arena returns the simulated match.
func (s *Server) Arena() *arena.Arena {
	return s.arena
}

// World returns the synced ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of connected players
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
