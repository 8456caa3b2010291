package core

import (
	"context"
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
	}
}

// Run ticks until ctx is done.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[server] game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("[server] game loop stopped")
			return nil
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) tick() {
	g.server.Step()

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[server] sync error: %v", err)
	}
}
