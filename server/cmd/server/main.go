package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/automoto/versus/assets"
	"github.com/automoto/versus/server/core"
	"github.com/automoto/versus/shared/movedb"
	"github.com/automoto/versus/shared/protocol"
)

func main() {
	configPath := flag.String("config", "server.yaml", "Path to the server config file")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("[server] %v", err)
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("[server] failed to register components: %v", err)
	}

	db, err := movedb.LoadEmbedded()
	if err != nil {
		log.Fatalf("[server] load move data: %v", err)
	}
	stages, names := assets.MustLoadStages()
	stage, ok := stages[cfg.Match.Stage]
	if !ok {
		log.Fatalf("[server] unknown stage %q, available: %v", cfg.Match.Stage, names)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := core.NewServer(cfg, db, stage)
	log.Printf("[server] starting %q on port %d (tick rate: %d/s, stage: %s, version: %q)",
		cfg.Server.Name, cfg.Server.Port, cfg.Server.TickRate, stage.Name, cfg.Server.Version)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("[server] %v", err)
	}
	log.Println("[server] shut down")
}
