package main

import (
	"fmt"

	"github.com/antoniopaulocuyo/MCASH2/internal/initializer"
	"github.com/antoniopaulocuyo/MCASH2/internal/shell"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	deps, err := initializer.New()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	deps.Logger.Info("starting banking shell", "env", deps.Config.Env)

	return shell.New(deps).Run()
}
