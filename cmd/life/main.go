package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"sparse-life/internal/app"
	"sparse-life/internal/core"
	"sparse-life/internal/sims/sparselife"
	"sparse-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	list := flag.Bool("list", false, "print the built-in patterns and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(sparselife.Patterns(), "\n"))
		return
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim := factory(cfg.SimOptions())

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	term.Run(sim, screen, cfg.TPS)
	screen.Fini()

	fmt.Fprintf(os.Stderr, "stopped at generation %d with %d live cells\n", sim.Generation(), sim.Population())
}
