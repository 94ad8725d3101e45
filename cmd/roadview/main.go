// Command roadview draws generated road scenarios in the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/roadgen/config"
)

var (
	configFlag = flag.String("config", "", "TOML configuration file")
	seedFlag   = flag.Uint64("seed", 0, "random seed (random when 0)")
	muteFlag   = flag.Bool("mute", false, "disable audio cues")
)

func main() {
	flag.Parse()
	log.SetOutput(io.Discard)

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "roadview: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seedFlag != 0 {
		cfg.Population.Seed = *seedFlag
	}

	s, err := newSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roadview: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	v := NewViewer(screen, s)
	defer v.cleanup()

	if !*muteFlag {
		// Non-fatal, the viewer runs without sound
		if err := v.initAudio(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	v.run()
}
