// Command aabbsim runs a headless platformer simulation on a tile level and
// logs what the player bumps into.
package main

import (
	"context"
	_ "embed"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/setanarut/aabb"
	"github.com/setanarut/aabb/tilemap"
	"github.com/setanarut/vec"
)

//go:embed demo.yaml
var demoLevel []byte

func main() {
	configFile := flag.String("config", "", "space config file (yaml)")
	levelFile := flag.String("level", "", "level file (yaml); the built-in demo level when empty")
	steps := flag.Int("steps", 600, "number of steps to run, 0 runs until interrupted")
	dt := flag.Float64("dt", 1.0/60, "step duration in seconds")
	gravity := flag.Float64("gravity", -30, "vertical acceleration")
	speed := flag.Float64("speed", 4, "horizontal walking speed")
	watch := flag.Bool("watch", false, "reload the level when its file changes; steps run in real time")
	logLevel := flag.String("log-level", "", "debug, info, warn or error; overrides the config")
	flag.Parse()

	cfg := aabb.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = aabb.LoadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	logger := aabb.NewTextLogger(aabb.ParseLevel(cfg.LogLevel))
	cfg.Logger = logger

	level, err := loadLevel(*levelFile)
	if err != nil {
		log.Fatal(err)
	}

	game := newSim(cfg, logger, *speed)
	if err := game.load(level); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var reload <-chan string
	if *watch && *levelFile != "" {
		w, err := tilemap.NewWatcher(filepath.Dir(*levelFile))
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		reload = w.Events
		go func() {
			for err := range w.Errors {
				logger.Error("watch", "error", err)
			}
		}()
	}

	var tick <-chan time.Time
	if *watch {
		ticker := time.NewTicker(time.Duration(*dt * float64(time.Second)))
		defer ticker.Stop()
		tick = ticker.C
	}

	g := vec.Vec2{Y: *gravity}
loop:
	for i := 0; *steps == 0 || i < *steps; {
		if tick != nil {
			select {
			case <-ctx.Done():
				break loop
			case name := <-reload:
				if abs(name) == abs(*levelFile) {
					game.reload(*levelFile)
				}
				continue
			case <-tick:
			}
		} else if ctx.Err() != nil {
			break loop
		}
		game.step(i, *dt, g)
		i++
	}

	st := game.space.Stats()
	logger.Info("done",
		"position", game.player.Position(),
		"colliders", st.Colliders,
		"contacts", st.Contacts,
		"active_buckets", st.ActiveBuckets,
	)
}

func loadLevel(filename string) (*tilemap.Level, error) {
	if filename == "" {
		return tilemap.Parse(demoLevel)
	}
	return tilemap.Load(filename)
}

func abs(path string) string {
	p, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return p
}
