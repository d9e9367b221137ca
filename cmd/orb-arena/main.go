package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orb-arena/audio"
	"github.com/lixenwraith/orb-arena/config"
	"github.com/lixenwraith/orb-arena/engine"
	"github.com/lixenwraith/orb-arena/event"
	"github.com/lixenwraith/orb-arena/parameter"
	"github.com/lixenwraith/orb-arena/render"
	"github.com/lixenwraith/orb-arena/spawner"
	"github.com/lixenwraith/orb-arena/status"
)

var (
	configFlag   = flag.String("config", "orb-arena.toml", "Path to the TOML configuration file")
	debugFlag    = flag.Bool("debug", false, "Write debug logs to logs/")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
	bodiesFlag   = flag.Int("bodies", -1, "Initial body count, overriding the configuration")
	parallelFlag = flag.Bool("parallel", false, "Force parallel stepping regardless of configuration")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
		cfg = config.Default()
	}
	if *bodiesFlag >= 0 {
		cfg.Bodies.Initial = *bodiesFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal first so the stack trace
	// lands on a usable stderr. Registered before the Fini defer, so
	// Fini has already run by the time this prints.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nORB-ARENA CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(render.StyleDefault)
	screen.HideCursor()

	st := status.NewRegistry()
	events := event.NewQueue()

	eng := engine.New(engine.Options{
		ArenaWidth:       cfg.Arena.Width,
		ArenaHeight:      cfg.Arena.Height,
		ZoneCapacity:     cfg.Zone.Capacity,
		ParallelStepping: cfg.Engine.Parallel || *parallelFlag,
		Workers:          cfg.Engine.Workers,
		Events:           events,
		Status:           st,
	})
	defer eng.Close()

	if cfg.Zone.Explicit {
		eng.SetZoneRect(cfg.Zone.X, cfg.Zone.Y, cfg.Zone.Width, cfg.Zone.Height)
	}

	sound := audio.NewSoundManager(cfg.Audio.MasterVolume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio: %v, continuing without sound", err)
		} else {
			defer sound.Cleanup()
		}
	}
	sound.SetMuted(*muteFlag)

	var spawn *spawner.Spawner
	if cfg.Spawner.Enabled {
		spawn = spawner.New(eng, cfg.Spawner, 0, st)
		spawn.Start()
		defer spawn.Stop()
	}

	watcher, err := config.NewWatcher(*configFlag)
	if err != nil {
		log.Printf("config watch: %v", err)
	} else {
		defer watcher.Close()
	}

	helpOverlay := render.NewHelpOverlay()
	statsOverlay := render.NewStatsOverlay(st)

	orchestrator := render.NewOrchestrator()
	orchestrator.Register(render.NewArenaRenderer(), render.PriorityArena)
	orchestrator.Register(render.NewZoneRenderer(), render.PriorityZone)
	orchestrator.Register(render.NewBodyRenderer(), render.PriorityBodies)
	orchestrator.Register(render.NewStatusBarRenderer(), render.PriorityStatusBar)
	orchestrator.Register(statsOverlay, render.PriorityOverlay)
	orchestrator.Register(helpOverlay, render.PriorityOverlay)

	input := NewInputHandler(eng, sound, helpOverlay, statsOverlay)

	eng.AddRandomBodies(cfg.Bodies.Initial)

	// Input polling in its own goroutine; PollEvent returns nil after
	// Fini, which ends it on shutdown.
	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\nEVENT POLLER CRASHED: %v\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var watchEvents <-chan struct{}
	var watchErrors <-chan error
	if watcher != nil {
		watchEvents = watcher.Events
		watchErrors = watcher.Errors
	}

	frameTicker := time.NewTicker(parameter.FrameInterval)
	defer frameTicker.Stop()

	log.Printf("started: arena %.0fx%.0f, %d initial bodies", cfg.Arena.Width, cfg.Arena.Height, cfg.Bodies.Initial)

	for {
		select {
		case ev := <-eventChan:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if !input.HandleKey(tev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-watchEvents:
			next, err := config.Load(*configFlag)
			if err != nil {
				log.Printf("config reload: %v", err)
				continue
			}
			applyConfig(eng, sound, next)
			log.Printf("config reloaded from %s", *configFlag)

		case err := <-watchErrors:
			log.Printf("config watch: %v", err)

		case <-frameTicker.C:
			playEvents(events.Consume(), sound)

			w, h := screen.Size()
			ctx := render.NewContext(eng.Snapshot(), w, h)
			ctx.Muted = sound.Muted()
			ctx.SpawnerOn = spawn != nil && spawn.Running()
			orchestrator.RenderFrame(ctx, screen)
		}
	}
}

// applyConfig applies the settings that can change while running.
// Spawner cadence and the stepping strategy are fixed at startup.
func applyConfig(eng *engine.Engine, sound *audio.SoundManager, cfg *config.Config) {
	eng.SetArenaSize(cfg.Arena.Width, cfg.Arena.Height)

	if cfg.Zone.Explicit {
		eng.SetZoneRect(cfg.Zone.X, cfg.Zone.Y, cfg.Zone.Width, cfg.Zone.Height)
	} else {
		eng.ClearZoneRect()
	}
	eng.SetZoneCapacity(cfg.Zone.Capacity)

	sound.SetMasterVolume(cfg.Audio.MasterVolume)
}

// playEvents maps the tick loop's events to sound effects.
func playEvents(evs []event.Event, sound *audio.SoundManager) {
	for _, ev := range evs {
		switch ev.Type {
		case event.TypeCollision:
			sound.PlayImpact()
		case event.TypeZoneBounced:
			sound.PlayZoneBounce()
		case event.TypeZoneAdmitted:
			sound.PlayZoneAdmit()
		case event.TypeBodyRemoved:
			sound.PlayRemoval()
		case event.TypePaused:
			sound.PlayPauseToggle(true)
		case event.TypeResumed:
			sound.PlayPauseToggle(false)
		}
	}
}
