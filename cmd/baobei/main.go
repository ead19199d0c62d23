package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/baobei/audio"
	"github.com/lixenwraith/baobei/config"
	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/input"
	"github.com/lixenwraith/baobei/logger"
	"github.com/lixenwraith/baobei/network"
	"github.com/lixenwraith/baobei/render"
	"github.com/lixenwraith/baobei/room"
	"github.com/lixenwraith/baobei/system"
	"github.com/lixenwraith/baobei/terminal"
	"github.com/lixenwraith/baobei/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to TOML configuration file")
	debugFlag  = flag.Bool("debug", false, "Write log file under the configured log dir")
	listenFlag = flag.String("listen", "", "Snapshot feed address, e.g. :8080 (overrides config)")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	colorFlag  = flag.Bool("color", true, "Draw with RGB colors")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective configuration and exit")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "baobei: %v\n", err)
		os.Exit(2)
	}
	if *dumpFlag {
		if err := config.Write(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "baobei: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "baobei: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers flags over file and environment
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *listenFlag != "" {
		cfg.Network.Listen = *listenFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	logr, logCloser, err := logger.Init(cfg.Log)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	session := uuid.New()
	log := logr.WithField("session", session.String())
	log.WithFields(logrus.Fields{
		"room":   fmt.Sprintf("%.0fx%.0f", cfg.Gameplay.RoomWidth, cfg.Gameplay.RoomHeight),
		"listen": cfg.Network.Listen,
	}).Info("session starting")

	keymap, err := terminal.ParseKeyMap(cfg.Keymap)
	if err != nil {
		return err
	}
	policy, err := input.ParseStickPolicy(cfg.Input.StickPolicy)
	if err != nil {
		return err
	}

	// World
	world := engine.NewWorld()
	res := world.Resource
	res.Config = &cfg.Gameplay
	res.Log = log
	seed := cfg.Gameplay.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	res.Rand = vmath.NewFastRand(seed)

	if _, err := room.Spawn(world); err != nil {
		return err
	}

	// Audio failure leaves the game silent
	sound := audio.NewService(audio.FromConfig(cfg.Audio), log)
	if err := sound.Start(); err != nil {
		log.WithError(err).Warn("audio unavailable")
	}
	defer sound.Stop()
	res.Audio = sound

	sched := engine.NewScheduler(world)
	inputSys, err := system.RegisterAll(sched, world, input.NewNormalizer(policy, cfg.Input.DeadZone))
	if err != nil {
		return err
	}

	// Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableFocus()
	screen.HideCursor()
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	tracker := terminal.NewKeyTracker()
	pads := network.NewRemotePads()
	hub := network.NewHub(res.Status, log)
	feed := network.NewServer(session, [2]float64{cfg.Gameplay.RoomWidth, cfg.Gameplay.RoomHeight}, hub, pads, res.Status, log)
	renderer := render.NewRenderer(screen, *colorFlag)

	clock := engine.NewClockScheduler(world, sched, deviceSource{keys: tracker, pads: pads}, inputSys, cfg.Gameplay.TickInterval.Duration)
	clock.AddObserver(renderer)
	clock.AddObserver(hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(core.Guard(func() error { return clock.Run(gctx) }))
	g.Go(core.Guard(func() error { return renderer.Run(gctx) }))
	g.Go(core.Guard(func() error { return feed.Run(gctx, cfg.Network.Listen) }))
	g.Go(core.Guard(func() error {
		return terminal.Pump(gctx, screen, tracker, keymap, controls{world: world, sched: sched, audio: sound}, log)
	}))

	err = g.Wait()
	log.WithFields(logrus.Fields(res.Status.Export())).Info("session ended")
	if errors.Is(err, terminal.ErrQuit) {
		return nil
	}
	return err
}

// deviceSource merges terminal keys and remote pads into one tick snapshot
type deviceSource struct {
	keys *terminal.KeyTracker
	pads *network.RemotePads
}

func (d deviceSource) Snapshot() input.Snapshot {
	snap := d.keys.Snapshot()
	d.pads.Fill(&snap)
	return snap
}

// controls bridges menu keys to the scheduler and audio
type controls struct {
	world *engine.World
	sched *engine.Scheduler
	audio engine.AudioPlayer
}

func (c controls) Mode() core.Mode {
	return c.world.Resource.Game.Mode()
}

func (c controls) StartGame() {
	c.sched.StartGame()
}

func (c controls) ToggleMute() bool {
	return c.audio.ToggleMute()
}
