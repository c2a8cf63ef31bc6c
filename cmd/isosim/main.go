// Command isosim runs a level headless with a scripted player and logs what
// the agents do.
package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/automoto/isoward/assets"
	"github.com/automoto/isoward/components"
	"github.com/automoto/isoward/config"
	"github.com/automoto/isoward/scenes"
	"github.com/automoto/isoward/systems"
	"github.com/automoto/isoward/tags"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/sync/errgroup"
)

type options struct {
	Ticks  int
	TPS    int
	Level  int
	Agents string
	Watch  bool
	LogAI  bool
	Script string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts, err := loadOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("isosim: %v", err)
	}
	if err := run(ctx, opts); err != nil {
		log.Fatalf("isosim: %v", err)
	}
}

// loadOptions reads flags, then lets ISOWARD_* environment variables fill
// anything not given on the command line.
func loadOptions(args []string) (options, error) {
	fs := pflag.NewFlagSet("isosim", pflag.ContinueOnError)
	fs.Int("ticks", 3600, "stop after this many ticks (0 runs until the player dies)")
	fs.Int("tps", 0, "ticks per second, 0 runs as fast as possible")
	fs.Int("level", 0, "level index")
	fs.String("agents", "", "agent spec file, defaults to the embedded one")
	fs.Bool("watch", false, "reload the agent spec file when it changes")
	fs.Bool("log-ai", true, "log agent state transitions")
	fs.String("script", "wander", "player script: wander or idle")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("ISOWARD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return options{}, fmt.Errorf("bind flags: %w", err)
	}

	opts := options{
		Ticks:  v.GetInt("ticks"),
		TPS:    v.GetInt("tps"),
		Level:  v.GetInt("level"),
		Agents: v.GetString("agents"),
		Watch:  v.GetBool("watch"),
		LogAI:  v.GetBool("log-ai"),
		Script: v.GetString("script"),
	}
	if opts.Watch && opts.Agents == "" {
		return options{}, fmt.Errorf("--watch needs --agents")
	}
	if _, ok := scripts[opts.Script]; !ok {
		return options{}, fmt.Errorf("unknown script %q", opts.Script)
	}
	return opts, nil
}

func loadSpecs(opts options) error {
	if opts.Agents == "" {
		return config.LoadAgentSpecs(assets.FS(), assets.AgentSpecsPath)
	}
	dir, name := filepath.Split(opts.Agents)
	if dir == "" {
		dir = "."
	}
	return config.LoadAgentSpecs(os.DirFS(dir), name)
}

func run(ctx context.Context, opts options) error {
	config.Debug.LogAI = opts.LogAI
	if err := loadSpecs(opts); err != nil {
		return err
	}

	levels, err := assets.NewLevelLoader().LoadLevels("levels")
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	simCtx, cancel := context.WithCancel(gctx)

	reloads := make(chan struct{}, 1)
	if opts.Watch {
		w, err := assets.NewWatcher(filepath.Dir(opts.Agents))
		if err != nil {
			cancel()
			return fmt.Errorf("watch agent specs: %w", err)
		}
		g.Go(func() error {
			return w.Run(simCtx)
		})
		g.Go(func() error {
			return forwardReloads(simCtx, w, opts.Agents, reloads)
		})
	}

	g.Go(func() error {
		defer cancel()
		return simulate(simCtx, opts, levels, reloads)
	})
	return g.Wait()
}

// forwardReloads turns watcher events for the spec file into reload signals.
func forwardReloads(ctx context.Context, w *assets.Watcher, specPath string, reloads chan<- struct{}) error {
	want, err := filepath.Abs(specPath)
	if err != nil {
		return err
	}
	events, errs := w.Events, w.Errors
	for {
		select {
		case name, ok := <-events:
			if !ok {
				return nil
			}
			if got, err := filepath.Abs(name); err != nil || got != want {
				continue
			}
			select {
			case reloads <- struct{}{}:
			default:
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Printf("Warning: spec watcher: %v", err)
		case <-ctx.Done():
			return nil
		}
	}
}

func newWorld(opts options, levels []assets.Level) *ecs.ECS {
	return scenes.NewWorld(levels, opts.Level, systems.NewScriptedInput(scripts[opts.Script]))
}

// simulate ticks the world until the player is caught, the tick limit is
// reached or ctx is done. A reload signal rebuilds the world with the new
// agent specs.
func simulate(ctx context.Context, opts options, levels []assets.Level, reloads <-chan struct{}) error {
	world := newWorld(opts, levels)

	var tick <-chan time.Time
	if opts.TPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(opts.TPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	lastHealth := -1.0
	for n := 0; opts.Ticks <= 0 || n < opts.Ticks; n++ {
		select {
		case <-ctx.Done():
			log.Printf("stopped after %d ticks", n)
			return nil
		case <-reloads:
			if err := loadSpecs(opts); err != nil {
				log.Printf("Warning: keeping previous agent specs: %v", err)
				break
			}
			log.Printf("agent specs reloaded, restarting level")
			world = newWorld(opts, levels)
			lastHealth = -1
		default:
		}

		if tick != nil {
			select {
			case <-tick:
			case <-ctx.Done():
				log.Printf("stopped after %d ticks", n)
				return nil
			}
		}

		world.Update()
		lastHealth = logHealth(world, lastHealth)

		if systems.IsGameOver(world) {
			log.Printf("player caught after %d ticks", systems.GetOrCreateGameOver(world).Ticks)
			return nil
		}
	}

	log.Printf("tick limit reached, player survived %d ticks", systems.GetOrCreateGameOver(world).Ticks)
	return nil
}

// logHealth logs the player's displayed health whenever its rounded value
// changes and returns the value logged last.
func logHealth(world *ecs.ECS, last float64) float64 {
	playerEntry, ok := tags.Player.First(world.World)
	if !ok {
		return last
	}
	display := components.Health.Get(playerEntry).Display
	v := math.Round(display.Value)
	if v != last {
		log.Print(display.Text())
	}
	return v
}
