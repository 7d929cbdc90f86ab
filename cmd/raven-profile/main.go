// Command raven-profile runs an attach/query/destroy workload against an ecs world under the Go
// profiler.
//
//	RAVEN_PROFILE_MODE=mem go run ./cmd/raven-profile
//	go tool pprof -http=":8000" ./mem.pprof
package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/profile"
	"github.com/raven-engine/raven/pkg/ecs"
	"github.com/raven-engine/raven/pkg/snapshot"
	"github.com/raven-engine/raven/pkg/telemetry"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Mode       string `env:"RAVEN_PROFILE_MODE" envDefault:"cpu"`
	Path       string `env:"RAVEN_PROFILE_PATH" envDefault:"."`
	Entities   int    `env:"RAVEN_PROFILE_ENTITIES" envDefault:"1000"`
	Iterations int    `env:"RAVEN_PROFILE_ITERATIONS" envDefault:"1000"`
	Rounds     int    `env:"RAVEN_PROFILE_ROUNDS" envDefault:"10"`
	Workers    int    `env:"RAVEN_PROFILE_WORKERS" envDefault:"1"`
}

func (c *config) validate() error {
	if _, ok := profileModes[strings.ToLower(c.Mode)]; !ok && !strings.EqualFold(c.Mode, "none") {
		return eris.Errorf("invalid profile mode %q", c.Mode)
	}
	if c.Entities <= 0 || c.Iterations <= 0 || c.Rounds <= 0 || c.Workers <= 0 {
		return eris.New("entities, iterations, rounds and workers must be positive")
	}
	return nil
}

var profileModes = map[string]func(*profile.Profile){
	"cpu":   profile.CPUProfile,
	"mem":   profile.MemProfileAllocs,
	"block": profile.BlockProfile,
	"mutex": profile.MutexProfile,
}

type position struct {
	X, Y float64
}

func (position) Name() string { return "position" }

type velocity struct {
	X, Y float64
}

func (velocity) Name() string { return "velocity" }

type buff struct {
	Ticks int
}

func (buff) Name() string { return "buff" }

func main() {
	tel, err := telemetry.New(telemetry.Options{ServiceName: "raven-profile"})
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	logger := tel.GetLogger("main")

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to parse config")
	}
	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	var stopper interface{ Stop() }
	if mode, ok := profileModes[strings.ToLower(cfg.Mode)]; ok {
		stopper = profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet)
	}

	start := time.Now()
	w, err := runRounds(cfg, tel.GetLogger("ecs"))
	if stopper != nil {
		stopper.Stop()
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("workload failed")
	}

	logger.Info().
		Str("mode", cfg.Mode).
		Int("rounds", cfg.Rounds).
		Int("iterations", cfg.Iterations).
		Int("entities", cfg.Entities).
		Int("workers", cfg.Workers).
		Dur("elapsed", time.Since(start)).
		Msg("workload finished")
	ecs.LogWorld(&logger, w, zerolog.DebugLevel)

	if err := saveSnapshot(w, tel.GetLogger("snapshot")); err != nil {
		logger.Fatal().Err(err).Msg("failed to save snapshot")
	}
}

// runRounds runs cfg.Rounds independent workloads on up to cfg.Workers goroutines and returns the
// world of the last round. A panicking round fails the whole run.
func runRounds(cfg config, logger zerolog.Logger) (*ecs.World, error) {
	worlds := make([]*ecs.World, cfg.Rounds)
	g := new(errgroup.Group)
	g.SetLimit(cfg.Workers)
	for i := range cfg.Rounds {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = eris.Errorf("round %d panicked: %v", i, r)
				}
			}()
			worlds[i] = run(cfg, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return worlds[len(worlds)-1], nil
}

// run builds a world of cfg.Entities entities and repeatedly integrates velocities and churns
// buffs on it. The final world is returned so it can be logged and saved.
func run(cfg config, logger zerolog.Logger) *ecs.World {
	w := ecs.NewWorld(ecs.WithLogger(logger))
	for i := range cfg.Entities {
		e := w.Create()
		ecs.Attach(w, e, position{X: float64(i)})
		ecs.Attach(w, e, velocity{X: 1, Y: 0.5})
		if i%3 == 0 {
			ecs.Attach(w, e, buff{Ticks: 3})
		}
	}

	for iter := range cfg.Iterations {
		for _, row := range ecs.QueryShallowMut2[position, velocity](w).Iter() {
			p, v := row.C1.Get(), row.C2.Get()
			p.X += v.X
			p.Y += v.Y
		}

		var expired []ecs.Entity
		for e, row := range ecs.QueryDeepMut1[buff](w).Iter() {
			b := row.C1.Get()
			b.Ticks--
			if b.Ticks <= 0 {
				expired = append(expired, e)
			}
		}
		for _, e := range expired {
			ecs.DetachOne[buff](w, e)
		}

		// Recycle a slice of entities so the free list and versions stay busy.
		entities := w.Entities()
		victim := entities[iter%len(entities)]
		w.Destroy(victim)
		e := w.Create()
		ecs.Attach(w, e, position{})
		ecs.Attach(w, e, velocity{X: -1})
		ecs.Attach(w, e, buff{Ticks: 2})
		ecs.Attach(w, e, buff{Ticks: 5})
	}
	return w
}

func saveSnapshot(w *ecs.World, logger zerolog.Logger) error {
	opts, err := snapshot.LoadOptions()
	if err != nil {
		return err
	}
	ctx := context.Background()
	storage, err := snapshot.NewStorage(ctx, opts, logger)
	if err != nil {
		return err
	}
	codec, err := ecs.CodecByName(opts.Codec)
	if err != nil {
		return err
	}
	snap, err := snapshot.Save(ctx, storage, w, codec)
	if err != nil {
		return err
	}
	logger.Info().
		Stringer("id", snap.ID).
		Str("storage", opts.Storage).
		Int("bytes", len(snap.Data)).
		Msg("snapshot saved")
	return nil
}
