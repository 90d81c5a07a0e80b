// Command balance runs headless simulations across many seeds and
// summarizes the score and population outcomes, for checking how a
// config change shifts the game's difficulty.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/broadside/config"
	"github.com/pthm-cable/broadside/game"
)

type runResult struct {
	seed    int64
	score   float64
	enemies float64
	mirrors float64
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	runs := flag.Int("runs", 20, "Number of seeds to simulate")
	ticks := flag.Int("ticks", 3600, "Ticks per run (3600 = one minute)")
	baseSeed := flag.Int64("seed", 1, "First seed; runs use seed, seed+1, ...")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	results := make([]runResult, 0, *runs)
	for i := 0; i < *runs; i++ {
		seed := *baseSeed + int64(i)
		results = append(results, simulate(seed, *ticks))
	}

	scores := make([]float64, len(results))
	enemies := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.score
		enemies[i] = r.enemies
		fmt.Printf("seed=%-6d score=%-5.0f enemies_left=%-4.0f mirrors_left=%.0f\n",
			r.seed, r.score, r.enemies, r.mirrors)
	}

	sort.Float64s(scores)
	fmt.Printf("\nruns=%d ticks=%d\n", *runs, *ticks)
	fmt.Printf("score  mean=%.1f stddev=%.1f p10=%.0f p50=%.0f p90=%.0f\n",
		stat.Mean(scores, nil),
		stat.StdDev(scores, nil),
		stat.Quantile(0.10, stat.Empirical, scores, nil),
		stat.Quantile(0.50, stat.Empirical, scores, nil),
		stat.Quantile(0.90, stat.Empirical, scores, nil),
	)
	fmt.Printf("enemies on field at end  mean=%.1f\n", stat.Mean(enemies, nil))
}

// simulate runs one seeded headless game with fire held for the whole run.
func simulate(seed int64, ticks int) runResult {
	g := game.NewGameWithOptions(game.Options{Seed: seed, Headless: true})
	defer g.Unload()

	for int(g.Tick()) < ticks {
		g.Step(game.InputState{Fire: true})
	}

	return runResult{
		seed:    seed,
		score:   float64(g.Score()),
		enemies: float64(g.EnemiesOnField()),
		mirrors: float64(g.MirrorsOnField()),
	}
}
