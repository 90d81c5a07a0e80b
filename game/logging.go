package game

import "log/slog"

// logStartup emits the run parameters once at creation.
func (g *Game) logStartup() {
	mode := "graphical"
	if g.headless {
		mode = "headless"
	}
	slog.Info("game initialized",
		"mode", mode,
		"seed", g.seed,
		"systems", g.registry.IDs(),
		"field_half_w", g.bounds.HalfW,
		"field_half_h", g.bounds.HalfH,
		"dt", g.dtTarget,
		"steps_per_update", g.stepsPerUpdate,
		"stats_window_ticks", g.collector.WindowDurationTicks(),
	)
}

// logWorldState emits a summary of the current world, used on shutdown.
func (g *Game) logWorldState() {
	c := g.census()
	slog.Info("world state",
		"tick", g.tick,
		"score", g.score,
		"bullets", c.Bullets,
		"enemies", c.Enemies,
		"mirrors", c.Mirrors,
		"entities", c.Entities,
	)
}
