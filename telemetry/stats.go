package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Score at window end
	Score int `csv:"score"`

	// Entity census at window end
	Bullets  int `csv:"bullets"`
	Enemies  int `csv:"enemies"`
	Mirrors  int `csv:"mirrors"`
	Entities int `csv:"entities"`

	// Events during window
	ShotsFired   int `csv:"shots_fired"`
	Kills        int `csv:"kills"`
	Absorbed     int `csv:"absorbed"`
	Expired      int `csv:"expired"`
	Offscreen    int `csv:"offscreen"`
	EnemySpawns  int `csv:"enemy_spawns"`
	MirrorSpawns int `csv:"mirror_spawns"`

	// Derived rates
	Accuracy   float64 `csv:"accuracy"`
	AbsorbRate float64 `csv:"absorb_rate"`

	// Speed distribution over moving entities (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// Quantile returns the p-th empirical quantile of values. The input
// does not need to be sorted; a zero-length input yields 0.
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeSpeedStats calculates mean and quantiles of speed samples.
func ComputeSpeedStats(values []float64) (mean, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("score", s.Score),
		slog.Int("bullets", s.Bullets),
		slog.Int("enemies", s.Enemies),
		slog.Int("mirrors", s.Mirrors),
		slog.Int("entities", s.Entities),
		slog.Int("shots_fired", s.ShotsFired),
		slog.Int("kills", s.Kills),
		slog.Int("absorbed", s.Absorbed),
		slog.Int("expired", s.Expired),
		slog.Int("offscreen", s.Offscreen),
		slog.Int("enemy_spawns", s.EnemySpawns),
		slog.Int("mirror_spawns", s.MirrorSpawns),
		slog.Float64("accuracy", s.Accuracy),
		slog.Float64("absorb_rate", s.AbsorbRate),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"score", s.Score,
		"bullets", s.Bullets,
		"enemies", s.Enemies,
		"mirrors", s.Mirrors,
		"entities", s.Entities,
		"shots_fired", s.ShotsFired,
		"kills", s.Kills,
		"absorbed", s.Absorbed,
		"expired", s.Expired,
		"offscreen", s.Offscreen,
		"enemy_spawns", s.EnemySpawns,
		"mirror_spawns", s.MirrorSpawns,
		"accuracy", s.Accuracy,
		"absorb_rate", s.AbsorbRate,
		"speed_mean", s.SpeedMean,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
	)
}
