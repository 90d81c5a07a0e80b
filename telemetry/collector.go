package telemetry

// Census holds entity counts sampled at a window boundary.
type Census struct {
	Bullets  int
	Enemies  int
	Mirrors  int
	Entities int
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32

	// Event counters for current window
	shotsFired   int
	kills        int
	absorbed     int
	expired      int
	offscreen    int
	enemySpawns  int
	mirrorSpawns int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		windowStartTick:     0,
	}
}

// RecordShots records n bullets fired this tick.
func (c *Collector) RecordShots(n int) {
	c.shotsFired += n
}

// RecordKills records n enemies destroyed by bullets.
func (c *Collector) RecordKills(n int) {
	c.kills += n
}

// RecordAbsorbed records n bullets absorbed by mirrors.
func (c *Collector) RecordAbsorbed(n int) {
	c.absorbed += n
}

// RecordExpired records n entities whose lifetime ran out.
func (c *Collector) RecordExpired(n int) {
	c.expired += n
}

// RecordOffscreen records n entities culled outside the field.
func (c *Collector) RecordOffscreen(n int) {
	c.offscreen += n
}

// RecordEnemySpawns records n enemies spawned this tick.
func (c *Collector) RecordEnemySpawns(n int) {
	c.enemySpawns += n
}

// RecordMirrorSpawns records n mirrors spawned this tick.
func (c *Collector) RecordMirrorSpawns(n int) {
	c.mirrorSpawns += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller provides the current tick, the score, an entity census, and
// speed samples for the distribution columns.
func (c *Collector) Flush(currentTick int32, score int, census Census, speeds []float64) WindowStats {
	var accuracy, absorbRate float64
	if c.shotsFired > 0 {
		accuracy = float64(c.kills) / float64(c.shotsFired)
		absorbRate = float64(c.absorbed) / float64(c.shotsFired)
	}

	speedMean, speedP50, speedP90 := ComputeSpeedStats(speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		Score: score,

		Bullets:  census.Bullets,
		Enemies:  census.Enemies,
		Mirrors:  census.Mirrors,
		Entities: census.Entities,

		ShotsFired:   c.shotsFired,
		Kills:        c.kills,
		Absorbed:     c.absorbed,
		Expired:      c.expired,
		Offscreen:    c.offscreen,
		EnemySpawns:  c.enemySpawns,
		MirrorSpawns: c.mirrorSpawns,

		Accuracy:   accuracy,
		AbsorbRate: absorbRate,

		SpeedMean: speedMean,
		SpeedP50:  speedP50,
		SpeedP90:  speedP90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.shotsFired = 0
	c.kills = 0
	c.absorbed = 0
	c.expired = 0
	c.offscreen = 0
	c.enemySpawns = 0
	c.mirrorSpawns = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
