package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindowTiming(t *testing.T) {
	dt := float32(1.0 / 60.0)
	c := NewCollector(5.0, dt)

	if got := c.WindowDurationTicks(); got != 300 {
		t.Errorf("WindowDurationTicks() = %d, want 300", got)
	}
	if c.ShouldFlush(299) {
		t.Error("flush requested before the window elapsed")
	}
	if !c.ShouldFlush(300) {
		t.Error("flush not requested at the window boundary")
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0, 1.0/60.0)
	if got := c.WindowDurationTicks(); got != 1 {
		t.Errorf("WindowDurationTicks() = %d, want 1 for degenerate config", got)
	}
}

func TestCollectorFlushAggregatesAndResets(t *testing.T) {
	dt := float32(1.0 / 60.0)
	c := NewCollector(5.0, dt)

	c.RecordShots(10)
	c.RecordShots(10)
	c.RecordKills(4)
	c.RecordAbsorbed(2)
	c.RecordExpired(3)
	c.RecordOffscreen(1)
	c.RecordEnemySpawns(5)
	c.RecordMirrorSpawns(2)

	census := Census{Bullets: 8, Enemies: 3, Mirrors: 4, Entities: 17}
	stats := c.Flush(300, 42, census, []float64{1, 2, 3})

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 300 {
		t.Errorf("window [%d, %d], want [0, 300]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if math.Abs(stats.SimTimeSec-5.0) > 0.01 {
		t.Errorf("SimTimeSec = %v, want ~5.0", stats.SimTimeSec)
	}
	if stats.Score != 42 {
		t.Errorf("Score = %d, want 42", stats.Score)
	}
	if stats.ShotsFired != 20 || stats.Kills != 4 || stats.Absorbed != 2 {
		t.Errorf("counters = (%d, %d, %d), want (20, 4, 2)",
			stats.ShotsFired, stats.Kills, stats.Absorbed)
	}
	if stats.Expired != 3 || stats.Offscreen != 1 {
		t.Errorf("expired=%d offscreen=%d, want 3, 1", stats.Expired, stats.Offscreen)
	}
	if stats.EnemySpawns != 5 || stats.MirrorSpawns != 2 {
		t.Errorf("spawns = (%d, %d), want (5, 2)", stats.EnemySpawns, stats.MirrorSpawns)
	}
	if math.Abs(stats.Accuracy-0.2) > 0.001 {
		t.Errorf("Accuracy = %v, want 0.2", stats.Accuracy)
	}
	if math.Abs(stats.AbsorbRate-0.1) > 0.001 {
		t.Errorf("AbsorbRate = %v, want 0.1", stats.AbsorbRate)
	}
	if stats.Bullets != 8 || stats.Enemies != 3 || stats.Mirrors != 4 || stats.Entities != 17 {
		t.Errorf("census mismatch: %+v", stats)
	}
	if math.Abs(stats.SpeedMean-2.0) > 0.001 {
		t.Errorf("SpeedMean = %v, want 2.0", stats.SpeedMean)
	}

	// Counters must be clean for the next window
	next := c.Flush(600, 42, Census{}, nil)
	if next.WindowStartTick != 300 {
		t.Errorf("next window start = %d, want 300", next.WindowStartTick)
	}
	if next.ShotsFired != 0 || next.Kills != 0 || next.Absorbed != 0 ||
		next.Expired != 0 || next.Offscreen != 0 ||
		next.EnemySpawns != 0 || next.MirrorSpawns != 0 {
		t.Errorf("counters not reset after flush: %+v", next)
	}
}

func TestCollectorZeroShotsNoRates(t *testing.T) {
	c := NewCollector(5.0, 1.0/60.0)
	c.RecordKills(3)

	stats := c.Flush(300, 3, Census{}, nil)
	if stats.Accuracy != 0 || stats.AbsorbRate != 0 {
		t.Error("rates must stay zero when no shots were fired")
	}
}
