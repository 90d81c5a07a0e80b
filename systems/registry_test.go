package systems

import (
	"testing"

	"github.com/pthm-cable/broadside/telemetry"
)

func TestRegistryIDsMatchPerfPhases(t *testing.T) {
	reg := NewSystemRegistry()

	want := []string{
		telemetry.PhaseControl,
		telemetry.PhaseMovement,
		telemetry.PhaseBounds,
		telemetry.PhaseShooting,
		telemetry.PhaseCollision,
		telemetry.PhaseSpawners,
		telemetry.PhaseLifetimes,
		telemetry.PhaseOffscreen,
		telemetry.PhaseTelemetry,
	}
	got := reg.IDs()
	if len(got) != len(want) {
		t.Fatalf("IDs() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistryAllHasDisplayNames(t *testing.T) {
	reg := NewSystemRegistry()

	all := reg.All()
	if len(all) != len(reg.IDs()) {
		t.Fatalf("All() returned %d entries, IDs() %d", len(all), len(reg.IDs()))
	}
	for _, info := range all {
		if info.Name == "" {
			t.Errorf("system %q has no display name", info.ID)
		}
		if info.Category == "" {
			t.Errorf("system %q has no category", info.ID)
		}
	}
}

func TestRegistryRegisterAppends(t *testing.T) {
	reg := NewSystemRegistry()

	n := len(reg.All())
	reg.Register(SystemInfo{ID: "render", Name: "Render", Category: "internal"})

	all := reg.All()
	if len(all) != n+1 {
		t.Fatalf("All() returned %d entries after Register, want %d", len(all), n+1)
	}
	if all[n].ID != "render" {
		t.Errorf("last registered ID = %q, want %q", all[n].ID, "render")
	}
}
