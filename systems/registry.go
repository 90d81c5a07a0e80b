package systems

// SystemInfo describes a simulation system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping
}

// SystemRegistry holds metadata about all systems. It centralizes system
// naming so the UI and the perf collector stay in sync: every registered ID
// is also a perf phase key.
type SystemRegistry struct {
	systems []SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems to the registry.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	// Ordered chain
	r.Register(SystemInfo{ID: "control", Name: "Control", Description: "Applies input intent to the player", Category: "core"})
	r.Register(SystemInfo{ID: "movement", Name: "Movement", Description: "Integrates velocity and position", Category: "physics"})
	r.Register(SystemInfo{ID: "bounds", Name: "Bounds", Description: "Clamps the player inside the field", Category: "physics"})
	r.Register(SystemInfo{ID: "shooting", Name: "Shooting", Description: "Spawns bullet pairs while firing", Category: "core"})
	r.Register(SystemInfo{ID: "collision", Name: "Collision", Description: "Resolves bullet hits", Category: "physics"})

	// Lifecycle phases
	r.Register(SystemInfo{ID: "spawners", Name: "Spawners", Description: "Timer-driven enemy and mirror factories", Category: "lifecycle"})
	r.Register(SystemInfo{ID: "lifetimes", Name: "Lifetimes", Description: "Expires transient entities", Category: "lifecycle"})
	r.Register(SystemInfo{ID: "offscreen", Name: "Offscreen", Description: "Despawns entities outside the field", Category: "lifecycle"})

	// Internal
	r.Register(SystemInfo{ID: "telemetry", Name: "Telemetry", Description: "Window stats collection", Category: "internal"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
