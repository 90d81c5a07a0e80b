package systems

import "github.com/mlange-42/ark/ecs"

// DespawnBuffer collects entities marked for destruction during a pass.
// Removal is deferred to a barrier between passes, so no system ever
// observes a half-destroyed entity; systems consult Contains to skip
// entities already marked within the current tick.
type DespawnBuffer struct {
	order  []ecs.Entity
	marked map[ecs.Entity]struct{}
}

// NewDespawnBuffer creates an empty despawn buffer.
func NewDespawnBuffer() *DespawnBuffer {
	return &DespawnBuffer{
		marked: make(map[ecs.Entity]struct{}),
	}
}

// Mark queues an entity for removal at the next barrier. It reports
// whether the entity was newly marked; a second mark of the same entity is
// a no-op, which is what keeps a hit from counting twice.
func (b *DespawnBuffer) Mark(e ecs.Entity) bool {
	if _, ok := b.marked[e]; ok {
		return false
	}
	b.marked[e] = struct{}{}
	b.order = append(b.order, e)
	return true
}

// Contains reports whether the entity is already queued for removal.
func (b *DespawnBuffer) Contains(e ecs.Entity) bool {
	_, ok := b.marked[e]
	return ok
}

// Len returns the number of queued entities.
func (b *DespawnBuffer) Len() int {
	return len(b.order)
}

// Flush removes all queued entities from the world and clears the buffer.
// It returns the number of entities removed.
func (b *DespawnBuffer) Flush(w *ecs.World) int {
	removed := 0
	for _, e := range b.order {
		if w.Alive(e) {
			w.RemoveEntity(e)
			removed++
		}
	}
	b.order = b.order[:0]
	clear(b.marked)
	return removed
}
