package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/broadside/components"
)

// accelScale converts acceleration intent into a per-tick velocity nudge.
const accelScale = 0.1

// PlayerControlSystem writes the tick's input intent into the player's
// acceleration. The integrator turns it into velocity on the same tick.
type PlayerControlSystem struct {
	filter ecs.Filter2[components.Movement, components.Player]
}

// NewPlayerControlSystem creates the player control system.
func NewPlayerControlSystem(w *ecs.World) *PlayerControlSystem {
	return &PlayerControlSystem{
		filter: *ecs.NewFilter2[components.Movement, components.Player](w),
	}
}

// Update applies the axis intent (-1, 0 or +1 per axis) to every player.
func (s *PlayerControlSystem) Update(axisX, axisY int8) {
	query := s.filter.Query()
	for query.Next() {
		mov, _ := query.Get()
		mov.AccelX = float32(axisX)
		mov.AccelY = float32(axisY)
	}
}

// MovementSystem integrates velocity and position for every entity with a
// Movement. With acceleration applied the velocity gets a fixed nudge;
// without it the velocity decays by the damping factor. Speed is clamped
// to MaxSpeed after either, and one tick advances position by exactly one
// velocity.
type MovementSystem struct {
	filter ecs.Filter2[components.Position, components.Movement]
}

// NewMovementSystem creates the movement integrator.
func NewMovementSystem(w *ecs.World) *MovementSystem {
	return &MovementSystem{
		filter: *ecs.NewFilter2[components.Position, components.Movement](w),
	}
}

// Update runs one integration step over all moving entities.
func (s *MovementSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, mov := query.Get()

		if mov.AccelX != 0 || mov.AccelY != 0 {
			mov.VelX += mov.AccelX * accelScale
			mov.VelY += mov.AccelY * accelScale
		} else {
			mov.VelX *= 1 - mov.Damping
			mov.VelY *= 1 - mov.Damping
		}

		speed := float32(math.Sqrt(float64(mov.VelX*mov.VelX + mov.VelY*mov.VelY)))
		if speed > mov.MaxSpeed {
			// speed > MaxSpeed >= 0 rules out a zero-length rescale.
			scale := mov.MaxSpeed / speed
			mov.VelX *= scale
			mov.VelY *= scale
		}

		pos.X += mov.VelX
		pos.Y += mov.VelY
	}
}
