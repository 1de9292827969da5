// Package sim is the shared simulation kernel: an entity table addressed by
// handles, the fixed-timestep stepper, AABB pair iteration and the homing,
// cooldown and heat primitives the games build on.
package sim

import (
	"math"

	"github.com/vovakirdan/outpost-arcade/internal/core"
)

// Handle identifies an entity in a World. Handles are never reused, so a
// stale handle simply fails to resolve. The zero Handle refers to nothing.
type Handle uint32

// Kind groups entities for iteration and collision.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
	KindMissile
	KindPointDefense
	KindParticle
	KindPickup
)

// Bounds is the play-field boundary policy of an entity.
type Bounds uint8

const (
	BoundsNone    Bounds = iota
	BoundsClamp          // position clamped to the field
	BoundsWrap           // teleported to the opposite edge once fully off-field
	BoundsDespawn        // removed once its position leaves the field
)

// Field is the play rectangle, [0, W] × [0, H].
type Field struct {
	W, H float64
}

// Contains reports whether p lies inside the field (right and bottom exclusive).
func (f Field) Contains(p core.Vec2) bool {
	return p.X >= 0 && p.X < f.W && p.Y >= 0 && p.Y < f.H
}

// Body is the state every entity shares.
type Body struct {
	Handle Handle
	Kind   Kind
	Pos    core.Vec2
	Vel    core.Vec2
	W, H   float64
	Box    core.Box // centered on Pos after every step
	Bounds Bounds
	Life   float64 // remaining lifetime in seconds, used when Timed
	Timed  bool

	removed bool
}

// Sync recomputes the bounding box from the position.
func (b *Body) Sync() {
	b.Box = core.CenteredBox(b.Pos, b.W, b.H)
}

// Removed reports whether the entity was removed this frame or earlier.
func (b *Body) Removed() bool { return b.removed }

// Entity is anything stored in a World.
type Entity interface {
	Body() *Body
}

// Thinker entities steer themselves before movement is integrated.
type Thinker interface {
	Think(w *World, dt float64)
}

// Expirer entities report a kind-specific kill condition checked after movement.
type Expirer interface {
	Expired() bool
}

// World is the entity table of one game.
type World struct {
	Field Field

	next     Handle
	entities map[Handle]Entity
	order    []Handle // ascending; handles are allocated monotonically
}

// NewWorld creates an empty world on the given field.
func NewWorld(f Field) *World {
	return &World{Field: f, entities: make(map[Handle]Entity)}
}

// Reset removes every entity. Handles keep increasing across resets.
func (w *World) Reset() {
	clear(w.entities)
	w.order = w.order[:0]
}

// Spawn adds an entity and returns its new handle.
func (w *World) Spawn(e Entity) Handle {
	w.next++
	b := e.Body()
	b.Handle = w.next
	b.removed = false
	b.Sync()
	w.entities[b.Handle] = e
	w.order = append(w.order, b.Handle)
	return b.Handle
}

// Get resolves a handle to a live entity.
func (w *World) Get(h Handle) (Entity, bool) {
	e, ok := w.entities[h]
	if !ok || e.Body().removed {
		return nil, false
	}
	return e, true
}

// Alive reports whether the handle refers to a live entity.
func (w *World) Alive(h Handle) bool {
	_, ok := w.Get(h)
	return ok
}

// Remove marks an entity dead. Removing twice is a no-op.
// Dead entities are skipped by every query and dropped by Sweep.
func (w *World) Remove(h Handle) {
	if e, ok := w.entities[h]; ok {
		e.Body().removed = true
	}
}

// Sweep drops removed entities from the table.
func (w *World) Sweep() {
	kept := w.order[:0]
	for _, h := range w.order {
		if w.entities[h].Body().removed {
			delete(w.entities, h)
			continue
		}
		kept = append(kept, h)
	}
	w.order = kept
}

// Each calls fn for every live entity of kind in ascending handle order.
// Entities spawned during iteration are not visited.
func (w *World) Each(kind Kind, fn func(Entity)) {
	n := len(w.order)
	for i := 0; i < n; i++ {
		e := w.entities[w.order[i]]
		b := e.Body()
		if b.Kind == kind && !b.removed {
			fn(e)
		}
	}
}

// All returns the live entities of kind in ascending handle order.
func (w *World) All(kind Kind) []Entity {
	var out []Entity
	w.Each(kind, func(e Entity) { out = append(out, e) })
	return out
}

// Count returns the number of live entities of kind.
func (w *World) Count(kind Kind) int {
	n := 0
	w.Each(kind, func(Entity) { n++ })
	return n
}

// Len returns the number of live entities.
func (w *World) Len() int {
	n := 0
	for _, h := range w.order {
		if !w.entities[h].Body().removed {
			n++
		}
	}
	return n
}

// Nearest returns the live entity of kind closest to p.
// Ties go to the lower handle.
func (w *World) Nearest(kind Kind, p core.Vec2) (Entity, bool) {
	var best Entity
	bestD := math.Inf(1)
	w.Each(kind, func(e Entity) {
		if d := e.Body().Pos.Sub(p).LenSq(); d < bestD {
			best, bestD = e, d
		}
	})
	return best, best != nil
}
