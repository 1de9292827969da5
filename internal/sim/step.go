package sim

// Step advances every live entity by dt: think, integrate, count down the
// lifetime, apply the boundary policy, then resync the bounding box.
// Entities are visited in ascending handle order; those spawned during the
// step are first moved on the next one.
func Step(w *World, dt float64) {
	n := len(w.order)
	for i := 0; i < n; i++ {
		e := w.entities[w.order[i]]
		b := e.Body()
		if b.removed {
			continue
		}
		if t, ok := e.(Thinker); ok {
			t.Think(w, dt)
			if b.removed {
				continue
			}
		}

		b.Pos = b.Pos.Add(b.Vel.Scale(dt))

		if b.Timed {
			b.Life -= dt
			if b.Life <= 0 {
				w.Remove(b.Handle)
				continue
			}
		}

		if !w.applyBounds(b) {
			w.Remove(b.Handle)
			continue
		}
		b.Sync()

		if x, ok := e.(Expirer); ok && x.Expired() {
			w.Remove(b.Handle)
		}
	}
}

// applyBounds enforces the boundary policy; false means the body must go.
func (w *World) applyBounds(b *Body) bool {
	f := w.Field
	switch b.Bounds {
	case BoundsClamp:
		b.Pos.X = min(max(b.Pos.X, 0), f.W)
		b.Pos.Y = min(max(b.Pos.Y, 0), f.H)
	case BoundsWrap:
		hw, hh := b.W/2, b.H/2
		switch {
		case b.Pos.X+hw < 0:
			b.Pos.X = f.W + hw
		case b.Pos.X-hw > f.W:
			b.Pos.X = -hw
		}
		switch {
		case b.Pos.Y+hh < 0:
			b.Pos.Y = f.H + hh
		case b.Pos.Y-hh > f.H:
			b.Pos.Y = -hh
		}
	case BoundsDespawn:
		return f.Contains(b.Pos)
	}
	return true
}
