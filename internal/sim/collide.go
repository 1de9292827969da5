package sim

// Pairs calls fn for every overlapping (a, b) with a of kind ka and b of kind kb.
// The outer loop runs over ka and the inner over kb, both in ascending handle
// order. An entity removed by an earlier call is not offered again.
func Pairs(w *World, ka, kb Kind, fn func(a, b Entity)) {
	as := w.All(ka)
	bs := w.All(kb)
	for _, a := range as {
		ab := a.Body()
		for _, b := range bs {
			if ab.removed {
				break
			}
			bb := b.Body()
			if bb.removed || ab.Handle == bb.Handle {
				continue
			}
			if ab.Box.Intersects(bb.Box) {
				fn(a, b)
			}
		}
	}
}

// Overlapping returns the live entities of kind whose boxes overlap e.
func Overlapping(w *World, e Entity, kind Kind) []Entity {
	var out []Entity
	eb := e.Body()
	w.Each(kind, func(o Entity) {
		ob := o.Body()
		if ob.Handle != eb.Handle && eb.Box.Intersects(ob.Box) {
			out = append(out, o)
		}
	})
	return out
}
