package sim

// Cooldown gates a repeating action. Remaining never drops below zero.
type Cooldown struct {
	Period    float64
	Remaining float64
}

// Tick counts down by dt.
func (c *Cooldown) Tick(dt float64) {
	c.Remaining = max(0, c.Remaining-dt)
}

// Ready reports whether the action may fire.
func (c *Cooldown) Ready() bool { return c.Remaining <= 0 }

// Trigger restarts the countdown from the full period.
func (c *Cooldown) Trigger() { c.Remaining = c.Period }

// Heat is an accumulator that blocks actions while at or above Max.
type Heat struct {
	Value float64
	Max   float64
	Decay float64 // units per second
}

// Overheated reports whether heat has reached its maximum.
func (h *Heat) Overheated() bool { return h.Value >= h.Max }

// Add raises heat. Value may overshoot Max so the ship stays locked out
// until decay brings it back under.
func (h *Heat) Add(v float64) {
	h.Value += v
}

// Cool decays heat by dt, floored at zero.
func (h *Heat) Cool(dt float64) {
	h.Value = max(0, h.Value-h.Decay*dt)
}
