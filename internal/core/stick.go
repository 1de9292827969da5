package core

// StickRadius is the travel of a virtual stick in play-field units.
const StickRadius = 60

// TouchEvent is the phase of a pointer or touch event.
type TouchEvent int

const (
	TouchDown TouchEvent = iota
	TouchMove
	TouchUp
)

// VirtualStick is an on-screen analog stick driven by touches.
// A touch that starts inside Zone owns the stick until it is released;
// other touches are ignored meanwhile.
type VirtualStick struct {
	Zone   Box
	Radius float64

	owner  int
	held   bool
	origin Vec2
	value  Vec2
}

// NewVirtualStick creates a stick that accepts touches starting in zone.
func NewVirtualStick(zone Box) *VirtualStick {
	return &VirtualStick{Zone: zone, Radius: StickRadius}
}

// Handle feeds one touch event to the stick.
func (s *VirtualStick) Handle(ev TouchEvent, id int, pos Vec2) {
	switch ev {
	case TouchDown:
		if !s.held && s.Zone.Contains(pos) {
			s.owner, s.held = id, true
			s.origin = pos
			s.value = Vec2{}
		}
	case TouchUp:
		if s.held && id == s.owner {
			s.held = false
			s.value = Vec2{}
		}
	case TouchMove:
		if s.held && id == s.owner {
			s.value = pos.Sub(s.origin).ClampLen(s.Radius).Scale(1 / s.Radius)
		}
	}
}

// Held reports whether a touch currently owns the stick.
func (s *VirtualStick) Held() bool { return s.held }

// Owner returns the id of the owning touch; only meaningful while Held.
func (s *VirtualStick) Owner() int { return s.owner }

// Value returns the deflection, length at most 1.
func (s *VirtualStick) Value() Vec2 { return s.value }

// View describes the stick for drawing, or false when it is not held.
func (s *VirtualStick) View() (StickView, bool) {
	if !s.held {
		return StickView{}, false
	}
	return StickView{Origin: s.origin, Value: s.value, Radius: s.Radius}, true
}

// TwinSticks returns the move and aim sticks laid out on a w×h field:
// lower-left and lower-right regions below the top 35%.
func TwinSticks(w, h float64) (move, aim *VirtualStick) {
	top := h * 0.35
	move = NewVirtualStick(Box{X: 0, Y: top, W: w * 0.45, H: h - top})
	aim = NewVirtualStick(Box{X: w * 0.55, Y: top, W: w * 0.45, H: h - top})
	return move, aim
}
