package overlay

var positionGravity = map[Position]Gravity{
	TopLeft:      GravityNorthWest,
	TopCenter:    GravityNorth,
	TopRight:     GravityNorthEast,
	CenterLeft:   GravityWest,
	Center:       GravityCenter,
	CenterRight:  GravityEast,
	BottomLeft:   GravitySouthWest,
	BottomCenter: GravitySouth,
	BottomRight:  GravitySouthEast,
}

// IsValidPosition reports whether pos is one of the nine presets
func IsValidPosition(pos Position) bool {
	_, ok := positionGravity[pos]
	return ok
}

// GravityFor translates a preset position into the provider's gravity token.
// Unknown positions fall back to center.
func GravityFor(pos Position) Gravity {
	if g, ok := positionGravity[pos]; ok {
		return g
	}
	return GravityCenter
}

// PlacementOption adjusts a placement built by one of the constructors
type PlacementOption func(*Placement)

// WithOffset sets a pixel offset
func WithOffset(x, y float64) PlacementOption {
	return func(p *Placement) {
		p.Offset = &Offset{X: x, Y: y}
	}
}

// WithTiming sets the visible window in seconds
func WithTiming(start, end float64) PlacementOption {
	return func(p *Placement) {
		p.StartTime = &start
		p.EndTime = &end
	}
}

// PlacementFromPosition builds a placement anchored at a preset
func PlacementFromPosition(pos Position, opts ...PlacementOption) Placement {
	p := Placement{Position: pos}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// PlacementFromCoordinates builds a placement at x/y percentages of the frame
func PlacementFromCoordinates(x, y float64, opts ...PlacementOption) Placement {
	p := Placement{X: &x, Y: &y}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// PlacementFromGravity builds a placement using the provider's vocabulary directly
func PlacementFromGravity(g Gravity, opts ...PlacementOption) Placement {
	p := Placement{Gravity: g}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
