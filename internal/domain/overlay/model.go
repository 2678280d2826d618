// internal/domain/overlay/model.go

package overlay

// Position is one of the nine named screen anchors
type Position string

const (
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	TopRight     Position = "top-right"
	CenterLeft   Position = "center-left"
	Center       Position = "center"
	CenterRight  Position = "center-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
	BottomRight  Position = "bottom-right"
)

// Positions lists every preset in reading order
var Positions = []Position{
	TopLeft, TopCenter, TopRight,
	CenterLeft, Center, CenterRight,
	BottomLeft, BottomCenter, BottomRight,
}

// Gravity is the media provider's compass anchor vocabulary
type Gravity string

const (
	GravityNorthWest Gravity = "north_west"
	GravityNorth     Gravity = "north"
	GravityNorthEast Gravity = "north_east"
	GravityWest      Gravity = "west"
	GravityCenter    Gravity = "center"
	GravityEast      Gravity = "east"
	GravitySouthWest Gravity = "south_west"
	GravitySouth     Gravity = "south"
	GravitySouthEast Gravity = "south_east"
)

// Offset is a pixel displacement from the anchor
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Placement says where an overlay goes and, for video, when it is shown.
// Position (or X/Y coordinates) and Gravity are mutually exclusive.
type Placement struct {
	Position  Position `json:"position,omitempty"`
	X         *float64 `json:"x,omitempty"`
	Y         *float64 `json:"y,omitempty"`
	Gravity   Gravity  `json:"gravity,omitempty"`
	Offset    *Offset  `json:"offset,omitempty"`
	StartTime *float64 `json:"startTime,omitempty"`
	EndTime   *float64 `json:"endTime,omitempty"`
}

// HasCoordinates reports whether the placement uses explicit x/y percentages
func (p Placement) HasCoordinates() bool {
	return p.X != nil || p.Y != nil
}

// Stroke is an outline drawn around glyphs
type Stroke struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Shadow is a drop shadow behind glyphs
type Shadow struct {
	Color   string  `json:"color"`
	Blur    float64 `json:"blur"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// AnimationType enumerates the supported entry animations
type AnimationType string

const (
	AnimationFade   AnimationType = "fade"
	AnimationSlide  AnimationType = "slide"
	AnimationBounce AnimationType = "bounce"
	AnimationZoom   AnimationType = "zoom"
)

// Animation describes how an overlay enters the frame
type Animation struct {
	Type     AnimationType `json:"type"`
	Duration float64       `json:"duration"`
	Delay    *float64      `json:"delay,omitempty"`
}

// Style is the full visual description of an overlay
type Style struct {
	FontFamily      string     `json:"fontFamily"`
	FontSize        int        `json:"fontSize"`
	Color           string     `json:"color"`
	BackgroundColor string     `json:"backgroundColor,omitempty"`
	Opacity         float64    `json:"opacity"`
	FontWeight      string     `json:"fontWeight"`
	FontStyle       string     `json:"fontStyle"`
	TextDecoration  string     `json:"textDecoration"`
	TextAlign       string     `json:"textAlign"`
	LetterSpacing   *float64   `json:"letterSpacing,omitempty"`
	LineHeight      *float64   `json:"lineHeight,omitempty"`
	Stroke          *Stroke    `json:"stroke,omitempty"`
	Shadow          *Shadow    `json:"shadow,omitempty"`
	Animation       *Animation `json:"animation,omitempty"`
}

// StrokeOverride is a partial Stroke
type StrokeOverride struct {
	Color *string  `json:"color,omitempty"`
	Width *float64 `json:"width,omitempty"`
}

// ShadowOverride is a partial Shadow
type ShadowOverride struct {
	Color   *string  `json:"color,omitempty"`
	Blur    *float64 `json:"blur,omitempty"`
	OffsetX *float64 `json:"offsetX,omitempty"`
	OffsetY *float64 `json:"offsetY,omitempty"`
}

// AnimationOverride is a partial Animation
type AnimationOverride struct {
	Type     *AnimationType `json:"type,omitempty"`
	Duration *float64       `json:"duration,omitempty"`
	Delay    *float64       `json:"delay,omitempty"`
}

// StyleOverride is a partial Style. Nil fields leave the base untouched.
type StyleOverride struct {
	FontFamily      *string            `json:"fontFamily,omitempty"`
	FontSize        *int               `json:"fontSize,omitempty"`
	Color           *string            `json:"color,omitempty"`
	BackgroundColor *string            `json:"backgroundColor,omitempty"`
	Opacity         *float64           `json:"opacity,omitempty"`
	FontWeight      *string            `json:"fontWeight,omitempty"`
	FontStyle       *string            `json:"fontStyle,omitempty"`
	TextDecoration  *string            `json:"textDecoration,omitempty"`
	TextAlign       *string            `json:"textAlign,omitempty"`
	LetterSpacing   *float64           `json:"letterSpacing,omitempty"`
	LineHeight      *float64           `json:"lineHeight,omitempty"`
	Stroke          *StrokeOverride    `json:"stroke,omitempty"`
	Shadow          *ShadowOverride    `json:"shadow,omitempty"`
	Animation       *AnimationOverride `json:"animation,omitempty"`
}

// ValidationResult carries advisory findings; Valid is true when Errors is empty
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
