package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestValidatePlacement(t *testing.T) {
	tests := []struct {
		name      string
		placement Placement
		valid     bool
		contains  string
	}{
		{
			name:      "preset position",
			placement: PlacementFromPosition(Center),
			valid:     true,
		},
		{
			name:      "position and gravity conflict",
			placement: Placement{Position: Center, Gravity: GravityCenter},
			contains:  "position and gravity",
		},
		{
			name:      "coordinates out of range",
			placement: PlacementFromCoordinates(120, 50),
			contains:  "x coordinate",
		},
		{
			name:      "negative y",
			placement: PlacementFromCoordinates(10, -1),
			contains:  "y coordinate",
		},
		{
			name:      "start after end",
			placement: Placement{Position: TopCenter, StartTime: ptr(5.0), EndTime: ptr(2.0)},
			contains:  "start time must be before end time",
		},
		{
			name:      "start equals end",
			placement: Placement{Position: TopCenter, StartTime: ptr(3.0), EndTime: ptr(3.0)},
			contains:  "start time must be before end time",
		},
		{
			name:      "negative start",
			placement: Placement{Position: TopCenter, StartTime: ptr(-1.0)},
			contains:  "start time cannot be negative",
		},
		{
			name:      "gravity only",
			placement: PlacementFromGravity(GravitySouthEast),
			valid:     true,
		},
		{
			name:      "unknown preset",
			placement: Placement{Position: "middle"},
			contains:  "unknown position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidatePlacement(tt.placement)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.valid {
				assert.Empty(t, res.Errors)
				return
			}
			require.NotEmpty(t, res.Errors)
			assert.Contains(t, res.Errors[0], tt.contains)
		})
	}
}

func TestPlacementFromPositionRoundTrip(t *testing.T) {
	res := ValidatePlacement(PlacementFromPosition(Center))
	assert.True(t, res.Valid)
	assert.Len(t, res.Errors, 0)
}

func TestValidateStyle(t *testing.T) {
	base := Style{FontFamily: "Arial", FontSize: 24, Color: "#FFFFFF", Opacity: 1}
	assert.True(t, ValidateStyle(base).Valid)

	small := base
	small.FontSize = 4
	assert.False(t, ValidateStyle(small).Valid)

	faded := base
	faded.Opacity = 1.5
	assert.False(t, ValidateStyle(faded).Valid)

	stroked := base
	stroked.Stroke = &Stroke{Color: "#000000", Width: 25}
	assert.False(t, ValidateStyle(stroked).Valid)

	shadowed := base
	shadowed.Shadow = &Shadow{Color: "#000000", Blur: 60}
	res := ValidateStyle(shadowed)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors[0], "shadow blur")
}

func TestMergeStyleKeepsNestedFields(t *testing.T) {
	base := Style{
		FontFamily: "Arial",
		FontSize:   24,
		Color:      "#FFFFFF",
		Opacity:    1,
		Stroke:     &Stroke{Color: "#000000", Width: 2},
		Shadow:     &Shadow{Color: "#333333", Blur: 4, OffsetX: 1, OffsetY: 1},
	}

	merged := MergeStyle(base, StyleOverride{
		FontSize: ptr(40),
		Stroke:   &StrokeOverride{Width: ptr(4.0)},
		Shadow:   &ShadowOverride{Blur: ptr(8.0)},
	})

	assert.Equal(t, 40, merged.FontSize)
	assert.Equal(t, "Arial", merged.FontFamily)
	require.NotNil(t, merged.Stroke)
	assert.Equal(t, "#000000", merged.Stroke.Color)
	assert.Equal(t, 4.0, merged.Stroke.Width)
	assert.Equal(t, 8.0, merged.Shadow.Blur)
	assert.Equal(t, 1.0, merged.Shadow.OffsetX)

	// base must not be touched
	assert.Equal(t, 2.0, base.Stroke.Width)
}

func TestMergeStyleCreatesMissingNested(t *testing.T) {
	merged := MergeStyle(Style{FontSize: 20}, StyleOverride{
		Animation: &AnimationOverride{Type: ptr(AnimationFade), Duration: ptr(0.5)},
	})
	require.NotNil(t, merged.Animation)
	assert.Equal(t, AnimationFade, merged.Animation.Type)
	assert.Nil(t, merged.Animation.Delay)
}

func TestGravityFor(t *testing.T) {
	assert.Equal(t, GravityNorthWest, GravityFor(TopLeft))
	assert.Equal(t, GravityCenter, GravityFor(Center))
	assert.Equal(t, GravitySouthEast, GravityFor(BottomRight))
	assert.Equal(t, GravityCenter, GravityFor("nowhere"))
	assert.Len(t, Positions, 9)
	for _, p := range Positions {
		assert.True(t, IsValidPosition(p))
	}
}
