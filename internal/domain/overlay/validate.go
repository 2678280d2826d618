// internal/domain/overlay/validate.go

package overlay

import "fmt"

// Style bounds
const (
	MinFontSize    = 8
	MaxFontSize    = 200
	MaxStrokeWidth = 20
	MaxShadowBlur  = 50
)

// ValidatePlacement checks a placement for conflicting or out-of-range fields.
// It never fails; findings are returned for the caller to act on.
func ValidatePlacement(p Placement) ValidationResult {
	var errs []string

	if (p.Position != "" || p.HasCoordinates()) && p.Gravity != "" {
		errs = append(errs, "position and gravity cannot both be set")
	}

	if p.Position != "" && !IsValidPosition(p.Position) {
		errs = append(errs, fmt.Sprintf("unknown position %q", p.Position))
	}

	if p.X != nil && (*p.X < 0 || *p.X > 100) {
		errs = append(errs, fmt.Sprintf("x coordinate %.2f must be between 0 and 100", *p.X))
	}
	if p.Y != nil && (*p.Y < 0 || *p.Y > 100) {
		errs = append(errs, fmt.Sprintf("y coordinate %.2f must be between 0 and 100", *p.Y))
	}

	if p.StartTime != nil && *p.StartTime < 0 {
		errs = append(errs, "start time cannot be negative")
	}
	if p.EndTime != nil && *p.EndTime < 0 {
		errs = append(errs, "end time cannot be negative")
	}
	if p.StartTime != nil && p.EndTime != nil && *p.StartTime >= *p.EndTime {
		errs = append(errs, "start time must be before end time")
	}

	return result(errs)
}

// ValidateStyle checks style values against their supported ranges
func ValidateStyle(s Style) ValidationResult {
	var errs []string

	if s.FontSize < MinFontSize || s.FontSize > MaxFontSize {
		errs = append(errs, fmt.Sprintf("font size %d must be between %d and %d", s.FontSize, MinFontSize, MaxFontSize))
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		errs = append(errs, fmt.Sprintf("opacity %.2f must be between 0 and 1", s.Opacity))
	}
	if s.Stroke != nil && (s.Stroke.Width < 0 || s.Stroke.Width > MaxStrokeWidth) {
		errs = append(errs, fmt.Sprintf("stroke width %.1f must be between 0 and %d", s.Stroke.Width, MaxStrokeWidth))
	}
	if s.Shadow != nil && (s.Shadow.Blur < 0 || s.Shadow.Blur > MaxShadowBlur) {
		errs = append(errs, fmt.Sprintf("shadow blur %.1f must be between 0 and %d", s.Shadow.Blur, MaxShadowBlur))
	}

	return result(errs)
}

func result(errs []string) ValidationResult {
	if errs == nil {
		errs = []string{}
	}
	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
