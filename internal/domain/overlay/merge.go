package overlay

// MergeStyle applies o over base. Stroke, shadow and animation are merged
// field by field so a partial override keeps the base's other fields.
func MergeStyle(base Style, o StyleOverride) Style {
	out := base

	setString(&out.FontFamily, o.FontFamily)
	if o.FontSize != nil {
		out.FontSize = *o.FontSize
	}
	setString(&out.Color, o.Color)
	setString(&out.BackgroundColor, o.BackgroundColor)
	if o.Opacity != nil {
		out.Opacity = *o.Opacity
	}
	setString(&out.FontWeight, o.FontWeight)
	setString(&out.FontStyle, o.FontStyle)
	setString(&out.TextDecoration, o.TextDecoration)
	setString(&out.TextAlign, o.TextAlign)
	if o.LetterSpacing != nil {
		v := *o.LetterSpacing
		out.LetterSpacing = &v
	}
	if o.LineHeight != nil {
		v := *o.LineHeight
		out.LineHeight = &v
	}

	if o.Stroke != nil {
		var s Stroke
		if base.Stroke != nil {
			s = *base.Stroke
		}
		setString(&s.Color, o.Stroke.Color)
		if o.Stroke.Width != nil {
			s.Width = *o.Stroke.Width
		}
		out.Stroke = &s
	} else if base.Stroke != nil {
		s := *base.Stroke
		out.Stroke = &s
	}

	if o.Shadow != nil {
		var s Shadow
		if base.Shadow != nil {
			s = *base.Shadow
		}
		setString(&s.Color, o.Shadow.Color)
		if o.Shadow.Blur != nil {
			s.Blur = *o.Shadow.Blur
		}
		if o.Shadow.OffsetX != nil {
			s.OffsetX = *o.Shadow.OffsetX
		}
		if o.Shadow.OffsetY != nil {
			s.OffsetY = *o.Shadow.OffsetY
		}
		out.Shadow = &s
	} else if base.Shadow != nil {
		s := *base.Shadow
		out.Shadow = &s
	}

	if o.Animation != nil {
		var a Animation
		if base.Animation != nil {
			a = *base.Animation
		}
		if o.Animation.Type != nil {
			a.Type = *o.Animation.Type
		}
		if o.Animation.Duration != nil {
			a.Duration = *o.Animation.Duration
		}
		if o.Animation.Delay != nil {
			d := *o.Animation.Delay
			a.Delay = &d
		}
		out.Animation = &a
	} else if base.Animation != nil {
		a := *base.Animation
		out.Animation = &a
	}

	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
