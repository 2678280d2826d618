package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidContent is returned when an item is not well formed
var ErrInvalidContent = errors.New("invalid content")

// Validate fails fast on items the engine cannot work with.
// A duration on a non-video item is tolerated.
func (i Item) Validate() error {
	switch {
	case strings.TrimSpace(i.ID) == "":
		return fmt.Errorf("%w: id is required", ErrInvalidContent)
	case !i.Type.Valid():
		return fmt.Errorf("%w: unknown type %q", ErrInvalidContent, i.Type)
	case strings.TrimSpace(i.Category) == "":
		return fmt.Errorf("%w: category is required", ErrInvalidContent)
	case strings.TrimSpace(i.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidContent)
	case strings.TrimSpace(i.ContentURL) == "":
		return fmt.Errorf("%w: contentUrl is required", ErrInvalidContent)
	case i.Dimensions.Width <= 0 || i.Dimensions.Height <= 0:
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			ErrInvalidContent, i.Dimensions.Width, i.Dimensions.Height)
	case i.Duration != nil && *i.Duration < 0:
		return fmt.Errorf("%w: duration cannot be negative", ErrInvalidContent)
	}

	if e := i.Engagement; e != nil {
		if e.Likes < 0 || e.Shares < 0 || e.Comments < 0 || e.Views < 0 {
			return fmt.Errorf("%w: engagement counters cannot be negative", ErrInvalidContent)
		}
	}

	return nil
}
