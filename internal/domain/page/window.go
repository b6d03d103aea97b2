package page

import "slices"

// DefaultIncrement is the number of ids materialized per step.
const DefaultIncrement = 10

// Window is the materialized prefix of a should-display list.
type Window struct {
	displayed []string
	hasMore   bool
}

// Initial materializes the first increment of ids.
// A non-positive increment falls back to DefaultIncrement.
func Initial(ids []string, increment int) Window {
	increment = normalize(increment)
	n := min(increment, len(ids))
	return Window{
		displayed: slices.Clone(ids[:n]),
		hasMore:   len(ids) > increment,
	}
}

// Advance extends a window of the given size over ids by one increment.
// When no more than one increment remains, the whole remainder is appended and hasMore turns false.
func Advance(ids []string, size, increment int) Window {
	increment = normalize(increment)
	size = max(0, min(size, len(ids)))

	remaining := len(ids) - size
	step := increment
	hasMore := true
	if remaining <= increment {
		step = remaining
		hasMore = false
	}

	return Window{
		displayed: slices.Clone(ids[:size+step]),
		hasMore:   hasMore,
	}
}

// Empty is the window before anything has been loaded. It reports more to come.
func Empty() Window {
	return Window{displayed: []string{}, hasMore: true}
}

// Displayed returns a copy of the materialized ids.
func (w Window) Displayed() []string { return slices.Clone(w.displayed) }

// Size returns the number of materialized ids.
func (w Window) Size() int { return len(w.displayed) }

// HasMore reports whether Advance would materialize more ids.
func (w Window) HasMore() bool { return w.hasMore }

func normalize(increment int) int {
	if increment <= 0 {
		return DefaultIncrement
	}
	return increment
}
