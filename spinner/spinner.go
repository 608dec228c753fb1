// Package spinner provides the animation frames drawn in place of the
// {spinner} token of a progress bar.
//
// A Spinner is a restartable, endless sequence of frames. It does not keep
// its own clock: the owner calls Spin once per Interval.
package spinner

import (
	"errors"
	"fmt"
	"time"

	charsets "github.com/briandowns/spinner"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultStyle is the style used when none is requested.
const DefaultStyle = "dots"

var ErrUnknownStyle = errors.New("unknown spinner style")

// Style is a named frame set together with the period between frames.
type Style struct {
	Frames   []string
	Interval time.Duration
}

var styles = map[string]Style{
	"dots":     {Frames: charsets.CharSets[14], Interval: 80 * time.Millisecond},
	"dots2":    {Frames: charsets.CharSets[11], Interval: 80 * time.Millisecond},
	"line":     {Frames: charsets.CharSets[9], Interval: 130 * time.Millisecond},
	"circle":   {Frames: charsets.CharSets[7], Interval: 120 * time.Millisecond},
	"ellipsis": {Frames: []string{".  ", ".. ", "..."}, Interval: 500 * time.Millisecond},
}

// Styles returns the names of all known styles in sorted order.
func Styles() []string {
	names := maps.Keys(styles)
	slices.Sort(names)
	return names
}

// Lookup returns a copy of the named style.
func Lookup(name string) (Style, bool) {
	s, ok := styles[name]
	if !ok {
		return Style{}, false
	}
	return Style{Frames: slices.Clone(s.Frames), Interval: s.Interval}, true
}

// Spinner steps through the frames of one style.
type Spinner struct {
	name   string
	frames []string
	tpf    time.Duration
	tick   int
}

// New returns a spinner positioned on the first frame of the named style.
func New(name string) (*Spinner, error) {
	style, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return FromStyle(name, style), nil
}

// FromStyle builds a spinner from a caller supplied frame set.
func FromStyle(name string, style Style) *Spinner {
	frames := style.Frames
	if len(frames) == 0 {
		frames = []string{""}
	}
	return &Spinner{name: name, frames: frames, tpf: style.Interval}
}

// Name is the style the spinner was built from.
func (s *Spinner) Name() string { return s.name }

// Interval is the fixed period at which Spin is expected to be called.
func (s *Spinner) Interval() time.Duration { return s.tpf }

// Current returns the frame to draw right now.
func (s *Spinner) Current() string {
	return s.frames[s.tick%len(s.frames)]
}

// Spin advances to the next frame, wrapping after the last one.
func (s *Spinner) Spin() {
	s.tick = (s.tick + 1) % len(s.frames)
}

// Reset restarts the sequence from its first frame.
func (s *Spinner) Reset() {
	s.tick = 0
}
