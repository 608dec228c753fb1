package bar

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/ApexioDaCoder/progresser/internal/ansi"
	"github.com/ApexioDaCoder/progresser/spinner"
)

// Styler decorates a single bar character, typically with terminal colors.
// The signature matches color.Color.SprintFunc.
type Styler func(a ...interface{}) string

// Animation is a source of spinner frames. Spin is called once per Interval
// while the bar is running.
type Animation interface {
	Current() string
	Spin()
	Interval() time.Duration
}

// Cursor hides the terminal cursor while the bar is running and shows it
// again when the bar terminates.
type Cursor interface {
	Hide()
	Show()
}

// Chars are the glyphs the bar is drawn with. Nil fields keep their default.
type Chars struct {
	Complete   *string
	Incomplete *string
	Prefix     *string
	Suffix     *string
}

// Colors style the complete and incomplete runs, one character at a time.
// Nil fields keep their default.
type Colors struct {
	Complete   Styler
	Incomplete Styler
}

// Options is a partial configuration merged over the defaults. Nil pointers,
// nil interfaces and empty strings keep the default:
//
//	Size          20
//	Current       0
//	Spinner       true
//	SpinnerStyle  "dots"
//	Colored       true
//	Clear         false
//	Stream        os.Stderr
//	Chars         "#", "-", "[", "]"
//	Colors        hi-blue complete, gray incomplete
type Options struct {
	Size         *int
	Current      *int
	Spinner      *bool
	SpinnerStyle string
	Colored      *bool
	Clear        bool
	Stream       io.Writer
	Chars        Chars
	Colors       Colors

	// Animation replaces the named SpinnerStyle when set.
	Animation Animation

	// Cursor defaults to escape sequences written to Stream.
	Cursor Cursor
}

// Bool returns a pointer to v, for the optional flags of Options.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for Options.Size and Options.Current.
func Int(v int) *int { return &v }

// String returns a pointer to v, for the fields of Chars.
func String(v string) *string { return &v }

// settings is the resolved, read only configuration of a Bar.
type settings struct {
	size      int
	current   int
	spinner   bool
	colored   bool
	clear     bool
	stream    io.Writer
	chars     charSet
	colors    Colors
	animation Animation
	cursor    Cursor
}

type charSet struct {
	complete, incomplete, prefix, suffix string
}

func defaults() settings {
	return settings{
		size:    20,
		current: 0,
		spinner: true,
		colored: true,
		clear:   false,
		stream:  os.Stderr,
		chars: charSet{
			complete:   "#",
			incomplete: "-",
			prefix:     "[",
			suffix:     "]",
		},
		colors: Colors{
			Complete:   color.New(color.FgHiBlue).SprintFunc(),
			Incomplete: color.New(color.FgHiBlack).SprintFunc(),
		},
	}
}

func (o Options) resolve() (settings, error) {
	s := defaults()

	if o.Size != nil {
		if *o.Size < 1 {
			return s, &ConfigurationError{Field: "size", Reason: fmt.Sprintf("must be at least 1, got %d", *o.Size)}
		}
		s.size = *o.Size
	}
	if o.Current != nil {
		if *o.Current < 0 {
			return s, &ConfigurationError{Field: "current", Reason: fmt.Sprintf("must not be negative, got %d", *o.Current)}
		}
		s.current = *o.Current
	}
	if o.Spinner != nil {
		s.spinner = *o.Spinner
	}
	if o.Colored != nil {
		s.colored = *o.Colored
	}
	s.clear = o.Clear
	if o.Stream != nil {
		s.stream = o.Stream
	}

	setString(&s.chars.complete, o.Chars.Complete)
	setString(&s.chars.incomplete, o.Chars.Incomplete)
	setString(&s.chars.prefix, o.Chars.Prefix)
	setString(&s.chars.suffix, o.Chars.Suffix)

	if o.Colors.Complete != nil {
		s.colors.Complete = o.Colors.Complete
	}
	if o.Colors.Incomplete != nil {
		s.colors.Incomplete = o.Colors.Incomplete
	}

	if s.spinner {
		if o.Animation != nil {
			s.animation = o.Animation
		} else {
			style := o.SpinnerStyle
			if style == "" {
				style = spinner.DefaultStyle
			}
			sp, err := spinner.New(style)
			if err != nil {
				return s, &ConfigurationError{Field: "spinner style", Reason: err.Error()}
			}
			s.animation = sp
		}
		if s.animation.Interval() <= 0 {
			return s, &ConfigurationError{Field: "spinner interval", Reason: "must be positive"}
		}
	}

	s.cursor = o.Cursor
	if s.cursor == nil {
		s.cursor = ansi.Cursor{Out: s.stream}
	}
	return s, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
