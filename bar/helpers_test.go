package bar

import (
	"bytes"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func (s *syncBuffer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Reset()
}

type terminalBuffer struct {
	syncBuffer
}

func (*terminalBuffer) IsTerminal() bool { return true }

type brokenStream struct{}

func (brokenStream) Write(p []byte) (int, error) {
	return 0, errors.New("stream closed")
}

type countingCursor struct {
	hides, shows atomic.Int32
}

func (c *countingCursor) Hide() { c.hides.Add(1) }
func (c *countingCursor) Show() { c.shows.Add(1) }

type frames struct {
	glyphs   []string
	i        int
	interval time.Duration
}

func (f *frames) Current() string         { return f.glyphs[f.i] }
func (f *frames) Spin()                   { f.i = (f.i + 1) % len(f.glyphs) }
func (f *frames) Interval() time.Duration { return f.interval }

// quiet fills in a plain, non-animated bar writing to out.
func quiet(opts Options, out *syncBuffer, cursor *countingCursor) Options {
	opts.Stream = out
	opts.Cursor = cursor
	if opts.Spinner == nil {
		opts.Spinner = Bool(false)
	}
	if opts.Colored == nil {
		opts.Colored = Bool(false)
	}
	return opts
}

const (
	home  = "\x1b[1G"
	erase = "\x1b[2K"
)
