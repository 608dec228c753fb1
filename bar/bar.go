package bar

import (
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ApexioDaCoder/progresser/internal/ansi"
)

// Bar is a single progress line. All methods are safe for concurrent use and
// become no-ops once the bar has terminated, except Interrupt.
type Bar struct {
	format      string
	settings    settings
	onTerminate func(*Bar)

	mu            sync.Mutex
	current       int
	terminated    bool
	interruptions int
	err           error

	stop chan struct{}
	done chan struct{}
}

// New validates format and opts, hides the cursor, draws the bar once and
// starts the spinner clock when animation is enabled. onTerminate may be nil;
// otherwise it is called exactly once, after the bar has terminated.
func New(format string, opts Options, onTerminate func(*Bar)) (*Bar, error) {
	if !barToken.MatchString(format) {
		return nil, &ConfigurationError{
			Field:  "format",
			Reason: `at least one "{bar}" is required in ` + strconv.Quote(format),
		}
	}
	s, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Starting progress bar: size=%d current=%d spinner=%t", s.size, s.current, s.spinner)

	b := &Bar{
		format:      format,
		settings:    s,
		onTerminate: onTerminate,
		current:     s.current,
	}

	s.cursor.Hide()
	b.mu.Lock()
	b.render("")
	b.mu.Unlock()

	if s.animation != nil {
		b.stop = make(chan struct{})
		b.done = make(chan struct{})
		go b.animate(s.animation.Interval())
	}
	return b, nil
}

// NewWithSize is shorthand for New with only Options.Size set.
func NewWithSize(format string, size int, onTerminate func(*Bar)) (*Bar, error) {
	return New(format, Options{Size: Int(size)}, onTerminate)
}

// Tick records one unit of completed work. The tick that moves the bar past
// its size terminates it instead of drawing.
func (b *Bar) Tick() {
	b.tick("")
}

// TickWith is Tick with extra text drawn right after the bar.
func (b *Bar) TickWith(extra string) {
	b.tick(extra)
}

func (b *Bar) tick(extra string) {
	b.mu.Lock()
	if b.terminated {
		b.mu.Unlock()
		return
	}
	b.current++
	if b.current > b.settings.size {
		finished := b.terminate()
		b.mu.Unlock()
		b.finish(finished)
		return
	}

	tmpl := ""
	if extra != "" {
		tmpl = b.withExtra(extra)
	}
	b.render(tmpl)
	b.mu.Unlock()
}

// Render redraws the bar on its row. An empty format uses the bar's own.
func (b *Bar) Render(format string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.render(format)
}

func (b *Bar) render(format string) {
	if b.terminated {
		return
	}
	w := b.settings.stream
	b.check(ansi.CursorTo(w, 0))
	b.check(ansi.ClearLine(w))
	b.check(ansi.Write(w, b.expand(format)))
}

// Interrupt prints message, token expanded, on its own line below the
// previous interruptions and returns the cursor to the bar's row. It still
// writes after the bar has terminated, so late log lines are not lost.
func (b *Bar) Interrupt(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.interrupt(b.expand(message))
}

func (b *Bar) interrupt(line string) {
	b.interruptions++
	w := b.settings.stream
	b.check(ansi.CursorTo(w, 0))
	b.check(ansi.MoveCursor(w, 0, b.interruptions))
	b.check(ansi.Write(w, "\n"+line))
	b.check(ansi.MoveCursor(w, 0, -b.interruptions))
}

// Terminate finishes the bar: the cursor is shown again, the line is either
// cleared or closed with a newline, the spinner clock is stopped and the
// completion callback runs. Only the first call has any effect.
func (b *Bar) Terminate() {
	b.mu.Lock()
	finished := b.terminate()
	b.mu.Unlock()
	b.finish(finished)
}

// terminate must be called with mu held. It reports whether this call did
// the termination.
func (b *Bar) terminate() bool {
	if b.terminated {
		return false
	}
	s := b.settings
	s.cursor.Show()
	b.terminated = true

	w := s.stream
	if s.clear {
		if ansi.IsTerminal(w) {
			b.check(ansi.ClearLine(w))
			b.check(ansi.CursorTo(w, 0))
			b.check(ansi.MoveCursor(w, 0, b.interruptions))
		}
	} else {
		b.check(ansi.MoveCursor(w, 0, b.interruptions))
		b.check(ansi.Write(w, "\n"))
	}

	if b.stop != nil {
		close(b.stop)
	}
	return true
}

// finish runs outside mu: it waits for the spinner clock to exit, reports a
// stream failure at debug level, then calls the completion callback.
func (b *Bar) finish(finished bool) {
	if !finished {
		return
	}
	if b.done != nil {
		<-b.done
	}
	if err := b.Err(); err != nil {
		logrus.Debugf("Progress bar output failed: %s", err)
	}
	logrus.Debugf("Progress bar terminated at %d/%d", b.Current(), b.settings.size)
	if b.onTerminate != nil {
		b.onTerminate(b)
	}
}

func (b *Bar) animate(interval time.Duration) {
	defer close(b.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stop:
			return
		case <-ticker.C:
			b.spin()
		}
	}
}

func (b *Bar) spin() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.terminated {
		return
	}
	b.settings.animation.Spin()
	b.render("")
}

// check keeps the first stream error; drawing carries on regardless.
func (b *Bar) check(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

// Err returns the first error returned by the output stream, if any.
func (b *Bar) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Current is the number of ticks recorded so far.
func (b *Bar) Current() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Size is the number of ticks that completes the bar.
func (b *Bar) Size() int {
	return b.settings.size
}

// Terminated reports whether the bar has finished.
func (b *Bar) Terminated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.terminated
}

// Interruptions is the number of lines Interrupt has printed.
func (b *Bar) Interruptions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.interruptions
}

// Writer returns an io.Writer that prints every non-empty line written to it
// as an interruption, verbatim. It is meant as a log output while the bar is
// on screen:
//
//	logrus.SetOutput(b.Writer())
func (b *Bar) Writer() io.Writer {
	return interruptWriter{b}
}

type interruptWriter struct {
	b *Bar
}

func (w interruptWriter) Write(p []byte) (int, error) {
	w.b.mu.Lock()
	defer w.b.mu.Unlock()
	for _, line := range strings.Split(string(p), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		w.b.interrupt(line)
	}
	return len(p), nil
}
