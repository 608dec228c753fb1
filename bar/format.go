package bar

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	barToken       = regexp.MustCompile(`(?i)\{bar\}`)
	currentToken   = regexp.MustCompile(`(?i)\{current\}`)
	sizeToken      = regexp.MustCompile(`(?i)\{size\}`)
	percentToken   = regexp.MustCompile(`(?i)\{percent\}`)
	spinnerToken   = regexp.MustCompile(`(?i)\{spinner\}`)
	spinnerLiteral = "{spinner}"
)

// percent is floor(clamp(current/size, 0, 1) * 100).
func percent(current, size int) int {
	ratio := float64(current) / float64(size)
	ratio = math.Min(math.Max(ratio, 0), 1)
	return int(math.Floor(ratio * 100))
}

// glyphs draws prefix, the complete run, the incomplete run and suffix. The
// two runs always add up to size characters.
func glyphs(current, size int, chars charSet, colors Colors, colored bool) string {
	filled := current
	if filled > size {
		filled = size
	}
	if filled < 0 {
		filled = 0
	}

	var complete, incomplete Styler = plain, plain
	if colored {
		complete, incomplete = orPlain(colors.Complete), orPlain(colors.Incomplete)
	}

	var sb strings.Builder
	sb.WriteString(chars.prefix)
	for i := 0; i < filled; i++ {
		sb.WriteString(complete(chars.complete))
	}
	for i := 0; i < size-filled; i++ {
		sb.WriteString(incomplete(chars.incomplete))
	}
	sb.WriteString(chars.suffix)
	return sb.String()
}

func plain(a ...interface{}) string {
	var sb strings.Builder
	for _, v := range a {
		if s, ok := v.(string); ok {
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func orPlain(s Styler) Styler {
	if s == nil {
		return plain
	}
	return s
}

// expand substitutes every token of tmpl from the bar's current state. An
// empty template expands the bar's own format.
func (b *Bar) expand(tmpl string) string {
	if tmpl == "" {
		tmpl = b.format
	}
	s := b.settings

	frame := spinnerLiteral
	if s.animation != nil {
		frame = s.animation.Current()
	}

	out := barToken.ReplaceAllLiteralString(tmpl, glyphs(b.current, s.size, s.chars, s.colors, s.colored))
	out = currentToken.ReplaceAllLiteralString(out, strconv.Itoa(b.current))
	out = sizeToken.ReplaceAllLiteralString(out, strconv.Itoa(s.size))
	out = percentToken.ReplaceAllLiteralString(out, strconv.Itoa(percent(b.current, s.size)))
	out = spinnerToken.ReplaceAllLiteralString(out, frame)
	return out
}

// withExtra inserts extra right after the first {bar} of the bar's format,
// keeping the rest of the template after it.
func (b *Bar) withExtra(extra string) string {
	loc := barToken.FindStringIndex(b.format)
	if loc == nil {
		return b.format
	}
	end := loc[1]
	return b.format[:end] + " " + extra + b.format[end:]
}
