package overlay

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

const resetSeq = termenv.CSI + termenv.ResetSeq + "m"

// WhitespaceOption sets styling rules for the padding PlaceOverlay inserts
// where the background is shorter than the overlay.
type WhitespaceOption func(*whitespace)

type whitespace struct {
	style termenv.Style
	chars string
}

// WithWhitespaceChars fills padding with chars instead of spaces.
func WithWhitespaceChars(chars string) WhitespaceOption {
	return func(w *whitespace) {
		w.chars = chars
	}
}

// WithWhitespaceBackground colors the padding background.
func WithWhitespaceBackground(color string) WhitespaceOption {
	return func(w *whitespace) {
		w.style = w.style.Background(termenv.ColorProfile().Color(color))
	}
}

// WithWhitespaceForeground colors the padding characters.
func WithWhitespaceForeground(color string) WhitespaceOption {
	return func(w *whitespace) {
		w.style = w.style.Foreground(termenv.ColorProfile().Color(color))
	}
}

func (w whitespace) render(width int) string {
	if width <= 0 {
		return ""
	}
	chars := []rune(w.chars)
	if len(chars) == 0 {
		chars = []rune{' '}
	}

	var b strings.Builder
	for i, j := 0, 0; i < width; j++ {
		r := chars[j%len(chars)]
		rw := runewidth.RuneWidth(r)
		if rw == 0 || i+rw > width {
			b.WriteString(strings.Repeat(" ", width-i))
			break
		}
		b.WriteRune(r)
		i += rw
	}
	return w.style.Styled(b.String())
}

// PlaceOverlay draws fg on top of bg with its top-left corner at (x, y). With
// center set the position is ignored and fg is centered. shadow adds a drop
// shadow to the bottom-right of fg. The overlay is clamped so that it stays
// inside bg.
func PlaceOverlay(x, y int, fg, bg string, shadow, center bool, opts ...WhitespaceOption) string {
	if shadow {
		fg = addShadow(fg)
	}
	fgLines, fgWidth := getLines(fg)
	bgLines, bgWidth := getLines(bg)
	fgHeight, bgHeight := len(fgLines), len(bgLines)

	if fgWidth >= bgWidth && fgHeight >= bgHeight {
		return fg
	}

	if center {
		x = (bgWidth - fgWidth) / 2
		y = (bgHeight - fgHeight) / 2
	}
	x = clamp(x, 0, max(0, bgWidth-fgWidth))
	y = clamp(y, 0, max(0, bgHeight-fgHeight))

	ws := &whitespace{}
	for _, opt := range opts {
		opt(ws)
	}

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+fgHeight {
			b.WriteString(bgLine)
			continue
		}

		pos := 0
		if x > 0 {
			left := truncate.String(bgLine, uint(x))
			pos = ansi.PrintableRuneWidth(left)
			b.WriteString(left)
			b.WriteString(resetSeq)
			if pos < x {
				b.WriteString(ws.render(x - pos))
				pos = x
			}
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		b.WriteString(resetSeq)
		pos += ansi.PrintableRuneWidth(fgLine)

		right := cutLeft(bgLine, pos)
		lineWidth := ansi.PrintableRuneWidth(bgLine)
		rightWidth := ansi.PrintableRuneWidth(right)
		if rightWidth < lineWidth-pos {
			b.WriteString(ws.render(lineWidth - rightWidth - pos))
		}
		b.WriteString(right)
	}
	return b.String()
}

// cutLeft drops the first cutWidth cells of s. Escape sequences seen before
// the cut are replayed in front of the remainder unless a reset cleared them;
// a wide rune straddling the cut becomes spaces.
func cutLeft(s string, cutWidth int) string {
	var (
		pos     int
		inEsc   bool
		started bool
		seq     strings.Builder
		pending strings.Builder
		b       strings.Builder
	)
	for _, c := range s {
		if c == ansi.Marker || inEsc {
			inEsc = true
			seq.WriteRune(c)
			if c != ansi.Marker && ansi.IsTerminator(c) {
				inEsc = false
				switch {
				case started:
					b.WriteString(seq.String())
				case strings.HasSuffix(seq.String(), "[0m"):
					pending.Reset()
				default:
					pending.WriteString(seq.String())
				}
				seq.Reset()
			}
			continue
		}

		w := runewidth.RuneWidth(c)
		switch {
		case pos >= cutWidth:
			if !started {
				b.WriteString(pending.String())
				started = true
			}
			b.WriteRune(c)
		case pos+w > cutWidth:
			b.WriteString(pending.String())
			started = true
			b.WriteString(strings.Repeat(" ", pos+w-cutWidth))
		}
		pos += w
	}
	return b.String()
}

func addShadow(s string) string {
	lines, width := getLines(s)
	shade := termenv.String("░").Faint().String()

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", width-ansi.PrintableRuneWidth(line)))
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(shade)
		}
	}
	b.WriteString("\n ")
	b.WriteString(strings.Repeat(shade, width))
	return b.String()
}

// getLines splits s into lines and returns the widest printable width.
func getLines(s string) (lines []string, widest int) {
	lines = strings.Split(s, "\n")
	for _, l := range lines {
		if w := ansi.PrintableRuneWidth(l); w > widest {
			widest = w
		}
	}
	return lines, widest
}

func clamp(v, lower, upper int) int {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
