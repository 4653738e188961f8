package formatter

import (
	"bytes"
	"strings"

	"github.com/mowl-logging/mowl/core"
)

// pen is a ready-to-use ANSI escape sequence. The zero pen writes
// nothing, so uncolored segments cost a single length check.
type pen string

const resetSeq = "\x1b[0m"

func (p pen) use(buf *bytes.Buffer) {
	if len(p) > 0 {
		buf.WriteString(string(p))
	}
}

func (p pen) drop(buf *bytes.Buffer) {
	if len(p) > 0 {
		buf.WriteString(resetSeq)
	}
}

// newPen builds a pen from a space-separated spec such as "bright red"
// or "dim". Colors: black, red, green, yellow, blue, magenta, cyan,
// white. Modifiers: bright (bold) and dim. Unknown tokens are ignored.
func newPen(spec string) pen {
	var fg byte
	var isBright, isDim bool

	for _, token := range strings.Fields(spec) {
		switch token {
		case "black":
			fg = '0'
		case "red":
			fg = '1'
		case "green":
			fg = '2'
		case "yellow":
			fg = '3'
		case "blue":
			fg = '4'
		case "magenta":
			fg = '5'
		case "cyan":
			fg = '6'
		case "white":
			fg = '7'
		case "bright", "bold":
			isBright, isDim = true, false
		case "dim", "dark":
			isBright, isDim = false, true
		}
	}

	var seq []byte
	push := func(sub ...byte) {
		if len(seq) == 0 {
			seq = append(seq, "\x1b["...)
		}
		seq = append(seq, sub...)
		seq = append(seq, ';')
	}

	if fg != 0 {
		push('3', fg)
	}
	if isBright {
		push('1')
	}
	if isDim {
		push('2')
	}

	if len(seq) > 0 {
		seq[len(seq)-1] = 'm'
	}
	return pen(seq)
}

// Fixed level styling: Error=bright red, Warn=bright yellow,
// Info=bright green, Debug=bright cyan, Trace=bright white.
var levelPens = [...]pen{
	core.TraceLevel: newPen("bright white"),
	core.DebugLevel: newPen("bright cyan"),
	core.InfoLevel:  newPen("bright green"),
	core.WarnLevel:  newPen("bright yellow"),
	core.ErrorLevel: newPen("bright red"),
}

var (
	timePen   = newPen("dim")
	modulePen = newPen("bright blue")
)
