package formatter

import (
	"bytes"
	"sync"

	"github.com/consoleview/consoleview/core"
	"github.com/consoleview/consoleview/translate"
)

// Formatter produces display lines from template keys. The zero value
// is not usable; construct with New.
type Formatter struct {
	lookup translate.Lookup
}

// New creates a Formatter over the given lookup. A nil lookup behaves
// like an empty translate.Map: every key resolves to itself.
func New(lookup translate.Lookup) *Formatter {
	if lookup == nil {
		lookup = translate.Map(nil)
	}
	return &Formatter{lookup: lookup}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Format resolves key, substitutes args and returns the terminated
// line for the given severity. Error, Warning and Success lines are
// prefixed with their translated uppercase label ("ERROR: ..."); Plain
// lines carry no label. The line color is the severity's fixed color.
//
// An empty key with a labeled severity still produces "LABEL: \n"; an
// empty key with Plain produces the bare terminator, which is the
// writeLine() form.
func (f *Formatter) Format(key string, sev core.Severity, args ...any) core.Line {
	buf := getBuffer()
	defer putBuffer(buf)

	if lk := sev.LabelKey(); lk != "" {
		buf.WriteString(f.lookup.Get(lk))
		buf.WriteString(": ")
	}
	substitute(buf, f.lookup.Get(key), args)
	buf.WriteString(core.Terminator)

	return core.Line{Text: buf.String(), Color: sev.Color()}
}

// FormatPlain resolves key and substitutes args with no label and no
// terminator. Used for raw appends and dialog bodies.
func (f *Formatter) FormatPlain(key string, args ...any) string {
	if key == "" {
		return ""
	}
	buf := getBuffer()
	defer putBuffer(buf)

	substitute(buf, f.lookup.Get(key), args)
	return buf.String()
}

// substitute writes template into buf, replacing each {N} placeholder
// with the stringified args[N]. Placeholders whose index is out of
// range are preserved literally; anything that is not a well-formed
// {digits} sequence is copied through unchanged.
func substitute(buf *bytes.Buffer, template string, args []any) {
	for i := 0; i < len(template); {
		c := template[i]
		if c != '{' {
			buf.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		idx := 0
		for j < len(template) && template[j] >= '0' && template[j] <= '9' {
			if idx <= len(args) { // cap: anything past len(args) is missing anyway
				idx = idx*10 + int(template[j]-'0')
			}
			j++
		}
		if j == i+1 || j >= len(template) || template[j] != '}' {
			// Not a placeholder, emit the brace and continue scanning.
			buf.WriteByte(c)
			i++
			continue
		}
		if idx < len(args) {
			appendValue(buf, args[idx])
		} else {
			buf.WriteString(template[i : j+1])
		}
		i = j + 1
	}
}
