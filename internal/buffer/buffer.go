package buffer

import (
	"strings"

	"github.com/yuin/goldmark/util"
)

// HTMLBuffer accumulates an HTML fragment.
type HTMLBuffer struct {
	parts []string
	size  int
}

// New creates a new HTMLBuffer.
func New() *HTMLBuffer {
	return &HTMLBuffer{
		parts: make([]string, 0),
	}
}

// WriteRaw appends markup verbatim.
func (hb *HTMLBuffer) WriteRaw(markup string) {
	if markup == "" {
		return
	}
	hb.parts = append(hb.parts, markup)
	hb.size += len(markup)
}

// WriteText escapes text and turns each newline into <br>.
func (hb *HTMLBuffer) WriteText(text string) {
	if text == "" {
		return
	}
	escaped := Escape(text)
	hb.WriteRaw(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// String returns the accumulated markup.
func (hb *HTMLBuffer) String() string {
	if len(hb.parts) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(hb.size)
	for _, p := range hb.parts {
		sb.WriteString(p)
	}
	return sb.String()
}

// Reset clears the buffer.
func (hb *HTMLBuffer) Reset() {
	hb.parts = hb.parts[:0]
	hb.size = 0
}

// Escape HTML-escapes &, <, > and ".
func Escape(text string) string {
	return string(util.EscapeHTML([]byte(text)))
}
