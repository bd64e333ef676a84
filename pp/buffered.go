package pp

import (
	"bufio"
	"io"
)

// NewBufferedPrinter wraps w in a *bufio.Writer before constructing a
// Printer, coalescing the engine's many small per-token writes (text runs,
// single spaces, single newlines) into fewer, larger writes to w. The
// underlying bufio.Writer is flushed automatically at the end of every
// PrintFlush/PrintNewline, so callers never need to flush it themselves;
// any flush error surfaces through Err like any other sink error.
func NewBufferedPrinter(w io.Writer, cfg Config) *Printer {
	bw := bufio.NewWriter(w)
	p := NewPrinter(bw, cfg)
	p.buffered = bw
	return p
}
