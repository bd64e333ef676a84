package pp

import "strings"

// NewStringPrinter returns a Printer backed by an internal strings.Builder,
// for callers (tests, REPLs) that want a one-shot rendering without
// providing their own io.Writer. Its accumulated output is read back with
// String.
func NewStringPrinter(cfg Config) *Printer {
	return NewPrinter(new(strings.Builder), cfg)
}

// String returns the output accumulated so far, if the Printer was built by
// NewStringPrinter (or otherwise bound to a *strings.Builder sink).
// Otherwise it returns "".
func (p *Printer) String() string {
	if b, ok := p.sink.(*strings.Builder); ok {
		return b.String()
	}
	return ""
}
