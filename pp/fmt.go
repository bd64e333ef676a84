package pp

import (
	"fmt"
	"io"
)

// Format writes a terse one-line summary of the receiver's cursor state
// under the %v verb, or a multi-line dump of its piles under %+v. Only
// reachable through fmt's verb machinery: there is no public introspection
// API, matching the debug-only Format-method texture used throughout this
// module's lineage rather than exposing the piles directly.
func (p *Printer) Format(f fmt.State, c rune) {
	if c != 'v' {
		fmt.Fprintf(f, "%%!%c(pp.Printer)", c)
		return
	}
	fmt.Fprintf(f, "depth=%v indent=%v space=%v/%v", p.currDepth, p.currentIndent, p.spaceLeft, p.cfg.Margin)
	if f.Flag('+') {
		fmt.Fprintf(f, "\nscan: %+v\nformat: %+v\nqueued: %v", &p.scan, &p.format, len(p.queue)-p.qhead)
	}
}

func (t token) Format(f fmt.State, c rune) {
	if c != 'v' {
		fmt.Fprintf(f, "%%!%c(pp.token)", c)
		return
	}
	switch t.kind {
	case kindText:
		fmt.Fprintf(f, "Text(%q)", t.text.Text())
	case kindBreak:
		if f.Flag('+') {
			fmt.Fprintf(f, "Break(fits=%+v brk=%+v)", t.fits, t.brk)
		} else {
			io.WriteString(f, "Break")
		}
	case kindBoxOpen:
		fmt.Fprintf(f, "Open(%v, off=%v)", t.flavor, t.offset)
	case kindBoxClose:
		io.WriteString(f, "Close")
	case kindNewline:
		io.WriteString(f, "Newline")
	default:
		fmt.Fprintf(f, "InvalidToken%v", int(t.kind))
	}
}

func (t triple) Format(f fmt.State, _ rune) {
	fmt.Fprintf(f, "(%q,%v,%q)", t.pre, t.n, t.post)
}
