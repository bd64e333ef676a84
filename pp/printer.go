// Package pp implements a streaming structured pretty-printer: a
// line-wrapping formatter that converts a sequence of box/text/break
// directives into textual output respecting a right margin, following the
// Oppen scan/format algorithm.
//
// Minimal usage example:
//
//	var p pp.Printer
//	p.Reset(os.Stdout, pp.Config{Margin: 40})
//	p.OpenBox(2)
//	p.PrintString("hello")
//	p.PrintSpace()
//	p.PrintString("world")
//	p.CloseBox()
//	p.PrintFlush()
package pp

import (
	"bufio"
	"io"

	"github.com/jcorbin/pp/internal/pparena"
)

// Default configuration constants, matching the values used by the source
// this engine is modeled on.
const (
	DefaultMargin       = 78
	DefaultMinSpaceLeft = 10
	DefaultMaxIndent    = 68
	DefaultMaxBoxes     = 10000
	DefaultEllipsis     = "."
)

// Config holds construction-time tuning for a Printer. Zero-valued fields
// fall back to the Default* constants.
type Config struct {
	// Margin is the right-hand column limit. Wider values disable wrapping.
	Margin int
	// MinSpaceLeft is normalized and stored, but the layout algorithm never
	// consults it.
	MinSpaceLeft int
	// MaxIndent ceilings current_indent after any break.
	MaxIndent int
	// MaxBoxes ceilings curr_depth; it must be > 1.
	MaxBoxes int
	// Ellipsis is emitted in place of content nested past MaxBoxes.
	Ellipsis string
}

func (c Config) normalize() Config {
	if c.Margin <= 0 {
		c.Margin = DefaultMargin
	}
	if c.MinSpaceLeft <= 0 {
		c.MinSpaceLeft = DefaultMinSpaceLeft
	}
	if c.MaxIndent <= 0 {
		c.MaxIndent = DefaultMaxIndent
	}
	if c.MaxBoxes <= 1 {
		c.MaxBoxes = DefaultMaxBoxes
	}
	if c.Ellipsis == "" {
		c.Ellipsis = DefaultEllipsis
	}
	return c
}

// Printer is the layout engine (§2-§4): it holds the token store, pending
// queue, scanning pile, formatting pile, and cursor state, and drives output
// to a sink as soon as enough lookahead has resolved.
//
// A Printer is not safe for concurrent use; it is a single-threaded,
// non-suspending coroutine between caller ops and the format driver.
type Printer struct {
	cfg Config

	tokens []token
	queue  []int
	qhead  int
	arena  pparena.Arena

	scan   scanPile
	format formatPile

	spaceLeft     int
	currentIndent int
	isNewLine     bool
	leftTotal     int
	rightTotal    int
	currDepth     int

	sink     io.Writer
	buffered *bufio.Writer // set by NewBufferedPrinter; flushed at end of flushQueue
	err      error
}

// NewPrinter constructs a Printer writing to sink under cfg.
func NewPrinter(sink io.Writer, cfg Config) *Printer {
	p := &Printer{}
	p.Reset(sink, cfg)
	return p
}

// Reset discards any in-progress line state and rebinds the Printer to a new
// sink and configuration, reopening the implicit root box. It is equivalent
// to constructing a fresh Printer, but reuses the receiver's backing slices.
func (p *Printer) Reset(sink io.Writer, cfg Config) {
	p.cfg = cfg.normalize()
	p.sink = sink
	p.buffered = nil
	p.err = nil
	p.reinit()
}

// reinit clears per-flush state: queue, scanning pile, formatting pile, and
// cursor state, then reopens the implicit root box. Mirrors the source's
// rinit, with leftTotal/rightTotal seeded at 1 rather than 0 so that the
// push-time placeholder (-rightTotal) is never zero (see token.go).
func (p *Printer) reinit() {
	p.tokens = p.tokens[:0]
	p.queue = p.queue[:0]
	p.qhead = 0
	p.arena.Reset()
	p.scan.reset()
	p.format.reset()
	p.currentIndent = 0
	p.currDepth = 0
	p.spaceLeft = p.cfg.Margin
	p.leftTotal = 1
	p.rightTotal = 1
	p.isNewLine = true
	p.openSysBox()
}

// Err returns the first error returned by the output sink, if any. Once
// set, the Printer keeps tracking box/cursor state correctly but no longer
// attempts further sink writes.
func (p *Printer) Err() error { return p.err }

// --- token store / queue plumbing -----------------------------------------

func (p *Printer) addToken(t token) int {
	id := len(p.tokens)
	p.tokens = append(p.tokens, t)
	return id
}

func (p *Printer) enqueue(id int) {
	p.rightTotal += p.tokens[id].length
	p.queue = append(p.queue, id)
}

func (p *Printer) queueFront() (int, bool) {
	if p.qhead >= len(p.queue) {
		return 0, false
	}
	return p.queue[p.qhead], true
}

func (p *Printer) queuePopFront() int {
	id := p.queue[p.qhead]
	p.qhead++
	if p.qhead == len(p.queue) {
		p.queue = p.queue[:0]
		p.qhead = 0
	}
	return id
}

// --- scanning pile plumbing (§4.3 set_size / scan_push) --------------------

// setSize resolves the scanning pile's top entry: a breakKind=true call
// resolves a pending Break, breakKind=false resolves a pending BoxOpen. If
// the top entry predates the current leftTotal (stale from a prior flush),
// the pile is reset to the sentinel instead.
func (p *Printer) setSize(breakKind bool) {
	id, leftTotal := p.scan.top()
	if leftTotal < p.leftTotal {
		p.scan.reset()
		return
	}
	if id < 0 {
		return // sentinel: nothing to resolve
	}
	tok := &p.tokens[id]
	switch tok.kind {
	case kindBreak:
		if breakKind {
			tok.size += p.rightTotal
			p.scan.pop()
		}
	case kindBoxOpen:
		if !breakKind {
			tok.size += p.rightTotal
			p.scan.pop()
		}
	}
}

func (p *Printer) scanPush(resolveBreakNow bool, id int) {
	p.enqueue(id)
	if resolveBreakNow {
		p.setSize(true)
	}
	p.scan.push(id, p.rightTotal)
}

// --- public operations (§4.1) ----------------------------------------------

// OpenBox opens a Box-flavored (§4.2) nested region at the given indent
// offset.
func (p *Printer) OpenBox(offset int) { p.openBoxGen(offset, Box) }

// OpenHbox opens an Hbox: every break inside renders inline.
func (p *Printer) OpenHbox() { p.openBoxGen(0, Hbox) }

// OpenVbox opens a Vbox: every break inside renders as a line break.
func (p *Printer) OpenVbox(offset int) { p.openBoxGen(offset, Vbox) }

// OpenHvbox opens an Hvbox: decided atomically at open time.
func (p *Printer) OpenHvbox(offset int) { p.openBoxGen(offset, Hvbox) }

// OpenHovbox opens an Hovbox: each break decided independently.
func (p *Printer) OpenHovbox(offset int) { p.openBoxGen(offset, Hovbox) }

func (p *Printer) openSysBox() {
	p.currDepth++
	id := p.addToken(token{kind: kindBoxOpen, flavor: Hovbox, size: sizeUnknown})
	p.scanPush(false, id)
	p.advance()
}

func (p *Printer) openBoxGen(offset int, flavor Flavor) {
	p.currDepth++
	switch {
	case p.currDepth < p.cfg.MaxBoxes:
		id := p.addToken(token{kind: kindBoxOpen, offset: offset, flavor: flavor, size: -p.rightTotal})
		p.scanPush(false, id)
	case p.currDepth == p.cfg.MaxBoxes:
		p.enqueueStringAs(p.cfg.Ellipsis, len(p.cfg.Ellipsis))
	}
	p.advance()
}

// CloseBox closes the innermost open user box. A no-op if only the root box
// is open.
func (p *Printer) CloseBox() {
	if p.currDepth > 1 {
		if p.currDepth < p.cfg.MaxBoxes {
			id := p.addToken(token{kind: kindBoxClose})
			p.enqueue(id)
			p.setSize(true)
			p.setSize(false)
		}
		p.currDepth--
	}
	p.advance()
}

// PrintString emits literal text of width len(s).
func (p *Printer) PrintString(s string) { p.PrintAs(s, len(s)) }

// PrintAs emits literal text with a caller-supplied visible width, for
// strings whose byte length doesn't match their rendered column width.
func (p *Printer) PrintAs(s string, width int) {
	if p.currDepth < p.cfg.MaxBoxes {
		p.enqueueStringAs(s, width)
	}
	p.advance()
}

// enqueueStringAs copies s into the Printer's byte arena and enqueues a
// text token referencing the resulting range, rather than retaining s
// itself: repeated small PrintString calls (e.g. rendering a document one
// token at a time) share one growing backing buffer instead of one Go
// string allocation each.
func (p *Printer) enqueueStringAs(s string, width int) {
	p.arena.WriteString(s)
	tok := p.arena.Take()
	id := p.addToken(token{kind: kindText, text: tok, length: width, size: width})
	p.enqueue(id)
}

// PrintBreak emits a break hint rendered inline as width spaces when it
// fits, or as a line break indented by offset when it doesn't.
func (p *Printer) PrintBreak(width, offset int) {
	p.PrintCustomBreak(triple{n: width}, triple{n: offset})
}

// PrintCustomBreak emits a fully specified break hint.
func (p *Printer) PrintCustomBreak(fits, brk triple) {
	if p.currDepth < p.cfg.MaxBoxes {
		id := p.addToken(token{kind: kindBreak, fits: fits, brk: brk, length: fits.width(), size: -p.rightTotal})
		p.scanPush(true, id)
	}
	p.advance()
}

// PrintSpace is sugar for PrintBreak(1, 0).
func (p *Printer) PrintSpace() { p.PrintBreak(1, 0) }

// PrintCut is sugar for PrintBreak(0, 0).
func (p *Printer) PrintCut() { p.PrintBreak(0, 0) }

// PrintForceNewline forces a line break within the current box, independent
// of any break-hint decision.
func (p *Printer) PrintForceNewline() {
	if p.currDepth < p.cfg.MaxBoxes {
		id := p.addToken(token{kind: kindNewline})
		p.enqueue(id)
	}
	p.advance()
}

// PrintNewline is print_flush followed by a trailing newline.
func (p *Printer) PrintNewline() { p.flushQueue(true) }

// PrintFlush closes every open user box, force-resolves any sizes still
// pending, drains the queue, and reinitializes for the next line group.
func (p *Printer) PrintFlush() { p.flushQueue(false) }

func (p *Printer) flushQueue(endWithNewline bool) {
	for p.currDepth > 1 {
		p.CloseBox()
	}
	p.rightTotal = infinity
	p.advance()
	if endWithNewline {
		p.outputNewline()
	}
	if p.buffered != nil && p.err == nil {
		if err := p.buffered.Flush(); err != nil {
			p.err = err
		}
	}
	p.reinit()
}

// SetMargin updates the right margin, clamping to infinity.
func (p *Printer) SetMargin(n int) {
	if n < infinity {
		p.cfg.Margin = n
	} else {
		p.cfg.Margin = infinity
	}
}

// SetMaxBoxes updates the box-depth ceiling; values <= 1 are ignored.
func (p *Printer) SetMaxBoxes(n int) {
	if n > 1 {
		p.cfg.MaxBoxes = n
	}
}
