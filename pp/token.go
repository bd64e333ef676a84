package pp

import "github.com/jcorbin/pp/internal/pparena"

// infinity dominates every realistic column sum; it marks both a
// forced-unknown size and "no right margin".
const infinity = 1 << 30

// sizeUnknown seeds the root box's size. It is distinct from the push-time
// placeholder (-rightTotal) used for ordinary box/break tokens: the root box
// is never closed, so its placeholder is never resolved by setSize, and it
// must still read as "not yet known" (negative) whenever advance forces it.
const sizeUnknown = -1

// triple is a (pre, n, post) rendering instruction: a string to emit
// before, a column count, and a string to emit after.
type triple struct {
	pre  string
	n    int
	post string
}

func (t triple) width() int { return len(t.pre) + t.n + len(t.post) }

type kind uint8

const (
	kindText kind = iota
	kindBreak
	kindBoxOpen
	kindBoxClose
	kindNewline
)

// token is an immutable record of one emitted directive, plus its length
// (always known) and size (resolved lazily by the scanning pile).
type token struct {
	kind kind

	text pparena.Token // kindText: content bytes live in Printer.arena
	fits triple // kindBreak: rendered inline
	brk  triple // kindBreak: rendered as a line break

	offset int    // kindBoxOpen: indentation offset
	flavor Flavor // kindBoxOpen: requested flavor

	length int // intrinsic column contribution
	size   int // resolved lazily; see sizeUnknown / push-time placeholder
}
