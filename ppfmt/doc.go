// Package ppfmt is a small immutable document builder over pp: instead of
// issuing an imperative stream of Printer calls while walking a data
// structure, a caller can compile it once into a Doc value and Render it.
//
// It introduces no new layout invariants beyond "a Doc compiles to a
// well-formed sequence of core operations": every Group and Nest opens and
// closes exactly one box.
package ppfmt

// Doc is a tagged immutable document value.
type Doc struct {
	kind dockind

	text  string // kindText
	width int    // kindText, when constructed via TextAs

	n   int // kindNest: indent offset
	sub []Doc
}

type dockind uint8

const (
	kindText dockind = iota
	kindLine
	kindSoftLine
	kindConcat
	kindGroup
	kindNest
)

// Text is a Doc holding literal text of width len(s).
func Text(s string) Doc { return Doc{kind: kindText, text: s, width: len(s)} }

// TextAs is Text with a caller-supplied visible width, for strings whose
// byte length doesn't match their rendered column width.
func TextAs(s string, width int) Doc { return Doc{kind: kindText, text: s, width: width} }

// Line is a break that renders as a single space when its enclosing Group
// fits on the line, or as a newline (reindented to the enclosing Nest
// offset) otherwise.
var Line = Doc{kind: kindLine}

// SoftLine is a break that renders as nothing when its enclosing Group
// fits, or as a newline otherwise.
var SoftLine = Doc{kind: kindSoftLine}

// Concat sequences docs with no separator.
func Concat(docs ...Doc) Doc { return Doc{kind: kindConcat, sub: docs} }

// Group wraps d so that its breaks are decided together: the whole group
// renders inline if it fits on the remaining line, otherwise every Line and
// SoftLine inside it becomes a line break. Compiles to open_hvbox/close_box.
func Group(d Doc) Doc { return Doc{kind: kindGroup, sub: []Doc{d}} }

// Nest wraps d in an additional indent of n columns, taken on any line
// break rendered inside it. Compiles to open_box(n)/close_box.
func Nest(n int, d Doc) Doc { return Doc{kind: kindNest, n: n, sub: []Doc{d}} }
