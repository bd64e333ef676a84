package pp

import (
	"fmt"
	"io"
)

// scanPile is the scanning pile (§3): a stack of references to BoxOpen/Break
// tokens whose size is not yet resolved, each tagged with the rightTotal
// value held at the moment it was pushed. It is never empty: a permanent
// sentinel sits at index 0 so setSize always has a top to examine.
//
// Laid out as parallel slices rather than a slice-of-struct, in the style of
// a columnar stack: one column per field, indexed in lockstep.
type scanPile struct {
	tokenID   []int
	leftTotal []int
}

// reset re-installs the permanent sentinel, discarding every other entry.
func (s *scanPile) reset() {
	s.tokenID = append(s.tokenID[:0], -1)
	s.leftTotal = append(s.leftTotal[:0], -1)
}

func (s *scanPile) push(id, leftTotal int) {
	s.tokenID = append(s.tokenID, id)
	s.leftTotal = append(s.leftTotal, leftTotal)
}

func (s *scanPile) pop() {
	n := len(s.tokenID) - 1
	s.tokenID = s.tokenID[:n]
	s.leftTotal = s.leftTotal[:n]
}

func (s *scanPile) top() (id, leftTotal int) {
	n := len(s.tokenID) - 1
	return s.tokenID[n], s.leftTotal[n]
}

func (s *scanPile) Format(f fmt.State, _ rune) {
	if len(s.tokenID) == 0 {
		io.WriteString(f, "-- empty --")
		return
	}
	for i := range s.tokenID {
		if i > 0 {
			io.WriteString(f, " ")
		}
		if i == 0 {
			fmt.Fprintf(f, "sentinel@%v", s.leftTotal[i])
		} else {
			fmt.Fprintf(f, "#%v@%v", s.tokenID[i], s.leftTotal[i])
		}
	}
}

// formatPile is the formatting pile (§3): a stack of active boxes, each
// holding its flavor as finalized at open time and its column budget.
type formatPile struct {
	flavor []Flavor
	width  []int
}

func (f *formatPile) reset() {
	f.flavor = f.flavor[:0]
	f.width = f.width[:0]
}

func (f *formatPile) push(flavor Flavor, width int) {
	f.flavor = append(f.flavor, flavor)
	f.width = append(f.width, width)
}

func (f *formatPile) pop() (flavor Flavor, width int, ok bool) {
	n := len(f.flavor)
	if n == 0 {
		return 0, 0, false
	}
	n--
	flavor, width = f.flavor[n], f.width[n]
	f.flavor = f.flavor[:n]
	f.width = f.width[:n]
	return flavor, width, true
}

func (f *formatPile) top() (flavor Flavor, width int, ok bool) {
	n := len(f.flavor)
	if n == 0 {
		return 0, 0, false
	}
	return f.flavor[n-1], f.width[n-1], true
}

func (f *formatPile) len() int { return len(f.flavor) }

func (f *formatPile) Format(state fmt.State, _ rune) {
	if len(f.flavor) == 0 {
		io.WriteString(state, "-- empty --")
		return
	}
	for i := range f.flavor {
		if i > 0 {
			io.WriteString(state, " ")
		}
		fmt.Fprintf(state, "%v:%v", f.flavor[i], f.width[i])
	}
}
