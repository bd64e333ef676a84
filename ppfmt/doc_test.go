package ppfmt_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/pp/ppfmt"
)

func Example_group_fits() {
	d := ppfmt.Group(ppfmt.Join(ppfmt.Line, ppfmt.Text("a"), ppfmt.Text("b"), ppfmt.Text("c")))
	var buf strings.Builder
	if err := ppfmt.Render(&buf, 20, d); err != nil {
		fmt.Println("ERROR:", err)
		return
	}
	fmt.Print(buf.String())
	// Output:
	// a b c
}

func Example_group_breaks() {
	d := ppfmt.Group(ppfmt.Join(ppfmt.Line, ppfmt.Text("aaaa"), ppfmt.Text("bbbb"), ppfmt.Text("cccc")))
	var buf strings.Builder
	if err := ppfmt.Render(&buf, 5, d); err != nil {
		fmt.Println("ERROR:", err)
		return
	}
	fmt.Print(buf.String())
	// Output:
	// aaaa
	// bbbb
	// cccc
}

func Example_bracket() {
	d := ppfmt.Bracket("[", "]", ppfmt.Join(ppfmt.Concat(ppfmt.Text(","), ppfmt.Line), ppfmt.Text("1"), ppfmt.Text("2"), ppfmt.Text("3")))
	var buf strings.Builder
	if err := ppfmt.Render(&buf, 40, d); err != nil {
		fmt.Println("ERROR:", err)
		return
	}
	fmt.Print(buf.String())
	// Output:
	// [1, 2, 3]
}

func TestRender_softLine_collapses_when_flattened(t *testing.T) {
	d := ppfmt.Group(ppfmt.Concat(ppfmt.Text("x"), ppfmt.SoftLine, ppfmt.Text("y")))
	var buf strings.Builder
	err := ppfmt.Render(&buf, 40, d)
	require.NoError(t, err)
	assert.Equal(t, "xy", buf.String())
}

func TestRender_textAs_uses_caller_width(t *testing.T) {
	d := ppfmt.Group(ppfmt.Join(ppfmt.Line, ppfmt.TextAs("styled", 2), ppfmt.TextAs("styled", 2)))
	var buf strings.Builder
	err := ppfmt.Render(&buf, 6, d)
	require.NoError(t, err)
	assert.Equal(t, "styled styled", buf.String(), "a group that fits by its declared width renders inline even though the raw text is longer")
}
