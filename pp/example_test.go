package pp_test

import (
	"fmt"

	"github.com/jcorbin/pp/pp"
)

// A plain Hbox never breaks: every hint inside it renders inline.
func Example_hbox() {
	p := pp.NewStringPrinter(pp.Config{Margin: 20, MinSpaceLeft: 10})
	p.OpenHbox()
	p.PrintString("aaaa")
	p.PrintSpace()
	p.PrintString("bbbb")
	p.CloseBox()
	p.PrintFlush()
	fmt.Print(p.String())
	// Output:
	// aaaa bbbb
}

// A Vbox always breaks: every hint inside it renders as a line break,
// indented by the box's offset.
func Example_vbox() {
	p := pp.NewStringPrinter(pp.Config{Margin: 20, MinSpaceLeft: 10})
	p.OpenVbox(2)
	p.PrintString("aa")
	p.PrintSpace()
	p.PrintString("bb")
	p.PrintSpace()
	p.PrintString("cc")
	p.CloseBox()
	p.PrintFlush()
	fmt.Print(p.String())
	// Output:
	// aa
	//   bb
	//   cc
}

// An Hovbox wraps only once its line would overflow the margin.
func Example_hovbox() {
	p := pp.NewStringPrinter(pp.Config{Margin: 12, MinSpaceLeft: 10})
	p.OpenHovbox(2)
	p.PrintString("aaaa")
	p.PrintSpace()
	p.PrintString("bbbb")
	p.PrintSpace()
	p.PrintString("cccc")
	p.CloseBox()
	p.PrintFlush()
	fmt.Print(p.String())
	// Output:
	// aaaa bbbb
	//   cccc
}

// An Hvbox is decided once, atomically, at open time: if its whole content
// fits the remaining line it renders entirely inline, otherwise every break
// inside it becomes a line break.
func Example_hvbox_fits() {
	p := pp.NewStringPrinter(pp.Config{Margin: 20, MinSpaceLeft: 10})
	p.OpenHvbox(2)
	p.PrintString("aa")
	p.PrintSpace()
	p.PrintString("bb")
	p.CloseBox()
	p.PrintFlush()
	fmt.Print(p.String())
	// Output:
	// aa bb
}

func Example_hvbox_breaks() {
	p := pp.NewStringPrinter(pp.Config{Margin: 2, MinSpaceLeft: 0})
	p.OpenHvbox(2)
	p.PrintString("aa")
	p.PrintSpace()
	p.PrintString("bb")
	p.CloseBox()
	p.PrintFlush()
	fmt.Print(p.String())
	// Output:
	// aa
	//   bb
}

// A Box never re-breaks a hint that lands right at the start of a line, even
// when its own content overflows the margin.
func Example_box_noDoubleBreak() {
	p := pp.NewStringPrinter(pp.Config{Margin: 10, MinSpaceLeft: 10})
	p.OpenBox(2)
	p.PrintCut()
	p.PrintString("abcdefghijkl")
	p.CloseBox()
	p.PrintFlush()
	fmt.Print(p.String())
	// Output:
	// abcdefghijkl
}

// Once curr_depth reaches MaxBoxes, further nested content collapses to
// the configured ellipsis instead of being individually scanned.
func Example_maxBoxes() {
	p := pp.NewStringPrinter(pp.Config{Margin: 40, MinSpaceLeft: 10, MaxBoxes: 2})
	p.OpenHbox()
	p.OpenHbox()
	p.PrintString("deep")
	p.CloseBox()
	p.CloseBox()
	p.PrintFlush()
	fmt.Print(p.String())
	// Output:
	// .
}
