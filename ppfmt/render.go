package ppfmt

import (
	"io"

	"github.com/jcorbin/pp/pp"
)

// Render compiles d into a sequence of Printer operations against a
// freshly constructed Printer writing to w under the given margin, then
// flushes. It returns the first sink error encountered, if any.
func Render(w io.Writer, margin int, d Doc) error {
	p := pp.NewPrinter(w, pp.Config{Margin: margin})
	emit(p, d)
	p.PrintFlush()
	return p.Err()
}

func emit(p *pp.Printer, d Doc) {
	switch d.kind {
	case kindText:
		p.PrintAs(d.text, d.width)

	case kindLine:
		p.PrintSpace()

	case kindSoftLine:
		p.PrintCut()

	case kindConcat:
		for _, sub := range d.sub {
			emit(p, sub)
		}

	case kindGroup:
		p.OpenHvbox(0)
		emit(p, d.sub[0])
		p.CloseBox()

	case kindNest:
		p.OpenBox(d.n)
		emit(p, d.sub[0])
		p.CloseBox()
	}
}
