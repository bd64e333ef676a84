// Command ppfmt reads a small box/text/break script and renders it through
// the pp layout engine, for interactive exercise of box flavors and
// margins.
package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"

	"github.com/google/renameio"

	"github.com/jcorbin/pp/pp"
)

func main() {
	var (
		margin       = flag.Int("margin", pp.DefaultMargin, "right margin column")
		minSpaceLeft = flag.Int("min-space-left", pp.DefaultMinSpaceLeft, "stored in the printer config; not consulted by the layout algorithm")
		maxIndent    = flag.Int("max-indent", pp.DefaultMaxIndent, "ceiling on current indent after any break")
		maxBoxes     = flag.Int("max-boxes", pp.DefaultMaxBoxes, "ceiling on open box depth")
		out          = flag.String("o", "", "write output atomically to this file instead of stdout")
	)
	flag.Parse()

	var in io.Reader = os.Stdin
	if name := flag.Arg(0); name != "" {
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("unable to open script %v: %v", name, err)
		}
		defer f.Close()
		in = f
	}

	cfg := pp.Config{
		Margin:       *margin,
		MinSpaceLeft: *minSpaceLeft,
		MaxIndent:    *maxIndent,
		MaxBoxes:     *maxBoxes,
	}

	if *out == "" {
		run(os.Stdout, cfg, in)
		return
	}

	pf, err := renameio.TempFile("", *out)
	if err != nil {
		log.Fatalf("unable to create temp file for %v: %v", *out, err)
	}
	defer pf.Cleanup()

	run(pf, cfg, in)

	if err := pf.CloseAtomicallyReplace(); err != nil {
		log.Fatalf("unable to replace %v: %v", *out, err)
	}
}

func run(w io.Writer, cfg pp.Config, in io.Reader) {
	p := pp.NewPrinter(w, cfg)
	sc := bufio.NewScanner(in)
	if err := runScript(p, sc); err != nil {
		log.Fatalln(err)
	}
	if err := p.Err(); err != nil {
		log.Fatalln(err)
	}
}
