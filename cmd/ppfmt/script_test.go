package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/pp/pp"
)

func Test_runScript(t *testing.T) {
	for _, tc := range []struct {
		name   string
		script string
		cfg    pp.Config
		expect string
	}{
		{
			name: "hbox",
			script: "hbox\n" +
				`text "aaaa"` + "\n" +
				"space\n" +
				`text "bbbb"` + "\n" +
				"end\n" +
				"flush\n",
			cfg:    pp.Config{Margin: 20, MinSpaceLeft: 10},
			expect: "aaaa bbbb",
		},
		{
			name: "vbox with comment and blank lines",
			script: "# a vbox indented by 2\n" +
				"vbox 2\n\n" +
				"text aa\n" +
				"space\n" +
				"text bb\n" +
				"end\n" +
				"flush\n",
			cfg:    pp.Config{Margin: 40, MinSpaceLeft: 10},
			expect: "aa\n  bb",
		},
		{
			name:   "force newline",
			script: "text a\nnl\ntext b\nflush\n",
			cfg:    pp.Config{Margin: 40},
			expect: "a\nb",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf strings.Builder
			p := pp.NewPrinter(&buf, tc.cfg)
			sc := bufio.NewScanner(strings.NewReader(tc.script))
			require.NoError(t, runScript(p, sc))
			require.NoError(t, p.Err())
			assert.Equal(t, tc.expect, buf.String())
		})
	}
}

func Test_runScript_unrecognizedDirective(t *testing.T) {
	var buf strings.Builder
	p := pp.NewPrinter(&buf, pp.Config{Margin: 40})
	sc := bufio.NewScanner(strings.NewReader("bogus\n"))
	err := runScript(p, sc)
	assert.EqualError(t, err, `line 1: unrecognized directive "bogus"`)
}

func Test_unquoteArg(t *testing.T) {
	assert.Equal(t, "bare", unquoteArg("bare"))
	assert.Equal(t, "has space", unquoteArg(`"has space"`))
	assert.Equal(t, "a\tb", unquoteArg(`"a\tb"`))
}
