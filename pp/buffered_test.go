package pp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/pp/pp"
)

func Test_NewBufferedPrinter(t *testing.T) {
	var buf strings.Builder
	p := pp.NewBufferedPrinter(&buf, pp.Config{Margin: 40, MinSpaceLeft: 10})
	p.OpenHbox()
	p.PrintString("hello")
	p.PrintSpace()
	p.PrintString("world")
	p.CloseBox()
	p.PrintFlush()
	require.NoError(t, p.Err())
	assert.Equal(t, "hello world", buf.String())
}
