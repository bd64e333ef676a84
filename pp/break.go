package pp

// breakLine forces a line break with no pre/post text and no offset,
// under the given box width. Used by forceBreakLine and ForceNewline.
func (p *Printer) breakLine(width int) {
	p.breakNewLine(triple{}, width)
}

// breakNewLine renders a break as a line break (§4.4): emit pre, a newline,
// indent spaces, then post, updating cursor state along the way.
func (p *Printer) breakNewLine(t triple, width int) {
	p.formatString(t.pre)
	p.outputNewline()
	indent := p.cfg.Margin - width + t.n
	if indent > p.cfg.MaxIndent {
		indent = p.cfg.MaxIndent
	}
	p.currentIndent = indent
	p.spaceLeft = p.cfg.Margin - indent
	p.isNewLine = true
	p.outputSpaces(indent)
	p.formatString(t.post)
}

// breakSameLine renders a break as inline spacing (§4.4).
func (p *Printer) breakSameLine(t triple) {
	p.formatString(t.pre)
	p.spaceLeft -= t.n
	p.outputSpaces(t.n)
	p.formatString(t.post)
}

// formatString is format_pp_text's String entry point: a no-op for empty
// strings, otherwise text output that also clears isNewLine.
func (p *Printer) formatString(s string) {
	if s != "" {
		p.formatText(s, len(s))
	}
}

// formatText emits s, accounts for its column width, and clears isNewLine.
func (p *Printer) formatText(s string, width int) {
	p.spaceLeft -= width
	p.output(s)
	p.isNewLine = false
}
