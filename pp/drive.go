package pp

// advance consumes the queue head whenever its size is known, or whenever
// the pending backlog has grown to at least spaceLeft (at which point it
// can no longer possibly fit on the current line, so any still-unknown size
// is forced to infinity). It is invoked after every caller operation (§4.3).
func (p *Printer) advance() {
	for {
		id, ok := p.queueFront()
		if !ok {
			return
		}
		pending := p.rightTotal - p.leftTotal
		size := p.tokens[id].size
		if size < 0 && pending < p.spaceLeft {
			return
		}
		p.queuePopFront()
		if size < 0 {
			p.tokens[id].size = infinity
		}
		p.formatToken(id)
		p.leftTotal += p.tokens[id].length
	}
}

// formatToken is the format driver (§4.3): it dispatches on token kind,
// consulting and updating the formatting pile as it goes.
func (p *Printer) formatToken(id int) {
	tok := &p.tokens[id]
	switch tok.kind {
	case kindText:
		p.formatText(tok.text.Text(), tok.size)

	case kindBoxOpen:
		p.formatBoxOpen(tok)

	case kindBoxClose:
		p.format.pop()

	case kindNewline:
		if _, width, ok := p.format.pop(); ok {
			p.breakLine(width)
		} else {
			p.outputNewline()
		}

	case kindBreak:
		p.formatBreak(tok)
	}
}

func (p *Printer) formatBoxOpen(tok *token) {
	insertionPoint := p.cfg.Margin - p.spaceLeft
	if insertionPoint > p.cfg.MaxIndent {
		p.forceBreakLine()
	}
	width := p.spaceLeft - tok.offset
	newFlavor := tok.flavor
	if tok.flavor != Vbox {
		if tok.size > p.spaceLeft {
			newFlavor = tok.flavor
		} else {
			newFlavor = fits
		}
	}
	p.format.push(newFlavor, width)
}

func (p *Printer) forceBreakLine() {
	flavor, width, ok := p.format.top()
	if !ok {
		p.outputNewline()
		return
	}
	if width > p.spaceLeft {
		switch flavor {
		case fits, Hbox:
			// these flavors never break here
		default:
			p.breakLine(width)
		}
	}
}

func (p *Printer) formatBreak(tok *token) {
	flavor, width, ok := p.format.top()
	if !ok {
		return
	}
	switch flavor {
	case Vbox, Hvbox:
		p.breakNewLine(tok.brk, width)

	case Hbox, fits:
		p.breakSameLine(tok.fits)

	case Hovbox:
		if tok.size+len(tok.fits.pre) > p.spaceLeft {
			p.breakNewLine(tok.brk, width)
		} else {
			p.breakSameLine(tok.fits)
		}

	case Box:
		switch {
		case p.isNewLine:
			p.breakSameLine(tok.fits)
		case tok.size+len(tok.fits.pre) > p.spaceLeft:
			p.breakNewLine(tok.brk, width)
		case p.currentIndent > p.cfg.Margin-width+tok.brk.n:
			p.breakNewLine(tok.brk, width)
		default:
			p.breakSameLine(tok.fits)
		}
	}
}
