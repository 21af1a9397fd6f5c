package rawxml

import "bytes"

// parseError reports a recoverable, intra-construct structural violation.
// The dispatch loop converts it into an Error event carrying the offset of
// the construct that was being scanned, and advances the cursor by exactly
// one byte so that the next call resumes from the following byte.
type parseError struct {
	kind    ErrorKind
	message string
}

func (e *parseError) Error() string { return e.message }

var (
	litCommentOpen  = []byte("<!--")
	litCommentClose = []byte("-->")
	litCDataOpen    = []byte("<![CDATA[")
	litCDataClose   = []byte("]]>")
	litPIClose      = []byte("?>")
)

// scanText advances to the next '<' or to a soft cap of maxTextChunk bytes,
// whichever is smaller, then backs the cut off any trailing UTF-8
// continuation bytes so the emitted slice ends on a complete codepoint
// boundary (see spec §4.3 "Text scanning").
func (p *Parser) scanText() error {
	capN := p.opts.maxTextChunk
	if capN <= 0 {
		capN = 1
	}
	n := 0
	for n < capN {
		b, ok := p.buf.byteAt(n)
		if !ok {
			if p.buf.finished {
				break
			}
			return errNeedMoreInput
		}
		if b == '<' {
			break
		}
		n++
	}
	data := p.buf.slice(0, n)
	cut := textCutLength(data)
	body := p.arena.dupe(data[:cut])
	p.queue.push(textEvent(body))
	p.buf.consume(cut)
	return nil
}

// textCutLength looks back over trailing UTF-8 continuation bytes (top two
// bits 10), at most four of them, to the byte that starts the last
// codepoint of data. A multi-byte sequence whose bytes are all present is
// kept whole; an incomplete one is cut off before its lead byte. If that
// would leave a zero-length emission, it returns 1 so the parser still
// makes forward progress.
func textCutLength(data []byte) int {
	n := len(data)
	lookback := 0
	for n > 0 && lookback < 4 && isContinuationByte(data[n-1]) {
		n--
		lookback++
	}
	if n > 0 && data[n-1] >= 0xC0 {
		need := 2
		switch {
		case data[n-1] >= 0xF0:
			need = 4
		case data[n-1] >= 0xE0:
			need = 3
		}
		if lookback+1 >= need {
			return n - 1 + need
		}
		n--
	}
	if n == 0 {
		return 1
	}
	return n
}

type attrSpan struct {
	nameOff, nameLen int
	valOff, valLen   int
}

// scanStartTag scans "<name attr=\"value\" ... >" or its self-closing form.
// The cursor is at '<'.
func (p *Parser) scanStartTag() error {
	off := 1
	nameOff := off
	nameLen, err := p.scanName(off, p.opts.maxNameLen)
	if err != nil {
		return err
	}
	off += nameLen

	var attrs []attrSpan
	for {
		off += p.skipWhitespace(off)
		b, ok := p.buf.byteAt(off)
		if !ok {
			return errNeedMoreInput
		}
		if b == '>' {
			return p.commitStartTag(nameOff, nameLen, attrs, off+1, false)
		}
		if b == '/' {
			b2, ok2 := p.buf.byteAt(off + 1)
			if !ok2 {
				return errNeedMoreInput
			}
			if b2 != '>' {
				return &parseError{ErrorMalformedMarkup, msgExpectedGT}
			}
			return p.commitStartTag(nameOff, nameLen, attrs, off+2, true)
		}

		attrNameOff := off
		attrNameLen, err := p.scanName(off, p.opts.maxNameLen)
		if err != nil {
			return err
		}
		off += attrNameLen
		off += p.skipWhitespace(off)
		eb, ok := p.buf.byteAt(off)
		if !ok {
			return errNeedMoreInput
		}
		if eb != '=' {
			return &parseError{ErrorMalformedMarkup, msgExpectedEquals}
		}
		off++
		off += p.skipWhitespace(off)
		qb, ok := p.buf.byteAt(off)
		if !ok {
			return errNeedMoreInput
		}
		if qb != '"' && qb != '\'' {
			return &parseError{ErrorMalformedMarkup, msgExpectedQuote}
		}
		off++
		valOff := off
		valLen, err := p.scanQuoted(off, qb, p.opts.maxAttrLen)
		if err != nil {
			return err
		}
		off += valLen + 1

		attrs = append(attrs, attrSpan{attrNameOff, attrNameLen, valOff, valLen})
		if len(attrs) > p.opts.maxAttrsPerElement {
			return &parseError{ErrorLimitExceeded, msgTooManyAttrs}
		}
	}
}

func (p *Parser) commitStartTag(nameOff, nameLen int, attrs []attrSpan, totalLen int, selfClose bool) error {
	name := p.arena.dupe(p.buf.slice(nameOff, nameOff+nameLen))
	p.queue.push(elementStartEvent(name, OriginExplicit))
	for _, a := range attrs {
		attrName := p.arena.dupe(p.buf.slice(a.nameOff, a.nameOff+a.nameLen))
		attrValue := p.arena.dupe(p.buf.slice(a.valOff, a.valOff+a.valLen))
		p.queue.push(attributeEvent(attrName, attrValue))
	}
	if selfClose {
		p.queue.push(elementEndEvent(name, OriginExplicit))
	}
	p.buf.consume(totalLen)
	return nil
}

// scanEndTag scans "</name>". The cursor is at '<'.
func (p *Parser) scanEndTag() error {
	off := 2
	nameOff := off
	nameLen, err := p.scanName(off, p.opts.maxNameLen)
	if err != nil {
		return err
	}
	off += nameLen
	off += p.skipWhitespace(off)
	b, ok := p.buf.byteAt(off)
	if !ok {
		return errNeedMoreInput
	}
	if b != '>' {
		return &parseError{ErrorMalformedMarkup, msgExpectedGT}
	}
	off++
	name := p.arena.dupe(p.buf.slice(nameOff, nameOff+nameLen))
	p.queue.push(elementEndEvent(name, OriginExplicit))
	p.buf.consume(off)
	return nil
}

// scanBang dispatches "<!" constructs to comment or CDATA scanning, or
// reports Unsupported for anything else (DOCTYPE and similar are not part
// of this grammar). The cursor is at '<'.
func (p *Parser) scanBang() error {
	if ok, err := p.matchLiteral(0, litCommentOpen); err != nil {
		return err
	} else if ok {
		return p.scanComment()
	}
	if ok, err := p.matchLiteral(0, litCDataOpen); err != nil {
		return err
	} else if ok {
		return p.scanCdata()
	}
	return &parseError{ErrorUnsupported, msgUnknownBang}
}

func (p *Parser) scanComment() error {
	bodyOff := len(litCommentOpen)
	idx, err := p.findLiteral(bodyOff, litCommentClose)
	if err != nil {
		return err
	}
	total := idx + len(litCommentClose)
	if p.opts.emitComments {
		body := p.arena.dupe(p.buf.slice(bodyOff, idx))
		p.queue.push(commentEvent(body))
	}
	p.buf.consume(total)
	return nil
}

func (p *Parser) scanCdata() error {
	bodyOff := len(litCDataOpen)
	idx, err := p.findLiteral(bodyOff, litCDataClose)
	if err != nil {
		return err
	}
	total := idx + len(litCDataClose)
	if p.opts.emitCdata {
		body := p.arena.dupe(p.buf.slice(bodyOff, idx))
		p.queue.push(cdataEvent(body))
	}
	p.buf.consume(total)
	return nil
}

// scanPI scans "<?target data?>". The cursor is at '<'.
func (p *Parser) scanPI() error {
	idx, err := p.findLiteral(2, litPIClose)
	if err != nil {
		return err
	}
	total := idx + len(litPIClose)
	if !p.opts.emitPI {
		p.buf.consume(total)
		return nil
	}
	interior := p.buf.slice(2, idx)
	target, data, perr := parsePITarget(interior, p.opts.maxNameLen)
	if perr != nil {
		return perr
	}
	targetCopy := p.arena.dupe(target)
	dataCopy := p.arena.dupe(data)
	p.queue.push(piEvent(targetCopy, dataCopy))
	p.buf.consume(total)
	return nil
}

// parsePITarget splits a fully-buffered PI interior into its target name
// and opaque data, per spec §4.3 "Processing-instruction scanning".
func parsePITarget(interior []byte, maxNameLen int) ([]byte, []byte, *parseError) {
	if len(interior) == 0 || !isNameStartByte(interior[0]) {
		return nil, nil, &parseError{ErrorInvalidName, msgInvalidName}
	}
	n := 1
	for n < len(interior) && isNameByte(interior[n]) {
		n++
		if n > maxNameLen {
			return nil, nil, &parseError{ErrorLimitExceeded, msgNameTooLong}
		}
	}
	target := interior[:n]
	rest := interior[n:]
	i := 0
	for i < len(rest) && isWhitespace(rest[i]) {
		i++
	}
	return target, rest[i:], nil
}

// scanName scans a name at relative offset off, enforcing maxLen, and
// returns its length. The first byte must satisfy isNameStartByte.
func (p *Parser) scanName(off, maxLen int) (int, error) {
	b, ok := p.buf.byteAt(off)
	if !ok {
		return 0, errNeedMoreInput
	}
	if !isNameStartByte(b) {
		return 0, &parseError{ErrorInvalidName, msgInvalidName}
	}
	n := 1
	for {
		b, ok := p.buf.byteAt(off + n)
		if !ok {
			return 0, errNeedMoreInput
		}
		if !isNameByte(b) {
			return n, nil
		}
		n++
		if n > maxLen {
			return 0, &parseError{ErrorLimitExceeded, msgNameTooLong}
		}
	}
}

// scanQuoted scans bytes at relative offset off up to (not including) the
// next occurrence of quote, enforcing maxLen.
func (p *Parser) scanQuoted(off int, quote byte, maxLen int) (int, error) {
	n := 0
	for {
		b, ok := p.buf.byteAt(off + n)
		if !ok {
			return 0, errNeedMoreInput
		}
		if b == quote {
			return n, nil
		}
		n++
		if n > maxLen {
			return 0, &parseError{ErrorLimitExceeded, msgAttrValueTooLong}
		}
	}
}

// skipWhitespace skips ASCII whitespace starting at relative offset off and
// returns how many bytes it skipped. Running off the end of buffered data
// simply stops; the caller's next byteAt check surfaces errNeedMoreInput if
// more whitespace might follow.
func (p *Parser) skipWhitespace(off int) int {
	n := 0
	for {
		b, ok := p.buf.byteAt(off + n)
		if !ok || !isWhitespace(b) {
			return n
		}
		n++
	}
}

// matchLiteral reports whether the bytes at relative offset off equal lit.
func (p *Parser) matchLiteral(off int, lit []byte) (bool, error) {
	for i := 0; i < len(lit); i++ {
		b, ok := p.buf.byteAt(off + i)
		if !ok {
			return false, errNeedMoreInput
		}
		if b != lit[i] {
			return false, nil
		}
	}
	return true, nil
}

// findLiteral searches buffered data from relative offset off for lit and
// returns its relative offset.
func (p *Parser) findLiteral(off int, lit []byte) (int, error) {
	data := p.buf.tail(off)
	idx := bytes.Index(data, lit)
	if idx < 0 {
		return 0, errNeedMoreInput
	}
	return off + idx, nil
}
