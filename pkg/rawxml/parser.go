package rawxml

import "iter"

// Parser is a resumable, push-based recognizer of a simplified XML element
// grammar. Callers feed it arbitrary byte chunks and drain events with
// NextEvent; it never blocks and never re-reads memory the caller has
// already handed it back.
//
// A Parser is not safe for concurrent use. Its emitted Events alias arena
// memory and are only valid until the next Reset.
type Parser struct {
	buf   inputBuffer
	arena arena
	queue eventQueue
	opts  resolvedOptions

	modeRejected bool
}

// NewParser constructs a Parser. Later options in opts override earlier
// ones; unset fields take their documented defaults.
func NewParser(opts ...Options) *Parser {
	return &Parser{opts: JoinOptions(opts...).resolve()}
}

// Feed appends p to the parser's input. It never blocks and never discards
// bytes the caller has already fed.
func (p *Parser) Feed(data []byte) {
	if p == nil {
		panic(errNilParser)
	}
	p.buf.feed(data)
}

// Finish signals that no further Feed calls will occur. Constructs still
// open at this point surface as an UnexpectedEOF Error on the next
// NextEvent call, followed by EndOfStream.
func (p *Parser) Finish() {
	if p == nil {
		panic(errNilParser)
	}
	p.buf.finish()
}

// Reset returns the parser to its initial state, ready to recognize a new
// document. It retains the capacity of its internal buffers.
func (p *Parser) Reset() {
	if p == nil {
		panic(errNilParser)
	}
	p.buf.reset()
	p.arena.reset()
	p.queue.reset()
	p.modeRejected = false
}

// NextEvent returns the next event the parser can produce from bytes fed so
// far, or EventNeedMoreInput if none can be recognized yet, or
// EventEndOfStream once Finish has been called and every construct has been
// drained.
func (p *Parser) NextEvent() Event {
	if p == nil {
		panic(errNilParser)
	}
	for {
		if !p.queue.empty() {
			return p.queue.pop()
		}

		if p.modeRejected {
			p.buf.consume(p.buf.remaining())
			if p.buf.finished {
				return endOfStreamEvent
			}
			return needMoreInputEvent
		}
		if p.opts.mode != ModeXML {
			p.modeRejected = true
			return errorEvent(ErrorUnsupported, msgUnsupportedMode, p.buf.offset())
		}

		p.buf.compact()

		b0, ok := p.buf.byteAt(0)
		if !ok {
			if p.buf.finished {
				return endOfStreamEvent
			}
			return needMoreInputEvent
		}

		constructStart := p.buf.offset()
		var err error
		if b0 != '<' {
			err = p.scanText()
		} else {
			b1, ok1 := p.buf.byteAt(1)
			switch {
			case !ok1:
				err = errNeedMoreInput
			case b1 == '/':
				err = p.scanEndTag()
			case b1 == '!':
				err = p.scanBang()
			case b1 == '?':
				err = p.scanPI()
			default:
				err = p.scanStartTag()
			}
		}

		if err == nil {
			continue
		}
		if err == errNeedMoreInput {
			if !p.buf.finished {
				return needMoreInputEvent
			}
			p.buf.consume(p.buf.remaining())
			return errorEvent(ErrorUnexpectedEOF, msgUnexpectedEOF, constructStart)
		}
		if pe, ok := err.(*parseError); ok {
			p.buf.consume(1)
			return errorEvent(pe.kind, pe.message, constructStart)
		}
		panic(err)
	}
}

// All returns a lazy sequence of events, stopping at the first
// EventNeedMoreInput or EventEndOfStream (which it yields once before
// stopping) rather than spinning. Callers that need to feed more input
// mid-stream should drive NextEvent directly instead.
func (p *Parser) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev := p.NextEvent()
			if !yield(ev) {
				return
			}
			if ev.Kind == EventNeedMoreInput || ev.Kind == EventEndOfStream {
				return
			}
		}
	}
}
