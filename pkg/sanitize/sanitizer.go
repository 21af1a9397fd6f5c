package sanitize

import (
	"bytes"
	"iter"

	"github.com/mikaryyn/streamxml/pkg/rawxml"
)

// Event is the sanitizer's event type. It is the same vocabulary the raw
// parser emits; the sanitizer only filters and annotates that stream, it
// never introduces a payload shape of its own.
type Event = rawxml.Event

type elementFrame struct {
	name      []byte
	attrNames [][]byte
}

func (f *elementFrame) hasAttr(name []byte) bool {
	for _, n := range f.attrNames {
		if bytes.Equal(n, name) {
			return true
		}
	}
	return false
}

// Sanitizer is the second stage of the parsing pipeline: it consumes the
// raw parser's events and enforces document-level well-formedness (a
// single root element, matched start/end tags, no duplicate attributes, no
// non-whitespace character data outside the root) that the raw parser does
// not itself check. It operates at event granularity and never sees bytes.
//
// Like Parser, a Sanitizer is a push-based state machine: Push feeds one
// upstream event at a time and NextEvent drains whatever that push
// produced — zero or one downstream event. It is not safe for
// concurrent use. The open-element stack holds borrowed references into
// the upstream parser's arena, not copies: a Sanitizer's lifetime must not
// outlive the arena backing the events it was fed for the current
// document.
type Sanitizer struct {
	opts  resolvedOptions
	queue eventQueue

	stack       []elementFrame
	inAttrPhase bool
	rootSeen    bool
	rootClosed  bool
	stopped     bool
	finished    bool
}

// NewSanitizer constructs a Sanitizer. Later options in opts override
// earlier ones; unset fields take their documented defaults.
func NewSanitizer(opts ...Options) *Sanitizer {
	return &Sanitizer{opts: JoinOptions(opts...).resolve()}
}

// Reset returns the sanitizer to its initial state, ready for a new
// document. It retains the capacity of its internal buffers.
func (s *Sanitizer) Reset() {
	if s == nil {
		panic(errNilSanitizer)
	}
	s.queue.reset()
	s.stack = s.stack[:0]
	s.inAttrPhase = false
	s.rootSeen = false
	s.rootClosed = false
	s.stopped = false
	s.finished = false
}

// Push accepts one upstream event, running it through the well-formedness
// checks and enqueuing whatever events it produces for NextEvent to drain.
// Once fail-fast has put the sanitizer into a stopped state, every event
// except Error and EndOfStream is dropped.
func (s *Sanitizer) Push(ev rawxml.Event) {
	if s == nil {
		panic(errNilSanitizer)
	}
	if s.stopped && ev.Kind != rawxml.EventError && ev.Kind != rawxml.EventEndOfStream {
		return
	}

	switch ev.Kind {
	case rawxml.EventNeedMoreInput:
		// Ignored: upstream has nothing for us yet.
	case rawxml.EventElementStart:
		s.pushStart(ev)
	case rawxml.EventAttribute:
		s.pushAttribute(ev)
	case rawxml.EventElementEnd:
		s.pushEnd(ev)
	case rawxml.EventText:
		s.pushText(ev)
	case rawxml.EventComment, rawxml.EventCdata, rawxml.EventPI:
		s.inAttrPhase = false
		s.emit(ev)
	case rawxml.EventError:
		s.emit(ev)
	case rawxml.EventEndOfStream:
		s.Finish()
	default:
		s.emit(ev)
	}
}

func (s *Sanitizer) pushStart(ev rawxml.Event) {
	s.inAttrPhase = false
	if s.rootClosed {
		s.fail(rawxml.ErrorMalformedMarkup, msgMultipleRoots)
		return
	}
	if s.opts.maxDepth > 0 && len(s.stack) >= s.opts.maxDepth {
		s.fail(rawxml.ErrorLimitExceeded, msgMaxDepthExceeded)
		return
	}
	s.stack = append(s.stack, elementFrame{name: ev.Name})
	s.rootSeen = true
	s.inAttrPhase = true
	s.emit(ev)
}

func (s *Sanitizer) pushAttribute(ev rawxml.Event) {
	if !s.inAttrPhase {
		s.fail(rawxml.ErrorMalformedMarkup, msgAttributeWithoutTag)
		return
	}
	top := &s.stack[len(s.stack)-1]
	if top.hasAttr(ev.Name) {
		s.fail(rawxml.ErrorMalformedMarkup, msgDuplicateAttribute)
		return
	}
	top.attrNames = append(top.attrNames, ev.Name)
	s.emit(ev)
}

func (s *Sanitizer) pushEnd(ev rawxml.Event) {
	s.inAttrPhase = false
	if len(s.stack) == 0 {
		s.fail(rawxml.ErrorMalformedMarkup, msgUnmatchedEndTag)
		return
	}
	top := s.stack[len(s.stack)-1]
	if !bytes.Equal(top.name, ev.Name) {
		s.fail(rawxml.ErrorMalformedMarkup, msgMismatchedEndTag)
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
	if len(s.stack) == 0 && s.rootSeen {
		s.rootClosed = true
	}
	s.emit(ev)
}

func (s *Sanitizer) pushText(ev rawxml.Event) {
	s.inAttrPhase = false
	if len(s.stack) == 0 && !isWhitespaceBytes(ev.Text) {
		s.fail(rawxml.ErrorMalformedMarkup, msgTextOutsideRoot)
		return
	}
	s.emit(ev)
}

func isWhitespaceBytes(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}

// Finish signals that no further upstream events will arrive. Equivalent
// to pushing an EventEndOfStream. If the sanitizer has already stopped
// under fail-fast, this only transitions to the finished state: it does
// not run the unclosed-element or missing-root checks, and does not emit
// a second, possibly misleading Error after the document was already
// rejected ("once stopped, stay stopped").
func (s *Sanitizer) Finish() {
	if s == nil {
		panic(errNilSanitizer)
	}
	if s.finished {
		return
	}
	s.inAttrPhase = false
	if !s.stopped {
		switch {
		case len(s.stack) > 0:
			s.fail(rawxml.ErrorUnexpectedEOF, msgUnclosedAtEOF)
		case !s.rootSeen:
			s.fail(rawxml.ErrorMalformedMarkup, msgNoRootElement)
		}
	}
	s.finished = true
}

func (s *Sanitizer) emit(ev rawxml.Event) {
	s.queue.push(ev)
	if ev.Kind == rawxml.EventError && s.opts.failFast {
		s.stopped = true
	}
}

// fail enqueues a sanitizer-originated Error. These always carry offset
// zero: the sanitizer operates on events, not bytes, and has no byte
// position to report.
func (s *Sanitizer) fail(kind rawxml.ErrorKind, message string) {
	s.emit(rawxml.Event{Kind: rawxml.EventError, ErrKind: kind, Message: message})
}

// NextEvent returns the next sanitized event: a queued event if one is
// available, NeedMoreInput if the queue is empty and Finish has not been
// called, or EndOfStream if the queue is empty and Finish has been called.
func (s *Sanitizer) NextEvent() rawxml.Event {
	if s == nil {
		panic(errNilSanitizer)
	}
	if !s.queue.empty() {
		return s.queue.pop()
	}
	if s.finished {
		return rawxml.Event{Kind: rawxml.EventEndOfStream}
	}
	return rawxml.Event{Kind: rawxml.EventNeedMoreInput}
}

// All returns a lazy sequence of the events queued by calls to Push so far,
// stopping at the first NeedMoreInput or EndOfStream (which it yields once
// before stopping) rather than spinning. Callers that need to push more
// upstream events mid-stream should drive NextEvent directly instead.
func (s *Sanitizer) All() iter.Seq[rawxml.Event] {
	return func(yield func(rawxml.Event) bool) {
		for {
			ev := s.NextEvent()
			if !yield(ev) {
				return
			}
			if ev.Kind == rawxml.EventNeedMoreInput || ev.Kind == rawxml.EventEndOfStream {
				return
			}
		}
	}
}
