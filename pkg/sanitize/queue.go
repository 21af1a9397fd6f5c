package sanitize

import "github.com/mikaryyn/streamxml/pkg/rawxml"

// eventQueue is the FIFO that holds the events Push and Finish produce
// (at most one per call; none when an event is suppressed) until NextEvent
// drains them. Mirrors the raw
// parser's internal queue; duplicated here because rawxml's is unexported
// and the two packages' events happen to share a type.
type eventQueue struct {
	items []rawxml.Event
	head  int
}

func (q *eventQueue) push(ev rawxml.Event) {
	q.items = append(q.items, ev)
}

func (q *eventQueue) empty() bool {
	return q.head >= len(q.items)
}

func (q *eventQueue) pop() rawxml.Event {
	ev := q.items[q.head]
	q.head++
	if q.head >= len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return ev
}

func (q *eventQueue) reset() {
	q.items = q.items[:0]
	q.head = 0
}
