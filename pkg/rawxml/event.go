package rawxml

// Event is a single unit of the raw parser's output: a structural marker,
// character data, an ancillary construct, an Error, or a control signal.
//
// Name, Value, Text, Target, and Data reference memory owned by the
// Parser's payload arena. They are valid from emission until the next
// Reset or destruction of the Parser that produced them; callers must not
// retain them past that point.
type Event struct {
	Kind EventKind

	// Name is set for ElementStart, Attribute, and ElementEnd.
	Name []byte
	// Origin is set for ElementStart and ElementEnd.
	Origin Origin

	// Value is set for Attribute.
	Value []byte

	// Text is set for Text and Cdata.
	Text []byte

	// Comment is set for Comment.
	Comment []byte

	// Target and Data are set for ProcessingInstruction.
	Target []byte
	Data   []byte

	// ErrKind, Message, and Offset are set for Error.
	ErrKind ErrorKind
	Message string
	Offset  int64
}

func elementStartEvent(name []byte, origin Origin) Event {
	return Event{Kind: EventElementStart, Name: name, Origin: origin}
}

func attributeEvent(name, value []byte) Event {
	return Event{Kind: EventAttribute, Name: name, Value: value}
}

func elementEndEvent(name []byte, origin Origin) Event {
	return Event{Kind: EventElementEnd, Name: name, Origin: origin}
}

func textEvent(text []byte) Event {
	return Event{Kind: EventText, Text: text}
}

func commentEvent(text []byte) Event {
	return Event{Kind: EventComment, Comment: text}
}

func cdataEvent(text []byte) Event {
	return Event{Kind: EventCdata, Text: text}
}

func piEvent(target, data []byte) Event {
	return Event{Kind: EventPI, Target: target, Data: data}
}

func errorEvent(kind ErrorKind, message string, offset int64) Event {
	return Event{Kind: EventError, ErrKind: kind, Message: message, Offset: offset}
}

var needMoreInputEvent = Event{Kind: EventNeedMoreInput}
var endOfStreamEvent = Event{Kind: EventEndOfStream}
