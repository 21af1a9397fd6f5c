package rawxml

import "testing"

func TestInputBufferFeedAndByteAt(t *testing.T) {
	var b inputBuffer
	b.feed([]byte("abc"))

	for i, want := range []byte("abc") {
		got, ok := b.byteAt(i)
		if !ok || got != want {
			t.Fatalf("byteAt(%d) = (%q, %v), want (%q, true)", i, got, ok, want)
		}
	}
	if _, ok := b.byteAt(3); ok {
		t.Fatalf("byteAt(3) reported ok for a 3-byte buffer")
	}
}

func TestInputBufferConsumeAndOffset(t *testing.T) {
	var b inputBuffer
	b.feed([]byte("abcdef"))
	b.consume(2)

	got, ok := b.byteAt(0)
	if !ok || got != 'c' {
		t.Fatalf("after consume(2), byteAt(0) = (%q, %v), want ('c', true)", got, ok)
	}
	if b.offset() != 2 {
		t.Fatalf("offset() = %d, want 2", b.offset())
	}

	b.consume(100)
	if b.remaining() != 0 {
		t.Fatalf("consume(100) on 4 remaining bytes left remaining() = %d, want 0", b.remaining())
	}
	if b.offset() != 6 {
		t.Fatalf("offset() after over-consume = %d, want 6 (clamped)", b.offset())
	}
}

func TestInputBufferSliceClamped(t *testing.T) {
	var b inputBuffer
	b.feed([]byte("abcdef"))
	b.consume(1)

	got := b.slice(0, 100)
	if string(got) != "bcdef" {
		t.Fatalf("slice(0, 100) = %q, want %q", got, "bcdef")
	}

	got = b.slice(2, 2)
	if len(got) != 0 {
		t.Fatalf("slice(2, 2) = %q, want empty", got)
	}
}

func TestInputBufferCompact(t *testing.T) {
	var b inputBuffer
	b.feed(make([]byte, compactThreshold*2))
	b.consume(compactThreshold + 1)

	b.compact()
	if b.cursor != 0 {
		t.Fatalf("compact() left cursor at %d, want 0", b.cursor)
	}
	if b.remaining() != compactThreshold-1 {
		t.Fatalf("compact() changed remaining() to %d, want %d", b.remaining(), compactThreshold-1)
	}
	if b.offset() != int64(compactThreshold+1) {
		t.Fatalf("compact() changed offset() to %d, want %d", b.offset(), compactThreshold+1)
	}
}

func TestInputBufferCompactBelowThresholdIsNoop(t *testing.T) {
	var b inputBuffer
	b.feed(make([]byte, 100))
	b.consume(60)
	b.compact()
	if b.cursor != 60 {
		t.Fatalf("compact() moved cursor below threshold: cursor = %d, want 60", b.cursor)
	}
}

func TestInputBufferFinishAndReset(t *testing.T) {
	var b inputBuffer
	b.feed([]byte("abc"))
	b.finish()
	if !b.finished {
		t.Fatalf("finish() did not set finished")
	}

	b.reset()
	if b.finished || b.cursor != 0 || b.consumed != 0 || len(b.data) != 0 {
		t.Fatalf("reset() left buffer = %+v, want zeroed", b)
	}
}
