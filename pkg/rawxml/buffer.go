package rawxml

const compactThreshold = 4096

// inputBuffer holds unconsumed bytes, exposes a read cursor, and tracks an
// absolute offset counter for diagnostics. Bytes are physically retained
// until a compaction pass copies the unconsumed suffix to the front.
type inputBuffer struct {
	data     []byte
	cursor   int
	consumed int64 // absolute offset of data[cursor], i.e. bytes consumed since construction or reset
	finished bool
}

// feed appends bytes to the buffer. It never blocks and never discards
// already-buffered bytes.
func (b *inputBuffer) feed(p []byte) {
	if len(p) == 0 {
		return
	}
	b.data = append(b.data, p...)
}

// finish marks the end of input. No further feed calls are expected.
func (b *inputBuffer) finish() {
	b.finished = true
}

// byteAt returns the byte at cursor+i and whether it is available.
func (b *inputBuffer) byteAt(i int) (byte, bool) {
	idx := b.cursor + i
	if idx >= len(b.data) {
		return 0, false
	}
	return b.data[idx], true
}

// slice returns the unconsumed bytes from cursor+from to cursor+to,
// clamped to what is actually buffered.
func (b *inputBuffer) slice(from, to int) []byte {
	lo := b.cursor + from
	hi := b.cursor + to
	if lo < b.cursor {
		lo = b.cursor
	}
	if hi > len(b.data) {
		hi = len(b.data)
	}
	if lo >= hi {
		return nil
	}
	return b.data[lo:hi]
}

// tail returns the unconsumed bytes from cursor+off through the end of the
// buffer, for substring searches that don't yet know their end offset.
func (b *inputBuffer) tail(off int) []byte {
	idx := b.cursor + off
	if idx < b.cursor {
		idx = b.cursor
	}
	if idx > len(b.data) {
		idx = len(b.data)
	}
	return b.data[idx:]
}

// remaining reports how many unconsumed bytes are buffered.
func (b *inputBuffer) remaining() int {
	return len(b.data) - b.cursor
}

// consume advances the cursor by n bytes and adds n to the absolute offset.
func (b *inputBuffer) consume(n int) {
	if n <= 0 {
		return
	}
	if b.cursor+n > len(b.data) {
		n = len(b.data) - b.cursor
	}
	b.cursor += n
	b.consumed += int64(n)
}

// offset returns the absolute byte offset of the read cursor.
func (b *inputBuffer) offset() int64 {
	return b.consumed
}

// compact moves the unconsumed suffix to offset zero once the cursor has
// advanced far enough that the copy is worth amortizing: when the cursor is
// at least compactThreshold and has passed the midpoint of the buffer.
func (b *inputBuffer) compact() {
	if b.cursor < compactThreshold {
		return
	}
	if b.cursor <= len(b.data)/2 {
		return
	}
	n := copy(b.data, b.data[b.cursor:])
	b.data = b.data[:n]
	b.cursor = 0
}

// reset returns the buffer to its initial state while retaining capacity.
func (b *inputBuffer) reset() {
	b.data = b.data[:0]
	b.cursor = 0
	b.consumed = 0
	b.finished = false
}
