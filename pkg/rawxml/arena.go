package rawxml

// arena is a bulk allocator for the byte slices embedded in emitted events.
// Allocations are never freed individually; reset reclaims everything at
// once while retaining the backing array's capacity, so that a parser
// processing many documents amortizes allocation across them.
type arena struct {
	data []byte
}

// dupe copies src into the arena and returns a slice backed by arena
// storage. The returned slice is valid until the next reset.
func (a *arena) dupe(src []byte) []byte {
	if len(src) == 0 {
		if a.data == nil {
			a.data = make([]byte, 0, 64)
		}
		start := len(a.data)
		return a.data[start:start]
	}
	start := len(a.data)
	a.data = append(a.data, src...)
	return a.data[start : start+len(src)]
}

// reset reclaims all arena memory while retaining capacity.
func (a *arena) reset() {
	a.data = a.data[:0]
}
