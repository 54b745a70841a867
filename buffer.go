package fjson

// buffer is the serialization output sink: an owned contiguous byte
// region that doubles its capacity on overflow, keeping appends
// amortized O(1). One byte of headroom is always reserved, so
// length < cap(data) holds at all times.
type buffer struct {
	data   []byte // len(data) is the capacity
	length int
}

func newBuffer(capacity int) *buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &buffer{data: make([]byte, capacity)}
}

// ensure grows the buffer until length+additional < capacity, preserving
// existing bytes. Capacity doubles repeatedly, so a run of small appends
// triggers at most O(log n) reallocations.
func (b *buffer) ensure(additional int) {
	needed := b.length + additional
	if needed < len(b.data) {
		return
	}
	capacity := len(b.data)
	for capacity <= needed {
		capacity *= 2
		if capacity <= 0 {
			panic("fjson: buffer capacity overflow")
		}
	}
	grown := make([]byte, capacity)
	copy(grown, b.data[:b.length])
	b.data = grown
}

func (b *buffer) appendBytes(p []byte) {
	b.ensure(len(p) + 1)
	copy(b.data[b.length:], p)
	b.length += len(p)
}

func (b *buffer) appendString(s string) {
	b.ensure(len(s) + 1)
	copy(b.data[b.length:], s)
	b.length += len(s)
}

func (b *buffer) appendByte(c byte) {
	b.ensure(2)
	b.data[b.length] = c
	b.length++
}

// bytes returns the written region. The slice aliases the buffer's
// backing store and is only valid until the next append.
func (b *buffer) bytes() []byte { return b.data[:b.length] }

func (b *buffer) string() string { return string(b.data[:b.length]) }
