package fjson

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuffer_AppendPreservesContent(t *testing.T) {
	b := newBuffer(4)
	b.appendString("hello")
	b.appendByte(' ')
	b.appendBytes([]byte("world"))
	if got := b.string(); got != "hello world" {
		t.Errorf("got %q", got)
	}
	if !bytes.Equal(b.bytes(), []byte("hello world")) {
		t.Errorf("bytes() disagrees with string()")
	}
}

// Headroom is reserved on every append, so length never catches up
// with capacity.
func TestBuffer_LengthBelowCapacity(t *testing.T) {
	b := newBuffer(1)
	for i := 0; i < 1000; i++ {
		b.appendByte(byte('a' + i%26))
		if b.length >= len(b.data) {
			t.Fatalf("invariant violated after %d appends: length=%d capacity=%d",
				i+1, b.length, len(b.data))
		}
	}
	if b.length != 1000 {
		t.Errorf("length = %d, want 1000", b.length)
	}
}

func TestBuffer_DoublingGrowth(t *testing.T) {
	b := newBuffer(8)
	b.appendString(strings.Repeat("x", 100))
	// Capacity doubles from the initial size, so it stays a
	// power-of-two multiple of 8.
	c := len(b.data)
	for c > 8 {
		if c%2 != 0 {
			t.Fatalf("capacity %d is not a doubling of 8", len(b.data))
		}
		c /= 2
	}
	if c != 8 {
		t.Errorf("capacity %d is not a doubling of 8", len(b.data))
	}
}

func TestBuffer_LargeSingleAppend(t *testing.T) {
	b := newBuffer(2)
	big := strings.Repeat("abc", 50000)
	b.appendString("prefix-")
	b.appendString(big)
	if got := b.string(); got != "prefix-"+big {
		t.Errorf("large append corrupted content (len %d)", len(got))
	}
}

func TestBuffer_MinimumCapacity(t *testing.T) {
	b := newBuffer(0)
	b.appendByte('x')
	if b.string() != "x" {
		t.Errorf("zero-capacity request should still work")
	}
}
