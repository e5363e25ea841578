package acf

import "testing"

func TestCursorPrimitiveReads(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	c := newCursor(data, 0)

	if got := c.u8(); got != 0x01 {
		t.Fatalf("u8() = %#x, want 0x01", got)
	}
	if got := c.u16(); got != 0x0302 {
		t.Fatalf("u16() = %#x, want 0x0302", got)
	}
	if got := c.offset; got != 3 {
		t.Fatalf("offset after u8+u16 = %d, want 3", got)
	}

	c2 := newCursor(data, 0)
	if got := c2.u32(3); got != 0x04030201 {
		t.Fatalf("u32(3) = %#x, want 0x04030201", got)
	}
	if c2.offset != 3 {
		t.Fatalf("u32(3) advanced by %d, want 3", c2.offset)
	}
}

func TestCursorSignedReads(t *testing.T) {
	data := []byte{0xFE, 0xFF} // -2 as int16 LE
	c := newCursor(data, 0)
	if got := c.s16(); got != -2 {
		t.Fatalf("s16() = %d, want -2", got)
	}
}

func TestCursorXYOffsetScalesVerticalByHalfStride(t *testing.T) {
	// dx=1, dy=1, stride=320 -> 1 + 1*160 = 161
	data := []byte{1, 1}
	c := newCursor(data, 0)
	if got := c.xyOffset(320); got != 161 {
		t.Fatalf("xyOffset(320) = %d, want 161", got)
	}

	// dx=-1, dy=-1, stride=320 -> -1 + -1*160 = -161
	data2 := []byte{0xFF, 0xFF}
	c2 := newCursor(data2, 0)
	if got := c2.xyOffset(320); got != -161 {
		t.Fatalf("xyOffset(320) with negative dx/dy = %d, want -161", got)
	}
}

func TestCursorBytesDoesNotAdvance(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	c := newCursor(data, 1)
	got := c.bytes(2)
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("bytes(2) at offset 1 = %v, want [2 3]", got)
	}
	if c.offset != 1 {
		t.Fatalf("bytes() must not advance the cursor, offset = %d", c.offset)
	}
}

func TestCursorPeekU32DoesNotAdvance(t *testing.T) {
	data := []byte{1, 0, 0, 0, 2, 0, 0, 0}
	c := newCursor(data, 0)
	if got := c.peekU32(4); got != 2 {
		t.Fatalf("peekU32(4) = %d, want 2", got)
	}
	if c.offset != 0 {
		t.Fatalf("peekU32 must not advance the cursor, offset = %d", c.offset)
	}
}

func TestCursorOverrunAndRemaining(t *testing.T) {
	data := []byte{1, 2, 3}
	c := newCursor(data, 0)
	c.skip(3)
	if c.overrun() {
		t.Fatalf("cursor sitting exactly at end of data should not be overrun")
	}
	if got := c.remaining(); got != 0 {
		t.Fatalf("remaining() at end = %d, want 0", got)
	}
	c.skip(1)
	if !c.overrun() {
		t.Fatalf("cursor one byte past end should be overrun")
	}
	if got := c.remaining(); got != -1 {
		t.Fatalf("remaining() one byte past end = %d, want -1", got)
	}
}
