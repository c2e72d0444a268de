package bitfield

import "testing"

func TestBit(t *testing.T) {
	var v uint16 = 0x8001
	if !Bit(v, 0) || !Bit(v, 15) {
		t.Fatalf("expected bits 0 and 15 set in %#04x", v)
	}
	if Bit(v, 7) {
		t.Fatalf("bit 7 should be clear in %#04x", v)
	}
}

func TestSetBit(t *testing.T) {
	var v uint8
	v = SetBit(v, 3, true)
	if v != 0x08 {
		t.Fatalf("got %#02x, want 0x08", v)
	}
	// Setting an already-set bit is a no-op.
	if SetBit(v, 3, true) != v {
		t.Fatalf("set of set bit changed value")
	}
	v = SetBit(v, 3, false)
	if v != 0 {
		t.Fatalf("got %#02x, want 0", v)
	}
}

func TestFieldGetInsert(t *testing.T) {
	f := Field[uint16]{Off: 13, Width: 2}
	var v uint16 = 0x6000
	if got := f.Get(v); got != 0x3 {
		t.Fatalf("Get = %#x, want 0x3", got)
	}
	v = f.Insert(0, 0x2)
	if v != 0x4000 {
		t.Fatalf("Insert = %#04x, want 0x4000", v)
	}
}

func TestFieldInsertTruncates(t *testing.T) {
	f := Field[uint8]{Off: 2, Width: 2}
	// Over-width values keep only the low Width bits.
	v := f.Insert(0xFF, 0x7)
	if got := f.Get(v); got != 0x3 {
		t.Fatalf("Get after truncating Insert = %#x, want 0x3", got)
	}
	// Bits outside the field are untouched.
	if v&^f.Mask() != 0xFF&^f.Mask() {
		t.Fatalf("Insert disturbed bits outside the field: %#02x", v)
	}
}

func TestFieldInsertFullWidth(t *testing.T) {
	f := Field[uint8]{Off: 0, Width: 8}
	if got := f.Insert(0x12, 0xAB); got != 0xAB {
		t.Fatalf("full-width Insert = %#02x, want 0xAB", got)
	}
	if f.Mask() != 0xFF {
		t.Fatalf("full-width Mask = %#02x, want 0xFF", f.Mask())
	}
}

func TestFieldIsolation(t *testing.T) {
	lo := Field[uint16]{Off: 0, Width: 9}
	hi := Field[uint16]{Off: 13, Width: 2}
	v := lo.Insert(0, 0x1FF)
	v = hi.Insert(v, 0x3)
	if lo.Get(v) != 0x1FF || hi.Get(v) != 0x3 {
		t.Fatalf("fields interfered: %#04x", v)
	}
	v = lo.Insert(v, 0)
	if hi.Get(v) != 0x3 {
		t.Fatalf("clearing low field disturbed high field: %#04x", v)
	}
}
