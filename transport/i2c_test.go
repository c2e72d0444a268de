package transport

import (
	"errors"
	"testing"

	"tinygo.org/x/drivers"

	"ksz8863-go/smi"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

// Scripted KSZ8863-like fake: a 256-byte register space behind the
// address-then-data I2C framing.
type fakeI2C struct {
	regs [256]byte
	err  error

	txs     int
	lastAddr uint16
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.txs++
	f.lastAddr = addr
	if f.err != nil {
		return f.err
	}

	// Register read: one-byte address write, one-byte read.
	if len(w) == 1 && len(r) == 1 {
		r[0] = f.regs[w[0]]
		return nil
	}

	// Register write: address then value.
	if len(w) == 2 && len(r) == 0 {
		f.regs[w[0]] = w[1]
		return nil
	}

	return errors.New("unexpected framing")
}

func TestReadWriteFraming(t *testing.T) {
	bus := &fakeI2C{}
	bus.regs[0x00] = 0x88

	tr := NewSMIOverI2C(bus, 0)

	v, err := tr.Read(0x00)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != 0x88 {
		t.Fatalf("read %#02x, want 0x88", v)
	}
	if bus.lastAddr != AddressDefault {
		t.Errorf("used I2C address %#02x, want %#02x", bus.lastAddr, AddressDefault)
	}

	if err := tr.Write(0x03, 0x04); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if bus.regs[0x03] != 0x04 {
		t.Fatalf("register not written: %#02x", bus.regs[0x03])
	}
	if bus.txs != 2 {
		t.Errorf("%d transactions, want 2", bus.txs)
	}
}

func TestCustomAddress(t *testing.T) {
	bus := &fakeI2C{}
	tr := NewSMIOverI2C(bus, 0x10)
	if _, err := tr.Read(0x00); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if bus.lastAddr != 0x10 {
		t.Errorf("used I2C address %#02x, want 0x10", bus.lastAddr)
	}
}

func TestErrorPassThrough(t *testing.T) {
	busErr := errors.New("nack")
	tr := NewSMIOverI2C(&fakeI2C{err: busErr}, 0)
	if _, err := tr.Read(0x00); !errors.Is(err, busErr) {
		t.Errorf("read err = %v, want %v", err, busErr)
	}
	if err := tr.Write(0x00, 0); !errors.Is(err, busErr) {
		t.Errorf("write err = %v, want %v", err, busErr)
	}
}

// The transport slots under the typed wrapper unchanged.
func TestTypedAccessOverI2C(t *testing.T) {
	bus := &fakeI2C{}
	for _, a := range smi.Addresses() {
		bus.regs[uint8(a)] = a.Reset()
	}

	s := smi.New(NewSMIOverI2C(bus, 0))

	id, err := s.ChipID0().Read()
	if err != nil {
		t.Fatalf("ChipID0: %v", err)
	}
	if id.FamilyID() != 0x88 {
		t.Fatalf("FamilyID = %#02x, want 0x88", id.FamilyID())
	}

	err = s.GC1().Modify(func(r *smi.GC1) { r.SetPassAllFrames(true) })
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}
	if bus.regs[uint8(smi.AddrGC1)] != 0x34|0x80 {
		t.Fatalf("GC1 = %#02x, want 0xB4", bus.regs[uint8(smi.AddrGC1)])
	}
}
