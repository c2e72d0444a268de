package miim

import (
	"errors"
	"testing"

	"ksz8863-go/errcode"
)

// Compile-time check.
var _ Bus = (*fakeBus)(nil)

// fakeBus records traffic and fails on demand.
type fakeBus struct {
	readErr  error
	writeErr error
	value    uint16

	reads  int
	writes int

	lastPhy uint16
	lastReg uint8
	lastVal uint16
}

func (f *fakeBus) Read(phyAddr, regAddr uint8) (uint16, error) {
	f.reads++
	f.lastPhy = uint16(phyAddr)
	f.lastReg = regAddr
	if f.readErr != nil {
		return 0, f.readErr
	}
	return f.value, nil
}

func (f *fakeBus) Write(phyAddr, regAddr uint8, value uint16) error {
	f.writes++
	f.lastPhy = uint16(phyAddr)
	f.lastReg = regAddr
	f.lastVal = value
	if f.writeErr != nil {
		return f.writeErr
	}
	return nil
}

func TestMapReadsResetValues(t *testing.T) {
	m := New(NewMap())
	phy := m.Phy(0)
	for _, a := range Addresses() {
		st, err := phy.Read(a)
		if err != nil {
			t.Fatalf("Read(%s): %v", a, err)
		}
		if st.Bits() != a.Reset() {
			t.Errorf("%s = %#04x, want reset %#04x", a, st.Bits(), a.Reset())
		}
	}
}

func TestWriteReadBack(t *testing.T) {
	m := New(NewMap())
	bcr := m.Phy(1).BCR()

	var v BCR
	v.SetForce100(true)
	v.SetForceFD(true)
	if err := bcr.Write(v); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := bcr.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != v {
		t.Fatalf("read back %#04x, want %#04x", uint16(got), uint16(v))
	}
}

func TestPhyBounds(t *testing.T) {
	m := New(NewMap())

	for _, idx := range []uint8{0, 1} {
		if _, err := m.Phy(idx).BSR().Read(); err != nil {
			t.Errorf("Phy(%d): %v", idx, err)
		}
	}

	// Construction never fails; access does.
	bad := m.Phy(2)
	if _, err := bad.BSR().Read(); errcode.Of(err) != errcode.OutOfRange {
		t.Errorf("Phy(2) read err = %v, want out_of_range", err)
	}
	if err := bad.BCR().Write(0); errcode.Of(err) != errcode.OutOfRange {
		t.Errorf("Phy(2) write err = %v, want out_of_range", err)
	}
	if err := bad.BCR().Modify(func(*BCR) {}); errcode.Of(err) != errcode.OutOfRange {
		t.Errorf("Phy(2) modify err = %v, want out_of_range", err)
	}
}

func TestPhyBusAddresses(t *testing.T) {
	bus := &fakeBus{}
	m := New(bus)
	for idx, want := range DefaultPhyAddrs {
		if _, err := m.Phy(uint8(idx)).BCR().Read(); err != nil {
			t.Fatalf("Phy(%d): %v", idx, err)
		}
		if bus.lastPhy != uint16(want) {
			t.Errorf("Phy(%d) used bus address %#02x, want %#02x", idx, bus.lastPhy, want)
		}
	}
}

func TestInvalidAddress(t *testing.T) {
	m := New(NewMap())
	phy := m.Phy(0)
	if _, err := phy.Read(Address(0x07)); errcode.Of(err) != errcode.InvalidAddress {
		t.Errorf("read err = %v, want invalid_address", err)
	}
	if err := phy.Write(StateOf(Address(0x07), 0)); errcode.Of(err) != errcode.InvalidAddress {
		t.Errorf("write err = %v, want invalid_address", err)
	}
}

func TestModifyComposition(t *testing.T) {
	m := New(NewMap())
	bcr := m.Phy(0).BCR()

	err := bcr.Modify(func(r *BCR) {
		r.SetEnableAutoneg(false)
		r.SetForceFD(true)
	})
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}

	got, err := bcr.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.EnableAutoneg() {
		t.Errorf("autoneg still enabled")
	}
	if !got.ForceFD() {
		t.Errorf("full duplex not forced")
	}
	// Untouched fields keep their reset state.
	if !got.HPMDIX() {
		t.Errorf("modify disturbed HPMDIX")
	}
}

func TestModifyAbortsOnReadError(t *testing.T) {
	busErr := errors.New("bus stuck")
	bus := &fakeBus{readErr: busErr}
	reg := New(bus).Phy(0).BCR()

	calls := 0
	err := reg.Modify(func(*BCR) { calls++ })
	if !errors.Is(err, busErr) {
		t.Fatalf("err = %v, want %v", err, busErr)
	}
	if calls != 0 {
		t.Errorf("callback ran %d times after failed read", calls)
	}
	if bus.writes != 0 {
		t.Errorf("write issued after failed read")
	}
}

func TestModifyCallsOnce(t *testing.T) {
	bus := &fakeBus{value: 0x1020}
	reg := New(bus).Phy(0).BCR()

	calls := 0
	if err := reg.Modify(func(r *BCR) { calls++; r.SetPowerDown(true) }); err != nil {
		t.Fatalf("Modify: %v", err)
	}
	if calls != 1 {
		t.Fatalf("callback ran %d times, want 1", calls)
	}
	if bus.lastVal != 0x1020|1<<bcrPowerDown {
		t.Errorf("wrote %#04x", bus.lastVal)
	}
}

func TestWriteErrorPassThrough(t *testing.T) {
	busErr := errors.New("nack")
	bus := &fakeBus{writeErr: busErr}
	if err := New(bus).Phy(0).ANAR().Write(0); !errors.Is(err, busErr) {
		t.Fatalf("err = %v, want %v", err, busErr)
	}
}

// Force 100 Mbit full duplex with auto-negotiation off, then undo it.
func TestForceFullDuplexScenario(t *testing.T) {
	m := New(NewMap())
	bcr := m.Phy(0).BCR()

	err := bcr.Modify(func(r *BCR) {
		r.SetEnableAutoneg(false)
		r.SetForce100(true)
		r.SetForceFD(true)
	})
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}
	got, _ := bcr.Read()
	if got.EnableAutoneg() || !got.Force100() || !got.ForceFD() {
		t.Fatalf("forced mode not applied: %#04x", uint16(got))
	}

	err = bcr.Modify(func(r *BCR) {
		r.SetEnableAutoneg(true)
		r.SetRestartAutoneg(true)
	})
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}
	got, _ = bcr.Read()
	if !got.EnableAutoneg() || !got.RestartAutoneg() {
		t.Fatalf("autoneg not restarted: %#04x", uint16(got))
	}
	if !got.Force100() {
		t.Errorf("modify disturbed Force100")
	}
}

func TestMapStateRoundTrip(t *testing.T) {
	m := NewMap()
	st, ok := m.State(AddrANAR)
	if !ok {
		t.Fatal("ANAR missing from map")
	}
	st.Set(0x0123)
	if !m.SetState(st) {
		t.Fatal("SetState rejected ANAR")
	}
	got, _ := m.State(AddrANAR)
	if got.Bits() != 0x0123 {
		t.Fatalf("got %#04x, want 0x0123", got.Bits())
	}
	if got.String() != "ANAR=0x0123" {
		t.Errorf("String = %q", got.String())
	}
	if m.SetState(StateOf(Address(0x09), 0)) {
		t.Errorf("SetState accepted undocumented address")
	}
}
