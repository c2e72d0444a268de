package smi

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
	value    uint8

	reads  int
	writes int

	lastReg uint8
	lastVal uint8
}

func (f *fakeBus) Read(regAddr uint8) (uint8, error) {
	f.reads++
	f.lastReg = regAddr
	if f.readErr != nil {
		return 0, f.readErr
	}
	return f.value, nil
}

func (f *fakeBus) Write(regAddr uint8, value uint8) error {
	f.writes++
	f.lastReg = regAddr
	f.lastVal = value
	if f.writeErr != nil {
		return f.writeErr
	}
	return nil
}

func TestMapReadsResetValues(t *testing.T) {
	s := New(NewMap())
	for _, a := range Addresses() {
		st, err := s.Read(a)
		if err != nil {
			t.Fatalf("Read(%s): %v", a, err)
		}
		if st.Bits() != a.Reset() {
			t.Errorf("%s = %#02x, want reset %#02x", a, st.Bits(), a.Reset())
		}
	}
}

func TestMapCompleteness(t *testing.T) {
	m := NewMap()
	as := Addresses()
	if len(as) != NumRegisters() {
		t.Fatalf("got %d addresses, want %d", len(as), NumRegisters())
	}
	if len(m.States()) != len(as) {
		t.Fatalf("map holds %d states, want %d", len(m.States()), len(as))
	}
	for _, a := range as {
		if _, ok := m.State(a); !ok {
			t.Errorf("%s missing from map", a)
		}
	}
	// A sparse gap and the factory test space stay invalid.
	for _, a := range []Address{0x08, 0x3A, 0x44, 0xC5, 0xFF} {
		if a.Valid() {
			t.Errorf("%#02x should not be a documented register", uint8(a))
		}
		if _, err := m.Read(uint8(a)); errcode.Of(err) != errcode.InvalidAddress {
			t.Errorf("read of %#02x err = %v, want invalid_address", uint8(a), err)
		}
	}
}

func TestResetValues(t *testing.T) {
	want := map[Address]uint8{
		AddrChipID0:                    0x88,
		AddrChipID1:                    0x31,
		AddrGC1:                        0x34,
		AddrGC2:                        0xF0,
		AddrGC5:                        0x63,
		AddrGC11:                       0xFA,
		AddrGC13:                       0x08,
		AddrPort1Ctrl1:                 0x07,
		AddrPort2Ctrl12:                0x1F,
		AddrPort2Status1:               0x80,
		AddrPort3Status1:               0x00,
		AddrMACAddr2:                   0xA1,
		AddrHighPriorityPacketBufferQ3: 0x45,
		AddrHighPriorityPacketBufferQ0: 0x15,
		AddrPort3TxQSplitQ0:            0x80,
		AddrSleepMode:                  0x50,
	}
	for a, v := range want {
		if got := a.Reset(); got != v {
			t.Errorf("%s reset = %#02x, want %#02x", a, got, v)
		}
	}
}

func TestChipIDDecoding(t *testing.T) {
	s := New(NewMap())
	id0, err := s.ChipID0().Read()
	if err != nil {
		t.Fatalf("ChipID0: %v", err)
	}
	if id0.FamilyID() != 0x88 {
		t.Errorf("FamilyID = %#02x, want 0x88", id0.FamilyID())
	}
	id1, err := s.ChipID1().Read()
	if err != nil {
		t.Fatalf("ChipID1: %v", err)
	}
	if id1.ChipID() != 0x3 {
		t.Errorf("ChipID = %#x, want 0x3", id1.ChipID())
	}
	if !id1.StartSwitch() {
		t.Errorf("switch should be started at reset")
	}
}

// Turn off global flow control, the GC1 write-up's worked example.
func TestGC1FlowControlScenario(t *testing.T) {
	s := New(NewMap())
	gc1 := s.GC1()

	v, err := gc1.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !v.TxFlowControl() || !v.RxFlowControl() || !v.Aging() {
		t.Fatalf("unexpected reset state: %#02x", uint8(v))
	}

	err = gc1.Modify(func(r *GC1) {
		r.SetTxFlowControl(false)
		r.SetRxFlowControl(false)
	})
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}

	got, _ := gc1.Read()
	if got.TxFlowControl() || got.RxFlowControl() {
		t.Errorf("flow control still on: %#02x", uint8(got))
	}
	if !got.Aging() {
		t.Errorf("modify disturbed Aging")
	}
	if uint8(got) != 0x04 {
		t.Errorf("GC1 = %#02x, want 0x04", uint8(got))
	}
}

func TestPortBounds(t *testing.T) {
	s := New(NewMap())

	for n := uint8(1); n <= PortCount; n++ {
		if _, err := s.Port(n).Ctrl0().Read(); err != nil {
			t.Errorf("Port(%d): %v", n, err)
		}
	}

	for _, n := range []uint8{0, 4} {
		p := s.Port(n)
		if _, err := p.Ctrl0().Read(); errcode.Of(err) != errcode.OutOfRange {
			t.Errorf("Port(%d) read err = %v, want out_of_range", n, err)
		}
		if err := p.Ctrl0().Write(0); errcode.Of(err) != errcode.OutOfRange {
			t.Errorf("Port(%d) write err = %v, want out_of_range", n, err)
		}
	}

	if _, err := s.Port(1).IngressRateLimit(4).Read(); errcode.Of(err) != errcode.OutOfRange {
		t.Errorf("queue 4 err = %v, want out_of_range", err)
	}
}

func TestPort3MissingRegisters(t *testing.T) {
	s := New(NewMap())
	p3 := s.Port(3)

	// The MII port has no PHY, so the PHY-side bank stops early.
	if _, err := p3.PHYSpecial().Read(); errcode.Of(err) != errcode.InvalidAddress {
		t.Errorf("PHYSpecial err = %v, want invalid_address", err)
	}
	if _, err := p3.Ctrl12().Read(); errcode.Of(err) != errcode.InvalidAddress {
		t.Errorf("Ctrl12 err = %v, want invalid_address", err)
	}
	if _, err := p3.Status0().Read(); errcode.Of(err) != errcode.InvalidAddress {
		t.Errorf("Status0 err = %v, want invalid_address", err)
	}

	// Status1 survives, with its reduced reset value.
	st1 := p3.Status1()
	if st1.Addr() != AddrPort3Status1 {
		t.Fatalf("Status1 addr = %#02x", uint8(st1.Addr()))
	}
	v, err := st1.Read()
	if err != nil {
		t.Fatalf("Status1: %v", err)
	}
	if v.HPMDIX() {
		t.Errorf("port 3 Status1 should reset to 0x00: %#02x", uint8(v))
	}
}

func TestPortAddressing(t *testing.T) {
	bus := &fakeBus{}
	s := New(bus)

	cases := []struct {
		reg  interface{ Addr() Address }
		want Address
	}{
		{s.Port(1).Ctrl2(), AddrPort1Ctrl2},
		{s.Port(2).Ctrl13(), AddrPort2Ctrl13},
		{s.Port(3).IngressRateLimit(2), AddrPort3Q2IngressRateLimit},
		{s.Port(1).TxQSplit(3), AddrPort1TxQSplitQ3},
		{s.Port(2).TxQSplit(0), AddrPort2TxQSplitQ0},
		{s.Port(3).TxQSplit(1), AddrPort3TxQSplitQ1},
		{s.TOSPriority(15), AddrTOSPriority15},
		{s.MACAddr(5), AddrMACAddr5},
		{s.UserDef(2), AddrUserDef2},
		{s.IndirectData(0), AddrIndirectData0},
		{s.IndirectData(7), AddrIndirectData7},
		{s.StationMACAddr(2, 3), AddrStation2MACAddr3},
		{s.HighPriorityPacketBuffer(3), AddrHighPriorityPacketBufferQ3},
		{s.PMUsageFlowCtrlSelect(4), AddrPMUsageFlowCtrlSelectMode4},
	}
	for _, c := range cases {
		if got := c.reg.Addr(); got != c.want {
			t.Errorf("got %s (%#02x), want %s", got, uint8(got), c.want)
		}
	}
}

func TestIndexedAccessorBounds(t *testing.T) {
	s := New(NewMap())
	checks := []struct {
		name string
		err  error
	}{
		{"TOSPriority(16)", func() error { _, err := s.TOSPriority(16).Read(); return err }()},
		{"MACAddr(6)", func() error { _, err := s.MACAddr(6).Read(); return err }()},
		{"UserDef(0)", func() error { _, err := s.UserDef(0).Read(); return err }()},
		{"UserDef(4)", func() error { _, err := s.UserDef(4).Read(); return err }()},
		{"IndirectData(8)", func() error { _, err := s.IndirectData(8).Read(); return err }()},
		{"StationMACAddr(3,0)", func() error { _, err := s.StationMACAddr(3, 0).Read(); return err }()},
		{"StationMACAddr(1,6)", func() error { _, err := s.StationMACAddr(1, 6).Read(); return err }()},
		{"HighPriorityPacketBuffer(4)", func() error { _, err := s.HighPriorityPacketBuffer(4).Read(); return err }()},
		{"PMUsageFlowCtrlSelect(0)", func() error { _, err := s.PMUsageFlowCtrlSelect(0).Read(); return err }()},
		{"TxQSplit(4)", func() error { _, err := s.Port(1).TxQSplit(4).Read(); return err }()},
	}
	for _, c := range checks {
		if errcode.Of(c.err) != errcode.OutOfRange {
			t.Errorf("%s err = %v, want out_of_range", c.name, c.err)
		}
	}
}

func TestModifyAbortsOnReadError(t *testing.T) {
	busErr := errors.New("bus stuck")
	bus := &fakeBus{readErr: busErr}
	reg := New(bus).GC0()

	calls := 0
	err := reg.Modify(func(*GC0) { calls++ })
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

func TestStopSwitchScenario(t *testing.T) {
	s := New(NewMap())
	if err := s.ChipID1().Modify(func(r *ChipID1) { r.SetStartSwitch(false) }); err != nil {
		t.Fatalf("Modify: %v", err)
	}
	got, _ := s.ChipID1().Read()
	if got.StartSwitch() {
		t.Errorf("switch still started: %#02x", uint8(got))
	}
	// ID fields keep their values through the read-modify-write.
	if got.ChipID() != 0x3 || got.RevisionID() != ChipID1(AddrChipID1.Reset()).RevisionID() {
		t.Errorf("modify disturbed ID fields: %#02x", uint8(got))
	}
}

func TestDefaultTagScenario(t *testing.T) {
	s := New(NewMap())
	p := s.Port(2)

	// PVID 100 = 0x064.
	if err := p.Ctrl3().Modify(func(r *PortCtrl3) { r.SetDefaultTagHigh(0x00) }); err != nil {
		t.Fatalf("Ctrl3: %v", err)
	}
	if err := p.Ctrl4().Modify(func(r *PortCtrl4) { r.SetDefaultTagLow(0x64) }); err != nil {
		t.Fatalf("Ctrl4: %v", err)
	}
	lo, _ := p.Ctrl4().Read()
	if lo.DefaultTagLow() != 0x64 {
		t.Errorf("tag low = %#02x, want 0x64", lo.DefaultTagLow())
	}
}

func TestMapStateRoundTrip(t *testing.T) {
	m := NewMap()
	st, ok := m.State(AddrGC4)
	if !ok {
		t.Fatal("GC4 missing from map")
	}
	st.Set(0x55)
	if !m.SetState(st) {
		t.Fatal("SetState rejected GC4")
	}
	got, _ := m.State(AddrGC4)
	if got.Bits() != 0x55 {
		t.Fatalf("got %#02x, want 0x55", got.Bits())
	}
	if got.String() != "GC4=0x55" {
		t.Errorf("String = %q", got.String())
	}
	if m.SetState(StateOf(Address(0x44), 0)) {
		t.Errorf("SetState accepted undocumented address")
	}
}
