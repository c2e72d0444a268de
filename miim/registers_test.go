package miim

import "testing"

func TestResetValues(t *testing.T) {
	want := map[Address]uint16{
		AddrBCR:        0x1020,
		AddrBSR:        0x7808,
		AddrPHYID1:     0x0022,
		AddrPHYID2:     0x1430,
		AddrANAR:       0x05E0,
		AddrANLPAR:     0x0000,
		AddrLinkMD:     0x0000,
		AddrPHYSpecial: 0x0004,
	}
	for a, v := range want {
		if got := a.Reset(); got != v {
			t.Errorf("%s reset = %#04x, want %#04x", a, got, v)
		}
	}
}

func TestAddresses(t *testing.T) {
	as := Addresses()
	if len(as) != NumRegisters {
		t.Fatalf("got %d addresses, want %d", len(as), NumRegisters)
	}
	for _, a := range as {
		if !a.Valid() {
			t.Errorf("%s reported invalid", a)
		}
	}
	if Address(0x10).Valid() {
		t.Errorf("0x10 should not be a documented register")
	}
}

func TestBCRDefaults(t *testing.T) {
	r := BCR(AddrBCR.Reset())
	if !r.EnableAutoneg() {
		t.Errorf("autoneg should be enabled at reset")
	}
	if !r.HPMDIX() {
		t.Errorf("HP auto MDI/MDI-X should be selected at reset")
	}
	if r.PowerDown() || r.Loopback() || r.SoftReset() {
		t.Errorf("unexpected bits set at reset: %#04x", uint16(r))
	}
}

func TestBCRFieldIsolation(t *testing.T) {
	var r BCR
	r.SetForceFD(true)
	r.SetForce100(true)
	if !r.ForceFD() || !r.Force100() {
		t.Fatalf("set fields not readable: %#04x", uint16(r))
	}
	r.SetForceFD(false)
	if r.ForceFD() {
		t.Errorf("ForceFD still set after clear")
	}
	if !r.Force100() {
		t.Errorf("clearing ForceFD disturbed Force100")
	}
	if uint16(r) != 1<<bcrForce100 {
		t.Errorf("stray bits set: %#04x", uint16(r))
	}
}

func TestANARDefaults(t *testing.T) {
	r := ANAR(AddrANAR.Reset())
	if !r.Adv100FD() || !r.Adv100HD() || !r.Adv10FD() || !r.Adv10HD() {
		t.Errorf("all speeds should be advertised at reset: %#04x", uint16(r))
	}
	if !r.AdvPause() {
		t.Errorf("pause should be advertised at reset")
	}
	if r.NextPage() || r.RemoteFault() {
		t.Errorf("unexpected bits set at reset: %#04x", uint16(r))
	}
}

func TestLinkMDFields(t *testing.T) {
	// VCT enabled, result code 2, 10M short, fault count 0x1A5.
	r := LinkMD(1<<15 | 2<<13 | 1<<12 | 0x1A5)
	if !r.VCTEnable() {
		t.Errorf("VCTEnable not read back")
	}
	if got := r.VCTResult(); got != 2 {
		t.Errorf("VCTResult = %d, want 2", got)
	}
	if !r.VCT10MShort() {
		t.Errorf("VCT10MShort not read back")
	}
	if got := r.VCTFaultCount(); got != 0x1A5 {
		t.Errorf("VCTFaultCount = %#x, want 0x1A5", got)
	}
}
