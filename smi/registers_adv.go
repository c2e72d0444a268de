package smi

import "ksz8863-go/bitfield"

// Reset is the reset control register (0x43). Software reset reinitialises
// the register file; PCS reset restarts the transceivers only.
type Reset uint8

const (
	resetSoftware = 4
	resetPCS      = 0
)

func (r Reset) Software() bool { return bitfield.Bit(uint8(r), resetSoftware) }
func (r Reset) PCS() bool      { return bitfield.Bit(uint8(r), resetPCS) }

func (r *Reset) SetSoftware(v bool) { *r = Reset(bitfield.SetBit(uint8(*r), resetSoftware, v)) }
func (r *Reset) SetPCS(v bool)      { *r = Reset(bitfield.SetBit(uint8(*r), resetPCS, v)) }

// TOSPriority is a ToS priority control register (0x60 through 0x6F). Each
// register maps eight DSCP values to priorities, one bit each.
type TOSPriority uint8

func (r TOSPriority) Data() uint8     { return uint8(r) }
func (r *TOSPriority) SetData(v uint8) { *r = TOSPriority(v) }

// MACAddr is one byte of the switch engine's MAC address (0x70 through
// 0x75, most significant byte first).
type MACAddr uint8

func (r MACAddr) Data() uint8     { return uint8(r) }
func (r *MACAddr) SetData(v uint8) { *r = MACAddr(v) }

// UserDef is a user-defined scratch register (0x76 through 0x78).
type UserDef uint8

func (r UserDef) Data() uint8     { return uint8(r) }
func (r *UserDef) SetData(v uint8) { *r = UserDef(v) }

// IndirectAccessCtrl0 is indirect access control 0 (0x79). Writing it with
// ReadHighWriteLow clear triggers the indirect write; with it set, the
// indirect read.
type IndirectAccessCtrl0 uint8

const iac0ReadHighWriteLow = 4

var (
	iac0TableSelect      = bitfield.Field[uint8]{Off: 2, Width: 2}
	iac0IndirectAddrHigh = bitfield.Field[uint8]{Off: 0, Width: 2}
)

func (r IndirectAccessCtrl0) ReadHighWriteLow() bool {
	return bitfield.Bit(uint8(r), iac0ReadHighWriteLow)
}
func (r IndirectAccessCtrl0) TableSelect() uint8      { return iac0TableSelect.Get(uint8(r)) }
func (r IndirectAccessCtrl0) IndirectAddrHigh() uint8 { return iac0IndirectAddrHigh.Get(uint8(r)) }

func (r *IndirectAccessCtrl0) SetReadHighWriteLow(v bool) {
	*r = IndirectAccessCtrl0(bitfield.SetBit(uint8(*r), iac0ReadHighWriteLow, v))
}
func (r *IndirectAccessCtrl0) SetTableSelect(v uint8) {
	*r = IndirectAccessCtrl0(iac0TableSelect.Insert(uint8(*r), v))
}
func (r *IndirectAccessCtrl0) SetIndirectAddrHigh(v uint8) {
	*r = IndirectAccessCtrl0(iac0IndirectAddrHigh.Insert(uint8(*r), v))
}

// IndirectAccessCtrl1 is indirect access control 1 (0x7A): the low byte of
// the indirect table address.
type IndirectAccessCtrl1 uint8

func (r IndirectAccessCtrl1) IndirectAddrLow() uint8 { return uint8(r) }
func (r *IndirectAccessCtrl1) SetIndirectAddrLow(v uint8) {
	*r = IndirectAccessCtrl1(v)
}

// IndirectData8 is the top byte of the indirect data window (0x7B).
type IndirectData8 uint8

const id8CPUReadStatus = 7

var id8Data = bitfield.Field[uint8]{Off: 0, Width: 3}

func (r IndirectData8) CPUReadStatus() bool { return bitfield.Bit(uint8(r), id8CPUReadStatus) }
func (r IndirectData8) Data() uint8         { return id8Data.Get(uint8(r)) }

func (r *IndirectData8) SetData(v uint8) { *r = IndirectData8(id8Data.Insert(uint8(*r), v)) }

// IndirectData is one of the lower indirect data bytes (0x7C through 0x83).
type IndirectData uint8

func (r IndirectData) Data() uint8     { return uint8(r) }
func (r *IndirectData) SetData(v uint8) { *r = IndirectData(v) }

// StationMACAddr is one byte of a self-address filtering station's MAC
// address (0x8E through 0x99).
type StationMACAddr uint8

func (r StationMACAddr) Data() uint8     { return uint8(r) }
func (r *StationMACAddr) SetData(v uint8) { *r = StationMACAddr(v) }

// Mode is the strap-in mode status register (0xA6). Read-only.
type Mode uint8

func (r Mode) Data() uint8 { return uint8(r) }

// HighPriorityPacketBuffer is a reserved buffer threshold register (0xA7
// through 0xAA). Read-only.
type HighPriorityPacketBuffer uint8

func (r HighPriorityPacketBuffer) Data() uint8 { return uint8(r) }

// PMUsageFlowCtrlSelect is a packet memory usage / flow control select mode
// register (0xAB through 0xAE). Read-only.
type PMUsageFlowCtrlSelect uint8

func (r PMUsageFlowCtrlSelect) Data() uint8 { return uint8(r) }

// InterruptEnable is the interrupt enable register (0xBB). Its bits line up
// with LinkChangeInterrupt.
type InterruptEnable uint8

func (r InterruptEnable) Mask() uint8     { return uint8(r) }
func (r *InterruptEnable) SetMask(v uint8) { *r = InterruptEnable(v) }

// LinkChangeInterrupt is the link change interrupt status register (0xBC).
// Bits are cleared by writing 1.
type LinkChangeInterrupt uint8

const (
	lciP1P2 = 7
	lciP3   = 2
	lciP2   = 1
	lciP1   = 0
)

func (r LinkChangeInterrupt) P1P2() bool { return bitfield.Bit(uint8(r), lciP1P2) }
func (r LinkChangeInterrupt) P3() bool   { return bitfield.Bit(uint8(r), lciP3) }
func (r LinkChangeInterrupt) P2() bool   { return bitfield.Bit(uint8(r), lciP2) }
func (r LinkChangeInterrupt) P1() bool   { return bitfield.Bit(uint8(r), lciP1) }

func (r *LinkChangeInterrupt) SetP1P2(v bool) {
	*r = LinkChangeInterrupt(bitfield.SetBit(uint8(*r), lciP1P2, v))
}
func (r *LinkChangeInterrupt) SetP3(v bool) {
	*r = LinkChangeInterrupt(bitfield.SetBit(uint8(*r), lciP3, v))
}
func (r *LinkChangeInterrupt) SetP2(v bool) {
	*r = LinkChangeInterrupt(bitfield.SetBit(uint8(*r), lciP2, v))
}
func (r *LinkChangeInterrupt) SetP1(v bool) {
	*r = LinkChangeInterrupt(bitfield.SetBit(uint8(*r), lciP1, v))
}

// ForcePauseOff is the force pause off iteration limit register (0xBD).
type ForcePauseOff uint8

func (r ForcePauseOff) IterationLimitEnable() uint8 { return uint8(r) }
func (r *ForcePauseOff) SetIterationLimitEnable(v uint8) {
	*r = ForcePauseOff(v)
}

// FiberSignalThreshold is the fiber signal threshold register (0xC0).
type FiberSignalThreshold uint8

const (
	fstPort2 = 7
	fstPort1 = 6
)

func (r FiberSignalThreshold) Port2() bool { return bitfield.Bit(uint8(r), fstPort2) }
func (r FiberSignalThreshold) Port1() bool { return bitfield.Bit(uint8(r), fstPort1) }

func (r *FiberSignalThreshold) SetPort2(v bool) {
	*r = FiberSignalThreshold(bitfield.SetBit(uint8(*r), fstPort2, v))
}
func (r *FiberSignalThreshold) SetPort1(v bool) {
	*r = FiberSignalThreshold(bitfield.SetBit(uint8(*r), fstPort1, v))
}

// InternalLDOCtrl is the internal LDO control register (0xC1).
type InternalLDOCtrl uint8

const ldoDisable = 6

func (r InternalLDOCtrl) Disable() bool { return bitfield.Bit(uint8(r), ldoDisable) }

func (r *InternalLDOCtrl) SetDisable(v bool) {
	*r = InternalLDOCtrl(bitfield.SetBit(uint8(*r), ldoDisable, v))
}

// InsertSrcPVID is the insert source port PVID control register (0xC2).
// Each bit enables PVID insertion for one ingress/egress port pair.
type InsertSrcPVID uint8

const (
	ispP1AtP2 = 5
	ispP1AtP3 = 4
	ispP2AtP1 = 3
	ispP2AtP3 = 2
	ispP3AtP1 = 1
	ispP3AtP2 = 0
)

func (r InsertSrcPVID) P1AtP2() bool { return bitfield.Bit(uint8(r), ispP1AtP2) }
func (r InsertSrcPVID) P1AtP3() bool { return bitfield.Bit(uint8(r), ispP1AtP3) }
func (r InsertSrcPVID) P2AtP1() bool { return bitfield.Bit(uint8(r), ispP2AtP1) }
func (r InsertSrcPVID) P2AtP3() bool { return bitfield.Bit(uint8(r), ispP2AtP3) }
func (r InsertSrcPVID) P3AtP1() bool { return bitfield.Bit(uint8(r), ispP3AtP1) }
func (r InsertSrcPVID) P3AtP2() bool { return bitfield.Bit(uint8(r), ispP3AtP2) }

func (r *InsertSrcPVID) SetP1AtP2(v bool) {
	*r = InsertSrcPVID(bitfield.SetBit(uint8(*r), ispP1AtP2, v))
}
func (r *InsertSrcPVID) SetP1AtP3(v bool) {
	*r = InsertSrcPVID(bitfield.SetBit(uint8(*r), ispP1AtP3, v))
}
func (r *InsertSrcPVID) SetP2AtP1(v bool) {
	*r = InsertSrcPVID(bitfield.SetBit(uint8(*r), ispP2AtP1, v))
}
func (r *InsertSrcPVID) SetP2AtP3(v bool) {
	*r = InsertSrcPVID(bitfield.SetBit(uint8(*r), ispP2AtP3, v))
}
func (r *InsertSrcPVID) SetP3AtP1(v bool) {
	*r = InsertSrcPVID(bitfield.SetBit(uint8(*r), ispP3AtP1, v))
}
func (r *InsertSrcPVID) SetP3AtP2(v bool) {
	*r = InsertSrcPVID(bitfield.SetBit(uint8(*r), ispP3AtP2, v))
}

// PwrMgmtLEDMode is the power management and LED mode register (0xC3).
type PwrMgmtLEDMode uint8

const (
	pmCPUIfacePowerDown = 7
	pmSwitchPowerDown   = 6
	pmLEDOutputMode     = 3
	pmPLLOff            = 2
)

var (
	pmLEDModeSelection = bitfield.Field[uint8]{Off: 4, Width: 2}
	pmPwrMgmtMode      = bitfield.Field[uint8]{Off: 0, Width: 2}
)

func (r PwrMgmtLEDMode) CPUIfacePowerDown() bool {
	return bitfield.Bit(uint8(r), pmCPUIfacePowerDown)
}
func (r PwrMgmtLEDMode) SwitchPowerDown() bool { return bitfield.Bit(uint8(r), pmSwitchPowerDown) }
func (r PwrMgmtLEDMode) LEDModeSelection() uint8 {
	return pmLEDModeSelection.Get(uint8(r))
}
func (r PwrMgmtLEDMode) LEDOutputMode() bool { return bitfield.Bit(uint8(r), pmLEDOutputMode) }
func (r PwrMgmtLEDMode) PLLOff() bool        { return bitfield.Bit(uint8(r), pmPLLOff) }
func (r PwrMgmtLEDMode) PwrMgmtMode() uint8  { return pmPwrMgmtMode.Get(uint8(r)) }

func (r *PwrMgmtLEDMode) SetCPUIfacePowerDown(v bool) {
	*r = PwrMgmtLEDMode(bitfield.SetBit(uint8(*r), pmCPUIfacePowerDown, v))
}
func (r *PwrMgmtLEDMode) SetSwitchPowerDown(v bool) {
	*r = PwrMgmtLEDMode(bitfield.SetBit(uint8(*r), pmSwitchPowerDown, v))
}
func (r *PwrMgmtLEDMode) SetLEDModeSelection(v uint8) {
	*r = PwrMgmtLEDMode(pmLEDModeSelection.Insert(uint8(*r), v))
}
func (r *PwrMgmtLEDMode) SetLEDOutputMode(v bool) {
	*r = PwrMgmtLEDMode(bitfield.SetBit(uint8(*r), pmLEDOutputMode, v))
}
func (r *PwrMgmtLEDMode) SetPLLOff(v bool) {
	*r = PwrMgmtLEDMode(bitfield.SetBit(uint8(*r), pmPLLOff, v))
}
func (r *PwrMgmtLEDMode) SetPwrMgmtMode(v uint8) {
	*r = PwrMgmtLEDMode(pmPwrMgmtMode.Insert(uint8(*r), v))
}

// SleepMode is the sleep mode timing register (0xC4).
type SleepMode uint8

func (r SleepMode) Data() uint8     { return uint8(r) }
func (r *SleepMode) SetData(v uint8) { *r = SleepMode(v) }

// FwdInvalidVIDHostMode is the forward invalid VID frame and host mode
// register (0xC6).
type FwdInvalidVIDHostMode uint8

const (
	fivP3RMIIClockSelection = 3
	fivP1RMIIClockSelection = 2
)

var (
	fivFwdInvalidVIDFrame = bitfield.Field[uint8]{Off: 4, Width: 3}
	fivHostIfaceMode      = bitfield.Field[uint8]{Off: 0, Width: 2}
)

// FwdInvalidVIDFrame is a port membership bitmap, one bit per port.
func (r FwdInvalidVIDHostMode) FwdInvalidVIDFrame() uint8 {
	return fivFwdInvalidVIDFrame.Get(uint8(r))
}
func (r FwdInvalidVIDHostMode) P3RMIIClockSelection() bool {
	return bitfield.Bit(uint8(r), fivP3RMIIClockSelection)
}
func (r FwdInvalidVIDHostMode) P1RMIIClockSelection() bool {
	return bitfield.Bit(uint8(r), fivP1RMIIClockSelection)
}
func (r FwdInvalidVIDHostMode) HostIfaceMode() uint8 {
	return fivHostIfaceMode.Get(uint8(r))
}

func (r *FwdInvalidVIDHostMode) SetFwdInvalidVIDFrame(v uint8) {
	*r = FwdInvalidVIDHostMode(fivFwdInvalidVIDFrame.Insert(uint8(*r), v))
}
func (r *FwdInvalidVIDHostMode) SetP3RMIIClockSelection(v bool) {
	*r = FwdInvalidVIDHostMode(bitfield.SetBit(uint8(*r), fivP3RMIIClockSelection, v))
}
func (r *FwdInvalidVIDHostMode) SetP1RMIIClockSelection(v bool) {
	*r = FwdInvalidVIDHostMode(bitfield.SetBit(uint8(*r), fivP1RMIIClockSelection, v))
}
func (r *FwdInvalidVIDHostMode) SetHostIfaceMode(v uint8) {
	*r = FwdInvalidVIDHostMode(fivHostIfaceMode.Insert(uint8(*r), v))
}
