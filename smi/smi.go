// Package smi models the KSZ8863's Serial Management Interface (SMI), the
// chip-specific management protocol that exposes the full switch register
// file as 8-bit registers behind 8-bit addresses.
//
// The package is transport-agnostic: anything implementing Bus — a real SMI
// controller, the I2C window (see the transport package) or an in-memory
// Map — can back the Smi wrapper.
package smi

import "ksz8863-go/errcode"

// PortCount is the number of switch ports. Ports 1 and 2 carry the PHYs;
// port 3 is the MII/RMII host port.
const PortCount = 3

// Bus is the raw SMI transport: 8-bit register access by 8-bit address.
// Implementations are expected to block until the cycle completes or fails;
// retries and timeouts are theirs to manage. Errors are returned to callers
// unchanged.
//
// A Bus must not be shared between concurrent callers without external
// synchronisation.
type Bus interface {
	Read(regAddr uint8) (uint8, error)
	Write(regAddr uint8, value uint8) error
}

// Smi wraps a Bus with typed access to the switch register file.
type Smi struct {
	bus Bus
}

// New wraps the given transport. Smi takes ownership of the Bus for its
// lifetime; see Bus for the sharing rules.
func New(bus Bus) *Smi { return &Smi{bus: bus} }

// Read reads the register at the given address into an untyped State.
func (s *Smi) Read(a Address) (State, error) {
	if !a.Valid() {
		return State{}, errcode.InvalidAddress
	}
	bits, err := s.bus.Read(uint8(a))
	if err != nil {
		return State{}, err
	}
	return StateOf(a, bits), nil
}

// Write writes the state's raw bits to its register.
func (s *Smi) Write(st State) error {
	if !st.Addr().Valid() {
		return errcode.InvalidAddress
	}
	return s.bus.Write(uint8(st.Addr()), st.Bits())
}

// Register is satisfied by every 8-bit SMI register type.
type Register interface{ ~uint8 }

// Reg gives read/modify/write access to one register. It borrows the Smi it
// was obtained from and performs no I/O of its own beyond delegating to the
// underlying Bus.
//
// Accessors taking an index (ports, queues, byte positions) defer range
// validation to the first access, where it surfaces as errcode.OutOfRange.
type Reg[R Register] struct {
	smi  *Smi
	addr Address
	err  error
}

// Addr returns the register's SMI address.
func (r Reg[R]) Addr() Address { return r.addr }

// Reset returns the register's documented power-on value.
func (r Reg[R]) Reset() R { return R(r.addr.Reset()) }

func (r Reg[R]) check() error {
	if r.err != nil {
		return r.err
	}
	if !r.addr.Valid() {
		return errcode.InvalidAddress
	}
	return nil
}

// Read reads the register, propagating any transport error unchanged.
func (r Reg[R]) Read() (R, error) {
	if err := r.check(); err != nil {
		var zero R
		return zero, err
	}
	bits, err := r.smi.bus.Read(uint8(r.addr))
	if err != nil {
		var zero R
		return zero, err
	}
	return R(bits), nil
}

// Write writes the given value's raw bits to the register.
func (r Reg[R]) Write(v R) error {
	if err := r.check(); err != nil {
		return err
	}
	return r.smi.bus.Write(uint8(r.addr), uint8(v))
}

// Modify performs a read-modify-write: it reads the current value, applies f
// exactly once to it, and writes the result back. Nothing is written if the
// read fails; the read's error is returned unchanged.
//
// The read-then-write span is not atomic with respect to other writers on
// the same bus; callers needing atomicity must serialise bus access.
func (r Reg[R]) Modify(f func(*R)) error {
	v, err := r.Read()
	if err != nil {
		return err
	}
	f(&v)
	return r.Write(v)
}

func reg[R Register](s *Smi, a Address) Reg[R] {
	return Reg[R]{smi: s, addr: a}
}

func badIndex[R Register](s *Smi) Reg[R] {
	return Reg[R]{smi: s, err: errcode.OutOfRange}
}

// Chip ID and global control.

func (s *Smi) ChipID0() Reg[ChipID0] { return reg[ChipID0](s, AddrChipID0) }
func (s *Smi) ChipID1() Reg[ChipID1] { return reg[ChipID1](s, AddrChipID1) }
func (s *Smi) GC0() Reg[GC0]         { return reg[GC0](s, AddrGC0) }
func (s *Smi) GC1() Reg[GC1]         { return reg[GC1](s, AddrGC1) }
func (s *Smi) GC2() Reg[GC2]         { return reg[GC2](s, AddrGC2) }
func (s *Smi) GC3() Reg[GC3]         { return reg[GC3](s, AddrGC3) }
func (s *Smi) GC4() Reg[GC4]         { return reg[GC4](s, AddrGC4) }
func (s *Smi) GC5() Reg[GC5]         { return reg[GC5](s, AddrGC5) }
func (s *Smi) GC9() Reg[GC9]         { return reg[GC9](s, AddrGC9) }
func (s *Smi) GC10() Reg[GC10]       { return reg[GC10](s, AddrGC10) }
func (s *Smi) GC11() Reg[GC11]       { return reg[GC11](s, AddrGC11) }
func (s *Smi) GC12() Reg[GC12]       { return reg[GC12](s, AddrGC12) }
func (s *Smi) GC13() Reg[GC13]       { return reg[GC13](s, AddrGC13) }

// Reset accesses the software/PCS reset register (0x43).
func (s *Smi) Reset() Reg[Reset] { return reg[Reset](s, AddrReset) }

// Port scopes register access to one of the switch ports, numbered 1..3 per
// the datasheet. The number is not validated here: an out-of-range port
// fails with errcode.OutOfRange on first access. Registers the MII port (3)
// does not have fail with errcode.InvalidAddress.
func (s *Smi) Port(n uint8) Port { return Port{smi: s, n: n} }

// Port is an Smi re-scoped to a single switch port's register bank.
type Port struct {
	smi *Smi
	n   uint8
}

// Number returns the port number this wrapper was built with.
func (p Port) Number() uint8 { return p.n }

func portReg[R Register](p Port, off uint8) Reg[R] {
	if p.n < 1 || p.n > PortCount {
		return badIndex[R](p.smi)
	}
	return reg[R](p.smi, Address(0x10*p.n+off))
}

func (p Port) Ctrl0() Reg[PortCtrl0] { return portReg[PortCtrl0](p, 0x0) }
func (p Port) Ctrl1() Reg[PortCtrl1] { return portReg[PortCtrl1](p, 0x1) }
func (p Port) Ctrl2() Reg[PortCtrl2] { return portReg[PortCtrl2](p, 0x2) }
func (p Port) Ctrl3() Reg[PortCtrl3] { return portReg[PortCtrl3](p, 0x3) }
func (p Port) Ctrl4() Reg[PortCtrl4] { return portReg[PortCtrl4](p, 0x4) }
func (p Port) Ctrl5() Reg[PortCtrl5] { return portReg[PortCtrl5](p, 0x5) }

// IngressRateLimit accesses the ingress rate limit register for priority
// queue q (0..3).
func (p Port) IngressRateLimit(q uint8) Reg[PortRateLimit] {
	if q > 3 {
		return badIndex[PortRateLimit](p.smi)
	}
	return portReg[PortRateLimit](p, 0x6+q)
}

// PHYSpecial, LinkMDResult, Ctrl12, Ctrl13 and Status0 exist on the PHY
// ports (1 and 2) only.

func (p Port) PHYSpecial() Reg[PortPHYSpecial]     { return portReg[PortPHYSpecial](p, 0xA) }
func (p Port) LinkMDResult() Reg[PortLinkMDResult] { return portReg[PortLinkMDResult](p, 0xB) }
func (p Port) Ctrl12() Reg[PortCtrl12]             { return portReg[PortCtrl12](p, 0xC) }
func (p Port) Ctrl13() Reg[PortCtrl13]             { return portReg[PortCtrl13](p, 0xD) }
func (p Port) Status0() Reg[PortStatus0]           { return portReg[PortStatus0](p, 0xE) }
func (p Port) Status1() Reg[PortStatus1]           { return portReg[PortStatus1](p, 0xF) }

// TxQSplit accesses the transmit queue split control for priority queue q
// (0..3).
func (p Port) TxQSplit(q uint8) Reg[TxQSplit] {
	if p.n < 1 || p.n > PortCount || q > 3 {
		return badIndex[TxQSplit](p.smi)
	}
	return reg[TxQSplit](p.smi, Address(0xAF+(uint16(p.n)-1)*4+uint16(3-q)))
}

// Advanced control registers.

// TOSPriority accesses ToS priority control register i (0..15), covering
// DSCP values 8*i .. 8*i+7.
func (s *Smi) TOSPriority(i uint8) Reg[TOSPriority] {
	if i > 15 {
		return badIndex[TOSPriority](s)
	}
	return reg[TOSPriority](s, Address(0x60+i))
}

// MACAddr accesses byte i (0..5) of the switch engine's MAC address,
// most significant byte first.
func (s *Smi) MACAddr(i uint8) Reg[MACAddr] {
	if i > 5 {
		return badIndex[MACAddr](s)
	}
	return reg[MACAddr](s, Address(0x70+i))
}

// UserDef accesses user-defined register n (1..3).
func (s *Smi) UserDef(n uint8) Reg[UserDef] {
	if n < 1 || n > 3 {
		return badIndex[UserDef](s)
	}
	return reg[UserDef](s, Address(0x75+n))
}

func (s *Smi) IndirectAccessCtrl0() Reg[IndirectAccessCtrl0] {
	return reg[IndirectAccessCtrl0](s, AddrIndirectAccessCtrl0)
}
func (s *Smi) IndirectAccessCtrl1() Reg[IndirectAccessCtrl1] {
	return reg[IndirectAccessCtrl1](s, AddrIndirectAccessCtrl1)
}

// IndirectData8 accesses the top byte of the indirect access data, which
// also carries the CPU read status flag.
func (s *Smi) IndirectData8() Reg[IndirectData8] {
	return reg[IndirectData8](s, AddrIndirectData8)
}

// IndirectData accesses indirect access data byte i (0..7); byte 0 is the
// least significant and lives at the highest address.
func (s *Smi) IndirectData(i uint8) Reg[IndirectData] {
	if i > 7 {
		return badIndex[IndirectData](s)
	}
	return reg[IndirectData](s, Address(0x83-i))
}

// StationMACAddr accesses byte i (0..5) of self-address filtering station
// n's (1..2) MAC address.
func (s *Smi) StationMACAddr(n, i uint8) Reg[StationMACAddr] {
	if n < 1 || n > 2 || i > 5 {
		return badIndex[StationMACAddr](s)
	}
	return reg[StationMACAddr](s, Address(0x8E+(n-1)*6+i))
}

func (s *Smi) Mode() Reg[Mode] { return reg[Mode](s, AddrMode) }

// HighPriorityPacketBuffer accesses the reserved buffer threshold for
// priority queue q (0..3).
func (s *Smi) HighPriorityPacketBuffer(q uint8) Reg[HighPriorityPacketBuffer] {
	if q > 3 {
		return badIndex[HighPriorityPacketBuffer](s)
	}
	return reg[HighPriorityPacketBuffer](s, Address(0xAA-q))
}

// PMUsageFlowCtrlSelect accesses packet memory usage / flow control select
// mode register n (1..4).
func (s *Smi) PMUsageFlowCtrlSelect(n uint8) Reg[PMUsageFlowCtrlSelect] {
	if n < 1 || n > 4 {
		return badIndex[PMUsageFlowCtrlSelect](s)
	}
	return reg[PMUsageFlowCtrlSelect](s, Address(0xAA+n))
}

func (s *Smi) InterruptEnable() Reg[InterruptEnable] {
	return reg[InterruptEnable](s, AddrInterruptEnable)
}
func (s *Smi) LinkChangeInterrupt() Reg[LinkChangeInterrupt] {
	return reg[LinkChangeInterrupt](s, AddrLinkChangeInterrupt)
}
func (s *Smi) ForcePauseOff() Reg[ForcePauseOff] {
	return reg[ForcePauseOff](s, AddrForcePauseOff)
}
func (s *Smi) FiberSignalThreshold() Reg[FiberSignalThreshold] {
	return reg[FiberSignalThreshold](s, AddrFiberSignalThreshold)
}
func (s *Smi) InternalLDOCtrl() Reg[InternalLDOCtrl] {
	return reg[InternalLDOCtrl](s, AddrInternalLDOCtrl)
}
func (s *Smi) InsertSrcPVID() Reg[InsertSrcPVID] {
	return reg[InsertSrcPVID](s, AddrInsertSrcPVID)
}
func (s *Smi) PwrMgmtLEDMode() Reg[PwrMgmtLEDMode] {
	return reg[PwrMgmtLEDMode](s, AddrPwrMgmtLEDMode)
}
func (s *Smi) SleepMode() Reg[SleepMode] {
	return reg[SleepMode](s, AddrSleepMode)
}
func (s *Smi) FwdInvalidVIDHostMode() Reg[FwdInvalidVIDHostMode] {
	return reg[FwdInvalidVIDHostMode](s, AddrFwdInvalidVIDHostMode)
}
