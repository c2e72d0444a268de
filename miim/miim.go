package miim

import "ksz8863-go/errcode"

// PhyCount is the number of PHYs on the chip.
const PhyCount = 2

// DefaultPhyAddrs holds the strapped MIIM bus addresses of the two PHYs,
// indexed by PHY index.
var DefaultPhyAddrs = [PhyCount]uint8{0x01, 0x02}

// Bus is the raw MIIM transport: 16-bit register access addressed by PHY and
// register address. Implementations are expected to block until the cycle
// completes or fails; retries and timeouts are theirs to manage. Errors are
// returned to callers unchanged.
//
// A Bus must not be shared between concurrent callers without external
// synchronisation.
type Bus interface {
	Read(phyAddr, regAddr uint8) (uint16, error)
	Write(phyAddr, regAddr uint8, value uint16) error
}

// Miim wraps a Bus with typed access to the MIIM register file.
type Miim struct {
	bus Bus
}

// New wraps the given transport. Miim takes ownership of the Bus for its
// lifetime; see Bus for the sharing rules.
func New(bus Bus) *Miim { return &Miim{bus: bus} }

// Phy scopes register access to one of the chip's PHYs. The index is
// 0-based and is not validated here: an out-of-range index fails with
// errcode.OutOfRange on first access.
func (m *Miim) Phy(index uint8) *Phy {
	return &Phy{miim: m, index: index}
}

// Phy is a Miim re-scoped to a single PHY.
type Phy struct {
	miim  *Miim
	index uint8
}

// Index returns the PHY index this wrapper was built with.
func (p *Phy) Index() uint8 { return p.index }

// busAddr resolves the PHY index to its MIIM bus address, enforcing the
// chip's PHY count.
func (p *Phy) busAddr() (uint8, error) {
	if p.index >= PhyCount {
		return 0, errcode.OutOfRange
	}
	return DefaultPhyAddrs[p.index], nil
}

// Read reads the register at the given address into an untyped State.
func (p *Phy) Read(a Address) (State, error) {
	if !a.Valid() {
		return State{}, errcode.InvalidAddress
	}
	phy, err := p.busAddr()
	if err != nil {
		return State{}, err
	}
	bits, err := p.miim.bus.Read(phy, uint8(a))
	if err != nil {
		return State{}, err
	}
	return StateOf(a, bits), nil
}

// Write writes the state's raw bits to its register.
func (p *Phy) Write(s State) error {
	if !s.Addr().Valid() {
		return errcode.InvalidAddress
	}
	phy, err := p.busAddr()
	if err != nil {
		return err
	}
	return p.miim.bus.Write(phy, uint8(s.Addr()), s.Bits())
}

// Register is satisfied by every 16-bit MIIM register type.
type Register interface{ ~uint16 }

// PhyReg gives read/modify/write access to one register of one PHY. It
// borrows the Phy it was obtained from and performs no I/O of its own beyond
// delegating to the underlying Bus.
type PhyReg[R Register] struct {
	phy  *Phy
	addr Address
}

// Addr returns the register's MIIM address.
func (r PhyReg[R]) Addr() Address { return r.addr }

// Reset returns the register's documented power-on value.
func (r PhyReg[R]) Reset() R { return R(r.addr.Reset()) }

// Read reads the register, propagating any transport error unchanged.
func (r PhyReg[R]) Read() (R, error) {
	phy, err := r.phy.busAddr()
	if err != nil {
		var zero R
		return zero, err
	}
	bits, err := r.phy.miim.bus.Read(phy, uint8(r.addr))
	if err != nil {
		var zero R
		return zero, err
	}
	return R(bits), nil
}

// Write writes the given value's raw bits to the register.
func (r PhyReg[R]) Write(v R) error {
	phy, err := r.phy.busAddr()
	if err != nil {
		return err
	}
	return r.phy.miim.bus.Write(phy, uint8(r.addr), uint16(v))
}

// Modify performs a read-modify-write: it reads the current value, applies f
// exactly once to it, and writes the result back. Nothing is written if the
// read fails; the read's error is returned unchanged.
//
// The read-then-write span is not atomic with respect to other writers on
// the same bus; callers needing atomicity must serialise bus access.
func (r PhyReg[R]) Modify(f func(*R)) error {
	v, err := r.Read()
	if err != nil {
		return err
	}
	f(&v)
	return r.Write(v)
}

// Per-register accessors.

func (p *Phy) BCR() PhyReg[BCR]               { return PhyReg[BCR]{phy: p, addr: AddrBCR} }
func (p *Phy) BSR() PhyReg[BSR]               { return PhyReg[BSR]{phy: p, addr: AddrBSR} }
func (p *Phy) PHYID1() PhyReg[PHYID1]         { return PhyReg[PHYID1]{phy: p, addr: AddrPHYID1} }
func (p *Phy) PHYID2() PhyReg[PHYID2]         { return PhyReg[PHYID2]{phy: p, addr: AddrPHYID2} }
func (p *Phy) ANAR() PhyReg[ANAR]             { return PhyReg[ANAR]{phy: p, addr: AddrANAR} }
func (p *Phy) ANLPAR() PhyReg[ANLPAR]         { return PhyReg[ANLPAR]{phy: p, addr: AddrANLPAR} }
func (p *Phy) LinkMD() PhyReg[LinkMD]         { return PhyReg[LinkMD]{phy: p, addr: AddrLinkMD} }
func (p *Phy) PHYSpecial() PhyReg[PHYSpecial] { return PhyReg[PHYSpecial]{phy: p, addr: AddrPHYSpecial} }
