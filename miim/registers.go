// Package miim models the KSZ8863's MII management interface (MIIM, also
// known as MDIO). Each of the chip's two PHYs exposes eight 16-bit registers
// indexed by a 5-bit register address preceded by a 5-bit PHY address.
//
// The package is transport-agnostic: anything implementing Bus — a real MDIO
// controller or an in-memory Map — can back the Miim wrapper.
package miim

import (
	"fmt"

	"ksz8863-go/bitfield"
)

// Address identifies one documented MIIM register.
type Address uint8

const (
	AddrBCR        Address = 0x00 // basic control
	AddrBSR        Address = 0x01 // basic status
	AddrPHYID1     Address = 0x02 // PHY identifier high word
	AddrPHYID2     Address = 0x03 // PHY identifier low word
	AddrANAR       Address = 0x04 // auto-negotiation advertisement
	AddrANLPAR     Address = 0x05 // auto-negotiation link partner ability
	AddrLinkMD     Address = 0x1D // LinkMD cable diagnostics
	AddrPHYSpecial Address = 0x1F // PHY special control/status
)

type regInfo struct {
	name  string
	reset uint16
}

// Register addresses in datasheet order, with names and documented power-on
// values. This table is the single source of reset state; Map materialises
// it into mutable storage.
var regs = map[Address]regInfo{
	AddrBCR:        {"BCR", 0x1020},
	AddrBSR:        {"BSR", 0x7808},
	AddrPHYID1:     {"PHYID1", 0x0022},
	AddrPHYID2:     {"PHYID2", 0x1430},
	AddrANAR:       {"ANAR", 0x05E0},
	AddrANLPAR:     {"ANLPAR", 0x0000},
	AddrLinkMD:     {"LinkMD", 0x0000},
	AddrPHYSpecial: {"PHYSpecial", 0x0004},
}

var addrs = [...]Address{
	AddrBCR, AddrBSR, AddrPHYID1, AddrPHYID2,
	AddrANAR, AddrANLPAR, AddrLinkMD, AddrPHYSpecial,
}

// NumRegisters is the number of documented MIIM registers per PHY.
const NumRegisters = 8

// Addresses returns every documented register address in datasheet order.
func Addresses() []Address {
	return append([]Address(nil), addrs[:]...)
}

// Valid reports whether a is a documented register address.
func (a Address) Valid() bool {
	_, ok := regs[a]
	return ok
}

// Reset returns the register's documented power-on value.
func (a Address) Reset() uint16 { return regs[a].reset }

func (a Address) String() string {
	if info, ok := regs[a]; ok {
		return info.name
	}
	return fmt.Sprintf("Address(0x%02X)", uint8(a))
}

// BCR is the basic control register (0x00). All fields are read-write except
// SoftReset, which is self-clearing and exposed read-only.
type BCR uint16

const (
	bcrSoftReset           = 15
	bcrLoopback            = 14
	bcrForce100            = 13
	bcrEnableAutoneg       = 12
	bcrPowerDown           = 11
	bcrIsolate             = 10
	bcrRestartAutoneg      = 9
	bcrForceFD             = 8
	bcrCollisionTest       = 7
	bcrHPMDIX              = 5
	bcrForceMDI            = 4
	bcrDisableMDIX         = 3
	bcrDisableFarEndFault  = 2
	bcrDisableTransmit     = 1
	bcrDisableLEDs         = 0
)

func (r BCR) SoftReset() bool      { return bitfield.Bit(uint16(r), bcrSoftReset) }
func (r BCR) Loopback() bool       { return bitfield.Bit(uint16(r), bcrLoopback) }
func (r BCR) Force100() bool       { return bitfield.Bit(uint16(r), bcrForce100) }
func (r BCR) EnableAutoneg() bool  { return bitfield.Bit(uint16(r), bcrEnableAutoneg) }
func (r BCR) PowerDown() bool      { return bitfield.Bit(uint16(r), bcrPowerDown) }
func (r BCR) Isolate() bool        { return bitfield.Bit(uint16(r), bcrIsolate) }
func (r BCR) RestartAutoneg() bool { return bitfield.Bit(uint16(r), bcrRestartAutoneg) }
func (r BCR) ForceFD() bool        { return bitfield.Bit(uint16(r), bcrForceFD) }
func (r BCR) CollisionTest() bool  { return bitfield.Bit(uint16(r), bcrCollisionTest) }
func (r BCR) HPMDIX() bool         { return bitfield.Bit(uint16(r), bcrHPMDIX) }
func (r BCR) ForceMDI() bool       { return bitfield.Bit(uint16(r), bcrForceMDI) }
func (r BCR) DisableMDIX() bool    { return bitfield.Bit(uint16(r), bcrDisableMDIX) }
func (r BCR) DisableFarEndFault() bool {
	return bitfield.Bit(uint16(r), bcrDisableFarEndFault)
}
func (r BCR) DisableTransmit() bool { return bitfield.Bit(uint16(r), bcrDisableTransmit) }
func (r BCR) DisableLEDs() bool     { return bitfield.Bit(uint16(r), bcrDisableLEDs) }

func (r *BCR) SetLoopback(v bool)       { *r = BCR(bitfield.SetBit(uint16(*r), bcrLoopback, v)) }
func (r *BCR) SetForce100(v bool)       { *r = BCR(bitfield.SetBit(uint16(*r), bcrForce100, v)) }
func (r *BCR) SetEnableAutoneg(v bool)  { *r = BCR(bitfield.SetBit(uint16(*r), bcrEnableAutoneg, v)) }
func (r *BCR) SetPowerDown(v bool)      { *r = BCR(bitfield.SetBit(uint16(*r), bcrPowerDown, v)) }
func (r *BCR) SetRestartAutoneg(v bool) { *r = BCR(bitfield.SetBit(uint16(*r), bcrRestartAutoneg, v)) }
func (r *BCR) SetForceFD(v bool)        { *r = BCR(bitfield.SetBit(uint16(*r), bcrForceFD, v)) }
func (r *BCR) SetHPMDIX(v bool)         { *r = BCR(bitfield.SetBit(uint16(*r), bcrHPMDIX, v)) }
func (r *BCR) SetForceMDI(v bool)       { *r = BCR(bitfield.SetBit(uint16(*r), bcrForceMDI, v)) }
func (r *BCR) SetDisableMDIX(v bool)    { *r = BCR(bitfield.SetBit(uint16(*r), bcrDisableMDIX, v)) }
func (r *BCR) SetDisableFarEndFault(v bool) {
	*r = BCR(bitfield.SetBit(uint16(*r), bcrDisableFarEndFault, v))
}
func (r *BCR) SetDisableTransmit(v bool) {
	*r = BCR(bitfield.SetBit(uint16(*r), bcrDisableTransmit, v))
}
func (r *BCR) SetDisableLEDs(v bool) { *r = BCR(bitfield.SetBit(uint16(*r), bcrDisableLEDs, v)) }

// BSR is the basic status register (0x01). Read-only.
type BSR uint16

const (
	bsrCapableT4          = 15
	bsrCapable100FD       = 14
	bsrCapable100HD       = 13
	bsrCapable10FD        = 12
	bsrCapable10HD        = 11
	bsrPreambleSuppressed = 6
	bsrANComplete         = 5
	bsrRemoteFault        = 4
	bsrANCapable          = 3
	bsrLinkStatus         = 2
	bsrJabberTest         = 1
	bsrExtendedCapable    = 0
)

func (r BSR) CapableT4() bool          { return bitfield.Bit(uint16(r), bsrCapableT4) }
func (r BSR) Capable100FD() bool       { return bitfield.Bit(uint16(r), bsrCapable100FD) }
func (r BSR) Capable100HD() bool       { return bitfield.Bit(uint16(r), bsrCapable100HD) }
func (r BSR) Capable10FD() bool        { return bitfield.Bit(uint16(r), bsrCapable10FD) }
func (r BSR) Capable10HD() bool        { return bitfield.Bit(uint16(r), bsrCapable10HD) }
func (r BSR) PreambleSuppressed() bool { return bitfield.Bit(uint16(r), bsrPreambleSuppressed) }
func (r BSR) ANComplete() bool         { return bitfield.Bit(uint16(r), bsrANComplete) }
func (r BSR) RemoteFault() bool        { return bitfield.Bit(uint16(r), bsrRemoteFault) }
func (r BSR) ANCapable() bool          { return bitfield.Bit(uint16(r), bsrANCapable) }
func (r BSR) LinkStatus() bool         { return bitfield.Bit(uint16(r), bsrLinkStatus) }
func (r BSR) JabberTest() bool         { return bitfield.Bit(uint16(r), bsrJabberTest) }
func (r BSR) ExtendedCapable() bool    { return bitfield.Bit(uint16(r), bsrExtendedCapable) }

// PHYID1 is the PHY identifier high word (0x02). Read-only.
type PHYID1 uint16

func (r PHYID1) PHYIDHigh() uint16 { return uint16(r) }

// PHYID2 is the PHY identifier low word (0x03).
type PHYID2 uint16

func (r PHYID2) PHYIDLow() uint16     { return uint16(r) }
func (r *PHYID2) SetPHYIDLow(v uint16) { *r = PHYID2(v) }

// ANAR is the auto-negotiation advertisement register (0x04).
type ANAR uint16

const (
	anarNextPage    = 15
	anarRemoteFault = 13
	anarAdvPause    = 10
	anarAdv100FD    = 8
	anarAdv100HD    = 7
	anarAdv10FD     = 6
	anarAdv10HD     = 5
)

func (r ANAR) NextPage() bool    { return bitfield.Bit(uint16(r), anarNextPage) }
func (r ANAR) RemoteFault() bool { return bitfield.Bit(uint16(r), anarRemoteFault) }
func (r ANAR) AdvPause() bool    { return bitfield.Bit(uint16(r), anarAdvPause) }
func (r ANAR) Adv100FD() bool    { return bitfield.Bit(uint16(r), anarAdv100FD) }
func (r ANAR) Adv100HD() bool    { return bitfield.Bit(uint16(r), anarAdv100HD) }
func (r ANAR) Adv10FD() bool     { return bitfield.Bit(uint16(r), anarAdv10FD) }
func (r ANAR) Adv10HD() bool     { return bitfield.Bit(uint16(r), anarAdv10HD) }

func (r *ANAR) SetAdvPause(v bool) { *r = ANAR(bitfield.SetBit(uint16(*r), anarAdvPause, v)) }
func (r *ANAR) SetAdv100FD(v bool) { *r = ANAR(bitfield.SetBit(uint16(*r), anarAdv100FD, v)) }
func (r *ANAR) SetAdv100HD(v bool) { *r = ANAR(bitfield.SetBit(uint16(*r), anarAdv100HD, v)) }
func (r *ANAR) SetAdv10FD(v bool)  { *r = ANAR(bitfield.SetBit(uint16(*r), anarAdv10FD, v)) }
func (r *ANAR) SetAdv10HD(v bool)  { *r = ANAR(bitfield.SetBit(uint16(*r), anarAdv10HD, v)) }

// ANLPAR is the auto-negotiation link partner ability register (0x05).
// Read-only.
type ANLPAR uint16

const (
	anlparNextPage = 15
	anlparLPPause  = 10
	anlparLP100FD  = 8
	anlparLP100HD  = 7
	anlparLP10FD   = 6
	anlparLP10HD   = 5
)

func (r ANLPAR) NextPage() bool { return bitfield.Bit(uint16(r), anlparNextPage) }
func (r ANLPAR) LPPause() bool  { return bitfield.Bit(uint16(r), anlparLPPause) }
func (r ANLPAR) LP100FD() bool  { return bitfield.Bit(uint16(r), anlparLP100FD) }
func (r ANLPAR) LP100HD() bool  { return bitfield.Bit(uint16(r), anlparLP100HD) }
func (r ANLPAR) LP10FD() bool   { return bitfield.Bit(uint16(r), anlparLP10FD) }
func (r ANLPAR) LP10HD() bool   { return bitfield.Bit(uint16(r), anlparLP10HD) }

// LinkMD is the LinkMD cable diagnostic register (0x1D).
type LinkMD uint16

const linkMDVCTEnable = 15
const linkMD10MShort = 12

var (
	linkMDVCTResult     = bitfield.Field[uint16]{Off: 13, Width: 2}
	linkMDVCTFaultCount = bitfield.Field[uint16]{Off: 0, Width: 9}
)

func (r LinkMD) VCTEnable() bool { return bitfield.Bit(uint16(r), linkMDVCTEnable) }

// VCTResult returns the 2-bit cable diagnostic result code.
func (r LinkMD) VCTResult() uint8    { return uint8(linkMDVCTResult.Get(uint16(r))) }
func (r LinkMD) VCT10MShort() bool   { return bitfield.Bit(uint16(r), linkMD10MShort) }
func (r LinkMD) VCTFaultCount() uint16 { return linkMDVCTFaultCount.Get(uint16(r)) }

func (r *LinkMD) SetVCTEnable(v bool) {
	*r = LinkMD(bitfield.SetBit(uint16(*r), linkMDVCTEnable, v))
}

// PHYSpecial is the PHY special control/status register (0x1F).
type PHYSpecial uint16

const (
	physPolarityReversed = 5
	physMDIXStatus       = 4
	physForceLink        = 3
	physPowerSave        = 2
	physRemoteLoopback   = 1
)

func (r PHYSpecial) PolarityReversed() bool { return bitfield.Bit(uint16(r), physPolarityReversed) }
func (r PHYSpecial) MDIXStatus() bool       { return bitfield.Bit(uint16(r), physMDIXStatus) }
func (r PHYSpecial) ForceLink() bool        { return bitfield.Bit(uint16(r), physForceLink) }
func (r PHYSpecial) PowerSave() bool        { return bitfield.Bit(uint16(r), physPowerSave) }
func (r PHYSpecial) RemoteLoopback() bool   { return bitfield.Bit(uint16(r), physRemoteLoopback) }

func (r *PHYSpecial) SetForceLink(v bool) {
	*r = PHYSpecial(bitfield.SetBit(uint16(*r), physForceLink, v))
}
func (r *PHYSpecial) SetPowerSave(v bool) {
	*r = PHYSpecial(bitfield.SetBit(uint16(*r), physPowerSave, v))
}
func (r *PHYSpecial) SetRemoteLoopback(v bool) {
	*r = PHYSpecial(bitfield.SetBit(uint16(*r), physRemoteLoopback, v))
}
