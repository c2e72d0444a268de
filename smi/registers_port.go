package smi

import "ksz8863-go/bitfield"

// The three port banks share one register layout, so each offset gets a
// single type here regardless of port. Layout differences between ports are
// small and noted on the affected fields.

// PortCtrl0 is port control 0 (bank offset 0x0).
type PortCtrl0 uint8

const (
	pc0BroadcastStormProtection      = 7
	pc0DiffServPriorityClassification = 6
	pc0IEEEPriorityClassification    = 5
	pc0TagInsertion                  = 2
	pc0TagRemoval                    = 1
	pc0TxqSplitEnable                = 0
)

var pc0PortBasedPriority = bitfield.Field[uint8]{Off: 3, Width: 2}

func (r PortCtrl0) BroadcastStormProtection() bool {
	return bitfield.Bit(uint8(r), pc0BroadcastStormProtection)
}
func (r PortCtrl0) DiffServPriorityClassification() bool {
	return bitfield.Bit(uint8(r), pc0DiffServPriorityClassification)
}
func (r PortCtrl0) IEEEPriorityClassification() bool {
	return bitfield.Bit(uint8(r), pc0IEEEPriorityClassification)
}
func (r PortCtrl0) PortBasedPriorityClassification() uint8 {
	return pc0PortBasedPriority.Get(uint8(r))
}
func (r PortCtrl0) TagInsertion() bool   { return bitfield.Bit(uint8(r), pc0TagInsertion) }
func (r PortCtrl0) TagRemoval() bool     { return bitfield.Bit(uint8(r), pc0TagRemoval) }
func (r PortCtrl0) TxqSplitEnable() bool { return bitfield.Bit(uint8(r), pc0TxqSplitEnable) }

func (r *PortCtrl0) SetBroadcastStormProtection(v bool) {
	*r = PortCtrl0(bitfield.SetBit(uint8(*r), pc0BroadcastStormProtection, v))
}
func (r *PortCtrl0) SetDiffServPriorityClassification(v bool) {
	*r = PortCtrl0(bitfield.SetBit(uint8(*r), pc0DiffServPriorityClassification, v))
}
func (r *PortCtrl0) SetIEEEPriorityClassification(v bool) {
	*r = PortCtrl0(bitfield.SetBit(uint8(*r), pc0IEEEPriorityClassification, v))
}
func (r *PortCtrl0) SetPortBasedPriorityClassification(v uint8) {
	*r = PortCtrl0(pc0PortBasedPriority.Insert(uint8(*r), v))
}
func (r *PortCtrl0) SetTagInsertion(v bool) {
	*r = PortCtrl0(bitfield.SetBit(uint8(*r), pc0TagInsertion, v))
}
func (r *PortCtrl0) SetTagRemoval(v bool) {
	*r = PortCtrl0(bitfield.SetBit(uint8(*r), pc0TagRemoval, v))
}
func (r *PortCtrl0) SetTxqSplitEnable(v bool) {
	*r = PortCtrl0(bitfield.SetBit(uint8(*r), pc0TxqSplitEnable, v))
}

// PortCtrl1 is port control 1 (bank offset 0x1).
type PortCtrl1 uint8

const (
	pc1SnifferPort         = 7
	pc1ReceiveSniff        = 6
	pc1TransmitSniff       = 5
	pc1DoubleTag           = 4
	pc1UserPriorityCeiling = 3
)

var pc1PortVLANMembership = bitfield.Field[uint8]{Off: 0, Width: 3}

func (r PortCtrl1) SnifferPort() bool   { return bitfield.Bit(uint8(r), pc1SnifferPort) }
func (r PortCtrl1) ReceiveSniff() bool  { return bitfield.Bit(uint8(r), pc1ReceiveSniff) }
func (r PortCtrl1) TransmitSniff() bool { return bitfield.Bit(uint8(r), pc1TransmitSniff) }
func (r PortCtrl1) DoubleTag() bool     { return bitfield.Bit(uint8(r), pc1DoubleTag) }
func (r PortCtrl1) UserPriorityCeiling() bool {
	return bitfield.Bit(uint8(r), pc1UserPriorityCeiling)
}

// PortVLANMembership is a bitmap of the ports this port may forward to.
func (r PortCtrl1) PortVLANMembership() uint8 { return pc1PortVLANMembership.Get(uint8(r)) }

func (r *PortCtrl1) SetSnifferPort(v bool) {
	*r = PortCtrl1(bitfield.SetBit(uint8(*r), pc1SnifferPort, v))
}
func (r *PortCtrl1) SetReceiveSniff(v bool) {
	*r = PortCtrl1(bitfield.SetBit(uint8(*r), pc1ReceiveSniff, v))
}
func (r *PortCtrl1) SetTransmitSniff(v bool) {
	*r = PortCtrl1(bitfield.SetBit(uint8(*r), pc1TransmitSniff, v))
}
func (r *PortCtrl1) SetDoubleTag(v bool) {
	*r = PortCtrl1(bitfield.SetBit(uint8(*r), pc1DoubleTag, v))
}
func (r *PortCtrl1) SetUserPriorityCeiling(v bool) {
	*r = PortCtrl1(bitfield.SetBit(uint8(*r), pc1UserPriorityCeiling, v))
}
func (r *PortCtrl1) SetPortVLANMembership(v uint8) {
	*r = PortCtrl1(pc1PortVLANMembership.Insert(uint8(*r), v))
}

// PortCtrl2 is port control 2 (bank offset 0x2). ForceFlowControl exists on
// ports 1 and 2 only.
type PortCtrl2 uint8

const (
	pc2Enable2QueueSplitTx   = 7
	pc2IngressVLANFiltering  = 6
	pc2DiscardNonPVIDPackets = 5
	pc2ForceFlowControl      = 4
	pc2BackPressure          = 3
	pc2Transmit              = 2
	pc2Receive               = 1
	pc2LearningDisable       = 0
)

func (r PortCtrl2) Enable2QueueSplitTx() bool {
	return bitfield.Bit(uint8(r), pc2Enable2QueueSplitTx)
}
func (r PortCtrl2) IngressVLANFiltering() bool {
	return bitfield.Bit(uint8(r), pc2IngressVLANFiltering)
}
func (r PortCtrl2) DiscardNonPVIDPackets() bool {
	return bitfield.Bit(uint8(r), pc2DiscardNonPVIDPackets)
}
func (r PortCtrl2) ForceFlowControl() bool { return bitfield.Bit(uint8(r), pc2ForceFlowControl) }
func (r PortCtrl2) BackPressure() bool     { return bitfield.Bit(uint8(r), pc2BackPressure) }
func (r PortCtrl2) Transmit() bool         { return bitfield.Bit(uint8(r), pc2Transmit) }
func (r PortCtrl2) Receive() bool          { return bitfield.Bit(uint8(r), pc2Receive) }
func (r PortCtrl2) LearningDisable() bool  { return bitfield.Bit(uint8(r), pc2LearningDisable) }

func (r *PortCtrl2) SetEnable2QueueSplitTx(v bool) {
	*r = PortCtrl2(bitfield.SetBit(uint8(*r), pc2Enable2QueueSplitTx, v))
}
func (r *PortCtrl2) SetIngressVLANFiltering(v bool) {
	*r = PortCtrl2(bitfield.SetBit(uint8(*r), pc2IngressVLANFiltering, v))
}
func (r *PortCtrl2) SetDiscardNonPVIDPackets(v bool) {
	*r = PortCtrl2(bitfield.SetBit(uint8(*r), pc2DiscardNonPVIDPackets, v))
}
func (r *PortCtrl2) SetForceFlowControl(v bool) {
	*r = PortCtrl2(bitfield.SetBit(uint8(*r), pc2ForceFlowControl, v))
}
func (r *PortCtrl2) SetBackPressure(v bool) {
	*r = PortCtrl2(bitfield.SetBit(uint8(*r), pc2BackPressure, v))
}
func (r *PortCtrl2) SetTransmit(v bool) {
	*r = PortCtrl2(bitfield.SetBit(uint8(*r), pc2Transmit, v))
}
func (r *PortCtrl2) SetReceive(v bool) {
	*r = PortCtrl2(bitfield.SetBit(uint8(*r), pc2Receive, v))
}
func (r *PortCtrl2) SetLearningDisable(v bool) {
	*r = PortCtrl2(bitfield.SetBit(uint8(*r), pc2LearningDisable, v))
}

// PortCtrl3 is port control 3 (bank offset 0x3): the high byte of the
// port's default tag.
type PortCtrl3 uint8

func (r PortCtrl3) DefaultTagHigh() uint8     { return uint8(r) }
func (r *PortCtrl3) SetDefaultTagHigh(v uint8) { *r = PortCtrl3(v) }

// PortCtrl4 is port control 4 (bank offset 0x4): the low byte of the port's
// default tag.
type PortCtrl4 uint8

func (r PortCtrl4) DefaultTagLow() uint8     { return uint8(r) }
func (r *PortCtrl4) SetDefaultTagLow(v uint8) { *r = PortCtrl4(v) }

// PortCtrl5 is port control 5 (bank offset 0x5). Port3MIIModeSelection
// exists on port 3 only.
type PortCtrl5 uint8

const (
	pc5Port3MIIModeSelection         = 7
	pc5SelfAddrFilteringEnableMACA1  = 6
	pc5SelfAddrFilteringEnableMACA2  = 5
	pc5DropIngressTaggedFrame        = 4
	pc5CountIFG                      = 1
	pc5CountPre                      = 0
)

var pc5LimitMode = bitfield.Field[uint8]{Off: 2, Width: 2}

func (r PortCtrl5) Port3MIIModeSelection() bool {
	return bitfield.Bit(uint8(r), pc5Port3MIIModeSelection)
}
func (r PortCtrl5) SelfAddrFilteringEnableMACA1() bool {
	return bitfield.Bit(uint8(r), pc5SelfAddrFilteringEnableMACA1)
}
func (r PortCtrl5) SelfAddrFilteringEnableMACA2() bool {
	return bitfield.Bit(uint8(r), pc5SelfAddrFilteringEnableMACA2)
}
func (r PortCtrl5) DropIngressTaggedFrame() bool {
	return bitfield.Bit(uint8(r), pc5DropIngressTaggedFrame)
}
func (r PortCtrl5) LimitMode() uint8 { return pc5LimitMode.Get(uint8(r)) }
func (r PortCtrl5) CountIFG() bool   { return bitfield.Bit(uint8(r), pc5CountIFG) }
func (r PortCtrl5) CountPre() bool   { return bitfield.Bit(uint8(r), pc5CountPre) }

func (r *PortCtrl5) SetPort3MIIModeSelection(v bool) {
	*r = PortCtrl5(bitfield.SetBit(uint8(*r), pc5Port3MIIModeSelection, v))
}
func (r *PortCtrl5) SetSelfAddrFilteringEnableMACA1(v bool) {
	*r = PortCtrl5(bitfield.SetBit(uint8(*r), pc5SelfAddrFilteringEnableMACA1, v))
}
func (r *PortCtrl5) SetSelfAddrFilteringEnableMACA2(v bool) {
	*r = PortCtrl5(bitfield.SetBit(uint8(*r), pc5SelfAddrFilteringEnableMACA2, v))
}
func (r *PortCtrl5) SetDropIngressTaggedFrame(v bool) {
	*r = PortCtrl5(bitfield.SetBit(uint8(*r), pc5DropIngressTaggedFrame, v))
}
func (r *PortCtrl5) SetLimitMode(v uint8) { *r = PortCtrl5(pc5LimitMode.Insert(uint8(*r), v)) }
func (r *PortCtrl5) SetCountIFG(v bool) {
	*r = PortCtrl5(bitfield.SetBit(uint8(*r), pc5CountIFG, v))
}
func (r *PortCtrl5) SetCountPre(v bool) {
	*r = PortCtrl5(bitfield.SetBit(uint8(*r), pc5CountPre, v))
}

// PortRateLimit is a per-queue ingress rate limit register (bank offsets
// 0x6 through 0x9). RMIIRefclkInvert exists only in port 3's queue 0
// register.
type PortRateLimit uint8

const prlRMIIRefclkInvert = 7

var prlLimit = bitfield.Field[uint8]{Off: 0, Width: 7}

func (r PortRateLimit) RMIIRefclkInvert() bool {
	return bitfield.Bit(uint8(r), prlRMIIRefclkInvert)
}
func (r PortRateLimit) Limit() uint8 { return prlLimit.Get(uint8(r)) }

func (r *PortRateLimit) SetRMIIRefclkInvert(v bool) {
	*r = PortRateLimit(bitfield.SetBit(uint8(*r), prlRMIIRefclkInvert, v))
}
func (r *PortRateLimit) SetLimit(v uint8) { *r = PortRateLimit(prlLimit.Insert(uint8(*r), v)) }

// PortPHYSpecial is the per-port LinkMD control/status register (bank
// offset 0xA, ports 1 and 2). The result fields are read-only.
type PortPHYSpecial uint8

const (
	ppsVCTEnable      = 4
	ppsForceLink      = 3
	ppsRemoteLoopback = 1
	ppsVCTFaultCount8 = 0
)

var ppsVCTResult = bitfield.Field[uint8]{Off: 5, Width: 2}

func (r PortPHYSpecial) VCTResult() uint8     { return ppsVCTResult.Get(uint8(r)) }
func (r PortPHYSpecial) VCTEnable() bool      { return bitfield.Bit(uint8(r), ppsVCTEnable) }
func (r PortPHYSpecial) ForceLink() bool      { return bitfield.Bit(uint8(r), ppsForceLink) }
func (r PortPHYSpecial) RemoteLoopback() bool { return bitfield.Bit(uint8(r), ppsRemoteLoopback) }

// VCTFaultCount8 is bit 8 of the fault distance; LinkMDResult holds the
// low byte.
func (r PortPHYSpecial) VCTFaultCount8() bool { return bitfield.Bit(uint8(r), ppsVCTFaultCount8) }

func (r *PortPHYSpecial) SetVCTEnable(v bool) {
	*r = PortPHYSpecial(bitfield.SetBit(uint8(*r), ppsVCTEnable, v))
}
func (r *PortPHYSpecial) SetForceLink(v bool) {
	*r = PortPHYSpecial(bitfield.SetBit(uint8(*r), ppsForceLink, v))
}
func (r *PortPHYSpecial) SetRemoteLoopback(v bool) {
	*r = PortPHYSpecial(bitfield.SetBit(uint8(*r), ppsRemoteLoopback, v))
}

// PortLinkMDResult holds bits 7..0 of the LinkMD fault distance (bank
// offset 0xB, ports 1 and 2). Read-only.
type PortLinkMDResult uint8

func (r PortLinkMDResult) VCTFaultCountLow() uint8 { return uint8(r) }

// PortCtrl12 is port control 12 (bank offset 0xC, ports 1 and 2):
// auto-negotiation control and advertisement.
type PortCtrl12 uint8

const (
	pc12ANEnable    = 7
	pc12ForceSpeed  = 6
	pc12ForceDuplex = 5
	pc12AdvFlowCtrl = 4
	pc12Adv100FD    = 3
	pc12Adv100HD    = 2
	pc12Adv10FD     = 1
	pc12Adv10HD     = 0
)

func (r PortCtrl12) ANEnable() bool    { return bitfield.Bit(uint8(r), pc12ANEnable) }
func (r PortCtrl12) ForceSpeed() bool  { return bitfield.Bit(uint8(r), pc12ForceSpeed) }
func (r PortCtrl12) ForceDuplex() bool { return bitfield.Bit(uint8(r), pc12ForceDuplex) }
func (r PortCtrl12) AdvFlowCtrl() bool { return bitfield.Bit(uint8(r), pc12AdvFlowCtrl) }
func (r PortCtrl12) Adv100FD() bool    { return bitfield.Bit(uint8(r), pc12Adv100FD) }
func (r PortCtrl12) Adv100HD() bool    { return bitfield.Bit(uint8(r), pc12Adv100HD) }
func (r PortCtrl12) Adv10FD() bool     { return bitfield.Bit(uint8(r), pc12Adv10FD) }
func (r PortCtrl12) Adv10HD() bool     { return bitfield.Bit(uint8(r), pc12Adv10HD) }

func (r *PortCtrl12) SetANEnable(v bool) {
	*r = PortCtrl12(bitfield.SetBit(uint8(*r), pc12ANEnable, v))
}
func (r *PortCtrl12) SetForceSpeed(v bool) {
	*r = PortCtrl12(bitfield.SetBit(uint8(*r), pc12ForceSpeed, v))
}
func (r *PortCtrl12) SetForceDuplex(v bool) {
	*r = PortCtrl12(bitfield.SetBit(uint8(*r), pc12ForceDuplex, v))
}
func (r *PortCtrl12) SetAdvFlowCtrl(v bool) {
	*r = PortCtrl12(bitfield.SetBit(uint8(*r), pc12AdvFlowCtrl, v))
}
func (r *PortCtrl12) SetAdv100FD(v bool) {
	*r = PortCtrl12(bitfield.SetBit(uint8(*r), pc12Adv100FD, v))
}
func (r *PortCtrl12) SetAdv100HD(v bool) {
	*r = PortCtrl12(bitfield.SetBit(uint8(*r), pc12Adv100HD, v))
}
func (r *PortCtrl12) SetAdv10FD(v bool) {
	*r = PortCtrl12(bitfield.SetBit(uint8(*r), pc12Adv10FD, v))
}
func (r *PortCtrl12) SetAdv10HD(v bool) {
	*r = PortCtrl12(bitfield.SetBit(uint8(*r), pc12Adv10HD, v))
}

// PortCtrl13 is port control 13 (bank offset 0xD, ports 1 and 2).
type PortCtrl13 uint8

const (
	pc13LEDOff             = 7
	pc13DisableTx          = 6
	pc13RestartAN          = 5
	pc13DisableFarEndFault = 4
	pc13PowerDown          = 3
	pc13DisableAutoMDIX    = 2
	pc13ForceMDI           = 1
	pc13Loopback           = 0
)

func (r PortCtrl13) LEDOff() bool    { return bitfield.Bit(uint8(r), pc13LEDOff) }
func (r PortCtrl13) DisableTx() bool { return bitfield.Bit(uint8(r), pc13DisableTx) }
func (r PortCtrl13) RestartAN() bool { return bitfield.Bit(uint8(r), pc13RestartAN) }
func (r PortCtrl13) DisableFarEndFault() bool {
	return bitfield.Bit(uint8(r), pc13DisableFarEndFault)
}
func (r PortCtrl13) PowerDown() bool       { return bitfield.Bit(uint8(r), pc13PowerDown) }
func (r PortCtrl13) DisableAutoMDIX() bool { return bitfield.Bit(uint8(r), pc13DisableAutoMDIX) }
func (r PortCtrl13) ForceMDI() bool        { return bitfield.Bit(uint8(r), pc13ForceMDI) }
func (r PortCtrl13) Loopback() bool        { return bitfield.Bit(uint8(r), pc13Loopback) }

func (r *PortCtrl13) SetLEDOff(v bool) {
	*r = PortCtrl13(bitfield.SetBit(uint8(*r), pc13LEDOff, v))
}
func (r *PortCtrl13) SetDisableTx(v bool) {
	*r = PortCtrl13(bitfield.SetBit(uint8(*r), pc13DisableTx, v))
}
func (r *PortCtrl13) SetRestartAN(v bool) {
	*r = PortCtrl13(bitfield.SetBit(uint8(*r), pc13RestartAN, v))
}
func (r *PortCtrl13) SetDisableFarEndFault(v bool) {
	*r = PortCtrl13(bitfield.SetBit(uint8(*r), pc13DisableFarEndFault, v))
}
func (r *PortCtrl13) SetPowerDown(v bool) {
	*r = PortCtrl13(bitfield.SetBit(uint8(*r), pc13PowerDown, v))
}
func (r *PortCtrl13) SetDisableAutoMDIX(v bool) {
	*r = PortCtrl13(bitfield.SetBit(uint8(*r), pc13DisableAutoMDIX, v))
}
func (r *PortCtrl13) SetForceMDI(v bool) {
	*r = PortCtrl13(bitfield.SetBit(uint8(*r), pc13ForceMDI, v))
}
func (r *PortCtrl13) SetLoopback(v bool) {
	*r = PortCtrl13(bitfield.SetBit(uint8(*r), pc13Loopback, v))
}

// PortStatus0 is port status 0 (bank offset 0xE, ports 1 and 2). Read-only.
type PortStatus0 uint8

const (
	ps0MDIXStatus      = 7
	ps0ANDone          = 6
	ps0LinkGood        = 5
	ps0PartnerFlowCtrl = 4
	ps0Partner100FD    = 3
	ps0Partner100HD    = 2
	ps0Partner10FD     = 1
	ps0Partner10HD     = 0
)

func (r PortStatus0) MDIXStatus() bool      { return bitfield.Bit(uint8(r), ps0MDIXStatus) }
func (r PortStatus0) ANDone() bool          { return bitfield.Bit(uint8(r), ps0ANDone) }
func (r PortStatus0) LinkGood() bool        { return bitfield.Bit(uint8(r), ps0LinkGood) }
func (r PortStatus0) PartnerFlowCtrl() bool { return bitfield.Bit(uint8(r), ps0PartnerFlowCtrl) }
func (r PortStatus0) Partner100FD() bool    { return bitfield.Bit(uint8(r), ps0Partner100FD) }
func (r PortStatus0) Partner100HD() bool    { return bitfield.Bit(uint8(r), ps0Partner100HD) }
func (r PortStatus0) Partner10FD() bool     { return bitfield.Bit(uint8(r), ps0Partner10FD) }
func (r PortStatus0) Partner10HD() bool     { return bitfield.Bit(uint8(r), ps0Partner10HD) }

// PortStatus1 is port status 1 (bank offset 0xF). Read-only. Port 3's copy
// carries only the flow control and operation fields.
type PortStatus1 uint8

const (
	ps1HPMDIX           = 7
	ps1PolarityReversed = 5
	ps1TxFlowCtrl       = 4
	ps1RxFlowCtrl       = 3
	ps1OperationSpeed   = 2
	ps1OperationDuplex  = 1
	ps1FarEndFault      = 0
)

func (r PortStatus1) HPMDIX() bool           { return bitfield.Bit(uint8(r), ps1HPMDIX) }
func (r PortStatus1) PolarityReversed() bool { return bitfield.Bit(uint8(r), ps1PolarityReversed) }
func (r PortStatus1) TxFlowCtrl() bool       { return bitfield.Bit(uint8(r), ps1TxFlowCtrl) }
func (r PortStatus1) RxFlowCtrl() bool       { return bitfield.Bit(uint8(r), ps1RxFlowCtrl) }
func (r PortStatus1) OperationSpeed() bool   { return bitfield.Bit(uint8(r), ps1OperationSpeed) }
func (r PortStatus1) OperationDuplex() bool  { return bitfield.Bit(uint8(r), ps1OperationDuplex) }
func (r PortStatus1) FarEndFault() bool      { return bitfield.Bit(uint8(r), ps1FarEndFault) }

// TxQSplit is a per-port, per-queue transmit queue split control register
// (0xAF through 0xBA).
type TxQSplit uint8

const txqPrioritySelect = 7

func (r TxQSplit) PrioritySelect() bool { return bitfield.Bit(uint8(r), txqPrioritySelect) }

func (r *TxQSplit) SetPrioritySelect(v bool) {
	*r = TxQSplit(bitfield.SetBit(uint8(*r), txqPrioritySelect, v))
}
