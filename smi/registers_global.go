package smi

import "ksz8863-go/bitfield"

// ChipID0 holds the chip family identifier (0x00). Read-only.
type ChipID0 uint8

func (r ChipID0) FamilyID() uint8 { return uint8(r) }

// ChipID1 holds the chip identifier and revision (0x01). Only StartSwitch is
// writable; the switch engine does not forward frames until it is set.
type ChipID1 uint8

var (
	chipID1ChipID     = bitfield.Field[uint8]{Off: 4, Width: 4}
	chipID1RevisionID = bitfield.Field[uint8]{Off: 1, Width: 3}
)

const chipID1StartSwitch = 0

func (r ChipID1) ChipID() uint8     { return chipID1ChipID.Get(uint8(r)) }
func (r ChipID1) RevisionID() uint8 { return chipID1RevisionID.Get(uint8(r)) }
func (r ChipID1) StartSwitch() bool { return bitfield.Bit(uint8(r), chipID1StartSwitch) }

func (r *ChipID1) SetStartSwitch(v bool) {
	*r = ChipID1(bitfield.SetBit(uint8(*r), chipID1StartSwitch, v))
}

// GC0 is global control 0 (0x02). The flush bits are self-clearing.
type GC0 uint8

const (
	gc0NewBackOff            = 7
	gc0FlushDynamicMACTable  = 5
	gc0FlushStaticMACTable   = 4
	gc0PassFlowControlPacket = 3
)

func (r GC0) NewBackOff() bool            { return bitfield.Bit(uint8(r), gc0NewBackOff) }
func (r GC0) FlushDynamicMACTable() bool  { return bitfield.Bit(uint8(r), gc0FlushDynamicMACTable) }
func (r GC0) FlushStaticMACTable() bool   { return bitfield.Bit(uint8(r), gc0FlushStaticMACTable) }
func (r GC0) PassFlowControlPacket() bool { return bitfield.Bit(uint8(r), gc0PassFlowControlPacket) }

func (r *GC0) SetNewBackOff(v bool) { *r = GC0(bitfield.SetBit(uint8(*r), gc0NewBackOff, v)) }
func (r *GC0) SetFlushDynamicMACTable(v bool) {
	*r = GC0(bitfield.SetBit(uint8(*r), gc0FlushDynamicMACTable, v))
}
func (r *GC0) SetFlushStaticMACTable(v bool) {
	*r = GC0(bitfield.SetBit(uint8(*r), gc0FlushStaticMACTable, v))
}
func (r *GC0) SetPassFlowControlPacket(v bool) {
	*r = GC0(bitfield.SetBit(uint8(*r), gc0PassFlowControlPacket, v))
}

// GC1 is global control 1 (0x03).
type GC1 uint8

const (
	gc1PassAllFrames         = 7
	gc1Port3TailTag          = 6
	gc1TxFlowControl         = 5
	gc1RxFlowControl         = 4
	gc1FrameLengthFieldCheck = 3
	gc1Aging                 = 2
	gc1FastAge               = 1
	gc1AggressiveBackOff     = 0
)

func (r GC1) PassAllFrames() bool { return bitfield.Bit(uint8(r), gc1PassAllFrames) }
func (r GC1) Port3TailTag() bool  { return bitfield.Bit(uint8(r), gc1Port3TailTag) }
func (r GC1) TxFlowControl() bool { return bitfield.Bit(uint8(r), gc1TxFlowControl) }
func (r GC1) RxFlowControl() bool { return bitfield.Bit(uint8(r), gc1RxFlowControl) }
func (r GC1) FrameLengthFieldCheck() bool {
	return bitfield.Bit(uint8(r), gc1FrameLengthFieldCheck)
}
func (r GC1) Aging() bool             { return bitfield.Bit(uint8(r), gc1Aging) }
func (r GC1) FastAge() bool           { return bitfield.Bit(uint8(r), gc1FastAge) }
func (r GC1) AggressiveBackOff() bool { return bitfield.Bit(uint8(r), gc1AggressiveBackOff) }

func (r *GC1) SetPassAllFrames(v bool) { *r = GC1(bitfield.SetBit(uint8(*r), gc1PassAllFrames, v)) }
func (r *GC1) SetPort3TailTag(v bool)  { *r = GC1(bitfield.SetBit(uint8(*r), gc1Port3TailTag, v)) }
func (r *GC1) SetTxFlowControl(v bool) { *r = GC1(bitfield.SetBit(uint8(*r), gc1TxFlowControl, v)) }
func (r *GC1) SetRxFlowControl(v bool) { *r = GC1(bitfield.SetBit(uint8(*r), gc1RxFlowControl, v)) }
func (r *GC1) SetFrameLengthFieldCheck(v bool) {
	*r = GC1(bitfield.SetBit(uint8(*r), gc1FrameLengthFieldCheck, v))
}
func (r *GC1) SetAging(v bool)   { *r = GC1(bitfield.SetBit(uint8(*r), gc1Aging, v)) }
func (r *GC1) SetFastAge(v bool) { *r = GC1(bitfield.SetBit(uint8(*r), gc1FastAge, v)) }
func (r *GC1) SetAggressiveBackOff(v bool) {
	*r = GC1(bitfield.SetBit(uint8(*r), gc1AggressiveBackOff, v))
}

// GC2 is global control 2 (0x04).
type GC2 uint8

const (
	gc2UnicastPortVLANMismatchDiscard  = 7
	gc2MulticastStormProtectionDisable = 6
	gc2BackPressureMode                = 5
	gc2FlowCtrlBackPressureFairMode    = 4
	gc2NoExcessiveCollisionDrop        = 3
	gc2HugePacketSupport               = 2
	gc2LegalMaxPacketSizeCheck         = 1
)

func (r GC2) UnicastPortVLANMismatchDiscard() bool {
	return bitfield.Bit(uint8(r), gc2UnicastPortVLANMismatchDiscard)
}
func (r GC2) MulticastStormProtectionDisable() bool {
	return bitfield.Bit(uint8(r), gc2MulticastStormProtectionDisable)
}
func (r GC2) BackPressureMode() bool { return bitfield.Bit(uint8(r), gc2BackPressureMode) }
func (r GC2) FlowCtrlBackPressureFairMode() bool {
	return bitfield.Bit(uint8(r), gc2FlowCtrlBackPressureFairMode)
}
func (r GC2) NoExcessiveCollisionDrop() bool {
	return bitfield.Bit(uint8(r), gc2NoExcessiveCollisionDrop)
}
func (r GC2) HugePacketSupport() bool { return bitfield.Bit(uint8(r), gc2HugePacketSupport) }
func (r GC2) LegalMaxPacketSizeCheck() bool {
	return bitfield.Bit(uint8(r), gc2LegalMaxPacketSizeCheck)
}

func (r *GC2) SetUnicastPortVLANMismatchDiscard(v bool) {
	*r = GC2(bitfield.SetBit(uint8(*r), gc2UnicastPortVLANMismatchDiscard, v))
}
func (r *GC2) SetMulticastStormProtectionDisable(v bool) {
	*r = GC2(bitfield.SetBit(uint8(*r), gc2MulticastStormProtectionDisable, v))
}
func (r *GC2) SetBackPressureMode(v bool) {
	*r = GC2(bitfield.SetBit(uint8(*r), gc2BackPressureMode, v))
}
func (r *GC2) SetFlowCtrlBackPressureFairMode(v bool) {
	*r = GC2(bitfield.SetBit(uint8(*r), gc2FlowCtrlBackPressureFairMode, v))
}
func (r *GC2) SetNoExcessiveCollisionDrop(v bool) {
	*r = GC2(bitfield.SetBit(uint8(*r), gc2NoExcessiveCollisionDrop, v))
}
func (r *GC2) SetHugePacketSupport(v bool) {
	*r = GC2(bitfield.SetBit(uint8(*r), gc2HugePacketSupport, v))
}
func (r *GC2) SetLegalMaxPacketSizeCheck(v bool) {
	*r = GC2(bitfield.SetBit(uint8(*r), gc2LegalMaxPacketSizeCheck, v))
}

// GC3 is global control 3 (0x05).
type GC3 uint8

const (
	gc3VLAN              = 7
	gc3IGMPSnoop         = 6
	gc3WeightedFairQueue = 3
	gc3SniffMode         = 0
)

func (r GC3) VLAN() bool              { return bitfield.Bit(uint8(r), gc3VLAN) }
func (r GC3) IGMPSnoop() bool         { return bitfield.Bit(uint8(r), gc3IGMPSnoop) }
func (r GC3) WeightedFairQueue() bool { return bitfield.Bit(uint8(r), gc3WeightedFairQueue) }
func (r GC3) SniffMode() bool         { return bitfield.Bit(uint8(r), gc3SniffMode) }

func (r *GC3) SetVLAN(v bool)      { *r = GC3(bitfield.SetBit(uint8(*r), gc3VLAN, v)) }
func (r *GC3) SetIGMPSnoop(v bool) { *r = GC3(bitfield.SetBit(uint8(*r), gc3IGMPSnoop, v)) }
func (r *GC3) SetWeightedFairQueue(v bool) {
	*r = GC3(bitfield.SetBit(uint8(*r), gc3WeightedFairQueue, v))
}
func (r *GC3) SetSniffMode(v bool) { *r = GC3(bitfield.SetBit(uint8(*r), gc3SniffMode, v)) }

// GC4 is global control 4 (0x06). The rate field is the top three bits of
// the 11-bit broadcast storm protection rate; GC5 holds the rest.
type GC4 uint8

const (
	gc4MIIHDMode          = 6
	gc4MIIFlowCtrl        = 5
	gc4MII10BT            = 4
	gc4NullVIDReplacement = 3
)

var gc4RateHigh = bitfield.Field[uint8]{Off: 0, Width: 3}

func (r GC4) MIIHDMode() bool          { return bitfield.Bit(uint8(r), gc4MIIHDMode) }
func (r GC4) MIIFlowCtrl() bool        { return bitfield.Bit(uint8(r), gc4MIIFlowCtrl) }
func (r GC4) MII10BT() bool            { return bitfield.Bit(uint8(r), gc4MII10BT) }
func (r GC4) NullVIDReplacement() bool { return bitfield.Bit(uint8(r), gc4NullVIDReplacement) }
func (r GC4) BroadcastStormProtectionRateHigh() uint8 {
	return gc4RateHigh.Get(uint8(r))
}

func (r *GC4) SetMIIHDMode(v bool)   { *r = GC4(bitfield.SetBit(uint8(*r), gc4MIIHDMode, v)) }
func (r *GC4) SetMIIFlowCtrl(v bool) { *r = GC4(bitfield.SetBit(uint8(*r), gc4MIIFlowCtrl, v)) }
func (r *GC4) SetMII10BT(v bool)     { *r = GC4(bitfield.SetBit(uint8(*r), gc4MII10BT, v)) }
func (r *GC4) SetNullVIDReplacement(v bool) {
	*r = GC4(bitfield.SetBit(uint8(*r), gc4NullVIDReplacement, v))
}
func (r *GC4) SetBroadcastStormProtectionRateHigh(v uint8) {
	*r = GC4(gc4RateHigh.Insert(uint8(*r), v))
}

// GC5 is global control 5 (0x07): the low byte of the broadcast storm
// protection rate.
type GC5 uint8

func (r GC5) BroadcastStormProtectionRateLow() uint8     { return uint8(r) }
func (r *GC5) SetBroadcastStormProtectionRateLow(v uint8) { *r = GC5(v) }

// GC9 is global control 9 (0x0B).
type GC9 uint8

var gc9CPUIfaceClk = bitfield.Field[uint8]{Off: 6, Width: 2}

func (r GC9) CPUIfaceClk() uint8     { return gc9CPUIfaceClk.Get(uint8(r)) }
func (r *GC9) SetCPUIfaceClk(v uint8) { *r = GC9(gc9CPUIfaceClk.Insert(uint8(*r), v)) }

// GC10 is global control 10 (0x0C): egress priority mapping for tag values
// 0 through 3.
type GC10 uint8

var (
	gc10Tag3 = bitfield.Field[uint8]{Off: 6, Width: 2}
	gc10Tag2 = bitfield.Field[uint8]{Off: 4, Width: 2}
	gc10Tag1 = bitfield.Field[uint8]{Off: 2, Width: 2}
	gc10Tag0 = bitfield.Field[uint8]{Off: 0, Width: 2}
)

func (r GC10) Tag3() uint8 { return gc10Tag3.Get(uint8(r)) }
func (r GC10) Tag2() uint8 { return gc10Tag2.Get(uint8(r)) }
func (r GC10) Tag1() uint8 { return gc10Tag1.Get(uint8(r)) }
func (r GC10) Tag0() uint8 { return gc10Tag0.Get(uint8(r)) }

func (r *GC10) SetTag3(v uint8) { *r = GC10(gc10Tag3.Insert(uint8(*r), v)) }
func (r *GC10) SetTag2(v uint8) { *r = GC10(gc10Tag2.Insert(uint8(*r), v)) }
func (r *GC10) SetTag1(v uint8) { *r = GC10(gc10Tag1.Insert(uint8(*r), v)) }
func (r *GC10) SetTag0(v uint8) { *r = GC10(gc10Tag0.Insert(uint8(*r), v)) }

// GC11 is global control 11 (0x0D): egress priority mapping for tag values
// 4 through 7.
type GC11 uint8

var (
	gc11Tag7 = bitfield.Field[uint8]{Off: 6, Width: 2}
	gc11Tag6 = bitfield.Field[uint8]{Off: 4, Width: 2}
	gc11Tag5 = bitfield.Field[uint8]{Off: 2, Width: 2}
	gc11Tag4 = bitfield.Field[uint8]{Off: 0, Width: 2}
)

func (r GC11) Tag7() uint8 { return gc11Tag7.Get(uint8(r)) }
func (r GC11) Tag6() uint8 { return gc11Tag6.Get(uint8(r)) }
func (r GC11) Tag5() uint8 { return gc11Tag5.Get(uint8(r)) }
func (r GC11) Tag4() uint8 { return gc11Tag4.Get(uint8(r)) }

func (r *GC11) SetTag7(v uint8) { *r = GC11(gc11Tag7.Insert(uint8(*r), v)) }
func (r *GC11) SetTag6(v uint8) { *r = GC11(gc11Tag6.Insert(uint8(*r), v)) }
func (r *GC11) SetTag5(v uint8) { *r = GC11(gc11Tag5.Insert(uint8(*r), v)) }
func (r *GC11) SetTag4(v uint8) { *r = GC11(gc11Tag4.Insert(uint8(*r), v)) }

// GC12 is global control 12 (0x0E).
type GC12 uint8

const (
	gc12UnknownPacketDefaultPortEnable = 7
	gc12DriveStrength                  = 6
)

var gc12UnknownPacketDefaultPort = bitfield.Field[uint8]{Off: 0, Width: 3}

func (r GC12) UnknownPacketDefaultPortEnable() bool {
	return bitfield.Bit(uint8(r), gc12UnknownPacketDefaultPortEnable)
}
func (r GC12) DriveStrength() bool { return bitfield.Bit(uint8(r), gc12DriveStrength) }

// UnknownPacketDefaultPort is a port membership bitmap, one bit per port.
func (r GC12) UnknownPacketDefaultPort() uint8 {
	return gc12UnknownPacketDefaultPort.Get(uint8(r))
}

func (r *GC12) SetUnknownPacketDefaultPortEnable(v bool) {
	*r = GC12(bitfield.SetBit(uint8(*r), gc12UnknownPacketDefaultPortEnable, v))
}
func (r *GC12) SetDriveStrength(v bool) {
	*r = GC12(bitfield.SetBit(uint8(*r), gc12DriveStrength, v))
}
func (r *GC12) SetUnknownPacketDefaultPort(v uint8) {
	*r = GC12(gc12UnknownPacketDefaultPort.Insert(uint8(*r), v))
}

// GC13 is global control 13 (0x0F): the MIIM address of PHY 1. PHY 2
// answers at the next address up.
type GC13 uint8

var gc13PHYAddr = bitfield.Field[uint8]{Off: 3, Width: 5}

func (r GC13) PHYAddr() uint8     { return gc13PHYAddr.Get(uint8(r)) }
func (r *GC13) SetPHYAddr(v uint8) { *r = GC13(gc13PHYAddr.Insert(uint8(*r), v)) }
