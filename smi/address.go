package smi

import "fmt"

// Address is an 8-bit SMI register address. The documented register file is
// sparse: gaps between the named registers below hold factory test registers
// that must not be touched.
type Address uint8

// Chip ID and global control registers.
const (
	AddrChipID0 Address = 0x00 // R
	AddrChipID1 Address = 0x01 // RW (start switch bit)
	AddrGC0     Address = 0x02 // RW
	AddrGC1     Address = 0x03 // RW
	AddrGC2     Address = 0x04 // RW
	AddrGC3     Address = 0x05 // RW
	AddrGC4     Address = 0x06 // RW
	AddrGC5     Address = 0x07 // RW
	AddrGC9     Address = 0x0B // RW
	AddrGC10    Address = 0x0C // RW
	AddrGC11    Address = 0x0D // RW
	AddrGC12    Address = 0x0E // RW
	AddrGC13    Address = 0x0F // RW
)

// Port register banks, one per port at 0x10*port. Ports 1 and 2 expose the
// full bank; port 3 (the MII port) stops after the rate limit registers and
// has only the reduced Status1.
const (
	AddrPort1Ctrl0              Address = 0x10 // RW
	AddrPort1Ctrl1              Address = 0x11 // RW
	AddrPort1Ctrl2              Address = 0x12 // RW
	AddrPort1Ctrl3              Address = 0x13 // RW
	AddrPort1Ctrl4              Address = 0x14 // RW
	AddrPort1Ctrl5              Address = 0x15 // RW
	AddrPort1Q0IngressRateLimit Address = 0x16 // RW
	AddrPort1Q1IngressRateLimit Address = 0x17 // RW
	AddrPort1Q2IngressRateLimit Address = 0x18 // RW
	AddrPort1Q3IngressRateLimit Address = 0x19 // RW
	AddrPort1PHYSpecial         Address = 0x1A // RW
	AddrPort1LinkMDResult       Address = 0x1B // R
	AddrPort1Ctrl12             Address = 0x1C // RW
	AddrPort1Ctrl13             Address = 0x1D // RW
	AddrPort1Status0            Address = 0x1E // R
	AddrPort1Status1            Address = 0x1F // R

	AddrPort2Ctrl0              Address = 0x20 // RW
	AddrPort2Ctrl1              Address = 0x21 // RW
	AddrPort2Ctrl2              Address = 0x22 // RW
	AddrPort2Ctrl3              Address = 0x23 // RW
	AddrPort2Ctrl4              Address = 0x24 // RW
	AddrPort2Ctrl5              Address = 0x25 // RW
	AddrPort2Q0IngressRateLimit Address = 0x26 // RW
	AddrPort2Q1IngressRateLimit Address = 0x27 // RW
	AddrPort2Q2IngressRateLimit Address = 0x28 // RW
	AddrPort2Q3IngressRateLimit Address = 0x29 // RW
	AddrPort2PHYSpecial         Address = 0x2A // RW
	AddrPort2LinkMDResult       Address = 0x2B // R
	AddrPort2Ctrl12             Address = 0x2C // RW
	AddrPort2Ctrl13             Address = 0x2D // RW
	AddrPort2Status0            Address = 0x2E // R
	AddrPort2Status1            Address = 0x2F // R

	AddrPort3Ctrl0              Address = 0x30 // RW
	AddrPort3Ctrl1              Address = 0x31 // RW
	AddrPort3Ctrl2              Address = 0x32 // RW
	AddrPort3Ctrl3              Address = 0x33 // RW
	AddrPort3Ctrl4              Address = 0x34 // RW
	AddrPort3Ctrl5              Address = 0x35 // RW
	AddrPort3Q0IngressRateLimit Address = 0x36 // RW
	AddrPort3Q1IngressRateLimit Address = 0x37 // RW
	AddrPort3Q2IngressRateLimit Address = 0x38 // RW
	AddrPort3Q3IngressRateLimit Address = 0x39 // RW
	AddrPort3Status1            Address = 0x3F // R
)

// Reset and advanced control registers.
const (
	AddrReset Address = 0x43 // RW

	AddrTOSPriority0  Address = 0x60 // RW
	AddrTOSPriority1  Address = 0x61 // RW
	AddrTOSPriority2  Address = 0x62 // RW
	AddrTOSPriority3  Address = 0x63 // RW
	AddrTOSPriority4  Address = 0x64 // RW
	AddrTOSPriority5  Address = 0x65 // RW
	AddrTOSPriority6  Address = 0x66 // RW
	AddrTOSPriority7  Address = 0x67 // RW
	AddrTOSPriority8  Address = 0x68 // RW
	AddrTOSPriority9  Address = 0x69 // RW
	AddrTOSPriority10 Address = 0x6A // RW
	AddrTOSPriority11 Address = 0x6B // RW
	AddrTOSPriority12 Address = 0x6C // RW
	AddrTOSPriority13 Address = 0x6D // RW
	AddrTOSPriority14 Address = 0x6E // RW
	AddrTOSPriority15 Address = 0x6F // RW

	AddrMACAddr0 Address = 0x70 // RW, MSB
	AddrMACAddr1 Address = 0x71 // RW
	AddrMACAddr2 Address = 0x72 // RW
	AddrMACAddr3 Address = 0x73 // RW
	AddrMACAddr4 Address = 0x74 // RW
	AddrMACAddr5 Address = 0x75 // RW, LSB

	AddrUserDef1 Address = 0x76 // RW
	AddrUserDef2 Address = 0x77 // RW
	AddrUserDef3 Address = 0x78 // RW

	AddrIndirectAccessCtrl0 Address = 0x79 // RW
	AddrIndirectAccessCtrl1 Address = 0x7A // RW
	AddrIndirectData8       Address = 0x7B // RW
	AddrIndirectData7       Address = 0x7C // RW
	AddrIndirectData6       Address = 0x7D // RW
	AddrIndirectData5       Address = 0x7E // RW
	AddrIndirectData4       Address = 0x7F // RW
	AddrIndirectData3       Address = 0x80 // RW
	AddrIndirectData2       Address = 0x81 // RW
	AddrIndirectData1       Address = 0x82 // RW
	AddrIndirectData0       Address = 0x83 // RW

	AddrStation1MACAddr0 Address = 0x8E // RW
	AddrStation1MACAddr1 Address = 0x8F // RW
	AddrStation1MACAddr2 Address = 0x90 // RW
	AddrStation1MACAddr3 Address = 0x91 // RW
	AddrStation1MACAddr4 Address = 0x92 // RW
	AddrStation1MACAddr5 Address = 0x93 // RW
	AddrStation2MACAddr0 Address = 0x94 // RW
	AddrStation2MACAddr1 Address = 0x95 // RW
	AddrStation2MACAddr2 Address = 0x96 // RW
	AddrStation2MACAddr3 Address = 0x97 // RW
	AddrStation2MACAddr4 Address = 0x98 // RW
	AddrStation2MACAddr5 Address = 0x99 // RW

	AddrMode                        Address = 0xA6 // R
	AddrHighPriorityPacketBufferQ3  Address = 0xA7 // R
	AddrHighPriorityPacketBufferQ2  Address = 0xA8 // R
	AddrHighPriorityPacketBufferQ1  Address = 0xA9 // R
	AddrHighPriorityPacketBufferQ0  Address = 0xAA // R
	AddrPMUsageFlowCtrlSelectMode1  Address = 0xAB // R
	AddrPMUsageFlowCtrlSelectMode2  Address = 0xAC // R
	AddrPMUsageFlowCtrlSelectMode3  Address = 0xAD // R
	AddrPMUsageFlowCtrlSelectMode4  Address = 0xAE // R

	AddrPort1TxQSplitQ3 Address = 0xAF // RW
	AddrPort1TxQSplitQ2 Address = 0xB0 // RW
	AddrPort1TxQSplitQ1 Address = 0xB1 // RW
	AddrPort1TxQSplitQ0 Address = 0xB2 // RW
	AddrPort2TxQSplitQ3 Address = 0xB3 // RW
	AddrPort2TxQSplitQ2 Address = 0xB4 // RW
	AddrPort2TxQSplitQ1 Address = 0xB5 // RW
	AddrPort2TxQSplitQ0 Address = 0xB6 // RW
	AddrPort3TxQSplitQ3 Address = 0xB7 // RW
	AddrPort3TxQSplitQ2 Address = 0xB8 // RW
	AddrPort3TxQSplitQ1 Address = 0xB9 // RW
	AddrPort3TxQSplitQ0 Address = 0xBA // RW

	AddrInterruptEnable       Address = 0xBB // RW
	AddrLinkChangeInterrupt   Address = 0xBC // RW, write 1 to clear
	AddrForcePauseOff         Address = 0xBD // RW
	AddrFiberSignalThreshold  Address = 0xC0 // RW
	AddrInternalLDOCtrl       Address = 0xC1 // RW
	AddrInsertSrcPVID         Address = 0xC2 // RW
	AddrPwrMgmtLEDMode        Address = 0xC3 // RW
	AddrSleepMode             Address = 0xC4 // RW
	AddrFwdInvalidVIDHostMode Address = 0xC6 // RW
)

type regDef struct {
	addr  Address
	name  string
	reset uint8
}

// regs lists every documented register in address order, with its power-on
// value per the datasheet.
var regs = []regDef{
	{AddrChipID0, "ChipID0", 0x88},
	{AddrChipID1, "ChipID1", 0x31},
	{AddrGC0, "GC0", 0x00},
	{AddrGC1, "GC1", 0x34},
	{AddrGC2, "GC2", 0xF0},
	{AddrGC3, "GC3", 0x00},
	{AddrGC4, "GC4", 0x10},
	{AddrGC5, "GC5", 0x63},
	{AddrGC9, "GC9", 0x88},
	{AddrGC10, "GC10", 0x50},
	{AddrGC11, "GC11", 0xFA},
	{AddrGC12, "GC12", 0x47},
	{AddrGC13, "GC13", 0x08},

	{AddrPort1Ctrl0, "Port1Ctrl0", 0x00},
	{AddrPort1Ctrl1, "Port1Ctrl1", 0x07},
	{AddrPort1Ctrl2, "Port1Ctrl2", 0x06},
	{AddrPort1Ctrl3, "Port1Ctrl3", 0x00},
	{AddrPort1Ctrl4, "Port1Ctrl4", 0x01},
	{AddrPort1Ctrl5, "Port1Ctrl5", 0x00},
	{AddrPort1Q0IngressRateLimit, "Port1Q0IngressRateLimit", 0x00},
	{AddrPort1Q1IngressRateLimit, "Port1Q1IngressRateLimit", 0x00},
	{AddrPort1Q2IngressRateLimit, "Port1Q2IngressRateLimit", 0x00},
	{AddrPort1Q3IngressRateLimit, "Port1Q3IngressRateLimit", 0x00},
	{AddrPort1PHYSpecial, "Port1PHYSpecial", 0x00},
	{AddrPort1LinkMDResult, "Port1LinkMDResult", 0x00},
	{AddrPort1Ctrl12, "Port1Ctrl12", 0x1F},
	{AddrPort1Ctrl13, "Port1Ctrl13", 0x00},
	{AddrPort1Status0, "Port1Status0", 0x00},
	{AddrPort1Status1, "Port1Status1", 0x80},

	{AddrPort2Ctrl0, "Port2Ctrl0", 0x00},
	{AddrPort2Ctrl1, "Port2Ctrl1", 0x07},
	{AddrPort2Ctrl2, "Port2Ctrl2", 0x06},
	{AddrPort2Ctrl3, "Port2Ctrl3", 0x00},
	{AddrPort2Ctrl4, "Port2Ctrl4", 0x01},
	{AddrPort2Ctrl5, "Port2Ctrl5", 0x00},
	{AddrPort2Q0IngressRateLimit, "Port2Q0IngressRateLimit", 0x00},
	{AddrPort2Q1IngressRateLimit, "Port2Q1IngressRateLimit", 0x00},
	{AddrPort2Q2IngressRateLimit, "Port2Q2IngressRateLimit", 0x00},
	{AddrPort2Q3IngressRateLimit, "Port2Q3IngressRateLimit", 0x00},
	{AddrPort2PHYSpecial, "Port2PHYSpecial", 0x00},
	{AddrPort2LinkMDResult, "Port2LinkMDResult", 0x00},
	{AddrPort2Ctrl12, "Port2Ctrl12", 0x1F},
	{AddrPort2Ctrl13, "Port2Ctrl13", 0x00},
	{AddrPort2Status0, "Port2Status0", 0x00},
	{AddrPort2Status1, "Port2Status1", 0x80},

	{AddrPort3Ctrl0, "Port3Ctrl0", 0x00},
	{AddrPort3Ctrl1, "Port3Ctrl1", 0x07},
	{AddrPort3Ctrl2, "Port3Ctrl2", 0x06},
	{AddrPort3Ctrl3, "Port3Ctrl3", 0x00},
	{AddrPort3Ctrl4, "Port3Ctrl4", 0x01},
	{AddrPort3Ctrl5, "Port3Ctrl5", 0x00},
	{AddrPort3Q0IngressRateLimit, "Port3Q0IngressRateLimit", 0x00},
	{AddrPort3Q1IngressRateLimit, "Port3Q1IngressRateLimit", 0x00},
	{AddrPort3Q2IngressRateLimit, "Port3Q2IngressRateLimit", 0x00},
	{AddrPort3Q3IngressRateLimit, "Port3Q3IngressRateLimit", 0x00},
	{AddrPort3Status1, "Port3Status1", 0x00},

	{AddrReset, "Reset", 0x00},

	{AddrTOSPriority0, "TOSPriority0", 0x00},
	{AddrTOSPriority1, "TOSPriority1", 0x00},
	{AddrTOSPriority2, "TOSPriority2", 0x00},
	{AddrTOSPriority3, "TOSPriority3", 0x00},
	{AddrTOSPriority4, "TOSPriority4", 0x00},
	{AddrTOSPriority5, "TOSPriority5", 0x00},
	{AddrTOSPriority6, "TOSPriority6", 0x00},
	{AddrTOSPriority7, "TOSPriority7", 0x00},
	{AddrTOSPriority8, "TOSPriority8", 0x00},
	{AddrTOSPriority9, "TOSPriority9", 0x00},
	{AddrTOSPriority10, "TOSPriority10", 0x00},
	{AddrTOSPriority11, "TOSPriority11", 0x00},
	{AddrTOSPriority12, "TOSPriority12", 0x00},
	{AddrTOSPriority13, "TOSPriority13", 0x00},
	{AddrTOSPriority14, "TOSPriority14", 0x00},
	{AddrTOSPriority15, "TOSPriority15", 0x00},

	{AddrMACAddr0, "MACAddr0", 0x00},
	{AddrMACAddr1, "MACAddr1", 0x10},
	{AddrMACAddr2, "MACAddr2", 0xA1},
	{AddrMACAddr3, "MACAddr3", 0xFF},
	{AddrMACAddr4, "MACAddr4", 0xFF},
	{AddrMACAddr5, "MACAddr5", 0xFF},

	{AddrUserDef1, "UserDef1", 0x00},
	{AddrUserDef2, "UserDef2", 0x00},
	{AddrUserDef3, "UserDef3", 0x00},

	{AddrIndirectAccessCtrl0, "IndirectAccessCtrl0", 0x00},
	{AddrIndirectAccessCtrl1, "IndirectAccessCtrl1", 0x00},
	{AddrIndirectData8, "IndirectData8", 0x00},
	{AddrIndirectData7, "IndirectData7", 0x00},
	{AddrIndirectData6, "IndirectData6", 0x00},
	{AddrIndirectData5, "IndirectData5", 0x00},
	{AddrIndirectData4, "IndirectData4", 0x00},
	{AddrIndirectData3, "IndirectData3", 0x00},
	{AddrIndirectData2, "IndirectData2", 0x00},
	{AddrIndirectData1, "IndirectData1", 0x00},
	{AddrIndirectData0, "IndirectData0", 0x00},

	{AddrStation1MACAddr0, "Station1MACAddr0", 0x00},
	{AddrStation1MACAddr1, "Station1MACAddr1", 0x00},
	{AddrStation1MACAddr2, "Station1MACAddr2", 0x00},
	{AddrStation1MACAddr3, "Station1MACAddr3", 0x00},
	{AddrStation1MACAddr4, "Station1MACAddr4", 0x00},
	{AddrStation1MACAddr5, "Station1MACAddr5", 0x00},
	{AddrStation2MACAddr0, "Station2MACAddr0", 0x00},
	{AddrStation2MACAddr1, "Station2MACAddr1", 0x00},
	{AddrStation2MACAddr2, "Station2MACAddr2", 0x00},
	{AddrStation2MACAddr3, "Station2MACAddr3", 0x00},
	{AddrStation2MACAddr4, "Station2MACAddr4", 0x00},
	{AddrStation2MACAddr5, "Station2MACAddr5", 0x00},

	{AddrMode, "Mode", 0x00},
	{AddrHighPriorityPacketBufferQ3, "HighPriorityPacketBufferQ3", 0x45},
	{AddrHighPriorityPacketBufferQ2, "HighPriorityPacketBufferQ2", 0x35},
	{AddrHighPriorityPacketBufferQ1, "HighPriorityPacketBufferQ1", 0x25},
	{AddrHighPriorityPacketBufferQ0, "HighPriorityPacketBufferQ0", 0x15},
	{AddrPMUsageFlowCtrlSelectMode1, "PMUsageFlowCtrlSelectMode1", 0x00},
	{AddrPMUsageFlowCtrlSelectMode2, "PMUsageFlowCtrlSelectMode2", 0x00},
	{AddrPMUsageFlowCtrlSelectMode3, "PMUsageFlowCtrlSelectMode3", 0x00},
	{AddrPMUsageFlowCtrlSelectMode4, "PMUsageFlowCtrlSelectMode4", 0x00},

	{AddrPort1TxQSplitQ3, "Port1TxQSplitQ3", 0x80},
	{AddrPort1TxQSplitQ2, "Port1TxQSplitQ2", 0x80},
	{AddrPort1TxQSplitQ1, "Port1TxQSplitQ1", 0x80},
	{AddrPort1TxQSplitQ0, "Port1TxQSplitQ0", 0x80},
	{AddrPort2TxQSplitQ3, "Port2TxQSplitQ3", 0x80},
	{AddrPort2TxQSplitQ2, "Port2TxQSplitQ2", 0x80},
	{AddrPort2TxQSplitQ1, "Port2TxQSplitQ1", 0x80},
	{AddrPort2TxQSplitQ0, "Port2TxQSplitQ0", 0x80},
	{AddrPort3TxQSplitQ3, "Port3TxQSplitQ3", 0x80},
	{AddrPort3TxQSplitQ2, "Port3TxQSplitQ2", 0x80},
	{AddrPort3TxQSplitQ1, "Port3TxQSplitQ1", 0x80},
	{AddrPort3TxQSplitQ0, "Port3TxQSplitQ0", 0x80},

	{AddrInterruptEnable, "InterruptEnable", 0x00},
	{AddrLinkChangeInterrupt, "LinkChangeInterrupt", 0x00},
	{AddrForcePauseOff, "ForcePauseOff", 0x00},
	{AddrFiberSignalThreshold, "FiberSignalThreshold", 0x00},
	{AddrInternalLDOCtrl, "InternalLDOCtrl", 0x00},
	{AddrInsertSrcPVID, "InsertSrcPVID", 0x00},
	{AddrPwrMgmtLEDMode, "PwrMgmtLEDMode", 0x00},
	{AddrSleepMode, "SleepMode", 0x50},
	{AddrFwdInvalidVIDHostMode, "FwdInvalidVIDHostMode", 0x00},
}

var regIndex = func() map[Address]int {
	m := make(map[Address]int, len(regs))
	for i, r := range regs {
		m[r.addr] = i
	}
	return m
}()

// NumRegisters is the number of documented registers.
func NumRegisters() int { return len(regs) }

// Addresses returns every documented register address in ascending order.
func Addresses() []Address {
	out := make([]Address, len(regs))
	for i, r := range regs {
		out[i] = r.addr
	}
	return out
}

// Valid reports whether the address names a documented register.
func (a Address) Valid() bool {
	_, ok := regIndex[a]
	return ok
}

// Reset returns the register's documented power-on value; undocumented
// addresses read as zero.
func (a Address) Reset() uint8 {
	if i, ok := regIndex[a]; ok {
		return regs[i].reset
	}
	return 0
}

func (a Address) String() string {
	if i, ok := regIndex[a]; ok {
		return regs[i].name
	}
	return fmt.Sprintf("Address(0x%02X)", uint8(a))
}
