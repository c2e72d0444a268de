package miim

import (
	"fmt"

	"ksz8863-go/errcode"
)

// State is an in-memory snapshot of one register's last-known value. It has
// no liveness guarantee and never initiates I/O: it changes only through Set
// and is read only through Bits.
type State struct {
	addr Address
	bits uint16
}

// NewState returns the register's state at its documented power-on value.
func NewState(a Address) State { return State{addr: a, bits: a.Reset()} }

// StateOf pairs an address with raw register bits.
func StateOf(a Address, bits uint16) State { return State{addr: a, bits: bits} }

func (s State) Addr() Address { return s.addr }
func (s State) Bits() uint16  { return s.bits }

// Set overwrites the snapshot with a newly observed value.
func (s *State) Set(bits uint16) { s.bits = bits }

func (s State) String() string {
	return fmt.Sprintf("%s=0x%04X", s.addr, s.bits)
}

// Map is a complete in-memory mirror of the MIIM register file, one State
// per documented address, initialised to reset values. It implements Bus, so
// it can stand in for real hardware: simulation, caching of remote register
// state, deterministic tests.
//
// The chip's PHYs share one register layout; Map mirrors a single file and
// ignores the PHY address on Bus access. Like any Bus it is single-owner:
// no internal locking.
type Map struct {
	states [NumRegisters]State
}

var _ Bus = (*Map)(nil)

// NewMap returns a Map holding every register at its reset value.
func NewMap() *Map {
	var m Map
	for i, a := range addrs {
		m.states[i] = NewState(a)
	}
	return &m
}

func (m *Map) index(a Address) (int, bool) {
	for i, addr := range addrs {
		if addr == a {
			return i, true
		}
	}
	return 0, false
}

// State returns the snapshot stored for the given address.
func (m *Map) State(a Address) (State, bool) {
	i, ok := m.index(a)
	if !ok {
		return State{}, false
	}
	return m.states[i], true
}

// SetState stores the given snapshot, replacing the previous one.
func (m *Map) SetState(s State) bool {
	i, ok := m.index(s.Addr())
	if !ok {
		return false
	}
	m.states[i] = s
	return true
}

// Read implements Bus. The PHY address is ignored; unknown register
// addresses fail with errcode.InvalidAddress.
func (m *Map) Read(_ uint8, regAddr uint8) (uint16, error) {
	i, ok := m.index(Address(regAddr))
	if !ok {
		return 0, errcode.InvalidAddress
	}
	return m.states[i].Bits(), nil
}

// Write implements Bus. The PHY address is ignored.
func (m *Map) Write(_ uint8, regAddr uint8, value uint16) error {
	i, ok := m.index(Address(regAddr))
	if !ok {
		return errcode.InvalidAddress
	}
	m.states[i].Set(value)
	return nil
}
