package smi

import (
	"fmt"

	"ksz8863-go/errcode"
)

// State is an in-memory snapshot of one register's last-known value. It has
// no liveness guarantee and never initiates I/O: it changes only through Set
// and is read only through Bits.
type State struct {
	addr Address
	bits uint8
}

// NewState returns the register's state at its documented power-on value.
func NewState(a Address) State { return State{addr: a, bits: a.Reset()} }

// StateOf pairs an address with raw register bits.
func StateOf(a Address, bits uint8) State { return State{addr: a, bits: bits} }

func (s State) Addr() Address { return s.addr }
func (s State) Bits() uint8   { return s.bits }

// Set overwrites the snapshot with a newly observed value.
func (s *State) Set(bits uint8) { s.bits = bits }

func (s State) String() string {
	return fmt.Sprintf("%s=0x%02X", s.addr, s.bits)
}

// Map is a complete in-memory mirror of the SMI register file, one State per
// documented address, initialised to reset values. It implements Bus, so it
// can stand in for real hardware: simulation, caching of remote register
// state, deterministic tests.
//
// Like any Bus it is single-owner: no internal locking.
type Map struct {
	states map[Address]*State
}

var _ Bus = (*Map)(nil)

// NewMap returns a Map holding every register at its reset value.
func NewMap() *Map {
	m := Map{states: make(map[Address]*State, len(regs))}
	for _, r := range regs {
		st := NewState(r.addr)
		m.states[r.addr] = &st
	}
	return &m
}

// State returns the snapshot stored for the given address.
func (m *Map) State(a Address) (State, bool) {
	st, ok := m.states[a]
	if !ok {
		return State{}, false
	}
	return *st, true
}

// SetState stores the given snapshot, replacing the previous one.
func (m *Map) SetState(s State) bool {
	st, ok := m.states[s.Addr()]
	if !ok {
		return false
	}
	*st = s
	return true
}

// States returns a snapshot of the whole register file in address order.
func (m *Map) States() []State {
	out := make([]State, 0, len(regs))
	for _, r := range regs {
		out = append(out, *m.states[r.addr])
	}
	return out
}

// Read implements Bus. Unknown register addresses fail with
// errcode.InvalidAddress.
func (m *Map) Read(regAddr uint8) (uint8, error) {
	st, ok := m.states[Address(regAddr)]
	if !ok {
		return 0, errcode.InvalidAddress
	}
	return st.Bits(), nil
}

// Write implements Bus.
func (m *Map) Write(regAddr uint8, value uint8) error {
	st, ok := m.states[Address(regAddr)]
	if !ok {
		return errcode.InvalidAddress
	}
	st.Set(value)
	return nil
}
