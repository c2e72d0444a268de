// Package transport provides bus implementations backed by real hardware
// interfaces. The KSZ8863's serial management pins can be strapped for SMI,
// MIIM or I2C; this package covers the I2C strap, which exposes the same
// 8-bit register file as SMI.
package transport

import (
	"tinygo.org/x/drivers"

	"ksz8863-go/smi"
)

// AddressDefault is the chip's strapped 7-bit I2C slave address.
const AddressDefault = 0x5F

// SMIOverI2C implements smi.Bus over an I2C controller. A register read is
// a one-byte address write followed by a one-byte read; a register write is
// a two-byte write.
type SMIOverI2C struct {
	i2c  drivers.I2C
	addr uint16

	// Fixed buffers to avoid per-call heap allocations.
	w [2]byte
	r [1]byte
}

var _ smi.Bus = (*SMIOverI2C)(nil)

// NewSMIOverI2C wraps an I2C controller. An addr of 0 selects
// AddressDefault.
func NewSMIOverI2C(i2c drivers.I2C, addr uint16) *SMIOverI2C {
	if addr == 0 {
		addr = AddressDefault
	}
	return &SMIOverI2C{i2c: i2c, addr: addr}
}

// Read implements smi.Bus.
func (t *SMIOverI2C) Read(regAddr uint8) (uint8, error) {
	t.w[0] = regAddr
	if err := t.i2c.Tx(t.addr, t.w[:1], t.r[:1]); err != nil {
		return 0, err
	}
	return t.r[0], nil
}

// Write implements smi.Bus.
func (t *SMIOverI2C) Write(regAddr uint8, value uint8) error {
	t.w[0] = regAddr
	t.w[1] = value
	return t.i2c.Tx(t.addr, t.w[:2], nil)
}
