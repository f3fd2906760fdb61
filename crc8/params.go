// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crc8

import "fmt"

// Params describes a CRC-8 variant in the Rocksoft model.
type Params struct {
	Name   string
	Poly   uint8 // Generator polynomial, MSB first, x^8 implied.
	Init   uint8 // Register value before the first byte.
	RefIn  bool  // Input bytes are processed LSB first.
	RefOut bool  // The register is bit reversed before XorOut.
	XorOut uint8
	Check  uint8 // Checksum of "123456789".
}

// Catalogued variants.
var (
	// SMBUS is the variant used by CRUMBS and by the package level functions.
	SMBUS = &Params{Name: "CRC-8/SMBUS", Poly: 0x07, Init: 0x00, Check: 0xf4}
	// NRSC5 is the variant used by Sensirion and TI humidity sensors.
	NRSC5 = &Params{Name: "CRC-8/NRSC-5", Poly: 0x31, Init: 0xff, Check: 0xf7}
	// MaximDOW is the Dallas/Maxim 1-Wire ROM and scratchpad CRC.
	MaximDOW = &Params{Name: "CRC-8/MAXIM-DOW", Poly: 0x31, RefIn: true, RefOut: true, Check: 0xa1}
	// I4321 is the ITU I.432.1 header error control.
	I4321 = &Params{Name: "CRC-8/I-432-1", Poly: 0x07, XorOut: 0x55, Check: 0xa1}
	// AUTOSAR is the AUTOSAR E2E profile 2 CRC.
	AUTOSAR = &Params{Name: "CRC-8/AUTOSAR", Poly: 0x2f, Init: 0xff, XorOut: 0xff, Check: 0xdf}
)

func (p *Params) String() string {
	return fmt.Sprintf("%s(poly=%#04x init=%#04x refin=%t refout=%t xorout=%#04x)",
		p.Name, p.Poly, p.Init, p.RefIn, p.RefOut, p.XorOut)
}

// Table is a 256 entry lookup table computing the checksum of one variant.
//
// When RefIn is set the register is kept bit reversed between Update calls;
// treat it as opaque and only pass it back to the same Table.
type Table struct {
	params  Params
	entries [256]uint8
}

// MakeTable returns the Table for p.
func MakeTable(p *Params) *Table {
	t := &Table{params: *p}
	if p.RefIn {
		poly := Reflect(p.Poly)
		for i := range t.entries {
			crc := uint8(i)
			for range 8 {
				if crc&0x01 != 0 {
					crc = crc>>1 ^ poly
				} else {
					crc >>= 1
				}
			}
			t.entries[i] = crc
		}
		return t
	}
	for i := range t.entries {
		crc := uint8(i)
		for range 8 {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ p.Poly
			} else {
				crc <<= 1
			}
		}
		t.entries[i] = crc
	}
	return t
}

// Params returns a copy of the parameters the table was built from.
func (t *Table) Params() Params {
	return t.params
}

// Init returns the initial register value.
func (t *Table) Init() uint8 {
	if t.params.RefIn {
		return Reflect(t.params.Init)
	}
	return t.params.Init
}

// Update returns the register after consuming p in order.
func (t *Table) Update(crc uint8, p []byte) uint8 {
	for _, v := range p {
		crc = t.entries[crc^v]
	}
	return crc
}

// Finalize applies the output reflection and final XOR.
func (t *Table) Finalize(crc uint8) uint8 {
	if t.params.RefIn != t.params.RefOut {
		crc = Reflect(crc)
	}
	return crc ^ t.params.XorOut
}

// Checksum returns the checksum of p.
func (t *Table) Checksum(p []byte) uint8 {
	return t.Finalize(t.Update(t.Init(), p))
}

// Reflect returns b with its bit order reversed.
func Reflect(b uint8) uint8 {
	b = b&0xf0>>4 | b&0x0f<<4
	b = b&0xcc>>2 | b&0x33<<2
	b = b&0xaa>>1 | b&0x55<<1
	return b
}
