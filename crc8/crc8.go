// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package crc8 implements the 8-bit cyclic redundancy check used to protect
// CRUMBS messages, along with other common CRC-8 variants found on I²C and
// 1-Wire buses.
//
// The package level functions compute CRC-8/SMBUS (poly 0x07, init 0x00, no
// reflection, no final XOR). This is the variant generated by pycrc for the
// "crc-8" model and used by the CRUMBS firmware. Like the firmware, it is
// computed with a 16 entry nibble table.
//
// A checksum can be computed in one call:
//
//	sum := crc8.Checksum(msg)
//
// or incrementally, in which case splitting the input across calls does not
// change the result:
//
//	crc := crc8.Init()
//	crc = crc8.Update(crc, header)
//	crc = crc8.Update(crc, payload)
//	sum := crc8.Finalize(crc)
//
// CRC-8 detects all single bit errors. It is not a cryptographic hash.
//
// # Reference
//
// https://reveng.sourceforge.io/crc-catalogue/1-15.htm#crc.cat-bits.8
package crc8

const (
	// Size of a CRC-8 checksum in bytes.
	Size = 1

	// Polynomial is x^8 + x^2 + x + 1, in normal (MSB first) notation.
	Polynomial uint8 = 0x07
	// InitialValue is the register value before any byte is consumed.
	InitialValue uint8 = 0x00
	// FinalXOR is applied to the register by Finalize.
	FinalXOR uint8 = 0x00
	// CheckValue is the checksum of the ASCII string "123456789".
	CheckValue uint8 = 0xf4
)

// nibbleTable holds the register contribution of each 4 bit index shifted
// through the polynomial.
var nibbleTable = makeNibbleTable(Polynomial)

func makeNibbleTable(poly uint8) (t [16]uint8) {
	for i := range t {
		crc := uint8(i) << 4
		for range 4 {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Init returns the initial register value.
func Init() uint8 {
	return InitialValue
}

// Update returns the register after consuming p in order. An empty or nil p
// returns crc unchanged.
func Update(crc uint8, p []byte) uint8 {
	for _, v := range p {
		crc = nibbleTable[(crc>>4)^(v>>4)] ^ crc<<4
		crc = nibbleTable[(crc>>4)^(v&0x0f)] ^ crc<<4
	}
	return crc
}

// Finalize converts the register into the checksum.
func Finalize(crc uint8) uint8 {
	return crc ^ FinalXOR
}

// Checksum returns the CRC-8/SMBUS checksum of p. The checksum of an empty
// message is Finalize(Init()), which is 0.
func Checksum(p []byte) uint8 {
	return Finalize(Update(Init(), p))
}

// Verify reports whether sum is the checksum of p.
func Verify(p []byte, sum uint8) bool {
	return Checksum(p) == sum
}
