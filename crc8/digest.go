// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crc8

import "hash"

// Hash8 is a hash.Hash producing an 8-bit checksum.
type Hash8 interface {
	hash.Hash
	Sum8() uint8
}

// digest holds the register of an incremental computation. A nil table means
// the package level CRC-8/SMBUS engine.
type digest struct {
	crc uint8
	t   *Table
}

// New returns a Hash8 computing CRC-8/SMBUS.
func New() Hash8 {
	return &digest{crc: Init()}
}

// NewParams returns a Hash8 computing the variant described by p.
func NewParams(p *Params) Hash8 {
	d := &digest{t: MakeTable(p)}
	d.Reset()
	return d
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() {
	if d.t == nil {
		d.crc = Init()
		return
	}
	d.crc = d.t.Init()
}

// Write never returns an error.
func (d *digest) Write(p []byte) (int, error) {
	if d.t == nil {
		d.crc = Update(d.crc, p)
	} else {
		d.crc = d.t.Update(d.crc, p)
	}
	return len(p), nil
}

// Sum8 returns the checksum of the data written so far. It does not change
// the underlying state, more data may be written afterwards.
func (d *digest) Sum8() uint8 {
	if d.t == nil {
		return Finalize(d.crc)
	}
	return d.t.Finalize(d.crc)
}

func (d *digest) Sum(in []byte) []byte {
	return append(in, d.Sum8())
}

var _ Hash8 = &digest{}
