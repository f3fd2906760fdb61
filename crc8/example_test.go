// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crc8_test

import (
	"fmt"

	"github.com/FEASTorg/crumbs/crc8"
)

func ExampleChecksum() {
	fmt.Printf("%#x\n", crc8.Checksum([]byte("123456789")))
	// Output: 0xf4
}

// Example_incremental feeds a message in two parts.
func Example_incremental() {
	crc := crc8.Init()
	crc = crc8.Update(crc, []byte("1234"))
	crc = crc8.Update(crc, []byte("56789"))
	fmt.Printf("%#x\n", crc8.Finalize(crc))
	// Output: 0xf4
}

func ExampleMakeTable() {
	// Sensirion sensors protect each 16 bit word with CRC-8/NRSC-5.
	t := crc8.MakeTable(crc8.NRSC5)
	fmt.Printf("%#x\n", t.Checksum([]byte{0xbe, 0xef}))
	// Output: 0x92
}
