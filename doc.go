// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package crumbs is a container for the CRUMBS leader library.
//
// Package crc8 computes the CRC-8/SMBUS checksum protecting every frame,
// package crumbs/crumbs encodes frames and exchanges them with peripherals
// over I²C, and cmd/crumbs-leader is an interactive leader.
package crumbs
