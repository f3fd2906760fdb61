// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crumbs

import (
	"errors"
	"fmt"
)

// ErrCRC matches any *CRCError with errors.Is.
var ErrCRC = errors.New("crumbs: crc mismatch")

// CRCError is returned when the checksum carried by a frame does not match
// the checksum computed over its payload.
type CRCError struct {
	Want uint8 // computed over the received payload
	Got  uint8 // carried by the frame
}

func (e *CRCError) Error() string {
	return fmt.Sprintf("crumbs: crc mismatch: frame carries %#04x, payload computes %#04x", e.Got, e.Want)
}

func (e *CRCError) Is(target error) bool {
	return target == ErrCRC
}

// ShortBufferError is returned when a buffer cannot hold a full frame.
type ShortBufferError struct {
	Len int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("crumbs: buffer of %d bytes is shorter than a %d byte frame", e.Len, MessageSize)
}
