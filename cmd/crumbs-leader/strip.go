// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"io"

	"github.com/FEASTorg/crumbs/crc8"
	"github.com/FEASTorg/crumbs/crumbs"
	"github.com/maruel/ansi256"
)

var (
	headerColor  = color.NRGBA{0x40, 0x80, 0xff, 0xff}
	validColor   = color.NRGBA{0x00, 0xff, 0x00, 0xff}
	invalidColor = color.NRGBA{0xff, 0x00, 0x00, 0xff}
)

// strip renders a frame on the terminal as one colored block per byte:
// header bytes in blue, payload bytes by value in grey, then the checksum in
// green or red.
type strip struct {
	w       io.Writer
	palette ansi256.Palette
	buf     bytes.Buffer
}

func newStrip(w io.Writer, p *ansi256.Palette) *strip {
	if p == nil {
		p = ansi256.Default
	}
	return &strip{w: w, palette: *p}
}

func (s *strip) render(frame []byte) error {
	if len(frame) < crumbs.MessageSize {
		return &crumbs.ShortBufferError{Len: len(frame)}
	}
	frame = frame[:crumbs.MessageSize]
	s.buf.Reset()
	_, _ = s.buf.WriteString("\r\033[0m")
	for i, v := range frame {
		var c color.NRGBA
		switch {
		case i < 2:
			c = headerColor
		case i == crumbs.MessageSize-1:
			if crc8.Verify(frame[:i], v) {
				c = validColor
			} else {
				c = invalidColor
			}
		default:
			c = color.NRGBA{v, v, v, 0xff}
		}
		_, _ = io.WriteString(&s.buf, s.palette.Block(c))
	}
	_, _ = s.buf.WriteString("\033[0m\n")
	_, err := s.buf.WriteTo(s.w)
	return err
}
