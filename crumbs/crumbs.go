// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package crumbs talks to CRUMBS peripherals over I²C as the bus leader.
//
// CRUMBS peripherals exchange fixed size 31 byte frames. The leader writes a
// frame to send a command and reads a frame to request a reply. Every frame
// ends with a CRC-8/SMBUS checksum, see package crc8.
//
// # Bus speed
//
// Peripherals run the bus at 100kHz, see DefaultClock.
package crumbs

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// DefaultClock is the bus frequency used by CRUMBS peripherals.
	DefaultClock = 100 * physic.KiloHertz

	// Range of 7 bit addresses not reserved by the I²C specification.
	MinAddress uint16 = 0x08
	MaxAddress uint16 = 0x77

	minPollInterval = 10 * time.Millisecond
)

// Dev is the leader side of a connection to one CRUMBS peripheral.
type Dev struct {
	d        *i2c.Dev
	mu       sync.Mutex
	shutdown chan struct{}
}

// NewI2C returns a Dev talking to the peripheral at addr on b.
func NewI2C(b i2c.Bus, addr uint16) (*Dev, error) {
	if addr < MinAddress || addr > MaxAddress {
		return nil, fmt.Errorf("crumbs: invalid address %#04x, must be within [%#04x, %#04x]", addr, MinAddress, MaxAddress)
	}
	return &Dev{d: &i2c.Dev{Bus: b, Addr: addr}}, nil
}

// Addr returns the peripheral address.
func (dev *Dev) Addr() uint16 {
	return dev.d.Addr
}

// Send encodes m and writes it to the peripheral in a single transaction.
// m.CRC8 is updated with the checksum sent.
func (dev *Dev) Send(m *Message) error {
	var w [MessageSize]byte
	if _, err := m.Encode(w[:]); err != nil {
		return err
	}
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.d.Tx(w[:], nil); err != nil {
		return fmt.Errorf("crumbs: error sending to %#04x %w", dev.d.Addr, err)
	}
	return nil
}

// Request reads a frame from the peripheral and decodes it.
//
// If the checksum doesn't match, the decoded message is returned along with
// a *CRCError.
func (dev *Dev) Request() (Message, error) {
	var r [MessageSize]byte
	dev.mu.Lock()
	err := dev.d.Tx(nil, r[:])
	dev.mu.Unlock()
	if err != nil {
		return Message{}, fmt.Errorf("crumbs: error requesting from %#04x %w", dev.d.Addr, err)
	}
	return Decode(r[:])
}

// RequestContinuous requests a message every interval and sends the valid
// ones to the returned channel. Frames that fail to read or fail the
// checksum are dropped. To terminate, call Dev.Halt().
func (dev *Dev) RequestContinuous(interval time.Duration) (<-chan Message, error) {
	if interval < minPollInterval {
		return nil, fmt.Errorf("crumbs: invalid interval %s, minimum %s", interval, minPollInterval)
	}
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.shutdown != nil {
		return nil, errors.New("crumbs: RequestContinuous already running")
	}
	stop := make(chan struct{})
	dev.shutdown = stop
	ch := make(chan Message, 16)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(ch)
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				m, err := dev.Request()
				if err != nil {
					continue
				}
				select {
				case ch <- m:
				case <-stop:
					return
				}
			}
		}
	}()
	return ch, nil
}

// Halt terminates a running RequestContinuous. Implements conn.Resource.
func (dev *Dev) Halt() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.shutdown != nil {
		close(dev.shutdown)
		dev.shutdown = nil
	}
	return nil
}

func (dev *Dev) String() string {
	return fmt.Sprintf("crumbs: %s", dev.d)
}

var _ conn.Resource = &Dev{}
