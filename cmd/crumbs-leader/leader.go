// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/FEASTorg/crumbs/crumbs"
	"github.com/FEASTorg/crumbs/internal/config"
	"github.com/FEASTorg/crumbs/internal/log"
	"periph.io/x/conn/v3/i2c"
)

const usage = `Usage:
  To send a message, enter comma-separated values:
    target,typeID,commandType,data0,data1,data2,data3,data4,data5,data6
  Example:
    0x08,1,1,75.0,1.0,0.0,65.0,2.0,7.0,0.0

  To request a message from a target device, type:
    request,target
  Example:
    request,0x08

  target is a decimal or 0x prefixed address, or an alias from the config file.
  Type 'help' to print this message, 'exit' to quit.
`

// leader runs the interactive command loop against a bus.
type leader struct {
	bus   i2c.Bus
	cfg   *config.Config
	log   *log.Logger
	out   io.Writer
	strip *strip // nil when color is disabled
}

func (l *leader) run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		s := bufio.NewScanner(in)
		for s.Scan() {
			select {
			case lines <- s.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- s.Err()
		close(lines)
	}()

	fmt.Fprint(l.out, usage)
	for {
		fmt.Fprint(l.out, "Enter command: ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(l.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			if !l.handle(strings.TrimSpace(line)) {
				return nil
			}
		}
	}
}

// handle executes one command line and returns false when the loop must
// stop.
func (l *leader) handle(line string) bool {
	lower := strings.ToLower(line)
	switch {
	case line == "":
	case lower == "exit" || lower == "quit":
		return false
	case lower == "help":
		fmt.Fprint(l.out, usage)
	case strings.HasPrefix(lower, "request"):
		addr, err := parseRequest(l.cfg, line)
		if err != nil {
			l.log.Error("%v", err)
			return true
		}
		l.request(addr)
	default:
		addr, m, err := parseMessage(l.cfg, line)
		if err != nil {
			l.log.Error("Failed to parse message: %v", err)
			fmt.Fprintln(l.out, "Failed to parse message. Please check your input.")
			return true
		}
		l.send(addr, &m)
	}
	return true
}

func (l *leader) send(addr uint16, m *crumbs.Message) {
	dev, err := crumbs.NewI2C(l.bus, addr)
	if err != nil {
		l.log.Error("%v", err)
		return
	}
	if err := dev.Send(m); err != nil {
		l.log.Error("Failed to send message: %v", err)
		return
	}
	l.log.Frame("tx", addr, frameOf(m))
	l.log.Info("Message sent to address %#04x", addr)
	fmt.Fprintln(l.out, "Message sent.")
}

func (l *leader) request(addr uint16) {
	dev, err := crumbs.NewI2C(l.bus, addr)
	if err != nil {
		l.log.Error("%v", err)
		return
	}
	m, err := dev.Request()
	var ce *crumbs.CRCError
	switch {
	case errors.As(err, &ce):
		l.log.Warn("Corrupted message from address %#04x: %v", addr, err)
	case err != nil:
		l.log.Error("Failed to request message: %v", err)
		fmt.Fprintln(l.out, "No valid response received.")
		return
	default:
		l.log.Info("Received %d bytes from address %#04x", crumbs.MessageSize, addr)
	}
	frame := frameOf(&m)
	l.log.Frame("rx", addr, frame)
	if ce != nil {
		fmt.Fprintln(l.out, "Received corrupted response:")
	} else {
		fmt.Fprintln(l.out, "Received response:")
	}
	fmt.Fprintln(l.out, m.String())
	if l.strip != nil {
		if err := l.strip.render(frame); err != nil {
			l.log.Debug("render: %v", err)
		}
	}
}

// frameOf rebuilds the wire frame of m, keeping the checksum m carries.
func frameOf(m *crumbs.Message) []byte {
	c := *m
	var b [crumbs.MessageSize]byte
	// b holds a full frame so Encode cannot fail.
	_, _ = c.Encode(b[:])
	b[crumbs.MessageSize-1] = m.CRC8
	return b[:]
}
