// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/FEASTorg/crumbs/crumbs"
	"github.com/FEASTorg/crumbs/internal/log"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func mustFrame(t *testing.T, m crumbs.Message) []byte {
	b, err := m.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func newTestLeader(ops ...i2ctest.IO) (*leader, *i2ctest.Playback, *bytes.Buffer, *bytes.Buffer) {
	pb := &i2ctest.Playback{Ops: ops, DontPanic: true}
	var out, logs bytes.Buffer
	l := &leader{
		bus: pb,
		cfg: testConfig(),
		log: log.New(&logs, "debug", false),
		out: &out,
	}
	return l, pb, &out, &logs
}

func TestRun(t *testing.T) {
	sent := crumbs.NewMessage(1, 1, 75, 1, 0, 65, 2, 7)
	reply := crumbs.NewMessage(2, 3, 1.5, -2.25)
	l, pb, out, logs := newTestLeader(
		i2ctest.IO{Addr: 0x08, W: mustFrame(t, sent)},
		i2ctest.IO{Addr: 0x09, R: mustFrame(t, reply)})

	in := strings.NewReader("\nhelp\n0x08,1,1,75.0,1.0,0.0,65.0,2.0,7.0,0.0\nrequest,pump\nexit\n0x08,never,sent\n")
	if err := l.run(context.Background(), in); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
	s := out.String()
	for _, want := range []string{
		"Usage:",
		"Message sent.",
		"Received response:",
		"Message(typeID=2, commandType=3, data=[1.50, -2.25, 0.00, 0.00, 0.00, 0.00, 0.00]",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
	if strings.Count(s, "Usage:") != 2 {
		t.Errorf("expected usage at start and on help:\n%s", s)
	}
	for _, want := range []string{"Message sent to address 0x08", "Received 31 bytes from address 0x09", "dir=rx"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs missing %q:\n%s", want, logs.String())
		}
	}
}

func TestRunEOF(t *testing.T) {
	l, _, _, _ := newTestLeader()
	if err := l.run(context.Background(), strings.NewReader("help\n")); err != nil {
		t.Fatal(err)
	}
}

func TestRunCancel(t *testing.T) {
	l, _, _, _ := newTestLeader()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, w := io.Pipe()
	defer w.Close()
	done := make(chan error, 1)
	go func() { done <- l.run(ctx, r) }()
	select {
	case err := <-done:
		if err != nil {
			t.Error(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run() did not return after cancellation")
	}
}

func TestHandleErrors(t *testing.T) {
	bad := mustFrame(t, crumbs.NewMessage(4, 4, 4))
	bad[3] ^= 0x01
	l, _, out, logs := newTestLeader(
		i2ctest.IO{Addr: 0x08, R: bad})

	for _, line := range []string{
		"0x08,1,1",
		"request",
		"request,0x7f",
		"0x03,1,1,0,0,0,0,0,0,0",
	} {
		if !l.handle(line) {
			t.Errorf("handle(%q) stopped the loop", line)
		}
	}
	if !strings.Contains(out.String(), "Failed to parse message.") {
		t.Errorf("parse failure not reported:\n%s", out.String())
	}
	if strings.Count(logs.String(), "ERR") != 4 {
		t.Errorf("expected 4 errors logged:\n%s", logs.String())
	}

	// Corrupted replies are shown, flagged as such.
	if !l.handle("request,0x08") {
		t.Error("handle() stopped the loop")
	}
	if !strings.Contains(out.String(), "Received corrupted response:") {
		t.Errorf("corruption not reported:\n%s", out.String())
	}
	if !strings.Contains(logs.String(), "crc mismatch") {
		t.Errorf("crc mismatch not logged:\n%s", logs.String())
	}
	// The bus is now exhausted.
	if !l.handle("request,0x08") {
		t.Error("handle() stopped the loop")
	}
	if !strings.Contains(out.String(), "No valid response received.") {
		t.Errorf("bus error not reported:\n%s", out.String())
	}
	for _, line := range []string{"exit", "EXIT", "quit"} {
		if l.handle(line) {
			t.Errorf("handle(%q) did not stop the loop", line)
		}
	}
}

func TestFrameOf(t *testing.T) {
	m := crumbs.NewMessage(1, 1, 75, 1, 0, 65, 2, 7)
	good, err := m.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(frameOf(&m), good) {
		t.Errorf("frameOf()=%#v expected %#v", frameOf(&m), good)
	}
	m.CRC8 ^= 0xff
	b := frameOf(&m)
	if b[crumbs.MessageSize-1] != m.CRC8 {
		t.Errorf("frameOf() did not keep the carried checksum")
	}
}
