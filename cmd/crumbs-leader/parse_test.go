// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/FEASTorg/crumbs/crumbs"
	"github.com/FEASTorg/crumbs/internal/config"
	"github.com/google/go-cmp/cmp"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Targets["pump"] = 0x09
	return cfg
}

func TestParseMessage(t *testing.T) {
	var tests = []struct {
		line string
		addr uint16
		msg  crumbs.Message
	}{
		{
			line: "0x08,1,1,75.0,1.0,0.0,65.0,2.0,7.0,0.0",
			addr: 0x08,
			msg:  crumbs.NewMessage(1, 1, 75, 1, 0, 65, 2, 7, 0),
		},
		{
			line: " pump , 2 , 0x10 ,-1.5,0,0,0,0,0,1e3",
			addr: 0x09,
			msg:  crumbs.NewMessage(2, 0x10, -1.5, 0, 0, 0, 0, 0, 1000),
		},
		{
			line: "20,255,0,0,0,0,0,0,0,0",
			addr: 20,
			msg:  crumbs.NewMessage(255, 0),
		},
		{
			line: "010,08,09,0,0,0,0,0,0,0",
			addr: 10,
			msg:  crumbs.NewMessage(8, 9),
		},
	}
	cfg := testConfig()
	for _, test := range tests {
		addr, m, err := parseMessage(cfg, test.line)
		if err != nil {
			t.Errorf("parseMessage(%q) %v", test.line, err)
			continue
		}
		if addr != test.addr {
			t.Errorf("parseMessage(%q) addr=%#04x expected %#04x", test.line, addr, test.addr)
		}
		if diff := cmp.Diff(m, test.msg); diff != "" {
			t.Errorf("parseMessage(%q) mismatch (-got +want):\n%s", test.line, diff)
		}
	}
}

func TestParseMessageErrors(t *testing.T) {
	cfg := testConfig()
	for _, line := range []string{
		"",
		"0x08,1,1,75.0,1.0,0.0,65.0,2.0,7.0",
		"0x08,1,1,75.0,1.0,0.0,65.0,2.0,7.0,0.0,1",
		"valve,1,1,0,0,0,0,0,0,0",
		"0x08,256,1,0,0,0,0,0,0,0",
		"0x08,1,-1,0,0,0,0,0,0,0",
		"0x08,1,1,0,0,abc,0,0,0,0",
	} {
		if _, _, err := parseMessage(cfg, line); err == nil {
			t.Errorf("parseMessage(%q) expected an error", line)
		}
	}
}

func TestParseRequest(t *testing.T) {
	cfg := testConfig()
	for line, want := range map[string]uint16{
		"request,0x08":  0x08,
		"request, pump": 0x09,
		"REQUEST,12":    12,
		"request,010":   10,
	} {
		addr, err := parseRequest(cfg, line)
		if err != nil {
			t.Errorf("parseRequest(%q) %v", line, err)
			continue
		}
		if addr != want {
			t.Errorf("parseRequest(%q)=%#04x expected %#04x", line, addr, want)
		}
	}
	for _, line := range []string{"request", "request,", "request,0x08,1", "request,valve"} {
		if _, err := parseRequest(cfg, line); err == nil {
			t.Errorf("parseRequest(%q) expected an error", line)
		}
	}
}
