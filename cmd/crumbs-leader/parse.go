// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FEASTorg/crumbs/crumbs"
	"github.com/FEASTorg/crumbs/internal/config"
)

// Number of comma separated fields of a send command: the target, typeID,
// commandType and the data values.
const sendFields = 3 + crumbs.DataLength

// parseMessage parses "target,typeID,commandType,data0,...,data6".
func parseMessage(cfg *config.Config, line string) (uint16, crumbs.Message, error) {
	parts := strings.Split(line, ",")
	if len(parts) != sendFields {
		return 0, crumbs.Message{}, fmt.Errorf("incorrect number of fields: expected %d, got %d", sendFields, len(parts))
	}
	addr, err := cfg.Resolve(parts[0])
	if err != nil {
		return 0, crumbs.Message{}, err
	}
	typeID, err := config.ParseUint(strings.TrimSpace(parts[1]), 8)
	if err != nil {
		return 0, crumbs.Message{}, fmt.Errorf("invalid typeID: %w", err)
	}
	commandType, err := config.ParseUint(strings.TrimSpace(parts[2]), 8)
	if err != nil {
		return 0, crumbs.Message{}, fmt.Errorf("invalid commandType: %w", err)
	}
	m := crumbs.Message{TypeID: uint8(typeID), CommandType: uint8(commandType)}
	for i, s := range parts[3:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		if err != nil {
			return 0, crumbs.Message{}, fmt.Errorf("invalid data%d: %w", i, err)
		}
		m.Data[i] = float32(v)
	}
	return addr, m, nil
}

// parseRequest parses "request,target".
func parseRequest(cfg *config.Config, line string) (uint16, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid request format: expected request,target")
	}
	return cfg.Resolve(parts[1])
}
