// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package config loads the crumbs-leader configuration file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/FEASTorg/crumbs/crumbs"
	"gopkg.in/yaml.v2"
	"periph.io/x/conn/v3/physic"
)

// Config is the crumbs-leader configuration file.
type Config struct {
	// Bus is the i2creg bus name, empty for the first one available.
	Bus   string `yaml:"bus"`
	Speed string `yaml:"speed"`
	Log   string `yaml:"log"`
	Color *bool  `yaml:"color"`
	// Targets maps aliases to peripheral addresses.
	Targets map[string]uint16 `yaml:"targets"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

// LoadConfig reads the yaml file at path. An empty path returns Default().
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a yaml document, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	config.setDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) setDefaults() {
	if c.Speed == "" {
		c.Speed = crumbs.DefaultClock.String()
	}
	if c.Log == "" {
		c.Log = "info"
	}
	if c.Color == nil {
		color := true
		c.Color = &color
	}
	if c.Targets == nil {
		c.Targets = map[string]uint16{}
	}
}

// Validate checks the bus speed and the target addresses.
func (c *Config) Validate() error {
	if _, err := c.Frequency(); err != nil {
		return err
	}
	for name, addr := range c.Targets {
		if addr < crumbs.MinAddress || addr > crumbs.MaxAddress {
			return fmt.Errorf("target %q: invalid address %#04x", name, addr)
		}
		if _, err := ParseUint(name, 16); err == nil {
			return fmt.Errorf("target %q: alias must not be a number", name)
		}
	}
	return nil
}

// Frequency returns the parsed bus speed.
func (c *Config) Frequency() (physic.Frequency, error) {
	var f physic.Frequency
	if err := f.Set(c.Speed); err != nil {
		return 0, fmt.Errorf("invalid speed %q: %w", c.Speed, err)
	}
	return f, nil
}

// Resolve returns the address for s, either a target alias or a decimal or
// 0x prefixed hexadecimal number.
func (c *Config) Resolve(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if addr, ok := c.Targets[s]; ok {
		return addr, nil
	}
	v, err := ParseUint(s, 16)
	if err != nil {
		return 0, fmt.Errorf("unknown target %q", s)
	}
	return uint16(v), nil
}

// ParseUint parses a 0x prefixed hexadecimal or a decimal number. Leading
// zeros are decimal, "010" is 10.
func ParseUint(s string, bitSize int) (uint64, error) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return strconv.ParseUint(s[2:], 16, bitSize)
	}
	return strconv.ParseUint(s, 10, bitSize)
}
