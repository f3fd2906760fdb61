// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crumbs

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/FEASTorg/crumbs/crc8"
)

const (
	// DataLength is the number of float values carried by a message.
	DataLength = 7
	// MessageSize is the size of an encoded frame in bytes.
	MessageSize = 2 + 4*DataLength + crc8.Size

	offsetData = 2
	offsetCRC  = MessageSize - crc8.Size
)

// Message is a fixed size CRUMBS message.
//
// The frame layout is little-endian:
//
//	[0]      TypeID
//	[1]      CommandType
//	[2:30]   Data, 7 IEEE-754 float32
//	[30]     CRC-8/SMBUS of bytes [0:30]
type Message struct {
	TypeID      uint8
	CommandType uint8
	Data        [DataLength]float32
	// CRC8 is set by Encode and by Decode to the checksum carried on the wire.
	CRC8 uint8
}

// NewMessage returns a Message holding the first DataLength values of data.
// Missing values are zero.
func NewMessage(typeID, commandType uint8, data ...float32) Message {
	m := Message{TypeID: typeID, CommandType: commandType}
	copy(m.Data[:], data)
	return m
}

// Encode writes the frame for m into b and stores the computed checksum in
// m.CRC8. It returns the number of bytes written, always MessageSize on
// success.
func (m *Message) Encode(b []byte) (int, error) {
	if len(b) < MessageSize {
		return 0, &ShortBufferError{Len: len(b)}
	}
	b[0] = m.TypeID
	b[1] = m.CommandType
	for i, v := range m.Data {
		binary.LittleEndian.PutUint32(b[offsetData+4*i:], math.Float32bits(v))
	}
	m.CRC8 = crc8.Checksum(b[:offsetCRC])
	b[offsetCRC] = m.CRC8
	return MessageSize, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m *Message) MarshalBinary() ([]byte, error) {
	b := make([]byte, MessageSize)
	if _, err := m.Encode(b); err != nil {
		return nil, err
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Bytes after the
// first MessageSize are ignored.
//
// On a checksum mismatch the fields are still populated from b and a
// *CRCError is returned.
func (m *Message) UnmarshalBinary(b []byte) error {
	if len(b) < MessageSize {
		return &ShortBufferError{Len: len(b)}
	}
	m.TypeID = b[0]
	m.CommandType = b[1]
	for i := range m.Data {
		m.Data[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[offsetData+4*i:]))
	}
	m.CRC8 = b[offsetCRC]
	if sum := crc8.Checksum(b[:offsetCRC]); sum != m.CRC8 {
		return &CRCError{Want: sum, Got: m.CRC8}
	}
	return nil
}

// Decode returns the Message held in the first MessageSize bytes of b.
func Decode(b []byte) (Message, error) {
	var m Message
	err := m.UnmarshalBinary(b)
	return m, err
}

func (m *Message) String() string {
	data := make([]string, len(m.Data))
	for i, v := range m.Data {
		data[i] = strconv.FormatFloat(float64(v), 'f', 2, 32)
	}
	return fmt.Sprintf("Message(typeID=%d, commandType=%d, data=[%s], crc8=%#04x)",
		m.TypeID, m.CommandType, strings.Join(data, ", "), m.CRC8)
}
