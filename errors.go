// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

import "fmt"

// InvalidAID is returned when the first byte of an inbound record is not a
// recognized Attention Identifier. It terminates parsing of that record.
type InvalidAID struct {
	Byte byte
}

func (e InvalidAID) Error() string {
	return fmt.Sprintf("invalid AID: %02x", e.Byte)
}

// UnexpectedEOR is returned when a record ends mid-order: an attribute list
// is shorter than its declared count, a multi-byte order is missing
// operands, or the record is too short to hold even an AID and address.
type UnexpectedEOR struct {
	Reason string
}

func (e UnexpectedEOR) Error() string {
	if e.Reason == "" {
		return "record ended early"
	}
	return fmt.Sprintf("record ended early: %s", e.Reason)
}

// InvalidData is returned for an unknown opcode, an unknown enumerant
// inside an attribute, or a reserved-bit collision in a bitfield value.
type InvalidData struct {
	Reason string
}

func (e InvalidData) Error() string {
	if e.Reason == "" {
		return "invalid data"
	}
	return fmt.Sprintf("invalid data: %s", e.Reason)
}
