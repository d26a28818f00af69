// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

import "fmt"

// AID is an Attention Identifier: the one-byte code at the start of an
// inbound record identifying which key the terminal operator pressed to
// submit the screen.
type AID byte

// Standard 3270 AID codes.
const (
	AIDNone   AID = 0x60
	AIDEnter  AID = 0x7D
	AIDPF1    AID = 0xF1
	AIDPF2    AID = 0xF2
	AIDPF3    AID = 0xF3
	AIDPF4    AID = 0xF4
	AIDPF5    AID = 0xF5
	AIDPF6    AID = 0xF6
	AIDPF7    AID = 0xF7
	AIDPF8    AID = 0xF8
	AIDPF9    AID = 0xF9
	AIDPF10   AID = 0x7A
	AIDPF11   AID = 0x7B
	AIDPF12   AID = 0x7C
	AIDPF13   AID = 0xC1
	AIDPF14   AID = 0xC2
	AIDPF15   AID = 0xC3
	AIDPF16   AID = 0xC4
	AIDPF17   AID = 0xC5
	AIDPF18   AID = 0xC6
	AIDPF19   AID = 0xC7
	AIDPF20   AID = 0xC8
	AIDPF21   AID = 0xC9
	AIDPF22   AID = 0x4A
	AIDPF23   AID = 0x4B
	AIDPF24   AID = 0x4C
	AIDPA1    AID = 0x6C
	AIDPA2    AID = 0x6E
	AIDPA3    AID = 0x6B
	AIDClear  AID = 0x6D
	AIDSysReq AID = 0xF0
)

// validAIDs is the closed set of bytes ParseRecord will accept as an AID.
var validAIDs = map[AID]string{
	AIDNone:   "[none]",
	AIDEnter:  "Enter",
	AIDPF1:    "PF1",
	AIDPF2:    "PF2",
	AIDPF3:    "PF3",
	AIDPF4:    "PF4",
	AIDPF5:    "PF5",
	AIDPF6:    "PF6",
	AIDPF7:    "PF7",
	AIDPF8:    "PF8",
	AIDPF9:    "PF9",
	AIDPF10:   "PF10",
	AIDPF11:   "PF11",
	AIDPF12:   "PF12",
	AIDPF13:   "PF13",
	AIDPF14:   "PF14",
	AIDPF15:   "PF15",
	AIDPF16:   "PF16",
	AIDPF17:   "PF17",
	AIDPF18:   "PF18",
	AIDPF19:   "PF19",
	AIDPF20:   "PF20",
	AIDPF21:   "PF21",
	AIDPF22:   "PF22",
	AIDPF23:   "PF23",
	AIDPF24:   "PF24",
	AIDPA1:    "PA1",
	AIDPA2:    "PA2",
	AIDPA3:    "PA3",
	AIDClear:  "Clear",
	AIDSysReq: "SysReq",
}

// AIDFromByte validates b as a known AID code.
func AIDFromByte(b byte) (AID, error) {
	aid := AID(b)
	if _, ok := validAIDs[aid]; !ok {
		return 0, InvalidAID{Byte: b}
	}
	return aid, nil
}

// String returns the conventional name for the AID, or a hex fallback for
// unrecognized values (which AIDFromByte would have already rejected, but
// String must still be total).
func (a AID) String() string {
	if name, ok := validAIDs[a]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", byte(a))
}
