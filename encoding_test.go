// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestEncodeASCII_KnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want byte
	}{
		{"A", 0xC1},
		{"Z", 0xE9},
		{"a", 0x81},
		{"z", 0xA9},
	}
	for _, c := range cases {
		got := EncodeASCII(c.in)
		assert.Len(t, got, 1)
		assert.Equal(t, c.want, got[0], "encoding %q", c.in)
	}
}

func TestEncodeASCII_FloorsControlRange(t *testing.T) {
	// Bytes below 0x40 in the code page table are floored to 0x40 so they
	// can never collide with a write-order opcode on the wire.
	got := EncodeASCII("\x00")
	assert.Len(t, got, 1)
	assert.GreaterOrEqual(t, got[0], byte(0x40))
}

func TestDecodeASCII_RoundTripsPrintableRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rune(rapid.IntRange(0x20, 0x7E).Draw(t, "r"))
		s := string(r)

		encoded := EncodeASCII(s)
		decoded := DecodeASCII(encoded)

		assert.Equal(t, s, decoded)
	})
}

func TestDecodeASCII_NoFiltering(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.SliceOfN(rapid.Byte(), 1, 16).Draw(t, "b")
		// DecodeASCII must always produce one rune per input byte, with no
		// bytes dropped, regardless of code point.
		decoded := DecodeASCII(b)
		assert.Equal(t, len(b), len([]rune(decoded)))
	})
}

func TestEncodeASCIIAs_MatchesDefaultEncoding(t *testing.T) {
	assert.Equal(t, EncodeASCII("Hi"), EncodeASCIIAs("Hi", EncodingCP037))
}

func TestSetCodepage_ChangesPackageDefault(t *testing.T) {
	defer SetCodepage(defaultEncoding)

	SetCodepage(EncodingCP037)
	assert.Equal(t, EncodeASCIIAs("Hi", EncodingCP037), EncodeASCII("Hi"))
}
