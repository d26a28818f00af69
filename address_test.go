// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDimensions_EncodeDecode(t *testing.T) {
	d := DefaultDimensions
	addr := d.Encode(1, 2)
	assert.Equal(t, 1, addr)

	row, col := d.Decode(1)
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, col)
}

func TestEncodeAddressBytes_RawForm(t *testing.T) {
	b, err := EncodeAddressBytes(1)
	require.NoError(t, err)
	assert.Equal(t, [2]byte{0x00, 0x01}, b)

	addr, err := DecodeAddressBytes(b[0], b[1])
	require.NoError(t, err)
	assert.Equal(t, 1, addr)
}

func TestDecodeAddressBytes_CompressedForm(t *testing.T) {
	// Top two bits 0b01 select the 12-bit compressed encoding; the address
	// is carried in the low 6 bits of each byte.
	addr, err := DecodeAddressBytes(0x40|0x00, 0x41)
	require.NoError(t, err)
	assert.Equal(t, 1, addr)
}

func TestDecodeAddressBytes_InvalidTopBits(t *testing.T) {
	_, err := DecodeAddressBytes(0x80, 0x00)
	require.Error(t, err)
}

func TestEncodeAddressBytes_RejectsOutOfRange(t *testing.T) {
	_, err := EncodeAddressBytes(maxWireAddress + 1)
	require.Error(t, err)

	_, err = EncodeAddressBytes(-1)
	require.Error(t, err)
}

func TestAddress_RawFormRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		addr := rapid.IntRange(0, maxWireAddress).Draw(t, "addr")

		b, err := EncodeAddressBytes(addr)
		require.NoError(t, err)
		// The raw 14-bit form always sets the top two bits to 0b00.
		require.Equal(t, byte(0), b[0]>>6)

		got, err := DecodeAddressBytes(b[0], b[1])
		require.NoError(t, err)
		assert.Equal(t, addr, got)
	})
}
